package viewport

import (
	"testing"

	"github.com/dshills/xxcmd/internal/renderer/core"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		prompt    core.ScreenRect
		separator int
		content   core.ScreenRect
		footer    int
	}{
		{
			name:      "bare",
			opts:      Options{},
			prompt:    core.NewScreenRect(0, 0, 1, 80),
			separator: -1,
			content:   core.NewScreenRect(1, 0, 24, 80),
			footer:    -1,
		},
		{
			name:      "border",
			opts:      Options{Border: true},
			prompt:    core.NewScreenRect(1, 1, 2, 79),
			separator: 2,
			content:   core.NewScreenRect(3, 1, 23, 79),
			footer:    -1,
		},
		{
			name:      "footer",
			opts:      Options{Footer: true},
			prompt:    core.NewScreenRect(0, 0, 1, 80),
			separator: -1,
			content:   core.NewScreenRect(1, 0, 23, 80),
			footer:    23,
		},
		{
			name:      "border and footer",
			opts:      Options{Border: true, Footer: true},
			prompt:    core.NewScreenRect(1, 1, 2, 79),
			separator: 2,
			content:   core.NewScreenRect(3, 1, 22, 79),
			footer:    22,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Layout(80, 24, tt.opts)
			if g.Prompt != tt.prompt {
				t.Errorf("Prompt = %+v, want %+v", g.Prompt, tt.prompt)
			}
			if g.Separator != tt.separator {
				t.Errorf("Separator = %d, want %d", g.Separator, tt.separator)
			}
			if g.Content != tt.content {
				t.Errorf("Content = %+v, want %+v", g.Content, tt.content)
			}
			if g.Footer != tt.footer {
				t.Errorf("Footer = %d, want %d", g.Footer, tt.footer)
			}
		})
	}
}

func TestLayoutTinyTerminal(t *testing.T) {
	g := Layout(3, 2, Options{Border: true, Footer: true})
	if g.Rows() != 0 {
		t.Errorf("Rows() = %d, want 0", g.Rows())
	}
	if g.Content.Bottom < g.Content.Top {
		t.Errorf("content rect inverted: %+v", g.Content)
	}
}

func TestRowOffset(t *testing.T) {
	tests := []struct {
		sel, rows, want int
	}{
		{0, 10, 0},
		{9, 10, 0},
		{10, 10, 1},
		{25, 10, 16},
		{-1, 10, 0},
		{3, 0, 4},
	}
	for _, tt := range tests {
		if got := RowOffset(tt.sel, tt.rows); got != tt.want {
			t.Errorf("RowOffset(%d, %d) = %d, want %d", tt.sel, tt.rows, got, tt.want)
		}
	}
}

func TestColOffset(t *testing.T) {
	tests := []struct {
		cursor, width, prefix, want int
	}{
		{0, 20, 8, 0},
		{11, 20, 8, 0},
		{12, 20, 8, 1},
		{30, 20, 8, 19},
		// Prefix wider than the prompt: the offset stops at the cursor.
		{4, 8, 8, 4},
		{4, 5, 8, 4},
		{0, 5, 8, 0},
	}
	for _, tt := range tests {
		if got := ColOffset(tt.cursor, tt.width, tt.prefix); got != tt.want {
			t.Errorf("ColOffset(%d, %d, %d) = %d, want %d",
				tt.cursor, tt.width, tt.prefix, got, tt.want)
		}
	}
}

func TestViewportMapping(t *testing.T) {
	v := New(Options{Border: true})
	v.Resize(40, 10) // content rows 3..8, 6 rows

	v.ScrollTo(0, 0, 8)
	if v.RowOffset() != 0 || v.ColOffset() != 0 {
		t.Errorf("offsets = %d/%d, want 0/0", v.RowOffset(), v.ColOffset())
	}
	if v.IndexAt(3) != 0 || v.IndexAt(2) != -1 {
		t.Errorf("IndexAt(3) = %d, IndexAt(2) = %d", v.IndexAt(3), v.IndexAt(2))
	}

	v.ScrollTo(8, 40, 8)
	if v.RowOffset() != 3 {
		t.Errorf("RowOffset = %d, want 3", v.RowOffset())
	}
	if v.IndexAt(8) != 8 {
		t.Errorf("IndexAt(8) = %d, want 8", v.IndexAt(8))
	}
	if v.IndexAt(3) != 3 || v.IndexAt(9) != 9 {
		t.Error("rows do not follow the row offset")
	}
	// Prompt width 38, prefix 8, margin 1.
	if v.ColOffset() != 11 {
		t.Errorf("ColOffset = %d, want 11", v.ColOffset())
	}
}
