// Package viewport computes the screen layout of the console and the scroll
// offsets that keep the selection and the input cursor visible.
package viewport

import "github.com/dshills/xxcmd/internal/renderer/core"

// CursorMargin is the number of columns kept free to the right of the
// input cursor.
const CursorMargin = 1

// Options selects the decorations that take screen space.
type Options struct {
	// Border draws a box around the grid and a separator under the prompt.
	Border bool

	// Footer reserves the last row for help text.
	Footer bool
}

// Geometry describes where each part of the console is drawn.
// Rows and columns outside the terminal never appear in a Geometry.
type Geometry struct {
	// Width and Height are the full grid size.
	Width, Height int

	// Prompt is the single-row input line.
	Prompt core.ScreenRect

	// Separator is the row under the prompt, or -1 without a border.
	Separator int

	// Content holds the result rows.
	Content core.ScreenRect

	// Footer is the help row, or -1 when disabled.
	Footer int
}

// Layout computes the geometry for a width x height grid.
func Layout(width, height int, opts Options) Geometry {
	width = max(width, 0)
	height = max(height, 0)

	b := 0
	if opts.Border {
		b = 1
	}

	g := Geometry{
		Width:     width,
		Height:    height,
		Prompt:    core.NewScreenRect(b, b, b+1, width-b),
		Separator: -1,
		Footer:    -1,
	}

	top := b + 1
	if opts.Border {
		g.Separator = top
		top++
	}
	bottom := height - b
	if opts.Footer {
		g.Footer = bottom - 1
		bottom--
	}
	g.Content = core.NewScreenRect(top, b, max(bottom, top), width-b)
	return g
}

// Rows returns the number of result rows.
func (g Geometry) Rows() int {
	return g.Content.Height()
}

// RowOffset returns the first visible result index when sel is selected
// and rows rows are visible. The window scrolls only once the selection
// passes the bottom edge.
func RowOffset(sel, rows int) int {
	return max(0, sel-(rows-1))
}

// ColOffset returns the first visible input column for a cursor at
// cursor in a prompt of width columns whose prefix takes prefixLen.
// The offset never passes the cursor, even when the prefix fills the
// prompt.
func ColOffset(cursor, width, prefixLen int) int {
	free := max(width-prefixLen-CursorMargin, 0)
	return max(0, cursor-free)
}

// Viewport tracks the layout and scroll offsets across frames.
type Viewport struct {
	opts      Options
	geom      Geometry
	rowOffset int
	colOffset int
}

// New creates a viewport with the given decorations.
func New(opts Options) *Viewport {
	return &Viewport{opts: opts}
}

// Resize recomputes the layout for a new grid size.
func (v *Viewport) Resize(width, height int) {
	v.geom = Layout(width, height, v.opts)
}

// Geometry returns the current layout.
func (v *Viewport) Geometry() Geometry {
	return v.geom
}

// ScrollTo updates both offsets for the given selection index and input
// cursor.
func (v *Viewport) ScrollTo(sel, cursor, prefixLen int) {
	v.rowOffset = RowOffset(sel, v.geom.Rows())
	v.colOffset = ColOffset(cursor, v.geom.Prompt.Width(), prefixLen)
}

// RowOffset returns the index of the first visible result.
func (v *Viewport) RowOffset() int {
	return v.rowOffset
}

// ColOffset returns the first visible input column.
func (v *Viewport) ColOffset() int {
	return v.colOffset
}

// IndexAt maps a screen row to a result index. The index may be out of
// range of the results.
func (v *Viewport) IndexAt(row int) int {
	return row + v.rowOffset - v.geom.Content.Top
}
