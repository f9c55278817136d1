package renderer

import (
	"strings"
	"time"

	"github.com/dshills/xxcmd/internal/engine/lineedit"
	"github.com/dshills/xxcmd/internal/input/mode"
	"github.com/dshills/xxcmd/internal/record"
	"github.com/dshills/xxcmd/internal/renderer/backend"
	"github.com/dshills/xxcmd/internal/renderer/core"
	"github.com/dshills/xxcmd/internal/renderer/viewport"
)

// DefaultFlashDuration is how long a notice stays on screen.
const DefaultFlashDuration = time.Second

// State is the console state a frame is drawn from.
// *controller.Controller implements it.
type State interface {
	Mode() mode.Mode
	Buffer() *lineedit.Buffer
	Results() []*record.Record
	SelectedIndex() int
}

// Options configures the renderer.
type Options struct {
	// Labels
	ShowLabels    bool // Draw labels before commands
	AlignCommands bool // Line up commands in a column after the labels
	BracketLabels bool // Wrap labels in [ ]
	BoldLabels    bool // Bold labels on unselected rows
	LabelPadding  int  // Spaces between label and command

	// Rows
	ShowCommands       bool // Draw command text
	WholeLineSelection bool // Highlight the full row width

	// Decorations
	Border bool // Box around the grid
	Footer bool // Help text on the last row

	// FlashDuration is how long Flash blocks.
	FlashDuration time.Duration
}

// DefaultOptions returns the default display options.
func DefaultOptions() Options {
	return Options{
		ShowLabels:         true,
		AlignCommands:      true,
		BracketLabels:      false,
		BoldLabels:         true,
		LabelPadding:       2,
		ShowCommands:       true,
		WholeLineSelection: true,
		Border:             true,
		Footer:             true,
		FlashDuration:      DefaultFlashDuration,
	}
}

// Renderer draws frames onto a backend.
type Renderer struct {
	opts     Options
	backend  backend.Backend
	viewport *viewport.Viewport

	// sleep blocks during Flash.
	sleep func(time.Duration)
}

// New creates a renderer for b.
func New(b backend.Backend, opts Options) *Renderer {
	return &Renderer{
		opts:     opts,
		backend:  b,
		viewport: viewport.New(viewport.Options{Border: opts.Border, Footer: opts.Footer}),
		sleep:    time.Sleep,
	}
}

// Viewport returns the viewport used by the last draw.
func (r *Renderer) Viewport() *viewport.Viewport {
	return r.viewport
}

// LabelWidth returns the width of the label column for results, or 0 when
// commands are not aligned.
func LabelWidth(results []*record.Record, opts Options) int {
	if !opts.ShowLabels || !opts.AlignCommands {
		return 0
	}
	width := 0
	for _, rec := range results {
		width = max(width, core.StringWidth(rec.Label))
	}
	width += opts.LabelPadding
	if opts.BracketLabels {
		width++
	}
	return width
}

// Draw renders a full frame from s.
func (r *Renderer) Draw(s State) {
	w, h := r.backend.Size()
	r.viewport.Resize(w, h)
	g := r.viewport.Geometry()

	r.backend.Clear()
	if g.Prompt.IsEmpty() {
		r.backend.HideCursor()
		r.backend.Show()
		return
	}

	m := s.Mode()
	buf := s.Buffer()
	prefix := m.Prefix()
	prefixWidth := core.StringWidth(prefix)
	sel := s.SelectedIndex()
	r.viewport.ScrollTo(sel, buf.Cursor(), prefixWidth)

	// Input line
	text := []rune(buf.Value())
	colOffset := min(r.viewport.ColOffset(), buf.Cursor(), len(text))
	r.drawText(g.Prompt.Left, g.Prompt.Top, g.Prompt.Right, prefix+string(text[colOffset:]), core.DefaultStyle())

	// Results
	results := s.Results()
	labelWidth := LabelWidth(results, r.opts)
	for y := g.Content.Top; y < g.Content.Bottom; y++ {
		idx := r.viewport.IndexAt(y)
		if idx < 0 || idx >= len(results) {
			continue
		}
		r.drawRow(g.Content, y, results[idx], idx == sel, labelWidth)
	}

	// Footer
	if g.Footer >= 0 {
		help := m.Help()
		x := max(g.Content.Right-core.StringWidth(help), g.Content.Left)
		r.drawText(x, g.Footer, g.Content.Right, help, core.DefaultStyle().Dim())
	}

	if r.opts.Border {
		r.drawBorder(g)
	}

	cx := g.Prompt.Left + prefixWidth + core.StringWidth(string(text[colOffset:buf.Cursor()]))
	if cx < g.Prompt.Right {
		r.backend.ShowCursor(cx, g.Prompt.Top)
	} else {
		r.backend.HideCursor()
	}

	r.backend.Show()
}

func (r *Renderer) drawRow(area core.ScreenRect, y int, rec *record.Record, selected bool, labelWidth int) {
	style := core.DefaultStyle()
	if selected {
		style = style.Reverse()
	}

	x := area.Left
	if r.opts.ShowLabels {
		label := rec.Label
		if r.opts.BracketLabels {
			label = "[" + label + "]"
		}
		if labelWidth > 0 {
			label = core.PadRight(label, labelWidth)
		} else {
			label += strings.Repeat(" ", max(r.opts.LabelPadding, 0))
		}
		labelStyle := style
		if r.opts.BoldLabels && !selected {
			labelStyle = labelStyle.Bold()
		}
		x = r.drawText(x, y, area.Right, label, labelStyle)
	}

	if r.opts.ShowCommands {
		x = r.drawText(x, y, area.Right, rec.Command, style)
	}
	if r.opts.WholeLineSelection && x < area.Right {
		r.backend.Fill(core.NewScreenRect(y, x, y+1, area.Right), core.NewStyledCell(' ', style))
	}
}

func (r *Renderer) drawBorder(g viewport.Geometry) {
	right := g.Width - 1
	bottom := g.Height - 1
	if right < 1 || bottom < 1 {
		return
	}
	style := core.DefaultStyle()
	hline := core.NewStyledCell(core.BoxHorizontal, style)
	vline := core.NewStyledCell(core.BoxVertical, style)

	r.backend.Fill(core.NewScreenRect(0, 1, 1, right), hline)
	r.backend.Fill(core.NewScreenRect(bottom, 1, bottom+1, right), hline)
	r.backend.Fill(core.NewScreenRect(1, 0, bottom, 1), vline)
	r.backend.Fill(core.NewScreenRect(1, right, bottom, right+1), vline)
	r.backend.SetCell(0, 0, core.NewStyledCell(core.BoxTopLeft, style))
	r.backend.SetCell(right, 0, core.NewStyledCell(core.BoxTopRight, style))
	r.backend.SetCell(0, bottom, core.NewStyledCell(core.BoxBottomLeft, style))
	r.backend.SetCell(right, bottom, core.NewStyledCell(core.BoxBottomRight, style))

	if g.Separator > 0 && g.Separator < bottom {
		r.backend.Fill(core.NewScreenRect(g.Separator, 1, g.Separator+1, right), hline)
		r.backend.SetCell(0, g.Separator, core.NewStyledCell(core.BoxTeeLeft, style))
		r.backend.SetCell(right, g.Separator, core.NewStyledCell(core.BoxTeeRight, style))
	}
}

// drawText draws s starting at x on row y, clipped at maxX. It returns
// the column after the last drawn cell.
func (r *Renderer) drawText(x, y, maxX int, s string, style core.Style) int {
	for _, ch := range s {
		w := core.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		r.backend.SetCell(x, y, core.Cell{Rune: ch, Width: w, Style: style})
		for i := 1; i < w; i++ {
			r.backend.SetCell(x+i, y, core.ContinuationCell())
		}
		x += w
	}
	return x
}

// Flash draws msg over the input line, shows it, and blocks for the
// flash duration.
func (r *Renderer) Flash(msg string) {
	g := r.viewport.Geometry()
	if g.Prompt.IsEmpty() {
		w, h := r.backend.Size()
		r.viewport.Resize(w, h)
		g = r.viewport.Geometry()
	}
	r.backend.Fill(g.Prompt, core.EmptyCell())
	r.drawText(g.Prompt.Left, g.Prompt.Top, g.Prompt.Right, msg, core.DefaultStyle().Bold())
	r.backend.HideCursor()
	r.backend.Show()
	r.sleep(r.opts.FlashDuration)
}
