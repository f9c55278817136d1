package backend

import (
	"testing"

	"github.com/dshills/xxcmd/internal/input/key"
	"github.com/dshills/xxcmd/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := core.NewStyledCell('X', core.DefaultStyle().Bold())
	b.SetCell(10, 5, cell)

	if got := b.GetCell(10, 5); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	if got := b.GetCell(-1, 0); got != core.EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendFillAndRow(t *testing.T) {
	b := NewNullBackend(10, 4)
	b.Init()

	b.Fill(core.NewScreenRect(1, 2, 3, 5), core.NewStyledCell('.', core.DefaultStyle()))

	if got := b.Row(1); got != "  ...     " {
		t.Errorf("Row(1) = %q", got)
	}
	if got := b.Row(0); got != "          " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := b.Row(9); got != "" {
		t.Errorf("out of range row = %q", got)
	}

	b.Clear()
	if got := b.Row(1); got != "          " {
		t.Errorf("Row(1) after clear = %q", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.ShowCursor(3, 4)
	x, y, visible := b.CursorPosition()
	if x != 3 || y != 4 || !visible {
		t.Errorf("cursor = (%d, %d, %v)", x, y, visible)
	}
	b.HideCursor()
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.PostEvent(KeyEvent(key.NewRuneEvent('q', key.ModNone)))
	b.Resize(40, 10)

	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Key.Rune != 'q' {
		t.Errorf("first event = %+v", ev)
	}
	ev = b.PollEvent()
	if ev.Type != EventResize || ev.Width != 40 || ev.Height != 10 {
		t.Errorf("second event = %+v", ev)
	}
	if w, h := b.Size(); w != 40 || h != 10 {
		t.Errorf("size after resize = %dx%d", w, h)
	}
}

func TestNullBackendShowCount(t *testing.T) {
	b := NewNullBackend(10, 10)
	b.Init()
	b.Show()
	b.Show()
	if b.ShowCount() != 2 {
		t.Errorf("ShowCount() = %d, want 2", b.ShowCount())
	}
}
