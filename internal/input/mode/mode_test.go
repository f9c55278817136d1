package mode

import (
	"testing"

	"github.com/dshills/xxcmd/internal/input/key"
)

var allModes = []Mode{Search, EditLabel, EditCommand, EditNewCommand}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Search, "search"},
		{EditLabel, "edit-label"},
		{EditCommand, "edit-command"},
		{EditNewCommand, "edit-new-command"},
		{Mode(42), "Mode(42)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestModePrefixAndHelp(t *testing.T) {
	for _, m := range allModes {
		if m.Prefix() == "" {
			t.Errorf("%s has no prefix", m)
		}
		if m.Help() == "" {
			t.Errorf("%s has no help text", m)
		}
	}
	if Search.IsEdit() {
		t.Error("Search is not an edit mode")
	}
	if !EditNewCommand.IsEdit() {
		t.Error("EditNewCommand is an edit mode")
	}
	if Mode(9).Prefix() != "" || Mode(9).IsEdit() {
		t.Error("invalid mode should have no prefix and not be an edit mode")
	}
}

func TestSearchBindings(t *testing.T) {
	tests := []struct {
		name  string
		event key.Event
		want  Action
	}{
		{"F1", key.NewSpecialEvent(key.KeyF1, key.ModNone), ActionEditLabel},
		{"Ctrl+E", key.Ctrl('e'), ActionEditLabel},
		{"Ctrl+Shift+E", key.NewRuneEvent('E', key.ModCtrl|key.ModShift), ActionEditLabel},
		{"F2", key.NewSpecialEvent(key.KeyF2, key.ModNone), ActionEditCommand},
		{"Tab", key.NewSpecialEvent(key.KeyTab, key.ModNone), ActionEditCommand},
		{"F3", key.NewSpecialEvent(key.KeyF3, key.ModNone), ActionNewCommand},
		{"Ctrl+G", key.Ctrl('g'), ActionNewCommand},
		{"Delete", key.NewSpecialEvent(key.KeyDelete, key.ModNone), ActionDelete},
		{"Enter", key.NewSpecialEvent(key.KeyEnter, key.ModNone), ActionExecute},
		{"Ctrl+J", key.Ctrl('j'), ActionExecute},
		{"Escape", key.NewSpecialEvent(key.KeyEscape, key.ModNone), ActionQuit},
		{"Ctrl+C", key.Ctrl('c'), ActionQuit},
		{"Up", key.NewSpecialEvent(key.KeyUp, key.ModNone), ActionSelectPrev},
		{"Down", key.NewSpecialEvent(key.KeyDown, key.ModNone), ActionSelectNext},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Search.Lookup(tt.event)
			if !ok || got != tt.want {
				t.Errorf("Lookup = %v, %v; want %v", got, ok, tt.want)
			}
		})
	}
}

func TestUnboundKeysFallThrough(t *testing.T) {
	unbound := []key.Event{
		key.NewRuneEvent('e', key.ModNone),
		key.NewSpecialEvent(key.KeyBackspace, key.ModNone),
		key.NewSpecialEvent(key.KeyLeft, key.ModCtrl),
		key.NewSpecialEvent(key.KeyHome, key.ModNone),
	}
	for _, m := range allModes {
		for _, ev := range unbound {
			if a, ok := m.Lookup(ev); ok {
				t.Errorf("%s: %s unexpectedly bound to %s", m, ev, a)
			}
		}
	}
}

func TestEditBindings(t *testing.T) {
	for _, m := range []Mode{EditLabel, EditCommand, EditNewCommand} {
		if a, _ := m.Lookup(key.NewSpecialEvent(key.KeyEnter, key.ModNone)); a != ActionCommit {
			t.Errorf("%s: Enter = %s, want commit", m, a)
		}
		if a, _ := m.Lookup(key.Ctrl('j')); a != ActionCommit {
			t.Errorf("%s: Ctrl+J = %s, want commit", m, a)
		}
		if a, _ := m.Lookup(key.NewSpecialEvent(key.KeyEscape, key.ModNone)); a != ActionCancel {
			t.Errorf("%s: Escape = %s, want cancel", m, a)
		}
		if _, ok := m.Lookup(key.NewSpecialEvent(key.KeyF1, key.ModNone)); ok {
			t.Errorf("%s: F1 should be unbound", m)
		}
		if _, ok := m.Lookup(key.NewSpecialEvent(key.KeyDown, key.ModNone)); ok {
			t.Errorf("%s: Down should be unbound", m)
		}
	}
}

func TestAlways(t *testing.T) {
	if Search.Always() != ActionUpdateSearch {
		t.Errorf("Search.Always() = %s, want update-search", Search.Always())
	}
	for _, m := range []Mode{EditLabel, EditCommand, EditNewCommand} {
		if m.Always() != ActionNone {
			t.Errorf("%s.Always() = %s, want none", m, m.Always())
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionCommit.String() != "commit" {
		t.Errorf("ActionCommit.String() = %q", ActionCommit.String())
	}
	if Action(200).String() != "Action(200)" {
		t.Errorf("Action(200).String() = %q", Action(200).String())
	}
}
