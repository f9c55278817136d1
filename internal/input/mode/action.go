package mode

import (
	"fmt"

	"github.com/dshills/xxcmd/internal/input/key"
)

// Action identifies an operation the controller performs for a key.
type Action uint8

const (
	// ActionNone means no action; the key falls through to line editing.
	ActionNone Action = iota

	// ActionUpdateSearch recomputes the result list from the query.
	ActionUpdateSearch

	// ActionQuit ends the session.
	ActionQuit

	// ActionExecute runs the selected record.
	ActionExecute

	// ActionDelete removes the selected record.
	ActionDelete

	// ActionSelectPrev moves the selection up one row.
	ActionSelectPrev

	// ActionSelectNext moves the selection down one row.
	ActionSelectNext

	// ActionEditLabel switches to EditLabel.
	ActionEditLabel

	// ActionEditCommand switches to EditCommand.
	ActionEditCommand

	// ActionNewCommand switches to EditNewCommand.
	ActionNewCommand

	// ActionCommit applies the edit and returns to Search.
	ActionCommit

	// ActionCancel discards the edit and returns to Search.
	ActionCancel
)

var actionNames = [...]string{
	ActionNone:         "none",
	ActionUpdateSearch: "update-search",
	ActionQuit:         "quit",
	ActionExecute:      "execute",
	ActionDelete:       "delete",
	ActionSelectPrev:   "select-prev",
	ActionSelectNext:   "select-next",
	ActionEditLabel:    "edit-label",
	ActionEditCommand:  "edit-command",
	ActionNewCommand:   "new-command",
	ActionCommit:       "commit",
	ActionCancel:       "cancel",
}

// String returns the action identifier.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// Table maps normalized key events to actions.
type Table map[key.Event]Action

func special(k key.Key) key.Event {
	return key.NewSpecialEvent(k, key.ModNone)
}

var searchTable = Table{
	special(key.KeyF1):     ActionEditLabel,
	key.Ctrl('e'):          ActionEditLabel,
	special(key.KeyF2):     ActionEditCommand,
	special(key.KeyTab):    ActionEditCommand, // Ctrl+I
	special(key.KeyF3):     ActionNewCommand,
	key.Ctrl('g'):          ActionNewCommand,
	special(key.KeyDelete): ActionDelete,
	special(key.KeyEnter):  ActionExecute,
	key.Ctrl('j'):          ActionExecute, // LF
	special(key.KeyEscape): ActionQuit,
	key.Ctrl('c'):          ActionQuit,
	special(key.KeyUp):     ActionSelectPrev,
	special(key.KeyDown):   ActionSelectNext,
}

var editTable = Table{
	special(key.KeyEnter):  ActionCommit,
	key.Ctrl('j'):          ActionCommit,
	special(key.KeyEscape): ActionCancel,
	key.Ctrl('c'):          ActionCancel,
}

var tables = [modeCount]Table{
	Search:         searchTable,
	EditLabel:      editTable,
	EditCommand:    editTable,
	EditNewCommand: editTable,
}

var always = [modeCount]Action{
	Search: ActionUpdateSearch,
}

// Lookup returns the action bound to ev in mode m.
func (m Mode) Lookup(ev key.Event) (Action, bool) {
	if !m.Valid() {
		return ActionNone, false
	}
	a, ok := tables[m][ev.Normalize()]
	return a, ok
}

// Always returns the action run after each keystroke that leaves the
// mode unchanged. ActionNone means nothing runs.
func (m Mode) Always() Action {
	if !m.Valid() {
		return ActionNone
	}
	return always[m]
}
