// Package mode defines the interaction modes of the command console.
//
// There are four modes:
//   - Search: the input line filters the command list
//   - EditLabel: the input line edits the selected record's label
//   - EditCommand: the input line edits the selected record's command
//   - EditNewCommand: the input line holds a new record to add
//
// # Bindings
//
// Each mode carries a static table mapping key events to Action ids.
// Tables hold identifiers only; the controller executes an Action
// through an explicit switch. Keys without a binding fall through to
// line editing.
//
// After every keystroke that leaves the mode unchanged, the mode's
// Always action runs. Only Search has one (ActionUpdateSearch), so the
// result list follows the query while edit modes keep the selection
// fixed.
//
// # Transitions
//
//	         F1/Ctrl+E, F2/Tab, F3/Ctrl+G
//	┌────────┐ ───────────────────────▶ ┌───────────┐
//	│ Search │                          │ Edit mode │
//	└────────┘ ◀─────────────────────── └───────────┘
//	              Enter (commit), Esc
//
// The Manager tracks the current mode and notifies callbacks on change.
package mode
