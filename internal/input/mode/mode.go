package mode

import "fmt"

// Mode identifies an interaction mode.
type Mode uint8

const (
	// Search filters the command list with the input line.
	Search Mode = iota

	// EditLabel edits the label of the selected record.
	EditLabel

	// EditCommand edits the command of the selected record.
	EditCommand

	// EditNewCommand composes a new record.
	EditNewCommand

	modeCount
)

type modeInfo struct {
	name   string
	prefix string
	help   string
}

var modeInfos = [modeCount]modeInfo{
	Search: {
		name:   "search",
		prefix: "Search: ",
		help:   "F1 Label  F2 Command  F3 New  Del Delete  Enter Run  Esc Quit",
	},
	EditLabel: {
		name:   "edit-label",
		prefix: "Edit Label: ",
		help:   "Enter Save  Esc Cancel",
	},
	EditCommand: {
		name:   "edit-command",
		prefix: "Edit Command: ",
		help:   "Enter Save  Esc Cancel",
	},
	EditNewCommand: {
		name:   "edit-new-command",
		prefix: "New Command: ",
		help:   "Enter Add  Esc Cancel",
	},
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m < modeCount
}

// String returns the mode identifier, e.g. "edit-label".
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", m)
	}
	return modeInfos[m].name
}

// Prefix returns the text drawn before the input line.
func (m Mode) Prefix() string {
	if !m.Valid() {
		return ""
	}
	return modeInfos[m].prefix
}

// Help returns the shortcut summary shown in the footer.
func (m Mode) Help() string {
	if !m.Valid() {
		return ""
	}
	return modeInfos[m].help
}

// IsEdit reports whether m edits a record rather than searching.
func (m Mode) IsEdit() bool {
	return m.Valid() && m != Search
}
