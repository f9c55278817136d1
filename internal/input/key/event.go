package key

import (
	"fmt"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// Ctrl returns the Ctrl chord for the character r.
func Ctrl(r rune) Event {
	return NewRuneEvent(unicode.ToLower(r), ModCtrl)
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this event types a printable character.
// Ctrl and Alt chords never type characters.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && !e.Modifiers.Has(ModCtrl|ModAlt|ModMeta)
}

// Normalize returns the canonical form used for binding lookups.
// Shift is folded into the character for rune events, and control
// chords are lower-cased.
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		return e
	}
	e.Modifiers = e.Modifiers.Without(ModShift)
	if e.Modifiers.Has(ModCtrl) {
		e.Rune = unicode.ToLower(e.Rune)
	}
	return e
}

// String returns a canonical string representation.
// Examples: "a", "Ctrl+e", "Enter", "Alt+Left"
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	}
	mods := e.Modifiers
	if e.Key == KeyRune {
		mods = mods.Without(ModShift)
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
