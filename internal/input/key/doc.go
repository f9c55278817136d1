// Package key provides the key event types consumed by the input modes.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers
//
// Control chords on character keys are carried as a rune plus ModCtrl,
// so Ctrl+E is Event{Key: KeyRune, Rune: 'e', Modifiers: ModCtrl}.
// Events are comparable and can be used directly as map keys once
// normalized with Event.Normalize.
package key
