package lineedit

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MaxHistory is the number of previous values a Buffer remembers.
const MaxHistory = 20

// ErrInvalidChar is returned by AddChar when the input is not exactly one character.
var ErrInvalidChar = errors.New("expected exactly one character")

// Granularity selects how far a cursor motion travels.
type Granularity uint8

const (
	// Character moves by a single rune.
	Character Granularity = iota
	// Line moves to the start or end of the text.
	Line
	// Word moves to the start of the previous or next word.
	Word
)

// String returns a human-readable granularity name.
func (g Granularity) String() string {
	switch g {
	case Character:
		return "character"
	case Line:
		return "line"
	case Word:
		return "word"
	default:
		return "unknown"
	}
}

// Buffer is an editable line of text with a cursor and bounded history.
type Buffer struct {
	text    []rune
	cursor  int
	history []string
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewFromString creates a buffer holding s with the cursor at the end.
// The initial value is not recorded in history.
func NewFromString(s string) *Buffer {
	b := &Buffer{text: []rune(s)}
	b.cursor = len(b.text)
	return b
}

// Value returns the current text.
func (b *Buffer) Value() string {
	return string(b.text)
}

// String implements fmt.Stringer.
func (b *Buffer) String() string {
	return b.Value()
}

// Cursor returns the cursor position in characters.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the text length in characters.
func (b *Buffer) Len() int {
	return len(b.text)
}

// HistoryLen returns the number of remembered values.
func (b *Buffer) HistoryLen() int {
	return len(b.history)
}

// Clear empties the text and forgets all history.
func (b *Buffer) Clear() {
	b.text = b.text[:0]
	b.history = nil
	b.cursor = 0
}

// SetValue remembers the current text and replaces it with v.
// The cursor moves to the end of v.
func (b *Buffer) SetValue(v string) {
	b.history = append(b.history, string(b.text))
	if len(b.history) > MaxHistory {
		excess := len(b.history) - MaxHistory
		b.history = b.history[excess:]
	}
	b.replace(v)
}

// PopValue restores the most recently remembered text.
// With no history the buffer is cleared instead.
func (b *Buffer) PopValue() {
	if len(b.history) == 0 {
		b.replace("")
		return
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.replace(last)
}

func (b *Buffer) replace(v string) {
	b.text = []rune(v)
	b.cursor = len(b.text)
}

// AddChar inserts a single character at the cursor and advances the cursor.
// It returns ErrInvalidChar if s is not exactly one character long.
func (b *Buffer) AddChar(s string) error {
	if utf8.RuneCountInString(s) != 1 {
		return fmt.Errorf("add %q: %w", s, ErrInvalidChar)
	}
	r, _ := utf8.DecodeRuneInString(s)
	b.InsertRune(r)
	return nil
}

// InsertRune inserts r at the cursor and advances the cursor.
func (b *Buffer) InsertRune(r rune) {
	b.text = append(b.text, 0)
	copy(b.text[b.cursor+1:], b.text[b.cursor:])
	b.text[b.cursor] = r
	b.cursor++
}

// DeleteChar removes the character before the cursor.
// It does nothing when the buffer is empty or the cursor is at the start.
func (b *Buffer) DeleteChar() {
	if len(b.text) == 0 || b.cursor == 0 {
		return
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
}

// MoveLeft moves the cursor towards the start of the text.
func (b *Buffer) MoveLeft(g Granularity) {
	switch g {
	case Character:
		b.cursor--
	case Line:
		b.cursor = 0
	case Word:
		seenWord := false
		for {
			b.cursor--
			if b.cursor < 0 {
				break
			}
			if b.text[b.cursor] != ' ' {
				seenWord = true
			}
			if seenWord && b.text[b.cursor] == ' ' {
				b.cursor++
				break
			}
		}
	}
	b.clamp()
}

// MoveRight moves the cursor towards the end of the text.
func (b *Buffer) MoveRight(g Granularity) {
	switch g {
	case Character:
		b.cursor++
	case Line:
		b.cursor = len(b.text)
	case Word:
		seenSpace := false
		for {
			b.cursor++
			if b.cursor >= len(b.text) {
				break
			}
			if b.text[b.cursor] == ' ' {
				seenSpace = true
			}
			if seenSpace && b.text[b.cursor] != ' ' {
				break
			}
		}
	}
	b.clamp()
}

// clamp keeps the cursor within [0, len].
func (b *Buffer) clamp() {
	if b.cursor < 0 {
		b.cursor = 0
	}
	if b.cursor > len(b.text) {
		b.cursor = len(b.text)
	}
}
