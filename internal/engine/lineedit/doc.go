// Package lineedit provides a single-line, cursor-addressable text buffer
// used for the search prompt and the record editors.
//
// The buffer stores its text as runes so that cursor arithmetic is always
// measured in characters, never bytes. Cursor motion is available at three
// granularities:
//
//   - Character: one rune left or right
//   - Line: jump to the start or end of the text
//   - Word: jump to the start of the previous or next space-separated word
//
// Every replacement of the whole value via SetValue is remembered in a
// bounded history (MaxHistory entries, oldest evicted first) so that a
// prior value can be restored with PopValue. The search prompt relies on
// this to get its query back after an edit mode has borrowed the buffer.
//
// Basic usage:
//
//	buf := lineedit.New()
//	buf.SetValue("git status")
//	buf.MoveLeft(lineedit.Word) // cursor before "status"
//	_ = buf.AddChar("x")        // "git xstatus"
//	buf.PopValue()              // back to ""
//
// A Buffer is not safe for concurrent use.
package lineedit
