// Package renderer draws the command console onto a character grid.
//
// Each frame is drawn in full from the controller state:
//
//	┌──────────────────────────────────────┐
//	│Search: que█                          │  prompt
//	├──────────────────────────────────────┤  separator (border only)
//	│List     ls -al                       │
//	│Disk     du -h .                      │  results
//	│                                      │
//	│     F1 Label  F2 Command  ...  Esc   │  footer
//	└──────────────────────────────────────┘
//
// The layout is recomputed on every draw so resizes between frames need no
// special handling. Flash shows a transient notice and blocks for the
// configured duration.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Draw(ctrl)
package renderer
