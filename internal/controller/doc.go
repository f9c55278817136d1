// Package controller implements the search, select and edit state machine
// behind the command console.
//
// A Controller owns the input line, the current mode, the filtered and
// sorted result view, and the selection index. Key events are looked up
// in the active mode's binding table; unbound keys edit the input line.
// Record mutations go through a RecordStore and are persisted after each
// change. Rejected mutations (read-only or duplicate records) are reported
// through a Notifier rather than returned as errors.
package controller
