// Package record defines the command records the launcher searches over,
// along with their one-line textual encoding.
package record

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// TagGlobal marks a record that came from the shared system database.
// Such records cannot be edited or deleted.
const TagGlobal = "global"

// Record is a remembered shell command with an optional label.
type Record struct {
	Command string
	Label   string
	Tags    []string
}

// New creates a record with the given fields. Both fields are trimmed.
func New(command, label string, tags ...string) *Record {
	return &Record{
		Command: strings.TrimSpace(command),
		Label:   strings.TrimSpace(label),
		Tags:    slices.Clone(tags),
	}
}

// Parse decodes a single line into a record, detecting a label in square
// brackets at the end or the start of the line.
func Parse(line string, tags ...string) *Record {
	command, label := splitLabel(strings.TrimSpace(line))
	return New(command, label, tags...)
}

// splitLabel separates a bracketed label from the command text.
// A trailing group wins over a leading one. Groups that contain further
// brackets are unbalanced and are left in the command.
func splitLabel(line string) (command, label string) {
	if strings.HasSuffix(line, "]") {
		open := strings.LastIndexByte(line, '[')
		if open >= 0 {
			inner := line[open+1 : len(line)-1]
			if !strings.ContainsAny(inner, "[]") {
				return line[:open], inner
			}
		}
	}
	if strings.HasPrefix(line, "[") {
		end := strings.IndexByte(line, ']')
		if end > 0 {
			inner := line[1:end]
			if !strings.ContainsAny(inner, "[]") {
				return line[end+1:], inner
			}
		}
	}
	return line, ""
}

// Encode returns the line form "<command> [<label>]".
// The brackets are always written so that a command which itself ends in a
// bracketed group survives a round trip.
func (r *Record) Encode() string {
	return fmt.Sprintf("%s [%s]", r.Command, r.Label)
}

// String returns the listing form "[label] command".
func (r *Record) String() string {
	return fmt.Sprintf("[%s] %s", r.Label, r.Command)
}

// SearchKey returns the case-folded "<label> <command>" string used for
// substring matching.
func (r *Record) SearchKey() string {
	return cases.Fold().String(r.Label + " " + r.Command)
}

// Same reports whether two records have the same identity.
func (r *Record) Same(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Command == other.Command && r.Label == other.Label
}

// HasTag reports whether the record carries tag.
func (r *Record) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// ReadOnly reports whether the record may not be modified.
func (r *Record) ReadOnly() bool {
	return r.HasTag(TagGlobal)
}
