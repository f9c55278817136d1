// Package store holds the ordered list of command records and persists it
// in the flat one-record-per-line format.
package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dshills/xxcmd/internal/record"
)

// Store errors.
var (
	// ErrDuplicate indicates a record with the same command and label exists.
	ErrDuplicate = errors.New("duplicate record")

	// ErrReadOnly indicates an attempt to modify a global record.
	ErrReadOnly = errors.New("record is read-only")

	// ErrNotFound indicates the record is not in the store.
	ErrNotFound = errors.New("record not found")
)

// Store is an ordered, in-memory list of records backed by a database file.
// Records are identified by their (command, label) pair; lookups are linear.
type Store struct {
	records []*record.Record
	path    string
}

// New creates an empty store that saves to path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the database file the store saves to.
func (s *Store) Path() string {
	return s.path
}

// Records returns the records in insertion order.
// Callers must not modify the returned slice.
func (s *Store) Records() []*record.Record {
	return s.records
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Reset removes all records.
func (s *Store) Reset() {
	s.records = nil
}

// index returns the position of the record identified like r, or -1.
func (s *Store) index(r *record.Record) int {
	return slices.IndexFunc(s.records, r.Same)
}

// Contains reports whether a record with the same identity is stored.
func (s *Store) Contains(r *record.Record) bool {
	return s.index(r) >= 0
}

// Add appends r unless a record with the same identity already exists.
func (s *Store) Add(r *record.Record) error {
	if r == nil {
		return ErrNotFound
	}
	if s.Contains(r) {
		return fmt.Errorf("add %q: %w", r.Encode(), ErrDuplicate)
	}
	s.records = append(s.records, r)
	return nil
}

// AddLine parses line and adds the resulting record.
func (s *Store) AddLine(line string, tags ...string) (*record.Record, error) {
	r := record.Parse(line, tags...)
	if err := s.Add(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Merge adds every non-blank line, skipping duplicates.
// It returns the number of records added.
func (s *Store) Merge(lines []string, tags ...string) int {
	added := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := s.AddLine(line, tags...); err == nil {
			added++
		}
	}
	return added
}

// Remove deletes the record identified like r.
func (s *Store) Remove(r *record.Record) error {
	i, err := s.writable(r)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	s.records = slices.Delete(s.records, i, i+1)
	return nil
}

// SetLabel changes the label of the stored record identified like r.
func (s *Store) SetLabel(r *record.Record, label string) error {
	i, err := s.writable(r)
	if err != nil {
		return fmt.Errorf("edit label: %w", err)
	}
	label = strings.TrimSpace(label)
	if s.collides(i, s.records[i].Command, label) {
		return fmt.Errorf("edit label: %w", ErrDuplicate)
	}
	s.records[i].Label = label
	return nil
}

// SetCommand changes the command of the stored record identified like r.
func (s *Store) SetCommand(r *record.Record, command string) error {
	i, err := s.writable(r)
	if err != nil {
		return fmt.Errorf("edit command: %w", err)
	}
	command = strings.TrimSpace(command)
	if s.collides(i, command, s.records[i].Label) {
		return fmt.Errorf("edit command: %w", ErrDuplicate)
	}
	s.records[i].Command = command
	return nil
}

// collides reports whether a record other than the one at i already has
// the given identity.
func (s *Store) collides(i int, command, label string) bool {
	j := s.index(&record.Record{Command: command, Label: label})
	return j >= 0 && j != i
}

// writable locates r and checks it may be modified.
func (s *Store) writable(r *record.Record) (int, error) {
	if r == nil {
		return -1, ErrNotFound
	}
	i := s.index(r)
	if i < 0 {
		return -1, ErrNotFound
	}
	if s.records[i].ReadOnly() {
		return -1, ErrReadOnly
	}
	return i, nil
}

// LoadFile merges the records stored in path, tagging each with tags.
// A missing file is not an error. It returns the number of records added.
func (s *Store) LoadFile(path string, tags ...string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading database %s: %w", path, err)
	}
	return s.Merge(SplitLines(string(data)), tags...), nil
}

// Load replaces the contents of the store with the database file.
func (s *Store) Load() (int, error) {
	s.Reset()
	return s.LoadFile(s.path)
}

// Save writes all writable records to the database file.
// Global records belong to the shared database and are never written.
func (s *Store) Save() error {
	if s.path == "" {
		return errors.New("save: no database file")
	}

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	for _, r := range s.records {
		if r.ReadOnly() {
			continue
		}
		fmt.Fprintln(w, r.Encode())
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".xxcmd-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	return nil
}

// SplitLines splits text on whichever line ending it uses and trims each line.
func SplitLines(text string) []string {
	var lines []string
	switch {
	case strings.Contains(text, "\r\n"):
		lines = strings.Split(text, "\r\n")
	case strings.Contains(text, "\n\r"):
		lines = strings.Split(text, "\n\r")
	case strings.Contains(text, "\n"):
		lines = strings.Split(text, "\n")
	case strings.Contains(text, "\r"):
		lines = strings.Split(text, "\r")
	default:
		lines = []string{text}
	}
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}
