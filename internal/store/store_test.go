package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/xxcmd/internal/record"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestStoreAddRejectsDuplicates(t *testing.T) {
	s := New("")
	if _, err := s.AddLine("[New Entry] ps"); err != nil {
		t.Fatalf("AddLine failed: %v", err)
	}
	_, err := s.AddLine("ps [New Entry]")
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 record, got %d", s.Len())
	}
	// Same command with a different label is a different record.
	if _, err := s.AddLine("ps [Other]"); err != nil {
		t.Errorf("expected distinct label to be accepted, got %v", err)
	}
}

func TestStoreRemove(t *testing.T) {
	s := New("")
	s.Merge([]string{"ls -al [List]", "du -h . [Disk]"})
	if err := s.Remove(record.New("ls -al", "List")); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if s.Len() != 1 || s.Records()[0].Command != "du -h ." {
		t.Errorf("unexpected records after remove: %v", s.Records())
	}
	if err := s.Remove(record.New("missing", "")); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := s.Remove(nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for nil, got %v", err)
	}
}

func TestStoreGlobalRecordsAreReadOnly(t *testing.T) {
	s := New("")
	g, err := s.AddLine("uptime [Load]", record.TagGlobal)
	if err != nil {
		t.Fatalf("AddLine failed: %v", err)
	}

	if err := s.Remove(g); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Remove: expected ErrReadOnly, got %v", err)
	}
	if err := s.SetLabel(g, "x"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("SetLabel: expected ErrReadOnly, got %v", err)
	}
	if err := s.SetCommand(g, "x"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("SetCommand: expected ErrReadOnly, got %v", err)
	}
	if s.Len() != 1 || g.Label != "Load" || g.Command != "uptime" {
		t.Errorf("global record was modified: %+v", g)
	}
}

func TestStoreSetLabelAndCommand(t *testing.T) {
	s := New("")
	r, _ := s.AddLine("ls [List]")
	if err := s.SetLabel(r, "  Listing "); err != nil {
		t.Fatalf("SetLabel failed: %v", err)
	}
	if r.Label != "Listing" {
		t.Errorf("expected trimmed label, got %q", r.Label)
	}
	if err := s.SetCommand(r, "ls -la"); err != nil {
		t.Fatalf("SetCommand failed: %v", err)
	}
	if r.Command != "ls -la" {
		t.Errorf("expected new command, got %q", r.Command)
	}

	s.AddLine("ls -la [Other]")
	if err := s.SetLabel(r, "Other"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("SetLabel: expected ErrDuplicate, got %v", err)
	}
	if err := s.SetCommand(r, "ls -la"); err != nil {
		t.Errorf("SetCommand to the same value should succeed, got %v", err)
	}
}

func TestStoreLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	db := writeFile(t, dir, "db",
		"ssh -i ~/.ssh/key.pem me@myhost.com [My Server]\n   du --max-depth-1 -h .\n\n")
	other := writeFile(t, dir, "db2", "ls -al [My Command]\r\n[Free] df -h\r\n")

	s := New(db)
	n, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 records, got %d", n)
	}
	if s.Records()[0].Command != "ssh -i ~/.ssh/key.pem me@myhost.com" {
		t.Errorf("unexpected first command %q", s.Records()[0].Command)
	}
	if s.Records()[1].Command != "du --max-depth-1 -h ." {
		t.Errorf("leading spaces should be trimmed, got %q", s.Records()[1].Command)
	}

	n, err = s.LoadFile(other)
	if err != nil || n != 2 {
		t.Fatalf("LoadFile: expected 2 records, got %d (%v)", n, err)
	}
	if s.Records()[2].Label != "My Command" {
		t.Errorf("unexpected label %q", s.Records()[2].Label)
	}

	s.Merge([]string{`[CPUs] cat /proc/cpuinfo | grep "model name" | sort | uniq -c`})
	s.Merge([]string{"uptime [Global]"}, record.TagGlobal)

	out := s.Path()
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	lines := SplitLines(string(data))
	// Trailing newline yields a final empty element.
	if len(lines) != 6 || lines[5] != "" {
		t.Fatalf("expected 5 saved records, got %q", lines)
	}
	if lines[4] != `cat /proc/cpuinfo | grep "model name" | sort | uniq -c [CPUs]` {
		t.Errorf("unexpected encoding %q", lines[4])
	}

	reloaded := New(out)
	if _, err := reloaded.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Len() != 5 {
		t.Errorf("expected 5 records after reload, got %d", reloaded.Len())
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing"))
	n, err := s.Load()
	if err != nil || n != 0 {
		t.Errorf("expected (0, nil) for a missing file, got (%d, %v)", n, err)
	}
}

func TestStoreSaveWithoutPath(t *testing.T) {
	if err := New("").Save(); err == nil {
		t.Error("expected an error saving without a path")
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a\r\nb", []string{"a", "b"}},
		{"a\n\rb", []string{"a", "b"}},
		{"a\nb", []string{"a", "b"}},
		{"a\rb", []string{"a", "b"}},
		{" single ", []string{"single"}},
	}
	for _, tt := range tests {
		got := SplitLines(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("SplitLines(%q) = %q, want %q", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitLines(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
