package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/dshills/xxcmd/internal/record"
)

const sampleDB = "ssh me@myhost.com [ My Server ]\n  du -h . \n"

func TestImporterFetchPlainPath(t *testing.T) {
	p := writeFile(t, t.TempDir(), "db", sampleDB)

	records, err := NewImporter(nil).Fetch(context.Background(), p)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Label != "My Server" || records[1].Command != "du -h ." {
		t.Errorf("fields not trimmed: %+v %+v", records[0], records[1])
	}
}

func TestImporterFetchFileURL(t *testing.T) {
	p := writeFile(t, t.TempDir(), "db", sampleDB)

	records, err := NewImporter(nil).Fetch(context.Background(), "file://"+p)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records))
	}
}

func TestImporterFetchYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "commands.yaml", `
commands:
  - command: ls -al
    label: List
    tags: [fs, global]
  - command: git status
  - label: ""
`)

	records, err := NewImporter(nil).Fetch(context.Background(), p)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Label != "List" || !records[0].HasTag("fs") {
		t.Errorf("unexpected first record %+v", records[0])
	}
	if records[0].ReadOnly() {
		t.Error("imported records must not be global")
	}
}

func TestImporterFetchHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/db":
			w.Write([]byte("top [Show Processes]\r\nfree -m\r\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	im := NewImporter(srv.Client())
	records, err := im.Fetch(context.Background(), srv.URL+"/db")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(records) != 2 || records[0].Label != "Show Processes" {
		t.Errorf("unexpected records %+v", records)
	}

	if _, err := im.Fetch(context.Background(), srv.URL+"/missing"); err == nil {
		t.Error("expected an error for a 404 response")
	}
}

func TestImporterRejectsUnknownScheme(t *testing.T) {
	if _, err := NewImporter(nil).Fetch(context.Background(), "ftp://example.com/db"); err == nil {
		t.Error("expected an error for ftp://")
	}
}

func TestStoreImportMergesAndSaves(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "src", sampleDB)

	s := New(filepath.Join(dir, "db"))
	s.Add(record.New("du -h .", ""))

	n, err := s.Import(context.Background(), NewImporter(nil), src)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 new record (duplicate skipped), got %d", n)
	}

	reloaded := New(s.Path())
	if _, err := reloaded.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Len() != 2 {
		t.Errorf("expected saved database with 2 records, got %d", reloaded.Len())
	}
}
