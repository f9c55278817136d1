package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/xxcmd/internal/record"
)

// DefaultFetchTimeout bounds a single remote import.
const DefaultFetchTimeout = 30 * time.Second

// maxImportSize caps the amount of data read from an import source.
const maxImportSize = 4 << 20

// yamlDocument is the YAML import format.
//
//	commands:
//	  - command: ls -al
//	    label: List files
//	    tags: [fs]
type yamlDocument struct {
	Commands []yamlCommand `yaml:"commands"`
}

type yamlCommand struct {
	Command string   `yaml:"command"`
	Label   string   `yaml:"label"`
	Tags    []string `yaml:"tags"`
}

// Importer fetches record lists from files and URLs.
type Importer struct {
	client *http.Client
}

// NewImporter creates an importer. A nil client uses a client with
// DefaultFetchTimeout.
func NewImporter(client *http.Client) *Importer {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return &Importer{client: client}
}

// Fetch reads the records published at src. Supported sources are
// http(s) URLs, file:// URLs and plain paths. Sources whose path ends in
// .yaml or .yml are decoded as YAML, everything else as record lines.
func (im *Importer) Fetch(ctx context.Context, src string) ([]*record.Record, error) {
	data, name, err := im.read(ctx, src)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return decodeYAML(src, data)
	}

	var records []*record.Record
	for _, line := range SplitLines(string(data)) {
		if line == "" {
			continue
		}
		records = append(records, record.Parse(line))
	}
	return records, nil
}

// read returns the raw bytes of src and the path used for format detection.
func (im *Importer) read(ctx context.Context, src string) ([]byte, string, error) {
	u, err := url.Parse(src)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// Plain path (a one-letter scheme is a Windows drive).
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, "", fmt.Errorf("import %s: %w", src, err)
		}
		return data, src, nil
	}

	switch u.Scheme {
	case "file":
		data, err := os.ReadFile(u.Path)
		if err != nil {
			return nil, "", fmt.Errorf("import %s: %w", src, err)
		}
		return data, u.Path, nil
	case "http", "https":
		data, err := im.get(ctx, u.String())
		if err != nil {
			return nil, "", err
		}
		return data, u.Path, nil
	default:
		return nil, "", fmt.Errorf("import %s: unsupported scheme %q", src, u.Scheme)
	}
}

func (im *Importer) get(ctx context.Context, src string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", src, err)
	}
	resp, err := im.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", src, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("import %s: unexpected status %s", src, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImportSize))
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", src, err)
	}
	return data, nil
}

func decodeYAML(src string, data []byte) ([]*record.Record, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("import %s: %w", src, err)
	}
	records := make([]*record.Record, 0, len(doc.Commands))
	for _, c := range doc.Commands {
		if strings.TrimSpace(c.Command) == "" && strings.TrimSpace(c.Label) == "" {
			continue
		}
		// Imported records join the user database, so they are never global.
		tags := slices.DeleteFunc(slices.Clone(c.Tags), func(t string) bool {
			return t == record.TagGlobal
		})
		records = append(records, record.New(c.Command, c.Label, tags...))
	}
	return records, nil
}

// Import merges the records published at src into the store and saves it.
// Duplicates are skipped. It returns the number of records added.
func (s *Store) Import(ctx context.Context, im *Importer, src string) (int, error) {
	records, err := im.Fetch(ctx, src)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, r := range records {
		if err := s.Add(r); err == nil {
			added++
		}
	}
	if added == 0 {
		return 0, nil
	}
	if err := s.Save(); err != nil {
		return added, err
	}
	return added, nil
}
