package persist

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/extents/pkg/types"
)

const jsonlExt = ".jsonl"

// JSONL keeps one file per resource, one JSON record per line.
type JSONL struct {
	dir string
}

// NewJSONL returns a backend rooted at dir. An empty dir means the working
// directory.
func NewJSONL(dir string) *JSONL {
	if dir == "" {
		dir = "."
	}
	return &JSONL{dir: dir}
}

func (j *JSONL) Name() string { return types.BackendJSONL }

// Location maps a resource to its file. Plain names become
// <dir>/<resource>.jsonl; absolute paths and names containing a separator or
// the .jsonl extension are used as given.
func (j *JSONL) Location(resource string) string {
	if filepath.IsAbs(resource) || strings.ContainsRune(resource, filepath.Separator) ||
		strings.ContainsRune(resource, '/') || strings.HasSuffix(resource, jsonlExt) {
		return resource
	}
	return filepath.Join(j.dir, resource+jsonlExt)
}

func (j *JSONL) Write(resource string, records []json.RawMessage) error {
	path := j.Location(resource)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	return writeJSONL(path, records)
}

func (j *JSONL) Read(resource string) ([]json.RawMessage, error) {
	records, err := readJSONL(j.Location(resource))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return records, err
}

func (j *JSONL) Close() error { return nil }

// readJSONL returns each non-empty, well-formed line of path. Malformed lines
// are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL replaces path atomically: temp file, fsync, rename.
func writeJSONL(path string, records []json.RawMessage) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	fail := func(step string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", step, err)
	}

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return fail("writing record", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fail("writing newline", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail("flushing buffer", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
