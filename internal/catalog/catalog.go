package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"voxpick/internal/fileutil"
)

// ErrNotFound indicates the catalog source file does not exist.
var ErrNotFound = errors.New("catalog source not found")

// Catalog maps record keys to records.
type Catalog map[string]*Record

// Load reads and decodes a catalog file. A missing file yields ErrNotFound.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Save writes the catalog as indented UTF-8 JSON without HTML escaping, so
// non-ASCII names and tags stay readable. The write is atomic.
func Save(path string, c Catalog) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	return nil
}

// Encode renders any catalog value in the repository's canonical JSON form:
// two-space indent, sorted keys, no HTML escaping.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}
