package models

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LoadCatalog reads the application list once at startup. Relative icon
// paths resolve against the directory holding the catalog file.
func LoadCatalog(path string) ([]AppEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	entries, err := ParseCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	base := filepath.Dir(path)
	for i := range entries {
		if !filepath.IsAbs(entries[i].IconPath) {
			entries[i].IconPath = filepath.Join(base, entries[i].IconPath)
		}
	}
	return entries, nil
}

// ParseCatalog decodes a JSON array of {name, icon, command} objects.
// Other keys on an entry are ignored.
func ParseCatalog(r io.Reader) ([]AppEntry, error) {
	var entries []AppEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return entries, nil
}
