package models

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCatalog(t *testing.T) {
	input := `[
		{"name": "Terminal", "icon": "icons/term.png", "command": "xterm -fa Mono"},
		{"name": "Browser", "icon": "/usr/share/icons/web.png", "command": "firefox"}
	]`

	entries, err := ParseCatalog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCatalog failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	want := AppEntry{Name: "Terminal", IconPath: "icons/term.png", Command: "xterm -fa Mono"}
	if entries[0] != want {
		t.Errorf("entries[0] = %+v, want %+v", entries[0], want)
	}
}

func TestParseCatalog_IgnoresExtraKeys(t *testing.T) {
	input := `[{"name": "A", "icon": "a.png", "command": "a", "comment": "x", "tags": ["dev"]}]`

	entries, err := ParseCatalog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCatalog failed: %v", err)
	}
	want := AppEntry{Name: "A", IconPath: "a.png", Command: "a"}
	if len(entries) != 1 || entries[0] != want {
		t.Errorf("entries = %+v, want [%+v]", entries, want)
	}
}

func TestParseCatalog_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{name: broken`},
		{"object instead of array", `{"name": "x", "icon": "a.png", "command": "x"}`},
		{"missing command", `[{"name": "x", "icon": "a.png"}]`},
		{"missing icon", `[{"name": "x", "command": "x"}]`},
		{"blank name", `[{"name": "  ", "icon": "a.png", "command": "x"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCatalog(strings.NewReader(tt.input)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseCatalog_Empty(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader(`[]`))
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestLoadCatalog_ResolvesRelativeIcons(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apps.json")
	content := `[
		{"name": "Files", "icon": "files.png", "command": "nautilus"},
		{"name": "Web", "icon": "/abs/web.png", "command": "firefox"}
	]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	entries, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if got, want := entries[0].IconPath, filepath.Join(dir, "files.png"); got != want {
		t.Errorf("relative icon = %q, want %q", got, want)
	}
	if got := entries[1].IconPath; got != "/abs/web.png" {
		t.Errorf("absolute icon = %q, want unchanged", got)
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}
