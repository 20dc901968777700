package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyCatalog = errors.New("catalog contains no applications")

// AppEntry describes one launchable application as listed in apps.json
type AppEntry struct {
	Name     string `json:"name"`
	IconPath string `json:"icon"`
	Command  string `json:"command"`
}

// Validate reports the first missing field of the entry.
func (e AppEntry) Validate() error {
	switch {
	case strings.TrimSpace(e.Name) == "":
		return errors.New("name is empty")
	case strings.TrimSpace(e.IconPath) == "":
		return fmt.Errorf("%s: icon is empty", e.Name)
	case strings.TrimSpace(e.Command) == "":
		return fmt.Errorf("%s: command is empty", e.Name)
	}
	return nil
}
