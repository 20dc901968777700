package process

import (
	"errors"
	"strings"
)

var ErrEmptyCommand = errors.New("command is empty")

// SplitCommand breaks a command string into argv on runs of whitespace.
// Quotes and escapes are not interpreted.
func SplitCommand(command string) ([]string, error) {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	return argv, nil
}
