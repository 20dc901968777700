package process

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"firefox", []string{"firefox"}},
		{"xterm -fa Mono -fs 12", []string{"xterm", "-fa", "Mono", "-fs", "12"}},
		{"  retroarch\t-L  core.so \n game.rom ", []string{"retroarch", "-L", "core.so", "game.rom"}},
		// quotes are not interpreted
		{`sh -c "echo hi"`, []string{"sh", "-c", `"echo`, `hi"`}},
	}

	for _, tt := range tests {
		got, err := SplitCommand(tt.in)
		if err != nil {
			t.Errorf("SplitCommand(%q) error: %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitCommand(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitCommand_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := SplitCommand(in); !errors.Is(err, ErrEmptyCommand) {
			t.Errorf("SplitCommand(%q) err = %v, want ErrEmptyCommand", in, err)
		}
	}
}
