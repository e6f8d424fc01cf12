package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/picross/game"
	"github.com/lixenwraith/picross/puzzle"
	"github.com/lixenwraith/picross/terminal"
	"github.com/lixenwraith/picross/terminal/termtest"
)

const heart = "v(3):\n1\n2\n1\n\nh(3):\n1 1\n3\n1\n"

// isolate points config at a missing file and disables audio and debug
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("PICROSS_CONFIG", filepath.Join(t.TempDir(), "none.toml"))
	t.Setenv("PICROSS_AUDIO_ENABLED", "false")
	t.Setenv("PICROSS_DEBUG", "")
}

func writePuzzle(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("Failed to write puzzle: %v", err)
	}
	return path
}

// fakeTerminal returns a factory handing out s and recording whether it was used
func fakeTerminal(s *termtest.Screen, opened *bool) driverFactory {
	return func() (terminal.Driver, error) {
		*opened = true
		return s, nil
	}
}

func TestRootArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"none", []string{}, errMissingPuzzle},
		{"two", []string{"a.txt", "b.txt"}, errTooManyArgs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opened := false
			cmd := newRootCmdWith(fakeTerminal(termtest.New(14, 8), &opened))
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			err := cmd.Execute()
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if opened {
				t.Error("Expected terminal untouched")
			}
		})
	}
}

func TestRootPlaysPuzzle(t *testing.T) {
	isolate(t)
	path := writePuzzle(t, heart)

	s := termtest.New(14, 8)
	s.Push(terminal.RuneEvent('z'), terminal.RuneEvent('q'))
	opened := false

	cmd := newRootCmdWith(fakeTerminal(s, &opened))
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !opened {
		t.Fatal("Expected terminal opened")
	}
	if got := s.Lines()[2]; got != " 1 1║██║  │  ┃" {
		t.Errorf("Expected filled first cell, got %q", got)
	}
	if s.Raw || !s.CursorVisible {
		t.Error("Expected terminal restored")
	}
}

func TestRunFailsBeforeTerminal(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		check func(error) bool
	}{
		{
			"missing file",
			func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.txt") },
			func(err error) bool { return errors.Is(err, os.ErrNotExist) },
		},
		{
			"malformed puzzle",
			func(t *testing.T) string { return writePuzzle(t, "v(2):\n1\n") },
			func(err error) bool { return errors.Is(err, puzzle.ErrFormat) },
		},
		{
			"empty puzzle",
			func(t *testing.T) string { return writePuzzle(t, "v(0):\n\nh(0):\n") },
			func(err error) bool { return errors.Is(err, game.ErrEmptyPuzzle) },
		},
		{
			"bad config",
			func(t *testing.T) string {
				cfg := filepath.Join(t.TempDir(), "config.toml")
				if err := os.WriteFile(cfg, []byte("[glyphs]\ncrossed = \"\"\n"), 0644); err != nil {
					t.Fatalf("Failed to write config: %v", err)
				}
				t.Setenv("PICROSS_CONFIG", cfg)
				return writePuzzle(t, heart)
			},
			func(err error) bool { return err != nil && strings.Contains(err.Error(), "glyphs") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := tt.setup(t)
			opened := false

			err := run(path, fakeTerminal(termtest.New(14, 8), &opened))
			if !tt.check(err) {
				t.Errorf("Unexpected error: %v", err)
			}
			if opened {
				t.Error("Expected terminal untouched")
			}
		})
	}
}

func TestRunPropagatesTerminalOpenError(t *testing.T) {
	isolate(t)
	path := writePuzzle(t, heart)
	boom := errors.New("no tty")

	err := run(path, func() (terminal.Driver, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Errorf("Expected no tty error, got %v", err)
	}
}

func TestErrorLoggerWritesMessage(t *testing.T) {
	var buf bytes.Buffer
	newErrorLogger(&buf).Error(errMissingPuzzle)

	out := buf.String()
	if !strings.Contains(out, "missing argument: path to puzzle file") {
		t.Errorf("Expected error message, got %q", out)
	}
	if !strings.Contains(out, "picross") {
		t.Errorf("Expected prefix, got %q", out)
	}
}
