// Package tui paints the storefront and decodes raw terminal input. It makes
// no decisions about workflow state; it renders read-only session snapshots.
package tui

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Terminal owns raw mode and the alternate screen for the session lifetime.
type Terminal struct {
	output   *termenv.Output
	fd       int
	oldState *term.State
}

// Open switches the tty to raw mode and enters the alternate screen.
func Open() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}

	output := termenv.NewOutput(os.Stdout)
	output.AltScreen()
	output.HideCursor()

	return &Terminal{
		output:   output,
		fd:       fd,
		oldState: oldState,
	}, nil
}

// Close restores the terminal. Safe to call once at shutdown.
func (t *Terminal) Close() {
	t.output.ShowCursor()
	t.output.ExitAltScreen()
	_ = term.Restore(t.fd, t.oldState)
}

// Draw repaints the whole screen with the given frame.
func (t *Terminal) Draw(frame string) {
	t.output.ClearScreen()
	t.output.MoveCursor(1, 1)
	// Raw mode needs explicit carriage returns.
	for i, line := range splitLines(frame) {
		if i > 0 {
			fmt.Fprint(t.output, "\r\n")
		}
		fmt.Fprint(t.output, line)
	}
}

// Size returns the current terminal dimensions, with a sane fallback.
func (t *Terminal) Size() (width, height int) {
	w, h, err := term.GetSize(t.fd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 30
	}
	return w, h
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
