// Package terminal queries properties of the terminal attached to stdout.
package terminal

import (
	"os"

	"golang.org/x/term"

	tomatoerrors "github.com/LuizRaizen/tomato/pkg/errors"
)

// Width returns the current column count of the terminal attached to
// stdout. It is queried per call, never cached, since the terminal can be
// resized between calls. When stdout is not a terminal (output redirected
// to a file or pipe) the size ioctl fails and a TerminalError is returned.
func Width() (int, error) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, tomatoerrors.NewTerminalError(err)
	}
	return width, nil
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
