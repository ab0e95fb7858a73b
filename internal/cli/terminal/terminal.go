// Package terminal provides terminal-related utilities.
package terminal

import (
	"io"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Fder is an interface for types that have a file descriptor.
type Fder interface {
	Fd() uintptr
}

// GetSize returns the terminal width and height for the given file descriptor.
// This is a variable to allow mocking in tests.
//
//nolint:gochecknoglobals // Required for test mocking
var GetSize = term.GetSize

// IsTTY checks if the file descriptor is a TTY.
// This is a variable to allow mocking in tests.
//
//nolint:gochecknoglobals // Required for test mocking
var IsTTY = isatty.IsTerminal

// IsTerminalWriter returns true if the given writer is a terminal.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(Fder)
	if !ok {
		return false
	}

	return IsTTY(f.Fd())
}

// IsTerminalReader returns true if the given reader is an interactive terminal.
// Used to avoid blocking on stdin when nothing is piped in.
func IsTerminalReader(r io.Reader) bool {
	f, ok := r.(Fder)
	if !ok {
		return false
	}

	return IsTTY(f.Fd())
}

// Height returns the terminal height for w, or 0 when it cannot be determined.
func Height(w io.Writer) int {
	f, ok := w.(Fder)
	if !ok || !IsTTY(f.Fd()) {
		return 0
	}

	_, height, err := GetSize(int(f.Fd()))
	if err != nil || height <= 0 {
		return 0
	}

	return height
}
