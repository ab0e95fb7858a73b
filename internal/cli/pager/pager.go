// Package pager provides terminal pager functionality for long outputs.
package pager

import (
	"bytes"
	"io"
	"strings"

	"github.com/walles/moor/v2/pkg/moor"

	"github.com/mpyw/jsonval/internal/cli/terminal"
)

// WithPagerWriter executes fn with pager support.
// If noPager is true or stdout is not a TTY, output goes directly to the provided writer.
// If the output fits within the terminal height, it's written directly without paging.
// Otherwise, output is displayed through moor pager.
func WithPagerWriter(stdout io.Writer, noPager bool, fn func(w io.Writer) error) error {
	if noPager || !terminal.IsTerminalWriter(stdout) {
		return fn(stdout)
	}

	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		// Flush what was produced so partial results are not lost.
		_, _ = stdout.Write(buf.Bytes())

		return err
	}

	if buf.Len() == 0 {
		return nil
	}

	if fits(terminal.Height(stdout), buf.String()) {
		_, err := stdout.Write(buf.Bytes())

		return err
	}

	return moor.PageFromString(buf.String(), moor.Options{})
}

// fits reports whether content fits within height lines, keeping one line for the prompt.
func fits(height int, content string) bool {
	if height <= 0 {
		return false
	}

	lines := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		lines++
	}

	return lines < height
}
