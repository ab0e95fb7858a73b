// Package output handles formatted output for the CLI.
//
// This package provides utilities for:
//   - Status lines for each processed input (Success, Failed)
//   - Unified diff generation between original and formatted text
//   - User feedback messages (Warning, Hint, Error) with TTY-aware coloring
//
// Colors are automatically disabled when output is not a TTY, ensuring
// clean output when piped or redirected.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/mpyw/jsonval/internal/cli/colors"
)

// Format represents the output format.
type Format string

const (
	// FormatText is the default human-readable text format.
	FormatText Format = "text"
	// FormatJSON outputs structured JSON.
	FormatJSON Format = "json"
)

// ParseFormat parses a format string and returns the Format.
// Returns FormatText for empty string or invalid values.
func ParseFormat(s string) Format {
	switch s {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Warning prints a warning message in yellow.
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Warning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(w, colors.Warning("Warning: "+msg))
}

// Hint prints a hint message in cyan.
// Example: "Hint: Reading JSON from stdin; press Ctrl-D to finish".
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Hint(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(w, colors.Info("Hint: "+msg))
}

// Error prints an error message in red.
// Used by main for errors returned from commands.
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Error(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(w, colors.Error("Error: "+msg))
}

// Success prints a success message with green checkmark.
// Example: "✓ config.json: Valid JSON formatted successfully.".
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Success(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n", colors.Success("✓"), msg)
}

// Failed prints a failure line for the named input.
// Example: "Failed config.json: Input is not a valid JSON object or array.".
func Failed(w io.Writer, name, message string) {
	_, _ = fmt.Fprintf(w, "%s %s: %s\n", colors.Failed("Failed"), name, message)
}

// Diff generates a unified diff between two strings with ANSI colors.
func Diff(oldName, newName, oldContent, newContent string) string {
	return colorDiff(DiffRaw(oldName, newName, oldContent, newContent))
}

// DiffRaw generates a unified diff between two strings without colors.
// Returns an empty string when the contents are equal.
func DiffRaw(oldName, newName, oldContent, newContent string) string {
	edits := udiff.Strings(oldContent, newContent)
	unified, err := udiff.ToUnifiedDiff(oldName, newName, oldContent, edits, udiff.DefaultContextLines)
	if err != nil {
		return ""
	}

	return unified.String()
}

func colorDiff(diff string) string {
	if diff == "" {
		return ""
	}

	var result strings.Builder

	for line := range strings.SplitSeq(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++"):
			result.WriteString(colors.DiffHeader(line))
		case strings.HasPrefix(line, "-"):
			result.WriteString(colors.DiffRemoved(line))
		case strings.HasPrefix(line, "+"):
			result.WriteString(colors.DiffAdded(line))
		case strings.HasPrefix(line, "@@"):
			result.WriteString(colors.DiffHunk(line))
		default:
			result.WriteString(line)
		}

		result.WriteString("\n")
	}

	return result.String()
}

// Print writes a message to the writer without a newline.
func Print(w io.Writer, msg string) {
	_, _ = fmt.Fprint(w, msg)
}

// Println writes a message to the writer with a newline.
func Println(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, msg)
}
