// Package jsonutil provides JSON sanitizing and formatting utilities.
//
// Formatting re-indents the original bytes instead of decoding into Go values,
// so object members keep their written order and numbers keep their literal form.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// DefaultIndent is the indentation used when none is configured.
const DefaultIndent = "  "

//nolint:gochecknoglobals // Immutable replacer initialized at package load
var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// Sanitize normalizes user-typed text before validation.
// Escaped quotes (\") become plain quotes, every CR and LF is removed
// (not only at the ends), and surrounding whitespace is trimmed.
func Sanitize(raw string) string {
	s := strings.ReplaceAll(raw, `\"`, `"`)
	s = lineBreaks.Replace(s)

	return strings.TrimSpace(s)
}

// IsContainer reports whether s is delimited like a JSON object or array.
// Only the first and last bytes are inspected; s must already be sanitized.
func IsContainer(s string) bool {
	return (strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")) ||
		(strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"))
}

// UTF8Error reports a byte sequence in a JSON text that is not valid UTF-8.
type UTF8Error struct {
	Offset int64 // byte offset of the first invalid sequence
}

func (e *UTF8Error) Error() string {
	return "invalid UTF-8 sequence in string"
}

// Indent validates s and returns it re-indented with the given indent string.
// Insignificant whitespace in s is discarded, so indenting an already indented
// document yields the same text. Syntax problems are reported as *json.SyntaxError
// and invalid UTF-8 as *UTF8Error.
//
// Escapes that Sanitize would read as an escaped quote are rewritten as \u escapes,
// so the result passes through Sanitize and Indent unchanged.
func Indent(s, indent string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", indent); err != nil {
		return "", err
	}

	if !utf8.ValidString(s) {
		return "", &UTF8Error{Offset: invalidUTF8Offset(s)}
	}

	return escapeQuotes(buf.String()), nil
}

// escapeQuotes rewrites \" as \u0022, and \\ right before a closing quote as \u005c.
// Backslashes only occur inside strings of valid JSON, always as escape pairs.
func escapeQuotes(s string) string {
	if !strings.Contains(s, `\"`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])

			continue
		}

		switch next := s[i+1]; {
		case next == '"':
			b.WriteString(`\u0022`)
		case next == '\\' && i+2 < len(s) && s[i+2] == '"':
			b.WriteString(`\u005c`)
		default:
			b.WriteByte(s[i])
			b.WriteByte(next)
		}

		i++
	}

	return b.String()
}

func invalidUTF8Offset(s string) int64 {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return int64(i)
		}

		i += size
	}

	return int64(len(s))
}
