// Package pipeline turns raw user text into either indented JSON or a diagnostic message.
//
// Process never returns an error and never panics: every failure is folded into
// an Invalid result so that front ends only have to render a string.
package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/mpyw/jsonval/internal/jsonutil"
)

// MessageNotContainer is reported when the sanitized text is not delimited by {} or [].
const MessageNotContainer = "Input is not a valid JSON object or array."

const (
	syntaxPrefix     = "Invalid or Incomplete JSON: "
	unexpectedPrefix = "An unexpected error occurred: "
)

// ErrorKind classifies why an input was rejected.
type ErrorKind int

const (
	// KindNone marks a successful result.
	KindNone ErrorKind = iota
	// KindSyntax covers malformed JSON and inputs failing the bracket pre-check.
	KindSyntax
	// KindUnexpected covers any other failure while parsing or serializing.
	KindUnexpected
)

// String returns the lower-case name of the kind ("" for KindNone).
func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindUnexpected:
		return "unexpected"
	default:
		return ""
	}
}

// Result is either Formatted (Kind == KindNone, Text set) or Invalid (Message set).
type Result struct {
	Text    string
	Message string
	Kind    ErrorKind
}

// Formatted returns a successful result carrying the formatted document.
func Formatted(text string) Result {
	return Result{Text: text}
}

// Invalid returns a failed result carrying a human-readable message.
func Invalid(kind ErrorKind, message string) Result {
	return Result{Message: message, Kind: kind}
}

// Valid reports whether the result is the Formatted variant.
func (r Result) Valid() bool {
	return r.Kind == KindNone
}

// Pipeline sanitizes, validates and re-indents JSON text.
// The zero value is ready to use.
type Pipeline struct {
	// Indent is the per-level indentation; empty means jsonutil.DefaultIndent.
	Indent string
	// Logger receives diagnostics; nil discards them.
	Logger *slog.Logger
}

// Process runs the pipeline over raw.
func (p *Pipeline) Process(raw string) (result Result) {
	logger := p.logger()
	logger.Debug("processing input", slog.String("input", raw))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("unexpected failure", slog.Any("panic", r))
			result = Invalid(KindUnexpected, unexpectedPrefix+fmt.Sprint(r))
		}
	}()

	text := jsonutil.Sanitize(raw)
	if !jsonutil.IsContainer(text) {
		logger.Warn("input rejected", slog.String("reason", MessageNotContainer))

		return Invalid(KindSyntax, MessageNotContainer)
	}

	formatted, err := jsonutil.Indent(text, lo.CoalesceOrEmpty(p.Indent, jsonutil.DefaultIndent))
	if err != nil {
		return p.fail(logger, err)
	}

	return Formatted(formatted)
}

func (p *Pipeline) fail(logger *slog.Logger, err error) Result {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		logger.Warn("invalid JSON", slog.String("error", syntaxErr.Error()), slog.Int64("offset", syntaxErr.Offset))

		return Invalid(KindSyntax, fmt.Sprintf("%s%s (at offset %d)", syntaxPrefix, syntaxErr.Error(), syntaxErr.Offset))
	}

	var utf8Err *jsonutil.UTF8Error
	if errors.As(err, &utf8Err) {
		logger.Warn("invalid JSON", slog.String("error", utf8Err.Error()), slog.Int64("offset", utf8Err.Offset))

		return Invalid(KindSyntax, fmt.Sprintf("%s%s (at offset %d)", syntaxPrefix, utf8Err.Error(), utf8Err.Offset))
	}

	logger.Error("unexpected failure", slog.Any("error", err))

	return Invalid(KindUnexpected, unexpectedPrefix+err.Error())
}

func (p *Pipeline) logger() *slog.Logger {
	if p == nil || p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return p.Logger
}

// Process runs a default Pipeline over raw.
func Process(raw string) Result {
	return (&Pipeline{}).Process(raw)
}
