// Package internal provides shared utilities for CLI commands.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/jsonval/internal/cli/colors"
	"github.com/mpyw/jsonval/internal/cli/output"
	"github.com/mpyw/jsonval/internal/cli/terminal"
	"github.com/mpyw/jsonval/internal/config"
	"github.com/mpyw/jsonval/internal/logging"
	"github.com/mpyw/jsonval/internal/pipeline"
)

// Global flag names.
const (
	FlagConfig    = "config"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
)

// ErrInvalidInput is returned after all inputs were reported when at least one was rejected.
var ErrInvalidInput = errors.New("invalid JSON input")

// GlobalFlags returns the flags shared by every command.
// A new slice is built on each call so that separate apps never share flag state.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  FlagConfig,
			Usage: "Path to config file (default: $JSONVAL_CONFIG or $XDG_CONFIG_HOME/jsonval/config.ini)",
		},
		&cli.StringFlag{
			Name:  FlagLogLevel,
			Usage: "Log level: debug, info, warn or error",
		},
		&cli.StringFlag{
			Name:  FlagLogFormat,
			Usage: "Log format: text or json",
		},
	}
}

// CommandNotFound is a shared handler for unknown commands.
// It displays the help and an error message.
func CommandNotFound(_ context.Context, cmd *cli.Command, command string) {
	_ = cli.ShowAppHelp(cmd)
	_, _ = fmt.Fprintf(ErrWriter(cmd), "\nCommand not found: %s\n", command)
}

// ErrWriter returns the writer for diagnostics, falling back to the standard writer.
func ErrWriter(cmd *cli.Command) io.Writer {
	return lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
}

// Env carries the settings resolved for a single command invocation.
type Env struct {
	Config config.Config
	Logger *slog.Logger
}

// Load resolves config file, environment and global flags for cmd.
func Load(cmd *cli.Command) (*Env, error) {
	root := cmd.Root()

	cfg, err := config.Load(root.String(FlagConfig))
	if err != nil {
		return nil, err
	}

	cfg.LogLevel = lo.CoalesceOrEmpty(root.String(FlagLogLevel), cfg.LogLevel)
	cfg.LogFormat = lo.CoalesceOrEmpty(root.String(FlagLogFormat), cfg.LogFormat)

	colors.SetMode(cfg.Color)

	return &Env{
		Config: cfg,
		Logger: logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat}, ErrWriter(cmd)),
	}, nil
}

// Pipeline builds a pipeline; a non-empty indent flag value overrides the config.
func (e *Env) Pipeline(indentFlag string) (*pipeline.Pipeline, error) {
	indent := e.Config.Indent

	if indentFlag != "" {
		parsed, err := config.ParseIndent(indentFlag)
		if err != nil {
			return nil, fmt.Errorf("--indent: %w", err)
		}

		indent = parsed
	}

	return &pipeline.Pipeline{Indent: indent, Logger: e.Logger}, nil
}

// StdinLabel is how standard input is named in messages.
const StdinLabel = "<stdin>"

// ReadInput reads the named file, or stdin when name is "-".
// An interactive stdin gets a hint so the user knows input is awaited.
func ReadInput(name string, stdin io.Reader, stderr io.Writer) (string, error) {
	if name != "-" {
		data, err := os.ReadFile(name)

		return string(data), err
	}

	if terminal.IsTerminalReader(stdin) {
		output.Hint(stderr, "Reading JSON from stdin; press Ctrl-D to finish")
	}

	data, err := io.ReadAll(stdin)

	return string(data), err
}

// WriteFile replaces the content of name, keeping its permissions.
// Missing files are created with 0644.
func WriteFile(name, content string) error {
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(name); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(name, []byte(content), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}

// Label returns the display name for an input argument.
func Label(name string) string {
	return lo.Ternary(name == "-", StdinLabel, name)
}
