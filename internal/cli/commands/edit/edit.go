// Package edit provides the edit command.
package edit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/jsonval/internal/cli/commands/internal"
	"github.com/mpyw/jsonval/internal/cli/editor"
	"github.com/mpyw/jsonval/internal/cli/output"
	"github.com/mpyw/jsonval/internal/form"
)

// editorLabel names the input when no file is given.
const editorLabel = "<editor>"

// Runner executes the edit command.
type Runner struct {
	Pipeline form.Processor
	Open     editor.OpenFunc
	Stdout   io.Writer
	Stderr   io.Writer
}

// Options holds the options for the edit command.
type Options struct {
	File  string
	Write bool
}

// Command returns the edit command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Type or paste JSON in an editor, then validate and beautify it",
		ArgsUsage: "[FILE]",
		Description: `Open $VISUAL or $EDITOR with the content of FILE (or an empty buffer),
then validate and beautify what was saved.

The formatted result is printed to standard output. With --write it is saved
back to FILE instead, creating FILE if it does not exist.

EXAMPLES:
  jsonval edit                       Compose JSON from scratch
  jsonval edit -w config.json        Edit config.json and save it formatted`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Save the formatted result to FILE",
			},
			&cli.StringFlag{
				Name:  "indent",
				Usage: `Indentation: number of spaces, "tab", or a literal (default from config, 2 spaces)`,
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	opts := Options{
		File:  cmd.Args().First(),
		Write: cmd.Bool("write"),
	}

	if opts.Write && opts.File == "" {
		return errors.New("usage: jsonval edit --write <FILE>")
	}

	env, err := cliinternal.Load(cmd)
	if err != nil {
		return err
	}

	p, err := env.Pipeline(cmd.String("indent"))
	if err != nil {
		return err
	}

	r := &Runner{
		Pipeline: p,
		Open:     editor.Open,
		Stdout:   cmd.Root().Writer,
		Stderr:   cliinternal.ErrWriter(cmd),
	}

	return r.Run(ctx, opts)
}

// Run executes the edit command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	var content string

	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		switch {
		case err == nil:
			content = string(data)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return err
		}
	}

	edited, err := r.Open(ctx, content)
	if err != nil {
		return fmt.Errorf("failed to edit: %w", err)
	}

	label := lo.CoalesceOrEmpty(opts.File, editorLabel)

	f := form.New(r.Pipeline, edited)
	if result := f.Validate(); !result.Valid() {
		output.Failed(r.Stderr, label, f.Output)

		return fmt.Errorf("%w: %s", cliinternal.ErrInvalidInput, label)
	}

	if opts.Write {
		if err := cliinternal.WriteFile(opts.File, f.Input+"\n"); err != nil {
			return err
		}
	} else {
		output.Println(r.Stdout, f.Input)
	}

	output.Success(r.Stderr, "%s: %s", label, f.Output)

	return nil
}
