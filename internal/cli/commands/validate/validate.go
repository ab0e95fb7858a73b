// Package validate provides the validate and beautify commands.
package validate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/jsonval/internal/cli/commands/internal"
	"github.com/mpyw/jsonval/internal/cli/output"
	"github.com/mpyw/jsonval/internal/cli/pager"
	"github.com/mpyw/jsonval/internal/form"
	"github.com/mpyw/jsonval/internal/parallel"
	"github.com/mpyw/jsonval/internal/pipeline"
)

// Runner executes the validate command.
type Runner struct {
	Pipeline form.Processor
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

// Options holds the options for the validate command.
type Options struct {
	Inputs []string
	Write  bool
	Diff   bool
	Quiet  bool
	Output output.Format
}

// JSONOutput represents one input in --output=json mode.
type JSONOutput struct {
	Name      string  `json:"name"`
	Valid     bool    `json:"valid"`
	Message   string  `json:"message"`
	ErrorKind string  `json:"error_kind,omitempty"` //nolint:tagliatelle // snake_case like the other keys
	Formatted *string `json:"formatted,omitempty"`
	Written   bool    `json:"written,omitempty"`
}

// errorKindIO marks inputs that could not be read or written.
const errorKindIO = "io"

type report struct {
	original string
	state    form.State
	result   pipeline.Result
	written  bool
}

// Command returns the validate command.
func Command() *cli.Command {
	return newCommand("validate", nil, "Validate JSON objects and arrays and rewrite them with indentation")
}

// BeautifyCommand returns the beautify command.
// It runs exactly the same operation as validate.
func BeautifyCommand() *cli.Command {
	return newCommand("beautify", []string{"fmt"}, "Beautify JSON objects and arrays (same as validate)")
}

func newCommand(name string, aliases []string, usage string) *cli.Command {
	return &cli.Command{
		Name:      name,
		Aliases:   aliases,
		Usage:     usage,
		ArgsUsage: "[FILE...]",
		Description: fmt.Sprintf(`Check that each input is a JSON object or array and print it indented.

Before parsing, escaped quotes (\") are unescaped, all line breaks are removed
and surrounding whitespace is trimmed, so JSON copied out of string literals or
log lines can be pasted as-is. With no FILE, or when FILE is -, standard input
is read. Multiple files are processed concurrently and reported in order.

The command exits with a non-zero status when any input is rejected.

EXAMPLES:
  jsonval %[1]s config.json                  Print config.json indented
  jsonval %[1]s -w a.json b.json             Rewrite files in place
  jsonval %[1]s --diff config.json           Show what formatting would change
  jsonval %[1]s --indent=4 < payload.json    Indent with 4 spaces
  jsonval %[1]s --output=json *.json         Report results as JSON`, name),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Overwrite each file with its formatted content",
			},
			&cli.BoolFlag{
				Name:  "diff",
				Usage: "Show a unified diff between the input and its formatted content",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Print only the status of each input",
			},
			&cli.StringFlag{
				Name:  "indent",
				Usage: `Indentation: number of spaces, "tab", or a literal (default from config, 2 spaces)`,
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format: text (default) or json",
			},
			&cli.BoolFlag{
				Name:  "no-pager",
				Usage: "Disable pager output",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	opts := Options{
		Inputs: cmd.Args().Slice(),
		Write:  cmd.Bool("write"),
		Diff:   cmd.Bool("diff"),
		Quiet:  cmd.Bool("quiet"),
		Output: output.ParseFormat(cmd.String("output")),
	}

	if opts.Write && opts.Diff {
		return errors.New("--write and --diff cannot be used together")
	}

	env, err := cliinternal.Load(cmd)
	if err != nil {
		return err
	}

	p, err := env.Pipeline(cmd.String("indent"))
	if err != nil {
		return err
	}

	noPager := cmd.Bool("no-pager") || !env.Config.Pager || opts.Quiet || opts.Write || opts.Output == output.FormatJSON

	return pager.WithPagerWriter(cmd.Root().Writer, noPager, func(w io.Writer) error {
		r := &Runner{
			Pipeline: p,
			Stdin:    cmd.Root().Reader,
			Stdout:   w,
			Stderr:   cliinternal.ErrWriter(cmd),
		}

		return r.Run(ctx, opts)
	})
}

// Run executes the validate command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	names := lo.Ternary(len(opts.Inputs) == 0, []string{"-"}, opts.Inputs)

	if lo.Count(names, "-") > 1 {
		return errors.New("standard input (-) can only be given once")
	}

	if opts.Write && lo.Contains(names, "-") {
		return errors.New("--write cannot be used with standard input")
	}

	results := parallel.Execute(ctx, names, func(_ context.Context, name string) (*report, error) {
		return r.process(name, opts.Write)
	})

	var (
		failed  int
		outputs []JSONOutput
	)

	for i, res := range results {
		label := cliinternal.Label(names[i])

		if res.Err != nil {
			failed++

			if opts.Output == output.FormatJSON {
				outputs = append(outputs, JSONOutput{Name: label, Message: res.Err.Error(), ErrorKind: errorKindIO})
			} else {
				output.Failed(r.Stderr, label, res.Err.Error())
			}

			continue
		}

		rep := res.Value
		if !rep.result.Valid() {
			failed++
		}

		if opts.Output == output.FormatJSON {
			outputs = append(outputs, rep.toJSON(label))

			continue
		}

		r.printText(label, rep, opts)
	}

	if opts.Output == output.FormatJSON {
		enc := json.NewEncoder(r.Stdout)
		enc.SetIndent("", "  ")

		if err := enc.Encode(outputs); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d input(s) rejected", cliinternal.ErrInvalidInput, failed, len(names))
	}

	return nil
}

func (r *Runner) process(name string, write bool) (*report, error) {
	original, err := cliinternal.ReadInput(name, r.Stdin, r.Stderr)
	if err != nil {
		return nil, err
	}

	f := form.New(r.Pipeline, original)
	rep := &report{
		original: original,
		result:   f.Validate(),
		state:    f.State,
	}

	content := f.Input + "\n"
	if write && rep.result.Valid() && content != original {
		if err := cliinternal.WriteFile(name, content); err != nil {
			return nil, err
		}

		rep.written = true
	}

	return rep, nil
}

func (r *Runner) printText(label string, rep *report, opts Options) {
	if !rep.result.Valid() {
		output.Failed(r.Stderr, label, rep.state.Output)

		return
	}

	switch {
	case opts.Diff:
		output.Print(r.Stdout, output.Diff(label, label+" (formatted)", withNewline(rep.original), rep.state.Input+"\n"))
	case opts.Write:
		if !rep.written {
			output.Warning(r.Stderr, "%s is already formatted; not rewritten", label)
		}
	case opts.Quiet:
	default:
		output.Println(r.Stdout, rep.state.Input)
	}

	output.Success(r.Stderr, "%s: %s", label, rep.state.Output)
}

func (rep *report) toJSON(label string) JSONOutput {
	out := JSONOutput{
		Name:    label,
		Valid:   rep.result.Valid(),
		Message: rep.state.Output,
		Written: rep.written,
	}

	if rep.result.Valid() {
		out.Formatted = lo.ToPtr(rep.state.Input)
	} else {
		out.ErrorKind = rep.result.Kind.String()
	}

	return out
}

func withNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}

	return s + "\n"
}
