package commands

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/jsonval/internal/cli/commands/internal"
	"github.com/mpyw/jsonval/internal/form"
)

// RegisterGUI adds the --gui flag to app.
// "jsonval --gui" hands the configured pipeline to run; without the flag the previous root action applies.
func RegisterGUI(app *cli.Command, run func(form.Processor) error) {
	app.Flags = append(app.Flags, &cli.BoolFlag{
		Name:  "gui",
		Usage: "Launch GUI mode",
	})
	app.Usage = strings.Replace(app.Usage, "CLI", "CLI/GUI", 1)
	next := app.Action
	app.Action = func(ctx context.Context, cmd *cli.Command) error {
		if !cmd.Bool("gui") {
			return next(ctx, cmd)
		}

		env, err := cliinternal.Load(cmd)
		if err != nil {
			return err
		}

		p, err := env.Pipeline("")
		if err != nil {
			return err
		}

		env.Logger.Debug("launching GUI")

		return run(p)
	}
}
