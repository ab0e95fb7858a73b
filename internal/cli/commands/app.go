// Package commands provides the command-line interface for jsonval.
package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/jsonval/internal/cli/commands/internal"
	"github.com/mpyw/jsonval/internal/cli/commands/edit"
	"github.com/mpyw/jsonval/internal/cli/commands/validate"
)

// MakeApp creates a new CLI application instance.
func MakeApp() *cli.Command {
	return &cli.Command{
		Name:    "jsonval",
		Usage:   "Validate and beautify JSON objects and arrays from the CLI",
		Version: "0.1.0",
		Flags:   cliinternal.GlobalFlags(),
		Commands: []*cli.Command{
			validate.Command(),
			validate.BeautifyCommand(),
			edit.Command(),
		},
		Action:          rootAction,
		CommandNotFound: cliinternal.CommandNotFound,
	}
}

// rootAction runs when no subcommand matched.
func rootAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		cliinternal.CommandNotFound(ctx, cmd, cmd.Args().First())

		return nil
	}

	return cli.ShowAppHelp(cmd)
}

// App is the main CLI application.
var App = MakeApp()
