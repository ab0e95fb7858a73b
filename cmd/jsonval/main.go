package main

import (
	"context"
	"os"

	"github.com/mpyw/jsonval/internal/cli/commands"
	"github.com/mpyw/jsonval/internal/cli/output"
)

func main() {
	registerGUIFlag()

	if err := commands.App.Run(context.Background(), os.Args); err != nil {
		output.Error(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
