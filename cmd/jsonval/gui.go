//go:build production || dev

package main

import (
	"github.com/mpyw/jsonval/internal/cli/commands"
	"github.com/mpyw/jsonval/internal/gui"
)

func registerGUIFlag() {
	commands.RegisterGUI(commands.App, gui.Run)
}
