//go:build production || dev

package gui

import (
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/mpyw/jsonval/internal/form"
)

// Run starts the GUI application.
func Run(p form.Processor) error {
	if err := checkGUIDependencies(); err != nil {
		return err
	}

	app := NewApp(p)

	opts := &options.App{
		Title:     "JSON Validator",
		Width:     800,
		Height:    600,
		MinWidth:  480,
		MinHeight: 360,
		AssetServer: &assetserver.Options{
			Assets: Assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		OnStartup:        app.Startup,
		Bind: []interface{}{
			app,
		},
	}
	applyPlatformOptions(opts)

	return wails.Run(opts)
}
