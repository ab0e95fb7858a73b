//go:build (production || dev) && darwin

package gui

import "github.com/wailsapp/wails/v2/pkg/options"

func applyPlatformOptions(_ *options.App) {
	// macOS: defaults are fine for a single-window form.
}
