//go:build production || dev

package gui

import (
	"embed"
)

// Assets contains the embedded frontend.
//
//go:embed all:frontend/dist
var Assets embed.FS
