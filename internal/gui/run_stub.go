//go:build !production && !dev

package gui

import (
	"errors"

	"github.com/mpyw/jsonval/internal/form"
)

// ErrUnavailable is returned by Run when the binary was built without GUI support.
var ErrUnavailable = errors.New("GUI is not available in this build. Rebuild with -tags production (or dev) to enable it")

// Run returns ErrUnavailable when GUI is not available in this build.
func Run(form.Processor) error {
	return ErrUnavailable
}
