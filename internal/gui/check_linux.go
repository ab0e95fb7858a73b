//go:build (production || dev) && linux

package gui

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/samber/lo"
)

// ErrMissingGUILibs is returned when required GUI libraries are not installed.
var ErrMissingGUILibs = errors.New("GUI dependencies not found")

// requiredLibs are the shared objects the Wails webview links against.
//
//nolint:gochecknoglobals // Immutable list
var requiredLibs = []string{"libgtk-3", "libwebkit2gtk"}

// checkGUIDependencies verifies that required GUI libraries are available.
// Uses ldconfig to query the dynamic linker cache.
// If ldconfig is unavailable, skips the check and lets the runtime handle it.
func checkGUIDependencies() error {
	if _, err := exec.LookPath("ldconfig"); err != nil {
		return nil
	}

	cache, err := exec.Command("ldconfig", "-p").Output()
	if err != nil {
		return nil
	}

	if missing := missingLibs(string(cache)); len(missing) > 0 {
		return fmt.Errorf(`%w: %s

The GUI requires GTK3 and WebKit2GTK to be installed.
See: https://wails.io/docs/guides/linux-distro-support/

Alternatively, use the CLI without the --gui flag (jsonval validate)`, ErrMissingGUILibs, strings.Join(missing, ", "))
	}

	return nil
}

func missingLibs(cache string) []string {
	return lo.Reject(requiredLibs, func(lib string, _ int) bool {
		return strings.Contains(cache, lib)
	})
}
