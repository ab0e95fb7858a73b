//go:build (production || dev) && linux

package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingLibs(t *testing.T) {
	t.Parallel()

	assert.Empty(t, missingLibs("libgtk-3.so.0 => /usr/lib\nlibwebkit2gtk-4.0.so.37 => /usr/lib"))
	assert.Equal(t, []string{"libwebkit2gtk"}, missingLibs("libgtk-3.so.0 => /usr/lib"))
	assert.Equal(t, []string{"libgtk-3", "libwebkit2gtk"}, missingLibs(""))
}
