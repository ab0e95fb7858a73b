package editor_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/jsonval/internal/cli/editor"
)

const goosWindows = "windows"

func TestOpen_ModifiesContent(t *testing.T) {
	if runtime.GOOS == goosWindows {
		t.Skip("Skipping on Windows - requires Unix shell")
	}

	tmpDir := t.TempDir()
	scriptPath := filepath.Join(tmpDir, "test-editor.sh")
	script := `#!/bin/sh
printf '{"edited":true}' > "$1"
`
	require.NoError(t, os.WriteFile(scriptPath, []byte(script), 0o755))

	t.Setenv("EDITOR", scriptPath)
	t.Setenv("VISUAL", "")

	result, err := editor.Open(t.Context(), `{"edited":false}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"edited":true}`, result)
}

func TestOpen_ReturnsUnmodifiedContent(t *testing.T) {
	if runtime.GOOS == goosWindows {
		t.Skip("Skipping on Windows - requires Unix shell")
	}

	t.Setenv("EDITOR", "true")
	t.Setenv("VISUAL", "")

	result, err := editor.Open(t.Context(), "[1,2]\n")
	require.NoError(t, err)
	assert.Equal(t, "[1,2]\n", result)
}

func TestOpen_VisualTakesPrecedence(t *testing.T) {
	if runtime.GOOS == goosWindows {
		t.Skip("Skipping on Windows - requires Unix shell")
	}

	t.Setenv("VISUAL", "true")
	t.Setenv("EDITOR", "false")

	_, err := editor.Open(t.Context(), "{}")
	require.NoError(t, err)
}

func TestOpen_EditorFails(t *testing.T) {
	if runtime.GOOS == goosWindows {
		t.Skip("Skipping on Windows - requires Unix shell")
	}

	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "false")

	_, err := editor.Open(t.Context(), "{}")
	require.Error(t, err)
}
