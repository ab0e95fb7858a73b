package internal_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/jsonval/internal/cli/commands/internal"
	"github.com/mpyw/jsonval/internal/config"
)

func TestCommandNotFound(t *testing.T) {
	t.Parallel()

	t.Run("outputs command not found message", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		cmd := &cli.Command{
			Name:      "test",
			Writer:    stdout,
			ErrWriter: stderr,
			Commands: []*cli.Command{
				{Name: "subcommand", Usage: "A valid subcommand"},
			},
		}

		cliinternal.CommandNotFound(context.Background(), cmd, "unknown-cmd")

		output := stdout.String() + stderr.String()
		assert.Contains(t, output, "Command not found: unknown-cmd")
	})

	t.Run("falls back to Writer when ErrWriter is nil", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		cmd := &cli.Command{
			Name:   "test",
			Writer: stdout,
		}

		cliinternal.CommandNotFound(context.Background(), cmd, "foo")

		assert.Contains(t, stdout.String(), "Command not found: foo")
	})
}

func TestGlobalFlags_Fresh(t *testing.T) {
	t.Parallel()

	a := cliinternal.GlobalFlags()
	b := cliinternal.GlobalFlags()

	require.Len(t, a, 3)
	require.Len(t, b, 3)

	for i := range a {
		assert.NotSame(t, a[i], b[i])
	}
}

func TestEnv_Pipeline(t *testing.T) {
	t.Parallel()

	env := &cliinternal.Env{Config: config.Default()}

	t.Run("config indent", func(t *testing.T) {
		t.Parallel()

		p, err := env.Pipeline("")
		require.NoError(t, err)
		assert.Equal(t, "  ", p.Indent)
	})

	t.Run("flag overrides config", func(t *testing.T) {
		t.Parallel()

		p, err := env.Pipeline("tab")
		require.NoError(t, err)
		assert.Equal(t, "\t", p.Indent)
	})

	t.Run("invalid flag", func(t *testing.T) {
		t.Parallel()

		_, err := env.Pipeline("wide")
		require.ErrorIs(t, err, config.ErrInvalidIndent)
		assert.Contains(t, err.Error(), "--indent")
	})
}

func TestReadInput(t *testing.T) {
	t.Parallel()

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "in.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o600))

		got, err := cliinternal.ReadInput(path, nil, nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, got)
	})

	t.Run("stdin", func(t *testing.T) {
		t.Parallel()

		var stderr bytes.Buffer

		got, err := cliinternal.ReadInput("-", strings.NewReader("[1]"), &stderr)
		require.NoError(t, err)
		assert.Equal(t, "[1]", got)
		assert.Empty(t, stderr.String())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := cliinternal.ReadInput(filepath.Join(t.TempDir(), "none.json"), nil, nil)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("keeps permissions", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

		require.NoError(t, cliinternal.WriteFile(path, "new"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("creates missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "created.json")
		require.NoError(t, cliinternal.WriteFile(path, "{}"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})

	t.Run("unwritable location", func(t *testing.T) {
		t.Parallel()

		err := cliinternal.WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir.json"), "{}")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write")
	})
}

func TestLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cliinternal.StdinLabel, cliinternal.Label("-"))
	assert.Equal(t, "a.json", cliinternal.Label("a.json"))
}
