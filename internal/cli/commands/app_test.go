package commands_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcli "github.com/mpyw/jsonval/internal/cli/commands"
	"github.com/mpyw/jsonval/internal/form"
	"github.com/mpyw/jsonval/internal/pipeline"
)

func TestMakeApp(t *testing.T) {
	t.Parallel()

	app := appcli.MakeApp()
	assert.Equal(t, "jsonval", app.Name)

	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{"validate", "beautify", "edit"}, names)
}

func TestApp_CommandNotFound(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	app := appcli.MakeApp()
	app.Writer = stdout
	app.ErrWriter = stderr

	_ = app.Run(t.Context(), []string{"jsonval", "lint"})

	assert.Contains(t, stderr.String(), "Command not found: lint")
}

func TestRegisterGUI(t *testing.T) {
	t.Parallel()

	t.Run("runs GUI with configured pipeline", func(t *testing.T) {
		t.Parallel()

		cfg := filepath.Join(t.TempDir(), "config.ini")
		require.NoError(t, os.WriteFile(cfg, []byte("[format]\nindent = 3\n"), 0o600))

		var got form.Processor

		app := appcli.MakeApp()
		app.Writer = &bytes.Buffer{}
		app.ErrWriter = &bytes.Buffer{}
		appcli.RegisterGUI(app, func(p form.Processor) error {
			got = p

			return nil
		})

		require.NoError(t, app.Run(t.Context(), []string{"jsonval", "--config", cfg, "--gui"}))

		p, ok := got.(*pipeline.Pipeline)
		require.True(t, ok)
		assert.Equal(t, "   ", p.Indent)
		assert.Contains(t, app.Usage, "CLI/GUI")
	})

	t.Run("propagates GUI error", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("no display")

		app := appcli.MakeApp()
		app.Writer = &bytes.Buffer{}
		app.ErrWriter = &bytes.Buffer{}
		appcli.RegisterGUI(app, func(form.Processor) error { return wantErr })

		require.ErrorIs(t, app.Run(t.Context(), []string{"jsonval", "--gui"}), wantErr)
	})

	t.Run("without flag shows help", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		called := false

		app := appcli.MakeApp()
		app.Writer = stdout
		app.ErrWriter = &bytes.Buffer{}
		appcli.RegisterGUI(app, func(form.Processor) error {
			called = true

			return nil
		})

		require.NoError(t, app.Run(t.Context(), []string{"jsonval"}))
		assert.False(t, called)
		assert.Contains(t, stdout.String(), "validate")
	})
}
