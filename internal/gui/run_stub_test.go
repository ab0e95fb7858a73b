//go:build !production && !dev

package gui_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpyw/jsonval/internal/gui"
)

func TestRun_Unavailable(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, gui.Run(nil), gui.ErrUnavailable)
}
