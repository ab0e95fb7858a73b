package pager

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		height  int
		content string
		want    bool
	}{
		{name: "unknown height", height: 0, content: "a\n", want: false},
		{name: "short", height: 10, content: "a\nb\n", want: true},
		{name: "no trailing newline", height: 3, content: "a\nb", want: true},
		{name: "exactly height", height: 2, content: "a\nb\n", want: false},
		{name: "too long", height: 2, content: "a\nb\nc\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fits(tt.height, tt.content))
		})
	}
}

func TestWithPagerWriter_NonTTY(t *testing.T) {
	t.Parallel()

	t.Run("writes directly", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := WithPagerWriter(&buf, false, func(w io.Writer) error {
			_, err := io.WriteString(w, "{}\n")

			return err
		})

		require.NoError(t, err)
		assert.Equal(t, "{}\n", buf.String())
	})

	t.Run("propagates error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		wantErr := errors.New("boom")
		err := WithPagerWriter(&buf, true, func(io.Writer) error { return wantErr })

		require.ErrorIs(t, err, wantErr)
	})
}
