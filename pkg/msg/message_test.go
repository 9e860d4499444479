package msg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragdata/gobytes/pkg/errors"
	"github.com/ragdata/gobytes/pkg/msg"
)

func TestMessageRender(t *testing.T) {
	tests := []struct {
		name    string
		message msg.Message
		want    string
		wantErr error
	}{
		{
			name:    "plain text",
			message: msg.Message{Text: "hello"},
			want:    "hello",
		},
		{
			name:    "prefix and suffix",
			message: msg.Message{Text: "installed", Prefix: "pkg:", Suffix: "(cached)"},
			want:    "pkg: installed (cached)",
		},
		{
			name:    "prefix only",
			message: msg.Message{Text: "ready", Prefix: ">>"},
			want:    ">> ready",
		},
		{
			name:    "empty text",
			message: msg.Message{},
			wantErr: errors.ErrEmptyMessage,
		},
		{
			name:    "unknown color",
			message: msg.Message{Text: "hello", Color: "chartreuse"},
			wantErr: errors.ErrUnknownColor,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.message.Render(true)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMessageRules(t *testing.T) {
	t.Run("divider", func(t *testing.T) {
		got, err := msg.Message{Text: msg.TextDivider}.Render(true)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("=", 68), got)
	})

	t.Run("line", func(t *testing.T) {
		got, err := msg.Message{Text: msg.TextLine}.Render(true)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("-", 68), got)
	})

	t.Run("rules ignore prefix and suffix", func(t *testing.T) {
		got, err := msg.Message{Text: msg.TextLine, Prefix: "x", Suffix: "y"}.Render(true)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("-", 68), got)
	})
}

func TestMessageRenderNoColorKeepsText(t *testing.T) {
	// With color disabled the palette name must still validate, but the
	// rendered text carries no styling.
	got, err := msg.Message{Text: "done", Color: "green"}.Render(true)
	require.NoError(t, err)
	assert.Equal(t, "done", got)
}
