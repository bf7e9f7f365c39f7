package log_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udoprog/nondestructive-sub000/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		"error":        {input: "error", want: slog.LevelError},
		"warn":         {input: "warn", want: slog.LevelWarn},
		"warning":      {input: "warning", want: slog.LevelWarn},
		"info":         {input: "info", want: slog.LevelInfo},
		"debug":        {input: "debug", want: slog.LevelDebug},
		"mixed case":   {input: "Info", want: slog.LevelInfo},
		"unrecognized": {input: "chatty", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.GetLevel(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, log.ErrUnknownLogLevel)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetFormat(t *testing.T) {
	t.Parallel()

	got, err := log.GetFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, log.FormatJSON, got)

	_, err = log.GetFormat("xml")
	require.ErrorIs(t, err, log.ErrUnknownLogFormat)
}

func TestNewHandlerWithStrings(t *testing.T) {
	t.Parallel()

	h, err := log.NewHandlerWithStrings(io.Discard, "debug", "json")
	require.NoError(t, err)
	require.NotNil(t, h)

	_, err = log.NewHandlerWithStrings(io.Discard, "nope", "json")
	require.ErrorIs(t, err, log.ErrInvalidArgument)
}
