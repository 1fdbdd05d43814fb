package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/schemacheck/pkg/log"
)

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		wantErr error
		level   string
		format  string
	}{
		"text":          {level: "warn", format: "text"},
		"logfmt":        {level: "info", format: "logfmt"},
		"json":          {level: "debug", format: "JSON"},
		"warning alias": {level: "warning", format: "text"},
		"bad level":     {level: "loud", format: "text", wantErr: log.ErrUnknownLevel},
		"bad format":    {level: "warn", format: "xml", wantErr: log.ErrUnknownFormat},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h, err := log.CreateHandler(&bytes.Buffer{}, tc.level, tc.format)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, h)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, h)
		})
	}
}

func TestHandlerLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h, err := log.CreateHandler(buf, "warn", "json")
	require.NoError(t, err)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))

	logger := slog.New(h)
	logger.Info("hidden")
	logger.Warn("shown", slog.String("path", "valid/a.json"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "valid/a.json", line["path"])
}
