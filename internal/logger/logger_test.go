package logger_test

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"testing"

	"codeberg.org/mutker/powerhal/internal/errors"
	"codeberg.org/mutker/powerhal/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	return record
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    logger.LogLevel
		wantErr bool
	}{
		{"debug", logger.DebugLevel, false},
		{"INFO", logger.InfoLevel, false},
		{"warning", logger.WarnLevel, false},
		{"warn", logger.WarnLevel, false},
		{"error", logger.ErrorLevel, false},
		{"loud", logger.WarnLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := logger.ParseLevel(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.HasCode(err, errors.ErrInvalidLogLevel))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.InfoLevel)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Info().Str("path", "/dev/b.L_operator").Msg("shown")
	record := decode(t, &buf)
	assert.Equal(t, "info", record["level"])
	assert.Equal(t, "shown", record["message"])
	assert.Equal(t, "/dev/b.L_operator", record["path"])
}

func TestErrorWithCode(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.DebugLevel)

	err := errors.New().Wrap(errors.ErrOpenFailed, fs.ErrPermission)
	log.ErrorWithCode(err).Msg("write failed")

	record := decode(t, &buf)
	assert.Equal(t, "error", record["level"])
	assert.Equal(t, string(errors.ErrOpenFailed), record["error_code"])
	assert.Equal(t, fs.ErrPermission.Error(), record["error"])
}
