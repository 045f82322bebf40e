package host_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"codeberg.org/mutker/powerhal/internal/errors"
	"codeberg.org/mutker/powerhal/internal/host"
	"codeberg.org/mutker/powerhal/internal/logger"
	"codeberg.org/mutker/powerhal/internal/power"
	"codeberg.org/mutker/powerhal/internal/sysfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer() (*host.Server, *power.Shim, *sysfs.Recorder) {
	rec := sysfs.NewRecorder()
	log := logger.New(io.Discard, logger.DebugLevel)
	shim := power.New(rec, log)

	return host.NewServer(shim, log), shim, rec
}

func TestServe(t *testing.T) {
	srv, shim, rec := newServer()

	input := strings.Join([]string{
		"# boot",
		"init",
		"hint set_profile high_performance",
		"interactive off",
		"",
		"INTERACTIVE on   # screen back",
		"get_feature supported_profiles",
		"get_feature 1",
		"set_feature double_tap_to_wake 1",
		"hint interaction 100",
		"bogus",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, srv.Serve(context.Background(), strings.NewReader(input), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, []string{"ok", "ok", "ok", "ok", "3", "-1", "ok", "ok"}, lines[:8])
	assert.True(t, strings.HasPrefix(lines[8], "error: "), lines[8])

	assert.Equal(t, power.ProfileHighPerformance, shim.Profile())
	assert.Equal(t, []string{"10", "01", "10"}, rec.Values(power.PathBLOperator))
	assert.Equal(t, []string{"0", "1"}, rec.Values(power.PathTouchscreen))
}

func TestServeStopsOnCancel(t *testing.T) {
	srv, _, _ := newServer()

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, srv.Serve(ctx, pr, io.Discard))
}

func TestExecute(t *testing.T) {
	tests := []struct {
		line    string
		want    string
		wantErr bool
	}{
		{"init", "ok", false},
		{"init now", "", true},
		{"interactive", "", true},
		{"interactive maybe", "", true},
		{"interactive 1", "ok", false},
		{"set_interactive false", "ok", false},
		{"hint", "", true},
		{"hint warp 1", "", true},
		{"hint 0x111 2", "ok", false},
		{"hint set_profile balanced", "ok", false},
		{"hint set_profile turbo", "", true},
		{"power_hint vsync", "ok", false},
		{"set_feature 1", "", true},
		{"set_feature 1 on", "", true},
		{"set_feature 4096 0", "ok", false},
		{"get_feature 0x1000", "3", false},
		{"get_feature double_tap_to_wake", "-1", false},
		{"get_feature nothing", "", true},
		{"   ", "", false},
		{"# only a comment", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			srv, _, _ := newServer()

			got, err := srv.Execute(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.HasCode(err, errors.ErrInvalidCommand))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecuteInfo(t *testing.T) {
	srv, _, _ := newServer()

	got, err := srv.Execute("info")
	require.NoError(t, err)
	assert.Equal(t, `power "I9500 Power HAL" "The LineageOS Project" module_api=0.3 hal_api=1.0`, got)
}

func TestWriteFailuresDoNotReachHost(t *testing.T) {
	srv, shim, rec := newServer()
	rec.Fail(power.PathBLOperator, io.ErrClosedPipe)

	got, err := srv.Execute("hint set_profile balanced")
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, power.ProfileBalanced, shim.Profile())
}
