package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/app"
	"pomodoro/internal/core/ticker"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/notify"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
)

func testContext(out *bytes.Buffer) *AppContext {
	return &AppContext{
		Build: BuildInfo{Version: "1.2.3", Commit: "abc123"},
		IO:    IOStreams{In: strings.NewReader(""), Out: out, ErrOut: io.Discard},
		Config: app.Config{
			LogLevel:     "info",
			LogFormat:    "text",
			TickInterval: time.Second,
		},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCommand(testContext(&out))
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "pomodoro version 1.2.3\ncommit: abc123\nbuild_date: unknown\n", out.String())
}

func TestFlagsOverrideConfig(t *testing.T) {
	var out bytes.Buffer
	appCtx := testContext(&out)
	root := newRootCommand(appCtx)
	root.SetArgs([]string{"version", "--log-level", "debug", "--tick-interval", "250ms", "--control-addr", "127.0.0.1:0"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "debug", appCtx.Config.LogLevel)
	assert.Equal(t, 250*time.Millisecond, appCtx.Config.TickInterval)
	assert.Equal(t, "127.0.0.1:0", appCtx.Config.ControlAddr)
}

func TestServeRequiresControlAddr(t *testing.T) {
	var out bytes.Buffer
	root := newRootCommand(testContext(&out))
	root.SetArgs([]string{"serve"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--control-addr")
}

func TestLoadSettingsFromConfiguredPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	want := preferences.DefaultSettings()
	want.CueMode = notify.CueModeTransition
	want.SoundEnabled = false
	require.NoError(t, storage.SaveSettings(path, want))

	var out bytes.Buffer
	appCtx := testContext(&out)
	appCtx.Config.SettingsPath = path

	gotPath, got := loadSettings(appCtx, quietLogger())
	assert.Equal(t, path, gotPath)
	assert.Equal(t, want, got)
}

func TestLoadSettingsFallsBackOnBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("volume: [1"), 0o644))

	var out bytes.Buffer
	appCtx := testContext(&out)
	appCtx.Config.SettingsPath = path

	_, got := loadSettings(appCtx, quietLogger())
	assert.Equal(t, preferences.DefaultSettings(), got)
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pomodoro.log")
	var out bytes.Buffer
	appCtx := testContext(&out)
	appCtx.Config.LogFile = path

	logger, closeLog, err := newLogger(appCtx, io.Discard)
	require.NoError(t, err)
	logger.Info("hello")
	closeLog()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "msg=hello")
}

func TestControlAPIServesAndShutsDown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keeper := timekeeper.New(ticker.NewManual(), nil, timekeeper.Config{Logger: quietLogger()})
	defer keeper.Close()

	api, err := startControlAPI(ctx, "127.0.0.1:0", keeper, quietLogger())
	require.NoError(t, err)
	require.NotNil(t, api)

	resp, err := http.Post("http://"+api.Addr()+"/play-pause", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snapshot timekeeper.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snapshot))
	assert.True(t, snapshot.Active)
	assert.True(t, keeper.Active())

	api.Shutdown()
	select {
	case err := <-api.Errors():
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestControlAPIDisabled(t *testing.T) {
	api, err := startControlAPI(context.Background(), "", nil, quietLogger())
	require.NoError(t, err)
	assert.Nil(t, api)
	assert.Empty(t, api.Addr())
	assert.Nil(t, api.Errors())
	api.Shutdown()
}
