package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 1500, cfg.Pomodoro.Seconds)
	require.Equal(t, time.Second, cfg.Pomodoro.TickInterval.Duration)
	require.Equal(t, 400, cfg.Drawing.ExportWidth)
	require.Equal(t, 600, cfg.Drawing.ExportHeight)
}

func TestLoadFromReaderOverridesDefaults(t *testing.T) {
	t.Setenv("TASKAPP_POMODORO_SECONDS", "")
	t.Setenv("TASKAPP_LOG_LEVEL", "")
	src := `
[pomodoro]
seconds = 300
tick_interval = "500ms"

[drawing]
stroke_width = 2.5

[log]
level = "debug"
`
	cfg, err := LoadFromReader(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 300, cfg.Pomodoro.Seconds)
	require.Equal(t, 500*time.Millisecond, cfg.Pomodoro.TickInterval.Duration)
	require.Equal(t, float32(2.5), cfg.Drawing.StrokeWidth)
	require.Equal(t, float32(1), cfg.Drawing.Opacity)
	require.True(t, cfg.Debug())
}

func TestLoadFromReaderRejectsBadValues(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("[pomodoro]\nseconds = 0\n"))
	require.ErrorContains(t, err, "pomodoro.seconds")

	_, err = LoadFromReader(strings.NewReader("[pomodoro]\ntick_interval = \"soon\"\n"))
	require.ErrorContains(t, err, "invalid duration")

	_, err = LoadFromReader(strings.NewReader("[drawing]\nopacity = 1.5\n"))
	require.ErrorContains(t, err, "drawing.opacity")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TASKAPP_POMODORO_SECONDS", "60")
	t.Setenv("TASKAPP_EXPORT_DIR", "/tmp/exports")
	t.Setenv("TASKAPP_LOG_LEVEL", "debug")

	cfg, err := LoadFromReader(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 60, cfg.Pomodoro.Seconds)
	require.Equal(t, "/tmp/exports", cfg.Drawing.ExportDir)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadSearchesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TASKAPP_POMODORO_SECONDS", "")
	t.Setenv("TASKAPP_LOG_LEVEL", "")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, appDir), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, appDir, "config.toml"),
		[]byte("[window]\ntitle = \"Focus\"\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Focus", cfg.Window.Title)
}

func TestLoadFromMissingFileFails(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Nil(t, cfg)
}

func TestLoadWithoutFileValidatesEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKAPP_LOG_LEVEL", "loud")

	_, err := Load()
	require.ErrorContains(t, err, "log.level")
}

func TestEnvOverrideRejectsNonNumericSeconds(t *testing.T) {
	t.Setenv("TASKAPP_POMODORO_SECONDS", "25m")

	_, err := LoadFromReader(strings.NewReader(""))
	require.ErrorContains(t, err, "TASKAPP_POMODORO_SECONDS")

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	_, err = Load()
	require.ErrorContains(t, err, "TASKAPP_POMODORO_SECONDS")
}
