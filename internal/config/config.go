// Package config loads the TOML settings for TaskApp.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const appDir = "taskapp"

// Duration wraps time.Duration so TOML can use strings like "1s" or "500ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Config struct {
	Window   WindowConfig   `toml:"window"`
	Pomodoro PomodoroConfig `toml:"pomodoro"`
	Drawing  DrawingConfig  `toml:"drawing"`
	Log      LogConfig      `toml:"log"`
}

type WindowConfig struct {
	Title  string  `toml:"title"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	// SkipLogin opens the tabs directly.
	SkipLogin bool `toml:"skip_login"`
}

type PomodoroConfig struct {
	// Seconds is the length of one pomodoro in ticks.
	Seconds      int      `toml:"seconds"`
	TickInterval Duration `toml:"tick_interval"`
}

type DrawingConfig struct {
	StrokeWidth  float32 `toml:"stroke_width"`
	Opacity      float32 `toml:"opacity"`
	ExportWidth  int     `toml:"export_width"`
	ExportHeight int     `toml:"export_height"`
	ExportDir    string  `toml:"export_dir"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Window: WindowConfig{
			Title:  "TaskApp",
			Width:  420,
			Height: 760,
		},
		Pomodoro: PomodoroConfig{
			Seconds:      1500,
			TickInterval: Duration{time.Second},
		},
		Drawing: DrawingConfig{
			StrokeWidth:  5,
			Opacity:      1,
			ExportWidth:  400,
			ExportHeight: 600,
			ExportDir:    filepath.Join(home, "Pictures"),
		},
		Log: LogConfig{Level: "info"},
	}
}

// Debug reports whether debug logging was requested.
func (c *Config) Debug() bool { return c.Log.Level == "debug" }

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %vx%v must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Pomodoro.Seconds <= 0 {
		errs = append(errs, fmt.Errorf("pomodoro.seconds %d must be positive", c.Pomodoro.Seconds))
	}
	if c.Pomodoro.TickInterval.Duration <= 0 {
		errs = append(errs, errors.New("pomodoro.tick_interval must be positive"))
	}
	if c.Drawing.StrokeWidth <= 0 {
		errs = append(errs, fmt.Errorf("drawing.stroke_width %v must be positive", c.Drawing.StrokeWidth))
	}
	if c.Drawing.Opacity <= 0 || c.Drawing.Opacity > 1 {
		errs = append(errs, fmt.Errorf("drawing.opacity %v must be in (0, 1]", c.Drawing.Opacity))
	}
	if c.Drawing.ExportWidth <= 0 || c.Drawing.ExportHeight <= 0 {
		errs = append(errs, fmt.Errorf("export size %dx%d must be positive", c.Drawing.ExportWidth, c.Drawing.ExportHeight))
	}
	switch c.Log.Level {
	case "debug", "info", "":
	default:
		errs = append(errs, fmt.Errorf("unknown log.level %q", c.Log.Level))
	}
	return errors.Join(errs...)
}

// Load reads the first config file found in the search path, or returns the
// defaults when there is none.
//  1. $XDG_CONFIG_HOME/taskapp/config.toml
//  2. ~/.config/taskapp/config.toml
func Load() (*Config, error) {
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := Default()
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads an explicitly named config file, which must exist.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes TOML over the defaults, then applies env overrides.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TASKAPP_POMODORO_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TASKAPP_POMODORO_SECONDS=%q: not a whole number of seconds", v)
		}
		cfg.Pomodoro.Seconds = n
	}
	if v := os.Getenv("TASKAPP_EXPORT_DIR"); v != "" {
		cfg.Drawing.ExportDir = v
	}
	if v := os.Getenv("TASKAPP_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

func searchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, appDir, "config.toml"))

	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appDir, "config.toml"))
	}
	return paths
}

func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
