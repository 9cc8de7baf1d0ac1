package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sage-engine/sage/internal/platform"
)

// WindowSettings controls the native window the engine opens.
type WindowSettings struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	X      int    `yaml:"x"` // negative = OS default placement
	Y      int    `yaml:"y"`
}

// Config is the effective engine configuration.
type Config struct {
	Window WindowSettings `yaml:"window"`

	// MaxFrames bounds the pump loop for scripted runs; 0 means run until
	// the window posts its quit signal.
	MaxFrames int `yaml:"max_frames"`

	// IdleSleepMs is how long the engine yields between empty pump passes.
	IdleSleepMs int `yaml:"idle_sleep_ms"`

	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowSettings{
			Title:  platform.DefaultTitle,
			Width:  platform.DefaultWidth,
			Height: platform.DefaultHeight,
			X:      platform.UseDefaultPos,
			Y:      platform.UseDefaultPos,
		},
		MaxFrames:   0,
		IdleSleepMs: 4,
		LogLevel:    "info",
	}
}

// Validate checks the configuration for values the engine cannot honor.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Window.Title) == "" {
		return fmt.Errorf("window.title must not be empty")
	}
	if c.Window.Width < 1 || c.Window.Width > 16384 {
		return fmt.Errorf("window.width must be between 1 and 16384, got %d", c.Window.Width)
	}
	if c.Window.Height < 1 || c.Window.Height > 16384 {
		return fmt.Errorf("window.height must be between 1 and 16384, got %d", c.Window.Height)
	}
	// Native window systems place the window as a pair; a lone default axis
	// would silently discard the explicit one.
	if (c.Window.X < 0) != (c.Window.Y < 0) {
		return fmt.Errorf("window.x and window.y must both be set or both be left to the default placement, got %d,%d", c.Window.X, c.Window.Y)
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("max_frames must not be negative, got %d", c.MaxFrames)
	}
	if c.IdleSleepMs < 0 || c.IdleSleepMs > 1000 {
		return fmt.Errorf("idle_sleep_ms must be between 0 and 1000, got %d", c.IdleSleepMs)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// WindowConfig translates the settings into the platform layer's terms.
func (c *Config) WindowConfig() platform.WindowConfig {
	return platform.WindowConfig{
		Title:  c.Window.Title,
		Width:  c.Window.Width,
		Height: c.Window.Height,
		X:      c.Window.X,
		Y:      c.Window.Y,
	}
}

// SlogLevel returns the configured log level. Validate has already rejected
// unknown names.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", name)
	}
}
