package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Window.Title != "Sage Engine" {
		t.Fatalf("expected default title %q, got %q", "Sage Engine", cfg.Window.Title)
	}
	if cfg.Window.Width != 500 || cfg.Window.Height != 300 {
		t.Fatalf("expected default size 500x300, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.X >= 0 || cfg.Window.Y >= 0 {
		t.Fatalf("expected default position to be OS-chosen, got %d,%d", cfg.Window.X, cfg.Window.Y)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Window.Width != 500 {
		t.Fatalf("expected default width 500, got %d", res.Config.Window.Width)
	}
	if len(res.Sources) != 0 {
		t.Fatalf("expected no file sources, got %v", res.Sources)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("# empty\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.MaxFrames != 0 {
		t.Fatalf("expected default max_frames 0, got %d", res.Config.MaxFrames)
	}
}

func TestLoadFromPath_FileOverridesMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := strings.Join([]string{
		"window:",
		"  title: \"Sage Editor\"",
		"  width: 800",
		"max_frames: 120",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Window.Title != "Sage Editor" {
		t.Fatalf("expected overridden title, got %q", res.Config.Window.Title)
	}
	if res.Config.Window.Width != 800 {
		t.Fatalf("expected width 800, got %d", res.Config.Window.Width)
	}
	if res.Config.Window.Height != 300 {
		t.Fatalf("expected height to keep default 300, got %d", res.Config.Window.Height)
	}
	if res.Config.MaxFrames != 120 {
		t.Fatalf("expected max_frames 120, got %d", res.Config.MaxFrames)
	}
}

func TestLoadFromPath_UnknownKeyErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("frame_cap: 10\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoadFromPath_InvalidGeometryErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: 0\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected error for zero width")
	}
	if !strings.Contains(err.Error(), "window.width") {
		t.Fatalf("expected window.width in error, got %v", err)
	}
}

func TestValidate_RejectsMixedWindowPosition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.X = 100 // y stays at the default-placement sentinel

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error for a lone explicit axis")
	}
	if !strings.Contains(err.Error(), "window.x and window.y") {
		t.Fatalf("expected the position pair named in the error, got %v", err)
	}

	cfg.Window.Y = 50
	if err := cfg.Validate(); err != nil {
		t.Fatalf("explicit pair must validate: %v", err)
	}
}

func TestExplain_FileAndDefaultSources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	val, src, err := Explain(res, "window.width")
	if err != nil {
		t.Fatalf("explain window.width: %v", err)
	}
	if val != 640 {
		t.Fatalf("expected 640, got %#v", val)
	}
	if src.Kind != SourceFile || src.File != path {
		t.Fatalf("expected file source, got %#v", src)
	}

	val, src, err = Explain(res, "window.height")
	if err != nil {
		t.Fatalf("explain window.height: %v", err)
	}
	if val != 300 {
		t.Fatalf("expected default 300, got %#v", val)
	}
	if src.Kind != SourceDefault {
		t.Fatalf("expected default source, got %#v", src)
	}

	if _, _, err := Explain(res, "nope"); err == nil {
		t.Fatalf("expected error for unknown path")
	}
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range cases {
		cfg := DefaultConfig()
		cfg.LogLevel = name
		if err := cfg.Validate(); err != nil {
			t.Fatalf("level %q: %v", name, err)
		}
		if got := cfg.SlogLevel(); got != want {
			t.Fatalf("level %q: expected %v, got %v", name, want, got)
		}
	}

	cfg := DefaultConfig()
	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}
