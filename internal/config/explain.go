package config

import "fmt"

// Explain returns the effective value at the given YAML-like path and its
// source.
//
// Supported paths:
//
//	window.title
//	window.width
//	window.height
//	window.x
//	window.y
//	max_frames
//	idle_sleep_ms
//	log_level
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}

	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	switch path {
	case "window.title":
		return cfg.Window.Title, nil
	case "window.width":
		return cfg.Window.Width, nil
	case "window.height":
		return cfg.Window.Height, nil
	case "window.x":
		return cfg.Window.X, nil
	case "window.y":
		return cfg.Window.Y, nil
	case "max_frames":
		return cfg.MaxFrames, nil
	case "idle_sleep_ms":
		return cfg.IdleSleepMs, nil
	case "log_level":
		return cfg.LogLevel, nil
	default:
		return nil, fmt.Errorf("unknown config path %q", path)
	}
}
