// Package engine drives the platform window lifecycle: create the native
// window, pump its message queue until the quit signal arrives, tear down.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/sage-engine/sage/internal/config"
	"github.com/sage-engine/sage/internal/platform"
)

// Engine owns one platform window for the duration of a Run call.
type Engine struct {
	backend platform.Backend
	cfg     *config.Config
	logger  *slog.Logger
}

// New creates an engine bootstrap for the given backend and configuration.
func New(backend platform.Backend, cfg *config.Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{backend: backend, cfg: cfg, logger: logger}
}

// Run opens the window and pumps messages until the window posts its quit
// signal, the context is cancelled, or the configured frame cap is reached.
// The window is torn down on every exit path.
//
// Native windows may only be driven from the thread that created them, so
// Run pins itself to its OS thread for the window's whole lifetime.
func (e *Engine) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := e.backend.InitWindow(e.cfg.WindowConfig())
	if err != nil {
		return fmt.Errorf("init window: %w", err)
	}
	e.logger.Info("window created",
		"backend", e.backend.Name(),
		"window", win.ID(),
		"title", e.cfg.Window.Title,
		"size", fmt.Sprintf("%dx%d", e.cfg.Window.Width, e.cfg.Window.Height))

	defer func() {
		id := win.ID()
		if err := win.Destroy(); err != nil {
			e.logger.Warn("window teardown failed", "window", id, "error", err)
			return
		}
		e.logger.Info("window destroyed", "window", id)
	}()

	idle := time.Duration(e.cfg.IdleSleepMs) * time.Millisecond
	frames := 0
	for {
		select {
		case <-ctx.Done():
			e.logger.Info("run cancelled", "frames", frames)
			return nil
		default:
		}

		res, err := win.PumpMessages()
		if err != nil {
			return fmt.Errorf("pump messages: %w", err)
		}
		frames++

		if res.Quit {
			e.logger.Info("quit signal received", "frames", frames)
			return nil
		}
		if e.cfg.MaxFrames > 0 && frames >= e.cfg.MaxFrames {
			e.logger.Info("frame cap reached", "frames", frames)
			return nil
		}

		// Yield only when the pass found nothing; a busy queue is pumped
		// again straight away.
		if idle > 0 && res.Dispatched == 0 {
			time.Sleep(idle)
		}
	}
}
