//go:build windows

package platform

import (
	"errors"
	"fmt"

	"github.com/sage-engine/sage/internal/win32"
)

// Win32Backend creates and drives native windows through user32.
type Win32Backend struct{}

var _ Backend = (*Win32Backend)(nil)

// New returns the platform backend for this OS.
func New() Backend {
	return &Win32Backend{}
}

func (b *Win32Backend) Name() string { return "win32" }

// InitWindow registers the window class if needed, creates the configured
// top-level window and shows it.
func (b *Win32Backend) InitWindow(cfg WindowConfig) (Window, error) {
	cfg = cfg.WithDefaults()

	win, err := win32.OpenWindow(cfg.Title, cfg.X, cfg.Y, cfg.Width, cfg.Height)
	if err != nil {
		if errors.Is(err, win32.ErrRegisterClass) {
			return nil, fmt.Errorf("%w: %v", ErrClassRegistration, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}

	return &win32Window{win: win}, nil
}

type win32Window struct {
	win       *win32.Window
	quit      bool
	destroyed bool
}

func (w *win32Window) ID() WindowID {
	return WindowID(uint32(w.win.Handle()))
}

func (w *win32Window) PumpMessages() (PumpResult, error) {
	if w.destroyed {
		return PumpResult{}, ErrWindowDestroyed
	}
	if w.quit {
		return PumpResult{Quit: true}, nil
	}
	quit, dispatched := w.win.PumpMessages()
	if quit {
		w.quit = true
	}
	return PumpResult{Quit: w.quit, Dispatched: dispatched}, nil
}

func (w *win32Window) Destroy() error {
	if w.destroyed {
		return ErrWindowDestroyed
	}
	w.destroyed = true
	w.win.Destroy()
	return nil
}

// Diagnostics reports display facts for the doctor command.
func Diagnostics() ([]string, error) {
	width, height := win32.ScreenSize()
	return []string{fmt.Sprintf("primary display: %dx%d", width, height)}, nil
}
