//go:build linux

package platform

import (
	"fmt"

	"github.com/sage-engine/sage/internal/x11"
)

// X11Backend creates and drives native windows over X11. Each window owns its
// own connection to the display server, so destroying the window releases
// every server-side resource it acquired.
type X11Backend struct{}

var _ Backend = (*X11Backend)(nil)

// New returns the platform backend for this OS.
func New() Backend {
	return &X11Backend{}
}

func (b *X11Backend) Name() string { return "x11" }

// InitWindow connects to the X server, creates the configured top-level
// window and maps it.
func (b *X11Backend) InitWindow(cfg WindowConfig) (Window, error) {
	cfg = cfg.WithDefaults()

	conn, err := x11.Connect()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDisplayConnect, err)
	}

	x, y := cfg.X, cfg.Y
	if x < 0 || y < 0 {
		// The window manager chooses placement for 0,0 top-levels.
		x, y = 0, 0
	}

	win, err := conn.CreateWindow(cfg.Title, x, y, cfg.Width, cfg.Height)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}

	return &x11Window{conn: conn, win: win}, nil
}

type x11Window struct {
	conn      *x11.Connection
	win       *x11.Window
	quit      bool
	destroyed bool
}

func (w *x11Window) ID() WindowID {
	return WindowID(w.win.ID())
}

func (w *x11Window) PumpMessages() (PumpResult, error) {
	if w.destroyed {
		return PumpResult{}, ErrWindowDestroyed
	}
	if w.quit {
		return PumpResult{Quit: true}, nil
	}

	alive, handled, err := w.win.PumpEvents()
	if err != nil {
		return PumpResult{Dispatched: handled}, err
	}
	if !alive {
		w.quit = true
	}
	return PumpResult{Quit: w.quit, Dispatched: handled}, nil
}

func (w *x11Window) Destroy() error {
	if w.destroyed {
		return ErrWindowDestroyed
	}
	w.destroyed = true
	w.win.Destroy()
	w.conn.Close()
	return nil
}

// Diagnostics reports display-server facts for the doctor command.
func Diagnostics() ([]string, error) {
	conn, err := x11.Connect()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDisplayConnect, err)
	}
	defer conn.Close()

	screens, err := conn.Screens()
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(screens))
	for _, s := range screens {
		lines = append(lines, fmt.Sprintf("%s: %dx%d at %d,%d", s.Name, s.Width, s.Height, s.X, s.Y))
	}
	if len(lines) == 0 {
		lines = append(lines, "no active screens reported")
	}
	return lines, nil
}
