package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// Window is a top-level X11 window created and owned by this process.
type Window struct {
	conn        *Connection
	win         *xwindow.Window
	wmProtocols xproto.Atom
	wmDelete    xproto.Atom

	// poll and checkAlive wrap the connection so event handling can be
	// driven without a display server in tests.
	poll       func() (xgb.Event, xgb.Error)
	checkAlive func() error
}

// CreateWindow creates a top-level window on the default screen, sets its
// title, opts into the WM_DELETE_WINDOW protocol and maps it.
func (c *Connection) CreateWindow(title string, x, y, width, height int) (*Window, error) {
	win, err := xwindow.Generate(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate window id: %w", err)
	}

	// StructureNotify so we observe our own DestroyNotify.
	err = win.CreateChecked(c.Root, x, y, width, height,
		xproto.CwEventMask, uint32(xproto.EventMaskStructureNotify))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Set both title properties; older window managers only read WM_NAME.
	// A failed title write is not fatal to the window itself.
	_ = ewmh.WmNameSet(c.XUtil, win.Id, title)
	_ = icccm.WmNameSet(c.XUtil, win.Id, title)

	wmProtocols, err := xprop.Atm(c.XUtil, "WM_PROTOCOLS")
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("failed to intern WM_PROTOCOLS: %w", err)
	}
	wmDelete, err := xprop.Atm(c.XUtil, "WM_DELETE_WINDOW")
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("failed to intern WM_DELETE_WINDOW: %w", err)
	}

	// Ask the window manager to deliver a close request instead of killing
	// the connection outright.
	if err := icccm.WmProtocolsSet(c.XUtil, win.Id, []string{"WM_DELETE_WINDOW"}); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("failed to set WM_PROTOCOLS: %w", err)
	}

	win.Map()
	c.XUtil.Sync()

	w := &Window{
		conn:        c,
		win:         win,
		wmProtocols: wmProtocols,
		wmDelete:    wmDelete,
	}
	w.poll = c.XUtil.Conn().PollForEvent
	w.checkAlive = func() error {
		_, err := xproto.GetInputFocus(c.XUtil.Conn()).Reply()
		return err
	}
	return w, nil
}

// ID returns the X11 window identifier.
func (w *Window) ID() uint32 {
	return uint32(w.win.Id)
}

// PumpEvents drains all X events currently queued on the connection without
// blocking. The first return value is false once the window manager has
// requested the window close (WM_DELETE_WINDOW) or the window has been
// destroyed; the second counts the events handled during this pass.
func (w *Window) PumpEvents() (bool, int, error) {
	alive := true
	handled := 0
	for {
		ev, xerr := w.poll()
		if ev == nil && xerr == nil {
			break
		}
		if xerr != nil {
			// Protocol-level errors (e.g. a late reply for a destroyed
			// resource) do not invalidate the window.
			continue
		}

		handled++
		if w.isCloseEvent(ev) {
			alive = false
		}
	}

	if handled == 0 {
		// An empty queue and a dead server look the same to PollForEvent,
		// so idle passes issue a no-op request to tell them apart.
		if err := w.checkAlive(); err != nil {
			return alive, 0, fmt.Errorf("display connection lost: %w", err)
		}
	}
	return alive, handled, nil
}

// isCloseEvent reports whether ev asks this window to go away: a
// WM_DELETE_WINDOW client message or a DestroyNotify addressed to it.
// Events aimed at other windows never count.
func (w *Window) isCloseEvent(ev xgb.Event) bool {
	switch e := ev.(type) {
	case xproto.ClientMessageEvent:
		return e.Window == w.win.Id && e.Type == w.wmProtocols &&
			len(e.Data.Data32) > 0 && xproto.Atom(e.Data.Data32[0]) == w.wmDelete
	case xproto.DestroyNotifyEvent:
		return e.Window == w.win.Id
	}
	return false
}

// Destroy unmaps and destroys the window. The window identifier must not be
// used afterwards.
func (w *Window) Destroy() {
	w.win.Destroy()
	w.conn.XUtil.Sync()
}
