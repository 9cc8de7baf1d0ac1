package x11

import (
	"errors"
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xwindow"
)

const (
	testWindowID    = xproto.Window(0x2a)
	testProtosAtom  = xproto.Atom(301)
	testDeleteAtom  = xproto.Atom(302)
	testCompositeID = xproto.Window(0x99)
)

// testWindow builds a Window detached from any display server; poll and
// checkAlive feed it scripted events.
func testWindow(events []xgb.Event, alive func() error) *Window {
	w := &Window{
		win:         &xwindow.Window{Id: testWindowID},
		wmProtocols: testProtosAtom,
		wmDelete:    testDeleteAtom,
	}
	w.poll = func() (xgb.Event, xgb.Error) {
		if len(events) == 0 {
			return nil, nil
		}
		ev := events[0]
		events = events[1:]
		return ev, nil
	}
	if alive == nil {
		alive = func() error { return nil }
	}
	w.checkAlive = alive
	return w
}

func deleteMessage(window xproto.Window, protocol xproto.Atom, data []uint32) xproto.ClientMessageEvent {
	return xproto.ClientMessageEvent{
		Format: 32,
		Window: window,
		Type:   protocol,
		Data:   xproto.ClientMessageDataUnionData32New(data),
	}
}

func TestIsCloseEvent(t *testing.T) {
	w := testWindow(nil, nil)

	cases := []struct {
		name string
		ev   xgb.Event
		want bool
	}{
		{
			name: "delete request for this window",
			ev:   deleteMessage(testWindowID, testProtosAtom, []uint32{uint32(testDeleteAtom), 0, 0, 0, 0}),
			want: true,
		},
		{
			name: "delete request for another window",
			ev:   deleteMessage(testCompositeID, testProtosAtom, []uint32{uint32(testDeleteAtom), 0, 0, 0, 0}),
			want: false,
		},
		{
			name: "client message with a different protocol atom",
			ev:   deleteMessage(testWindowID, xproto.Atom(999), []uint32{uint32(testDeleteAtom), 0, 0, 0, 0}),
			want: false,
		},
		{
			name: "protocol message naming a different member",
			ev:   deleteMessage(testWindowID, testProtosAtom, []uint32{uint32(testProtosAtom), 0, 0, 0, 0}),
			want: false,
		},
		{
			name: "client message with no payload",
			ev:   xproto.ClientMessageEvent{Format: 32, Window: testWindowID, Type: testProtosAtom},
			want: false,
		},
		{
			name: "destroy notify for this window",
			ev:   xproto.DestroyNotifyEvent{Event: testWindowID, Window: testWindowID},
			want: true,
		},
		{
			name: "destroy notify for another window",
			ev:   xproto.DestroyNotifyEvent{Event: testWindowID, Window: testCompositeID},
			want: false,
		},
		{
			name: "unrelated event",
			ev:   xproto.ConfigureNotifyEvent{Window: testWindowID},
			want: false,
		},
	}

	for _, tc := range cases {
		if got := w.isCloseEvent(tc.ev); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPumpEvents_QuitsOnDeleteRequest(t *testing.T) {
	events := []xgb.Event{
		xproto.ConfigureNotifyEvent{Window: testWindowID},
		deleteMessage(testWindowID, testProtosAtom, []uint32{uint32(testDeleteAtom), 0, 0, 0, 0}),
	}
	w := testWindow(events, nil)

	alive, handled, err := w.PumpEvents()
	if err != nil {
		t.Fatalf("pump: %v", err)
	}
	if alive {
		t.Fatalf("expected the delete request to end the window's life")
	}
	if handled != 2 {
		t.Fatalf("expected 2 handled events, got %d", handled)
	}
}

func TestPumpEvents_IgnoresOtherWindows(t *testing.T) {
	events := []xgb.Event{
		deleteMessage(testCompositeID, testProtosAtom, []uint32{uint32(testDeleteAtom), 0, 0, 0, 0}),
		xproto.DestroyNotifyEvent{Event: testWindowID, Window: testCompositeID},
	}
	w := testWindow(events, nil)

	alive, handled, err := w.PumpEvents()
	if err != nil {
		t.Fatalf("pump: %v", err)
	}
	if !alive {
		t.Fatalf("events for other windows must not quit this one")
	}
	if handled != 2 {
		t.Fatalf("expected 2 handled events, got %d", handled)
	}
}

func TestPumpEvents_EmptyPassReportsNothingHandled(t *testing.T) {
	w := testWindow(nil, nil)

	alive, handled, err := w.PumpEvents()
	if err != nil {
		t.Fatalf("pump: %v", err)
	}
	if !alive || handled != 0 {
		t.Fatalf("expected an alive window and 0 handled, got %v/%d", alive, handled)
	}
}

func TestPumpEvents_SurfacesDeadConnection(t *testing.T) {
	connErr := errors.New("broken pipe")
	w := testWindow(nil, func() error { return connErr })

	_, _, err := w.PumpEvents()
	if !errors.Is(err, connErr) {
		t.Fatalf("expected the lost connection surfaced, got %v", err)
	}
}

func TestPumpEvents_SkipsLivenessCheckWhileBusy(t *testing.T) {
	events := []xgb.Event{xproto.ConfigureNotifyEvent{Window: testWindowID}}
	w := testWindow(events, func() error {
		t.Fatalf("liveness check issued on a busy pass")
		return nil
	})

	if _, handled, err := w.PumpEvents(); err != nil || handled != 1 {
		t.Fatalf("pump: handled=%d err=%v", handled, err)
	}
}
