//go:build windows

package win32

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// ErrCreateWindow reports a failed CreateWindowEx call.
var ErrCreateWindow = errors.New("CreateWindowEx failed")

// Window is a live native window. All methods must be called on the OS thread
// that opened it; the message queue drained by PumpMessages belongs to that
// thread.
type Window struct {
	hwnd     windows.HWND
	instance windows.Handle
}

// OpenWindow registers the engine window class if needed, creates a top-level
// overlapped window and shows it. A negative x or y requests the OS default
// placement for both axes; CW_USEDEFAULT carries no per-axis meaning.
func OpenWindow(title string, x, y, width, height int) (*Window, error) {
	instance, err := windows.GetModuleHandle(nil)
	if err != nil {
		return nil, fmt.Errorf("GetModuleHandle: %w", err)
	}

	if err := retainClass(instance); err != nil {
		return nil, err
	}

	className, err := windows.UTF16PtrFromString(ClassName)
	if err != nil {
		releaseClass(instance)
		return nil, err
	}
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		releaseClass(instance)
		return nil, err
	}

	const style = wsOverlapped | wsSysMenu | wsCaption | wsMinimizeBox | wsMaximizeBox | wsThickFrame

	px := uintptr(cwUseDefault)
	py := uintptr(cwUseDefault)
	if x >= 0 && y >= 0 {
		px = uintptr(uint32(int32(x)))
		py = uintptr(uint32(int32(y)))
	}

	hwnd, _, callErr := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(style),
		px, py,
		uintptr(uint32(int32(width))),
		uintptr(uint32(int32(height))),
		0, // parent
		0, // menu
		uintptr(instance),
		0, // lpParam
	)
	if hwnd == 0 {
		releaseClass(instance)
		return nil, fmt.Errorf("%w: %v", ErrCreateWindow, callErr)
	}

	procShowWindow.Call(hwnd, uintptr(swShowNormal))

	return &Window{hwnd: windows.HWND(hwnd), instance: instance}, nil
}

// Handle returns the native window handle, or 0 after Destroy.
func (w *Window) Handle() uintptr {
	return uintptr(w.hwnd)
}

// The raw user32 message calls are variables so the queue handling can be
// exercised without a live window station.
var (
	peekMessage = func(m *message) bool {
		got, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(m)), 0, 0, 0, uintptr(pmRemove))
		return got != 0
	}
	dispatchMessage = func(m *message) {
		procTranslateMessage.Call(uintptr(unsafe.Pointer(m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(m)))
	}
	destroyWindow = func(hwnd windows.HWND) {
		procDestroyWindow.Call(uintptr(hwnd))
	}
)

// PumpMessages drains every message currently queued for the calling thread,
// translating and dispatching each to its window procedure. It never blocks;
// with an empty queue it returns immediately. It reports whether a WM_QUIT
// has been retrieved, and how many messages were dispatched.
func (w *Window) PumpMessages() (bool, int) {
	var m message
	quit := false
	dispatched := 0
	for {
		if !peekMessage(&m) {
			return quit, dispatched
		}
		if m.Message == wmQuit {
			quit = true
			continue
		}
		dispatchMessage(&m)
		dispatched++
	}
}

// Destroy destroys the native window if it is still live and drops the class
// reference. The handle is cleared so it is never redispatched to.
//
// DestroyWindow delivers WM_DESTROY synchronously, and the window procedure
// answers it with PostQuitMessage. That WM_QUIT sits in the thread queue where
// the next window opened on this thread would retrieve it and quit before its
// first real frame, so the queue is drained here with nothing redispatched.
func (w *Window) Destroy() {
	if w.hwnd != 0 {
		destroyWindow(w.hwnd)
		w.hwnd = 0

		var m message
		for peekMessage(&m) {
		}
	}
	releaseClass(w.instance)
}
