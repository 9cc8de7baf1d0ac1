//go:build windows

// Package win32 holds the raw user32 bindings behind the Windows platform
// backend. It loads the DLL lazily and calls the public window API directly,
// so no cgo toolchain is required.
package win32

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procRegisterClassExW = user32.NewProc("RegisterClassExW")
	procUnregisterClassW = user32.NewProc("UnregisterClassW")
	procCreateWindowExW  = user32.NewProc("CreateWindowExW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procShowWindow       = user32.NewProc("ShowWindow")
	procPeekMessageW     = user32.NewProc("PeekMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessageW = user32.NewProc("DispatchMessageW")
	procDefWindowProcW   = user32.NewProc("DefWindowProcW")
	procPostQuitMessage  = user32.NewProc("PostQuitMessage")
	procLoadIconW        = user32.NewProc("LoadIconW")
	procLoadCursorW      = user32.NewProc("LoadCursorW")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

const (
	csDblClks = 0x0008

	wsOverlapped  = 0x00000000
	wsMaximizeBox = 0x00010000
	wsMinimizeBox = 0x00020000
	wsThickFrame  = 0x00040000
	wsSysMenu     = 0x00080000
	wsCaption     = 0x00C00000

	swShowNormal = 1

	pmRemove = 0x0001

	wmDestroy = 0x0002
	wmQuit    = 0x0012

	cwUseDefault = 0x80000000

	idiApplication = 32512
	idcArrow       = 32512

	smCxScreen = 0
	smCyScreen = 1
)

type wndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       windows.Handle
	Cursor     windows.Handle
	Background windows.Handle
	MenuName   *uint16
	ClassName  *uint16
	IconSm     windows.Handle
}

type point struct {
	X int32
	Y int32
}

type message struct {
	HWND    windows.HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

// wndProcCallback is the window procedure shared by every window of the
// engine's class. WM_DESTROY posts the thread-level quit signal that the
// message pump reports back to the engine; everything else goes to the OS
// default handler unmodified.
var wndProcCallback = syscall.NewCallback(func(hwnd windows.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case wmDestroy:
		procPostQuitMessage.Call(0)
		return 0
	}
	ret, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(msg), wParam, lParam)
	return ret
})

// ScreenSize returns the primary display's resolution in pixels.
func ScreenSize() (int, int) {
	w, _, _ := procGetSystemMetrics.Call(uintptr(smCxScreen))
	h, _, _ := procGetSystemMetrics.Call(uintptr(smCyScreen))
	return int(w), int(h)
}

func makeIntResource(id uint16) *uint16 {
	return (*uint16)(unsafe.Pointer(uintptr(id)))
}
