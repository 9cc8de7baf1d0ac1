//go:build windows

package win32

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// ClassName is the window class every engine window is created with.
const ClassName = "SageWindow"

// ErrRegisterClass reports a rejected window-class registration.
var ErrRegisterClass = errors.New("RegisterClassEx failed")

// The class is registered when the first window needs it and unregistered
// when the last one is destroyed, so repeated open/destroy cycles leave no
// process-global registration behind.
var (
	classMu   sync.Mutex
	classRefs int

	registerClass   = registerWindowClass
	unregisterClass = unregisterWindowClass
)

func retainClass(instance windows.Handle) error {
	classMu.Lock()
	defer classMu.Unlock()
	if classRefs == 0 {
		if err := registerClass(instance); err != nil {
			return err
		}
	}
	classRefs++
	return nil
}

func releaseClass(instance windows.Handle) {
	classMu.Lock()
	defer classMu.Unlock()
	if classRefs == 0 {
		return
	}
	classRefs--
	if classRefs == 0 {
		unregisterClass(instance)
	}
}

func registerWindowClass(instance windows.Handle) error {
	name, err := windows.UTF16PtrFromString(ClassName)
	if err != nil {
		return err
	}

	icon, _, _ := procLoadIconW.Call(0, uintptr(unsafe.Pointer(makeIntResource(idiApplication))))
	cursor, _, _ := procLoadCursorW.Call(0, uintptr(unsafe.Pointer(makeIntResource(idcArrow))))

	wc := wndClassEx{
		Style:     csDblClks,
		WndProc:   wndProcCallback,
		Instance:  instance,
		Icon:      windows.Handle(icon),
		Cursor:    windows.Handle(cursor),
		ClassName: name,
	}
	wc.Size = uint32(unsafe.Sizeof(wc))

	atom, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		return fmt.Errorf("%w: %v", ErrRegisterClass, callErr)
	}
	return nil
}

func unregisterWindowClass(instance windows.Handle) {
	name, err := windows.UTF16PtrFromString(ClassName)
	if err != nil {
		return
	}
	procUnregisterClassW.Call(uintptr(unsafe.Pointer(name)), uintptr(instance))
}
