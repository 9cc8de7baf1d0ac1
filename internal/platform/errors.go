package platform

import "errors"

// Failure classes surfaced by backends. Callers match them with errors.Is;
// backends wrap them with platform-specific context.
var (
	// ErrDisplayConnect means the connection to the display server could not
	// be established.
	ErrDisplayConnect = errors.New("cannot connect to display server")

	// ErrClassRegistration means the OS rejected the window-class
	// registration.
	ErrClassRegistration = errors.New("window class registration failed")

	// ErrWindowCreation means the native window could not be created.
	ErrWindowCreation = errors.New("window creation failed")

	// ErrWindowDestroyed is returned by operations on a window whose Destroy
	// has already completed.
	ErrWindowDestroyed = errors.New("window already destroyed")
)
