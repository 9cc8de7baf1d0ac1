package platform

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// UseDefaultPos requests the OS-chosen default window position.
const UseDefaultPos = -1

// Default window geometry used when a WindowConfig field is left zero.
const (
	DefaultTitle  = "Sage Engine"
	DefaultWidth  = 500
	DefaultHeight = 300
)

// WindowConfig describes the window a backend should create. Position is
// taken as a pair: a negative X or Y hands placement of both axes to the OS.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	X      int
	Y      int
}

// WithDefaults fills zero-valued fields with the engine defaults.
func (c WindowConfig) WithDefaults() WindowConfig {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	return c
}

// PumpResult reports what a single PumpMessages pass observed.
type PumpResult struct {
	// Quit is true once the window has posted its quit signal. It stays
	// true on every later pass.
	Quit bool

	// Dispatched counts the messages delivered during the pass. Zero means
	// the queue was empty and the caller may idle before pumping again.
	Dispatched int
}

// Window is a live native window. It is valid from the InitWindow call that
// produced it until Destroy; only the OS thread that created it may call its
// methods.
type Window interface {
	// ID returns the platform window identifier.
	ID() WindowID

	// PumpMessages drains every OS message currently queued for the calling
	// thread and dispatches each to its handler. It never blocks: with an
	// empty queue it returns immediately with no side effects.
	PumpMessages() (PumpResult, error)

	// Destroy closes the native window if it is still live and releases all
	// backend state. A second call returns ErrWindowDestroyed.
	Destroy() error
}

// Backend abstracts window-system operations across platforms.
type Backend interface {
	Name() string
	InitWindow(cfg WindowConfig) (Window, error)
}
