package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrFrameSize is returned when a presented frame does not match the window size.
	ErrFrameSize = errors.New("frame size mismatch")
)

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeySpace
)

// Input reports the state observed at the start of a tick.
type Input interface {
	// Closed reports whether the user asked to close the window.
	Closed() bool
	// KeyDown reports whether the key is currently held.
	KeyDown(code KeyCode) bool
}

// WindowConfig describes the drawing area of a window.
//
// Width and Height are the usable area in pixels, excluding decorations.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	// TPS caps how often the window polls input and presents a frame.
	TPS int
}

// DefaultTPS is roughly 50 frames per second.
const DefaultTPS = 50

// Window is an open presentation surface.
type Window interface {
	// Run blocks until tick returns false or presenting fails.
	//
	// On every iteration tick is called first with the current input. If it
	// returns true, the pixels returned by frame are presented. Frames are
	// packed 0x00RRGGBB values in row-major order, top-left origin.
	Run(tick func(Input) bool, frame func() []uint32) error
	// Close releases the window. It is safe to call more than once.
	Close() error
}

// Backend creates windows.
type Backend interface {
	Open(cfg WindowConfig) (Window, error)
}

// BackendFunc adapts a function to Backend.
type BackendFunc func(cfg WindowConfig) (Window, error)

func (f BackendFunc) Open(cfg WindowConfig) (Window, error) { return f(cfg) }
