// Package canvas implements a fixed-size pixel canvas addressed in
// center-origin coordinates and presented through a hal.Backend.
package canvas

import (
	"errors"
	"fmt"

	"graphics/hal"
)

var (
	ErrInvalidDimensions = errors.New("canvas: width and height must be positive")
	// ErrNotReady is returned when DisplayUntilExit is called more than once.
	ErrNotReady = errors.New("canvas: not ready")
)

// Dimensions are the pixel extents of the drawable area.
type Dimensions struct {
	Width  int
	Height int
}

func (d Dimensions) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, d.Width, d.Height)
	}
	return nil
}

// State is the lifecycle phase of a Canvas.
type State uint8

const (
	StateReady State = iota + 1
	StateDisplaying
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateDisplaying:
		return "displaying"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Option configures a Canvas at construction.
type Option func(*options)

type options struct {
	logger hal.Logger
	tps    int
}

// WithLogger sets the lifecycle logger.
func WithLogger(l hal.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTPS overrides the presentation rate cap.
func WithTPS(tps int) Option {
	return func(o *options) {
		if tps > 0 {
			o.tps = tps
		}
	}
}

// Canvas owns a pixel buffer and the window it is presented in.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	title  string
	dims   Dimensions
	buf    []uint32
	win    hal.Window
	logger hal.Logger
	state  State
	frames uint64
}

// New validates the dimensions, allocates a black buffer and opens a
// non-resizable window of exactly width x height usable pixels.
//
// There is no useful canvas without a window: callers should treat an
// error as fatal.
func New(backend hal.Backend, title string, width, height int, opts ...Option) (*Canvas, error) {
	dims := Dimensions{Width: width, Height: height}
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	if backend == nil {
		return nil, errors.New("canvas: nil backend")
	}
	o := options{logger: hal.NopLogger{}, tps: hal.DefaultTPS}
	for _, opt := range opts {
		opt(&o)
	}

	win, err := backend.Open(hal.WindowConfig{Title: title, Width: width, Height: height, TPS: o.tps})
	if err != nil {
		return nil, fmt.Errorf("canvas: create window: %w", err)
	}
	return &Canvas{
		title:  title,
		dims:   dims,
		buf:    make([]uint32, width*height),
		win:    win,
		logger: o.logger,
		state:  StateReady,
	}, nil
}

func (c *Canvas) Title() string          { return c.title }
func (c *Canvas) Dimensions() Dimensions { return c.dims }
func (c *Canvas) State() State           { return c.state }

// Frames returns how many frames the display loop presented.
func (c *Canvas) Frames() uint64 { return c.frames }

// Buffer returns a copy of the packed pixel buffer in screen order.
func (c *Canvas) Buffer() []uint32 {
	out := make([]uint32, len(c.buf))
	copy(out, c.buf)
	return out
}

// ClearCanvas sets every pixel to color.
func (c *Canvas) ClearCanvas(color Rgb) {
	p := color.Pack()
	for i := range c.buf {
		c.buf[i] = p
	}
}

// ScreenIndex maps a logical coordinate to its buffer slot.
//
// The origin is the center of the canvas: x runs from -width/2 (left) to
// width/2-1 (right) and y from -height/2 (bottom) to height/2-1 (top).
// ok is false when the coordinate falls outside the canvas.
func (c *Canvas) ScreenIndex(x, y int) (idx int, ok bool) {
	w, h := c.dims.Width, c.dims.Height
	sx := w/2 + x
	sy := h/2 - y - 1
	if sx < 0 || sx >= w || sy < 0 || sy >= h {
		return 0, false
	}
	return sx + w*sy, true
}

// PutPixel sets the pixel at logical coordinate (x, y). Coordinates outside
// the canvas are ignored. Changes become visible in DisplayUntilExit.
func (c *Canvas) PutPixel(x, y int, color Rgb) {
	if i, ok := c.ScreenIndex(x, y); ok {
		c.buf[i] = color.Pack()
	}
}

// Pixel returns the packed value at logical coordinate (x, y).
func (c *Canvas) Pixel(x, y int) (uint32, bool) {
	i, ok := c.ScreenIndex(x, y)
	if !ok {
		return 0, false
	}
	return c.buf[i], true
}

// DisplayUntilExit presents the buffer until the window is closed or
// Escape is held. Exit conditions are checked before each frame is
// presented. The window is released when the loop ends.
//
// It may be called once; a present failure is returned and is not
// recoverable.
func (c *Canvas) DisplayUntilExit() error {
	if c.state != StateReady {
		return fmt.Errorf("%w: %s", ErrNotReady, c.state)
	}
	c.state = StateDisplaying
	hal.Logf(c.logger, "canvas: display %q %dx%d", c.title, c.dims.Width, c.dims.Height)

	err := c.win.Run(c.tick, c.frame)
	c.state = StateClosed
	if cerr := c.win.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("canvas: close window: %w", cerr)
	}
	if err != nil {
		hal.Logf(c.logger, "canvas: display failed after %d frames: %v", c.frames, err)
		return fmt.Errorf("canvas: present: %w", err)
	}
	hal.Logf(c.logger, "canvas: exit after %d frames", c.frames)
	return nil
}

func (c *Canvas) tick(in hal.Input) bool {
	return !in.Closed() && !in.KeyDown(hal.KeyEscape)
}

func (c *Canvas) frame() []uint32 {
	c.frames++
	return c.buf
}

// Close releases the window without displaying. It is a no-op once the
// canvas is closed.
func (c *Canvas) Close() error {
	if c.state == StateClosed {
		return nil
	}
	c.state = StateClosed
	return c.win.Close()
}
