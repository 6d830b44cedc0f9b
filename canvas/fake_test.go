package canvas

import (
	"errors"
	"testing"

	"graphics/hal"
)

type scriptedInput struct {
	closed bool
	escape bool
}

func (in scriptedInput) Closed() bool { return in.closed }

func (in scriptedInput) KeyDown(code hal.KeyCode) bool { return code == hal.KeyEscape && in.escape }

// fakeWindow replays a fixed input script, one entry per iteration, and
// records every presented frame.
type fakeWindow struct {
	cfg        hal.WindowConfig
	script     []scriptedInput
	presentErr error
	presented  [][]uint32
	runs       int
	closes     int
}

func (w *fakeWindow) Run(tick func(hal.Input) bool, frame func() []uint32) error {
	w.runs++
	for _, in := range w.script {
		if !tick(in) {
			return nil
		}
		f := frame()
		if w.presentErr != nil {
			return w.presentErr
		}
		if len(f) != w.cfg.Width*w.cfg.Height {
			return hal.ErrFrameSize
		}
		snap := make([]uint32, len(f))
		copy(snap, f)
		w.presented = append(w.presented, snap)
	}
	return errors.New("fake: script exhausted")
}

func (w *fakeWindow) Close() error {
	w.closes++
	return nil
}

type fakeBackend struct {
	win     *fakeWindow
	openErr error
	opened  []hal.WindowConfig
}

func (b *fakeBackend) Open(cfg hal.WindowConfig) (hal.Window, error) {
	b.opened = append(b.opened, cfg)
	if b.openErr != nil {
		return nil, b.openErr
	}
	if b.win == nil {
		b.win = &fakeWindow{}
	}
	b.win.cfg = cfg
	return b.win, nil
}

func newTestCanvas(tb testing.TB, w, h int, script ...scriptedInput) (*Canvas, *fakeWindow) {
	tb.Helper()
	win := &fakeWindow{script: script}
	c, err := New(&fakeBackend{win: win}, "test", w, h)
	if err != nil {
		tb.Fatalf("New: %v", err)
	}
	return c, win
}
