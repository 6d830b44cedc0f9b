package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window backend.
type HeadlessConfig struct {
	// Hz is the tick rate; 0 uses the window's TPS.
	Hz int
	// Frames closes the surface after N ticks (0 = run until ctx is done).
	Frames uint64
}

type headlessBackend struct {
	ctx    context.Context
	cfg    HeadlessConfig
	logger Logger
}

// NewHeadlessBackend returns a Backend that runs the present loop without
// opening a window. The surface reports closed once cfg.Frames ticks have
// elapsed or ctx is cancelled.
func NewHeadlessBackend(ctx context.Context, cfg HeadlessConfig, logger Logger) Backend {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = NopLogger{}
	}
	return &headlessBackend{ctx: ctx, cfg: cfg, logger: logger}
}

func (b *headlessBackend) Open(cfg WindowConfig) (Window, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("headless: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	hz := b.cfg.Hz
	if hz <= 0 {
		hz = cfg.TPS
	}
	if hz <= 0 {
		hz = DefaultTPS
	}
	d := time.Second / time.Duration(hz)
	if d <= 0 {
		return nil, fmt.Errorf("invalid headless hz: %d", hz)
	}
	Logf(b.logger, "headless: open %q %dx%d hz=%d frames=%d", cfg.Title, cfg.Width, cfg.Height, hz, b.cfg.Frames)
	return &headlessWindow{
		ctx:     b.ctx,
		cfg:     cfg,
		period:  d,
		limit:   b.cfg.Frames,
		logger:  b.logger,
		scratch: make([]byte, cfg.Width*cfg.Height*4),
	}, nil
}

type headlessWindow struct {
	ctx     context.Context
	cfg     WindowConfig
	period  time.Duration
	limit   uint64
	logger  Logger
	scratch []byte

	tick   uint64
	closed bool
}

type headlessInput struct{ closed bool }

func (in headlessInput) Closed() bool         { return in.closed }
func (in headlessInput) KeyDown(KeyCode) bool { return false }

func (w *headlessWindow) Run(tick func(Input) bool, frame func() []uint32) error {
	if w.closed {
		return fmt.Errorf("headless: closed")
	}
	defer w.Close()

	t := time.NewTicker(w.period)
	defer t.Stop()

	for {
		in := headlessInput{closed: w.ctx.Err() != nil || (w.limit > 0 && w.tick >= w.limit)}
		if !tick(in) {
			return nil
		}
		if err := toRGBA(w.scratch, frame(), w.cfg.Width, w.cfg.Height); err != nil {
			return fmt.Errorf("headless: present: %w", err)
		}
		w.tick++

		select {
		case <-w.ctx.Done():
		case <-t.C:
		}
	}
}

func (w *headlessWindow) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	Logf(w.logger, "headless: closed %q after %d frames", w.cfg.Title, w.tick)
	return nil
}
