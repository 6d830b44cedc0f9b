//go:build cgo

package hal

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

type windowBackend struct {
	logger Logger
	mu     sync.Mutex
	opened bool
}

// NewWindowBackend returns a Backend that presents frames in a desktop window.
//
// Only one window may be opened per process.
func NewWindowBackend(logger Logger) Backend {
	if logger == nil {
		logger = NopLogger{}
	}
	return &windowBackend{logger: logger}
}

func (b *windowBackend) Open(cfg WindowConfig) (Window, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("window: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.opened {
		return nil, errors.New("window: already open")
	}
	b.opened = true

	if cfg.TPS <= 0 {
		cfg.TPS = DefaultTPS
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)

	Logf(b.logger, "window: open %q %dx%d tps=%d", cfg.Title, cfg.Width, cfg.Height, cfg.TPS)
	return &hostWindow{
		cfg:    cfg,
		logger: b.logger,
		kbd:    newHostKeyboard(),
		img:    image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
	}, nil
}

type hostWindow struct {
	cfg    WindowConfig
	logger Logger
	kbd    *hostKeyboard
	img    *image.RGBA
	fbImg  *ebiten.Image
	tick   func(Input) bool
	frame  func() []uint32
	err    error
	closed bool
}

func (w *hostWindow) Run(tick func(Input) bool, frame func() []uint32) error {
	if w.closed {
		return errors.New("window: closed")
	}
	w.tick = tick
	w.frame = frame
	defer w.Close()

	if err := ebiten.RunGame(w); err != nil {
		return err
	}
	return w.err
}

func (w *hostWindow) Update() error {
	w.kbd.poll()
	if !w.tick(w.kbd) {
		return ebiten.Termination
	}
	if err := toRGBA(w.img.Pix, w.frame(), w.cfg.Width, w.cfg.Height); err != nil {
		w.err = fmt.Errorf("window: present: %w", err)
		return ebiten.Termination
	}
	return nil
}

func (w *hostWindow) Draw(screen *ebiten.Image) {
	if w.fbImg == nil {
		w.fbImg = ebiten.NewImage(w.cfg.Width, w.cfg.Height)
	}
	w.fbImg.WritePixels(w.img.Pix)
	// Anchored top-left; never scaled.
	screen.DrawImage(w.fbImg, nil)
}

func (w *hostWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.cfg.Width, w.cfg.Height
}

func (w *hostWindow) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.fbImg != nil {
		w.fbImg.Deallocate()
		w.fbImg = nil
	}
	Logf(w.logger, "window: closed %q", w.cfg.Title)
	return nil
}
