package app

import (
	"errors"
	"fmt"
	"io"

	"graphics/canvas"
	"graphics/hal"
	"graphics/routines"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 800
	DefaultTitle  = "Graphics"
)

// Config selects a routine and the canvas it draws into.
//
// Name picks the routine; Title is only shown on the window.
type Config struct {
	Name   string
	Title  string
	Width  int
	Height int
	TPS    int
}

// WithDefaults fills unset fields.
func (cfg Config) WithDefaults() Config {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.TPS <= 0 {
		cfg.TPS = hal.DefaultTPS
	}
	return cfg
}

// Run looks up cfg.Name, opens a canvas and hands it to the routine.
//
// An unknown name is reported on out and is not an error; no window is
// opened in that case. Any returned error is fatal for the process.
func Run(cfg Config, backend hal.Backend, reg *routines.Registry, logger hal.Logger, out io.Writer) error {
	cfg = cfg.WithDefaults()
	if logger == nil {
		logger = hal.NopLogger{}
	}

	routine, err := reg.Lookup(cfg.Name)
	if errors.Is(err, routines.ErrUnknownRoutine) {
		fmt.Fprintln(out, "Unknown command:", cfg.Name)
		return nil
	}
	if err != nil {
		return err
	}

	c, err := canvas.New(backend, cfg.Title, cfg.Width, cfg.Height,
		canvas.WithLogger(logger), canvas.WithTPS(cfg.TPS))
	if err != nil {
		return err
	}
	defer c.Close()

	hal.Logf(logger, "app: running %q on %dx%d", cfg.Name, cfg.Width, cfg.Height)
	if err := routine.Run(c); err != nil {
		return fmt.Errorf("routine %q: %w", cfg.Name, err)
	}
	return nil
}
