// Package routines holds the named drawing routines a run can select.
package routines

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"graphics/canvas"
)

var (
	ErrUnknownRoutine   = errors.New("unknown routine")
	ErrDuplicateRoutine = errors.New("routine already registered")
)

// Routine draws into a ready canvas and then calls DisplayUntilExit
// exactly once. It returns when the window has been exited.
type Routine interface {
	Run(c *canvas.Canvas) error
}

// RoutineFunc adapts a function to Routine.
type RoutineFunc func(c *canvas.Canvas) error

func (f RoutineFunc) Run(c *canvas.Canvas) error { return f(c) }

// Registry maps selection names to routines.
type Registry struct {
	mu       sync.RWMutex
	routines map[string]Routine
}

func NewRegistry() *Registry {
	return &Registry{routines: make(map[string]Routine)}
}

// Register adds r under name. Names are matched exactly.
func (reg *Registry) Register(name string, r Routine) error {
	if name == "" {
		return errors.New("routine name is empty")
	}
	if r == nil {
		return fmt.Errorf("routine %q is nil", name)
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.routines[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRoutine, name)
	}
	reg.routines[name] = r
	return nil
}

// MustRegister is Register that panics on error, for static tables.
func (reg *Registry) MustRegister(name string, r Routine) {
	if err := reg.Register(name, r); err != nil {
		panic(err)
	}
}

func (reg *Registry) Lookup(name string) (Routine, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.routines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoutine, name)
	}
	return r, nil
}

// Names returns the registered names in sorted order.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	names := make([]string, 0, len(reg.routines))
	for name := range reg.routines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns a registry holding the built-in routines.
func Default() *Registry {
	reg := NewRegistry()
	reg.MustRegister("red_screen", RedScreen{Color: canvas.Red})
	reg.MustRegister("clear", Fill{Color: canvas.White})
	reg.MustRegister("quadrants", Quadrants{
		TopRight:    canvas.Red,
		TopLeft:     canvas.Green,
		BottomLeft:  canvas.Blue,
		BottomRight: canvas.White,
	})
	reg.MustRegister("banner", Banner{
		Text:       "Graphics",
		Foreground: canvas.White,
		Background: canvas.Rgb{Red: 0x20, Green: 0x20, Blue: 0x40},
	})
	return reg
}
