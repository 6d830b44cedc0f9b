//go:build cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

var hostKeys = map[KeyCode]ebiten.Key{
	KeyUp:     ebiten.KeyArrowUp,
	KeyDown:   ebiten.KeyArrowDown,
	KeyLeft:   ebiten.KeyArrowLeft,
	KeyRight:  ebiten.KeyArrowRight,
	KeyEnter:  ebiten.KeyEnter,
	KeyEscape: ebiten.KeyEscape,
	KeySpace:  ebiten.KeySpace,
}

// hostKeyboard is the input snapshot taken at the start of each Update.
type hostKeyboard struct {
	closed bool
	down   map[KeyCode]bool
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{down: make(map[KeyCode]bool, len(hostKeys))}
}

func (k *hostKeyboard) Closed() bool { return k.closed }

func (k *hostKeyboard) KeyDown(code KeyCode) bool { return k.down[code] }

func (k *hostKeyboard) poll() {
	k.closed = ebiten.IsWindowBeingClosed()
	for code, key := range hostKeys {
		k.down[code] = ebiten.IsKeyPressed(key)
	}
}
