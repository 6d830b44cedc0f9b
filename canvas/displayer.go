package canvas

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Displayer adapts a Canvas to drivers.Displayer in screen coordinates
// (top-left origin, y down), so tinyfont and other tinygo drawing code can
// render into it.
type Displayer struct {
	c *Canvas
}

var _ drivers.Displayer = Displayer{}

// Displayer returns a screen-coordinate view of c.
func (c *Canvas) Displayer() Displayer { return Displayer{c: c} }

func (d Displayer) Size() (x, y int16) {
	if d.c == nil {
		return 0, 0
	}
	return int16(d.c.dims.Width), int16(d.c.dims.Height)
}

func (d Displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.c == nil {
		return
	}
	w, h := d.c.dims.Width, d.c.dims.Height
	d.c.PutPixel(int(x)-w/2, h/2-1-int(y), Rgb{Red: float64(c.R), Green: float64(c.G), Blue: float64(c.B)})
}

// Display is a no-op: frames are presented by DisplayUntilExit.
func (d Displayer) Display() error { return nil }
