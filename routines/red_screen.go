package routines

import "graphics/canvas"

// RedScreen fills the canvas by mirroring each quadrant offset through
// all four sign combinations.
type RedScreen struct {
	Color canvas.Rgb
}

func (r RedScreen) Run(c *canvas.Canvas) error {
	r.Draw(c)
	return c.DisplayUntilExit()
}

// Draw paints without displaying.
func (r RedScreen) Draw(c *canvas.Canvas) {
	d := c.Dimensions()
	for i := 0; i < d.Width/2; i++ {
		for j := 0; j < d.Height/2; j++ {
			c.PutPixel(i, j, r.Color)
			c.PutPixel(i, -j, r.Color)
			c.PutPixel(-i, j, r.Color)
			c.PutPixel(-i, -j, r.Color)
		}
	}
}

// Fill clears the canvas to a single color.
type Fill struct {
	Color canvas.Rgb
}

func (f Fill) Run(c *canvas.Canvas) error {
	c.ClearCanvas(f.Color)
	return c.DisplayUntilExit()
}

// Quadrants colors each quadrant of the logical plane. Pixels on the axes
// belong to the positive side.
type Quadrants struct {
	TopRight, TopLeft, BottomLeft, BottomRight canvas.Rgb
}

func (q Quadrants) Run(c *canvas.Canvas) error {
	q.Draw(c)
	return c.DisplayUntilExit()
}

func (q Quadrants) Draw(c *canvas.Canvas) {
	d := c.Dimensions()
	for x := -d.Width / 2; x < d.Width-d.Width/2; x++ {
		for y := d.Height/2 - d.Height; y < d.Height/2; y++ {
			col := q.BottomLeft
			switch {
			case x >= 0 && y >= 0:
				col = q.TopRight
			case y >= 0:
				col = q.TopLeft
			case x >= 0:
				col = q.BottomRight
			}
			c.PutPixel(x, y, col)
		}
	}
}
