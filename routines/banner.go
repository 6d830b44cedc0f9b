package routines

import (
	"image/color"

	"graphics/canvas"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Banner writes a single line of text centred on the canvas.
type Banner struct {
	Text       string
	Foreground canvas.Rgb
	Background canvas.Rgb
	// Font defaults to proggy TinySZ8pt7b.
	Font tinyfont.Fonter
}

func (b Banner) Run(c *canvas.Canvas) error {
	b.Draw(c)
	return c.DisplayUntilExit()
}

func (b Banner) Draw(c *canvas.Canvas) {
	c.ClearCanvas(b.Background)
	if b.Text == "" {
		return
	}
	font := b.Font
	if font == nil {
		font = &proggy.TinySZ8pt7b
	}

	d := c.Displayer()
	w, h := d.Size()
	_, outboxWidth := tinyfont.LineWidth(font, b.Text)
	x := (w - int16(outboxWidth)) / 2
	if x < 0 {
		x = 0
	}
	// WriteLine takes the baseline; place it so the line sits around the middle row.
	y := h/2 + int16(font.GetYAdvance())/2

	fg := color.RGBAModel.Convert(b.Foreground).(color.RGBA)
	tinyfont.WriteLine(d, font, x, y, b.Text, fg)
}
