package canvas

import (
	"image/color"
	"math"
)

// Rgb is an opaque color with 8-bit range channels.
//
// Channels are stored as float64 so routines can compute shades directly;
// they are truncated and clamped to [0, 255] when packed.
type Rgb struct {
	Red, Green, Blue float64
}

var (
	Black = Rgb{0, 0, 0}
	White = Rgb{255, 255, 255}
	Red   = Rgb{255, 0, 0}
	Green = Rgb{0, 255, 0}
	Blue  = Rgb{0, 0, 255}
)

func channel(v float64) uint32 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint32(v)
}

// Pack returns the buffer encoding red*65536 + green*256 + blue.
func (c Rgb) Pack() uint32 {
	return channel(c.Red)<<16 | channel(c.Green)<<8 | channel(c.Blue)
}

// RGBA implements color.Color.
func (c Rgb) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: uint8(channel(c.Red)), G: uint8(channel(c.Green)), B: uint8(channel(c.Blue)), A: 0xFF}.RGBA()
}

// Unpack decodes a packed buffer value. The high byte is ignored.
func Unpack(p uint32) Rgb {
	return Rgb{Red: float64(p >> 16 & 0xFF), Green: float64(p >> 8 & 0xFF), Blue: float64(p & 0xFF)}
}

// RgbFromColor converts any color to Rgb, dropping alpha.
func RgbFromColor(c color.Color) Rgb {
	if c == nil {
		return Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Rgb{Red: float64(n.R), Green: float64(n.G), Blue: float64(n.B)}
}
