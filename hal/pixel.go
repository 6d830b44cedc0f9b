package hal

import "fmt"

func unpackXRGB(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

func packXRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// toRGBA expands a packed xRGB frame into dst as opaque RGBA bytes.
func toRGBA(dst []byte, src []uint32, width, height int) error {
	n := width * height
	if len(src) != n {
		return fmt.Errorf("%w: got %d pixels, want %dx%d", ErrFrameSize, len(src), width, height)
	}
	if len(dst) != n*4 {
		return fmt.Errorf("%w: scratch holds %d bytes, want %d", ErrFrameSize, len(dst), n*4)
	}
	for i, p := range src {
		r, g, b := unpackXRGB(p)
		j := i * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
	return nil
}
