package core

import "image/color"

// RGB is an opaque 24-bit color used for every pixel the renderer produces.
// It satisfies image/color.Color so frames can be handed to image encoders
// and graphics backends without conversion.
type RGB struct {
	R, G, B uint8
}

// Gray returns a neutral color with all channels set to v.
func Gray(v uint8) RGB {
	return RGB{R: v, G: v, B: v}
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Lerp blends from c to other by t in [0, 1], truncating each channel.
func (c RGB) Lerp(other RGB, t float64) RGB {
	t = ClampF(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-t) + float64(b)*t)
	}
	return RGB{
		R: mix(c.R, other.R),
		G: mix(c.G, other.G),
		B: mix(c.B, other.B),
	}
}

// Hex returns the color as a "#rrggbb" string for terminal styling.
func (c RGB) Hex() string {
	const digits = "0123456789abcdef"
	return string([]byte{
		'#',
		digits[c.R>>4], digits[c.R&0x0f],
		digits[c.G>>4], digits[c.G&0x0f],
		digits[c.B>>4], digits[c.B&0x0f],
	})
}

var _ color.Color = RGB{}
