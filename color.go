package ink

import (
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Alpha is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = RGBA{R: 0, G: 0, B: 0, A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Transparent = RGBA{R: 0, G: 0, B: 0, A: 0}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	// c.RGBA returns premultiplied 16-bit channels.
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// ShiftHue returns the color with its hue rotated by deg degrees.
// Saturation, value, and alpha are preserved. The resulting hue is
// normalized to [0, 360).
func (c RGBA) ShiftHue(deg float64) RGBA {
	if deg == 0 {
		return c
	}
	h, s, v := RGBToHSV(c.R, c.G, c.B)
	r, g, b := HSVToRGB(Normalize360(h+deg), s, v)
	return RGBA{R: r, G: g, B: b, A: c.A}
}

// RGBToHSV converts RGB components in [0, 1] to hue in [0, 360) and
// saturation/value in [0, 1].
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	r, g, b = clamp01(r), clamp01(g), clamp01(b)
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	v = maxC
	d := maxC - minC
	if maxC > 0 {
		s = d / maxC
	}
	if d == 0 {
		return 0, s, v
	}
	switch maxC {
	case r:
		h = (g - b) / d
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return Normalize360(h * 60), s, v
}

// HSVToRGB converts hue in degrees and saturation/value in [0, 1] to
// RGB components in [0, 1].
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	s, v = clamp01(s), clamp01(v)
	h = Normalize360(h) / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
