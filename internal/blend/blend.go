// Package blend implements the Porter-Duff compositing operators used
// by the brush pipeline: source-over for normal painting,
// destination-out for erasing, and the multiply/screen separable
// modes.
//
// All blend operations work with premultiplied alpha values in the
// range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Func is the signature for blend operations. All values are
// premultiplied alpha, 0-255.
// Parameters:
//   - sr, sg, sb, sa: source color (red, green, blue, alpha)
//   - dr, dg, db, da: destination color (red, green, blue, alpha)
//
// Returns: resulting color (r, g, b, a) after blending.
type Func func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

// mul255 computes a*b/255 with rounding.
func mul255(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}

// addClamped adds two bytes, clamping at 255.
func addClamped(a, b uint8) uint8 {
	s := uint32(a) + uint32(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// SourceOver composites source over destination:
// Result = S + D*(1-Sa).
func SourceOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return addClamped(sr, mul255(dr, inv)),
		addClamped(sg, mul255(dg, inv)),
		addClamped(sb, mul255(db, inv)),
		addClamped(sa, mul255(da, inv))
}

// DestinationOut keeps destination only where the source has no
// coverage: Result = D*(1-Sa). The source color is irrelevant; only
// its alpha erases.
func DestinationOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return mul255(dr, inv),
		mul255(dg, inv),
		mul255(db, inv),
		mul255(da, inv)
}

// Multiply darkens: per channel, Result = S*D + S*(1-Da) + D*(1-Sa)
// for premultiplied values. Alpha composites as source-over.
func Multiply(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	invDa := 255 - da
	mulChan := func(s, d uint8) uint8 {
		return addClamped(mul255(s, d), addClamped(mul255(s, invDa), mul255(d, invSa)))
	}
	return mulChan(sr, dr),
		mulChan(sg, dg),
		mulChan(sb, db),
		addClamped(sa, mul255(da, invSa))
}

// Screen lightens: per channel, Result = S + D - S*D for premultiplied
// values. Alpha composites as source-over (identical formula at the
// alpha channel).
func Screen(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	// s + d - s*d/255 is always in [0, 255]; compute wide to avoid
	// intermediate clamping.
	screenChan := func(s, d uint8) uint8 {
		return uint8(uint32(s) + uint32(d) - uint32(mul255(s, d)))
	}
	return screenChan(sr, dr),
		screenChan(sg, dg),
		screenChan(sb, db),
		screenChan(sa, da)
}
