package ink

import "math"

// Scalar helpers shared by the smoothers and engines.
// All angle parameters and results are in degrees.

// MapRange linearly remaps v from [inLo, inHi] to [outLo, outHi].
// v outside the input range extrapolates; a degenerate input range
// (inLo == inHi) returns outLo.
func MapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

// Normalize360 wraps an angle in degrees into [0, 360).
// Idempotent: Normalize360(Normalize360(x)) == Normalize360(x) for all
// finite x.
func Normalize360(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// A tiny negative input can round up to exactly 360 after the wrap.
	if d >= 360 {
		d = 0
	}
	return d
}

// Distance returns the Euclidean distance between two points.
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// AngleDegrees returns the direction from p to q in degrees,
// normalized to [0, 360). Coincident points yield 0.
func AngleDegrees(p, q Point) float64 {
	return Normalize360(math.Atan2(q.Y-p.Y, q.X-p.X) * 180 / math.Pi)
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clamp01 restricts v to [0, 1].
func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

// clamp255 restricts v to [0, 255].
func clamp255(v float64) float64 {
	return clamp(v, 0, 255)
}

// lerp interpolates between a and b. t=0 returns a, t=1 returns b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// minMax returns its arguments in ascending order.
func minMax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

// easeToward moves cur one fixed step toward target without
// overshooting. A non-positive step leaves cur unchanged.
func easeToward(cur, target, step float64) float64 {
	if step <= 0 || cur == target {
		return cur
	}
	if cur < target {
		cur += step
		if cur > target {
			cur = target
		}
	} else {
		cur -= step
		if cur < target {
			cur = target
		}
	}
	return cur
}
