package ink

import "math"

// Surface is the raster target the engines composite stamps onto.
// It must support nested transform scopes with strict LIFO discipline:
// the engines push exactly one scope per stamp and pop it exactly once,
// including on error paths.
//
// Rotate takes degrees. The "current stamp shape" is the surface's
// concern; engines only select its placement, color, blend, and
// opacity.
type Surface interface {
	// Push saves the current transform scope.
	Push()
	// Pop restores the last saved transform scope.
	Pop()
	// Translate moves the origin by (dx, dy).
	Translate(dx, dy float64)
	// Rotate rotates the coordinate system by deg degrees.
	Rotate(deg float64)
	// Scale scales the coordinate system by (sx, sy).
	Scale(sx, sy float64)
	// SetBlend selects the compositing mode for subsequent stamps.
	SetBlend(mode BlendMode)
	// Color returns the current stamp color.
	Color() RGBA
	// SetColor replaces the current stamp color.
	SetColor(c RGBA)
	// DrawStamp draws the current stamp shape at the origin of the
	// current transform with the given opacity.
	DrawStamp(opacity uint8) error
}

// Engine composites one brush stamp per Draw call onto a Surface,
// mutating per-stroke running state (taper progress, speed-derived
// variance, pressure smoothing, hue phase) as the stroke advances.
//
// Engines are long-lived and reusable across strokes, but serve one
// stroke at a time: OnMoveBegin fully resets the running state,
// OnMoveEnded discards it. Draw is only valid in between; outside an
// active stroke it returns ErrNoActiveStroke, and OnMove/OnMoveEnded
// are no-ops.
type Engine interface {
	// OnMoveBegin starts a stroke, resetting all per-stroke state from
	// the first touch sample and the brush. It fails fast on invalid
	// brush configuration.
	OnMoveBegin(s TouchSample, b *Brush) error

	// OnMove folds one movement sample into the continuous running
	// state: speed-derived variance targets and pressure-smoothed
	// size/opacity factors.
	OnMove(s TouchSample, b *Brush)

	// OnMoveEnded finishes the stroke: pressure factors snap to the
	// exact mapped value, stroke-scoped trackers reset, and the
	// brush's spacing is restored to its OnMoveBegin snapshot.
	OnMoveEnded(s TouchSample, b *Brush)

	// Draw composites one stamp at (x, y) with path direction angleDeg
	// onto dst. remaining is the countdown batch index from the
	// smoother (n..1 across one batch); values below 1 are treated
	// as 1.
	Draw(x, y, angleDeg float64, dst Surface, b *Brush, remaining int) error

	// SetEraserMode selects destination-out compositing for subsequent
	// strokes instead of the brush's blend mode.
	SetEraserMode(on bool)

	// EraserMode reports whether eraser mode is enabled.
	EraserMode() bool
}

// strokeState is the running state owned by one engine instance for
// the duration of one stroke. It is reset at OnMoveBegin, mutated by
// OnMove and by each Draw call, and discarded at OnMoveEnded; stale
// state leaking across strokes shows up as visible artifacts (taper or
// hue phase carrying over), so the reset is a correctness invariant.
type strokeState struct {
	active bool

	taper float64

	sizeVarianceTarget float64
	easedSizeVariance  float64
	lastSizeSpeed      float64

	opacityVarianceTarget float64
	easedOpacityVariance  float64
	lastOpacitySpeed      float64

	curSizePressure     float64
	lastSizePressure    float64
	curOpacityPressure  float64
	lastOpacityPressure float64

	huePhase  float64
	hueRising bool

	spacingSnapshot float64
}

// mappedPressure maps a raw pressure reading to a size/opacity factor
// through the brush's pressure range. Full pressure means no
// modulation, and a disabled axis is pinned to the identity factor.
func mappedPressure(b *Brush, pressure float64, sensitive bool) float64 {
	p := clamp01(pressure)
	if !sensitive || p == 1 {
		return 1
	}
	return MapRange(p, 0, 1, b.MinPressure, b.MaxPressure)
}

// speedBlend folds a new velocity sample into the running estimate and
// returns the blended value plus the direction-agnostic speed delta
// |blended - last|. Reversing stroke direction does not reverse the
// trend; the trackers react to how fast the estimate moves, not where.
func speedBlend(v, last, sensitivity float64) (blended, speed float64) {
	sens := clamp01(sensitivity)
	blended = v*sens + last*(1-sens)
	speed = math.Abs(blended - last)
	return blended, speed
}

// strokeVelocity normalizes a sample's movement by the brush size so
// variance bands behave the same across brush scales.
func strokeVelocity(s TouchSample, b *Brush) float64 {
	size := float64(b.Size)
	if size < 1 {
		size = 1
	}
	return s.Speed() / size
}
