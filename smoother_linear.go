package ink

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gogpu/ink/internal/pathwalk"
)

// LinearSmoother is the basic stroke smoother: it accumulates raw
// points into a polyline and emits stamps at exact arc-length
// intervals along the whole accumulated path. It does not compute a
// direction angle (always 0), trading direction-awareness for
// simplicity and exact spacing.
type LinearSmoother struct {
	emit     StampFunc
	path     *pathwalk.Path
	consumed float64
	active   bool
}

// NewLinearSmoother creates a linear smoother that reports stamps to
// emit.
func NewLinearSmoother(emit StampFunc) *LinearSmoother {
	return &LinearSmoother{
		emit: emit,
		path: pathwalk.New(),
	}
}

// SetFirstPoint implements Smoother. It resets the per-stroke running
// state and starts the polyline at p.
func (s *LinearSmoother) SetFirstPoint(p Point, b *Brush) error {
	if err := b.Validate(); err != nil {
		return err
	}
	s.path.Start(vec(p))
	s.consumed = 0
	s.active = true
	return nil
}

// AddPoint implements Smoother. It appends one polyline segment and
// emits a stamp for every full SpacedWidth of arc length accumulated
// since the last emission. Emitting zero stamps for a very short
// segment is correct, not an error.
func (s *LinearSmoother) AddPoint(p Point, b *Brush) error {
	if !s.active {
		return ErrNoActiveStroke
	}
	s.path.LineTo(vec(p))
	emitSpaced(s.path, &s.consumed, b.SpacedWidth(), false, false, s.emit)
	return nil
}

// SetLastPoint implements Smoother. It appends the final segment,
// emits the remaining spaced stamps, and guarantees at least one
// emission so the engine always sees the end-of-stroke flag: if no
// spaced stamp is pending, the raw endpoint itself is emitted.
func (s *LinearSmoother) SetLastPoint(p Point, b *Brush) error {
	if !s.active {
		return ErrNoActiveStroke
	}
	s.path.LineTo(vec(p))
	if n := emitSpaced(s.path, &s.consumed, b.SpacedWidth(), false, true, s.emit); n == 0 {
		s.emit(p.X, p.Y, 0, 1, true)
	}
	s.path.Reset()
	s.consumed = 0
	s.active = false
	return nil
}

// vec converts a Point to the pathwalk vector type.
func vec(p Point) r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}
