package ink

import (
	"github.com/gogpu/ink/internal/pathwalk"
)

// DefaultSmoothness is the corner-smoothing factor used when none is
// given. 1 keeps raw corners, 0 smooths maximally.
const DefaultSmoothness = 0.5

// BezierSmoother fits quadratic Bezier segments through the incoming
// points and emits stamps at exact arc-length intervals along the
// smoothed curve, carrying fractional leftover distance across segment
// boundaries so spacing stays uniform over the whole stroke.
//
// It buffers the last three raw points. Once three are available, each
// new point appends one quadratic segment: start at the midpoint of
// the two older points, control point at the middle one, end at the
// midpoint of the middle and the (smoothness-adjusted) newest.
type BezierSmoother struct {
	emit       StampFunc
	smoothness float64
	path       *pathwalk.Path
	consumed   float64
	prevPrev   Point
	prev       Point
	count      int
	active     bool
}

// NewBezierSmoother creates a Bezier smoother with the given
// smoothness in [0, 1] (clamped). Smoothness 1 applies no smoothing to
// incoming points; 0 smooths maximally.
func NewBezierSmoother(smoothness float64, emit StampFunc) *BezierSmoother {
	return &BezierSmoother{
		emit:       emit,
		smoothness: clamp01(smoothness),
		path:       pathwalk.New(),
	}
}

// SetFirstPoint implements Smoother. It resets the per-stroke running
// state and buffers p; nothing is emitted until three points are
// available.
func (s *BezierSmoother) SetFirstPoint(p Point, b *Brush) error {
	if err := b.Validate(); err != nil {
		return err
	}
	s.path.Reset()
	s.consumed = 0
	s.prevPrev = p
	s.count = 1
	s.active = true
	return nil
}

// AddPoint implements Smoother. The first call after SetFirstPoint
// only buffers; from the second on, each call appends exactly one
// quadratic segment and emits the stamps whose arc-length positions it
// covers.
func (s *BezierSmoother) AddPoint(p Point, b *Brush) error {
	if !s.active {
		return ErrNoActiveStroke
	}
	s.count++
	if s.count == 2 {
		s.prev = p
		return nil
	}
	// Smooth the incoming point toward the previous one:
	// cur = p*smoothness + prev*(1-smoothness).
	cur := s.prev.Lerp(p, s.smoothness)
	s.appendSegment(s.prev, s.prev.Midpoint(cur))
	emitSpaced(s.path, &s.consumed, b.SpacedWidth(), true, false, s.emit)
	s.prevPrev = s.prev
	s.prev = cur
	return nil
}

// SetLastPoint implements Smoother. The final segment ends at the raw
// endpoint (not a midpoint) so the curve reaches the finger-up
// position exactly. At least one stamp is always emitted: the
// remaining spaced stamps if any arc length is pending, else the
// endpoint itself. The final emission carries the end-of-stroke flag.
//
// A stroke with fewer than three points has no curve to fit; its
// endpoint is emitted directly as the single stamp.
func (s *BezierSmoother) SetLastPoint(p Point, b *Brush) error {
	if !s.active {
		return ErrNoActiveStroke
	}
	s.count++
	if s.count < 3 {
		s.emit(p.X, p.Y, 0, 1, true)
		s.reset()
		return nil
	}
	s.appendSegment(s.prev, p)
	if n := emitSpaced(s.path, &s.consumed, b.SpacedWidth(), true, true, s.emit); n == 0 {
		end, deg := s.path.PointAt(s.path.Length())
		s.emit(end.X, end.Y, deg, 1, true)
	}
	s.reset()
	return nil
}

// appendSegment adds one quadratic segment with control point ctrl and
// endpoint end. The very first segment of a stroke starts the path at
// the midpoint of the two buffered points; later segments continue
// from the previous endpoint, which is the same point by construction.
func (s *BezierSmoother) appendSegment(ctrl, end Point) {
	if !s.path.Started() {
		s.path.Start(vec(s.prevPrev.Midpoint(s.prev)))
	}
	s.path.QuadTo(vec(ctrl), vec(end))
}

func (s *BezierSmoother) reset() {
	s.path.Reset()
	s.consumed = 0
	s.count = 0
	s.active = false
}
