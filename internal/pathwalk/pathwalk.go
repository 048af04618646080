// Package pathwalk provides an incrementally built, arc-length
// measured path. Stroke smoothers append line or quadratic-Bezier
// segments as touch points arrive and query positions at absolute arc
// lengths, which is how evenly spaced stamp emission carries fractional
// leftover distance across segment boundaries.
package pathwalk

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/spatial/r2"
)

// gaussNodes is the Gauss-Legendre node count for arc-length
// quadrature. The integrand |B'(t)| of a quadratic Bezier is smooth,
// so a small fixed rule is accurate far below stamp-placement needs.
const gaussNodes = 12

// bisectSteps bounds the arc-length inversion. 40 halvings resolve t
// to ~1e-12 of a segment, well under a device pixel.
const bisectSteps = 40

type segment interface {
	// length is the cached segment arc length.
	length() float64
	// pointAt returns the position and tangent direction in degrees
	// [0, 360) at arc length dist from the segment start.
	pointAt(dist float64) (r2.Vec, float64)
}

// lineSeg is a straight segment with precomputed length and direction.
type lineSeg struct {
	a, b r2.Vec
	len  float64
	deg  float64
}

func newLineSeg(a, b r2.Vec) lineSeg {
	d := r2.Sub(b, a)
	return lineSeg{
		a:   a,
		b:   b,
		len: r2.Norm(d),
		deg: norm360(math.Atan2(d.Y, d.X) * 180 / math.Pi),
	}
}

func (s lineSeg) length() float64 { return s.len }

func (s lineSeg) pointAt(dist float64) (r2.Vec, float64) {
	if s.len == 0 {
		return s.a, s.deg
	}
	t := dist / s.len
	return r2.Add(s.a, r2.Scale(t, r2.Sub(s.b, s.a))), s.deg
}

// quadSeg is a quadratic Bezier segment with quadrature-measured
// length.
type quadSeg struct {
	p0, p1, p2 r2.Vec
	len        float64
}

func newQuadSeg(p0, p1, p2 r2.Vec) quadSeg {
	s := quadSeg{p0: p0, p1: p1, p2: p2}
	s.len = s.arclenTo(1)
	return s
}

func (s quadSeg) length() float64 { return s.len }

// eval evaluates the curve at parameter t using the Bernstein form.
func (s quadSeg) eval(t float64) r2.Vec {
	mt := 1 - t
	return r2.Vec{
		X: mt*mt*s.p0.X + 2*mt*t*s.p1.X + t*t*s.p2.X,
		Y: mt*mt*s.p0.Y + 2*mt*t*s.p1.Y + t*t*s.p2.Y,
	}
}

// deriv returns the tangent vector B'(t).
func (s quadSeg) deriv(t float64) r2.Vec {
	d0 := r2.Sub(s.p1, s.p0)
	d1 := r2.Sub(s.p2, s.p1)
	return r2.Scale(2, r2.Add(r2.Scale(1-t, d0), r2.Scale(t, d1)))
}

// arclenTo integrates |B'(u)| over [0, t] with Gauss-Legendre
// quadrature.
func (s quadSeg) arclenTo(t float64) float64 {
	if t <= 0 {
		return 0
	}
	speed := func(u float64) float64 {
		return r2.Norm(s.deriv(u))
	}
	return quad.Fixed(speed, 0, t, gaussNodes, nil, 0)
}

func (s quadSeg) pointAt(dist float64) (r2.Vec, float64) {
	t := s.paramAt(dist)
	pos := s.eval(t)
	d := s.deriv(t)
	if d.X == 0 && d.Y == 0 {
		// Degenerate tangent (coincident control points); fall back to
		// the chord direction.
		d = r2.Sub(s.p2, s.p0)
	}
	return pos, norm360(math.Atan2(d.Y, d.X) * 180 / math.Pi)
}

// paramAt inverts the arc-length function by bisection: monotonic in t
// because speed is non-negative.
func (s quadSeg) paramAt(dist float64) float64 {
	if s.len == 0 || dist <= 0 {
		return 0
	}
	if dist >= s.len {
		return 1
	}
	lo, hi := 0.0, 1.0
	for i := 0; i < bisectSteps; i++ {
		mid := (lo + hi) / 2
		if s.arclenTo(mid) < dist {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// Path is an append-only measured path. The zero value is empty;
// Start must be called before appending segments.
type Path struct {
	segs    []segment
	cum     []float64 // cumulative arc length at the end of each segment
	cur     r2.Vec
	started bool
}

// New returns an empty path.
func New() *Path {
	return &Path{}
}

// Reset discards all segments, keeping allocated capacity for reuse
// across strokes.
func (p *Path) Reset() {
	p.segs = p.segs[:0]
	p.cum = p.cum[:0]
	p.started = false
}

// Start resets the path and sets the starting point.
func (p *Path) Start(v r2.Vec) {
	p.Reset()
	p.cur = v
	p.started = true
}

// Started reports whether Start has been called since the last Reset.
func (p *Path) Started() bool {
	return p.started
}

// End returns the current endpoint of the path.
func (p *Path) End() r2.Vec {
	return p.cur
}

// LineTo appends a straight segment from the current endpoint to v.
func (p *Path) LineTo(v r2.Vec) {
	p.push(newLineSeg(p.cur, v))
	p.cur = v
}

// QuadTo appends a quadratic Bezier segment from the current endpoint
// through control point ctrl to end.
func (p *Path) QuadTo(ctrl, end r2.Vec) {
	p.push(newQuadSeg(p.cur, ctrl, end))
	p.cur = end
}

func (p *Path) push(s segment) {
	if s.length() == 0 {
		// Zero-length segments contribute nothing to the measure and
		// would make arc-length inversion ambiguous.
		return
	}
	p.segs = append(p.segs, s)
	p.cum = append(p.cum, p.Length()+s.length())
}

// Length returns the total arc length of the path.
func (p *Path) Length() float64 {
	if len(p.cum) == 0 {
		return 0
	}
	return p.cum[len(p.cum)-1]
}

// PointAt returns the position and tangent direction in degrees
// [0, 360) at absolute arc length dist from the path start. dist is
// clamped to [0, Length]. An empty path returns the start point and 0.
func (p *Path) PointAt(dist float64) (r2.Vec, float64) {
	if len(p.segs) == 0 {
		return p.cur, 0
	}
	total := p.Length()
	if dist < 0 {
		dist = 0
	}
	if dist > total {
		dist = total
	}
	i := sort.SearchFloat64s(p.cum, dist)
	if i == len(p.segs) {
		i--
	}
	start := 0.0
	if i > 0 {
		start = p.cum[i-1]
	}
	return p.segs[i].pointAt(dist - start)
}

func norm360(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}
