package ink

import (
	"errors"

	"github.com/gogpu/ink/internal/pathwalk"
)

// ErrNoActiveStroke reports a lifecycle call arriving outside an
// active stroke: AddPoint or SetLastPoint before SetFirstPoint, or
// Engine.Draw outside OnMoveBegin..OnMoveEnded. The pipeline treats
// this as a defined fallback rather than a panic: the call does
// nothing but report it.
var ErrNoActiveStroke = errors.New("ink: no active stroke")

// StampFunc receives one evenly spaced stamp position emitted by a
// smoother.
//
// x, y is the stamp position; angleDeg is the path direction at that
// position in degrees [0, 360) (always 0 for the linear smoother).
//
// remaining counts down across the stamps emitted by a single smoother
// call: the first stamp of a batch of n carries n, the final stamp
// carries 1. Engines use it to spread a pressure delta evenly across
// the batch.
//
// last is true exactly once per stroke, on the final stamp emitted by
// SetLastPoint; the engine performs its end-of-stroke finalization on
// that stamp.
type StampFunc func(x, y, angleDeg float64, remaining int, last bool)

// Smoother converts a stream of raw stroke points into evenly spaced
// stamp positions. Implementations are long-lived and reusable: their
// running state is per-stroke and is fully reset by SetFirstPoint.
//
// Each stroke is exactly one SetFirstPoint, zero or more AddPoint
// calls, then exactly one SetLastPoint. A call may emit zero, one, or
// many stamps through the callback, depending on the arc length
// accumulated against the brush's SpacedWidth.
type Smoother interface {
	// SetFirstPoint starts a stroke at p. No stamp is emitted yet.
	SetFirstPoint(p Point, b *Brush) error

	// AddPoint extends the stroke to p, emitting any stamps whose arc
	// length positions have been passed.
	AddPoint(p Point, b *Brush) error

	// SetLastPoint finishes the stroke at p. It always emits at least
	// one stamp, and flags the final one as the stroke's last.
	SetLastPoint(p Point, b *Brush) error
}

// emitSpaced walks path from *consumed to its current length in steps
// of w, invoking emit once per step with a countdown batch index.
// withAngle selects whether the path tangent is reported (the linear
// smoother always reports 0). When flagLast is set, the final emission
// carries the end-of-stroke flag. Returns the number of stamps
// emitted; the fractional leftover below w stays in *consumed
// accounting, which is what keeps spacing exact across segment
// boundaries.
func emitSpaced(path *pathwalk.Path, consumed *float64, w float64, withAngle, flagLast bool, emit StampFunc) int {
	n := int((path.Length() - *consumed) / w)
	for i := 1; i <= n; i++ {
		*consumed += w
		pos, deg := path.PointAt(*consumed)
		if !withAngle {
			deg = 0
		}
		emit(pos.X, pos.Y, deg, n-i+1, flagLast && i == n)
	}
	return n
}
