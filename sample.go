package ink

import "time"

// TouchSample is one pointer event as delivered by the input layer.
// Samples arrive in temporal order: exactly one per BeginStroke, zero
// or more per ContinueStroke, exactly one per EndStroke.
//
// A TouchSample is an immutable, short-lived value; the pipeline never
// retains one beyond the call it was passed to.
type TouchSample struct {
	// Pos is the sample position in surface coordinates.
	Pos Point

	// Delta is the movement since the previous sample of the stroke.
	// Zero for the first sample.
	Delta Point

	// Traveled is the cumulative absolute movement per axis since the
	// stroke began.
	Traveled Point

	// Time is when the sample was captured.
	Time time.Time

	// Pressure is the stylus/finger pressure in [0, 1].
	// Inputs outside the range are clamped at the point of use.
	Pressure float64
}

// Speed returns the movement magnitude since the previous sample.
func (s TouchSample) Speed() float64 {
	return s.Delta.Length()
}
