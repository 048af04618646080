package ink

import (
	"fmt"
	"time"
)

// recordSurface is a Surface that logs every call as a formatted
// string, so tests can assert the exact operation sequence an engine
// produces for one stamp.
type recordSurface struct {
	ops     []string
	color   RGBA
	depth   int
	drawErr error
}

func newRecordSurface() *recordSurface {
	return &recordSurface{color: Black}
}

func (s *recordSurface) log(format string, args ...any) {
	s.ops = append(s.ops, fmt.Sprintf(format, args...))
}

func (s *recordSurface) Push() {
	s.depth++
	s.log("Push")
}

func (s *recordSurface) Pop() {
	s.depth--
	s.log("Pop")
}

func (s *recordSurface) Translate(dx, dy float64) {
	s.log("Translate(%.4f,%.4f)", dx, dy)
}

func (s *recordSurface) Rotate(deg float64) {
	s.log("Rotate(%.4f)", deg)
}

func (s *recordSurface) Scale(sx, sy float64) {
	s.log("Scale(%.4f,%.4f)", sx, sy)
}

func (s *recordSurface) SetBlend(mode BlendMode) {
	s.log("SetBlend(%v)", mode)
}

func (s *recordSurface) Color() RGBA {
	return s.color
}

func (s *recordSurface) SetColor(c RGBA) {
	s.color = c
	s.log("SetColor(%.4f,%.4f,%.4f,%.4f)", c.R, c.G, c.B, c.A)
}

func (s *recordSurface) DrawStamp(opacity uint8) error {
	s.log("DrawStamp(%d)", opacity)
	return s.drawErr
}

// fixedRand replays a cyclic script of fractions in [0, 1], mapping
// each onto the requested range. Deterministic stand-in for the seeded
// source in engine tests.
type fixedRand struct {
	fracs []float64
	i     int
}

func (r *fixedRand) Uniform(lo, hi float64) float64 {
	if len(r.fracs) == 0 {
		return lo
	}
	f := r.fracs[r.i%len(r.fracs)]
	r.i++
	return lo + f*(hi-lo)
}

// sampleAt builds a touch sample with the given position delta and
// pressure; timestamps are fixed since the engines derive speed from
// the delta, not wall time.
func sampleAt(x, y, dx, dy, pressure float64) TouchSample {
	return TouchSample{
		Pos:      Pt(x, y),
		Delta:    Pt(dx, dy),
		Time:     time.Unix(0, 0),
		Pressure: pressure,
	}
}

func equalOps(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
