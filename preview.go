package ink

import "math"

// RenderPreview rasterizes a brush preview stroke: an S-curve swept
// across the given canvas with the cached engine, so the same brush,
// size, and seed always produce pixel-identical output. Jitter that
// the live engine would draw at random (scatter, size, angle) is
// pre-generated per stamp from a seeded source and fed to the cached
// engine as fixed scalars.
//
// A nil stamp falls back to a soft disk of the brush's size.
func RenderPreview(b *Brush, width, height int, stamp Stamp, seed uint64) (*Pixmap, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if stamp == nil {
		stamp = DiskStamp(b.Size)
	}

	pm := NewPixmap(width, height)
	surface := NewSoftwareSurface(pm, stamp)
	surface.SetColor(b.Color)

	engine := NewCachedEngine()
	rng := NewSeededRand(seed)

	emit := func(x, y, angleDeg float64, remaining int, last bool) {
		if b.Scatter > 0 {
			off := float64(b.Size) * b.Scatter
			engine.SetCachedScatter(rng.Uniform(-off, off), rng.Uniform(-off, off))
		}
		if b.SizeJitter > 0 {
			engine.SetCachedScale(rng.Uniform(0, b.SizeJitter))
		}
		if b.AngleJitter > 0 {
			engine.SetCachedRotation(rng.Uniform(0, 360*b.AngleJitter))
		}
		if err := engine.Draw(x, y, angleDeg, surface, b, remaining); err != nil {
			Logger().Warn("ink: preview stamp failed", "error", err)
		}
	}
	smoother := NewBezierSmoother(DefaultSmoothness, emit)

	pts := previewPath(float64(width), float64(height))
	start := TouchSample{Pos: pts[0], Pressure: 1}
	if err := engine.OnMoveBegin(start, b); err != nil {
		return nil, err
	}
	if err := smoother.SetFirstPoint(pts[0], b); err != nil {
		return nil, err
	}
	for _, p := range pts[1 : len(pts)-1] {
		if err := smoother.AddPoint(p, b); err != nil {
			return nil, err
		}
	}
	endPt := pts[len(pts)-1]
	err := smoother.SetLastPoint(endPt, b)
	engine.OnMoveEnded(TouchSample{Pos: endPt, Pressure: 1}, b)
	if err != nil {
		return nil, err
	}
	return pm, nil
}

// previewPath samples a gentle S-curve spanning the canvas with a
// margin, dense enough that the smoother sees a continuous sweep at
// any reasonable canvas size.
func previewPath(width, height float64) []Point {
	const steps = 24
	marginX := width * 0.1
	marginY := height * 0.3

	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		x := marginX + t*(width-2*marginX)
		// One full sine period gives the classic brush-preview swoosh.
		y := height/2 + (height/2-marginY)*math.Sin(2*math.Pi*t)
		pts = append(pts, Pt(x, y))
	}
	return pts
}
