package ink

// Painter wires a smoother, an engine, and a surface into one stroke
// pipeline: raw touch samples in, composited stamps out. It owns the
// callback plumbing between the smoother's spaced positions and the
// engine's Draw, and surfaces the first error raised anywhere in a
// batch.
//
// A Painter serves one stroke at a time. It is not safe for concurrent
// use; drive each Painter from a single goroutine.
type Painter struct {
	engine   Engine
	surface  Surface
	brush    *Brush
	smoother Smoother

	drawErr error
}

// PainterOption configures a Painter at construction.
type PainterOption func(*painterConfig)

type painterConfig struct {
	linear     bool
	smoothness float64
}

// WithLinearSmoother selects straight-segment interpolation instead of
// the default bezier smoothing. Stamps land on the raw polyline and
// carry no path angle.
func WithLinearSmoother() PainterOption {
	return func(c *painterConfig) {
		c.linear = true
	}
}

// WithSmoothness sets the bezier smoother's corner-cutting factor in
// [0, 1]. Ignored when the linear smoother is selected.
func WithSmoothness(smoothness float64) PainterOption {
	return func(c *painterConfig) {
		c.smoothness = smoothness
	}
}

// NewPainter creates a Painter drawing with b through engine onto
// surface. The default smoother is the bezier smoother with
// DefaultSmoothness.
func NewPainter(engine Engine, surface Surface, b *Brush, opts ...PainterOption) *Painter {
	cfg := painterConfig{smoothness: DefaultSmoothness}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Painter{
		engine:  engine,
		surface: surface,
		brush:   b,
	}
	if cfg.linear {
		p.smoother = NewLinearSmoother(p.onStamp)
	} else {
		p.smoother = NewBezierSmoother(cfg.smoothness, p.onStamp)
	}
	return p
}

// Brush returns the painter's brush.
func (p *Painter) Brush() *Brush {
	return p.brush
}

// SetBrush replaces the painter's brush. Swapping mid-stroke is
// allowed but the engine's running state still reflects the stroke's
// opening brush.
func (p *Painter) SetBrush(b *Brush) {
	p.brush = b
}

// BeginStroke starts a stroke at the sample's position. The engine's
// running state is reset before the smoother sees the point.
func (p *Painter) BeginStroke(s TouchSample) error {
	p.drawErr = nil
	if err := p.engine.OnMoveBegin(s, p.brush); err != nil {
		return err
	}
	return p.smoother.SetFirstPoint(s.Pos, p.brush)
}

// ContinueStroke extends the stroke with one movement sample. The
// engine folds the sample into its running state before any stamp from
// this sample is drawn, so speed and pressure trackers are current for
// the whole batch.
func (p *Painter) ContinueStroke(s TouchSample) error {
	p.engine.OnMove(s, p.brush)
	if err := p.smoother.AddPoint(s.Pos, p.brush); err != nil {
		return err
	}
	return p.takeDrawErr()
}

// EndStroke finishes the stroke at the sample's position. At least one
// stamp is always drawn, and the engine's per-stroke state is
// discarded afterwards.
func (p *Painter) EndStroke(s TouchSample) error {
	err := p.smoother.SetLastPoint(s.Pos, p.brush)
	p.engine.OnMoveEnded(s, p.brush)
	if err != nil {
		return err
	}
	return p.takeDrawErr()
}

// onStamp is the smoother callback: one evenly spaced stamp position
// per call, forwarded to the engine. The first draw error in a batch
// is kept; later stamps still run so the transform stack stays
// balanced and the stroke's running state keeps advancing.
func (p *Painter) onStamp(x, y, angleDeg float64, remaining int, _ bool) {
	if err := p.engine.Draw(x, y, angleDeg, p.surface, p.brush, remaining); err != nil && p.drawErr == nil {
		p.drawErr = err
	}
}

func (p *Painter) takeDrawErr() error {
	err := p.drawErr
	p.drawErr = nil
	return err
}
