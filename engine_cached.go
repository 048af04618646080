package ink

// CachedEngine is the deterministic drawing engine. It shares the live
// engine's geometric structure (translate, rotate, taper, scale) but
// every jitter source is an externally supplied, pre-generated scalar
// instead of a random draw, so repeated calls with the same cached
// inputs produce pixel-identical output. It exists to render
// deterministic previews and thumbnails of a brush without a recorded
// touch path.
//
// It has no pressure sensitivity, no variance tracking, and no hue
// flow; the only color control is an optional one-shot override. It
// never supports erasing.
type CachedEngine struct {
	scatterX float64
	scatterY float64
	scale    float64
	rotation float64
	override *RGBA

	active bool
	taper  float64
}

// NewCachedEngine creates a cached engine with all jitter scalars
// zeroed.
func NewCachedEngine() *CachedEngine {
	return &CachedEngine{}
}

// SetCachedScatter sets the per-stamp position offset in pixels.
func (e *CachedEngine) SetCachedScatter(dx, dy float64) {
	e.scatterX, e.scatterY = dx, dy
}

// SetCachedScale sets the per-stamp extra scale fraction: the stamp is
// drawn at (1 + scale) times its tapered size.
func (e *CachedEngine) SetCachedScale(scale float64) {
	e.scale = scale
}

// SetCachedRotation sets the per-stamp extra rotation in degrees.
func (e *CachedEngine) SetCachedRotation(deg float64) {
	e.rotation = deg
}

// SetColorOverride forces the stamp color for subsequent draws.
// Pass nil to clear the override.
func (e *CachedEngine) SetColorOverride(c *RGBA) {
	e.override = c
}

// SetEraserMode implements Engine as a no-op: the cached engine never
// erases.
func (e *CachedEngine) SetEraserMode(bool) {}

// EraserMode implements Engine; always false.
func (e *CachedEngine) EraserMode() bool {
	return false
}

// OnMoveBegin implements Engine.
func (e *CachedEngine) OnMoveBegin(s TouchSample, b *Brush) error {
	if err := b.Validate(); err != nil {
		return err
	}
	e.taper = b.StartTaperSize
	e.active = true
	return nil
}

// OnMove implements Engine as a no-op: the cached engine keeps no
// speed- or pressure-derived state.
func (e *CachedEngine) OnMove(TouchSample, *Brush) {}

// OnMoveEnded implements Engine.
func (e *CachedEngine) OnMoveEnded(s TouchSample, b *Brush) {
	e.taper = b.StartTaperSize
	e.active = false
}

// Draw implements Engine. With all cached scalars zero and a neutral
// brush, a stamp translates to exactly (x, y), applies no rotation or
// scale, and draws at opacity 255.
func (e *CachedEngine) Draw(x, y, angleDeg float64, dst Surface, b *Brush, remaining int) error {
	if !e.active {
		Logger().Debug("ink: draw outside an active stroke")
		return ErrNoActiveStroke
	}

	dst.SetBlend(BlendSourceOver)
	dst.Push()
	defer dst.Pop()

	dst.Translate(x+e.scatterX, y+e.scatterY)

	if rot := b.Angle + e.rotation + angleDeg; rot != 0 {
		dst.Rotate(Normalize360(rot))
	}

	tapering := b.StartTaperSpeed > 0 && b.StartTaperSize != 1
	if tapering && e.taper != 1 {
		if b.StartTaperSize < 1 {
			e.taper = min(1, e.taper+b.StartTaperSpeed)
		} else {
			e.taper = max(1, e.taper-b.StartTaperSpeed)
		}
	}
	finalTaper := 1.0
	if tapering {
		finalTaper = e.taper
	}

	if finalScale := (1 + e.scale) * finalTaper; finalScale != 1 {
		dst.Scale(finalScale, finalScale)
	}

	prevColor := dst.Color()
	if e.override != nil {
		dst.SetColor(*e.override)
	}

	opacity := b.Opacity * 255
	if b.AlphaBlend {
		opacity = 255
	}

	err := dst.DrawStamp(uint8(clamp255(opacity)))
	if e.override != nil {
		dst.SetColor(prevColor)
	}
	return err
}
