package ink

import "time"

// LiveEngine is the full-featured, stateful drawing engine. Jitter is
// drawn from an injected Rand at draw time, and size, opacity, and hue
// react continuously to movement speed and pressure.
type LiveEngine struct {
	rng    Rand
	eraser bool
	blend  BlendMode
	state  strokeState
}

// NewLiveEngine creates a live engine. Pass nil to use a default
// time-seeded random source; inject a NewSeededRand for reproducible
// strokes.
func NewLiveEngine(rng Rand) *LiveEngine {
	if rng == nil {
		rng = NewSeededRand(uint64(time.Now().UnixNano()))
	}
	return &LiveEngine{rng: rng}
}

// SetEraserMode implements Engine. The mode takes effect at the next
// OnMoveBegin.
func (e *LiveEngine) SetEraserMode(on bool) {
	e.eraser = on
}

// EraserMode implements Engine.
func (e *LiveEngine) EraserMode() bool {
	return e.eraser
}

// OnMoveBegin implements Engine. All per-stroke running state starts
// fresh here; nothing survives from the previous stroke.
func (e *LiveEngine) OnMoveBegin(s TouchSample, b *Brush) error {
	if err := b.Validate(); err != nil {
		return err
	}
	st := &e.state
	st.active = true

	st.taper = b.StartTaperSize

	st.sizeVarianceTarget = b.SizeVariance
	st.easedSizeVariance = b.SizeVariance
	st.lastSizeSpeed = 0

	opacityExtreme := clamp255(b.Opacity*255 + b.OpacityVariance*255)
	st.opacityVarianceTarget = opacityExtreme
	st.easedOpacityVariance = opacityExtreme
	st.lastOpacitySpeed = 0

	sizeP := mappedPressure(b, s.Pressure, b.SizePressure)
	st.curSizePressure, st.lastSizePressure = sizeP, sizeP
	opacityP := mappedPressure(b, s.Pressure, b.OpacityPressure)
	st.curOpacityPressure, st.lastOpacityPressure = opacityP, opacityP

	st.huePhase = 0
	st.hueRising = true

	st.spacingSnapshot = b.Spacing

	e.blend = b.Blend
	if e.eraser {
		e.blend = BlendDestinationOut
	}
	return nil
}

// OnMove implements Engine. It updates the continuous running state
// that evolves with movement speed: variance targets and
// pressure-smoothed factors. Per-stamp effects happen in Draw.
func (e *LiveEngine) OnMove(s TouchSample, b *Brush) {
	st := &e.state
	if !st.active {
		return
	}
	vel := strokeVelocity(s, b)

	if b.SizeVariance != 1 {
		blended, speed := speedBlend(vel, st.lastSizeSpeed, b.SizeVarianceSensitivity)
		st.lastSizeSpeed = blended
		lo, hi := minMax(1, b.SizeVariance)
		st.sizeVarianceTarget = clamp(1+speed*(b.SizeVariance-1), lo, hi)
	}

	if b.OpacityVariance != 0 {
		blended, speed := speedBlend(vel, st.lastOpacitySpeed, b.OpacityVarianceSpeed)
		st.lastOpacitySpeed = blended
		neutral := clamp255(b.Opacity * 255)
		lo, hi := minMax(neutral, clamp255(neutral+b.OpacityVariance*255))
		st.opacityVarianceTarget = clamp(neutral+speed*b.OpacityVariance*255, lo, hi)
	}

	st.curSizePressure = e.blendPressure(st.curSizePressure, s.Pressure, b, b.SizePressure)
	st.curOpacityPressure = e.blendPressure(st.curOpacityPressure, s.Pressure, b, b.OpacityPressure)
}

// blendPressure folds a new pressure reading into the running factor
// with the brush's sensitivity, clamped into the configured pressure
// range. Disabled sensitivity or full pressure pins the factor to 1.
func (e *LiveEngine) blendPressure(cur, pressure float64, b *Brush, sensitive bool) float64 {
	p := clamp01(pressure)
	if !sensitive || p == 1 {
		return 1
	}
	target := MapRange(p, 0, 1, b.MinPressure, b.MaxPressure)
	sens := clamp01(b.PressureSensitivity)
	return clamp(target*sens+cur*(1-sens), b.MinPressure, b.MaxPressure)
}

// OnMoveEnded implements Engine. Pressure factors snap to the exact
// mapped value so the stroke end has no smoothing lag; stroke-scoped
// trackers reset; the brush's spacing is restored to the OnMoveBegin
// snapshot.
func (e *LiveEngine) OnMoveEnded(s TouchSample, b *Brush) {
	st := &e.state
	if !st.active {
		return
	}
	sizeP := mappedPressure(b, s.Pressure, b.SizePressure)
	st.curSizePressure, st.lastSizePressure = sizeP, sizeP
	opacityP := mappedPressure(b, s.Pressure, b.OpacityPressure)
	st.curOpacityPressure, st.lastOpacityPressure = opacityP, opacityP

	st.taper = b.StartTaperSize
	st.huePhase = 0
	st.hueRising = true

	b.Spacing = st.spacingSnapshot
	st.active = false
}

// Draw implements Engine: the per-stamp compositing step. One
// transform scope is pushed per stamp and popped exactly once, even on
// error.
func (e *LiveEngine) Draw(x, y, angleDeg float64, dst Surface, b *Brush, remaining int) error {
	st := &e.state
	if !st.active {
		Logger().Debug("ink: draw outside an active stroke")
		return ErrNoActiveStroke
	}
	if remaining < 1 {
		remaining = 1
	}

	dst.SetBlend(e.blend)
	dst.Push()
	defer dst.Pop()

	// Position, with optional scatter offset.
	tx, ty := x, y
	if b.Scatter > 0 {
		off := float64(b.Size) * b.Scatter
		tx += e.rng.Uniform(-off, off)
		ty += e.rng.Uniform(-off, off)
	}
	dst.Translate(tx, ty)

	// Rotation. Jitter applies whenever a fixed or direction angle is
	// present, and also when the fixed angle is exactly 0: a jittered
	// brush spins even on a direction-less stamp.
	if b.AngleJitter > 0 && (b.Angle > 0 || angleDeg > 0 || b.Angle == 0) {
		dst.Rotate(Normalize360(b.Angle + e.rng.Uniform(0, 360*b.AngleJitter) + angleDeg))
	} else if b.Angle != 0 || angleDeg != 0 {
		dst.Rotate(b.Angle + angleDeg)
	}

	// Taper ramps toward 1 by StartTaperSpeed per stamp, clamped so it
	// cannot overshoot in its direction of travel.
	tapering := b.StartTaperSpeed > 0 && b.StartTaperSize != 1
	if tapering && st.taper != 1 {
		if b.StartTaperSize < 1 {
			st.taper = min(1, st.taper+b.StartTaperSpeed)
		} else {
			st.taper = max(1, st.taper-b.StartTaperSpeed)
		}
	}

	// Size variance eases one fixed step per draw call toward the
	// speed-derived target; visual smoothness scales with stamp
	// density.
	st.easedSizeVariance = easeToward(st.easedSizeVariance, st.sizeVarianceTarget,
		b.SizeVarianceEasing*b.Spacing)

	finalTaper := 1.0
	if tapering {
		finalTaper = st.taper
	}
	finalSizeVariance := 1.0
	if b.SizeVariance != 1 {
		finalSizeVariance = st.easedSizeVariance
	}

	// Spread the pressure delta evenly across the stamps remaining in
	// this batch; the final stamp (remaining == 1) lands exactly on
	// the current factor.
	st.lastSizePressure += (st.curSizePressure - st.lastSizePressure) / float64(remaining)
	st.lastOpacityPressure += (st.curOpacityPressure - st.lastOpacityPressure) / float64(remaining)

	// Scale. Exactly one branch fires, in this priority order.
	switch {
	case b.SizeJitter > 0 || b.Squish != 1:
		jitter := 0.0
		if b.SizeJitter > 0 {
			jitter = e.rng.Uniform(0, 100*b.SizeJitter) / 100
		}
		finalScale := (1 + jitter) * finalTaper * finalSizeVariance * st.lastSizePressure
		dst.Scale(finalScale*b.Squish, finalScale)
	case b.SizePressure:
		dst.Scale(st.lastSizePressure, st.lastSizePressure)
	case tapering:
		dst.Scale(finalTaper*finalSizeVariance, finalTaper*finalSizeVariance)
	case b.SizeVariance != 1:
		dst.Scale(finalSizeVariance, finalSizeVariance)
	}

	// Hue applies to this one stamp only and is restored afterward.
	// One-shot jitter takes precedence over the oscillating flow.
	prevColor := dst.Color()
	recolored := false
	if b.HueJitter > 0 {
		dst.SetColor(prevColor.ShiftHue(e.rng.Uniform(0, float64(b.HueJitter))))
		recolored = true
	} else if b.HueFlow > 0 && b.HueDistance > 0 {
		e.advanceHuePhase(b)
		dst.SetColor(prevColor.ShiftHue(st.huePhase))
		recolored = true
	}

	// Opacity variance eases by OpacityVarianceEasing / Spacing per
	// draw call (division, unlike the size analog).
	st.easedOpacityVariance = easeToward(st.easedOpacityVariance, st.opacityVarianceTarget,
		b.OpacityVarianceEasing/b.Spacing)

	// Final opacity. Exactly one branch fires, in this priority order.
	var opacity float64
	switch {
	case b.OpacityPressure:
		opacity = b.Opacity * 255 * st.lastOpacityPressure
	case b.OpacityVariance != 0:
		opacity = st.easedOpacityVariance
	case b.OpacityJitter > 0:
		opacity = e.rng.Uniform(0, 255*b.OpacityJitter)
	case b.AlphaBlend:
		opacity = 255
	default:
		opacity = b.Opacity * 255
	}

	err := dst.DrawStamp(uint8(clamp255(opacity)))
	if recolored {
		dst.SetColor(prevColor)
	}
	return err
}

// advanceHuePhase steps the oscillating hue phase by 1/HueFlow,
// reflecting direction at 0 and at HueDistance so the sweep is bounded
// and self-reversing.
func (e *LiveEngine) advanceHuePhase(b *Brush) {
	st := &e.state
	step := 1 / b.HueFlow
	limit := float64(b.HueDistance)
	if st.hueRising {
		st.huePhase += step
		if st.huePhase >= limit {
			st.huePhase = limit
			st.hueRising = false
		}
	} else {
		st.huePhase -= step
		if st.huePhase <= 0 {
			st.huePhase = 0
			st.hueRising = true
		}
	}
}
