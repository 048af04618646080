package ink

import (
	"errors"
	"fmt"
)

// Sentinel errors for invalid brush configuration.
var (
	// ErrInvalidSpacing reports a non-positive stamp spacing. Spacing
	// must be positive: a zero spaced width would make the smoothers
	// emit an unbounded number of stamps.
	ErrInvalidSpacing = errors.New("ink: brush spacing must be positive")
)

// BlendMode selects how a stamp is composited onto the surface.
type BlendMode int

const (
	// BlendSourceOver is normal painting: stamp over existing pixels.
	BlendSourceOver BlendMode = iota
	// BlendDestinationOut removes existing pixels where the stamp has
	// coverage. Used for erasing.
	BlendDestinationOut
	// BlendMultiply darkens: result is stamp times destination.
	BlendMultiply
	// BlendScreen lightens: inverse multiply of the inverses.
	BlendScreen
)

// String returns the name of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendSourceOver:
		return "SourceOver"
	case BlendDestinationOut:
		return "DestinationOut"
	case BlendMultiply:
		return "Multiply"
	case BlendScreen:
		return "Screen"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// Brush holds all tunable stroke appearance parameters.
//
// A Brush is read-mostly from the engine's perspective: during a
// stroke the engine only reads it, except that OnMoveEnded restores
// Spacing to the snapshot taken at OnMoveBegin. Mutate a Brush only
// between strokes.
//
// Unless otherwise noted, jitter and variance amounts are fractions in
// [0, 1]; values outside the documented ranges are clamped at the
// point of use rather than rejected.
type Brush struct {
	// Size is the stamp diameter in device pixels. Must be positive.
	Size int

	// Opacity is the base stamp opacity in [0, 1].
	Opacity float64

	// OpacityJitter randomizes per-stamp opacity: each stamp draws an
	// opacity uniformly from [0, 255*OpacityJitter].
	OpacityJitter float64

	// OpacityVariance shifts opacity with movement speed. Zero
	// disables it; sign selects the direction of the shift.
	OpacityVariance float64

	// OpacityVarianceSpeed is the blend factor folding new velocity
	// samples into the opacity speed estimate.
	OpacityVarianceSpeed float64

	// OpacityVarianceEasing controls how fast the drawn opacity eases
	// toward its speed-derived target. The per-stamp step is
	// OpacityVarianceEasing / Spacing.
	OpacityVarianceEasing float64

	// SizeVariance scales stamp size with movement speed. 1 disables
	// it (no variance); the value is the extreme of the variance band.
	SizeVariance float64

	// SizeVarianceSensitivity is the blend factor folding new velocity
	// samples into the size speed estimate.
	SizeVarianceSensitivity float64

	// SizeVarianceEasing controls how fast the drawn size eases toward
	// its speed-derived target. The per-stamp step is
	// SizeVarianceEasing * Spacing.
	SizeVarianceEasing float64

	// SizePressure scales stamp size with pressure.
	SizePressure bool

	// OpacityPressure scales stamp opacity with pressure.
	OpacityPressure bool

	// PressureSensitivity in [0, 1] blends new pressure readings into
	// the smoothed pressure factor. 1 follows pressure immediately.
	PressureSensitivity float64

	// MinPressure and MaxPressure bound the factor a pressure reading
	// maps to: pressure 0 maps to MinPressure, pressure 1 to
	// MaxPressure. Full pressure always means no modulation.
	MinPressure float64
	MaxPressure float64

	// Spacing is the inter-stamp distance as a fraction of Size.
	// Must be positive; see SpacedWidth.
	Spacing float64

	// Scatter offsets each stamp from the stroke path: each axis is
	// offset uniformly in [-Size*Scatter, +Size*Scatter].
	Scatter float64

	// Angle is a fixed per-stamp rotation in degrees.
	Angle float64

	// AngleJitter adds a uniform random rotation in
	// [0, 360*AngleJitter] degrees to each stamp.
	AngleJitter float64

	// SizeJitter grows each stamp by a uniform random fraction in
	// [0, SizeJitter].
	SizeJitter float64

	// Squish scales the stamp's X axis relative to its Y axis,
	// producing elliptical stamps. 1 means round.
	Squish float64

	// HueJitter adds a uniform random hue rotation in [0, HueJitter]
	// degrees to each stamp. Takes precedence over hue flow.
	HueJitter int

	// HueFlow enables a continuous hue sweep along the stroke: the hue
	// phase advances by 1/HueFlow degrees per stamp, bouncing between
	// 0 and HueDistance. Both HueFlow and HueDistance must be positive
	// for the sweep to run.
	HueFlow float64

	// HueDistance is the sweep extent in degrees.
	HueDistance int

	// StartTaperSpeed is the per-stamp step the stamp scale ramps by
	// at the start of a stroke. Zero disables tapering.
	StartTaperSpeed float64

	// StartTaperSize is the scale the stroke starts at; it ramps
	// toward 1 at StartTaperSpeed per stamp.
	StartTaperSize float64

	// AlphaBlend forces full stamp opacity regardless of Opacity.
	AlphaBlend bool

	// Blend is the compositing mode. Engines override it with
	// DestinationOut while eraser mode is enabled.
	Blend BlendMode

	// Color is the stamp color.
	Color RGBA
}

// DefaultBrush returns a round, solid, pressure-insensitive brush.
func DefaultBrush() Brush {
	return Brush{
		Size:                24,
		Opacity:             1,
		SizeVariance:        1,
		Spacing:             0.15,
		Squish:              1,
		MinPressure:         0.2,
		MaxPressure:         1,
		PressureSensitivity: 0.4,
		StartTaperSize:      1,
		Blend:               BlendSourceOver,
		Color:               Black,
	}
}

// SpacedWidth returns the inter-stamp distance in device pixels.
func (b *Brush) SpacedWidth() float64 {
	return float64(b.Size) * b.Spacing
}

// Validate reports whether the brush is usable for a stroke.
// It fails fast on configuration that would break the pipeline
// (per-stamp numeric inputs are clamped instead, never rejected).
func (b *Brush) Validate() error {
	if b.Size <= 0 {
		return fmt.Errorf("ink: brush size must be positive, got %d", b.Size)
	}
	if b.Spacing <= 0 {
		return fmt.Errorf("%w, got %v", ErrInvalidSpacing, b.Spacing)
	}
	if b.MinPressure > b.MaxPressure {
		return fmt.Errorf("ink: minimum pressure %v exceeds maximum pressure %v",
			b.MinPressure, b.MaxPressure)
	}
	return nil
}

// WithSize returns a copy of the Brush with the given stamp size.
func (b Brush) WithSize(size int) Brush {
	b.Size = size
	return b
}

// WithOpacity returns a copy of the Brush with the given opacity.
func (b Brush) WithOpacity(opacity float64) Brush {
	b.Opacity = opacity
	return b
}

// WithSpacing returns a copy of the Brush with the given spacing
// fraction.
func (b Brush) WithSpacing(spacing float64) Brush {
	b.Spacing = spacing
	return b
}

// WithColor returns a copy of the Brush with the given stamp color.
func (b Brush) WithColor(c RGBA) Brush {
	b.Color = c
	return b
}

// WithBlend returns a copy of the Brush with the given blend mode.
func (b Brush) WithBlend(mode BlendMode) Brush {
	b.Blend = mode
	return b
}

// WithTaper returns a copy of the Brush with the given start taper.
// The stroke starts at scale size and ramps toward 1 by speed per
// stamp.
func (b Brush) WithTaper(size, speed float64) Brush {
	b.StartTaperSize = size
	b.StartTaperSpeed = speed
	return b
}

// WithPressure returns a copy of the Brush with pressure-sensitive
// sizing and opacity configured.
func (b Brush) WithPressure(size, opacity bool, sensitivity float64) Brush {
	b.SizePressure = size
	b.OpacityPressure = opacity
	b.PressureSensitivity = sensitivity
	return b
}
