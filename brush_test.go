package ink

import (
	"errors"
	"testing"
)

func TestBrushValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Brush)
		wantErr bool
	}{
		{"default", func(*Brush) {}, false},
		{"zero size", func(b *Brush) { b.Size = 0 }, true},
		{"negative size", func(b *Brush) { b.Size = -3 }, true},
		{"zero spacing", func(b *Brush) { b.Spacing = 0 }, true},
		{"negative spacing", func(b *Brush) { b.Spacing = -0.1 }, true},
		{"inverted pressure range", func(b *Brush) { b.MinPressure = 0.9; b.MaxPressure = 0.2 }, true},
		{"equal pressure range", func(b *Brush) { b.MinPressure = 0.5; b.MaxPressure = 0.5 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := DefaultBrush()
			tt.mutate(&b)
			err := b.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBrushValidateSpacingSentinel(t *testing.T) {
	b := DefaultBrush().WithSpacing(0)
	if err := b.Validate(); !errors.Is(err, ErrInvalidSpacing) {
		t.Errorf("Validate() = %v, want ErrInvalidSpacing", err)
	}
}

func TestSpacedWidth(t *testing.T) {
	b := DefaultBrush().WithSize(40).WithSpacing(0.25)
	if got := b.SpacedWidth(); !almostEqual(got, 10) {
		t.Errorf("SpacedWidth() = %v, want 10", got)
	}
}

func TestBrushBuilders(t *testing.T) {
	base := DefaultBrush()
	b := base.
		WithSize(12).
		WithOpacity(0.5).
		WithColor(RGB(1, 0, 0)).
		WithBlend(BlendMultiply).
		WithTaper(0.3, 0.05).
		WithPressure(true, true, 0.8)

	if b.Size != 12 || b.Opacity != 0.5 || b.Blend != BlendMultiply {
		t.Errorf("builder chain produced %+v", b)
	}
	if b.StartTaperSize != 0.3 || b.StartTaperSpeed != 0.05 {
		t.Errorf("WithTaper produced %v, %v", b.StartTaperSize, b.StartTaperSpeed)
	}
	if !b.SizePressure || !b.OpacityPressure || b.PressureSensitivity != 0.8 {
		t.Errorf("WithPressure produced %+v", b)
	}
	// Builders operate on copies.
	if base.Size != 24 || base.Opacity != 1 {
		t.Errorf("builder mutated the original: %+v", base)
	}
}

func TestBlendModeString(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want string
	}{
		{BlendSourceOver, "SourceOver"},
		{BlendDestinationOut, "DestinationOut"},
		{BlendMultiply, "Multiply"},
		{BlendScreen, "Screen"},
		{BlendMode(99), "BlendMode(99)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("BlendMode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}
