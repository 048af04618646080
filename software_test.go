package ink

import (
	"errors"
	"testing"
)

func TestSoftwareSurfaceDrawStamp(t *testing.T) {
	pm := NewPixmap(40, 40)
	surf := NewSoftwareSurface(pm, DiskStamp(10))
	surf.SetColor(RGB(1, 0, 0))

	surf.Push()
	surf.Translate(20, 20)
	if err := surf.DrawStamp(255); err != nil {
		t.Fatal(err)
	}
	surf.Pop()

	// The stamp center lands on (20, 20), fully opaque red.
	got := pm.GetPixel(20, 20)
	if got.A < 0.95 || got.R < 0.95 || got.G > 0.05 {
		t.Errorf("center pixel = %+v, want opaque red", got)
	}
	// Far corner untouched.
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("corner pixel = %+v, want transparent", got)
	}
}

func TestSoftwareSurfaceOpacity(t *testing.T) {
	pm := NewPixmap(20, 20)
	surf := NewSoftwareSurface(pm, DiskStamp(10))
	surf.SetColor(Black)

	surf.Translate(10, 10)
	if err := surf.DrawStamp(128); err != nil {
		t.Fatal(err)
	}
	got := pm.GetPixel(10, 10)
	if got.A < 0.4 || got.A > 0.6 {
		t.Errorf("center alpha = %v, want ~0.5 at opacity 128", got.A)
	}
}

func TestSoftwareSurfaceTransformStack(t *testing.T) {
	pm := NewPixmap(40, 40)
	surf := NewSoftwareSurface(pm, DiskStamp(6))
	surf.SetColor(Black)

	// The pushed translate must not leak past Pop.
	surf.Push()
	surf.Translate(30, 30)
	surf.Pop()
	surf.Translate(8, 8)
	if err := surf.DrawStamp(255); err != nil {
		t.Fatal(err)
	}

	if got := pm.GetPixel(8, 8); got.A < 0.9 {
		t.Errorf("stamp missing at restored origin: %+v", got)
	}
	if got := pm.GetPixel(38, 38); got.A != 0 {
		t.Errorf("stamp leaked to popped transform: %+v", got)
	}
	// Unbalanced pops are tolerated.
	surf.Pop()
	surf.Pop()
}

func TestSoftwareSurfaceScale(t *testing.T) {
	// A 4px stamp scaled 4x covers a pixel 4px from center; unscaled it
	// cannot.
	for _, scaled := range []bool{false, true} {
		pm := NewPixmap(40, 40)
		surf := NewSoftwareSurface(pm, DiskStamp(4))
		surf.SetColor(Black)

		surf.Push()
		surf.Translate(20, 20)
		if scaled {
			surf.Scale(4, 4)
		}
		if err := surf.DrawStamp(255); err != nil {
			t.Fatal(err)
		}
		surf.Pop()

		got := pm.GetPixel(24, 20)
		if scaled && got.A < 0.5 {
			t.Errorf("scaled stamp too small: alpha %v at offset 4", got.A)
		}
		if !scaled && got.A > 0.01 {
			t.Errorf("unscaled 4px stamp reached offset 4: alpha %v", got.A)
		}
	}
}

func TestSoftwareSurfaceSquishRotate(t *testing.T) {
	// A squished stamp is wide along one axis and thin along the other;
	// rotating 90 degrees swaps the axes.
	draw := func(rot float64) *Pixmap {
		pm := NewPixmap(60, 60)
		surf := NewSoftwareSurface(pm, DiskStamp(20))
		surf.SetColor(Black)
		surf.Push()
		surf.Translate(30, 30)
		if rot != 0 {
			surf.Rotate(rot)
		}
		surf.Scale(0.3, 1) // squish X
		if err := surf.DrawStamp(255); err != nil {
			t.Fatal(err)
		}
		surf.Pop()
		return pm
	}

	flat := draw(0)
	if a := flat.GetPixel(30, 38).A; a < 0.5 {
		t.Errorf("squished stamp missing along long axis: %v", a)
	}
	if a := flat.GetPixel(38, 30).A; a > 0.1 {
		t.Errorf("squished stamp too wide along short axis: %v", a)
	}

	turned := draw(90)
	if a := turned.GetPixel(38, 30).A; a < 0.5 {
		t.Errorf("rotated squish missing along new long axis: %v", a)
	}
	if a := turned.GetPixel(30, 38).A; a > 0.1 {
		t.Errorf("rotated squish too wide along new short axis: %v", a)
	}
}

func TestSoftwareSurfaceErase(t *testing.T) {
	pm := NewPixmap(30, 30)
	pm.Clear(RGB(0, 0, 1))
	surf := NewSoftwareSurface(pm, DiskStamp(10))

	surf.SetBlend(BlendDestinationOut)
	surf.Push()
	surf.Translate(15, 15)
	if err := surf.DrawStamp(255); err != nil {
		t.Fatal(err)
	}
	surf.Pop()

	if got := pm.GetPixel(15, 15); got.A > 0.05 {
		t.Errorf("center not erased: %+v", got)
	}
	if got := pm.GetPixel(1, 1); got.A < 0.95 {
		t.Errorf("erase bled outside the stamp: %+v", got)
	}
}

func TestSoftwareSurfaceOffCanvas(t *testing.T) {
	pm := NewPixmap(10, 10)
	surf := NewSoftwareSurface(pm, DiskStamp(4))
	surf.Translate(-50, -50)
	if err := surf.DrawStamp(255); err != nil {
		t.Fatalf("off-canvas stamp errored: %v", err)
	}
	for i, b := range pm.Data() {
		if b != 0 {
			t.Fatalf("off-canvas stamp wrote byte %d", i)
		}
	}
}

func TestSoftwareSurfaceNoStamp(t *testing.T) {
	surf := NewSoftwareSurface(NewPixmap(5, 5), nil)
	if err := surf.DrawStamp(255); !errors.Is(err, ErrNoStamp) {
		t.Errorf("DrawStamp without stamp = %v, want ErrNoStamp", err)
	}
	surf.SetStamp(DiskStamp(2))
	if err := surf.DrawStamp(255); err != nil {
		t.Errorf("DrawStamp after SetStamp = %v", err)
	}
}

func TestSoftwareSurfaceColorState(t *testing.T) {
	surf := NewSoftwareSurface(NewPixmap(5, 5), DiskStamp(2))
	if surf.Color() != Black {
		t.Errorf("initial color = %+v, want black", surf.Color())
	}
	surf.SetColor(RGB(0, 1, 0))
	if surf.Color() != RGB(0, 1, 0) {
		t.Errorf("Color() after SetColor = %+v", surf.Color())
	}
}
