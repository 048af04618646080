package blend

import "testing"

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name           string
		sr, sg, sb, sa uint8
		dr, dg, db, da uint8
		r, g, b, a     uint8
	}{
		{"opaque source wins", 255, 0, 0, 255, 0, 255, 0, 255, 255, 0, 0, 255},
		{"transparent source keeps dest", 0, 0, 0, 0, 0, 255, 0, 255, 0, 255, 0, 255},
		{"onto empty dest", 100, 50, 25, 128, 0, 0, 0, 0, 100, 50, 25, 128},
		{"half over opaque", 128, 0, 0, 128, 0, 0, 0, 255, 128, 0, 0, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := SourceOver(tt.sr, tt.sg, tt.sb, tt.sa, tt.dr, tt.dg, tt.db, tt.da)
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("got (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestDestinationOut(t *testing.T) {
	// Full source alpha erases everything; zero source alpha erases
	// nothing; source color never matters.
	r, g, b, a := DestinationOut(255, 255, 255, 255, 10, 20, 30, 255)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("full erase got (%d,%d,%d,%d)", r, g, b, a)
	}
	r, g, b, a = DestinationOut(99, 99, 99, 0, 10, 20, 30, 200)
	if r != 10 || g != 20 || b != 30 || a != 200 {
		t.Errorf("no-op erase got (%d,%d,%d,%d)", r, g, b, a)
	}
	// Half coverage halves the destination (rounded).
	r, _, _, a = DestinationOut(0, 0, 0, 128, 200, 0, 0, 255)
	if a != 127 {
		t.Errorf("half erase alpha = %d, want 127", a)
	}
	if r != 100 {
		t.Errorf("half erase red = %d, want 100", r)
	}
}

func TestMultiplyOpaque(t *testing.T) {
	// With both sides opaque, multiply reduces to S*D per channel.
	r, g, b, a := Multiply(255, 128, 0, 255, 128, 128, 128, 255)
	if a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
	if r != 128 {
		t.Errorf("r = %d, want 128", r)
	}
	if g != 64 && g != 65 {
		t.Errorf("g = %d, want ~64", g)
	}
	if b != 0 {
		t.Errorf("b = %d, want 0", b)
	}
}

func TestMultiplyTransparentSourceKeepsDest(t *testing.T) {
	r, g, b, a := Multiply(0, 0, 0, 0, 40, 80, 120, 200)
	if r != 40 || g != 80 || b != 120 || a != 200 {
		t.Errorf("got (%d,%d,%d,%d), want destination unchanged", r, g, b, a)
	}
}

func TestScreenOpaque(t *testing.T) {
	// White screens to white; black is the identity.
	r, g, b, a := Screen(255, 255, 255, 255, 10, 20, 30, 255)
	if r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("screen with white got (%d,%d,%d,%d)", r, g, b, a)
	}
	r, g, b, a = Screen(0, 0, 0, 255, 10, 20, 30, 255)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("screen with black got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestPremultipliedInvariant(t *testing.T) {
	// No operator may produce a channel above its alpha when inputs are
	// valid premultiplied colors.
	ops := map[string]Func{
		"SourceOver":     SourceOver,
		"DestinationOut": DestinationOut,
		"Multiply":       Multiply,
		"Screen":         Screen,
	}
	inputs := []struct{ sr, sg, sb, sa, dr, dg, db, da uint8 }{
		{128, 64, 32, 128, 200, 100, 50, 200},
		{255, 255, 255, 255, 0, 0, 0, 0},
		{0, 0, 0, 0, 255, 255, 255, 255},
		{50, 50, 50, 50, 50, 50, 50, 50},
	}
	for name, op := range ops {
		for _, in := range inputs {
			r, g, b, a := op(in.sr, in.sg, in.sb, in.sa, in.dr, in.dg, in.db, in.da)
			// Byte rounding can put a channel a hair above alpha.
			const slack = 2
			if int(r) > int(a)+slack || int(g) > int(a)+slack || int(b) > int(a)+slack {
				t.Errorf("%s(%+v) = (%d,%d,%d,%d): channel exceeds alpha", name, in, r, g, b, a)
			}
		}
	}
}
