package ink

import "testing"

func TestSeededRandReproducible(t *testing.T) {
	a := NewSeededRand(99)
	b := NewSeededRand(99)
	for i := 0; i < 100; i++ {
		va, vb := a.Uniform(-5, 5), b.Uniform(-5, 5)
		if va != vb {
			t.Fatalf("sample %d diverged: %v vs %v", i, va, vb)
		}
		if va < -5 || va >= 5 {
			t.Fatalf("sample %d = %v outside [-5, 5)", i, va)
		}
	}
}

func TestSeededRandDegenerateRange(t *testing.T) {
	r := NewSeededRand(1)
	if got := r.Uniform(3, 3); got != 3 {
		t.Errorf("Uniform(3, 3) = %v", got)
	}
	if got := r.Uniform(5, 2); got != 5 {
		t.Errorf("Uniform(5, 2) = %v", got)
	}
}
