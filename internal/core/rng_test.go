package core

import "testing"

func TestSimpleRNGDeterministic(t *testing.T) {
	a := NewSimpleRNG(42)
	b := NewSimpleRNG(42)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("RNGs with the same seed diverged at draw %d", i)
		}
	}
}

func TestSimpleRNGRanges(t *testing.T) {
	r := NewSimpleRNG(7)

	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, outside [0, 1)", f)
		}
		o := r.Open()
		if o <= 0 || o >= 1 {
			t.Fatalf("Open() = %v, outside (0, 1)", o)
		}
		v := r.Range(1, 10)
		if v < 1 || v >= 10 {
			t.Fatalf("Range(1, 10) = %v, outside [1, 10)", v)
		}
		n := r.Intn(5)
		if n < 0 || n >= 5 {
			t.Fatalf("Intn(5) = %d, outside [0, 5)", n)
		}
	}

	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestSimpleRNGZeroSeed(t *testing.T) {
	r := NewSimpleRNG(0)
	if r.State() == 0 {
		t.Error("zero seed should be replaced with a non-zero state")
	}
}
