package sim

import "testing"

func TestRandDeterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 100; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatalf("Sequences diverged at %d", i)
		}
	}
}

func TestRandZeroSeed(t *testing.T) {
	r := NewRand(0)
	if r.NextU64() == 0 && r.NextU64() == 0 {
		t.Error("Expected a non-degenerate sequence from seed 0")
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		n := r.Intn(5)
		if n < 0 || n >= 5 {
			t.Fatalf("Intn out of range: %d", n)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Expected Intn(0) to be 0")
	}
}

func TestRangeFDegenerate(t *testing.T) {
	src := &scriptSource{floats: []float64{0.9}}
	if got := rangeF(src, 5, 5); got != 5 {
		t.Errorf("Expected lo for empty range, got %v", got)
	}
	if got := rangeF(src, 0, 10); got != 9 {
		t.Errorf("Expected 9, got %v", got)
	}
}
