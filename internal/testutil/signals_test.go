package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(2, 1.0, 0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(1, 0.5, 4)
	want := []float64{1, 1.5, 2, 2.5}
	RequireSliceNearlyEqual(t, r, want, 0)
}

func TestMixedSeries(t *testing.T) {
	a := MixedSeries(7, 5, 32)
	b := MixedSeries(7, 5, 32)
	if len(a) != 5 {
		t.Fatalf("count = %d, want 5", len(a))
	}
	for k := range a {
		if len(a[k]) != 32 {
			t.Fatalf("series %d len = %d, want 32", k, len(a[k]))
		}
		RequireSliceNearlyEqual(t, a[k], b[k], 0)
		RequireFinite(t, a[k])
	}
}
