package connectivity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-connectivity/internal/testutil"
)

func TestFinalize(t *testing.T) {
	plain := kernel{mode: ModeCorrelation}
	fz := kernel{mode: ModeCorrelation, fisherZ: true}

	tests := []struct {
		name string
		k    kernel
		in   float64
		want float64
	}{
		{"inside range", plain, 0.25, 0.25},
		{"overshoot", plain, 1.0000001, 1},
		{"undershoot", plain, -1.0000001, -1},
		{"fisher z zero", fz, 0, 0},
		{"fisher z half", fz, 0.5, math.Atanh(0.5)},
		{"fisher z clamps high", fz, 1, math.Atanh(fisherZLimit)},
		{"fisher z clamps low", fz, -3, -math.Atanh(fisherZLimit)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.k.finalize(tt.in)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.False(t, math.IsInf(got, 0) || math.IsNaN(got))
		})
	}
}

func TestSelfScore(t *testing.T) {
	k := kernel{mode: ModeCorrelation}
	assert.Equal(t, 1.0, k.self(Statistics{Mean: 1, SqrtSumSquared: 2}))
	assert.Equal(t, 0.0, k.self(Statistics{Mean: 1}))
}

func TestCrossProductPathsAgree(t *testing.T) {
	const n = 37
	a := testutil.DeterministicNoise(1, 4, n)
	b := testutil.DeterministicNoise(2, 4, n)

	want := 0.0
	for i := range a {
		want += a[i] * b[i]
	}

	bStrided := make([]float64, 3*n)
	points := make([][]float64, n)
	for i, v := range b {
		bStrided[3*i] = v
		points[i] = []float64{0, v}
	}
	sb, err := NewStrided(bStrided, n, 3)
	if err != nil {
		t.Fatal(err)
	}

	views := map[string]Series{
		"contiguous": Values(b),
		"strided":    sb,
		"gathered":   Gathered{points: points, offset: 1},
	}
	for name, view := range views {
		t.Run(name, func(t *testing.T) {
			got := crossProduct(Values(a), view)
			if !testutil.NearlyEqual(got, want, 1e-5, 1e-7) {
				t.Fatalf("crossProduct = %v, want %v", got, want)
			}
		})
	}
}

func TestCovarianceKernelPathsAgree(t *testing.T) {
	const n = 21
	a := testutil.DeterministicNoise(5, 2, n)
	b := testutil.DeterministicNoise(6, 2, n)
	k := newKernel(Settings{Mode: ModeCovariance}, n)

	sa := computeStatistics(Values(a), false)
	sb := computeStatistics(Values(b), false)
	want := k.score(Values(a), sa, Values(b), sb)

	points := make([][]float64, n)
	for i, v := range b {
		points[i] = []float64{v}
	}
	got := k.score(Values(a), sa, Gathered{points: points}, sb)
	assert.InDelta(t, want, got, 1e-12)

	got = k.score(Gathered{points: points}, sb, Values(a), sa)
	assert.InDelta(t, want, got, 1e-12)
}
