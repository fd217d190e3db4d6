package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates cycles periods of a sine wave over length samples.
func DeterministicSine(cycles, amplitude, phase float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued series.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp generates start, start+step, start+2*step, ...
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// MixedSeries returns count series of the given length. Every series is a
// random mix of one shared signal and private noise plus an offset, so
// pairwise correlations cover both signs and a wide range of magnitudes.
func MixedSeries(seed int64, count, length int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	shared := DeterministicNoise(seed+1, 1, length)
	out := make([][]float64, count)
	for k := range out {
		weight := rng.Float64()*2 - 1
		offset := rng.Float64()*10 - 5
		noise := DeterministicNoise(seed+int64(k)+2, 1, length)
		s := make([]float64, length)
		for i := range s {
			s[i] = offset + weight*shared[i] + 0.5*noise[i]
		}
		out[k] = s
	}
	return out
}
