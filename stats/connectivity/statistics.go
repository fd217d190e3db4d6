package connectivity

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-connectivity/internal/dot"
	"github.com/cwbudde/algo-connectivity/internal/parallel"
)

// Statistics are the per-series quantities reused by every pairwise score.
type Statistics struct {
	// Mean is the arithmetic mean of the series.
	Mean float64
	// SqrtSumSquared is sqrt(sum((x - Mean)^2)), or sqrt(sum(x^2)) when
	// demeaning is disabled. Zero marks a constant (or, without
	// demeaning, all-zero) series.
	SqrtSumSquared float64

	// constant is set when every value of a demeaned series is equal.
	// Large offsets can round SqrtSumSquared to zero without it.
	constant bool
}

// computeStatistics accumulates sum and sum of squares in one pass.
func computeStatistics(s Series, noDemean bool) Statistics {
	n := s.Len()
	if n == 0 {
		return Statistics{}
	}

	var sum, sumSquared float64
	if v, ok := s.Contiguous(); ok {
		sum = vecmath.Sum(v)
		sumSquared = dot.Product(v, v)
	} else {
		for i := 0; i < n; i++ {
			x := s.At(i)
			sum += x
			sumSquared += x * x
		}
	}

	nf := float64(n)
	mean := sum / nf
	ss := sumSquared
	constant := false
	if !noDemean {
		ss -= nf * mean * mean
		// Cancellation leaves round-off instead of zero for constant
		// series; only those may report a zero spread.
		if ss <= sumSquared*1e-12 && isConstant(s) {
			ss = 0
			constant = true
		}
	}

	return Statistics{
		Mean:           mean,
		SqrtSumSquared: math.Sqrt(max(ss, 0)),
		constant:       constant,
	}
}

func isConstant(s Series) bool {
	first := s.At(0)
	for i := 1; i < s.Len(); i++ {
		if s.At(i) != first {
			return false
		}
	}
	return true
}

// precompute fills one Statistics per series, in parallel.
func precompute(series []Series, noDemean bool, grain, workers int) []Statistics {
	stats := make([]Statistics, len(series))
	parallel.ForWorkers(len(series), grain, workers, func(start, end int) {
		for i := start; i < end; i++ {
			stats[i] = computeStatistics(series[i], noDemean)
		}
	})
	return stats
}
