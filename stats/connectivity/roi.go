package connectivity

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// AverageSeries returns the elementwise mean of the selected series.
// Indices may repeat; each occurrence counts once towards the mean.
func (e *Engine) AverageSeries(indices []int) ([]float64, error) {
	if len(indices) == 0 {
		return nil, ErrEmptyROI
	}
	for _, idx := range indices {
		if err := e.checkIndex(idx); err != nil {
			return nil, fmt.Errorf("roi: %w", err)
		}
	}

	avg := make([]float64, e.length)
	for _, idx := range indices {
		s := e.series[idx]
		if v, ok := s.Contiguous(); ok {
			vecmath.AddBlockInPlace(avg, v)
			continue
		}
		for t := range avg {
			avg[t] += s.At(t)
		}
	}
	if len(indices) > 1 {
		vecmath.ScaleBlockInPlace(avg, 1/float64(len(indices)))
	}
	return avg, nil
}

// ScoreROIAverage averages the selected series and scores that synthetic
// series against all N series like ScoreExternal. An empty or invalid
// index set leaves the result all zeros and returns ErrEmptyROI or
// ErrIndexOutOfRange.
func (e *Engine) ScoreROIAverage(dst []float64, indices []int) ([]float64, error) {
	dst = e.reset(dst)
	avg, err := e.AverageSeries(indices)
	if err != nil {
		e.rejected("score roi average", err)
		return dst, err
	}

	q := Values(avg)
	e.sweep(dst, q, computeStatistics(q, e.kernel.noDemean), -1)
	return dst, nil
}
