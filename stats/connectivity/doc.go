// Package connectivity computes pairwise connectivity between series:
// the Pearson correlation (optionally Fisher Z transformed or without
// demeaning) or the covariance of one query series against every series
// of a collection.
//
// # Layouts
//
// An [Engine] reads the caller's buffers in place. Four layouts are
// supported:
//
//   - [Interleaved]: all series in one buffer with a series stride and an
//     element stride (row-major or column-major matrices).
//   - [PerSeries]: one buffer per series, optionally strided.
//   - [PerTimePoint]: one buffer per time point holding a value for every series.
//   - [Parcels]: one packed buffer per parcel.
//
// Contiguous series pairs use the runtime-selected SIMD dot product;
// other pairings use a strided accumulation loop with the same result
// within floating-point tolerance.
//
// # Usage
//
//	e, err := connectivity.New(connectivity.PerSeries{Series: rows, Length: t, Stride: 1},
//		connectivity.Settings{Mode: connectivity.ModeCorrelation})
//	if err != nil {
//		return err
//	}
//	r, err := e.ScoreSeries(nil, 42)              // series 42 against all
//	r, err = e.ScoreROIAverage(r, []int{3, 4, 5}) // mean of 3..5 against all, reusing r
//
// Per-series statistics (mean and root sum of squares) are computed once
// in parallel by New; every query then fans out over all series in
// parallel and returns a slice with one score per series.
//
// # Degenerate input
//
// A constant series has no correlation. It scores 0 against every series,
// itself included, and its covariance with anything is 0.
package connectivity
