package connectivity

import (
	"errors"
	"fmt"
)

// Layout describes how the series of an Engine are laid out in memory.
// The implementations in this package are [Interleaved], [PerSeries],
// [PerTimePoint] and [Parcels].
type Layout interface {
	// Name identifies the layout in log output.
	Name() string

	// views validates the layout and returns one view per series plus the
	// common series length.
	views() ([]Series, int, error)
}

// Interleaved holds every series in one buffer. Series k starts at
// k*SeriesStride and its value t is at k*SeriesStride + t*ElementStride.
//
// Row-major (one series per row of a series x time matrix):
//
//	Interleaved{Data: m, SeriesCount: rows, SeriesStride: cols, Length: cols, ElementStride: 1}
//
// Column-major, e.g. a NIfTI time series where each brick holds one time
// point for all voxels:
//
//	Interleaved{Data: m, SeriesCount: voxels, SeriesStride: 1, Length: bricks, ElementStride: voxels}
type Interleaved struct {
	Data          []float64
	SeriesCount   int
	SeriesStride  int
	Length        int
	ElementStride int
}

// Name implements Layout.
func (Interleaved) Name() string { return "interleaved" }

func (l Interleaved) views() ([]Series, int, error) {
	var errs []error
	if l.Data == nil {
		errs = append(errs, ErrNilData)
	}
	if l.SeriesCount < 2 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrTooFewSeries, l.SeriesCount))
	}
	if l.Length < 2 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrTooFewTimePoints, l.Length))
	}
	if l.SeriesStride < 1 {
		errs = append(errs, fmt.Errorf("%w: series stride %d", ErrInvalidStride, l.SeriesStride))
	}
	if l.ElementStride < 1 {
		errs = append(errs, fmt.Errorf("%w: element stride %d", ErrInvalidStride, l.ElementStride))
	}
	if len(errs) > 0 {
		return nil, 0, errors.Join(errs...)
	}

	if !fits(len(l.Data), l.SeriesCount, l.SeriesStride) ||
		!fits(len(l.Data)-(l.SeriesCount-1)*l.SeriesStride, l.Length, l.ElementStride) {
		return nil, 0, fmt.Errorf("%w: %d values cannot hold %d series of %d points",
			ErrShortBuffer, len(l.Data), l.SeriesCount, l.Length)
	}

	out := make([]Series, l.SeriesCount)
	for k := range out {
		out[k] = Strided{data: l.Data[k*l.SeriesStride:], n: l.Length, stride: l.ElementStride}
	}
	return out, l.Length, nil
}

// PerSeries holds one buffer per series. Value t of series k is at
// Series[k][t*Stride]; Stride 1 is the fast path.
type PerSeries struct {
	Series [][]float64
	Length int
	Stride int
}

// Name implements Layout.
func (PerSeries) Name() string { return "per-series" }

func (l PerSeries) views() ([]Series, int, error) {
	var errs []error
	if len(l.Series) < 2 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrTooFewSeries, len(l.Series)))
	}
	if l.Length < 2 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrTooFewTimePoints, l.Length))
	}
	if l.Stride < 1 {
		errs = append(errs, fmt.Errorf("%w: time point stride %d", ErrInvalidStride, l.Stride))
	}
	if len(errs) > 0 {
		return nil, 0, errors.Join(errs...)
	}

	out := make([]Series, len(l.Series))
	for k, data := range l.Series {
		if err := checkStrided(data, l.Length, l.Stride); err != nil {
			errs = append(errs, fmt.Errorf("series %d: %w", k, err))
			continue
		}
		out[k] = Strided{data: data, n: l.Length, stride: l.Stride}
	}
	if len(errs) > 0 {
		return nil, 0, errors.Join(errs...)
	}
	return out, l.Length, nil
}

// PerTimePoint holds one buffer per time point, each carrying one value
// per series: value t of series k is at TimePoints[t][k*SeriesStride].
// A GIFTI metric file with one map per time point has this shape.
type PerTimePoint struct {
	TimePoints   [][]float64
	SeriesCount  int
	SeriesStride int
}

// Name implements Layout.
func (PerTimePoint) Name() string { return "per-time-point" }

func (l PerTimePoint) views() ([]Series, int, error) {
	var errs []error
	if l.SeriesCount < 2 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrTooFewSeries, l.SeriesCount))
	}
	if len(l.TimePoints) < 2 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrTooFewTimePoints, len(l.TimePoints)))
	}
	if l.SeriesStride < 1 {
		errs = append(errs, fmt.Errorf("%w: series stride %d", ErrInvalidStride, l.SeriesStride))
	}
	if len(errs) > 0 {
		return nil, 0, errors.Join(errs...)
	}

	for t, data := range l.TimePoints {
		switch {
		case data == nil:
			errs = append(errs, fmt.Errorf("time point %d: %w", t, ErrNilData))
		case !fits(len(data), l.SeriesCount, l.SeriesStride):
			errs = append(errs, fmt.Errorf("time point %d: %w: %d values cannot hold %d series at stride %d",
				t, ErrShortBuffer, len(data), l.SeriesCount, l.SeriesStride))
		}
	}
	if len(errs) > 0 {
		return nil, 0, errors.Join(errs...)
	}

	out := make([]Series, l.SeriesCount)
	for k := range out {
		out[k] = Gathered{points: l.TimePoints, offset: k * l.SeriesStride}
	}
	return out, len(l.TimePoints), nil
}

// Parcels holds one packed buffer per parcel. All parcels must have the
// same number of values, which becomes the series length.
type Parcels struct {
	Parcels [][]float64
}

// Name implements Layout.
func (Parcels) Name() string { return "parcels" }

func (l Parcels) views() ([]Series, int, error) {
	if len(l.Parcels) == 0 {
		return nil, 0, fmt.Errorf("%w: got 0", ErrTooFewSeries)
	}
	length := len(l.Parcels[0])
	for k, p := range l.Parcels[1:] {
		if len(p) != length {
			return nil, 0, fmt.Errorf("%w: parcel %d has %d values, parcel 0 has %d",
				ErrRaggedParcels, k+1, len(p), length)
		}
	}
	return PerSeries{Series: l.Parcels, Length: length, Stride: 1}.views()
}

func checkStrided(data []float64, n, stride int) error {
	switch {
	case data == nil:
		return ErrNilData
	case n < 1:
		return fmt.Errorf("%w: got %d", ErrTooFewTimePoints, n)
	case stride < 1:
		return fmt.Errorf("%w: got %d", ErrInvalidStride, stride)
	case !fits(len(data), n, stride):
		return fmt.Errorf("%w: %d values cannot hold %d points at stride %d", ErrShortBuffer, len(data), n, stride)
	}
	return nil
}

// fits reports whether have values can hold n >= 1 values at stride >= 1,
// that is (n-1)*stride < have, without overflowing int.
func fits(have, n, stride int) bool {
	if have < 1 {
		return false
	}
	return n == 1 || stride <= (have-1)/(n-1)
}
