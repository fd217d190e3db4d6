package connectivity

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-connectivity/internal/dot"
	"github.com/cwbudde/algo-connectivity/internal/parallel"
)

// Engine scores one series (or a synthetic series) against every series
// of a fixed collection.
//
// An Engine is read-only after New returns. Queries may run concurrently
// as long as each call writes to its own output slice.
type Engine struct {
	settings Settings
	kernel   kernel
	layout   string
	series   []Series
	stats    []Statistics
	length   int

	logger  zerolog.Logger
	grain   int
	workers int
}

// New validates layout, precomputes per-series statistics and returns an
// engine over the caller's buffers. Buffers are borrowed, not copied.
func New(layout Layout, settings Settings, opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if layout == nil {
		return nil, ErrNilLayout
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	series, length, err := layout.views()
	if err != nil {
		cfg.logger.Debug().Err(err).Str("layout", layout.Name()).Msg("connectivity engine rejected")
		return nil, err
	}

	e := &Engine{
		settings: settings,
		kernel:   newKernel(settings, length),
		layout:   layout.Name(),
		series:   series,
		length:   length,
		logger:   cfg.logger,
		grain:    cfg.grain,
		workers:  cfg.workers,
	}
	e.stats = precompute(series, settings.noDemean(), e.grain, e.workers)

	e.logger.Debug().
		Str("layout", e.layout).
		Int("series", len(series)).
		Int("length", length).
		Stringer("mode", settings.Mode).
		Bool("no_demean", e.kernel.noDemean).
		Bool("fisher_z", e.kernel.fisherZ).
		Str("dot", dot.Implementation()).
		Msg("connectivity engine ready")

	return e, nil
}

// NewInterleaved is New with an Interleaved layout.
func NewInterleaved(data []float64, seriesCount, seriesStride, length, elementStride int,
	settings Settings, opts ...Option,
) (*Engine, error) {
	return New(Interleaved{
		Data:          data,
		SeriesCount:   seriesCount,
		SeriesStride:  seriesStride,
		Length:        length,
		ElementStride: elementStride,
	}, settings, opts...)
}

// NewPerSeries is New with a PerSeries layout.
func NewPerSeries(series [][]float64, length, stride int, settings Settings, opts ...Option) (*Engine, error) {
	return New(PerSeries{Series: series, Length: length, Stride: stride}, settings, opts...)
}

// NewPerTimePoint is New with a PerTimePoint layout.
func NewPerTimePoint(timePoints [][]float64, seriesCount, seriesStride int,
	settings Settings, opts ...Option,
) (*Engine, error) {
	return New(PerTimePoint{TimePoints: timePoints, SeriesCount: seriesCount, SeriesStride: seriesStride},
		settings, opts...)
}

// NewParcels is New with a Parcels layout.
func NewParcels(parcels [][]float64, settings Settings, opts ...Option) (*Engine, error) {
	return New(Parcels{Parcels: parcels}, settings, opts...)
}

// SeriesCount returns the number of series N.
func (e *Engine) SeriesCount() int { return len(e.series) }

// SeriesLength returns the number of values in every series.
func (e *Engine) SeriesLength() int { return e.length }

// Settings returns the settings the engine was built with.
func (e *Engine) Settings() Settings { return e.settings }

// Layout returns the name of the layout the engine was built from.
func (e *Engine) Layout() string { return e.layout }

// Statistics returns the precomputed statistics of series i.
func (e *Engine) Statistics(i int) (Statistics, error) {
	if err := e.checkIndex(i); err != nil {
		return Statistics{}, err
	}
	return e.stats[i], nil
}

// Pair returns the score of series i against series j, using the same
// rules as ScoreSeries.
func (e *Engine) Pair(i, j int) (float64, error) {
	if err := e.checkIndex(i); err != nil {
		return 0, err
	}
	if err := e.checkIndex(j); err != nil {
		return 0, err
	}
	if i == j && e.kernel.mode == ModeCorrelation {
		return e.kernel.self(e.stats[i]), nil
	}
	return e.kernel.score(e.series[i], e.stats[i], e.series[j], e.stats[j]), nil
}

// ScoreSeries scores series index against all N series and returns dst
// resized to N. In correlation mode the self slot is exactly 1 (its
// Fisher Z value when enabled) without running the kernel, except for a
// constant series, which scores 0 everywhere including itself.
//
// On an invalid index the result is all zeros and the error wraps
// ErrIndexOutOfRange.
func (e *Engine) ScoreSeries(dst []float64, index int) ([]float64, error) {
	dst = e.reset(dst)
	if err := e.checkIndex(index); err != nil {
		e.rejected("score series", err)
		return dst, err
	}

	// Non-contiguous queries are packed once so every pair reads the
	// query sequentially.
	query := e.series[index]
	if _, ok := query.Contiguous(); !ok {
		query = Values(gather(nil, query))
	}
	e.sweep(dst, query, e.stats[index], index)
	return dst, nil
}

// ScoreExternal scores a caller-supplied series against all N series.
// No self short-circuit applies. If len(query) differs from
// SeriesLength the result is all zeros and the error wraps
// ErrLengthMismatch.
func (e *Engine) ScoreExternal(dst, query []float64) ([]float64, error) {
	dst = e.reset(dst)
	if len(query) != e.length {
		err := fmt.Errorf("%w: %d points in query, series have %d", ErrLengthMismatch, len(query), e.length)
		e.rejected("score external", err)
		return dst, err
	}

	q := Values(query)
	e.sweep(dst, q, computeStatistics(q, e.kernel.noDemean), -1)
	return dst, nil
}

// sweep writes the score of query against series i into dst[i] for all i.
// self is the index of query inside the collection, or -1.
func (e *Engine) sweep(dst []float64, query Series, qs Statistics, self int) {
	parallel.ForWorkers(len(e.series), e.grain, e.workers, func(start, end int) {
		for i := start; i < end; i++ {
			if i == self && e.kernel.mode == ModeCorrelation {
				dst[i] = e.kernel.self(qs)
				continue
			}
			dst[i] = e.kernel.score(query, qs, e.series[i], e.stats[i])
		}
	})
}

// reset returns dst with length N and every element zero.
func (e *Engine) reset(dst []float64) []float64 {
	n := len(e.series)
	if cap(dst) < n {
		return make([]float64, n)
	}
	dst = dst[:n]
	clear(dst)
	return dst
}

func (e *Engine) checkIndex(i int) error {
	if i < 0 || i >= len(e.series) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(e.series))
	}
	return nil
}

func (e *Engine) rejected(op string, err error) {
	e.logger.Warn().Err(err).Str("op", op).Msg("connectivity query rejected")
}
