package connectivity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-connectivity/internal/testutil"
)

func TestSingletonROIEqualsSeriesSweep(t *testing.T) {
	data := testutil.MixedSeries(31, 20, 60)
	for _, layout := range equivalentLayouts(data) {
		t.Run(layout.Name(), func(t *testing.T) {
			e, err := New(layout, DefaultSettings())
			require.NoError(t, err)

			for _, idx := range []int{0, 5, 19} {
				want, err := e.ScoreSeries(nil, idx)
				require.NoError(t, err)
				got, err := e.ScoreROIAverage(nil, []int{idx})
				require.NoError(t, err)
				testutil.RequireSliceRelNearlyEqual(t, got, want, relTol, absTol)
			}
		})
	}
}

func TestAverageSeries(t *testing.T) {
	e := scenario(t, DefaultSettings())

	avg, err := e.AverageSeries([]int{0, 2})
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, avg, testutil.DC(3.5, 6), 1e-12)

	avg, err = e.AverageSeries([]int{0, 0, 1})
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, avg, []float64{4.0 / 3, 8.0 / 3, 4, 16.0 / 3, 20.0 / 3, 8}, 1e-12)
}

func TestROIAverageScores(t *testing.T) {
	e := scenario(t, DefaultSettings())

	// mean(A, B) = 1.5*A is perfectly correlated with A and B.
	got, err := e.ScoreROIAverage(nil, []int{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got[0], 1e-12)
	assert.InDelta(t, 1.0, got[1], 1e-12)
	assert.InDelta(t, -1.0, got[2], 1e-12)

	// mean(A, C) is constant, so every score is zero.
	got, err = e.ScoreROIAverage(got, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, got)
}

func TestROIUsageErrors(t *testing.T) {
	e := scenario(t, DefaultSettings())

	got, err := e.ScoreROIAverage([]float64{9, 9, 9, 9}, nil)
	require.ErrorIs(t, err, ErrEmptyROI)
	assert.Equal(t, []float64{0, 0, 0, 0}, got)

	got, err = e.ScoreROIAverage(got, []int{1, 4})
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, []float64{0, 0, 0, 0}, got)
}
