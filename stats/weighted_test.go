package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/christal251314/caretEnsemble/pkg/errors"
)

func sampleSD(x []float64) float64 {
	return stat.StdDev(x, nil)
}

func popSD(x []float64) float64 {
	var mean float64
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))
	var ss float64
	for _, v := range x {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(x)))
}

func TestWeightedStdDevUnweighted(t *testing.T) {
	t.Run("nil weights equals sample standard deviation", func(t *testing.T) {
		x := []float64{1.2, 3.4, 2.2, 5.6, 4.1}
		got, err := WeightedStdDev(x, nil)
		require.NoError(t, err)
		assert.InDelta(t, sampleSD(x), got, 1e-12)
	})

	t.Run("nil weights with NaN dropping", func(t *testing.T) {
		x := []float64{1.2, math.NaN(), 2.2, 5.6, math.NaN(), 4.1}
		clean := []float64{1.2, 2.2, 5.6, 4.1}
		got, err := WeightedStdDev(x, nil, WithDropNaN())
		require.NoError(t, err)
		assert.InDelta(t, sampleSD(clean), got, 1e-12)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := WeightedStdDev(nil, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrEmptyData))
	})

	t.Run("all NaN input", func(t *testing.T) {
		_, err := WeightedStdDev([]float64{math.NaN(), math.NaN()}, nil, WithDropNaN())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrEmptyData))
	})
}

func TestWeightedStdDevUniformWeights(t *testing.T) {
	x := []float64{2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0}

	for _, c := range []float64{1.0, 0.5, 3.0, 42.0} {
		w := make([]float64, len(x))
		for i := range w {
			w[i] = c
		}

		got, err := WeightedStdDev(x, w)
		require.NoError(t, err)
		assert.InDelta(t, popSD(x), got, 1e-12, "constant weight %v", c)

		// Renormalizing uniform weights must not change the result.
		gotNorm, err := WeightedStdDev(x, w, WithNormWeights())
		require.NoError(t, err)
		assert.InDelta(t, got, gotNorm, 1e-12, "constant weight %v with normalization", c)
	}
}

func TestWeightedStdDevWeighted(t *testing.T) {
	t.Run("hand-computed case", func(t *testing.T) {
		x := []float64{1.0, 2.0, 3.0}
		w := []float64{1.0, 2.0, 1.0}
		// xbar = (1 + 4 + 3) / 4 = 2
		// sd = sqrt((1*1 + 2*0 + 1*1) / 4) = sqrt(0.5)
		got, err := WeightedStdDev(x, w)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(0.5), got, 1e-12)
	})

	t.Run("NaN dropped pairwise", func(t *testing.T) {
		x := []float64{1.0, math.NaN(), 2.0, 3.0}
		w := []float64{1.0, 5.0, 2.0, math.NaN()}
		got, err := WeightedStdDev(x, w, WithDropNaN())
		require.NoError(t, err)

		want, err := WeightedStdDev([]float64{1.0, 2.0}, []float64{1.0, 2.0})
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12)
	})

	t.Run("zero weight sum", func(t *testing.T) {
		_, err := WeightedStdDev([]float64{1, 2, 3}, []float64{0, 0, 0})
		require.Error(t, err)
	})
}

func TestWeightedStdDevRecycling(t *testing.T) {
	var warned error
	errors.SetWarningHandler(func(w error) { warned = w })
	defer errors.SetWarningHandler(nil)

	x := []float64{1.0, 2.0, 3.0, 4.0}
	w := []float64{1.0, 2.0}

	got, err := WeightedStdDev(x, w)
	require.NoError(t, err)

	// Recycled weights are {1, 2, 1, 2}.
	want, err := WeightedStdDev(x, []float64{1.0, 2.0, 1.0, 2.0})
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)

	require.Error(t, warned)
	var wlw *errors.WeightLengthWarning
	require.True(t, errors.As(warned, &wlw))
	assert.Equal(t, 4, wlw.ValuesLen)
	assert.Equal(t, 2, wlw.WeightsLen)
}
