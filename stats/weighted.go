// Package stats provides the weighted summary statistics used when
// combining resampled model performance.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/christal251314/caretEnsemble/pkg/errors"
)

type options struct {
	normWeights bool
	dropNaN     bool
}

// Option configures WeightedStdDev.
type Option func(*options)

// WithNormWeights rescales the weights so they sum to the number of
// values before computing.
func WithNormWeights() Option {
	return func(o *options) { o.normWeights = true }
}

// WithDropNaN removes NaN entries pairwise from the values and weights
// before computing.
func WithDropNaN() Option {
	return func(o *options) { o.dropNaN = true }
}

// WeightedStdDev computes the weighted standard deviation of x:
//
//	xbar = Σ(w·x)/Σw
//	sd   = sqrt(Σ(w·(x-xbar)²)/Σw)
//
// A nil weight slice delegates to the ordinary sample standard
// deviation. A weight slice of a different length than x is recycled
// element-by-element; this degrades with a WeightLengthWarning through
// the library warning handler rather than failing.
func WeightedStdDev(x, w []float64, opts ...Option) (float64, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if w == nil {
		vals := x
		if o.dropNaN {
			vals = dropNaN(x)
		}
		if len(vals) == 0 {
			return 0, errors.Wrap(errors.ErrEmptyData, "stats: weighted sd")
		}
		return stat.StdDev(vals, nil), nil
	}

	if len(x) == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "stats: weighted sd")
	}
	if len(w) == 0 {
		return 0, errors.NewValueError("WeightedStdDev", "empty weights")
	}

	if len(w) != len(x) {
		errors.Warn(errors.NewWeightLengthWarning(len(x), len(w)))
	}
	vals, weights := recycle(x, w)

	if o.dropNaN {
		vals, weights = dropNaNPairs(vals, weights)
		if len(vals) == 0 {
			return 0, errors.Wrap(errors.ErrEmptyData, "stats: weighted sd")
		}
	}

	if o.normWeights {
		sum := floats.Sum(weights)
		if sum == 0 {
			return 0, errors.NewValueError("WeightedStdDev", "weights sum to zero")
		}
		scale := float64(len(vals)) / sum
		scaled := make([]float64, len(weights))
		for i, wi := range weights {
			scaled[i] = wi * scale
		}
		weights = scaled
	}

	sumW := floats.Sum(weights)
	if sumW <= 0 {
		return 0, errors.NewValueError("WeightedStdDev", "weights must have a positive sum")
	}

	xbar := stat.Mean(vals, weights)
	var num float64
	for i, v := range vals {
		d := v - xbar
		num += weights[i] * d * d
	}
	return math.Sqrt(num / sumW), nil
}

// recycle pairs every value with a weight, reusing weights cyclically
// when the lengths differ.
func recycle(x, w []float64) ([]float64, []float64) {
	vals := make([]float64, len(x))
	copy(vals, x)
	weights := make([]float64, len(x))
	for i := range weights {
		weights[i] = w[i%len(w)]
	}
	return vals, weights
}

func dropNaN(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

func dropNaNPairs(x, w []float64) ([]float64, []float64) {
	outX := make([]float64, 0, len(x))
	outW := make([]float64, 0, len(w))
	for i, v := range x {
		if math.IsNaN(v) || math.IsNaN(w[i]) {
			continue
		}
		outX = append(outX, v)
		outW = append(outW, w[i])
	}
	return outX, outW
}
