// Package metrics implements the fold-level performance metrics used to
// summarize resampled models: RMSE for regression and ROC AUC for
// binary classification.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/christal251314/caretEnsemble/pkg/errors"
)

// MSE computes the mean squared error between observed and predicted
// values.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len())
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE computes the root mean squared error between observed and
// predicted values.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}
