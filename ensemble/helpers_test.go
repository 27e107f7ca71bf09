package ensemble

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/christal251314/caretEnsemble/core/model"
)

var (
	testTune = model.Params{"mtry": 2}

	regControl = model.Control{Method: "cv", SavePredictions: true}

	classControl = model.Control{Method: "cv", SavePredictions: true, ClassProbs: true}
)

// newRegModel builds a 6-row regression model over two folds where every
// prediction is the observed value shifted by delta.
func newRegModel(t *testing.T, method string, delta float64) *model.Model {
	t.Helper()
	preds := make([]model.Prediction, 0, 6)
	for i := 0; i < 6; i++ {
		fold := "Fold1"
		if i >= 3 {
			fold = "Fold2"
		}
		obs := float64(i + 1)
		preds = append(preds, model.NumericObs(fold, i+1, obs, obs+delta, testTune))
	}
	m, err := model.New(method, model.Regression, testTune, preds, regControl)
	require.NoError(t, err)
	return m
}

var (
	classObsLabels = []string{"No", "Yes", "No", "Yes", "No", "Yes"}
	classProbsYes  = []float64{0.2, 0.7, 0.3, 0.8, 0.1, 0.9}
)

// newClassModel builds a 6-row binary-classification model over two
// folds; shift perturbs the positive-class probabilities so two models
// can disagree while staying aligned on folds, rows and observations.
func newClassModel(t *testing.T, method string, shift float64) *model.Model {
	t.Helper()
	return newClassModelWithControl(t, method, shift, classControl)
}

func newClassModelWithControl(t *testing.T, method string, shift float64, control model.Control) *model.Model {
	t.Helper()
	preds := make([]model.Prediction, 0, 6)
	for i := 0; i < 6; i++ {
		fold := "Fold1"
		if i >= 3 {
			fold = "Fold2"
		}
		pYes := classProbsYes[i] + shift
		probs := map[string]float64{"No": 1 - pYes, "Yes": pYes}
		preds = append(preds, model.ClassObs(fold, i+1, classObsLabels[i], probs, testTune))
	}
	m, err := model.New(method, model.Classification, testTune, preds, control)
	require.NoError(t, err)
	return m
}

func mustList(t *testing.T, models ...*model.Model) ModelList {
	t.Helper()
	list, err := NewModelList(models...)
	require.NoError(t, err)
	return list
}
