package model

import (
	"math"

	"github.com/christal251314/caretEnsemble/pkg/errors"
)

// PredKind is the structural kind of a prediction payload.
type PredKind int

const (
	// KindUnknown is the zero value.
	KindUnknown PredKind = iota
	// KindNumeric is a plain numeric score (regression output).
	KindNumeric
	// KindProb is a class-probability table (classification output).
	KindProb
	// KindMixed marks a model whose rows carry inconsistent payloads.
	KindMixed
)

func (k PredKind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindProb:
		return "prob"
	case KindMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Prediction is one retained out-of-fold prediction row.
type Prediction struct {
	// Fold is the resampling-fold identifier, e.g. "Fold1".
	Fold string
	// RowIndex is the original row index in the training data.
	RowIndex int
	// Obs is the observed class label. Empty for regression.
	Obs string
	// ObsValue is the observed numeric target. NaN for classification.
	ObsValue float64
	// Pred is the numeric prediction. NaN for classification.
	Pred float64
	// Probs holds the predicted class probabilities, keyed by class
	// label. Nil for regression.
	Probs map[string]float64
	// Tune is the hyperparameter record the row was predicted under.
	Tune Params
}

// Kind classifies the prediction payload of a single row.
func (p Prediction) Kind() PredKind {
	if p.Probs != nil {
		return KindProb
	}
	return KindNumeric
}

// Control carries the resampling and output settings a model was
// trained under.
type Control struct {
	// Method is the resampling scheme, e.g. "cv" or "boot".
	Method string
	// SavePredictions records whether out-of-fold predictions were
	// retained during training. Required for ensembling.
	SavePredictions bool
	// ClassProbs records whether class-probability output was enabled.
	ClassProbs bool
}

// Model is a trained-model record as handed over by the training
// library. Construct with New so the required fields are validated up
// front.
type Model struct {
	// Method is the training-method identifier, e.g. "rf" or "glm".
	Method string
	// Task tags the model as classification or regression.
	Task TaskType
	// BestTune is the hyperparameter combination selected as optimal.
	BestTune Params
	// Pred is the table of retained out-of-fold predictions, one row
	// per resampling fold and original row.
	Pred []Prediction
	// Control is the resampling/control configuration.
	Control Control
}

// New builds a validated trained-model record.
func New(method string, task TaskType, bestTune Params, pred []Prediction, control Control) (*Model, error) {
	m := &Model{
		Method:   method,
		Task:     task,
		BestTune: bestTune,
		Pred:     pred,
		Control:  control,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks that the record has the fields ensembling relies on.
func (m *Model) Validate() error {
	if m == nil {
		return errors.NewModelTypeError("", "nil model")
	}
	if m.Method == "" {
		return errors.NewModelTypeError("", "missing training-method identifier")
	}
	if m.Task != Classification && m.Task != Regression {
		return errors.NewUnsupportedTaskError(m.Task.String())
	}
	if len(m.BestTune) == 0 {
		return errors.NewModelTypeError(m.Method, "missing best-tune record")
	}
	return nil
}

// Classes returns the distinct observed class labels over the retained
// predictions, in first-seen order. Empty for regression models or when
// no predictions were retained.
func (m *Model) Classes() []string {
	seen := make(map[string]bool)
	var classes []string
	for _, p := range m.Pred {
		if p.Obs == "" {
			continue
		}
		if !seen[p.Obs] {
			seen[p.Obs] = true
			classes = append(classes, p.Obs)
		}
	}
	return classes
}

// NumericObs is a convenience constructor for a regression prediction row.
func NumericObs(fold string, rowIndex int, obs, pred float64, tune Params) Prediction {
	return Prediction{
		Fold:     fold,
		RowIndex: rowIndex,
		ObsValue: obs,
		Pred:     pred,
		Tune:     tune,
	}
}

// ClassObs is a convenience constructor for a classification prediction row.
func ClassObs(fold string, rowIndex int, obs string, probs map[string]float64, tune Params) Prediction {
	return Prediction{
		Fold:     fold,
		RowIndex: rowIndex,
		Obs:      obs,
		ObsValue: math.NaN(),
		Pred:     math.NaN(),
		Probs:    probs,
		Tune:     tune,
	}
}
