package ensemble

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/christal251314/caretEnsemble/core/model"
	plog "github.com/christal251314/caretEnsemble/pkg/log"
)

// PredObsMatrix is the final artifact handed to the stacking stage: the
// shared observed target values and one column of predicted values per
// model.
type PredObsMatrix struct {
	// Task tags the matrix as classification or regression data.
	Task model.TaskType
	// ObsLabels holds the observed class labels for classification
	// tasks, in library row order. Nil for regression.
	ObsLabels []string
	// ObsValues holds the observed numeric targets for regression
	// tasks, in library row order. Nil for classification.
	ObsValues []float64
	// PositiveClass is the class whose predicted probability fills the
	// matrix for classification tasks: the second distinct observed
	// value in first-seen order. Empty for regression.
	PositiveClass string
	// ModelNames are the column identities, one per model in input
	// order, uniquified when training methods collide.
	ModelNames []string
	// Pred is the rows x models matrix of predicted values.
	Pred *mat.Dense
}

// MakePredObsMatrix validates a model list, extracts each model's
// best-tune predictions, checks cross-model alignment, and assembles
// the prediction-observation matrix. A nil caps resolver falls back to
// model.DefaultRegistry.
func MakePredObsMatrix(list ModelList, caps model.CapabilityResolver) (*PredObsMatrix, error) {
	if err := CheckModelList(list, caps); err != nil {
		return nil, err
	}
	lib, err := ExtractBestPreds(list)
	if err != nil {
		return nil, err
	}
	for _, check := range []func(Library) error{
		checkResamples,
		checkRowIndexes,
		checkObs,
		checkPredKinds,
	} {
		if err := check(lib); err != nil {
			return nil, err
		}
	}

	task := list[0].Model.Task
	rows := len(lib[0].Preds)
	methods := make([]string, len(lib))
	for i, m := range lib {
		methods[i] = m.Method
	}

	out := &PredObsMatrix{
		Task:       task,
		ModelNames: uniquifyNames(methods),
		Pred:       mat.NewDense(rows, len(lib), nil),
	}

	switch task {
	case model.Classification:
		classes := obsClasses(lib[0])
		out.PositiveClass = classes[1]
		out.ObsLabels = make([]string, rows)
		for i, p := range lib[0].Preds {
			out.ObsLabels[i] = p.Obs
		}
		for j, m := range lib {
			for i, p := range m.Preds {
				out.Pred.Set(i, j, p.Probs[out.PositiveClass])
			}
		}
	case model.Regression:
		out.ObsValues = make([]float64, rows)
		for i, p := range lib[0].Preds {
			out.ObsValues[i] = p.ObsValue
		}
		for j, m := range lib {
			for i, p := range m.Preds {
				out.Pred.Set(i, j, p.Pred)
			}
		}
	}

	slog.Debug("assembled prediction matrix",
		plog.OperationKey, "make_pred_obs_matrix",
		plog.TaskKey, task.String(),
		plog.ModelCountKey, len(lib),
		plog.RowsKey, rows,
		plog.ColsKey, len(lib),
		plog.PositiveClassKey, out.PositiveClass,
	)
	return out, nil
}

// obsClasses returns the distinct observed class labels of one library
// model's predictions, in first-seen order.
func obsClasses(m LibraryModel) []string {
	seen := make(map[string]bool)
	var classes []string
	for _, p := range m.Preds {
		if !seen[p.Obs] {
			seen[p.Obs] = true
			classes = append(classes, p.Obs)
		}
	}
	return classes
}
