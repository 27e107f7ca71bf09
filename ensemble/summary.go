package ensemble

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/christal251314/caretEnsemble/core/model"
	"github.com/christal251314/caretEnsemble/metrics"
	"github.com/christal251314/caretEnsemble/pkg/errors"
	plog "github.com/christal251314/caretEnsemble/pkg/log"
	wstats "github.com/christal251314/caretEnsemble/stats"
)

// ModelResult is one model's resampled performance summary.
type ModelResult struct {
	Name   string
	Method string
	// Metric names the fold-level metric: "RMSE" for regression,
	// "AUC" for classification.
	Metric string
	// Mean is the fold-size-weighted mean of the fold metrics.
	Mean float64
	// SD is the fold-size-weighted standard deviation of the fold
	// metrics.
	SD float64
}

// SummarizeResamples computes each model's fold-level performance over
// its best-tune predictions: RMSE per fold for regression, AUC of the
// positive class per fold for classification, aggregated with fold
// sizes as weights. A nil caps resolver falls back to
// model.DefaultRegistry.
func SummarizeResamples(list ModelList, caps model.CapabilityResolver) ([]ModelResult, error) {
	if err := CheckModelList(list, caps); err != nil {
		return nil, err
	}
	lib, err := ExtractBestPreds(list)
	if err != nil {
		return nil, err
	}
	task := list[0].Model.Task

	results := make([]ModelResult, 0, len(lib))
	for _, m := range lib {
		vals, weights, err := foldMetrics(m, task)
		if err != nil {
			return nil, errors.Wrapf(err, "model %q", m.Name)
		}
		sd, err := wstats.WeightedStdDev(vals, weights, wstats.WithNormWeights())
		if err != nil {
			return nil, errors.Wrapf(err, "model %q", m.Name)
		}
		metric := "RMSE"
		if task == model.Classification {
			metric = "AUC"
		}
		results = append(results, ModelResult{
			Name:   m.Name,
			Method: m.Method,
			Metric: metric,
			Mean:   stat.Mean(vals, weights),
			SD:     sd,
		})
	}

	slog.Debug("summarized resampled performance",
		plog.OperationKey, "summarize_resamples",
		plog.TaskKey, task.String(),
		plog.ModelCountKey, len(results),
	)
	return results, nil
}

// foldMetrics computes the metric for each resampling fold of one
// library model, returning the metric values and the fold sizes as
// weights. Predictions arrive sorted by fold, so folds are contiguous
// runs.
func foldMetrics(m LibraryModel, task model.TaskType) ([]float64, []float64, error) {
	var vals, weights []float64

	var positive string
	if task == model.Classification {
		classes := obsClasses(m)
		if len(classes) != 2 {
			return nil, nil, errors.NewMulticlassError(classes)
		}
		positive = classes[1]
	}

	for start := 0; start < len(m.Preds); {
		end := start
		for end < len(m.Preds) && m.Preds[end].Fold == m.Preds[start].Fold {
			end++
		}
		rows := m.Preds[start:end]

		var v float64
		var err error
		switch task {
		case model.Classification:
			yTrue := make([]float64, len(rows))
			yScore := make([]float64, len(rows))
			for i, p := range rows {
				if p.Obs == positive {
					yTrue[i] = 1
				}
				yScore[i] = p.Probs[positive]
			}
			v, err = metrics.AUC(yTrue, yScore)
		case model.Regression:
			obs := mat.NewVecDense(len(rows), nil)
			pred := mat.NewVecDense(len(rows), nil)
			for i, p := range rows {
				obs.SetVec(i, p.ObsValue)
				pred.SetVec(i, p.Pred)
			}
			v, err = metrics.RMSE(obs, pred)
		}
		if err != nil {
			return nil, nil, errors.Wrapf(err, "fold %q", m.Preds[start].Fold)
		}

		vals = append(vals, v)
		weights = append(weights, float64(len(rows)))
		start = end
	}
	return vals, weights, nil
}
