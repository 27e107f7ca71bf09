package ensemble

import (
	"sort"

	"github.com/christal251314/caretEnsemble/core/model"
	"github.com/christal251314/caretEnsemble/pkg/errors"
)

// LibraryModel is one model's best-tune-filtered, sorted prediction
// subset.
type LibraryModel struct {
	Name   string
	Method string
	Preds  []model.Prediction
	Kind   model.PredKind
}

// Library is the per-model extracted prediction data, in model-list
// order, validated for cross-model alignment by the check* functions.
type Library []LibraryModel

// BestPreds returns the retained out-of-fold predictions matching the
// model's selected best tune, sorted by fold identifier then original
// row index. The model must have been trained with predictions saved.
func BestPreds(m *model.Model) ([]model.Prediction, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if !m.Control.SavePredictions {
		return nil, errors.NewMissingPredictionsError(m.Method)
	}

	var out []model.Prediction
	for _, p := range m.Pred {
		if p.Tune.Matches(m.BestTune) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, errors.NewMissingPredictionsError(m.Method)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Fold != out[j].Fold {
			return out[i].Fold < out[j].Fold
		}
		return out[i].RowIndex < out[j].RowIndex
	})
	return out, nil
}

// ExtractBestPreds applies BestPreds to every model in the list,
// preserving order and names.
func ExtractBestPreds(list ModelList) (Library, error) {
	if len(list) == 0 {
		return nil, errors.WithStack(errors.ErrEmptyModelList)
	}
	lib := make(Library, 0, len(list))
	for _, e := range list {
		preds, err := BestPreds(e.Model)
		if err != nil {
			return nil, errors.Wrapf(err, "model %q", e.Name)
		}
		lib = append(lib, LibraryModel{
			Name:   e.Name,
			Method: e.Model.Method,
			Preds:  preds,
			Kind:   predKind(preds),
		})
	}
	return lib, nil
}

// predKind classifies a model's prediction payload: numeric, class
// probabilities, or mixed when the rows disagree.
func predKind(preds []model.Prediction) model.PredKind {
	kind := model.KindUnknown
	for _, p := range preds {
		k := p.Kind()
		if kind == model.KindUnknown {
			kind = k
			continue
		}
		if k != kind {
			return model.KindMixed
		}
	}
	return kind
}
