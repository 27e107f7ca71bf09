package ensemble

import (
	"fmt"
	"math"
	"strings"

	"github.com/christal251314/caretEnsemble/pkg/errors"
)

// The alignment checks compare one projected field of the extracted
// best-tune predictions across every model in the library. Each is a
// pure comparator: any mismatch is fatal to the extraction pipeline.

// checkResamples confirms every model was evaluated on the same
// sequence of resampling folds.
func checkResamples(lib Library) error {
	ref := lib[0]
	for _, m := range lib[1:] {
		if len(m.Preds) != len(ref.Preds) {
			return errors.NewAlignmentError("resampling folds",
				fmt.Sprintf("model %q has %d prediction rows, model %q has %d; check that all models use the same resampling strategy",
					m.Name, len(m.Preds), ref.Name, len(ref.Preds)))
		}
		for i, p := range m.Preds {
			if p.Fold != ref.Preds[i].Fold {
				return errors.NewAlignmentError("resampling folds",
					fmt.Sprintf("model %q and model %q disagree at row %d (%q vs %q); check that all models use the same resampling strategy",
						m.Name, ref.Name, i, p.Fold, ref.Preds[i].Fold))
			}
		}
	}
	return nil
}

// checkRowIndexes confirms every model retained predictions for the
// same original rows.
func checkRowIndexes(lib Library) error {
	ref := lib[0]
	for _, m := range lib[1:] {
		if len(m.Preds) != len(ref.Preds) {
			return errors.NewAlignmentError("row indexes",
				fmt.Sprintf("model %q has %d prediction rows, model %q has %d; check that all models were trained on the same rows",
					m.Name, len(m.Preds), ref.Name, len(ref.Preds)))
		}
		for i, p := range m.Preds {
			if p.RowIndex != ref.Preds[i].RowIndex {
				return errors.NewAlignmentError("row indexes",
					fmt.Sprintf("model %q and model %q disagree at row %d (%d vs %d); check that all models were trained on the same rows",
						m.Name, ref.Name, i, p.RowIndex, ref.Preds[i].RowIndex))
			}
		}
	}
	return nil
}

// checkObs confirms every model saw identical observed target values.
func checkObs(lib Library) error {
	ref := lib[0]
	for _, m := range lib[1:] {
		if len(m.Preds) != len(ref.Preds) {
			return errors.NewAlignmentError("observed values",
				fmt.Sprintf("model %q has %d prediction rows, model %q has %d; check that all models were trained on the same target",
					m.Name, len(m.Preds), ref.Name, len(ref.Preds)))
		}
		for i, p := range m.Preds {
			if p.Obs != ref.Preds[i].Obs || !floatEqualNaN(p.ObsValue, ref.Preds[i].ObsValue) {
				return errors.NewAlignmentError("observed values",
					fmt.Sprintf("model %q and model %q disagree at row %d; check that all models were trained on the same target variable",
						m.Name, ref.Name, i))
			}
		}
	}
	return nil
}

// checkPredKinds confirms the prediction payload type is homogeneous
// across models.
func checkPredKinds(lib Library) error {
	seen := make(map[string]bool)
	var kinds []string
	for _, m := range lib {
		k := m.Kind.String()
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	if len(kinds) > 1 {
		return errors.NewAlignmentError("prediction types",
			fmt.Sprintf("found mixed prediction payloads: %s", strings.Join(kinds, ", ")))
	}
	return nil
}

// floatEqualNaN is exact equality treating NaN as equal to NaN, so
// classification rows (numeric target unset) compare clean.
func floatEqualNaN(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}
