// Package model defines the trained-model records consumed by the
// ensembling layer: the task type tag, hyperparameter records, retained
// out-of-fold predictions, the resampling control settings, and the
// method-capability registry.
//
// Records are produced by an external training library; this package
// validates their shape at construction so downstream code can rely on
// well-formed inputs instead of duck-typed checks.
package model

import (
	"github.com/christal251314/caretEnsemble/pkg/errors"
)

// TaskType tags a trained model as a classifier or a regressor.
type TaskType int

const (
	// TaskUnknown is the zero value and never valid for a trained model.
	TaskUnknown TaskType = iota
	// Classification is a categorical-outcome task.
	Classification
	// Regression is a numeric-outcome task.
	Regression
)

// String returns the task name as reported by the training library.
func (t TaskType) String() string {
	switch t {
	case Classification:
		return "Classification"
	case Regression:
		return "Regression"
	default:
		return "Unknown"
	}
}

// ParseTaskType converts a training-library task tag to a TaskType.
// Anything other than "Classification" or "Regression" is rejected.
func ParseTaskType(s string) (TaskType, error) {
	switch s {
	case "Classification":
		return Classification, nil
	case "Regression":
		return Regression, nil
	default:
		return TaskUnknown, errors.NewUnsupportedTaskError(s)
	}
}
