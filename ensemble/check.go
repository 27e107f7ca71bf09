package ensemble

import (
	"github.com/christal251314/caretEnsemble/core/model"
	"github.com/christal251314/caretEnsemble/pkg/errors"
)

// CheckModelList confirms a model list is a uniform, well-formed set of
// trained models. Checks run in order and fail fast on the first
// violation:
//
//  1. every entry is a valid trained-model record,
//  2. all models declare the same task type,
//  3. the task type is Classification or Regression,
//  4. classification lists are binary (exactly two observed classes),
//  5. every classification model can and was configured to produce
//     class probabilities.
//
// A nil caps resolver falls back to model.DefaultRegistry.
func CheckModelList(list ModelList, caps model.CapabilityResolver) error {
	if len(list) == 0 {
		return errors.WithStack(errors.ErrEmptyModelList)
	}
	if caps == nil {
		caps = model.DefaultRegistry()
	}

	for _, e := range list {
		if e.Model == nil {
			return errors.NewModelTypeError(e.Name, "nil model")
		}
		if err := e.Model.Validate(); err != nil {
			return errors.Wrapf(err, "model %q", e.Name)
		}
	}

	task := list[0].Model.Task
	for _, e := range list[1:] {
		if e.Model.Task != task {
			return errors.NewTaskMismatchError(distinctTasks(list))
		}
	}
	if task != model.Classification && task != model.Regression {
		return errors.NewUnsupportedTaskError(task.String())
	}

	if task == model.Classification {
		for _, e := range list {
			classes := e.Model.Classes()
			switch {
			case len(classes) == 0:
				return errors.NewMissingPredictionsError(e.Name)
			case len(classes) != 2:
				return errors.NewMulticlassError(classes)
			}
		}

		var offending []string
		for _, e := range list {
			c, known := caps.Lookup(e.Model.Method)
			if !known || !c.ProbModel || !e.Model.Control.ClassProbs {
				offending = append(offending, e.Name)
			}
		}
		if len(offending) > 0 {
			return errors.NewCapabilityError(offending,
				"do not support or were not configured to produce class probabilities")
		}
	}

	return nil
}

func distinctTasks(list ModelList) []string {
	seen := make(map[model.TaskType]bool)
	var tasks []string
	for _, e := range list {
		if !seen[e.Model.Task] {
			seen[e.Model.Task] = true
			tasks = append(tasks, e.Model.Task.String())
		}
	}
	return tasks
}
