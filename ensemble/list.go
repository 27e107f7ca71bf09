package ensemble

import (
	"fmt"

	"github.com/christal251314/caretEnsemble/core/model"
	"github.com/christal251314/caretEnsemble/pkg/errors"
)

// ListEntry pairs a model with its name within a list.
type ListEntry struct {
	Name  string
	Model *model.Model
}

// ModelList is an ordered, named collection of trained models intended
// for ensembling.
type ModelList []ListEntry

// NewModelList builds a model list from trained models, naming each
// entry after its training method with numeric suffixes applied when
// methods repeat.
func NewModelList(models ...*model.Model) (ModelList, error) {
	if len(models) == 0 {
		return nil, errors.WithStack(errors.ErrEmptyModelList)
	}
	methods := make([]string, len(models))
	for i, m := range models {
		if err := m.Validate(); err != nil {
			return nil, errors.Wrapf(err, "model at position %d", i)
		}
		methods[i] = m.Method
	}
	names := uniquifyNames(methods)
	list := make(ModelList, len(models))
	for i, m := range models {
		list[i] = ListEntry{Name: names[i], Model: m}
	}
	return list, nil
}

// Names returns the entry names in list order.
func (l ModelList) Names() []string {
	names := make([]string, len(l))
	for i, e := range l {
		names[i] = e.Name
	}
	return names
}

// uniquifyNames deduplicates identifiers deterministically in
// first-seen order: the first occurrence keeps the bare name, repeats
// get a numeric suffix.
func uniquifyNames(names []string) []string {
	counts := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		n := counts[name]
		counts[name]++
		if n == 0 {
			out[i] = name
			continue
		}
		candidate := fmt.Sprintf("%s.%d", name, n)
		for counts[candidate] > 0 {
			n++
			candidate = fmt.Sprintf("%s.%d", name, n)
		}
		counts[candidate]++
		out[i] = candidate
	}
	return out
}
