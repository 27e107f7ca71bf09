package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christal251314/caretEnsemble/core/model"
	"github.com/christal251314/caretEnsemble/pkg/errors"
)

func TestCheckModelList(t *testing.T) {
	t.Run("valid regression list", func(t *testing.T) {
		list := mustList(t, newRegModel(t, "rf", 0.1), newRegModel(t, "lm", 0.2))
		require.NoError(t, CheckModelList(list, nil))
	})

	t.Run("valid classification list", func(t *testing.T) {
		list := mustList(t, newClassModel(t, "rf", 0), newClassModel(t, "glm", 0.05))
		require.NoError(t, CheckModelList(list, nil))
	})

	t.Run("empty list", func(t *testing.T) {
		require.Error(t, CheckModelList(nil, nil))
	})

	t.Run("nil model entry", func(t *testing.T) {
		list := ModelList{{Name: "broken", Model: nil}}
		err := CheckModelList(list, nil)
		require.Error(t, err)

		var mte *errors.ModelTypeError
		require.True(t, errors.As(err, &mte))
		assert.Equal(t, "broken", mte.Name)
	})

	t.Run("mixed task types", func(t *testing.T) {
		list := mustList(t, newRegModel(t, "rf", 0.1), newClassModel(t, "glm", 0))
		err := CheckModelList(list, nil)
		require.Error(t, err)

		var tme *errors.TaskMismatchError
		require.True(t, errors.As(err, &tme))
		assert.ElementsMatch(t, []string{"Classification", "Regression"}, tme.Tasks)
	})

	t.Run("class probabilities disabled names the model", func(t *testing.T) {
		noProbs := classControl
		noProbs.ClassProbs = false
		list := mustList(t,
			newClassModel(t, "rf", 0),
			newClassModelWithControl(t, "glm", 0.05, noProbs),
		)
		err := CheckModelList(list, nil)
		require.Error(t, err)

		var ce *errors.CapabilityError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, []string{"glm"}, ce.Models)
	})

	t.Run("method without probability support", func(t *testing.T) {
		list := mustList(t,
			newClassModel(t, "rf", 0),
			newClassModel(t, "svmLinear2", 0.05),
		)
		err := CheckModelList(list, nil)
		require.Error(t, err)

		var ce *errors.CapabilityError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, []string{"svmLinear2"}, ce.Models)
	})

	t.Run("unknown method counts as offending", func(t *testing.T) {
		list := mustList(t, newClassModel(t, "mysteryMethod", 0))
		err := CheckModelList(list, nil)
		require.Error(t, err)

		var ce *errors.CapabilityError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, []string{"mysteryMethod"}, ce.Models)
	})

	t.Run("custom registry accepts custom method", func(t *testing.T) {
		caps := model.DefaultRegistry()
		caps.Register("mysteryMethod", model.Capability{Label: "Mystery", ProbModel: true})

		list := mustList(t, newClassModel(t, "mysteryMethod", 0))
		require.NoError(t, CheckModelList(list, caps))
	})

	t.Run("multiclass is unsupported", func(t *testing.T) {
		tune := model.Params{"k": 5}
		preds := []model.Prediction{
			model.ClassObs("Fold1", 1, "a", map[string]float64{"a": 0.8, "b": 0.1, "c": 0.1}, tune),
			model.ClassObs("Fold1", 2, "b", map[string]float64{"a": 0.2, "b": 0.7, "c": 0.1}, tune),
			model.ClassObs("Fold1", 3, "c", map[string]float64{"a": 0.1, "b": 0.2, "c": 0.7}, tune),
		}
		m, err := model.New("knn", model.Classification, tune, preds, classControl)
		require.NoError(t, err)

		err = CheckModelList(mustList(t, m), nil)
		require.Error(t, err)

		var mce *errors.MulticlassError
		require.True(t, errors.As(err, &mce))
		assert.Len(t, mce.Classes, 3)
	})

	t.Run("no retained predictions", func(t *testing.T) {
		m, err := model.New("rf", model.Classification, testTune, nil, classControl)
		require.NoError(t, err)

		err = CheckModelList(ModelList{{Name: "rf", Model: m}}, nil)
		require.Error(t, err)

		var mpe *errors.MissingPredictionsError
		require.True(t, errors.As(err, &mpe))
		assert.Equal(t, "rf", mpe.Name)
	})
}
