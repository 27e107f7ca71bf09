package log

// Ensemble context attributes. These identify the model list and the
// operation being validated or extracted.
const (
	// ModelNameKey identifies a single model within a list.
	// Examples: "rf", "glm.1", "gbm"
	ModelNameKey = "model.name"

	// MethodKey is the training-method identifier of a model.
	MethodKey = "model.method"

	// TaskKey is the shared task type of a model list.
	// Values: "Classification", "Regression"
	TaskKey = "ensemble.task"

	// ModelCountKey is the number of models in the list.
	ModelCountKey = "ensemble.models"

	// OperationKey names the library operation in progress.
	// Standard values: "check_model_list", "best_preds",
	// "make_pred_obs_matrix", "summarize_resamples"
	OperationKey = "ensemble.operation"

	// PositiveClassKey is the class whose probability becomes the
	// ensembling feature for classification tasks.
	PositiveClassKey = "ensemble.positive_class"
)

// Data shape attributes for the extracted prediction data.
const (
	// FoldsKey is the number of distinct resampling folds.
	FoldsKey = "data.folds"

	// RowsKey is the number of retained out-of-fold prediction rows.
	RowsKey = "data.rows"

	// ColsKey is the number of columns in the assembled matrix,
	// one per model.
	ColsKey = "matrix.cols"
)
