// Package ensemble validates lists of trained models and extracts the
// out-of-fold prediction data needed to fit a stacked meta-model.
//
// The pipeline is validate-then-extract: CheckModelList confirms a list
// is a uniform, well-formed set of trained models, ExtractBestPreds
// pulls each model's best-tune predictions into a model library, the
// alignment checks confirm the libraries agree on folds, rows, observed
// values and prediction types, and MakePredObsMatrix assembles the
// final observation vector and per-model prediction matrix.
//
// All operations are pure functions over in-memory records; nothing is
// mutated, persisted, or retried.
package ensemble
