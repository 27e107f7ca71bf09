// Package caretensemble provides validation and data-extraction
// utilities for ensembling already-trained classification and
// regression models.
//
// Given a list of trained models produced by an external training
// library, it verifies they are mutually compatible for ensembling
// (same task type, same resampling folds, same row ordering, same
// observed target values, same prediction shape) and extracts a matrix
// of out-of-fold predictions suitable for fitting a stacked meta-model.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/christal251314/caretEnsemble/ensemble"
//	)
//
//	func main() {
//	    list, err := ensemble.NewModelList(rf, glm) // trained models
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    m, err := ensemble.MakePredObsMatrix(list, nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    rows, cols := m.Pred.Dims()
//	    fmt.Println(m.Task, rows, cols, m.ModelNames)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - ensemble: model-list validation, best-tune extraction, and
//     prediction-matrix assembly
//   - core/model: trained-model records and the method-capability
//     registry
//   - stats: weighted standard deviation
//   - metrics: fold-level performance metrics (RMSE, AUC)
//   - pkg/errors: structured errors and the warning system
//   - pkg/log: structured logging
package caretensemble
