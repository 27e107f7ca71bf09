package metrics

import (
	"sort"

	"github.com/christal251314/caretEnsemble/pkg/errors"
)

// AUC computes the area under the ROC curve for a binary outcome using
// the rank-based (Mann-Whitney) formulation with midrank tie handling.
// yTrue must contain only 0 and 1, and both classes must be present.
func AUC(yTrue, yScore []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("AUC", "empty input")
	}
	if len(yScore) != n {
		return 0, errors.NewDimensionError("AUC", n, len(yScore))
	}

	var nPos, nNeg int
	for _, v := range yTrue {
		switch v {
		case 1:
			nPos++
		case 0:
			nNeg++
		default:
			return 0, errors.NewValueError("AUC", "labels must be 0 or 1")
		}
	}
	if nPos == 0 || nNeg == 0 {
		return 0, errors.NewValueError("AUC", "both classes must be present")
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return yScore[idx[a]] < yScore[idx[b]]
	})

	// Midranks: tied scores share the average of their rank range.
	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && yScore[idx[j+1]] == yScore[idx[i]] {
			j++
		}
		r := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = r
		}
		i = j + 1
	}

	var rankSum float64
	for i, v := range yTrue {
		if v == 1 {
			rankSum += ranks[i]
		}
	}
	p := float64(nPos)
	return (rankSum - p*(p+1)/2) / (p * float64(nNeg)), nil
}
