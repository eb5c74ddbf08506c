package curve

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// NewROC computes the ROC curve of scores against labels using every distinct
// score as a cutoff. A sample counts as positive when its score is >= the cutoff.
func NewROC(labels []int, scores []float64) (ROC, error) {
	if err := Validate(labels, scores); err != nil {
		return ROC{}, err
	}
	positives, negatives := CountClasses(labels)
	if positives == 0 || negatives == 0 {
		return ROC{}, ErrSingleClass
	}

	y, classes := sortedByScore(labels, scores)
	tpr, fpr, thresholds := stat.ROC(nil, y, classes, nil)

	return ROC{FPR: fpr, TPR: tpr, Thresholds: thresholds}, nil
}

// sortedByScore returns the scores in ascending order along with the matching
// positive-class flags, as stat.ROC requires.
func sortedByScore(labels []int, scores []float64) ([]float64, []bool) {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case scores[a] < scores[b]:
			return -1
		case scores[a] > scores[b]:
			return 1
		}
		return 0
	})

	y := make([]float64, len(order))
	classes := make([]bool, len(order))
	for i, idx := range order {
		y[i] = scores[idx]
		classes[i] = labels[idx] == 1
	}
	return y, classes
}
