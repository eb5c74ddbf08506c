package curve

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// NewPrecisionRecall computes precision and recall at every distinct score.
func NewPrecisionRecall(labels []int, scores []float64) (PrecisionRecall, error) {
	if err := Validate(labels, scores); err != nil {
		return PrecisionRecall{}, err
	}
	positives, _ := CountClasses(labels)
	if positives == 0 {
		return PrecisionRecall{}, ErrSingleClass
	}

	// walk from the highest score down, emitting a point at each distinct value
	y, classes := sortedByScore(labels, scores)
	var (
		thresholds []float64
		tps, fps   []float64
		tp, fp     float64
	)
	for i := len(y) - 1; i >= 0; i-- {
		if classes[i] {
			tp++
		} else {
			fp++
		}
		if i > 0 && y[i-1] == y[i] {
			continue
		}
		thresholds = append(thresholds, y[i])
		tps = append(tps, tp)
		fps = append(fps, fp)
	}

	precision := make([]float64, len(tps))
	for i := range tps {
		precision[i] = tps[i] / (tps[i] + fps[i])
	}
	recall := make([]float64, len(tps))
	copy(recall, tps)
	floats.Scale(1/float64(positives), recall)

	slices.Reverse(thresholds)
	slices.Reverse(precision)
	slices.Reverse(recall)

	return PrecisionRecall{
		Precision:  append(precision, 1),
		Recall:     append(recall, 0),
		Thresholds: thresholds,
	}, nil
}

// Aligned returns precision and recall with the trailing sentinel point
// removed so that every element lines up with Thresholds.
func (pr PrecisionRecall) Aligned() (precision, recall, thresholds []float64) {
	n := len(pr.Thresholds)
	if len(pr.Precision) < n || len(pr.Recall) < n {
		return pr.Precision, pr.Recall, pr.Thresholds
	}
	return pr.Precision[:n], pr.Recall[:n], pr.Thresholds
}
