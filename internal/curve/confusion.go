package curve

import "fmt"

// ToLabels thresholds positive-class probabilities into hard labels.
func ToLabels(scores []float64, threshold float64) []int {
	predicted := make([]int, len(scores))
	for i, s := range scores {
		if s >= threshold {
			predicted[i] = 1
		}
	}
	return predicted
}

// Confusion tallies predicted labels against ground truth.
func Confusion(labels, predicted []int) (ConfusionMatrix, error) {
	if len(labels) != len(predicted) {
		return ConfusionMatrix{}, fmt.Errorf("%w: %d labels, %d predictions", ErrLengthMismatch, len(labels), len(predicted))
	}
	var cm ConfusionMatrix
	for i, actual := range labels {
		switch {
		case actual == 1 && predicted[i] == 1:
			cm.TP++
		case actual == 0 && predicted[i] == 1:
			cm.FP++
		case actual == 1:
			cm.FN++
		default:
			cm.TN++
		}
	}
	return cm, nil
}

// ConfusionAt tallies the confusion matrix for scores thresholded at t without
// materialising the predicted labels.
func ConfusionAt(labels []int, scores []float64, t float64) ConfusionMatrix {
	var cm ConfusionMatrix
	for i, s := range scores {
		positive := s >= t
		switch {
		case labels[i] == 1 && positive:
			cm.TP++
		case labels[i] == 0 && positive:
			cm.FP++
		case labels[i] == 1:
			cm.FN++
		default:
			cm.TN++
		}
	}
	return cm
}

// Precision is TP / (TP + FP), or 0 when nothing was predicted positive.
func (cm ConfusionMatrix) Precision() float64 {
	denom := cm.TP + cm.FP
	if denom == 0 {
		return 0.0
	}
	return float64(cm.TP) / float64(denom)
}

// Recall is TP / (TP + FN), or 0 when there are no positives.
func (cm ConfusionMatrix) Recall() float64 {
	denom := cm.TP + cm.FN
	if denom == 0 {
		return 0.0
	}
	return float64(cm.TP) / float64(denom)
}

// F1 is the harmonic mean of precision and recall, 0 when both are 0.
func (cm ConfusionMatrix) F1() float64 {
	denom := 2*cm.TP + cm.FP + cm.FN
	if denom == 0 {
		return 0.0
	}
	return 2 * float64(cm.TP) / float64(denom)
}

// F1Score returns the F1 score of predicted against labels for the positive class.
func F1Score(labels, predicted []int) (float64, error) {
	cm, err := Confusion(labels, predicted)
	if err != nil {
		return 0, err
	}
	return cm.F1(), nil
}
