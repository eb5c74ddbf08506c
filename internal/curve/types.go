// Package curve computes the per-threshold curves a threshold search runs over:
// the ROC curve, the precision-recall curve and the confusion matrix behind F1.
package curve

import "errors"

var (
	ErrLengthMismatch = errors.New("labels and scores differ in length")
	ErrEmptyInput     = errors.New("empty input")
	ErrInvalidInput   = errors.New("invalid input")
	ErrSingleClass    = errors.New("labels contain a single class")
)

// ROC holds the receiver operating characteristic. Thresholds are descending and
// start at +Inf, so the first point is (0, 0) and the last is (1, 1).
type ROC struct {
	FPR        []float64 `json:"fpr"`
	TPR        []float64 `json:"tpr"`
	Thresholds []float64 `json:"thresholds"`
}

// PrecisionRecall holds the precision-recall curve. Thresholds are ascending.
// Precision and Recall carry one extra trailing point (1, 0) with no threshold.
type PrecisionRecall struct {
	Precision  []float64 `json:"precision"`
	Recall     []float64 `json:"recall"`
	Thresholds []float64 `json:"thresholds"`
}

// ConfusionMatrix counts binary outcomes for the positive class.
type ConfusionMatrix struct {
	TP int `json:"tp"`
	FP int `json:"fp"`
	TN int `json:"tn"`
	FN int `json:"fn"`
}
