package curve

import (
	"fmt"
	"math"
)

// Validate checks that labels and scores form a usable evaluation split.
func Validate(labels []int, scores []float64) error {
	if len(labels) != len(scores) {
		return fmt.Errorf("%w: %d labels, %d scores", ErrLengthMismatch, len(labels), len(scores))
	}
	if len(labels) == 0 {
		return ErrEmptyInput
	}
	if err := ValidateLabels(labels); err != nil {
		return err
	}
	for i, s := range scores {
		if math.IsNaN(s) || s < 0 || s > 1 {
			return fmt.Errorf("%w: score %v at index %d is outside [0,1]", ErrInvalidInput, s, i)
		}
	}
	return nil
}

// ValidateLabels checks that every label is 0 or 1.
func ValidateLabels(labels []int) error {
	for i, l := range labels {
		if l != 0 && l != 1 {
			return fmt.Errorf("%w: label %d at index %d is not binary", ErrInvalidInput, l, i)
		}
	}
	return nil
}

// CountClasses returns the number of positive and negative labels.
func CountClasses(labels []int) (positives, negatives int) {
	for _, l := range labels {
		if l == 1 {
			positives++
		} else {
			negatives++
		}
	}
	return positives, negatives
}

// NoSkill returns the positive-class prevalence, the precision of a classifier
// that predicts every sample as positive.
func NoSkill(labels []int) float64 {
	if len(labels) == 0 {
		return 0.0
	}
	positives, _ := CountClasses(labels)
	return float64(positives) / float64(len(labels))
}
