package threshold

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Argmax returns the lowest index holding the maximum of scores.
func Argmax(scores []float64) (int, error) {
	if len(scores) == 0 {
		return 0, ErrEmptyInput
	}
	if floats.HasNaN(scores) {
		return 0, fmt.Errorf("%w: NaN score", ErrInvalidInput)
	}
	// MaxIdx keeps the first of equal maxima
	return floats.MaxIdx(scores), nil
}

func selectMax(strategy Strategy, thresholds, scores []float64) (Evaluation, error) {
	if len(thresholds) != len(scores) {
		return Evaluation{}, fmt.Errorf("%w: %d thresholds, %d scores", ErrLengthMismatch, len(thresholds), len(scores))
	}
	ix, err := Argmax(scores)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluation{
		Selection: Selection{
			Strategy:  strategy,
			Index:     ix,
			Threshold: thresholds[ix],
			Score:     scores[ix],
		},
		Thresholds: thresholds,
		Scores:     scores,
	}, nil
}
