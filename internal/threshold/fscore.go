package threshold

import (
	"github.com/rs/zerolog/log"
)

// FScores returns the F1 score of every precision-recall point. A point with
// precision and recall both zero scores 0.
func FScores(precision, recall []float64) ([]float64, error) {
	if err := checkPair("precision", precision, "recall", recall); err != nil {
		return nil, err
	}

	fscores := make([]float64, len(precision))
	for i := range precision {
		sum := precision[i] + recall[i]
		if sum == 0 {
			continue
		}
		fscores[i] = 2 * precision[i] * recall[i] / sum
	}
	return fscores, nil
}

// SelectFScore picks the precision-recall threshold with the largest F1 score.
// precision and recall must already be aligned with thresholds, see
// curve.PrecisionRecall.Aligned.
func SelectFScore(precision, recall, thresholds []float64) (Selection, error) {
	e, err := evaluateFScore(precision, recall, thresholds)
	return e.Selection, err
}

func evaluateFScore(precision, recall, thresholds []float64) (Evaluation, error) {
	if err := checkThresholds(thresholds, len(precision)); err != nil {
		return Evaluation{}, err
	}
	fscores, err := FScores(precision, recall)
	if err != nil {
		return Evaluation{}, err
	}
	e, err := selectMax(FScoreCurve, thresholds, fscores)
	if err != nil {
		return Evaluation{}, err
	}
	log.Debug().Msgf("Best Threshold=%f, F-Score=%.3f at index %d", e.Threshold, e.Score, e.Index)
	return e, nil
}
