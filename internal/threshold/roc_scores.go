package threshold

import (
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

// GMeans returns sqrt(tpr * (1 - fpr)) for every curve point.
func GMeans(tpr, fpr []float64) ([]float64, error) {
	if err := checkPair("tpr", tpr, "fpr", fpr); err != nil {
		return nil, err
	}

	specificity := make([]float64, len(fpr))
	for i := range fpr {
		specificity[i] = 1 - fpr[i]
	}
	gmeans := make([]float64, len(tpr))
	floats.MulTo(gmeans, tpr, specificity)
	for i := range gmeans {
		gmeans[i] = math.Sqrt(gmeans[i])
	}
	return gmeans, nil
}

// YoudenJStatistic returns tpr - fpr for every curve point.
func YoudenJStatistic(tpr, fpr []float64) ([]float64, error) {
	if err := checkPair("tpr", tpr, "fpr", fpr); err != nil {
		return nil, err
	}

	j := make([]float64, len(tpr))
	floats.SubTo(j, tpr, fpr)
	return j, nil
}

// SelectGMean picks the ROC threshold with the largest G-mean.
func SelectGMean(tpr, fpr, thresholds []float64) (Selection, error) {
	e, err := evaluateGMean(tpr, fpr, thresholds)
	return e.Selection, err
}

// SelectYoudenJ picks the ROC threshold with the largest Youden's J.
func SelectYoudenJ(tpr, fpr, thresholds []float64) (Selection, error) {
	e, err := evaluateYoudenJ(tpr, fpr, thresholds)
	return e.Selection, err
}

func evaluateGMean(tpr, fpr, thresholds []float64) (Evaluation, error) {
	if err := checkThresholds(thresholds, len(tpr)); err != nil {
		return Evaluation{}, err
	}
	gmeans, err := GMeans(tpr, fpr)
	if err != nil {
		return Evaluation{}, err
	}
	e, err := selectMax(GMean, thresholds, gmeans)
	if err != nil {
		return Evaluation{}, err
	}
	log.Debug().Msgf("Best Threshold=%f, G-Mean=%.3f at index %d", e.Threshold, e.Score, e.Index)
	return e, nil
}

func evaluateYoudenJ(tpr, fpr, thresholds []float64) (Evaluation, error) {
	if err := checkThresholds(thresholds, len(tpr)); err != nil {
		return Evaluation{}, err
	}
	j, err := YoudenJStatistic(tpr, fpr)
	if err != nil {
		return Evaluation{}, err
	}
	e, err := selectMax(YoudenJ, thresholds, j)
	if err != nil {
		return Evaluation{}, err
	}
	log.Debug().Msgf("Best Threshold=%f, J=%.3f at index %d", e.Threshold, e.Score, e.Index)
	return e, nil
}
