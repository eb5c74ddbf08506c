package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sampleLabels = []int{0, 0, 1, 1}
	sampleScores = []float64{0.1, 0.4, 0.35, 0.8}
)

func TestNewROC(t *testing.T) {
	roc, err := NewROC(sampleLabels, sampleScores)
	require.NoError(t, err)

	require.Len(t, roc.Thresholds, 5)
	require.Len(t, roc.FPR, 5)
	require.Len(t, roc.TPR, 5)

	assert.True(t, math.IsInf(roc.Thresholds[0], 1))
	assert.InDeltaSlice(t, []float64{0.8, 0.4, 0.35, 0.1}, roc.Thresholds[1:], 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0, 0.5, 0.5, 1}, roc.FPR, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0.5, 0.5, 1, 1}, roc.TPR, 1e-12)
}

func TestNewROCTiedScores(t *testing.T) {
	roc, err := NewROC([]int{0, 1, 1}, []float64{0.5, 0.5, 0.9})
	require.NoError(t, err)

	require.Len(t, roc.Thresholds, 3)
	assert.InDeltaSlice(t, []float64{0.9, 0.5}, roc.Thresholds[1:], 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0, 1}, roc.FPR, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, roc.TPR, 1e-12)
}

func TestNewROCDoesNotMutateInput(t *testing.T) {
	scores := []float64{0.9, 0.1, 0.5}
	labels := []int{1, 0, 0}
	_, err := NewROC(labels, scores)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.9, 0.1, 0.5}, scores)
	assert.Equal(t, []int{1, 0, 0}, labels)
}

func TestNewROCErrors(t *testing.T) {
	_, err := NewROC([]int{0, 1}, []float64{0.1})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = NewROC(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = NewROC([]int{1, 1}, []float64{0.2, 0.3})
	assert.ErrorIs(t, err, ErrSingleClass)

	_, err = NewROC([]int{0, 2}, []float64{0.2, 0.3})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewROC([]int{0, 1}, []float64{0.2, 1.3})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewROC([]int{0, 1}, []float64{0.2, math.NaN()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewPrecisionRecall(t *testing.T) {
	pr, err := NewPrecisionRecall(sampleLabels, sampleScores)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0.1, 0.35, 0.4, 0.8}, pr.Thresholds, 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 2.0 / 3.0, 0.5, 1, 1}, pr.Precision, 1e-12)
	assert.InDeltaSlice(t, []float64{1, 1, 0.5, 0.5, 0}, pr.Recall, 1e-12)

	precision, recall, thresholds := pr.Aligned()
	assert.Len(t, precision, len(thresholds))
	assert.Len(t, recall, len(thresholds))
	assert.InDelta(t, 1.0, precision[3], 1e-12)
	assert.InDelta(t, 0.5, recall[3], 1e-12)
}

func TestNewPrecisionRecallErrors(t *testing.T) {
	_, err := NewPrecisionRecall([]int{0, 0}, []float64{0.2, 0.3})
	assert.ErrorIs(t, err, ErrSingleClass)

	_, err = NewPrecisionRecall([]int{0}, []float64{0.2, 0.3})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestNewPrecisionRecallAllPositive(t *testing.T) {
	pr, err := NewPrecisionRecall([]int{1, 1}, []float64{0.2, 0.7})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.2, 0.7}, pr.Thresholds, 1e-12)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, pr.Precision, 1e-12)
	assert.InDeltaSlice(t, []float64{1, 0.5, 0}, pr.Recall, 1e-12)
}

func TestToLabels(t *testing.T) {
	scores := []float64{0.1, 0.2, 0.4, 0.6, 0.9}
	assert.Equal(t, []int{0, 0, 0, 1, 1}, ToLabels(scores, 0.5))
	assert.Equal(t, []int{1, 1, 1, 1, 1}, ToLabels(scores, 0))
	assert.Equal(t, []int{0, 0, 0, 0, 0}, ToLabels(scores, 1))
	assert.Equal(t, []int{0, 0, 1, 1, 1}, ToLabels(scores, 0.4), "threshold is inclusive")
}

func TestConfusion(t *testing.T) {
	cm, err := Confusion([]int{1, 1, 0, 0, 1}, []int{1, 0, 1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, ConfusionMatrix{TP: 2, FP: 1, TN: 1, FN: 1}, cm)
	assert.InDelta(t, 2.0/3.0, cm.Precision(), 1e-12)
	assert.InDelta(t, 2.0/3.0, cm.Recall(), 1e-12)
	assert.InDelta(t, 2.0/3.0, cm.F1(), 1e-12)

	assert.Equal(t, cm, ConfusionAt([]int{1, 1, 0, 0, 1}, []float64{0.9, 0.1, 0.8, 0.3, 0.7}, 0.5))

	_, err = Confusion([]int{1}, []int{1, 0})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestF1ScoreZeroDivision(t *testing.T) {
	f1, err := F1Score([]int{0, 0}, []int{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, f1)

	f1, err = F1Score([]int{1, 0}, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, f1)

	f1, err = F1Score([]int{0, 0, 0, 1, 1}, []int{0, 0, 0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, f1)
}

func TestNoSkill(t *testing.T) {
	assert.Equal(t, 0.5, NoSkill(sampleLabels))
	assert.Equal(t, 0.0, NoSkill(nil))
	assert.InDelta(t, 0.2, NoSkill([]int{0, 0, 0, 0, 1}), 1e-12)
}
