package threshold

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, []Selection{
		{Strategy: GMean, Index: 2, Threshold: 0.016153, Score: 0.933},
		{Strategy: YoudenJ, Index: 2, Threshold: 0.016153, Score: 0.866},
		{Strategy: FScoreCurve, Index: 7, Threshold: 0.256736, Score: 0.756},
		{Strategy: FScoreGrid, Index: 251, Threshold: 0.251, Score: 0.75556},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Best Threshold=0.016153, G-Mean=0.933")
	assert.Contains(t, lines[1], "Best Threshold=0.016153, J=0.866")
	assert.Contains(t, lines[2], "Best Threshold=0.256736, F-Score=0.756")
	assert.Contains(t, lines[3], "Threshold=0.251, F-Score=0.75556")
	assert.True(t, strings.HasPrefix(lines[3], "f-score-grid"))
}

func TestWriteRanking(t *testing.T) {
	var buf bytes.Buffer
	thresholds := []float64{math.Inf(1), 0.9, 0.6, 0.4}
	scores := []float64{0, 0.7, 1.0, 0.7}

	require.NoError(t, WriteRanking(&buf, "G-Mean", thresholds, scores, 3))
	out := buf.String()

	assert.Contains(t, out, "G-Mean (top 3 of 4 candidates)")
	rows := strings.Split(strings.TrimSpace(out), "\n")[3:]
	require.Len(t, rows, 3)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rows[0]), "2 |"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rows[1]), "1 |"), "equal scores keep candidate order")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rows[2]), "3 |"))

	buf.Reset()
	require.NoError(t, WriteRanking(&buf, "all", thresholds, scores, 0))
	assert.Contains(t, buf.String(), "+Inf")
}

func TestWriteRankingErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteRanking(&buf, "x", []float64{0.1}, nil, 1), ErrLengthMismatch)
	assert.ErrorIs(t, WriteRanking(&buf, "x", nil, nil, 1), ErrEmptyInput)
}
