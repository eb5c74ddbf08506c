package threshold

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// metricLabel is the name printed next to a strategy's score.
func metricLabel(strategy Strategy) string {
	switch strategy {
	case GMean:
		return "G-Mean"
	case YoudenJ:
		return "J"
	default:
		return "F-Score"
	}
}

// WriteReport prints one line per selection.
func WriteReport(w io.Writer, selections []Selection) error {
	for _, s := range selections {
		var err error
		if s.Strategy == FScoreGrid {
			_, err = fmt.Fprintf(w, "%-14s Threshold=%.3f, %s=%.5f\n", s.Strategy, s.Threshold, metricLabel(s.Strategy), s.Score)
		} else {
			_, err = fmt.Fprintf(w, "%-14s Best Threshold=%f, %s=%.3f\n", s.Strategy, s.Threshold, metricLabel(s.Strategy), s.Score)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteRanking prints the topN candidates in descending score order. Equal
// scores keep their candidate order.
func WriteRanking(w io.Writer, title string, thresholds, scores []float64, topN int) error {
	if len(thresholds) != len(scores) {
		return fmt.Errorf("%w: %d thresholds, %d scores", ErrLengthMismatch, len(thresholds), len(scores))
	}
	if len(scores) == 0 {
		return ErrEmptyInput
	}

	type candidate struct {
		Index     int
		Threshold float64
		Score     float64
	}

	candidates := make([]candidate, len(scores))
	for i := range scores {
		candidates[i] = candidate{
			Index:     i,
			Threshold: thresholds[i],
			Score:     scores[i],
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if topN <= 0 || topN > len(candidates) {
		topN = len(candidates)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s (top %d of %d candidates):\n", title, topN, len(candidates))
	b.WriteString("   Index | Threshold | Score\n")
	b.WriteString("---------|-----------|" + strings.Repeat("-", 10) + "\n")
	for _, c := range candidates[:topN] {
		threshold := fmt.Sprintf("%9.6f", c.Threshold)
		if math.IsInf(c.Threshold, 1) {
			threshold = fmt.Sprintf("%9s", "+Inf")
		}
		fmt.Fprintf(&b, "%8d | %s | %.6f\n", c.Index, threshold, c.Score)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
