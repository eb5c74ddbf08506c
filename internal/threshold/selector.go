package threshold

import (
	"fmt"
	"strings"
	"time"

	"github.com/tensorplex-labs/cutoff/internal/curve"
	"github.com/tensorplex-labs/cutoff/internal/utils/logger"
)

// Selector runs a threshold search for a chosen Strategy, computing whatever
// curve the strategy needs from labels and scores.
type Selector struct {
	Grid    Grid
	Workers int
}

type SelectorOption func(*Selector)

func WithGrid(grid Grid) SelectorOption {
	return func(s *Selector) {
		s.Grid = grid
	}
}

// WithWorkers bounds the goroutines used by the grid search.
func WithWorkers(workers int) SelectorOption {
	return func(s *Selector) {
		if workers < 1 {
			workers = 1
		}
		s.Workers = workers
	}
}

func NewSelector(opts ...SelectorOption) *Selector {
	s := &Selector{
		Grid:    DefaultGrid(),
		Workers: 1,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ParseStrategy resolves a strategy name, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	candidate := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range Strategies {
		if s == candidate {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Select returns the threshold that maximises strategy's objective.
func (s *Selector) Select(strategy Strategy, labels []int, scores []float64) (Selection, error) {
	e, err := s.Evaluate(strategy, labels, scores)
	return e.Selection, err
}

// Evaluate is Select, keeping every candidate threshold and its score.
func (s *Selector) Evaluate(strategy Strategy, labels []int, scores []float64) (Evaluation, error) {
	startTime := time.Now()
	logger.Sugar().Debugw("Selecting threshold", "strategy", strategy, "samples", len(scores), "grid", s.Grid)

	var (
		e   Evaluation
		err error
	)
	switch strategy {
	case GMean, YoudenJ:
		var roc curve.ROC
		roc, err = curve.NewROC(labels, scores)
		if err != nil {
			return Evaluation{}, fmt.Errorf("roc curve: %w", err)
		}
		if strategy == GMean {
			e, err = evaluateGMean(roc.TPR, roc.FPR, roc.Thresholds)
		} else {
			e, err = evaluateYoudenJ(roc.TPR, roc.FPR, roc.Thresholds)
		}
	case FScoreCurve:
		var pr curve.PrecisionRecall
		pr, err = curve.NewPrecisionRecall(labels, scores)
		if err != nil {
			return Evaluation{}, fmt.Errorf("precision-recall curve: %w", err)
		}
		e, err = evaluateFScore(pr.Aligned())
	case FScoreGrid:
		var grid []float64
		grid, err = s.Grid.Values()
		if err != nil {
			return Evaluation{}, err
		}
		e, err = evaluateFScoreGrid(labels, scores, grid, s.Workers)
	default:
		return Evaluation{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	if err != nil {
		return Evaluation{}, fmt.Errorf("%s: %w", strategy, err)
	}

	logger.Sugar().Infow("Selected threshold",
		"strategy", strategy,
		"index", e.Index,
		"threshold", e.Threshold,
		"score", e.Score,
		"candidates", len(e.Thresholds),
		"elapsed", time.Since(startTime),
	)
	return e, nil
}

// SelectAll runs every strategy in Strategies order. It stops at the first error.
func (s *Selector) SelectAll(labels []int, scores []float64) ([]Selection, error) {
	selections := make([]Selection, 0, len(Strategies))
	for _, strategy := range Strategies {
		sel, err := s.Select(strategy, labels, scores)
		if err != nil {
			return nil, err
		}
		selections = append(selections, sel)
	}
	return selections, nil
}
