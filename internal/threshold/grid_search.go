package threshold

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/tensorplex-labs/cutoff/internal/curve"
)

// Validate reports whether the grid describes at least one candidate.
func (g Grid) Validate() error {
	for _, v := range []float64{g.Start, g.Stop, g.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound in %+v", ErrInvalidGrid, g)
		}
	}
	if g.Step <= 0 {
		return fmt.Errorf("%w: step %v must be positive", ErrInvalidGrid, g.Step)
	}
	if g.Stop <= g.Start {
		return fmt.Errorf("%w: stop %v must exceed start %v", ErrInvalidGrid, g.Stop, g.Start)
	}
	// checked as a float, the int conversion overflows for tiny steps
	n := math.Ceil((g.Stop - g.Start) / g.Step)
	if math.IsInf(n, 0) || math.IsNaN(n) || n > MaxGridCandidates {
		return fmt.Errorf("%w: %+v expands to more than %d candidates", ErrInvalidGrid, g, MaxGridCandidates)
	}
	return nil
}

// Values expands the grid into its candidate thresholds.
func (g Grid) Values() ([]float64, error) {
	return Arange(g.Start, g.Stop, g.Step)
}

// Arange returns start, start+step, ... for every value below stop.
func Arange(start, stop, step float64) ([]float64, error) {
	g := Grid{Start: start, Stop: stop, Step: step}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	n := int(math.Ceil((stop - start) / step))
	values := make([]float64, n)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	return values, nil
}

// GridFScores returns the F1 score obtained by thresholding scores at every
// grid candidate.
func GridFScores(labels []int, scores, grid []float64) ([]float64, error) {
	return gridFScores(labels, scores, grid, 1)
}

// SelectFScoreGrid thresholds scores at every grid candidate and picks the
// candidate with the largest F1 score. It costs a full confusion matrix per
// candidate, O(len(grid) * len(scores)).
func SelectFScoreGrid(labels []int, scores, grid []float64) (Selection, error) {
	e, err := evaluateFScoreGrid(labels, scores, grid, 1)
	return e.Selection, err
}

func evaluateFScoreGrid(labels []int, scores, grid []float64, workers int) (Evaluation, error) {
	fscores, err := gridFScores(labels, scores, grid, workers)
	if err != nil {
		return Evaluation{}, err
	}
	e, err := selectMax(FScoreGrid, grid, fscores)
	if err != nil {
		return Evaluation{}, err
	}
	log.Debug().Msgf("Threshold=%.3f, F-Score=%.5f at index %d", e.Threshold, e.Score, e.Index)
	return e, nil
}

func gridFScores(labels []int, scores, grid []float64, workers int) ([]float64, error) {
	if err := curve.Validate(labels, scores); err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: no grid candidates", ErrEmptyInput)
	}
	for i, t := range grid {
		if math.IsNaN(t) {
			return nil, fmt.Errorf("%w: grid[%d] is NaN", ErrInvalidInput, i)
		}
	}

	fscores := make([]float64, len(grid))
	if workers <= 1 || len(grid) < 2 {
		for i, t := range grid {
			fscores[i] = curve.ConfusionAt(labels, scores, t).F1()
		}
		return fscores, nil
	}

	// each worker owns a contiguous block of fscores
	workers = min(workers, len(grid))
	chunk := (len(grid) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(grid); lo += chunk {
		hi := min(lo+chunk, len(grid))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				fscores[i] = curve.ConfusionAt(labels, scores, grid[i]).F1()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fscores, nil
}
