package threshold

import (
	"errors"
	"math"

	"github.com/tensorplex-labs/cutoff/internal/curve"
)

// Strategy names the objective a threshold is selected for.
type Strategy string

const (
	GMean       Strategy = "gmean"         // sqrt(tpr * (1 - fpr)) over the ROC curve
	YoudenJ     Strategy = "youden-j"      // tpr - fpr over the ROC curve
	FScoreCurve Strategy = "f-score-curve" // F1 over the precision-recall curve
	FScoreGrid  Strategy = "f-score-grid"  // F1 recomputed at every grid point
)

// Strategies lists every strategy in the order SelectAll runs them.
var Strategies = []Strategy{GMean, YoudenJ, FScoreCurve, FScoreGrid}

var (
	ErrLengthMismatch  = curve.ErrLengthMismatch
	ErrEmptyInput      = curve.ErrEmptyInput
	ErrInvalidInput    = curve.ErrInvalidInput
	ErrSingleClass     = curve.ErrSingleClass
	ErrInvalidGrid     = errors.New("invalid threshold grid")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Selection is the winning candidate of a threshold search.
type Selection struct {
	Strategy  Strategy
	Index     int     // index into the candidate thresholds
	Threshold float64 // candidate threshold at Index
	Score     float64 // objective value at Index
}

// Evaluation carries the full per-candidate scores behind a Selection.
type Evaluation struct {
	Selection
	Thresholds []float64
	Scores     []float64
}

// Grid is a uniform candidate grid over [Start, Stop) with spacing Step.
type Grid struct {
	Start float64 `json:"start"`
	Stop  float64 `json:"stop" validate:"gtfield=Start"`
	Step  float64 `json:"step" validate:"gt=0"`
}

// Result is the wire form of a Selection. The ROC curve's leading +Inf
// threshold has no JSON representation and is encoded as null.
type Result struct {
	Strategy  Strategy `json:"strategy"`
	Index     int      `json:"index"`
	Threshold *float64 `json:"threshold"`
	Score     float64  `json:"score"`
}

func NewResult(s Selection) Result {
	r := Result{Strategy: s.Strategy, Index: s.Index, Score: s.Score}
	if !math.IsInf(s.Threshold, 0) && !math.IsNaN(s.Threshold) {
		t := s.Threshold
		r.Threshold = &t
	}
	return r
}

func NewResults(selections []Selection) []Result {
	results := make([]Result, len(selections))
	for i, s := range selections {
		results[i] = NewResult(s)
	}
	return results
}

// Selection converts the wire form back, restoring a null threshold to +Inf.
func (r Result) Selection() Selection {
	t := math.Inf(1)
	if r.Threshold != nil {
		t = *r.Threshold
	}
	return Selection{Strategy: r.Strategy, Index: r.Index, Threshold: t, Score: r.Score}
}
