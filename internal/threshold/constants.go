package threshold

const (
	DefaultGridStart = 0.0
	DefaultGridStop  = 1.0
	DefaultGridStep  = 0.001

	// MaxGridCandidates caps the thresholds a Grid may expand to.
	MaxGridCandidates = 10_000_000

	// DefaultThreshold is the cutoff a classifier applies when none is tuned.
	DefaultThreshold = 0.5
)

func DefaultGrid() Grid {
	return Grid{
		Start: DefaultGridStart,
		Stop:  DefaultGridStop,
		Step:  DefaultGridStep,
	}
}
