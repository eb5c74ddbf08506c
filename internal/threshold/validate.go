package threshold

import (
	"fmt"
	"math"
)

// checkPair rejects parallel metric arrays that cannot be scored together.
func checkPair(aName string, a []float64, bName string, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d %s, %d %s", ErrLengthMismatch, len(a), aName, len(b), bName)
	}
	if len(a) == 0 {
		return ErrEmptyInput
	}
	if err := checkUnit(aName, a); err != nil {
		return err
	}
	return checkUnit(bName, b)
}

func checkUnit(name string, xs []float64) error {
	for i, x := range xs {
		if math.IsNaN(x) || x < 0 || x > 1 {
			return fmt.Errorf("%w: %s[%d] = %v is outside [0,1]", ErrInvalidInput, name, i, x)
		}
	}
	return nil
}

func checkThresholds(thresholds []float64, n int) error {
	if len(thresholds) != n {
		return fmt.Errorf("%w: %d thresholds for %d curve points", ErrLengthMismatch, len(thresholds), n)
	}
	return nil
}
