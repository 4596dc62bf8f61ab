package algebra

import gomath "math"

// CheckLogValidity validates the base and argument of log_base(x)
func CheckLogValidity(base, x float64) error {
	if base <= 0 || base == 1 {
		return ErrInvalidBase
	}
	if x <= 0 {
		return ErrInvalidArgument
	}
	return nil
}

// Log returns log_base(x) by the change-of-base formula
func Log(base, x float64) (float64, error) {
	if err := CheckLogValidity(base, x); err != nil {
		return 0, err
	}
	return gomath.Log(x) / gomath.Log(base), nil
}

// AverageGrowthRate returns (present - previous) / previous
func AverageGrowthRate(present, previous float64) (float64, error) {
	if previous == 0 {
		return 0, ErrZeroPrevious
	}
	return (present - previous) / previous, nil
}
