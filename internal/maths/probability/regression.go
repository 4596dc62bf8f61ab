package probability

import (
	"gonum.org/v1/gonum/stat"
)

// Line is a fitted regression line y = Slope·x + Intercept.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// LeastSquares fits an ordinary least-squares line through (x, y).
func LeastSquares(x, y []float64) (Line, error) {
	if len(x) < 2 || len(y) < 2 {
		return Line{}, ErrInsufficientData
	}
	if len(x) != len(y) {
		return Line{}, ErrLengthMismatch
	}

	// n·Σx² - (Σx)² = n²·Var(x)
	n := float64(len(x))
	if stat.PopVariance(x, nil)*n*n < zeroTolerance {
		return Line{}, ErrZeroVariance
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	return Line{Slope: beta, Intercept: alpha}, nil
}

// EmpiricalRegression predicts y at x on the line.
func EmpiricalRegression(x float64, line Line) float64 {
	return line.Slope*x + line.Intercept
}

// ChiSquared returns Pearson's statistic Σ (o-e)²/e.
func ChiSquared(observed, expected []float64) (float64, error) {
	if len(observed) != len(expected) {
		return 0, ErrLengthMismatch
	}
	if len(observed) == 0 {
		return 0, ErrInsufficientData
	}
	for _, o := range observed {
		if o < 0 {
			return 0, ErrNegativeObserved
		}
	}
	for _, e := range expected {
		if e <= 0 {
			return 0, ErrNonPositiveExpected
		}
	}
	return stat.ChiSquare(observed, expected), nil
}
