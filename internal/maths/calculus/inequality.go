package calculus

import (
	"errors"
	gomath "math"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrNonPositive        = errors.New("calculus: values must be positive")
	ErrEqualValues        = errors.New("calculus: values must differ")
	ErrEmptyPoints        = errors.New("calculus: point set must not be empty")
	ErrNotIndeterminate   = errors.New("calculus: limit is not of the form 0/0 or ∞/∞")
	ErrZeroDerivative     = errors.New("calculus: denominator derivative is zero")
	ErrMissingDerivatives = errors.New("calculus: not enough derivatives for the requested order")
)

// Func is a real function of one variable.
type Func func(float64) float64

// LogMeans holds the chain √(ab) < L(a,b) < (a+b)/2.
type LogMeans struct {
	Geometric   float64 `json:"geometric"`
	Logarithmic float64 `json:"logarithmic"`
	Arithmetic  float64 `json:"arithmetic"`
}

// LogarithmicMeanInequality returns the geometric, logarithmic and arithmetic
// means of two distinct positive numbers.
func LogarithmicMeanInequality(a, b float64) (LogMeans, error) {
	if a <= 0 || b <= 0 {
		return LogMeans{}, ErrNonPositive
	}
	if a == b {
		return LogMeans{}, ErrEqualValues
	}
	return LogMeans{
		Geometric:   gomath.Sqrt(a * b),
		Logarithmic: (a - b) / (gomath.Log(a) - gomath.Log(b)),
		Arithmetic:  (a + b) / 2,
	}, nil
}

// JensenInequality returns f(mean(points)) and mean(f(points)). For a convex f
// the first never exceeds the second; for a concave f the order reverses.
func JensenInequality(f Func, points []float64) (fOfMean, meanOfF float64, err error) {
	if len(points) == 0 {
		return 0, 0, ErrEmptyPoints
	}
	n := float64(len(points))
	values := make([]float64, len(points))
	for i, x := range points {
		values[i] = f(x)
	}
	return f(floats.Sum(points) / n), floats.Sum(values) / n, nil
}

// LHospital evaluates lim f/g at x0 as f'(x0)/g'(x0) when f(x0)/g(x0) is 0/0
// or same-signed ∞/∞.
func LHospital(f, g, df, dg Func, x0 float64) (float64, error) {
	fx, gx := f(x0), g(x0)
	zeroOverZero := gomath.Abs(fx) < denominatorTolerance && gomath.Abs(gx) < denominatorTolerance
	infOverInf := gomath.IsInf(fx, 0) && gomath.IsInf(gx, 0) && gomath.Signbit(fx) == gomath.Signbit(gx)
	if !zeroOverZero && !infOverInf {
		return 0, ErrNotIndeterminate
	}

	dgx := dg(x0)
	if gomath.Abs(dgx) < denominatorTolerance {
		return 0, ErrZeroDerivative
	}
	return df(x0) / dgx, nil
}

// TaylorSeries evaluates the order-n Taylor polynomial of f about x0 at x.
// derivatives[k-1] is the k-th derivative of f.
func TaylorSeries(f Func, derivatives []Func, x0, x float64, n int) (float64, error) {
	if n < 0 || n > len(derivatives) {
		return 0, ErrMissingDerivatives
	}

	result := f(x0)
	dx := x - x0
	term := 1.0
	for k := 1; k <= n; k++ {
		term *= dx / float64(k)
		result += derivatives[k-1](x0) * term
	}
	return result, nil
}
