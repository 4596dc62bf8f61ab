package space

import gomath "math"

// Epsilon is the absolute tolerance used for every near-zero and near-equal
// comparison in this package.
const Epsilon = 1e-10

// NearlyZero reports whether |x| < Epsilon.
func NearlyZero(x float64) bool {
	return gomath.Abs(x) < Epsilon
}

// NearlyEqual reports whether |a-b| < Epsilon.
func NearlyEqual(a, b float64) bool {
	return NearlyZero(a - b)
}

// clampUnit keeps a cosine or sine inside [-1, 1] before asin/acos.
func clampUnit(x float64) float64 {
	return gomath.Max(-1, gomath.Min(1, x))
}
