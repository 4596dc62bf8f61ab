package algebra

import (
	gomath "math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Means holds the four classical means of a positive set, which always
// satisfy Harmonic ≤ Geometric ≤ Arithmetic ≤ Quadratic.
type Means struct {
	Harmonic   float64 `json:"harmonic"`
	Geometric  float64 `json:"geometric"`
	Arithmetic float64 `json:"arithmetic"`
	Quadratic  float64 `json:"quadratic"`
}

// CubicDifference returns a³ - b³ factored as (a-b)(a²+ab+b²)
func CubicDifference(a, b float64) float64 {
	return (a - b) * (a*a + a*b + b*b)
}

// SubsetCount returns 2ⁿ, the number of subsets of an n-element set,
// saturating at MaxUint64
func SubsetCount(n uint) uint64 {
	if n >= 64 {
		return gomath.MaxUint64
	}
	return 1 << n
}

// MeanInequalities computes the harmonic, geometric, arithmetic and quadratic
// means of u.
func MeanInequalities(u []float64) (Means, error) {
	if len(u) == 0 {
		return Means{}, ErrEmptySet
	}
	for _, x := range u {
		if x <= 0 {
			return Means{}, ErrNonPositive
		}
	}

	n := float64(len(u))
	return Means{
		Harmonic:   stat.HarmonicMean(u, nil),
		Geometric:  stat.GeometricMean(u, nil),
		Arithmetic: stat.Mean(u, nil),
		Quadratic:  gomath.Sqrt(floats.Dot(u, u) / n),
	}, nil
}

// CauchyEquality returns (ac+bd)², the value of (a²+b²)(c²+d²) at equality.
// Equality holds only when ad = bc.
func CauchyEquality(a, b, c, d float64) (float64, error) {
	if a*d != b*c {
		return 0, ErrCauchyCondition
	}
	s := a*c + b*d
	return s * s, nil
}
