package probability

import (
	gomath "math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Percentile returns the p-th percentile (0 ≤ p ≤ 100) of data.
//
// With i = n·p/100, an integral i averages the i-th and (i+1)-th smallest
// values; otherwise the ⌈i⌉-th smallest value is returned. p = 0 and p = 100
// yield the minimum and maximum.
func Percentile(p float64, data []float64) (float64, error) {
	if p < 0 || p > 100 || gomath.IsNaN(p) {
		return 0, ErrInvalidPercentile
	}
	if len(data) == 0 {
		return 0, ErrEmptySample
	}

	sorted := slices.Clone(data)
	slices.Sort(sorted)
	n := len(sorted)

	i := float64(n) * p / 100
	nearest := gomath.Round(i)
	if gomath.Abs(i-nearest) >= 1e-10 {
		return sorted[int(gomath.Floor(i))], nil
	}

	idx := int(nearest)
	switch {
	case idx == 0:
		return sorted[0], nil
	case idx >= n:
		return sorted[n-1], nil
	}
	return (sorted[idx-1] + sorted[idx]) / 2, nil
}

// SampleMean returns the arithmetic mean of the sample.
func SampleMean(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptySample
	}
	return stat.Mean(sample, nil), nil
}

// SampleVariance returns the population-form variance Σ(x-x̄)²/n.
func SampleVariance(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptySample
	}
	return stat.PopVariance(sample, nil), nil
}
