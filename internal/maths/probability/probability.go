// Package probability implements event probability rules, discrete random
// variable moments, simple linear regression and sample statistics.
package probability

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// zeroTolerance is the threshold below which a conditioning probability is
// treated as zero, and the slack allowed on probability identities.
const zeroTolerance = 1e-9

func valid(ps ...float64) error {
	for _, p := range ps {
		if p < 0 || p > 1 {
			return ErrInvalidProbability
		}
	}
	return nil
}

// IsIndependent reports whether P(AB) = P(A)P(B) within tolerance.
func IsIndependent(pA, pB, pAB float64) (bool, error) {
	if err := valid(pA, pB, pAB); err != nil {
		return false, err
	}
	return scalar.EqualWithinAbs(pAB, pA*pB, zeroTolerance), nil
}

// Classical returns favorable/total for equally likely outcomes.
func Classical(favorable, total uint64) (float64, error) {
	if total == 0 {
		return 0, ErrEmptySampleSpace
	}
	if favorable > total {
		return 0, ErrFavorableExceeds
	}
	return float64(favorable) / float64(total), nil
}

// Conditional returns P(A|B) = P(AB)/P(B).
func Conditional(pAB, pB float64) (float64, error) {
	if err := valid(pAB, pB); err != nil {
		return 0, err
	}
	if pB < zeroTolerance {
		return 0, ErrZeroProbability
	}
	return pAB / pB, nil
}

// MultiplicationRule returns P(AB) = P(A)P(B|A).
func MultiplicationRule(pA, pBGivenA float64) (float64, error) {
	if err := valid(pA, pBGivenA); err != nil {
		return 0, err
	}
	return pA * pBGivenA, nil
}

// TotalProbability returns Σ P(Bᵢ)P(A|Bᵢ) over a partition B.
func TotalProbability(partition, conditional []float64) (float64, error) {
	if len(partition) == 0 || len(conditional) == 0 {
		return 0, ErrEmptyEvents
	}
	if len(partition) != len(conditional) {
		return 0, ErrLengthMismatch
	}
	if err := valid(partition...); err != nil {
		return 0, err
	}
	if err := valid(conditional...); err != nil {
		return 0, err
	}
	return floats.Dot(partition, conditional), nil
}

// Bayes returns P(A|B) = P(A)P(B|A)/P(B).
func Bayes(prior, likelihood, evidence float64) (float64, error) {
	if err := valid(prior, likelihood, evidence); err != nil {
		return 0, err
	}
	if evidence < zeroTolerance {
		return 0, ErrZeroProbability
	}
	return prior * likelihood / evidence, nil
}
