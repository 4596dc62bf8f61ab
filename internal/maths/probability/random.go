package probability

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

func checkDistribution(values, probs []float64) error {
	if len(values) == 0 || len(probs) == 0 {
		return ErrEmptyEvents
	}
	if len(values) != len(probs) {
		return ErrLengthMismatch
	}
	if err := valid(probs...); err != nil {
		return err
	}
	if !scalar.EqualWithinAbs(floats.Sum(probs), 1, zeroTolerance) {
		return ErrProbabilitySum
	}
	return nil
}

// ExpectedValue returns E[X] = Σ xᵢpᵢ for a discrete distribution.
func ExpectedValue(values, probs []float64) (float64, error) {
	if err := checkDistribution(values, probs); err != nil {
		return 0, err
	}
	return floats.Dot(values, probs), nil
}

// Variance returns D[X] = Σ (xᵢ - E[X])²pᵢ for a discrete distribution.
func Variance(values, probs []float64) (float64, error) {
	if err := checkDistribution(values, probs); err != nil {
		return 0, err
	}
	v := stat.PopVariance(values, probs)
	if v < -zeroTolerance {
		return 0, ErrNegativeVariance
	}
	return max(v, 0), nil
}

// MeanConstant returns E[c] = c.
func MeanConstant(c float64) float64 { return c }

// MeanScalarMultiple returns E[aX] = aE[X].
func MeanScalarMultiple(a, meanX float64) float64 { return a * meanX }

// MeanSum returns E[X+Y] = E[X] + E[Y].
func MeanSum(meanX, meanY float64) float64 { return meanX + meanY }

// MeanLinearCombination returns E[Σ aᵢXᵢ + c] = Σ aᵢE[Xᵢ] + c.
func MeanLinearCombination(coeffs, means []float64, constant float64) (float64, error) {
	if len(coeffs) != len(means) {
		return 0, ErrLengthMismatch
	}
	return floats.Dot(coeffs, means) + constant, nil
}

// VarianceConstant returns D[c] = 0.
func VarianceConstant(float64) float64 { return 0 }

// VarianceScalarMultiple returns D[aX] = a²D[X].
func VarianceScalarMultiple(a, varX float64) (float64, error) {
	if varX < 0 {
		return 0, ErrNegativeVariance
	}
	return a * a * varX, nil
}

// VarianceSumIndependent returns D[X+Y] = D[X] + D[Y] for independent X, Y.
func VarianceSumIndependent(varX, varY float64) (float64, error) {
	if varX < 0 || varY < 0 {
		return 0, ErrNegativeVariance
	}
	return varX + varY, nil
}

// VarianceLinearCombination returns D[Σ aᵢXᵢ] = Σ aᵢ²D[Xᵢ] for independent Xᵢ.
func VarianceLinearCombination(coeffs, variances []float64) (float64, error) {
	if len(coeffs) != len(variances) {
		return 0, ErrLengthMismatch
	}
	var sum float64
	for i, v := range variances {
		if v < 0 {
			return 0, ErrNegativeVariance
		}
		sum += coeffs[i] * coeffs[i] * v
	}
	return sum, nil
}
