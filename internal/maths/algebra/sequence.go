package algebra

import gomath "math"

// ArithmeticTerm returns aₙ = a₁ + (n-1)d
func ArithmeticTerm(a1, d float64, n int) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidTermIndex
	}
	return a1 + float64(n-1)*d, nil
}

// ArithmeticSum returns Sₙ = n(a₁ + aₙ)/2
func ArithmeticSum(a1, d float64, n int) (float64, error) {
	an, err := ArithmeticTerm(a1, d, n)
	if err != nil {
		return 0, err
	}
	return float64(n) * (a1 + an) / 2, nil
}

// GeometricTerm returns aₙ = a₁·rⁿ⁻¹
func GeometricTerm(a1, r float64, n int) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidTermIndex
	}
	if r == 0 {
		return 0, ErrZeroRatio
	}
	return a1 * gomath.Pow(r, float64(n-1)), nil
}

// GeometricSum returns Sₙ = a₁(1-rⁿ)/(1-r), or n·a₁ when r = 1
func GeometricSum(a1, r float64, n int) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidTermIndex
	}
	if r == 0 {
		return 0, ErrZeroRatio
	}
	if r == 1 {
		return a1 * float64(n), nil
	}
	return a1 * (1 - gomath.Pow(r, float64(n))) / (1 - r), nil
}

// RecurrenceTerm evaluates the n-th term (zero-based) of the linear
// recurrence aᵢ = Σ coeffs[j]·aᵢ₋₁₋ⱼ seeded with initial.
func RecurrenceTerm(initial, coeffs []float64, n int) (float64, error) {
	k := len(initial)
	if len(coeffs) != k {
		return 0, ErrCoefficientLength
	}
	if n < 0 {
		return 0, ErrNegativeIndex
	}
	if n < k {
		return initial[n], nil
	}

	terms := make([]float64, k, n+1)
	copy(terms, initial)
	for i := k; i <= n; i++ {
		var sum float64
		for j, c := range coeffs {
			sum += c * terms[i-1-j]
		}
		terms = append(terms, sum)
	}
	return terms[n], nil
}
