// Package combinatorics counts permutations, combinations and derangements
// exactly in uint64, reporting ErrOverflow instead of wrapping.
package combinatorics

import (
	"errors"
	gomath "math"
	"math/big"
	"math/bits"

	"gonum.org/v1/gonum/stat/combin"
)

var (
	ErrInvalidInput = errors.New("combinatorics: n must be at least k")
	ErrEmptyOptions = errors.New("combinatorics: option list must not be empty")
	ErrOverflow     = errors.New("combinatorics: result overflows uint64")
)

// fastBinomialLimit bounds k·C(n,k) so gonum's int loop cannot overflow.
const fastBinomialLimit = 1 << 62

// overflowLogLimit sits just above ln 2⁶⁴; anything larger cannot fit a uint64.
const overflowLogLimit = 45.0

func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

// Permutation returns P(n,k) = n!/(n-k)!.
func Permutation(n, k uint64) (uint64, error) {
	if n < k {
		return 0, ErrInvalidInput
	}
	result := uint64(1)
	for i := n - k + 1; i <= n && i != 0; i++ {
		var err error
		if result, err = mul(result, i); err != nil {
			return 0, err
		}
	}
	return result, nil
}

// Combination returns C(n,k) = n!/(k!(n-k)!).
func Combination(n, k uint64) (uint64, error) {
	if n < k {
		return 0, ErrInvalidInput
	}
	if k > n-k {
		k = n - k
	}
	switch {
	case k == 0:
		return 1, nil
	case k == 1:
		return n, nil
	case n > gomath.MaxInt64:
		return 0, ErrOverflow
	}

	if logBinomial(n, k) > overflowLogLimit {
		return 0, ErrOverflow
	}
	if n <= gomath.MaxInt32 {
		estimate := combin.GeneralizedBinomial(float64(n), float64(k))
		if estimate*float64(k+1) < fastBinomialLimit {
			return uint64(combin.Binomial(int(n), int(k))), nil
		}
	}

	exact := new(big.Int).Binomial(int64(n), int64(k))
	if !exact.IsUint64() {
		return 0, ErrOverflow
	}
	return exact.Uint64(), nil
}

// logBinomial approximates ln C(n,k) so hopeless inputs never reach big.Int
func logBinomial(n, k uint64) float64 {
	ln := func(x uint64) float64 {
		v, _ := gomath.Lgamma(float64(x) + 1)
		return v
	}
	return ln(n) - ln(k) - ln(n-k)
}

// CombinationIdentity evaluates C(n,k) through Pascal's rule
// C(n,k) = C(n-1,k-1) + C(n-1,k).
func CombinationIdentity(n, k uint64) (uint64, error) {
	if k > n {
		return 0, ErrInvalidInput
	}
	if k == 0 || k == n {
		return 1, nil
	}
	left, err := Combination(n-1, k-1)
	if err != nil {
		return 0, err
	}
	right, err := Combination(n-1, k)
	if err != nil {
		return 0, err
	}
	return add(left, right)
}

// Derangement returns the number of permutations of n items with no fixed
// point, D(n) = (n-1)(D(n-1) + D(n-2)).
func Derangement(n uint64) (uint64, error) {
	if n == 0 {
		return 1, nil
	}
	prev, cur := uint64(1), uint64(0) // D(0), D(1)
	for i := uint64(2); i <= n; i++ {
		s, err := add(prev, cur)
		if err != nil {
			return 0, err
		}
		next, err := mul(i-1, s)
		if err != nil {
			return 0, err
		}
		prev, cur = cur, next
	}
	return cur, nil
}

// BinomialCoefficient returns the coefficient of the k-th term of (a+b)ⁿ.
func BinomialCoefficient(n, k uint64) (uint64, error) {
	return Combination(n, k)
}

// AdditionPrinciple counts the ways to pick one option from disjoint classes.
func AdditionPrinciple(options []uint64) (uint64, error) {
	if len(options) == 0 {
		return 0, ErrEmptyOptions
	}
	var total uint64
	for _, o := range options {
		var err error
		if total, err = add(total, o); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// MultiplicationPrinciple counts the ways to complete a sequence of steps.
func MultiplicationPrinciple(steps []uint64) (uint64, error) {
	if len(steps) == 0 {
		return 0, ErrEmptyOptions
	}
	total := uint64(1)
	for _, s := range steps {
		var err error
		if total, err = mul(total, s); err != nil {
			return 0, err
		}
	}
	return total, nil
}
