package algebra

import "math/cmplx"

const divisorTolerance = 1e-10

// ComplexAdd returns a + b
func ComplexAdd(a, b complex128) complex128 { return a + b }

// ComplexMultiply returns a · b
func ComplexMultiply(a, b complex128) complex128 { return a * b }

// ComplexDivide returns a / b, rejecting divisors whose squared modulus is
// below 1e-10.
func ComplexDivide(a, b complex128) (complex128, error) {
	den := real(b)*real(b) + imag(b)*imag(b)
	if den < divisorTolerance {
		return 0, ErrDivideByZero
	}
	return complex(
		(real(a)*real(b)+imag(a)*imag(b))/den,
		(imag(a)*real(b)-real(a)*imag(b))/den,
	), nil
}

// ComplexConjugate returns the conjugate of a
func ComplexConjugate(a complex128) complex128 { return cmplx.Conj(a) }

// ComplexModulus returns |a|
func ComplexModulus(a complex128) float64 { return cmplx.Abs(a) }
