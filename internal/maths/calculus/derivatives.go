// Package calculus evaluates derivatives of elementary functions, the
// derivative rules, and a handful of analysis inequalities and limits.
//
// Derivative helpers take already-evaluated values (f, f', g, g') rather
// than functions; the inequality tools take func(float64) float64.
package calculus

import (
	"errors"
	gomath "math"
)

var (
	ErrDivideByZero     = errors.New("calculus: division by zero")
	ErrInvalidBase      = errors.New("calculus: logarithm base must be positive and not 1")
	ErrLogDomain        = errors.New("calculus: logarithm argument must be positive")
	ErrTangentUndefined = errors.New("calculus: tangent is undefined where cos x = 0")
)

const denominatorTolerance = 1e-9

// ConstantDeriv returns (c)' = 0
func ConstantDeriv(float64) float64 { return 0 }

// PowerDeriv returns (xⁿ)' = n·xⁿ⁻¹
func PowerDeriv(x, n float64) float64 { return n * gomath.Pow(x, n-1) }

// ExpDeriv returns (eˣ)' = eˣ
func ExpDeriv(x float64) float64 { return gomath.Exp(x) }

// LnDeriv returns (ln x)' = 1/x
func LnDeriv(x float64) (float64, error) {
	if x <= 0 {
		return 0, ErrLogDomain
	}
	return 1 / x, nil
}

// LogDeriv returns (log_a x)' = 1/(x ln a)
func LogDeriv(x, base float64) (float64, error) {
	if base <= 0 || base == 1 {
		return 0, ErrInvalidBase
	}
	if x <= 0 {
		return 0, ErrLogDomain
	}
	return 1 / (x * gomath.Log(base)), nil
}

// SinDeriv returns (sin x)' = cos x
func SinDeriv(x float64) float64 { return gomath.Cos(x) }

// CosDeriv returns (cos x)' = -sin x
func CosDeriv(x float64) float64 { return -gomath.Sin(x) }

// TanDeriv returns (tan x)' = 1/cos²x
func TanDeriv(x float64) (float64, error) {
	c := gomath.Cos(x)
	if gomath.Abs(c) < 1e-10 {
		return 0, ErrTangentUndefined
	}
	return 1 / (c * c), nil
}

// AddDeriv returns (f + g)' = f' + g'
func AddDeriv(fd, gd float64) float64 { return fd + gd }

// SubtractDeriv returns (f - g)' = f' - g'
func SubtractDeriv(fd, gd float64) float64 { return fd - gd }

// MultiplyDeriv returns (fg)' = f'g + fg'
func MultiplyDeriv(f, fd, g, gd float64) float64 { return fd*g + f*gd }

// DivideDeriv returns (f/g)' = (f'g - fg')/g²
func DivideDeriv(f, fd, g, gd float64) (float64, error) {
	if gomath.Abs(g) < denominatorTolerance {
		return 0, ErrDivideByZero
	}
	return (fd*g - f*gd) / (g * g), nil
}

// CompositeDeriv applies the chain rule: f(g(x))' = f'(g(x))·g'(x)
func CompositeDeriv(outerDeriv, innerDeriv float64) float64 { return outerDeriv * innerDeriv }

// PowerCompositeDeriv returns (uⁿ)' = n·uⁿ⁻¹·u'
func PowerCompositeDeriv(inner, innerDeriv, n float64) float64 {
	return n * gomath.Pow(inner, n-1) * innerDeriv
}

// ExpCompositeDeriv returns (eᵘ)' = eᵘ·u'
func ExpCompositeDeriv(inner, innerDeriv float64) float64 {
	return gomath.Exp(inner) * innerDeriv
}

// SinCompositeDeriv returns (sin u)' = cos u·u'
func SinCompositeDeriv(inner, innerDeriv float64) float64 {
	return gomath.Cos(inner) * innerDeriv
}

// CosCompositeDeriv returns (cos u)' = -sin u·u'
func CosCompositeDeriv(inner, innerDeriv float64) float64 {
	return -gomath.Sin(inner) * innerDeriv
}
