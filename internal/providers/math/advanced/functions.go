package advanced

import (
	"fmt"
	gomath "math"
	"sort"
	"strings"

	"github.com/GriffinCanCode/formulary/internal/maths/calculus"
)

// elementary is a function known by name together with its derivatives of
// every order.
type elementary struct {
	f   calculus.Func
	nth func(n int) calculus.Func
}

var elementaries = map[string]elementary{
	"identity": {
		f:   func(x float64) float64 { return x },
		nth: func(n int) calculus.Func { return polynomialDeriv(1, n) },
	},
	"square": {
		f:   func(x float64) float64 { return x * x },
		nth: func(n int) calculus.Func { return polynomialDeriv(2, n) },
	},
	"cube": {
		f:   func(x float64) float64 { return x * x * x },
		nth: func(n int) calculus.Func { return polynomialDeriv(3, n) },
	},
	"exp": {
		f:   gomath.Exp,
		nth: func(int) calculus.Func { return gomath.Exp },
	},
	"sin": {
		f: gomath.Sin,
		nth: func(n int) calculus.Func {
			return func(x float64) float64 { return gomath.Sin(x + float64(n)*gomath.Pi/2) }
		},
	},
	"cos": {
		f: gomath.Cos,
		nth: func(n int) calculus.Func {
			return func(x float64) float64 { return gomath.Cos(x + float64(n)*gomath.Pi/2) }
		},
	},
	"ln": {
		f: gomath.Log,
		nth: func(n int) calculus.Func {
			// (ln x)⁽ⁿ⁾ = (-1)ⁿ⁻¹(n-1)!/xⁿ
			sign := 1.0
			if n%2 == 0 {
				sign = -1
			}
			fact := gomath.Gamma(float64(n))
			return func(x float64) float64 { return sign * fact / gomath.Pow(x, float64(n)) }
		},
	},
}

// polynomialDeriv returns the n-th derivative of x^degree
func polynomialDeriv(degree, n int) calculus.Func {
	if n > degree {
		return func(float64) float64 { return 0 }
	}
	coeff := 1.0
	for k := 0; k < n; k++ {
		coeff *= float64(degree - k)
	}
	power := float64(degree - n)
	return func(x float64) float64 { return coeff * gomath.Pow(x, power) }
}

func functionNames() string {
	names := make([]string, 0, len(elementaries))
	for name := range elementaries {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func lookup(name string) (elementary, error) {
	fn, ok := elementaries[name]
	if !ok {
		return elementary{}, fmt.Errorf("unknown function %q (expected one of %s)", name, functionNames())
	}
	return fn, nil
}

// derivatives returns the first n derivatives of fn
func (e elementary) derivatives(n int) []calculus.Func {
	out := make([]calculus.Func, n)
	for k := 1; k <= n; k++ {
		out[k-1] = e.nth(k)
	}
	return out
}
