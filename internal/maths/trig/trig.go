// Package trig provides trigonometric identities: conversions, sum and
// difference formulas, multiple and half angles, sum-to-product and
// product-to-sum, and the auxiliary angle form a·sin x + b·cos x.
package trig

import (
	"errors"
	gomath "math"
)

var (
	ErrUndefined     = errors.New("trig: function is undefined at this point")
	ErrOutOfRange    = errors.New("trig: sine or cosine value outside [-1, 1]")
	ErrZeroFrequency = errors.New("trig: angular frequency must not be zero")
)

const undefinedTolerance = 1e-10

func inUnitRange(v float64) error {
	if v < -1 || v > 1 || gomath.IsNaN(v) {
		return ErrOutOfRange
	}
	return nil
}

// Tan returns tan x, or ErrUndefined where cos x vanishes.
func Tan(x float64) (float64, error) {
	if gomath.Abs(gomath.Cos(x)) < undefinedTolerance {
		return 0, ErrUndefined
	}
	return gomath.Tan(x), nil
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return deg * gomath.Pi / 180 }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 { return rad * 180 / gomath.Pi }

// SinToCos returns the non-negative cosine matching a sine value.
func SinToCos(sin float64) (float64, error) {
	if err := inUnitRange(sin); err != nil {
		return 0, err
	}
	return gomath.Sqrt(1 - sin*sin), nil
}

// CosToSin returns the non-negative sine matching a cosine value.
func CosToSin(cos float64) (float64, error) {
	if err := inUnitRange(cos); err != nil {
		return 0, err
	}
	return gomath.Sqrt(1 - cos*cos), nil
}

// SinAdd returns sin(a + b).
func SinAdd(a, b float64) float64 {
	return gomath.Sin(a)*gomath.Cos(b) + gomath.Cos(a)*gomath.Sin(b)
}

// SinSub returns sin(a - b).
func SinSub(a, b float64) float64 {
	return gomath.Sin(a)*gomath.Cos(b) - gomath.Cos(a)*gomath.Sin(b)
}

// CosAdd returns cos(a + b).
func CosAdd(a, b float64) float64 {
	return gomath.Cos(a)*gomath.Cos(b) - gomath.Sin(a)*gomath.Sin(b)
}

// CosSub returns cos(a - b).
func CosSub(a, b float64) float64 {
	return gomath.Cos(a)*gomath.Cos(b) + gomath.Sin(a)*gomath.Sin(b)
}

// SinDouble returns sin 2x = 2 sin x cos x.
func SinDouble(x float64) float64 { return 2 * gomath.Sin(x) * gomath.Cos(x) }

// CosDouble returns cos 2x = 2cos²x - 1.
func CosDouble(x float64) float64 {
	c := gomath.Cos(x)
	return 2*c*c - 1
}

// TanDouble returns tan 2x = 2 tan x / (1 - tan²x).
func TanDouble(x float64) (float64, error) {
	t, err := Tan(x)
	if err != nil {
		return 0, err
	}
	d := 1 - t*t
	if gomath.Abs(d) < undefinedTolerance {
		return 0, ErrUndefined
	}
	return 2 * t / d, nil
}

// SinHalf returns sin(x/2) ≥ 0 from cos x.
func SinHalf(cos float64) (float64, error) {
	if err := inUnitRange(cos); err != nil {
		return 0, err
	}
	return gomath.Sqrt((1 - cos) / 2), nil
}

// CosHalf returns cos(x/2) ≥ 0 from cos x.
func CosHalf(cos float64) (float64, error) {
	if err := inUnitRange(cos); err != nil {
		return 0, err
	}
	return gomath.Sqrt((1 + cos) / 2), nil
}

// TanHalf returns tan(x/2) ≥ 0 from cos x.
func TanHalf(cos float64) (float64, error) {
	if err := inUnitRange(cos); err != nil {
		return 0, err
	}
	if gomath.Abs(1+cos) < undefinedTolerance {
		return 0, ErrUndefined
	}
	return gomath.Sqrt((1 - cos) / (1 + cos)), nil
}
