// Package solid computes surface areas and volumes of common solids and
// checks Euler's polyhedron formula.
package solid

import (
	"errors"
	gomath "math"
)

var (
	ErrInvalidDimensions = errors.New("solid: dimensions must not be negative")
	ErrEulerViolation    = errors.New("solid: V - E + F must equal 2")
)

func checkDimensions(dims ...float64) error {
	for _, d := range dims {
		if d < 0 || gomath.IsNaN(d) {
			return ErrInvalidDimensions
		}
	}
	return nil
}

// CylinderSurfaceArea returns 2πr(r + h).
func CylinderSurfaceArea(r, h float64) (float64, error) {
	if err := checkDimensions(r, h); err != nil {
		return 0, err
	}
	return 2 * gomath.Pi * r * (r + h), nil
}

// FrustumVolume returns (S₁ + S₂ + √(S₁S₂))·h/3 for base areas S₁, S₂.
func FrustumVolume(s1, s2, h float64) (float64, error) {
	if err := checkDimensions(s1, s2, h); err != nil {
		return 0, err
	}
	return (s1 + s2 + gomath.Sqrt(s1*s2)) * h / 3, nil
}

// SphereSurfaceArea returns 4πr².
func SphereSurfaceArea(r float64) (float64, error) {
	if err := checkDimensions(r); err != nil {
		return 0, err
	}
	return 4 * gomath.Pi * r * r, nil
}

// SphereVolume returns 4πr³/3.
func SphereVolume(r float64) (float64, error) {
	if err := checkDimensions(r); err != nil {
		return 0, err
	}
	return 4 * gomath.Pi * r * r * r / 3, nil
}

// EulerCharacteristic returns V - E + F. A polyhedron with all three counts
// positive must satisfy V - E + F = 2.
func EulerCharacteristic(v, e, f uint64) (int64, error) {
	if v == 0 && e == 0 && f == 0 {
		return 0, ErrInvalidDimensions
	}
	chi := int64(v) - int64(e) + int64(f)
	if v > 0 && e > 0 && f > 0 && chi != 2 {
		return chi, ErrEulerViolation
	}
	return chi, nil
}
