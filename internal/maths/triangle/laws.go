// Package triangle solves triangles from sides and angles and locates the
// classical triangle centers.
package triangle

import (
	"errors"
	gomath "math"

	"gonum.org/v1/gonum/floats/scalar"
)

var (
	ErrNonPositiveSide  = errors.New("triangle: side lengths must be positive")
	ErrNonPositiveAngle = errors.New("triangle: angles must be positive")
	ErrAngleRange       = errors.New("triangle: angle out of range")
	ErrAngleSum         = errors.New("triangle: angles must sum to π")
	ErrInconsistent     = errors.New("triangle: sides and angles disagree")
	ErrInequality       = errors.New("triangle: sides violate the triangle inequality")
	ErrNegativeSquare   = errors.New("triangle: computed square is negative")
	ErrDegenerate       = errors.New("triangle: vertices are collinear or coincident")
)

const tolerance = 1e-9

func positiveSides(sides ...float64) error {
	for _, s := range sides {
		if !(s > 0) {
			return ErrNonPositiveSide
		}
	}
	return nil
}

func checkInequality(a, b, c float64) error {
	if err := positiveSides(a, b, c); err != nil {
		return err
	}
	if a >= b+c || b >= a+c || c >= a+b {
		return ErrInequality
	}
	return nil
}

// LawOfSines checks a/sin A = b/sin B = c/sin C and returns the circumradius
// R, where each ratio equals 2R.
func LawOfSines(a, b, c, angleA, angleB, angleC float64) (float64, error) {
	if err := positiveSides(a, b, c); err != nil {
		return 0, err
	}
	if angleA <= 0 || angleB <= 0 || angleC <= 0 {
		return 0, ErrNonPositiveAngle
	}
	if !scalar.EqualWithinAbs(angleA+angleB+angleC, gomath.Pi, tolerance) {
		return 0, ErrAngleSum
	}

	r1 := a / gomath.Sin(angleA)
	r2 := b / gomath.Sin(angleB)
	r3 := c / gomath.Sin(angleC)
	if !scalar.EqualWithinAbs(r1, r2, tolerance) || !scalar.EqualWithinAbs(r1, r3, tolerance) {
		return 0, ErrInconsistent
	}
	return r1 / 2, nil
}

// LawOfCosines returns the side opposite angleC: c² = a² + b² - 2ab·cos C.
func LawOfCosines(a, b, angleC float64) (float64, error) {
	if err := positiveSides(a, b); err != nil {
		return 0, err
	}
	if angleC <= 0 || angleC >= gomath.Pi {
		return 0, ErrAngleRange
	}
	c2 := a*a + b*b - 2*a*b*gomath.Cos(angleC)
	if c2 < 0 {
		return 0, ErrNegativeSquare
	}
	return gomath.Sqrt(c2), nil
}

// ProjectionTheorem reports whether a = b·cos C + c·cos B holds.
func ProjectionTheorem(a, b, c, angleB, angleC float64) (bool, error) {
	if err := positiveSides(a, b, c); err != nil {
		return false, err
	}
	if angleB <= 0 || angleC <= 0 || angleB+angleC >= gomath.Pi {
		return false, ErrAngleRange
	}
	return scalar.EqualWithinAbs(a, b*gomath.Cos(angleC)+c*gomath.Cos(angleB), tolerance), nil
}

// MedianLength returns the median to side a: ½√(2b² + 2c² - a²).
func MedianLength(a, b, c float64) (float64, error) {
	if err := checkInequality(a, b, c); err != nil {
		return 0, err
	}
	return gomath.Sqrt(2*b*b+2*c*c-a*a) / 2, nil
}

// Heron returns the area of the triangle with sides a, b, c.
func Heron(a, b, c float64) (float64, error) {
	if err := checkInequality(a, b, c); err != nil {
		return 0, err
	}
	s := (a + b + c) / 2
	sq := s * (s - a) * (s - b) * (s - c)
	if sq < 0 {
		return 0, ErrNegativeSquare
	}
	return gomath.Sqrt(sq), nil
}
