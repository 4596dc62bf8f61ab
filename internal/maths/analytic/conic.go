package analytic

import (
	"errors"
	gomath "math"
)

var (
	ErrInvalidEllipse      = errors.New("analytic: ellipse requires a > b > 0")
	ErrInvalidHyperbola    = errors.New("analytic: hyperbola requires a > 0 and b > 0")
	ErrInvalidParabola     = errors.New("analytic: parabola requires p > 0")
	ErrInvalidEccentricity = errors.New("analytic: eccentricity out of range for this conic")
	ErrDivideByZero        = errors.New("analytic: division by zero")
)

// Chord holds the coefficients of the tangent/chord-of-contact line
// A·x + B·y = C.
type Chord struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

func validEllipse(a, b float64) bool   { return a > b && b > 0 }
func validHyperbola(a, b float64) bool { return a > 0 && b > 0 }

// EccentricityEllipse returns c/a for x²/a² + y²/b² = 1
func EccentricityEllipse(a, b float64) (float64, error) {
	if !validEllipse(a, b) {
		return 0, ErrInvalidEllipse
	}
	return gomath.Sqrt(a*a-b*b) / a, nil
}

// EccentricityHyperbola returns c/a for x²/a² - y²/b² = 1
func EccentricityHyperbola(a, b float64) (float64, error) {
	if !validHyperbola(a, b) {
		return 0, ErrInvalidHyperbola
	}
	return gomath.Hypot(a, b) / a, nil
}

// EccentricityParabola is always 1
func EccentricityParabola() float64 { return 1 }

// ParametricEllipse returns (a·cos t, b·sin t)
func ParametricEllipse(a, b, t float64) (Point, error) {
	if !validEllipse(a, b) {
		return Point{}, ErrInvalidEllipse
	}
	return Point{X: a * gomath.Cos(t), Y: b * gomath.Sin(t)}, nil
}

// ParametricHyperbola returns (a/cos t, b·tan t)
func ParametricHyperbola(a, b, t float64) (Point, error) {
	if !validHyperbola(a, b) {
		return Point{}, ErrInvalidHyperbola
	}
	cos := gomath.Cos(t)
	if gomath.Abs(cos) < 1e-10 {
		return Point{}, ErrDivideByZero
	}
	return Point{X: a / cos, Y: b * gomath.Tan(t)}, nil
}

// ParametricParabola returns (2p·t², 2p·t) for y² = 2px
func ParametricParabola(p, t float64) (Point, error) {
	if p <= 0 {
		return Point{}, ErrInvalidParabola
	}
	return Point{X: 2 * p * t * t, Y: 2 * p * t}, nil
}

// FocalRadiusEllipse returns the polar focal radius a(1-e²)/(1-e·cos θ)
func FocalRadiusEllipse(a, e, theta float64) (float64, error) {
	if e <= 0 || e >= 1 {
		return 0, ErrInvalidEccentricity
	}
	if a <= 0 {
		return 0, ErrInvalidEllipse
	}
	return a * (1 - e*e) / (1 - e*gomath.Cos(theta)), nil
}

// FocalRadiusHyperbola returns a(e²-1)/|1-e·cos θ|
func FocalRadiusHyperbola(a, e, theta float64) (float64, error) {
	if e <= 1 {
		return 0, ErrInvalidEccentricity
	}
	if a <= 0 {
		return 0, ErrInvalidHyperbola
	}
	den := gomath.Abs(1 - e*gomath.Cos(theta))
	if den < 1e-10 {
		return 0, ErrDivideByZero
	}
	return a * (e*e - 1) / den, nil
}

// PointDifferenceEllipse returns the slope of the chord of an ellipse whose
// midpoint is (x0, y0): -b²x₀/(a²y₀).
func PointDifferenceEllipse(x0, y0, a, b float64) (float64, error) {
	if !validEllipse(a, b) {
		return 0, ErrInvalidEllipse
	}
	if y0 == 0 {
		return 0, ErrDivideByZero
	}
	return -(b * b * x0) / (a * a * y0), nil
}

// TangentChordEllipse returns x₀x/a² + y₀y/b² = 1
func TangentChordEllipse(x0, y0, a, b float64) (Chord, error) {
	if !validEllipse(a, b) {
		return Chord{}, ErrInvalidEllipse
	}
	return Chord{A: x0 / (a * a), B: y0 / (b * b), C: 1}, nil
}

// TangentChordHyperbola returns x₀x/a² - y₀y/b² = 1
func TangentChordHyperbola(x0, y0, a, b float64) (Chord, error) {
	if !validHyperbola(a, b) {
		return Chord{}, ErrInvalidHyperbola
	}
	return Chord{A: x0 / (a * a), B: -y0 / (b * b), C: 1}, nil
}

// TangentChordParabola returns y₀y = p(x + x₀) for y² = 2px, written as
// p·x - y₀·y = -p·x₀.
func TangentChordParabola(x0, y0, p float64) (Chord, error) {
	if p <= 0 {
		return Chord{}, ErrInvalidParabola
	}
	return Chord{A: p, B: -y0, C: -p * x0}, nil
}
