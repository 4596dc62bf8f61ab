package analytic

import (
	"errors"
	gomath "math"
)

var (
	ErrCoincidentPoints = errors.New("analytic: points must be distinct")
	ErrVerticalLine     = errors.New("analytic: vertical line has no slope")
	ErrInvalidLine      = errors.New("analytic: A and B must not both be zero")
)

// Point is a point in the plane
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Slope returns the slope of the line through (x1, y1) and (x2, y2)
func Slope(x1, y1, x2, y2 float64) (float64, error) {
	if x1 == x2 && y1 == y2 {
		return 0, ErrCoincidentPoints
	}
	if x1 == x2 {
		return 0, ErrVerticalLine
	}
	return (y2 - y1) / (x2 - x1), nil
}

// ParametricLine returns the point (x0 + a·t, y0 + b·t)
func ParametricLine(x0, y0, a, b, t float64) Point {
	return Point{X: x0 + a*t, Y: y0 + b*t}
}

// PointToLineDistance returns the distance from (x0, y0) to Ax + By + C = 0
func PointToLineDistance(x0, y0, a, b, c float64) (float64, error) {
	if a == 0 && b == 0 {
		return 0, ErrInvalidLine
	}
	return gomath.Abs(a*x0+b*y0+c) / gomath.Hypot(a, b), nil
}
