package triangle

import (
	gomath "math"

	"github.com/GriffinCanCode/formulary/internal/maths/analytic"
)

// Triangle is a triangle in the plane given by its vertices.
type Triangle struct {
	A analytic.Point `json:"a"`
	B analytic.Point `json:"b"`
	C analytic.Point `json:"c"`
}

func distance(p, q analytic.Point) float64 {
	return gomath.Hypot(q.X-p.X, q.Y-p.Y)
}

// sides returns the lengths opposite A, B and C.
func (t Triangle) sides() (a, b, c float64) {
	return distance(t.B, t.C), distance(t.A, t.C), distance(t.A, t.B)
}

// Area returns the unsigned area from the shoelace formula.
func (t Triangle) Area() float64 {
	return gomath.Abs(t.cross()) / 2
}

func (t Triangle) cross() float64 {
	return (t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.C.X-t.A.X)*(t.B.Y-t.A.Y)
}

func (t Triangle) degenerate() bool {
	return gomath.Abs(t.cross()) < tolerance
}

// Centroid returns the intersection of the medians.
func (t Triangle) Centroid() analytic.Point {
	return analytic.Point{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
	}
}

// Incenter returns the center of the inscribed circle.
func (t Triangle) Incenter() (analytic.Point, error) {
	a, b, c := t.sides()
	if err := positiveSides(a, b, c); err != nil {
		return analytic.Point{}, err
	}
	if t.degenerate() {
		return analytic.Point{}, ErrDegenerate
	}
	p := a + b + c
	return analytic.Point{
		X: (a*t.A.X + b*t.B.X + c*t.C.X) / p,
		Y: (a*t.A.Y + b*t.B.Y + c*t.C.Y) / p,
	}, nil
}

// Circumcenter returns the center of the circumscribed circle.
func (t Triangle) Circumcenter() (analytic.Point, error) {
	if t.degenerate() {
		return analytic.Point{}, ErrDegenerate
	}
	a2 := t.A.X*t.A.X + t.A.Y*t.A.Y
	b2 := t.B.X*t.B.X + t.B.Y*t.B.Y
	c2 := t.C.X*t.C.X + t.C.Y*t.C.Y
	d := 2 * (t.A.X*(t.B.Y-t.C.Y) + t.B.X*(t.C.Y-t.A.Y) + t.C.X*(t.A.Y-t.B.Y))
	return analytic.Point{
		X: (a2*(t.B.Y-t.C.Y) + b2*(t.C.Y-t.A.Y) + c2*(t.A.Y-t.B.Y)) / d,
		Y: (a2*(t.C.X-t.B.X) + b2*(t.A.X-t.C.X) + c2*(t.B.X-t.A.X)) / d,
	}, nil
}

// Orthocenter returns the intersection of the altitudes, H = A + B + C - 2O.
func (t Triangle) Orthocenter() (analytic.Point, error) {
	o, err := t.Circumcenter()
	if err != nil {
		return analytic.Point{}, err
	}
	return analytic.Point{
		X: t.A.X + t.B.X + t.C.X - 2*o.X,
		Y: t.A.Y + t.B.Y + t.C.Y - 2*o.Y,
	}, nil
}
