package space

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3 is a free vector or a point in 3D space
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewVector3 creates a vector from its components
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) vec() r3.Vec { return r3.Vec(v) }

func fromR3(v r3.Vec) Vector3 { return Vector3(v) }

// Add returns v + o
func (v Vector3) Add(o Vector3) Vector3 { return fromR3(r3.Add(v.vec(), o.vec())) }

// Sub returns v - o
func (v Vector3) Sub(o Vector3) Vector3 { return fromR3(r3.Sub(v.vec(), o.vec())) }

// Scale returns k·v
func (v Vector3) Scale(k float64) Vector3 { return fromR3(r3.Scale(k, v.vec())) }

// Dot returns the dot product of two vectors
func (v Vector3) Dot(o Vector3) float64 { return r3.Dot(v.vec(), o.vec()) }

// Cross returns the right-handed cross product v × o
func (v Vector3) Cross(o Vector3) Vector3 { return fromR3(r3.Cross(v.vec(), o.vec())) }

// Magnitude returns the Euclidean norm
func (v Vector3) Magnitude() float64 { return r3.Norm(v.vec()) }

// IsZero reports whether the vector is too short to have a direction
func (v Vector3) IsZero() bool { return NearlyZero(v.Magnitude()) }

// Normalize returns the unit vector in the direction of v.
func (v Vector3) Normalize() (Vector3, error) {
	mag := v.Magnitude()
	if NearlyZero(mag) {
		return Vector3{}, ErrZeroVector
	}
	return v.Scale(1 / mag), nil
}

// IsCollinear reports whether v and o point in the same or exactly opposite
// direction.
func (v Vector3) IsCollinear(o Vector3) (bool, error) {
	vn, err := v.Normalize()
	if err != nil {
		return false, err
	}
	on, err := o.Normalize()
	if err != nil {
		return false, err
	}
	dot := vn.Dot(on)
	if dot < 0 {
		dot = -dot
	}
	return NearlyEqual(dot, 1), nil
}

// CosAngle returns the cosine of the angle between a and b.
func CosAngle(a, b Vector3) (float64, error) {
	if err := requireDirections(a, b); err != nil {
		return 0, err
	}
	return clampUnit(a.Dot(b) / (a.Magnitude() * b.Magnitude())), nil
}

// requireDirections fails with ErrZeroVector if any vector is degenerate.
func requireDirections(vs ...Vector3) error {
	for _, v := range vs {
		if v.IsZero() {
			return ErrZeroVector
		}
	}
	return nil
}
