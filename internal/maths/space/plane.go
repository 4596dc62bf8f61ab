package space

// Plane is the set of points satisfying Ax + By + Cz + D = 0. (A, B, C) is
// the unnormalized normal.
type Plane struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// NewPlane builds the plane through three points. It fails with
// ErrNotCoplanar when the points are collinear.
func NewPlane(p1, p2, p3 Vector3) (Plane, error) {
	normal := p2.Sub(p1).Cross(p3.Sub(p1))
	if normal.IsZero() {
		return Plane{}, ErrNotCoplanar
	}
	return Plane{
		A: normal.X,
		B: normal.Y,
		C: normal.Z,
		D: -normal.Dot(p1),
	}, nil
}

// Normal returns (A, B, C). The plane is not validated.
func (p Plane) Normal() Vector3 {
	return Vector3{X: p.A, Y: p.B, Z: p.C}
}

// Contains reports whether point satisfies the plane equation.
func (p Plane) Contains(point Vector3) bool {
	return NearlyZero(p.Normal().Dot(point) + p.D)
}
