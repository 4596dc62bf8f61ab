package space

// IsLineParallelToPlane reports whether a line with direction line lies
// parallel to the plane with the given normal.
func IsLineParallelToPlane(line, normal Vector3) (bool, error) {
	if err := requireDirections(line, normal); err != nil {
		return false, err
	}
	return NearlyZero(line.Dot(normal)), nil
}

// ArePlanesParallel reports whether the normals of p1 and p2 are collinear.
func ArePlanesParallel(p1, p2 Plane) (bool, error) {
	n1, n2 := p1.Normal(), p2.Normal()
	if err := requireDirections(n1, n2); err != nil {
		return false, err
	}
	return n1.Cross(n2).IsZero(), nil
}

// ArePlanesPerpendicular reports whether the normals of p1 and p2 are
// orthogonal.
func ArePlanesPerpendicular(p1, p2 Plane) (bool, error) {
	n1, n2 := p1.Normal(), p2.Normal()
	if err := requireDirections(n1, n2); err != nil {
		return false, err
	}
	return NearlyZero(n1.Dot(n2)), nil
}

// IsLinePerpendicularToPlane reports whether line is parallel to the plane's
// normal.
func IsLinePerpendicularToPlane(line Vector3, plane Plane) (bool, error) {
	normal := plane.Normal()
	if err := requireDirections(line, normal); err != nil {
		return false, err
	}
	return line.Cross(normal).IsZero(), nil
}

// IsLinePerpendicularToPlaneByIntersection applies the plane-perpendicularity
// theorem: given p1 ⟂ p2, a line in p1 orthogonal to their intersection is
// perpendicular to p2. It fails with ErrNotPerpendicular when p1 and p2 are
// not perpendicular.
func IsLinePerpendicularToPlaneByIntersection(line Vector3, p1, p2 Plane) (bool, error) {
	perpendicular, err := ArePlanesPerpendicular(p1, p2)
	if err != nil {
		return false, err
	}
	if !perpendicular {
		return false, ErrNotPerpendicular
	}
	if err := requireDirections(line); err != nil {
		return false, err
	}

	intersection := p1.Normal().Cross(p2.Normal())
	if !NearlyZero(line.Dot(intersection)) {
		return false, nil
	}
	return IsLinePerpendicularToPlane(line, p2)
}

// AreLinesPerpendicularToSamePlane reports whether two lines, both
// perpendicular to plane, are parallel to each other. If either line is not
// perpendicular to the plane the result is false rather than an error.
func AreLinesPerpendicularToSamePlane(d1, d2 Vector3, plane Plane) (bool, error) {
	perp1, err := IsLinePerpendicularToPlane(d1, plane)
	if err != nil {
		return false, err
	}
	perp2, err := IsLinePerpendicularToPlane(d2, plane)
	if err != nil {
		return false, err
	}
	if !perp1 || !perp2 {
		return false, nil
	}
	return d1.Cross(d2).IsZero(), nil
}

// PlaneIntersectionDirs returns the directions of the lines where cut meets
// the parallel planes p1 and p2. It fails with ErrNotParallel unless p1 ∥ p2.
func PlaneIntersectionDirs(p1, p2, cut Plane) (Vector3, Vector3, error) {
	parallel, err := ArePlanesParallel(p1, p2)
	if err != nil {
		return Vector3{}, Vector3{}, err
	}
	if !parallel {
		return Vector3{}, Vector3{}, ErrNotParallel
	}
	nc := cut.Normal()
	if err := requireDirections(nc); err != nil {
		return Vector3{}, Vector3{}, err
	}
	return p1.Normal().Cross(nc), p2.Normal().Cross(nc), nil
}

// LinePlaneIntersectionDir returns line × n for a line parallel to plane. It
// fails with ErrNotParallel when the line is not parallel to the plane.
func LinePlaneIntersectionDir(line Vector3, plane Plane) (Vector3, error) {
	normal := plane.Normal()
	parallel, err := IsLineParallelToPlane(line, normal)
	if err != nil {
		return Vector3{}, err
	}
	if !parallel {
		return Vector3{}, ErrNotParallel
	}
	return line.Cross(normal), nil
}
