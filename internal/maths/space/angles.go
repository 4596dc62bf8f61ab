package space

import gomath "math"

// ProjectOntoPlane removes the component of v along normal: v - (v·n̂)n̂.
func ProjectOntoPlane(v, normal Vector3) (Vector3, error) {
	unit, err := normal.Normalize()
	if err != nil {
		return Vector3{}, err
	}
	return v.Sub(unit.Scale(v.Dot(unit))), nil
}

// ProjectedArea applies the area-projection theorem: area·|cos θ| where θ is
// the angle between the two planes' normals.
func ProjectedArea(area float64, n1, n2 Vector3) (float64, error) {
	if area < 0 {
		return 0, ErrInvalidParam
	}
	cos, err := CosAngle(n1, n2)
	if err != nil {
		return 0, err
	}
	return area * gomath.Abs(cos), nil
}

// MinimumAngleBetweenLineAndPlane returns the angle between a line and its
// projection onto plane, in radians within [0, π/2].
func MinimumAngleBetweenLineAndPlane(line Vector3, plane Plane) (float64, error) {
	cos, err := CosAngle(line, plane.Normal())
	if err != nil {
		return 0, err
	}
	return gomath.Asin(gomath.Abs(cos)), nil
}

// MaximumAngleBetweenSkewLines returns the angle formed by two line
// directions, in radians within [0, π/2].
func MaximumAngleBetweenSkewLines(d1, d2 Vector3) (float64, error) {
	cos, err := CosAngle(d1, d2)
	if err != nil {
		return 0, err
	}
	return gomath.Acos(gomath.Abs(cos)), nil
}

// IsLinePerpendicularToOblique applies the three-perpendiculars theorem: the
// line must be orthogonal to the oblique line's projection onto the plane and
// to the oblique line itself.
func IsLinePerpendicularToOblique(line, oblique, planeNormal Vector3) (bool, error) {
	if err := requireDirections(line, oblique); err != nil {
		return false, err
	}
	projection, err := ProjectOntoPlane(oblique, planeNormal)
	if err != nil {
		return false, err
	}
	if !NearlyZero(line.Dot(projection)) {
		return false, nil
	}
	return NearlyZero(line.Dot(oblique)), nil
}

// ThreeCosineTheorem returns cos(oab)·cos(bac), the cosine of the angle
// between an oblique line and a line in the plane.
func ThreeCosineTheorem(oab, bac float64) (float64, error) {
	if !isAcuteOrRight(oab) || !isAcuteOrRight(bac) {
		return 0, ErrInvalidParam
	}
	return gomath.Cos(oab) * gomath.Cos(bac), nil
}

// ThreeSineTheorem returns sin(oac)·sin(aoc).
func ThreeSineTheorem(oac, aoc float64) (float64, error) {
	if !isAcuteOrRight(oac) || !isAcuteOrRight(aoc) {
		return 0, ErrInvalidParam
	}
	return gomath.Sin(oac) * gomath.Sin(aoc), nil
}

func isAcuteOrRight(angle float64) bool {
	return angle >= 0 && angle <= gomath.Pi/2
}
