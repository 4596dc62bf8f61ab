// Package space implements the 3D solid-geometry toolkit: vectors, planes and
// the relations between lines and planes taught alongside them.
//
// The package is organized as:
//   - Vector3: value-typed vector/point with linear-algebra primitives
//   - Plane: Ax + By + Cz + D = 0, built from three points
//   - Relations: parallelism, perpendicularity, intersection directions
//   - Angles: projections, line/plane angles and the three-cosine and
//     three-sine theorems
//
// Built on gonum.org/v1/gonum/spatial/r3 for the vector arithmetic.
//
// Every comparison goes through NearlyZero or NearlyEqual with the fixed
// absolute tolerance Epsilon. Degenerate directions (magnitude below
// Epsilon) are rejected with ErrZeroVector; other precondition violations
// have their own sentinel errors, matched with errors.Is.
//
// Example Usage:
//
//	plane, err := space.NewPlane(
//		space.NewVector3(0, 0, 0),
//		space.NewVector3(1, 0, 0),
//		space.NewVector3(0, 1, 0),
//	)
//	if err != nil {
//		return err
//	}
//	angle, err := space.MinimumAngleBetweenLineAndPlane(space.NewVector3(0, 0, 1), plane)
package space
