package space

import "errors"

var (
	// ErrZeroVector is returned when a vector or normal has magnitude below
	// Epsilon and therefore no direction.
	ErrZeroVector = errors.New("space: zero vector has no direction")

	// ErrNotPerpendicular is returned when two planes were required to be
	// perpendicular.
	ErrNotPerpendicular = errors.New("space: planes are not perpendicular")

	// ErrNotCoplanar is returned when three points are collinear and so do not
	// determine a unique plane.
	ErrNotCoplanar = errors.New("space: points do not determine a plane")

	// ErrNotParallel is returned when two planes, or a line and a plane, were
	// required to be parallel.
	ErrNotParallel = errors.New("space: not parallel")

	// ErrInvalidParam is returned when a scalar argument is outside its domain.
	ErrInvalidParam = errors.New("space: invalid parameter")
)
