package common

import (
	"github.com/GriffinCanCode/formulary/internal/maths/analytic"
	"github.com/GriffinCanCode/formulary/internal/maths/space"
	"github.com/GriffinCanCode/formulary/internal/shared/utils"
)

// components reads a fixed-size numeric tuple given either as an array or as
// an object keyed by names.
func components(val interface{}, names ...string) ([]float64, bool) {
	out := make([]float64, len(names))
	switch v := val.(type) {
	case []interface{}:
		if len(v) != len(names) {
			return nil, false
		}
		for i, c := range v {
			f, ok := utils.ToFloat(c)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
	case []float64:
		if len(v) != len(names) {
			return nil, false
		}
		copy(out, v)
	case map[string]interface{}:
		for i, name := range names {
			f, ok := utils.ToFloat(v[name])
			if !ok {
				return nil, false
			}
			out[i] = f
		}
	default:
		return nil, false
	}
	if ValidateNumbers(out, "component") != nil {
		return nil, false
	}
	return out, true
}

// GetVector extracts a 3D vector
func GetVector(params map[string]interface{}, key string) (space.Vector3, bool) {
	c, ok := components(params[key], "x", "y", "z")
	if !ok {
		return space.Vector3{}, false
	}
	return space.NewVector3(c[0], c[1], c[2]), true
}

// GetPlane extracts plane coefficients Ax + By + Cz + D = 0
func GetPlane(params map[string]interface{}, key string) (space.Plane, bool) {
	c, ok := components(params[key], "a", "b", "c", "d")
	if !ok {
		return space.Plane{}, false
	}
	return space.Plane{A: c[0], B: c[1], C: c[2], D: c[3]}, true
}

// GetPoint extracts a point in the plane
func GetPoint(params map[string]interface{}, key string) (analytic.Point, bool) {
	c, ok := components(params[key], "x", "y")
	if !ok {
		return analytic.Point{}, false
	}
	return analytic.Point{X: c[0], Y: c[1]}, true
}

// VectorData renders a vector for a result payload
func VectorData(v space.Vector3) map[string]interface{} {
	return map[string]interface{}{"x": v.X, "y": v.Y, "z": v.Z}
}

// PointData renders a planar point for a result payload
func PointData(p analytic.Point) map[string]interface{} {
	return map[string]interface{}{"x": p.X, "y": p.Y}
}

// GetComplex extracts a complex number given as [re, im] or {re, im}
func GetComplex(params map[string]interface{}, key string) (complex128, bool) {
	c, ok := components(params[key], "re", "im")
	if !ok {
		return 0, false
	}
	return complex(c[0], c[1]), true
}

// ComplexData renders a complex number for a result payload
func ComplexData(z complex128) map[string]interface{} {
	return map[string]interface{}{"re": real(z), "im": imag(z)}
}
