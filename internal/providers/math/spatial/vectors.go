package spatial

import (
	"context"

	"github.com/GriffinCanCode/formulary/internal/maths/space"
	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// SpaceOps handles 3D vector and plane geometry
type SpaceOps struct {
	*common.MathOps
}

func vectorParam(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "vector", Description: description + " as [x, y, z]", Required: true}
}

func planeParam(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "plane", Description: description + " as [a, b, c, d] for ax + by + cz + d = 0", Required: true}
}

// vectors reads each key as a vector and names the first one that is missing.
func vectors(params map[string]interface{}, keys ...string) ([]space.Vector3, string) {
	out := make([]space.Vector3, len(keys))
	for i, key := range keys {
		v, ok := common.GetVector(params, key)
		if !ok {
			return nil, key
		}
		out[i] = v
	}
	return out, ""
}

func planes(params map[string]interface{}, keys ...string) ([]space.Plane, string) {
	out := make([]space.Plane, len(keys))
	for i, key := range keys {
		p, ok := common.GetPlane(params, key)
		if !ok {
			return nil, key
		}
		out[i] = p
	}
	return out, ""
}

func missingVector(key string) (*types.Result, error) { return common.Required(key, "[x, y, z]") }

func missingPlane(key string) (*types.Result, error) { return common.Required(key, "[a, b, c, d]") }

// GetTools returns space tool definitions
func (s *SpaceOps) GetTools() []types.Tool {
	tools := []types.Tool{
		{
			ID:          "math.space.add",
			Name:        "Vector Sum",
			Description: "Add two vectors",
			Parameters:  []types.Parameter{vectorParam("a", "First vector"), vectorParam("b", "Second vector")},
			Returns:     "vector",
		},
		{
			ID:          "math.space.sub",
			Name:        "Vector Difference",
			Description: "Subtract b from a",
			Parameters:  []types.Parameter{vectorParam("a", "First vector"), vectorParam("b", "Second vector")},
			Returns:     "vector",
		},
		{
			ID:          "math.space.scale",
			Name:        "Scale Vector",
			Description: "Multiply a vector by a scalar",
			Parameters: []types.Parameter{
				vectorParam("v", "Vector"),
				{Name: "k", Type: "number", Description: "Scalar factor", Required: true},
			},
			Returns: "vector",
		},
		{
			ID:          "math.space.dot",
			Name:        "Dot Product",
			Description: "Scalar product of two vectors",
			Parameters:  []types.Parameter{vectorParam("a", "First vector"), vectorParam("b", "Second vector")},
			Returns:     "number",
		},
		{
			ID:          "math.space.cross",
			Name:        "Cross Product",
			Description: "Vector product a × b",
			Parameters:  []types.Parameter{vectorParam("a", "First vector"), vectorParam("b", "Second vector")},
			Returns:     "vector",
		},
		{
			ID:          "math.space.magnitude",
			Name:        "Magnitude",
			Description: "Euclidean length of a vector",
			Parameters:  []types.Parameter{vectorParam("v", "Vector")},
			Returns:     "number",
		},
		{
			ID:          "math.space.normalize",
			Name:        "Normalize",
			Description: "Unit vector in the direction of v",
			Parameters:  []types.Parameter{vectorParam("v", "Non-zero vector")},
			Returns:     "vector",
		},
		{
			ID:          "math.space.isCollinear",
			Name:        "Collinear Vectors",
			Description: "Whether two non-zero vectors are parallel",
			Parameters:  []types.Parameter{vectorParam("a", "First vector"), vectorParam("b", "Second vector")},
			Returns:     "boolean",
		},
		{
			ID:          "math.space.cosAngle",
			Name:        "Cosine of Angle",
			Description: "Cosine of the angle between two non-zero vectors",
			Parameters:  []types.Parameter{vectorParam("a", "First vector"), vectorParam("b", "Second vector")},
			Returns:     "number",
		},
		{
			ID:          "math.space.plane",
			Name:        "Plane Through Points",
			Description: "Plane through three non-collinear points",
			Parameters: []types.Parameter{
				vectorParam("p1", "First point"),
				vectorParam("p2", "Second point"),
				vectorParam("p3", "Third point"),
			},
			Returns: "plane",
		},
		{
			ID:          "math.space.contains",
			Name:        "Plane Contains Point",
			Description: "Whether a point satisfies the plane equation",
			Parameters:  []types.Parameter{planeParam("plane", "Plane"), vectorParam("point", "Point")},
			Returns:     "boolean",
		},
	}
	tools = append(tools, relationTools()...)
	return append(tools, angleTools()...)
}

// Add sums two vectors
func (s *SpaceOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vs, missing := vectors(params, "a", "b")
	if missing != "" {
		return missingVector(missing)
	}
	return common.Success(map[string]interface{}{"result": common.VectorData(vs[0].Add(vs[1]))})
}

// Sub subtracts b from a
func (s *SpaceOps) Sub(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vs, missing := vectors(params, "a", "b")
	if missing != "" {
		return missingVector(missing)
	}
	return common.Success(map[string]interface{}{"result": common.VectorData(vs[0].Sub(vs[1]))})
}

// Scale multiplies a vector by k
func (s *SpaceOps) Scale(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, ok := common.GetVector(params, "v")
	if !ok {
		return missingVector("v")
	}
	k, ok := common.GetNumber(params, "k")
	if !ok {
		return common.Failure("k parameter required")
	}
	return common.Success(map[string]interface{}{"result": common.VectorData(v.Scale(k))})
}

// Dot returns a · b
func (s *SpaceOps) Dot(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vs, missing := vectors(params, "a", "b")
	if missing != "" {
		return missingVector(missing)
	}
	return common.Success(map[string]interface{}{"result": vs[0].Dot(vs[1])})
}

// Cross returns a × b
func (s *SpaceOps) Cross(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vs, missing := vectors(params, "a", "b")
	if missing != "" {
		return missingVector(missing)
	}
	return common.Success(map[string]interface{}{"result": common.VectorData(vs[0].Cross(vs[1]))})
}

// Magnitude returns |v|
func (s *SpaceOps) Magnitude(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, ok := common.GetVector(params, "v")
	if !ok {
		return missingVector("v")
	}
	return common.Success(map[string]interface{}{"result": v.Magnitude()})
}

// Normalize returns v/|v|
func (s *SpaceOps) Normalize(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, ok := common.GetVector(params, "v")
	if !ok {
		return missingVector("v")
	}
	u, err := v.Normalize()
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{"result": common.VectorData(u)})
}

// IsCollinear reports whether a ∥ b
func (s *SpaceOps) IsCollinear(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vs, missing := vectors(params, "a", "b")
	if missing != "" {
		return missingVector(missing)
	}
	ok, err := vs[0].IsCollinear(vs[1])
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{"result": ok})
}

// CosAngle returns cos θ between a and b
func (s *SpaceOps) CosAngle(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vs, missing := vectors(params, "a", "b")
	if missing != "" {
		return missingVector(missing)
	}
	c, err := space.CosAngle(vs[0], vs[1])
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{"result": c})
}

// Plane builds the plane through three points
func (s *SpaceOps) Plane(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vs, missing := vectors(params, "p1", "p2", "p3")
	if missing != "" {
		return missingVector(missing)
	}
	p, err := space.NewPlane(vs[0], vs[1], vs[2])
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{
		"result": map[string]interface{}{"a": p.A, "b": p.B, "c": p.C, "d": p.D},
		"normal": common.VectorData(p.Normal()),
	})
}

// Contains reports whether the point lies on the plane
func (s *SpaceOps) Contains(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	p, ok := common.GetPlane(params, "plane")
	if !ok {
		return missingPlane("plane")
	}
	point, ok := common.GetVector(params, "point")
	if !ok {
		return missingVector("point")
	}
	return common.Success(map[string]interface{}{"result": p.Contains(point)})
}
