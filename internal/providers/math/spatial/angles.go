package spatial

import (
	"context"

	"github.com/GriffinCanCode/formulary/internal/maths/space"
	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

func angleTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.space.project",
			Name:        "Project onto Plane",
			Description: "Component of v orthogonal to the plane normal",
			Parameters:  []types.Parameter{vectorParam("v", "Vector"), vectorParam("normal", "Plane normal")},
			Returns:     "vector",
		},
		{
			ID:          "math.space.projectedArea",
			Name:        "Projected Area",
			Description: "Area of a planar figure projected onto another plane",
			Parameters: []types.Parameter{
				{Name: "area", Type: "number", Description: "Original area (non-negative)", Required: true},
				vectorParam("n1", "Normal of the figure's plane"),
				vectorParam("n2", "Normal of the projection plane"),
			},
			Returns: "number",
		},
		{
			ID:          "math.space.lineAngle",
			Name:        "Line Plane Angle",
			Description: "Angle in radians between a line and a plane",
			Parameters:  []types.Parameter{vectorParam("line", "Line direction"), planeParam("plane", "Plane")},
			Returns:     "number",
		},
		{
			ID:          "math.space.skewAngle",
			Name:        "Skew Lines Angle",
			Description: "Angle in radians between two line directions, within [0, π/2]",
			Parameters:  []types.Parameter{vectorParam("d1", "First direction"), vectorParam("d2", "Second direction")},
			Returns:     "number",
		},
		{
			ID:          "math.space.threePerpendiculars",
			Name:        "Three Perpendiculars",
			Description: "Whether a line in the plane is perpendicular to an oblique line and its projection",
			Parameters: []types.Parameter{
				vectorParam("line", "Line in the plane"),
				vectorParam("oblique", "Oblique line direction"),
				vectorParam("normal", "Plane normal"),
			},
			Returns: "boolean",
		},
		{
			ID:          "math.space.threeCosine",
			Name:        "Three Cosine Theorem",
			Description: "cos(oab)·cos(bac) for angles in [0, π/2]",
			Parameters: []types.Parameter{
				{Name: "oab", Type: "number", Description: "Angle between the oblique line and its projection", Required: true},
				{Name: "bac", Type: "number", Description: "Angle between the projection and the line in the plane", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.space.threeSine",
			Name:        "Three Sine Theorem",
			Description: "sin(oac)·sin(aoc) for angles in [0, π/2]",
			Parameters: []types.Parameter{
				{Name: "oac", Type: "number", Description: "First angle in radians", Required: true},
				{Name: "aoc", Type: "number", Description: "Second angle in radians", Required: true},
			},
			Returns: "number",
		},
	}
}

// Project removes the normal component of v
func (s *SpaceOps) Project(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vs, missing := vectors(params, "v", "normal")
	if missing != "" {
		return missingVector(missing)
	}
	p, err := space.ProjectOntoPlane(vs[0], vs[1])
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{"result": common.VectorData(p)})
}

// ProjectedArea returns area·|cos θ|
func (s *SpaceOps) ProjectedArea(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	area, ok := common.GetNumber(params, "area")
	if !ok {
		return common.Failure("area parameter required")
	}
	vs, missing := vectors(params, "n1", "n2")
	if missing != "" {
		return missingVector(missing)
	}
	return common.Number(space.ProjectedArea(area, vs[0], vs[1]))
}

// LineAngle returns the line-plane angle
func (s *SpaceOps) LineAngle(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	line, ok := common.GetVector(params, "line")
	if !ok {
		return missingVector("line")
	}
	plane, ok := common.GetPlane(params, "plane")
	if !ok {
		return missingPlane("plane")
	}
	return common.Number(space.MinimumAngleBetweenLineAndPlane(line, plane))
}

// SkewAngle returns the angle between two line directions
func (s *SpaceOps) SkewAngle(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vs, missing := vectors(params, "d1", "d2")
	if missing != "" {
		return missingVector(missing)
	}
	return common.Number(space.MaximumAngleBetweenSkewLines(vs[0], vs[1]))
}

// ThreePerpendiculars applies the three-perpendiculars theorem
func (s *SpaceOps) ThreePerpendiculars(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vs, missing := vectors(params, "line", "oblique", "normal")
	if missing != "" {
		return missingVector(missing)
	}
	return common.Bool(space.IsLinePerpendicularToOblique(vs[0], vs[1], vs[2]))
}

// ThreeCosine returns cos(oab)·cos(bac)
func (s *SpaceOps) ThreeCosine(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	oab, ok1 := common.GetNumber(params, "oab")
	bac, ok2 := common.GetNumber(params, "bac")
	if !ok1 || !ok2 {
		return common.Failure("oab and bac parameters required")
	}
	return common.Number(space.ThreeCosineTheorem(oab, bac))
}

// ThreeSine returns sin(oac)·sin(aoc)
func (s *SpaceOps) ThreeSine(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	oac, ok1 := common.GetNumber(params, "oac")
	aoc, ok2 := common.GetNumber(params, "aoc")
	if !ok1 || !ok2 {
		return common.Failure("oac and aoc parameters required")
	}
	return common.Number(space.ThreeSineTheorem(oac, aoc))
}
