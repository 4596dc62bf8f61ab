package spatial

import (
	"context"

	"github.com/GriffinCanCode/formulary/internal/maths/space"
	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

func relationTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.space.lineParallelToPlane",
			Name:        "Line Parallel to Plane",
			Description: "Whether a line direction is orthogonal to the plane normal",
			Parameters:  []types.Parameter{vectorParam("line", "Line direction"), vectorParam("normal", "Plane normal")},
			Returns:     "boolean",
		},
		{
			ID:          "math.space.planesParallel",
			Name:        "Parallel Planes",
			Description: "Whether two planes have collinear normals",
			Parameters:  []types.Parameter{planeParam("p1", "First plane"), planeParam("p2", "Second plane")},
			Returns:     "boolean",
		},
		{
			ID:          "math.space.planesPerpendicular",
			Name:        "Perpendicular Planes",
			Description: "Whether two planes have orthogonal normals",
			Parameters:  []types.Parameter{planeParam("p1", "First plane"), planeParam("p2", "Second plane")},
			Returns:     "boolean",
		},
		{
			ID:          "math.space.linePerpendicularToPlane",
			Name:        "Line Perpendicular to Plane",
			Description: "Whether a line direction is collinear with the plane normal",
			Parameters:  []types.Parameter{vectorParam("line", "Line direction"), planeParam("plane", "Plane")},
			Returns:     "boolean",
		},
		{
			ID:          "math.space.linePerpendicularByIntersection",
			Name:        "Perpendicular via Intersection",
			Description: "Whether a line is perpendicular to the intersection line of two planes and lies in the first",
			Parameters: []types.Parameter{
				vectorParam("line", "Line direction"),
				planeParam("p1", "First plane"),
				planeParam("p2", "Second plane"),
			},
			Returns: "boolean",
		},
		{
			ID:          "math.space.linesPerpendicularToPlane",
			Name:        "Lines Perpendicular to Same Plane",
			Description: "Whether two lines are both perpendicular to a plane, which makes them parallel",
			Parameters: []types.Parameter{
				vectorParam("d1", "First line direction"),
				vectorParam("d2", "Second line direction"),
				planeParam("plane", "Plane"),
			},
			Returns: "boolean",
		},
		{
			ID:          "math.space.planeIntersections",
			Name:        "Cut Plane Intersections",
			Description: "Directions of the lines where a cutting plane meets two other planes",
			Parameters: []types.Parameter{
				planeParam("p1", "First plane"),
				planeParam("p2", "Second plane"),
				planeParam("cut", "Cutting plane"),
			},
			Returns: "object",
		},
		{
			ID:          "math.space.linePlaneIntersection",
			Name:        "Line Plane Intersection Direction",
			Description: "Direction of the intersection of a plane containing the line with the given plane",
			Parameters:  []types.Parameter{vectorParam("line", "Line direction"), planeParam("plane", "Plane")},
			Returns:     "vector",
		},
	}
}

// LineParallelToPlane checks line · n = 0
func (s *SpaceOps) LineParallelToPlane(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vs, missing := vectors(params, "line", "normal")
	if missing != "" {
		return missingVector(missing)
	}
	return common.Bool(space.IsLineParallelToPlane(vs[0], vs[1]))
}

// PlanesParallel checks n1 ∥ n2
func (s *SpaceOps) PlanesParallel(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ps, missing := planes(params, "p1", "p2")
	if missing != "" {
		return missingPlane(missing)
	}
	return common.Bool(space.ArePlanesParallel(ps[0], ps[1]))
}

// PlanesPerpendicular checks n1 · n2 = 0
func (s *SpaceOps) PlanesPerpendicular(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ps, missing := planes(params, "p1", "p2")
	if missing != "" {
		return missingPlane(missing)
	}
	return common.Bool(space.ArePlanesPerpendicular(ps[0], ps[1]))
}

// LinePerpendicularToPlane checks line ∥ n
func (s *SpaceOps) LinePerpendicularToPlane(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	line, ok := common.GetVector(params, "line")
	if !ok {
		return missingVector("line")
	}
	plane, ok := common.GetPlane(params, "plane")
	if !ok {
		return missingPlane("plane")
	}
	return common.Bool(space.IsLinePerpendicularToPlane(line, plane))
}

// LinePerpendicularByIntersection applies the plane-perpendicularity property theorem
func (s *SpaceOps) LinePerpendicularByIntersection(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	line, ok := common.GetVector(params, "line")
	if !ok {
		return missingVector("line")
	}
	ps, missing := planes(params, "p1", "p2")
	if missing != "" {
		return missingPlane(missing)
	}
	return common.Bool(space.IsLinePerpendicularToPlaneByIntersection(line, ps[0], ps[1]))
}

// LinesPerpendicularToPlane checks both directions against the same normal
func (s *SpaceOps) LinesPerpendicularToPlane(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vs, missing := vectors(params, "d1", "d2")
	if missing != "" {
		return missingVector(missing)
	}
	plane, ok := common.GetPlane(params, "plane")
	if !ok {
		return missingPlane("plane")
	}
	return common.Bool(space.AreLinesPerpendicularToSamePlane(vs[0], vs[1], plane))
}

// PlaneIntersections returns both intersection directions of the cutting plane
func (s *SpaceOps) PlaneIntersections(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ps, missing := planes(params, "p1", "p2", "cut")
	if missing != "" {
		return missingPlane(missing)
	}
	d1, d2, err := space.PlaneIntersectionDirs(ps[0], ps[1], ps[2])
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{
		"first":  common.VectorData(d1),
		"second": common.VectorData(d2),
	})
}

// LinePlaneIntersection returns line × n
func (s *SpaceOps) LinePlaneIntersection(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	line, ok := common.GetVector(params, "line")
	if !ok {
		return missingVector("line")
	}
	plane, ok := common.GetPlane(params, "plane")
	if !ok {
		return missingPlane("plane")
	}
	dir, err := space.LinePlaneIntersectionDir(line, plane)
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{"result": common.VectorData(dir)})
}
