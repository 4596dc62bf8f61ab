package geometry

import (
	"context"

	"github.com/GriffinCanCode/formulary/internal/maths/analytic"
	"github.com/GriffinCanCode/formulary/internal/maths/triangle"
	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// TriangleOps handles triangle laws and centers
type TriangleOps struct {
	*common.MathOps
}

func num(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "number", Description: description, Required: true}
}

func sides() []types.Parameter {
	return []types.Parameter{num("a", "Side a"), num("b", "Side b"), num("c", "Side c")}
}

func vertices() []types.Parameter {
	point := func(name string) types.Parameter {
		return types.Parameter{Name: name, Type: "point", Description: "Vertex " + name + " as [x, y]", Required: true}
	}
	return []types.Parameter{point("A"), point("B"), point("C")}
}

// GetTools returns triangle tool definitions
func (t *TriangleOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.triangle.lawOfSines",
			Name:        "Law of Sines",
			Description: "Check a/sin A = b/sin B = c/sin C and return the circumradius",
			Parameters:  append(sides(), num("angleA", "Angle A in radians"), num("angleB", "Angle B in radians"), num("angleC", "Angle C in radians")),
			Returns:     "number",
		},
		{
			ID:          "math.triangle.lawOfCosines",
			Name:        "Law of Cosines",
			Description: "Third side from two sides and the included angle",
			Parameters:  []types.Parameter{num("a", "Side a"), num("b", "Side b"), num("angleC", "Included angle in radians")},
			Returns:     "number",
		},
		{
			ID:          "math.triangle.projection",
			Name:        "Projection Theorem",
			Description: "Check a = b·cos C + c·cos B",
			Parameters:  append(sides(), num("angleB", "Angle B in radians"), num("angleC", "Angle C in radians")),
			Returns:     "boolean",
		},
		{ID: "math.triangle.median", Name: "Median Length", Description: "Length of the median to side a", Parameters: sides(), Returns: "number"},
		{ID: "math.triangle.heron", Name: "Heron's Formula", Description: "Area from three sides", Parameters: sides(), Returns: "number"},
		{ID: "math.triangle.area", Name: "Triangle Area", Description: "Area from vertex coordinates", Parameters: vertices(), Returns: "number"},
		{ID: "math.triangle.centroid", Name: "Centroid", Description: "Intersection of the medians", Parameters: vertices(), Returns: "point"},
		{ID: "math.triangle.incenter", Name: "Incenter", Description: "Center of the inscribed circle", Parameters: vertices(), Returns: "point"},
		{ID: "math.triangle.circumcenter", Name: "Circumcenter", Description: "Center of the circumscribed circle", Parameters: vertices(), Returns: "point"},
		{ID: "math.triangle.orthocenter", Name: "Orthocenter", Description: "Intersection of the altitudes", Parameters: vertices(), Returns: "point"},
	}
}

func triangleFrom(params map[string]interface{}) (triangle.Triangle, string) {
	var pts [3]analytic.Point
	for i, key := range []string{"A", "B", "C"} {
		p, ok := common.GetPoint(params, key)
		if !ok {
			return triangle.Triangle{}, key
		}
		pts[i] = p
	}
	return triangle.Triangle{A: pts[0], B: pts[1], C: pts[2]}, ""
}

func pointResult(p analytic.Point, err error) (*types.Result, error) {
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{"result": common.PointData(p)})
}

// LawOfSines returns the circumradius R
func (t *TriangleOps) LawOfSines(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "a", "b", "c", "angleA", "angleB", "angleC")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Number(triangle.LawOfSines(xs[0], xs[1], xs[2], xs[3], xs[4], xs[5]))
}

// LawOfCosines returns c² = a² + b² - 2ab·cos C solved for c
func (t *TriangleOps) LawOfCosines(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "a", "b", "angleC")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Number(triangle.LawOfCosines(xs[0], xs[1], xs[2]))
}

func (t *TriangleOps) Projection(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "a", "b", "c", "angleB", "angleC")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Bool(triangle.ProjectionTheorem(xs[0], xs[1], xs[2], xs[3], xs[4]))
}

func (t *TriangleOps) Median(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "a", "b", "c")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Number(triangle.MedianLength(xs[0], xs[1], xs[2]))
}

func (t *TriangleOps) Heron(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "a", "b", "c")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Number(triangle.Heron(xs[0], xs[1], xs[2]))
}

func (t *TriangleOps) Area(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	tri, missing := triangleFrom(params)
	if missing != "" {
		return common.Required(missing, "[x, y]")
	}
	return common.Success(map[string]interface{}{"result": tri.Area()})
}

func (t *TriangleOps) Centroid(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	tri, missing := triangleFrom(params)
	if missing != "" {
		return common.Required(missing, "[x, y]")
	}
	return pointResult(tri.Centroid(), nil)
}

func (t *TriangleOps) Incenter(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	tri, missing := triangleFrom(params)
	if missing != "" {
		return common.Required(missing, "[x, y]")
	}
	return pointResult(tri.Incenter())
}

func (t *TriangleOps) Circumcenter(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	tri, missing := triangleFrom(params)
	if missing != "" {
		return common.Required(missing, "[x, y]")
	}
	return pointResult(tri.Circumcenter())
}

func (t *TriangleOps) Orthocenter(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	tri, missing := triangleFrom(params)
	if missing != "" {
		return common.Required(missing, "[x, y]")
	}
	return pointResult(tri.Orthocenter())
}
