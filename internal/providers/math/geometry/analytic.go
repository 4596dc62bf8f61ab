package geometry

import (
	"context"

	"github.com/GriffinCanCode/formulary/internal/maths/analytic"
	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// AnalyticOps handles lines and conic sections in the plane
type AnalyticOps struct {
	*common.MathOps
}

// GetTools returns analytic geometry tool definitions
func (a *AnalyticOps) GetTools() []types.Tool {
	ab := []types.Parameter{num("a", "Semi-major axis a"), num("b", "Semi-minor axis b")}
	return []types.Tool{
		{
			ID:          "math.analytic.slope",
			Name:        "Slope",
			Description: "Slope of the line through two points",
			Parameters:  []types.Parameter{num("x1", "x₁"), num("y1", "y₁"), num("x2", "x₂"), num("y2", "y₂")},
			Returns:     "number",
		},
		{
			ID:          "math.analytic.parametricLine",
			Name:        "Parametric Line",
			Description: "(x₀ + at, y₀ + bt)",
			Parameters:  []types.Parameter{num("x0", "x₀"), num("y0", "y₀"), num("a", "Direction x"), num("b", "Direction y"), num("t", "Parameter")},
			Returns:     "point",
		},
		{
			ID:          "math.analytic.pointToLine",
			Name:        "Point to Line Distance",
			Description: "|Ax₀ + By₀ + C|/√(A² + B²)",
			Parameters:  []types.Parameter{num("x0", "x₀"), num("y0", "y₀"), num("a", "A"), num("b", "B"), num("c", "C")},
			Returns:     "number",
		},
		{ID: "math.analytic.ellipseEccentricity", Name: "Ellipse Eccentricity", Description: "√(1 - b²/a²) for a > b > 0", Parameters: ab, Returns: "number"},
		{ID: "math.analytic.hyperbolaEccentricity", Name: "Hyperbola Eccentricity", Description: "√(1 + b²/a²)", Parameters: ab, Returns: "number"},
		{ID: "math.analytic.parabolaEccentricity", Name: "Parabola Eccentricity", Description: "Always 1", Parameters: []types.Parameter{}, Returns: "number"},
		{ID: "math.analytic.ellipsePoint", Name: "Parametric Ellipse", Description: "(a cos t, b sin t)", Parameters: append(ab, num("t", "Parameter")), Returns: "point"},
		{ID: "math.analytic.hyperbolaPoint", Name: "Parametric Hyperbola", Description: "(a sec t, b tan t)", Parameters: append(ab, num("t", "Parameter")), Returns: "point"},
		{ID: "math.analytic.parabolaPoint", Name: "Parametric Parabola", Description: "(2pt², 2pt) on y² = 2px", Parameters: []types.Parameter{num("p", "Focal parameter"), num("t", "Parameter")}, Returns: "point"},
		{
			ID:          "math.analytic.ellipseFocalRadius",
			Name:        "Ellipse Focal Radius",
			Description: "a(1 - e²)/(1 - e cos θ)",
			Parameters:  []types.Parameter{num("a", "Semi-major axis"), num("e", "Eccentricity in (0, 1)"), num("theta", "Polar angle")},
			Returns:     "number",
		},
		{
			ID:          "math.analytic.hyperbolaFocalRadius",
			Name:        "Hyperbola Focal Radius",
			Description: "a(e² - 1)/|1 - e cos θ|",
			Parameters:  []types.Parameter{num("a", "Semi-transverse axis"), num("e", "Eccentricity above 1"), num("theta", "Polar angle")},
			Returns:     "number",
		},
		{
			ID:          "math.analytic.chordSlope",
			Name:        "Chord Midpoint Slope",
			Description: "Slope -b²x₀/(a²y₀) of the ellipse chord bisected at (x₀, y₀)",
			Parameters:  append([]types.Parameter{num("x0", "Midpoint x"), num("y0", "Midpoint y")}, ab...),
			Returns:     "number",
		},
		{
			ID:          "math.analytic.ellipseTangent",
			Name:        "Ellipse Tangent",
			Description: "Coefficients of x₀x/a² + y₀y/b² = 1",
			Parameters:  append([]types.Parameter{num("x0", "x₀"), num("y0", "y₀")}, ab...),
			Returns:     "object",
		},
		{
			ID:          "math.analytic.hyperbolaTangent",
			Name:        "Hyperbola Tangent",
			Description: "Coefficients of x₀x/a² - y₀y/b² = 1",
			Parameters:  append([]types.Parameter{num("x0", "x₀"), num("y0", "y₀")}, ab...),
			Returns:     "object",
		},
		{
			ID:          "math.analytic.parabolaTangent",
			Name:        "Parabola Tangent",
			Description: "Coefficients of y₀y = p(x + x₀)",
			Parameters:  []types.Parameter{num("x0", "x₀"), num("y0", "y₀"), num("p", "Focal parameter")},
			Returns:     "object",
		},
	}
}

func chordResult(c analytic.Chord, err error) (*types.Result, error) {
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{"a": c.A, "b": c.B, "c": c.C})
}

func conicPoint(p analytic.Point, err error) (*types.Result, error) {
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{"result": common.PointData(p)})
}

func (a *AnalyticOps) Slope(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "x1", "y1", "x2", "y2")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Number(analytic.Slope(xs[0], xs[1], xs[2], xs[3]))
}

func (a *AnalyticOps) ParametricLine(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "x0", "y0", "a", "b", "t")
	if missing != "" {
		return common.Missing(missing)
	}
	return conicPoint(analytic.ParametricLine(xs[0], xs[1], xs[2], xs[3], xs[4]), nil)
}

func (a *AnalyticOps) PointToLine(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "x0", "y0", "a", "b", "c")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Number(analytic.PointToLineDistance(xs[0], xs[1], xs[2], xs[3], xs[4]))
}

func (a *AnalyticOps) EllipseEccentricity(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.BinaryErr(params, "a", "b", analytic.EccentricityEllipse)
}

func (a *AnalyticOps) HyperbolaEccentricity(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.BinaryErr(params, "a", "b", analytic.EccentricityHyperbola)
}

func (a *AnalyticOps) ParabolaEccentricity(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": analytic.EccentricityParabola()})
}

func (a *AnalyticOps) EllipsePoint(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "a", "b", "t")
	if missing != "" {
		return common.Missing(missing)
	}
	return conicPoint(analytic.ParametricEllipse(xs[0], xs[1], xs[2]))
}

func (a *AnalyticOps) HyperbolaPoint(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "a", "b", "t")
	if missing != "" {
		return common.Missing(missing)
	}
	return conicPoint(analytic.ParametricHyperbola(xs[0], xs[1], xs[2]))
}

func (a *AnalyticOps) ParabolaPoint(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "p", "t")
	if missing != "" {
		return common.Missing(missing)
	}
	return conicPoint(analytic.ParametricParabola(xs[0], xs[1]))
}

func (a *AnalyticOps) EllipseFocalRadius(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "a", "e", "theta")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Number(analytic.FocalRadiusEllipse(xs[0], xs[1], xs[2]))
}

func (a *AnalyticOps) HyperbolaFocalRadius(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "a", "e", "theta")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Number(analytic.FocalRadiusHyperbola(xs[0], xs[1], xs[2]))
}

func (a *AnalyticOps) ChordSlope(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "x0", "y0", "a", "b")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Number(analytic.PointDifferenceEllipse(xs[0], xs[1], xs[2], xs[3]))
}

func (a *AnalyticOps) EllipseTangent(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "x0", "y0", "a", "b")
	if missing != "" {
		return common.Missing(missing)
	}
	return chordResult(analytic.TangentChordEllipse(xs[0], xs[1], xs[2], xs[3]))
}

func (a *AnalyticOps) HyperbolaTangent(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "x0", "y0", "a", "b")
	if missing != "" {
		return common.Missing(missing)
	}
	return chordResult(analytic.TangentChordHyperbola(xs[0], xs[1], xs[2], xs[3]))
}

func (a *AnalyticOps) ParabolaTangent(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "x0", "y0", "p")
	if missing != "" {
		return common.Missing(missing)
	}
	return chordResult(analytic.TangentChordParabola(xs[0], xs[1], xs[2]))
}
