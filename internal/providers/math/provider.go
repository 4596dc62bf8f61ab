package math

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/formulary/internal/providers/math/advanced"
	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/internal/providers/math/geometry"
	"github.com/GriffinCanCode/formulary/internal/providers/math/operations"
	"github.com/GriffinCanCode/formulary/internal/providers/math/spatial"
	"github.com/GriffinCanCode/formulary/internal/providers/math/statistics"
	"github.com/GriffinCanCode/formulary/internal/providers/math/utilities"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// Provider exposes the formula collection as a single math service
type Provider struct {
	// Module instances
	space         *spatial.SpaceOps
	trig          *operations.TrigOps
	algebra       *operations.AlgebraOps
	probability   *statistics.ProbabilityOps
	random        *statistics.RandomOps
	regression    *statistics.RegressionOps
	calculus      *advanced.CalculusOps
	combinatorics *advanced.CombinatoricsOps
	triangle      *geometry.TriangleOps
	analytic      *geometry.AnalyticOps
	solid         *geometry.SolidOps
	constants     *utilities.ConstantsOps
	conversions   *utilities.ConversionsOps
}

// NewProvider creates a modular math provider
func NewProvider() *Provider {
	ops := &common.MathOps{}

	return &Provider{
		space:         &spatial.SpaceOps{MathOps: ops},
		trig:          &operations.TrigOps{MathOps: ops},
		algebra:       &operations.AlgebraOps{MathOps: ops},
		probability:   &statistics.ProbabilityOps{MathOps: ops},
		random:        &statistics.RandomOps{MathOps: ops},
		regression:    &statistics.RegressionOps{MathOps: ops},
		calculus:      &advanced.CalculusOps{MathOps: ops},
		combinatorics: &advanced.CombinatoricsOps{MathOps: ops},
		triangle:      &geometry.TriangleOps{MathOps: ops},
		analytic:      &geometry.AnalyticOps{MathOps: ops},
		solid:         &geometry.SolidOps{MathOps: ops},
		constants:     &utilities.ConstantsOps{MathOps: ops},
		conversions:   &utilities.ConversionsOps{MathOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.space.GetTools()...)
	tools = append(tools, m.trig.GetTools()...)
	tools = append(tools, m.algebra.GetTools()...)
	tools = append(tools, m.probability.GetTools()...)
	tools = append(tools, m.random.GetTools()...)
	tools = append(tools, m.regression.GetTools()...)
	tools = append(tools, m.calculus.GetTools()...)
	tools = append(tools, m.combinatorics.GetTools()...)
	tools = append(tools, m.triangle.GetTools()...)
	tools = append(tools, m.analytic.GetTools()...)
	tools = append(tools, m.solid.GetTools()...)
	tools = append(tools, m.constants.GetTools()...)
	tools = append(tools, m.conversions.GetTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Formula evaluation (3D vectors and planes, trigonometry, algebra, probability, calculus, combinatorics, plane and solid geometry)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"vectors",
			"planes",
			"spatial relations",
			"trigonometry",
			"algebra",
			"probability",
			"regression",
			"calculus",
			"combinatorics",
			"triangles",
			"conics",
			"solids",
		},
		Tools: tools,
		DataModels: []types.DataModel{
			{Name: "vector", Fields: map[string]string{"x": "number", "y": "number", "z": "number"}},
			{Name: "plane", Fields: map[string]string{"a": "number", "b": "number", "c": "number", "d": "number"}},
			{Name: "point", Fields: map[string]string{"x": "number", "y": "number"}},
			{Name: "complex", Fields: map[string]string{"re": "number", "im": "number"}},
		},
	}
}

// Execute routes to appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Space: vectors
	case "math.space.add":
		return m.space.Add(ctx, params, appCtx)
	case "math.space.sub":
		return m.space.Sub(ctx, params, appCtx)
	case "math.space.scale":
		return m.space.Scale(ctx, params, appCtx)
	case "math.space.dot":
		return m.space.Dot(ctx, params, appCtx)
	case "math.space.cross":
		return m.space.Cross(ctx, params, appCtx)
	case "math.space.magnitude":
		return m.space.Magnitude(ctx, params, appCtx)
	case "math.space.normalize":
		return m.space.Normalize(ctx, params, appCtx)
	case "math.space.isCollinear":
		return m.space.IsCollinear(ctx, params, appCtx)
	case "math.space.cosAngle":
		return m.space.CosAngle(ctx, params, appCtx)
	case "math.space.plane":
		return m.space.Plane(ctx, params, appCtx)
	case "math.space.contains":
		return m.space.Contains(ctx, params, appCtx)

	// Space: relations
	case "math.space.lineParallelToPlane":
		return m.space.LineParallelToPlane(ctx, params, appCtx)
	case "math.space.planesParallel":
		return m.space.PlanesParallel(ctx, params, appCtx)
	case "math.space.planesPerpendicular":
		return m.space.PlanesPerpendicular(ctx, params, appCtx)
	case "math.space.linePerpendicularToPlane":
		return m.space.LinePerpendicularToPlane(ctx, params, appCtx)
	case "math.space.linePerpendicularByIntersection":
		return m.space.LinePerpendicularByIntersection(ctx, params, appCtx)
	case "math.space.linesPerpendicularToPlane":
		return m.space.LinesPerpendicularToPlane(ctx, params, appCtx)
	case "math.space.planeIntersections":
		return m.space.PlaneIntersections(ctx, params, appCtx)
	case "math.space.linePlaneIntersection":
		return m.space.LinePlaneIntersection(ctx, params, appCtx)

	// Space: angles and projections
	case "math.space.project":
		return m.space.Project(ctx, params, appCtx)
	case "math.space.projectedArea":
		return m.space.ProjectedArea(ctx, params, appCtx)
	case "math.space.lineAngle":
		return m.space.LineAngle(ctx, params, appCtx)
	case "math.space.skewAngle":
		return m.space.SkewAngle(ctx, params, appCtx)
	case "math.space.threePerpendiculars":
		return m.space.ThreePerpendiculars(ctx, params, appCtx)
	case "math.space.threeCosine":
		return m.space.ThreeCosine(ctx, params, appCtx)
	case "math.space.threeSine":
		return m.space.ThreeSine(ctx, params, appCtx)

	// Trig
	case "math.trig.tan":
		return m.trig.Tan(ctx, params, appCtx)
	case "math.trig.degToRad":
		return m.trig.DegToRad(ctx, params, appCtx)
	case "math.trig.radToDeg":
		return m.trig.RadToDeg(ctx, params, appCtx)
	case "math.trig.sinToCos":
		return m.trig.SinToCos(ctx, params, appCtx)
	case "math.trig.cosToSin":
		return m.trig.CosToSin(ctx, params, appCtx)
	case "math.trig.sinAdd":
		return m.trig.SinAdd(ctx, params, appCtx)
	case "math.trig.sinSub":
		return m.trig.SinSub(ctx, params, appCtx)
	case "math.trig.cosAdd":
		return m.trig.CosAdd(ctx, params, appCtx)
	case "math.trig.cosSub":
		return m.trig.CosSub(ctx, params, appCtx)
	case "math.trig.sinDouble":
		return m.trig.SinDouble(ctx, params, appCtx)
	case "math.trig.cosDouble":
		return m.trig.CosDouble(ctx, params, appCtx)
	case "math.trig.tanDouble":
		return m.trig.TanDouble(ctx, params, appCtx)
	case "math.trig.sinHalf":
		return m.trig.SinHalf(ctx, params, appCtx)
	case "math.trig.cosHalf":
		return m.trig.CosHalf(ctx, params, appCtx)
	case "math.trig.tanHalf":
		return m.trig.TanHalf(ctx, params, appCtx)
	case "math.trig.sinSumToProduct":
		return m.trig.SinSumToProduct(ctx, params, appCtx)
	case "math.trig.sinDiffToProduct":
		return m.trig.SinDiffToProduct(ctx, params, appCtx)
	case "math.trig.cosSumToProduct":
		return m.trig.CosSumToProduct(ctx, params, appCtx)
	case "math.trig.cosDiffToProduct":
		return m.trig.CosDiffToProduct(ctx, params, appCtx)
	case "math.trig.sinCosToSum":
		return m.trig.SinCosToSum(ctx, params, appCtx)
	case "math.trig.sinSinToSum":
		return m.trig.SinSinToSum(ctx, params, appCtx)
	case "math.trig.cosCosToSum":
		return m.trig.CosCosToSum(ctx, params, appCtx)
	case "math.trig.sinFromTanHalf":
		return m.trig.SinFromTanHalf(ctx, params, appCtx)
	case "math.trig.cosFromTanHalf":
		return m.trig.CosFromTanHalf(ctx, params, appCtx)
	case "math.trig.tanFromTanHalf":
		return m.trig.TanFromTanHalf(ctx, params, appCtx)
	case "math.trig.auxiliary":
		return m.trig.Auxiliary(ctx, params, appCtx)
	case "math.trig.inverseAuxiliary":
		return m.trig.InverseAuxiliary(ctx, params, appCtx)
	case "math.trig.period":
		return m.trig.Period(ctx, params, appCtx)

	// Algebra
	case "math.algebra.cubicDifference":
		return m.algebra.CubicDifference(ctx, params, appCtx)
	case "math.algebra.subsetCount":
		return m.algebra.SubsetCount(ctx, params, appCtx)
	case "math.algebra.means":
		return m.algebra.Means(ctx, params, appCtx)
	case "math.algebra.cauchy":
		return m.algebra.Cauchy(ctx, params, appCtx)
	case "math.algebra.log":
		return m.algebra.Log(ctx, params, appCtx)
	case "math.algebra.checkLog":
		return m.algebra.CheckLog(ctx, params, appCtx)
	case "math.algebra.growthRate":
		return m.algebra.GrowthRate(ctx, params, appCtx)
	case "math.algebra.complexAdd":
		return m.algebra.ComplexAdd(ctx, params, appCtx)
	case "math.algebra.complexMultiply":
		return m.algebra.ComplexMultiply(ctx, params, appCtx)
	case "math.algebra.complexDivide":
		return m.algebra.ComplexDivide(ctx, params, appCtx)
	case "math.algebra.complexConjugate":
		return m.algebra.ComplexConjugate(ctx, params, appCtx)
	case "math.algebra.complexModulus":
		return m.algebra.ComplexModulus(ctx, params, appCtx)
	case "math.algebra.arithmeticTerm":
		return m.algebra.ArithmeticTerm(ctx, params, appCtx)
	case "math.algebra.arithmeticSum":
		return m.algebra.ArithmeticSum(ctx, params, appCtx)
	case "math.algebra.geometricTerm":
		return m.algebra.GeometricTerm(ctx, params, appCtx)
	case "math.algebra.geometricSum":
		return m.algebra.GeometricSum(ctx, params, appCtx)
	case "math.algebra.recurrence":
		return m.algebra.Recurrence(ctx, params, appCtx)

	// Probability
	case "math.probability.independent":
		return m.probability.Independent(ctx, params, appCtx)
	case "math.probability.classical":
		return m.probability.Classical(ctx, params, appCtx)
	case "math.probability.conditional":
		return m.probability.Conditional(ctx, params, appCtx)
	case "math.probability.multiplication":
		return m.probability.Multiplication(ctx, params, appCtx)
	case "math.probability.total":
		return m.probability.Total(ctx, params, appCtx)
	case "math.probability.bayes":
		return m.probability.Bayes(ctx, params, appCtx)

	// Random variables
	case "math.random.expectation":
		return m.random.Expectation(ctx, params, appCtx)
	case "math.random.variance":
		return m.random.Variance(ctx, params, appCtx)
	case "math.random.meanScalar":
		return m.random.MeanScalar(ctx, params, appCtx)
	case "math.random.meanSum":
		return m.random.MeanSum(ctx, params, appCtx)
	case "math.random.meanLinear":
		return m.random.MeanLinear(ctx, params, appCtx)
	case "math.random.varianceScalar":
		return m.random.VarianceScalar(ctx, params, appCtx)
	case "math.random.varianceSum":
		return m.random.VarianceSum(ctx, params, appCtx)
	case "math.random.varianceLinear":
		return m.random.VarianceLinear(ctx, params, appCtx)

	// Regression and sample statistics
	case "math.stats.leastSquares":
		return m.regression.LeastSquares(ctx, params, appCtx)
	case "math.stats.predict":
		return m.regression.Predict(ctx, params, appCtx)
	case "math.stats.chiSquared":
		return m.regression.ChiSquared(ctx, params, appCtx)
	case "math.stats.percentile":
		return m.regression.Percentile(ctx, params, appCtx)
	case "math.stats.mean":
		return m.regression.Mean(ctx, params, appCtx)
	case "math.stats.variance":
		return m.regression.Variance(ctx, params, appCtx)

	// Calculus
	case "math.calculus.constantDeriv":
		return m.calculus.ConstantDeriv(ctx, params, appCtx)
	case "math.calculus.powerDeriv":
		return m.calculus.PowerDeriv(ctx, params, appCtx)
	case "math.calculus.expDeriv":
		return m.calculus.ExpDeriv(ctx, params, appCtx)
	case "math.calculus.lnDeriv":
		return m.calculus.LnDeriv(ctx, params, appCtx)
	case "math.calculus.logDeriv":
		return m.calculus.LogDeriv(ctx, params, appCtx)
	case "math.calculus.sinDeriv":
		return m.calculus.SinDeriv(ctx, params, appCtx)
	case "math.calculus.cosDeriv":
		return m.calculus.CosDeriv(ctx, params, appCtx)
	case "math.calculus.tanDeriv":
		return m.calculus.TanDeriv(ctx, params, appCtx)
	case "math.calculus.addRule":
		return m.calculus.AddRule(ctx, params, appCtx)
	case "math.calculus.subtractRule":
		return m.calculus.SubtractRule(ctx, params, appCtx)
	case "math.calculus.productRule":
		return m.calculus.ProductRule(ctx, params, appCtx)
	case "math.calculus.quotientRule":
		return m.calculus.QuotientRule(ctx, params, appCtx)
	case "math.calculus.chainRule":
		return m.calculus.ChainRule(ctx, params, appCtx)
	case "math.calculus.powerChain":
		return m.calculus.PowerChain(ctx, params, appCtx)
	case "math.calculus.expChain":
		return m.calculus.ExpChain(ctx, params, appCtx)
	case "math.calculus.sinChain":
		return m.calculus.SinChain(ctx, params, appCtx)
	case "math.calculus.cosChain":
		return m.calculus.CosChain(ctx, params, appCtx)
	case "math.calculus.logMean":
		return m.calculus.LogMean(ctx, params, appCtx)
	case "math.calculus.jensen":
		return m.calculus.Jensen(ctx, params, appCtx)
	case "math.calculus.lhospital":
		return m.calculus.LHospital(ctx, params, appCtx)
	case "math.calculus.taylor":
		return m.calculus.Taylor(ctx, params, appCtx)

	// Combinatorics
	case "math.combinatorics.permutation":
		return m.combinatorics.Permutation(ctx, params, appCtx)
	case "math.combinatorics.combination":
		return m.combinatorics.Combination(ctx, params, appCtx)
	case "math.combinatorics.pascal":
		return m.combinatorics.Pascal(ctx, params, appCtx)
	case "math.combinatorics.derangement":
		return m.combinatorics.Derangement(ctx, params, appCtx)
	case "math.combinatorics.binomial":
		return m.combinatorics.Binomial(ctx, params, appCtx)
	case "math.combinatorics.addition":
		return m.combinatorics.Addition(ctx, params, appCtx)
	case "math.combinatorics.multiplication":
		return m.combinatorics.Multiplication(ctx, params, appCtx)

	// Triangle
	case "math.triangle.lawOfSines":
		return m.triangle.LawOfSines(ctx, params, appCtx)
	case "math.triangle.lawOfCosines":
		return m.triangle.LawOfCosines(ctx, params, appCtx)
	case "math.triangle.projection":
		return m.triangle.Projection(ctx, params, appCtx)
	case "math.triangle.median":
		return m.triangle.Median(ctx, params, appCtx)
	case "math.triangle.heron":
		return m.triangle.Heron(ctx, params, appCtx)
	case "math.triangle.area":
		return m.triangle.Area(ctx, params, appCtx)
	case "math.triangle.centroid":
		return m.triangle.Centroid(ctx, params, appCtx)
	case "math.triangle.incenter":
		return m.triangle.Incenter(ctx, params, appCtx)
	case "math.triangle.circumcenter":
		return m.triangle.Circumcenter(ctx, params, appCtx)
	case "math.triangle.orthocenter":
		return m.triangle.Orthocenter(ctx, params, appCtx)

	// Analytic geometry
	case "math.analytic.slope":
		return m.analytic.Slope(ctx, params, appCtx)
	case "math.analytic.parametricLine":
		return m.analytic.ParametricLine(ctx, params, appCtx)
	case "math.analytic.pointToLine":
		return m.analytic.PointToLine(ctx, params, appCtx)
	case "math.analytic.ellipseEccentricity":
		return m.analytic.EllipseEccentricity(ctx, params, appCtx)
	case "math.analytic.hyperbolaEccentricity":
		return m.analytic.HyperbolaEccentricity(ctx, params, appCtx)
	case "math.analytic.parabolaEccentricity":
		return m.analytic.ParabolaEccentricity(ctx, params, appCtx)
	case "math.analytic.ellipsePoint":
		return m.analytic.EllipsePoint(ctx, params, appCtx)
	case "math.analytic.hyperbolaPoint":
		return m.analytic.HyperbolaPoint(ctx, params, appCtx)
	case "math.analytic.parabolaPoint":
		return m.analytic.ParabolaPoint(ctx, params, appCtx)
	case "math.analytic.ellipseFocalRadius":
		return m.analytic.EllipseFocalRadius(ctx, params, appCtx)
	case "math.analytic.hyperbolaFocalRadius":
		return m.analytic.HyperbolaFocalRadius(ctx, params, appCtx)
	case "math.analytic.chordSlope":
		return m.analytic.ChordSlope(ctx, params, appCtx)
	case "math.analytic.ellipseTangent":
		return m.analytic.EllipseTangent(ctx, params, appCtx)
	case "math.analytic.hyperbolaTangent":
		return m.analytic.HyperbolaTangent(ctx, params, appCtx)
	case "math.analytic.parabolaTangent":
		return m.analytic.ParabolaTangent(ctx, params, appCtx)

	// Solid geometry
	case "math.solid.cylinderSurface":
		return m.solid.CylinderSurface(ctx, params, appCtx)
	case "math.solid.frustumVolume":
		return m.solid.FrustumVolume(ctx, params, appCtx)
	case "math.solid.sphereSurface":
		return m.solid.SphereSurface(ctx, params, appCtx)
	case "math.solid.sphereVolume":
		return m.solid.SphereVolume(ctx, params, appCtx)
	case "math.solid.euler":
		return m.solid.Euler(ctx, params, appCtx)

	// Constants
	case "math.pi":
		return m.constants.Pi(ctx, params, appCtx)
	case "math.e":
		return m.constants.E(ctx, params, appCtx)
	case "math.tau":
		return m.constants.Tau(ctx, params, appCtx)
	case "math.phi":
		return m.constants.Phi(ctx, params, appCtx)
	case "math.epsilon":
		return m.constants.Epsilon(ctx, params, appCtx)

	// Conversions
	case "math.radians":
		return m.conversions.DegreesToRadians(ctx, params, appCtx)
	case "math.degrees":
		return m.conversions.RadiansToDegrees(ctx, params, appCtx)
	case "math.normalizeRadians":
		return m.conversions.NormalizeRadians(ctx, params, appCtx)
	case "math.normalizeDegrees":
		return m.conversions.NormalizeDegrees(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
