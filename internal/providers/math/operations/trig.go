package operations

import (
	"context"

	"github.com/GriffinCanCode/formulary/internal/maths/trig"
	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// TrigOps handles trigonometric identities and conversions
type TrigOps struct {
	*common.MathOps
}

func num(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "number", Description: description, Required: true}
}

func angles() []types.Parameter {
	return []types.Parameter{num("a", "First angle in radians"), num("b", "Second angle in radians")}
}

// GetTools returns trig tool definitions
func (t *TrigOps) GetTools() []types.Tool {
	return []types.Tool{
		{ID: "math.trig.tan", Name: "Tangent", Description: "Tangent, undefined where cos x is zero", Parameters: []types.Parameter{num("x", "Angle in radians")}, Returns: "number"},
		{ID: "math.trig.degToRad", Name: "Degrees to Radians", Description: "Convert degrees to radians", Parameters: []types.Parameter{num("degrees", "Angle in degrees")}, Returns: "number"},
		{ID: "math.trig.radToDeg", Name: "Radians to Degrees", Description: "Convert radians to degrees", Parameters: []types.Parameter{num("radians", "Angle in radians")}, Returns: "number"},
		{ID: "math.trig.sinToCos", Name: "Sine to Cosine", Description: "Non-negative root of 1 - sin²", Parameters: []types.Parameter{num("sin", "Sine value in [-1, 1]")}, Returns: "number"},
		{ID: "math.trig.cosToSin", Name: "Cosine to Sine", Description: "Non-negative root of 1 - cos²", Parameters: []types.Parameter{num("cos", "Cosine value in [-1, 1]")}, Returns: "number"},
		{ID: "math.trig.sinAdd", Name: "Sine of Sum", Description: "sin(a + b)", Parameters: angles(), Returns: "number"},
		{ID: "math.trig.sinSub", Name: "Sine of Difference", Description: "sin(a - b)", Parameters: angles(), Returns: "number"},
		{ID: "math.trig.cosAdd", Name: "Cosine of Sum", Description: "cos(a + b)", Parameters: angles(), Returns: "number"},
		{ID: "math.trig.cosSub", Name: "Cosine of Difference", Description: "cos(a - b)", Parameters: angles(), Returns: "number"},
		{ID: "math.trig.sinDouble", Name: "Double Angle Sine", Description: "sin 2x", Parameters: []types.Parameter{num("x", "Angle in radians")}, Returns: "number"},
		{ID: "math.trig.cosDouble", Name: "Double Angle Cosine", Description: "cos 2x", Parameters: []types.Parameter{num("x", "Angle in radians")}, Returns: "number"},
		{ID: "math.trig.tanDouble", Name: "Double Angle Tangent", Description: "tan 2x", Parameters: []types.Parameter{num("x", "Angle in radians")}, Returns: "number"},
		{ID: "math.trig.sinHalf", Name: "Half Angle Sine", Description: "√((1 - cos x)/2) from cos x", Parameters: []types.Parameter{num("cos", "Cosine of the full angle")}, Returns: "number"},
		{ID: "math.trig.cosHalf", Name: "Half Angle Cosine", Description: "√((1 + cos x)/2) from cos x", Parameters: []types.Parameter{num("cos", "Cosine of the full angle")}, Returns: "number"},
		{ID: "math.trig.tanHalf", Name: "Half Angle Tangent", Description: "√((1 - cos x)/(1 + cos x)) from cos x", Parameters: []types.Parameter{num("cos", "Cosine of the full angle")}, Returns: "number"},
		{ID: "math.trig.sinSumToProduct", Name: "Sine Sum to Product", Description: "sin a + sin b as a product", Parameters: angles(), Returns: "number"},
		{ID: "math.trig.sinDiffToProduct", Name: "Sine Difference to Product", Description: "sin a - sin b as a product", Parameters: angles(), Returns: "number"},
		{ID: "math.trig.cosSumToProduct", Name: "Cosine Sum to Product", Description: "cos a + cos b as a product", Parameters: angles(), Returns: "number"},
		{ID: "math.trig.cosDiffToProduct", Name: "Cosine Difference to Product", Description: "cos a - cos b as a product", Parameters: angles(), Returns: "number"},
		{ID: "math.trig.sinCosToSum", Name: "Sine Cosine Product to Sum", Description: "sin a·cos b as ½sin(a+b) + ½sin(a-b)", Parameters: angles(), Returns: "object"},
		{ID: "math.trig.sinSinToSum", Name: "Sine Sine Product to Sum", Description: "sin a·sin b as ½cos(a-b) - ½cos(a+b)", Parameters: angles(), Returns: "object"},
		{ID: "math.trig.cosCosToSum", Name: "Cosine Cosine Product to Sum", Description: "cos a·cos b as ½cos(a-b) + ½cos(a+b)", Parameters: angles(), Returns: "object"},
		{ID: "math.trig.sinFromTanHalf", Name: "Sine from Half Tangent", Description: "2t/(1 + t²)", Parameters: []types.Parameter{num("t", "tan(x/2)")}, Returns: "number"},
		{ID: "math.trig.cosFromTanHalf", Name: "Cosine from Half Tangent", Description: "(1 - t²)/(1 + t²)", Parameters: []types.Parameter{num("t", "tan(x/2)")}, Returns: "number"},
		{ID: "math.trig.tanFromTanHalf", Name: "Tangent from Half Tangent", Description: "2t/(1 - t²)", Parameters: []types.Parameter{num("t", "tan(x/2)")}, Returns: "number"},
		{
			ID:          "math.trig.auxiliary",
			Name:        "Auxiliary Angle",
			Description: "Rewrite a·sin x + b·cos x as R·sin(x + φ)",
			Parameters:  []types.Parameter{num("a", "Sine coefficient"), num("b", "Cosine coefficient")},
			Returns:     "object",
		},
		{
			ID:          "math.trig.inverseAuxiliary",
			Name:        "Inverse Auxiliary Angle",
			Description: "Recover a and b from amplitude and phase",
			Parameters:  []types.Parameter{num("amplitude", "R"), num("phase", "φ in radians")},
			Returns:     "object",
		},
		{ID: "math.trig.period", Name: "Period", Description: "Smallest positive period 2π/|ω|", Parameters: []types.Parameter{num("omega", "Angular frequency")}, Returns: "number"},
	}
}

func terms(params map[string]interface{}, fn func(a, b float64) (float64, float64)) (*types.Result, error) {
	xs, missing := common.Numbers(params, "a", "b")
	if missing != "" {
		return common.Missing(missing)
	}
	first, second := fn(xs[0], xs[1])
	return common.Success(map[string]interface{}{
		"first":  first,
		"second": second,
		"result": first + second,
	})
}

// Tan returns tan x
func (t *TrigOps) Tan(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.UnaryErr(params, "x", trig.Tan)
}

// DegToRad converts degrees to radians
func (t *TrigOps) DegToRad(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Unary(params, "degrees", trig.DegToRad)
}

// RadToDeg converts radians to degrees
func (t *TrigOps) RadToDeg(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Unary(params, "radians", trig.RadToDeg)
}

func (t *TrigOps) SinToCos(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.UnaryErr(params, "sin", trig.SinToCos)
}

func (t *TrigOps) CosToSin(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.UnaryErr(params, "cos", trig.CosToSin)
}

func (t *TrigOps) SinAdd(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "a", "b", trig.SinAdd)
}

func (t *TrigOps) SinSub(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "a", "b", trig.SinSub)
}

func (t *TrigOps) CosAdd(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "a", "b", trig.CosAdd)
}

func (t *TrigOps) CosSub(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "a", "b", trig.CosSub)
}

func (t *TrigOps) SinDouble(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Unary(params, "x", trig.SinDouble)
}

func (t *TrigOps) CosDouble(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Unary(params, "x", trig.CosDouble)
}

func (t *TrigOps) TanDouble(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.UnaryErr(params, "x", trig.TanDouble)
}

func (t *TrigOps) SinHalf(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.UnaryErr(params, "cos", trig.SinHalf)
}

func (t *TrigOps) CosHalf(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.UnaryErr(params, "cos", trig.CosHalf)
}

func (t *TrigOps) TanHalf(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.UnaryErr(params, "cos", trig.TanHalf)
}

// SinSumToProduct returns 2·sin((a+b)/2)·cos((a-b)/2)
func (t *TrigOps) SinSumToProduct(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "a", "b", trig.SinSumToProduct)
}

func (t *TrigOps) SinDiffToProduct(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "a", "b", trig.SinDiffToProduct)
}

func (t *TrigOps) CosSumToProduct(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "a", "b", trig.CosSumToProduct)
}

func (t *TrigOps) CosDiffToProduct(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "a", "b", trig.CosDiffToProduct)
}

// SinCosToSum returns both half terms and the product they sum to
func (t *TrigOps) SinCosToSum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return terms(params, trig.SinCosToSum)
}

func (t *TrigOps) SinSinToSum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return terms(params, trig.SinSinToSum)
}

func (t *TrigOps) CosCosToSum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return terms(params, trig.CosCosToSum)
}

func (t *TrigOps) SinFromTanHalf(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Unary(params, "t", trig.SinFromTanHalf)
}

func (t *TrigOps) CosFromTanHalf(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Unary(params, "t", trig.CosFromTanHalf)
}

func (t *TrigOps) TanFromTanHalf(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.UnaryErr(params, "t", trig.TanFromTanHalf)
}

// Auxiliary returns amplitude and phase
func (t *TrigOps) Auxiliary(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "a", "b")
	if missing != "" {
		return common.Missing(missing)
	}
	aux, err := trig.AuxiliaryAngle(xs[0], xs[1])
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{"amplitude": aux.Amplitude, "phase": aux.Phase})
}

// InverseAuxiliary returns the coefficients a and b
func (t *TrigOps) InverseAuxiliary(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "amplitude", "phase")
	if missing != "" {
		return common.Missing(missing)
	}
	a, b := trig.InverseAuxiliaryAngle(trig.Auxiliary{Amplitude: xs[0], Phase: xs[1]})
	return common.Success(map[string]interface{}{"a": a, "b": b})
}

func (t *TrigOps) Period(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.UnaryErr(params, "omega", trig.Period)
}
