package advanced

import (
	"context"

	"github.com/GriffinCanCode/formulary/internal/maths/calculus"
	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// maxTaylorOrder bounds the polynomial order accepted per request
const maxTaylorOrder = 30

// CalculusOps handles derivatives, derivative rules and analysis inequalities
type CalculusOps struct {
	*common.MathOps
}

func num(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "number", Description: description, Required: true}
}

func fnParam(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "string", Description: description + " (" + functionNames() + ")", Required: true}
}

func values(names ...string) []types.Parameter {
	out := make([]types.Parameter, len(names))
	for i, name := range names {
		out[i] = num(name, "Value of "+name)
	}
	return out
}

// GetTools returns calculus tool definitions
func (c *CalculusOps) GetTools() []types.Tool {
	x := []types.Parameter{num("x", "Point of evaluation")}
	return []types.Tool{
		{ID: "math.calculus.constantDeriv", Name: "Constant Derivative", Description: "(c)' = 0", Parameters: []types.Parameter{num("c", "Constant")}, Returns: "number"},
		{ID: "math.calculus.powerDeriv", Name: "Power Derivative", Description: "(xⁿ)' = n·xⁿ⁻¹", Parameters: []types.Parameter{num("x", "Point"), num("n", "Exponent")}, Returns: "number"},
		{ID: "math.calculus.expDeriv", Name: "Exponential Derivative", Description: "(eˣ)' = eˣ", Parameters: x, Returns: "number"},
		{ID: "math.calculus.lnDeriv", Name: "Natural Log Derivative", Description: "(ln x)' = 1/x", Parameters: x, Returns: "number"},
		{ID: "math.calculus.logDeriv", Name: "Logarithm Derivative", Description: "(log_a x)' = 1/(x ln a)", Parameters: []types.Parameter{num("x", "Point"), num("base", "Base a")}, Returns: "number"},
		{ID: "math.calculus.sinDeriv", Name: "Sine Derivative", Description: "(sin x)' = cos x", Parameters: x, Returns: "number"},
		{ID: "math.calculus.cosDeriv", Name: "Cosine Derivative", Description: "(cos x)' = -sin x", Parameters: x, Returns: "number"},
		{ID: "math.calculus.tanDeriv", Name: "Tangent Derivative", Description: "(tan x)' = 1/cos² x", Parameters: x, Returns: "number"},
		{ID: "math.calculus.addRule", Name: "Sum Rule", Description: "(f + g)' = f' + g'", Parameters: values("fd", "gd"), Returns: "number"},
		{ID: "math.calculus.subtractRule", Name: "Difference Rule", Description: "(f - g)' = f' - g'", Parameters: values("fd", "gd"), Returns: "number"},
		{ID: "math.calculus.productRule", Name: "Product Rule", Description: "(fg)' = f'g + fg'", Parameters: values("f", "fd", "g", "gd"), Returns: "number"},
		{ID: "math.calculus.quotientRule", Name: "Quotient Rule", Description: "(f/g)' = (f'g - fg')/g²", Parameters: values("f", "fd", "g", "gd"), Returns: "number"},
		{ID: "math.calculus.chainRule", Name: "Chain Rule", Description: "f'(g(x))·g'(x)", Parameters: values("outerDeriv", "innerDeriv"), Returns: "number"},
		{ID: "math.calculus.powerChain", Name: "Power Chain Rule", Description: "(uⁿ)' = n·uⁿ⁻¹·u'", Parameters: values("inner", "innerDeriv", "n"), Returns: "number"},
		{ID: "math.calculus.expChain", Name: "Exponential Chain Rule", Description: "(eᵘ)' = eᵘ·u'", Parameters: values("inner", "innerDeriv"), Returns: "number"},
		{ID: "math.calculus.sinChain", Name: "Sine Chain Rule", Description: "(sin u)' = cos u·u'", Parameters: values("inner", "innerDeriv"), Returns: "number"},
		{ID: "math.calculus.cosChain", Name: "Cosine Chain Rule", Description: "(cos u)' = -sin u·u'", Parameters: values("inner", "innerDeriv"), Returns: "number"},
		{
			ID:          "math.calculus.logMean",
			Name:        "Logarithmic Mean Inequality",
			Description: "Geometric, logarithmic and arithmetic means of two distinct positive numbers",
			Parameters:  []types.Parameter{num("a", "First positive number"), num("b", "Second positive number")},
			Returns:     "object",
		},
		{
			ID:          "math.calculus.jensen",
			Name:        "Jensen's Inequality",
			Description: "f(mean) and mean of f over points",
			Parameters: []types.Parameter{
				fnParam("f", "Function"),
				{Name: "points", Type: "array", Description: "Points", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "math.calculus.lhospital",
			Name:        "L'Hôpital's Rule",
			Description: "lim f/g at x0 for 0/0 or ∞/∞ forms",
			Parameters:  []types.Parameter{fnParam("f", "Numerator"), fnParam("g", "Denominator"), num("x0", "Limit point")},
			Returns:     "number",
		},
		{
			ID:          "math.calculus.taylor",
			Name:        "Taylor Polynomial",
			Description: "Order-n Taylor polynomial of f about x0, evaluated at x",
			Parameters: []types.Parameter{
				fnParam("f", "Function"),
				num("x0", "Expansion point"),
				num("x", "Evaluation point"),
				{Name: "n", Type: "integer", Description: "Order, at most 30", Required: true},
			},
			Returns: "number",
		},
	}
}

func (c *CalculusOps) ConstantDeriv(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Unary(params, "c", calculus.ConstantDeriv)
}

func (c *CalculusOps) PowerDeriv(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "x", "n", calculus.PowerDeriv)
}

func (c *CalculusOps) ExpDeriv(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Unary(params, "x", calculus.ExpDeriv)
}

func (c *CalculusOps) LnDeriv(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.UnaryErr(params, "x", calculus.LnDeriv)
}

func (c *CalculusOps) LogDeriv(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.BinaryErr(params, "x", "base", calculus.LogDeriv)
}

func (c *CalculusOps) SinDeriv(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Unary(params, "x", calculus.SinDeriv)
}

func (c *CalculusOps) CosDeriv(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Unary(params, "x", calculus.CosDeriv)
}

func (c *CalculusOps) TanDeriv(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.UnaryErr(params, "x", calculus.TanDeriv)
}

func (c *CalculusOps) AddRule(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "fd", "gd", calculus.AddDeriv)
}

func (c *CalculusOps) SubtractRule(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "fd", "gd", calculus.SubtractDeriv)
}

// ProductRule returns f'g + fg'
func (c *CalculusOps) ProductRule(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "f", "fd", "g", "gd")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Success(map[string]interface{}{"result": calculus.MultiplyDeriv(xs[0], xs[1], xs[2], xs[3])})
}

// QuotientRule returns (f'g - fg')/g²
func (c *CalculusOps) QuotientRule(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "f", "fd", "g", "gd")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Number(calculus.DivideDeriv(xs[0], xs[1], xs[2], xs[3]))
}

func (c *CalculusOps) ChainRule(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "outerDeriv", "innerDeriv", calculus.CompositeDeriv)
}

func (c *CalculusOps) PowerChain(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "inner", "innerDeriv", "n")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Success(map[string]interface{}{"result": calculus.PowerCompositeDeriv(xs[0], xs[1], xs[2])})
}

func (c *CalculusOps) ExpChain(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "inner", "innerDeriv", calculus.ExpCompositeDeriv)
}

func (c *CalculusOps) SinChain(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "inner", "innerDeriv", calculus.SinCompositeDeriv)
}

func (c *CalculusOps) CosChain(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "inner", "innerDeriv", calculus.CosCompositeDeriv)
}

// LogMean returns the three means ordered G < L < A
func (c *CalculusOps) LogMean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "a", "b")
	if missing != "" {
		return common.Missing(missing)
	}
	m, err := calculus.LogarithmicMeanInequality(xs[0], xs[1])
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{
		"geometric":   m.Geometric,
		"logarithmic": m.Logarithmic,
		"arithmetic":  m.Arithmetic,
	})
}

func named(params map[string]interface{}, key string) (elementary, *types.Result) {
	name, ok := common.GetString(params, key)
	if !ok {
		r, _ := common.Failure(key + " parameter required (function name)")
		return elementary{}, r
	}
	fn, err := lookup(name)
	if err != nil {
		r, _ := common.Failure(err.Error())
		return elementary{}, r
	}
	return fn, nil
}

// Jensen evaluates both sides of Jensen's inequality
func (c *CalculusOps) Jensen(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	fn, failed := named(params, "f")
	if failed != nil {
		return failed, nil
	}
	points, ok := common.GetNumbers(params, "points")
	if !ok {
		return common.Failure("points parameter required (array of numbers)")
	}
	fOfMean, meanOfF, err := calculus.JensenInequality(fn.f, points)
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{"f_of_mean": fOfMean, "mean_of_f": meanOfF})
}

// LHospital resolves an indeterminate quotient of named functions
func (c *CalculusOps) LHospital(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	f, failed := named(params, "f")
	if failed != nil {
		return failed, nil
	}
	g, failed := named(params, "g")
	if failed != nil {
		return failed, nil
	}
	x0, ok := common.GetNumber(params, "x0")
	if !ok {
		return common.Missing("x0")
	}
	return common.Number(calculus.LHospital(f.f, g.f, f.nth(1), g.nth(1), x0))
}

// Taylor evaluates a Taylor polynomial of a named function
func (c *CalculusOps) Taylor(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	fn, failed := named(params, "f")
	if failed != nil {
		return failed, nil
	}
	xs, missing := common.Numbers(params, "x0", "x")
	if missing != "" {
		return common.Missing(missing)
	}
	n, ok := common.GetInt(params, "n")
	if !ok || n < 0 || n > maxTaylorOrder {
		return common.Failure("n parameter required (integer in [0, 30])")
	}
	return common.Number(calculus.TaylorSeries(fn.f, fn.derivatives(n), xs[0], xs[1], n))
}
