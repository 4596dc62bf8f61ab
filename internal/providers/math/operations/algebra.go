package operations

import (
	"context"

	"github.com/GriffinCanCode/formulary/internal/maths/algebra"
	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// maxRecurrenceIndex bounds the term buffer a single request can allocate
const maxRecurrenceIndex = 1_000_000

// AlgebraOps handles algebraic identities, logarithms, complex numbers and sequences
type AlgebraOps struct {
	*common.MathOps
}

func complexParam(name string) types.Parameter {
	return types.Parameter{Name: name, Type: "complex", Description: "Complex number as [re, im]", Required: true}
}

func sequenceParams(ratio string) []types.Parameter {
	return []types.Parameter{
		num("a1", "First term"),
		num(ratio, "Common difference or ratio"),
		{Name: "n", Type: "integer", Description: "Term index or count, at least 1", Required: true},
	}
}

// GetTools returns algebra tool definitions
func (a *AlgebraOps) GetTools() []types.Tool {
	return []types.Tool{
		{ID: "math.algebra.cubicDifference", Name: "Difference of Cubes", Description: "a³ - b³ as (a-b)(a²+ab+b²)", Parameters: []types.Parameter{num("a", "a"), num("b", "b")}, Returns: "number"},
		{
			ID:          "math.algebra.subsetCount",
			Name:        "Subset Count",
			Description: "Number of subsets of an n-element set",
			Parameters:  []types.Parameter{{Name: "n", Type: "integer", Description: "Set size", Required: true}},
			Returns:     "integer",
		},
		{
			ID:          "math.algebra.means",
			Name:        "Mean Inequalities",
			Description: "Harmonic, geometric, arithmetic and quadratic means of positive numbers",
			Parameters:  []types.Parameter{{Name: "numbers", Type: "array", Description: "Positive numbers", Required: true}},
			Returns:     "object",
		},
		{
			ID:          "math.algebra.cauchy",
			Name:        "Cauchy Equality",
			Description: "(ac+bd)² when ad = bc",
			Parameters:  []types.Parameter{num("a", "a"), num("b", "b"), num("c", "c"), num("d", "d")},
			Returns:     "number",
		},
		{ID: "math.algebra.log", Name: "Logarithm", Description: "log_base(x) by change of base", Parameters: []types.Parameter{num("base", "Positive base other than 1"), num("x", "Positive argument")}, Returns: "number"},
		{ID: "math.algebra.checkLog", Name: "Validate Logarithm", Description: "Whether log_base(x) is defined", Parameters: []types.Parameter{num("base", "Base"), num("x", "Argument")}, Returns: "boolean"},
		{ID: "math.algebra.growthRate", Name: "Average Growth Rate", Description: "(present - previous) / previous", Parameters: []types.Parameter{num("present", "Current value"), num("previous", "Non-zero prior value")}, Returns: "number"},
		{ID: "math.algebra.complexAdd", Name: "Complex Sum", Description: "a + b", Parameters: []types.Parameter{complexParam("a"), complexParam("b")}, Returns: "complex"},
		{ID: "math.algebra.complexMultiply", Name: "Complex Product", Description: "a · b", Parameters: []types.Parameter{complexParam("a"), complexParam("b")}, Returns: "complex"},
		{ID: "math.algebra.complexDivide", Name: "Complex Quotient", Description: "a / b", Parameters: []types.Parameter{complexParam("a"), complexParam("b")}, Returns: "complex"},
		{ID: "math.algebra.complexConjugate", Name: "Complex Conjugate", Description: "Conjugate of z", Parameters: []types.Parameter{complexParam("z")}, Returns: "complex"},
		{ID: "math.algebra.complexModulus", Name: "Complex Modulus", Description: "|z|", Parameters: []types.Parameter{complexParam("z")}, Returns: "number"},
		{ID: "math.algebra.arithmeticTerm", Name: "Arithmetic Term", Description: "aₙ = a₁ + (n-1)d", Parameters: sequenceParams("d"), Returns: "number"},
		{ID: "math.algebra.arithmeticSum", Name: "Arithmetic Sum", Description: "Sₙ = n(a₁ + aₙ)/2", Parameters: sequenceParams("d"), Returns: "number"},
		{ID: "math.algebra.geometricTerm", Name: "Geometric Term", Description: "aₙ = a₁·rⁿ⁻¹", Parameters: sequenceParams("r"), Returns: "number"},
		{ID: "math.algebra.geometricSum", Name: "Geometric Sum", Description: "Sₙ = a₁(1-rⁿ)/(1-r)", Parameters: sequenceParams("r"), Returns: "number"},
		{
			ID:          "math.algebra.recurrence",
			Name:        "Linear Recurrence",
			Description: "n-th term (zero-based) of aᵢ = Σ coeffs[j]·aᵢ₋₁₋ⱼ",
			Parameters: []types.Parameter{
				{Name: "initial", Type: "array", Description: "Seed terms", Required: true},
				{Name: "coeffs", Type: "array", Description: "Recurrence coefficients", Required: true},
				{Name: "n", Type: "integer", Description: "Zero-based index", Required: true},
			},
			Returns: "number",
		},
	}
}

// CubicDifference returns a³ - b³
func (a *AlgebraOps) CubicDifference(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "a", "b", algebra.CubicDifference)
}

// SubsetCount returns 2ⁿ
func (a *AlgebraOps) SubsetCount(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetCount(params, "n")
	if !ok || n > 1<<16 {
		return common.Failure("n parameter required (non-negative integer)")
	}
	return common.Success(map[string]interface{}{"result": algebra.SubsetCount(uint(n))})
}

// Means returns the four classical means
func (a *AlgebraOps) Means(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok {
		return common.Failure("numbers parameter required (array of numbers)")
	}
	m, err := algebra.MeanInequalities(numbers)
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{
		"harmonic":   m.Harmonic,
		"geometric":  m.Geometric,
		"arithmetic": m.Arithmetic,
		"quadratic":  m.Quadratic,
	})
}

// Cauchy returns (ac+bd)² at equality
func (a *AlgebraOps) Cauchy(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "a", "b", "c", "d")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Number(algebra.CauchyEquality(xs[0], xs[1], xs[2], xs[3]))
}

// Log returns log_base(x)
func (a *AlgebraOps) Log(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.BinaryErr(params, "base", "x", algebra.Log)
}

// CheckLog validates a logarithm without evaluating it
func (a *AlgebraOps) CheckLog(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "base", "x")
	if missing != "" {
		return common.Missing(missing)
	}
	if err := algebra.CheckLogValidity(xs[0], xs[1]); err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{"result": true})
}

func (a *AlgebraOps) GrowthRate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.BinaryErr(params, "present", "previous", algebra.AverageGrowthRate)
}

func complexPair(params map[string]interface{}) (complex128, complex128, *types.Result) {
	x, ok := common.GetComplex(params, "a")
	if !ok {
		r, _ := common.Required("a", "[re, im]")
		return 0, 0, r
	}
	y, ok := common.GetComplex(params, "b")
	if !ok {
		r, _ := common.Required("b", "[re, im]")
		return 0, 0, r
	}
	return x, y, nil
}

func (a *AlgebraOps) ComplexAdd(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, y, failed := complexPair(params)
	if failed != nil {
		return failed, nil
	}
	return common.Success(map[string]interface{}{"result": common.ComplexData(algebra.ComplexAdd(x, y))})
}

func (a *AlgebraOps) ComplexMultiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, y, failed := complexPair(params)
	if failed != nil {
		return failed, nil
	}
	return common.Success(map[string]interface{}{"result": common.ComplexData(algebra.ComplexMultiply(x, y))})
}

// ComplexDivide fails with divide_by_zero for a near-zero divisor
func (a *AlgebraOps) ComplexDivide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, y, failed := complexPair(params)
	if failed != nil {
		return failed, nil
	}
	q, err := algebra.ComplexDivide(x, y)
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{"result": common.ComplexData(q)})
}

func (a *AlgebraOps) ComplexConjugate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	z, ok := common.GetComplex(params, "z")
	if !ok {
		return common.Required("z", "[re, im]")
	}
	return common.Success(map[string]interface{}{"result": common.ComplexData(algebra.ComplexConjugate(z))})
}

func (a *AlgebraOps) ComplexModulus(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	z, ok := common.GetComplex(params, "z")
	if !ok {
		return common.Required("z", "[re, im]")
	}
	return common.Success(map[string]interface{}{"result": algebra.ComplexModulus(z)})
}

type sequenceFunc func(a1, step float64, n int) (float64, error)

func sequence(params map[string]interface{}, step string, fn sequenceFunc) (*types.Result, error) {
	xs, missing := common.Numbers(params, "a1", step)
	if missing != "" {
		return common.Missing(missing)
	}
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required (integer)")
	}
	return common.Number(fn(xs[0], xs[1], n))
}

func (a *AlgebraOps) ArithmeticTerm(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sequence(params, "d", algebra.ArithmeticTerm)
}

func (a *AlgebraOps) ArithmeticSum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sequence(params, "d", algebra.ArithmeticSum)
}

func (a *AlgebraOps) GeometricTerm(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sequence(params, "r", algebra.GeometricTerm)
}

func (a *AlgebraOps) GeometricSum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sequence(params, "r", algebra.GeometricSum)
}

// Recurrence evaluates a linear recurrence
func (a *AlgebraOps) Recurrence(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	initial, ok := common.GetNumbers(params, "initial")
	if !ok {
		return common.Failure("initial parameter required (array of numbers)")
	}
	coeffs, ok := common.GetNumbers(params, "coeffs")
	if !ok {
		return common.Failure("coeffs parameter required (array of numbers)")
	}
	n, ok := common.GetInt(params, "n")
	if !ok || n > maxRecurrenceIndex {
		return common.Failure("n parameter required (integer up to 1000000)")
	}
	return common.Number(algebra.RecurrenceTerm(initial, coeffs, n))
}
