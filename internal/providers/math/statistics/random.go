package statistics

import (
	"context"

	"github.com/GriffinCanCode/formulary/internal/maths/probability"
	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// RandomOps handles discrete random variables and the linearity rules of
// expectation and variance
type RandomOps struct {
	*common.MathOps
}

func number(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "number", Description: description, Required: true}
}

func distribution() []types.Parameter {
	return []types.Parameter{array("values", "Outcomes"), array("probs", "Probabilities summing to 1")}
}

// GetTools returns random variable tool definitions
func (r *RandomOps) GetTools() []types.Tool {
	return []types.Tool{
		{ID: "math.random.expectation", Name: "Expected Value", Description: "E(X) = Σ xᵢpᵢ", Parameters: distribution(), Returns: "number"},
		{ID: "math.random.variance", Name: "Variance", Description: "D(X) = Σ (xᵢ - E(X))²pᵢ", Parameters: distribution(), Returns: "number"},
		{ID: "math.random.meanScalar", Name: "Mean of Scaled Variable", Description: "E(aX) = a·E(X)", Parameters: []types.Parameter{number("a", "Scalar"), number("meanX", "E(X)")}, Returns: "number"},
		{ID: "math.random.meanSum", Name: "Mean of Sum", Description: "E(X + Y) = E(X) + E(Y)", Parameters: []types.Parameter{number("meanX", "E(X)"), number("meanY", "E(Y)")}, Returns: "number"},
		{
			ID:          "math.random.meanLinear",
			Name:        "Mean of Linear Combination",
			Description: "E(Σ aᵢXᵢ + c)",
			Parameters:  []types.Parameter{array("coeffs", "Coefficients aᵢ"), array("means", "Means E(Xᵢ)"), {Name: "constant", Type: "number", Description: "Constant term c", Required: false}},
			Returns:     "number",
		},
		{ID: "math.random.varianceScalar", Name: "Variance of Scaled Variable", Description: "D(aX) = a²·D(X)", Parameters: []types.Parameter{number("a", "Scalar"), number("varX", "D(X), non-negative")}, Returns: "number"},
		{ID: "math.random.varianceSum", Name: "Variance of Independent Sum", Description: "D(X + Y) = D(X) + D(Y)", Parameters: []types.Parameter{number("varX", "D(X)"), number("varY", "D(Y)")}, Returns: "number"},
		{
			ID:          "math.random.varianceLinear",
			Name:        "Variance of Linear Combination",
			Description: "D(Σ aᵢXᵢ) = Σ aᵢ²D(Xᵢ) for independent Xᵢ",
			Parameters:  []types.Parameter{array("coeffs", "Coefficients aᵢ"), array("variances", "Variances D(Xᵢ)")},
			Returns:     "number",
		},
	}
}

// Expectation returns E(X)
func (r *RandomOps) Expectation(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, failed := arrays(params, "values", "probs")
	if failed != nil {
		return failed, nil
	}
	return common.Number(probability.ExpectedValue(xs[0], xs[1]))
}

// Variance returns D(X)
func (r *RandomOps) Variance(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, failed := arrays(params, "values", "probs")
	if failed != nil {
		return failed, nil
	}
	return common.Number(probability.Variance(xs[0], xs[1]))
}

func (r *RandomOps) MeanScalar(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "a", "meanX", probability.MeanScalarMultiple)
}

func (r *RandomOps) MeanSum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Binary(params, "meanX", "meanY", probability.MeanSum)
}

// MeanLinear treats a missing constant as zero
func (r *RandomOps) MeanLinear(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, failed := arrays(params, "coeffs", "means")
	if failed != nil {
		return failed, nil
	}
	constant, _ := common.GetNumber(params, "constant")
	return common.Number(probability.MeanLinearCombination(xs[0], xs[1], constant))
}

func (r *RandomOps) VarianceScalar(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.BinaryErr(params, "a", "varX", probability.VarianceScalarMultiple)
}

func (r *RandomOps) VarianceSum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.BinaryErr(params, "varX", "varY", probability.VarianceSumIndependent)
}

func (r *RandomOps) VarianceLinear(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, failed := arrays(params, "coeffs", "variances")
	if failed != nil {
		return failed, nil
	}
	return common.Number(probability.VarianceLinearCombination(xs[0], xs[1]))
}
