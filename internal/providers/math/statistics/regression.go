package statistics

import (
	"context"

	"github.com/GriffinCanCode/formulary/internal/maths/probability"
	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// RegressionOps handles least squares, goodness of fit and sample statistics
type RegressionOps struct {
	*common.MathOps
}

// GetTools returns regression and sample statistics tool definitions
func (r *RegressionOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.stats.leastSquares",
			Name:        "Least Squares Line",
			Description: "Fit y = bx + a by ordinary least squares",
			Parameters:  []types.Parameter{array("x", "Explanatory values"), array("y", "Response values")},
			Returns:     "object",
		},
		{
			ID:          "math.stats.predict",
			Name:        "Empirical Regression",
			Description: "Evaluate a fitted line at x",
			Parameters:  []types.Parameter{number("x", "Input"), number("slope", "b"), number("intercept", "a")},
			Returns:     "number",
		},
		{
			ID:          "math.stats.chiSquared",
			Name:        "Chi-Squared Statistic",
			Description: "Σ (Oᵢ - Eᵢ)²/Eᵢ",
			Parameters:  []types.Parameter{array("observed", "Observed counts"), array("expected", "Positive expected counts")},
			Returns:     "number",
		},
		{
			ID:          "math.stats.percentile",
			Name:        "Percentile",
			Description: "p-th percentile by the textbook position rule",
			Parameters:  []types.Parameter{number("p", "Percentile in [0, 100]"), array("numbers", "Sample")},
			Returns:     "number",
		},
		{ID: "math.stats.mean", Name: "Sample Mean", Description: "Arithmetic mean of a sample", Parameters: []types.Parameter{array("numbers", "Sample")}, Returns: "number"},
		{ID: "math.stats.variance", Name: "Sample Variance", Description: "Population-form variance of a sample", Parameters: []types.Parameter{array("numbers", "Sample")}, Returns: "number"},
	}
}

// LeastSquares fits a regression line
func (r *RegressionOps) LeastSquares(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, failed := arrays(params, "x", "y")
	if failed != nil {
		return failed, nil
	}
	line, err := probability.LeastSquares(xs[0], xs[1])
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{"slope": line.Slope, "intercept": line.Intercept})
}

// Predict evaluates slope·x + intercept
func (r *RegressionOps) Predict(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "x", "slope", "intercept")
	if missing != "" {
		return common.Missing(missing)
	}
	line := probability.Line{Slope: xs[1], Intercept: xs[2]}
	return common.Success(map[string]interface{}{"result": probability.EmpiricalRegression(xs[0], line)})
}

func (r *RegressionOps) ChiSquared(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, failed := arrays(params, "observed", "expected")
	if failed != nil {
		return failed, nil
	}
	return common.Number(probability.ChiSquared(xs[0], xs[1]))
}

// Percentile returns the p-th percentile
func (r *RegressionOps) Percentile(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	p, ok := common.GetNumber(params, "p")
	if !ok {
		return common.Missing("p")
	}
	xs, failed := arrays(params, "numbers")
	if failed != nil {
		return failed, nil
	}
	return common.Number(probability.Percentile(p, xs[0]))
}

func (r *RegressionOps) Mean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, failed := arrays(params, "numbers")
	if failed != nil {
		return failed, nil
	}
	return common.Number(probability.SampleMean(xs[0]))
}

func (r *RegressionOps) Variance(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, failed := arrays(params, "numbers")
	if failed != nil {
		return failed, nil
	}
	return common.Number(probability.SampleVariance(xs[0]))
}
