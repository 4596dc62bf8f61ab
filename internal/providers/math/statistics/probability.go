package statistics

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/formulary/internal/maths/probability"
	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// ProbabilityOps handles event probability rules
type ProbabilityOps struct {
	*common.MathOps
}

func prob(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "number", Description: description + " in [0, 1]", Required: true}
}

func array(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "array", Description: description, Required: true}
}

// arrays reads each key as a numeric array
func arrays(params map[string]interface{}, keys ...string) ([][]float64, *types.Result) {
	out := make([][]float64, len(keys))
	for i, key := range keys {
		xs, ok := common.GetNumbers(params, key)
		if !ok {
			r, _ := common.Failure(fmt.Sprintf("%s parameter required (array of numbers)", key))
			return nil, r
		}
		out[i] = xs
	}
	return out, nil
}

// GetTools returns probability tool definitions
func (p *ProbabilityOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.probability.independent",
			Name:        "Independence Test",
			Description: "Whether P(AB) = P(A)·P(B)",
			Parameters:  []types.Parameter{prob("pA", "P(A)"), prob("pB", "P(B)"), prob("pAB", "P(AB)")},
			Returns:     "boolean",
		},
		{
			ID:          "math.probability.classical",
			Name:        "Classical Probability",
			Description: "favorable / total outcomes",
			Parameters: []types.Parameter{
				{Name: "favorable", Type: "integer", Description: "Favorable outcomes", Required: true},
				{Name: "total", Type: "integer", Description: "Total outcomes, positive", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.probability.conditional",
			Name:        "Conditional Probability",
			Description: "P(A|B) = P(AB)/P(B)",
			Parameters:  []types.Parameter{prob("pAB", "P(AB)"), prob("pB", "P(B), positive")},
			Returns:     "number",
		},
		{
			ID:          "math.probability.multiplication",
			Name:        "Multiplication Rule",
			Description: "P(AB) = P(A)·P(B|A)",
			Parameters:  []types.Parameter{prob("pA", "P(A)"), prob("pBGivenA", "P(B|A)")},
			Returns:     "number",
		},
		{
			ID:          "math.probability.total",
			Name:        "Total Probability",
			Description: "Σ P(Bᵢ)·P(A|Bᵢ) over a partition",
			Parameters:  []types.Parameter{array("partition", "P(Bᵢ), summing to 1"), array("conditional", "P(A|Bᵢ)")},
			Returns:     "number",
		},
		{
			ID:          "math.probability.bayes",
			Name:        "Bayes' Theorem",
			Description: "P(B|A) = P(B)·P(A|B)/P(A)",
			Parameters:  []types.Parameter{prob("prior", "P(B)"), prob("likelihood", "P(A|B)"), prob("evidence", "P(A), positive")},
			Returns:     "number",
		},
	}
}

// Independent tests P(AB) = P(A)P(B)
func (p *ProbabilityOps) Independent(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "pA", "pB", "pAB")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Bool(probability.IsIndependent(xs[0], xs[1], xs[2]))
}

// Classical returns favorable/total
func (p *ProbabilityOps) Classical(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	favorable, ok1 := common.GetCount(params, "favorable")
	total, ok2 := common.GetCount(params, "total")
	if !ok1 || !ok2 {
		return common.Failure("favorable and total parameters required (non-negative integers)")
	}
	return common.Number(probability.Classical(favorable, total))
}

func (p *ProbabilityOps) Conditional(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.BinaryErr(params, "pAB", "pB", probability.Conditional)
}

func (p *ProbabilityOps) Multiplication(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.BinaryErr(params, "pA", "pBGivenA", probability.MultiplicationRule)
}

// Total applies the law of total probability
func (p *ProbabilityOps) Total(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, failed := arrays(params, "partition", "conditional")
	if failed != nil {
		return failed, nil
	}
	return common.Number(probability.TotalProbability(xs[0], xs[1]))
}

// Bayes returns the posterior
func (p *ProbabilityOps) Bayes(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "prior", "likelihood", "evidence")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Number(probability.Bayes(xs[0], xs[1], xs[2]))
}
