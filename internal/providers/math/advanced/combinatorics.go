package advanced

import (
	"context"

	"github.com/GriffinCanCode/formulary/internal/maths/combinatorics"
	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// CombinatoricsOps handles counting in uint64 with overflow detection
type CombinatoricsOps struct {
	*common.MathOps
}

func count(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "integer", Description: description, Required: true}
}

// GetTools returns combinatorics tool definitions
func (c *CombinatoricsOps) GetTools() []types.Tool {
	choose := []types.Parameter{count("n", "Set size"), count("k", "Selection size, at most n")}
	tally := func(name, description string) []types.Parameter {
		return []types.Parameter{{Name: name, Type: "array", Description: description, Required: true}}
	}
	return []types.Tool{
		{ID: "math.combinatorics.permutation", Name: "Permutations", Description: "P(n, k) = n!/(n-k)!", Parameters: choose, Returns: "integer"},
		{ID: "math.combinatorics.combination", Name: "Combinations", Description: "C(n, k) = n!/(k!(n-k)!)", Parameters: choose, Returns: "integer"},
		{ID: "math.combinatorics.pascal", Name: "Pascal's Identity", Description: "C(n, k) = C(n-1, k-1) + C(n-1, k)", Parameters: choose, Returns: "integer"},
		{ID: "math.combinatorics.derangement", Name: "Derangements", Description: "Permutations of n items with no fixed point", Parameters: []types.Parameter{count("n", "Number of items")}, Returns: "integer"},
		{ID: "math.combinatorics.binomial", Name: "Binomial Coefficient", Description: "Coefficient of xᵏ in (1 + x)ⁿ", Parameters: choose, Returns: "integer"},
		{ID: "math.combinatorics.addition", Name: "Addition Principle", Description: "Total ways across disjoint option classes", Parameters: tally("options", "Ways per class"), Returns: "integer"},
		{ID: "math.combinatorics.multiplication", Name: "Multiplication Principle", Description: "Total ways across sequential steps", Parameters: tally("steps", "Ways per step"), Returns: "integer"},
	}
}

func countResult(n uint64, err error) (*types.Result, error) {
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{"result": n})
}

func nk(params map[string]interface{}) (uint64, uint64, bool) {
	n, ok1 := common.GetCount(params, "n")
	k, ok2 := common.GetCount(params, "k")
	return n, k, ok1 && ok2
}

func (c *CombinatoricsOps) Permutation(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, k, ok := nk(params)
	if !ok {
		return common.Failure("n and k parameters required (non-negative integers)")
	}
	return countResult(combinatorics.Permutation(n, k))
}

func (c *CombinatoricsOps) Combination(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, k, ok := nk(params)
	if !ok {
		return common.Failure("n and k parameters required (non-negative integers)")
	}
	return countResult(combinatorics.Combination(n, k))
}

func (c *CombinatoricsOps) Pascal(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, k, ok := nk(params)
	if !ok {
		return common.Failure("n and k parameters required (non-negative integers)")
	}
	return countResult(combinatorics.CombinationIdentity(n, k))
}

func (c *CombinatoricsOps) Derangement(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetCount(params, "n")
	if !ok {
		return common.Failure("n parameter required (non-negative integer)")
	}
	return countResult(combinatorics.Derangement(n))
}

func (c *CombinatoricsOps) Binomial(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, k, ok := nk(params)
	if !ok {
		return common.Failure("n and k parameters required (non-negative integers)")
	}
	return countResult(combinatorics.BinomialCoefficient(n, k))
}

func (c *CombinatoricsOps) Addition(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	options, ok := common.GetCounts(params, "options")
	if !ok {
		return common.Failure("options parameter required (array of non-negative integers)")
	}
	return countResult(combinatorics.AdditionPrinciple(options))
}

func (c *CombinatoricsOps) Multiplication(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	steps, ok := common.GetCounts(params, "steps")
	if !ok {
		return common.Failure("steps parameter required (array of non-negative integers)")
	}
	return countResult(combinatorics.MultiplicationPrinciple(steps))
}
