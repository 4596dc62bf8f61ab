package common

import (
	"fmt"

	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// Number wraps a formula result, routing its error through DomainFailure
func Number(x float64, err error) (*types.Result, error) {
	if err != nil {
		return DomainFailure(err)
	}
	return Success(map[string]interface{}{"result": x})
}

// Bool wraps a predicate result
func Bool(ok bool, err error) (*types.Result, error) {
	if err != nil {
		return DomainFailure(err)
	}
	return Success(map[string]interface{}{"result": ok})
}

// Unary evaluates fn on a single number parameter
func Unary(params map[string]interface{}, key string, fn func(float64) float64) (*types.Result, error) {
	x, ok := GetNumber(params, key)
	if !ok {
		return Failure(fmt.Sprintf("%s parameter required", key))
	}
	return Success(map[string]interface{}{"result": fn(x)})
}

// UnaryErr evaluates a fallible fn on a single number parameter
func UnaryErr(params map[string]interface{}, key string, fn func(float64) (float64, error)) (*types.Result, error) {
	x, ok := GetNumber(params, key)
	if !ok {
		return Failure(fmt.Sprintf("%s parameter required", key))
	}
	return Number(fn(x))
}

// Binary evaluates fn on two number parameters
func Binary(params map[string]interface{}, k1, k2 string, fn func(float64, float64) float64) (*types.Result, error) {
	a, b, ok := pair(params, k1, k2)
	if !ok {
		return Failure(fmt.Sprintf("%s and %s parameters required", k1, k2))
	}
	return Success(map[string]interface{}{"result": fn(a, b)})
}

// BinaryErr evaluates a fallible fn on two number parameters
func BinaryErr(params map[string]interface{}, k1, k2 string, fn func(float64, float64) (float64, error)) (*types.Result, error) {
	a, b, ok := pair(params, k1, k2)
	if !ok {
		return Failure(fmt.Sprintf("%s and %s parameters required", k1, k2))
	}
	return Number(fn(a, b))
}

// Numbers reads every key as a number and names the first one missing
func Numbers(params map[string]interface{}, keys ...string) ([]float64, string) {
	out := make([]float64, len(keys))
	for i, key := range keys {
		x, ok := GetNumber(params, key)
		if !ok {
			return nil, key
		}
		out[i] = x
	}
	return out, ""
}

// Missing builds the failure for an absent number parameter
func Missing(key string) (*types.Result, error) {
	return Failure(fmt.Sprintf("%s parameter required", key))
}

func pair(params map[string]interface{}, k1, k2 string) (float64, float64, bool) {
	a, ok1 := GetNumber(params, k1)
	b, ok2 := GetNumber(params, k2)
	return a, b, ok1 && ok2
}
