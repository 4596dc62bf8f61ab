package common

import (
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/formulary/internal/shared/types"
	"github.com/GriffinCanCode/formulary/internal/shared/utils"
)

// MathOps provides common math helpers
type MathOps struct{}

// Success creates a successful result. Data holding NaN or an infinity
// cannot be encoded, so it turns into an ErrNonFinite failure instead.
func Success(data map[string]interface{}) (*types.Result, error) {
	if !utils.IsFinite(data) {
		return DomainFailure(ErrNonFinite)
	}
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// DomainFailure converts a formula error into a failed result carrying the
// error kind
func DomainFailure(err error) (*types.Result, error) {
	msg := err.Error()
	return &types.Result{
		Success: false,
		Error:   &msg,
		Data:    map[string]interface{}{"error_kind": ErrorKind(err)},
	}, nil
}

// Required builds the failure for a missing or malformed parameter
func Required(name, shape string) (*types.Result, error) {
	return Failure(fmt.Sprintf("%s parameter required (%s)", name, shape))
}

// GetNumber extracts float64 from params with validation
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	x, ok := utils.ToFloat(params[key])
	if !ok || ValidateNumber(x, key) != nil {
		return 0, false
	}
	return x, true
}

// GetNumbers extracts array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	switch arr := params[key].(type) {
	case []float64:
		if ValidateNumbers(arr, key) != nil {
			return nil, false
		}
		return arr, true
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for _, v := range arr {
			num, ok := utils.ToFloat(v)
			if !ok || ValidateNumber(num, key) != nil {
				return nil, false
			}
			numbers = append(numbers, num)
		}
		return numbers, true
	default:
		return nil, false
	}
}

// GetCount extracts a non-negative integer
func GetCount(params map[string]interface{}, key string) (uint64, bool) {
	f, ok := GetNumber(params, key)
	if !ok || f < 0 || f != gomath.Trunc(f) || f >= 1<<64 {
		return 0, false
	}
	return uint64(f), true
}

// GetCounts extracts an array of non-negative integers
func GetCounts(params map[string]interface{}, key string) ([]uint64, bool) {
	numbers, ok := GetNumbers(params, key)
	if !ok {
		return nil, false
	}
	counts := make([]uint64, len(numbers))
	for i, f := range numbers {
		if f < 0 || f != gomath.Trunc(f) || f >= 1<<64 {
			return nil, false
		}
		counts[i] = uint64(f)
	}
	return counts, true
}

// GetInt extracts a signed integer
func GetInt(params map[string]interface{}, key string) (int, bool) {
	f, ok := GetNumber(params, key)
	if !ok || f != gomath.Trunc(f) || f > gomath.MaxInt32 || f < gomath.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// GetBool extracts bool from params
func GetBool(params map[string]interface{}, key string) (bool, bool) {
	val, ok := params[key].(bool)
	return val, ok
}

// ValidateNumber rejects NaN and infinities
func ValidateNumber(x float64, name string) error {
	if gomath.IsNaN(x) {
		return fmt.Errorf("%s must not be NaN", name)
	}
	if gomath.IsInf(x, 0) {
		return fmt.Errorf("%s must be finite", name)
	}
	return nil
}

// ValidateNumbers rejects arrays containing NaN or infinities
func ValidateNumbers(numbers []float64, name string) error {
	for i, x := range numbers {
		if err := ValidateNumber(x, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}
