package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// Request limits
const (
	MaxJSONSize     = 1 * 1024 * 1024 // 1MB - maximum request body
	MaxIDLength     = 128
	MaxQueryLength  = 256
	MaxParamCount   = 32
	MaxParamDepth   = 6
	MaxBatchCalls   = 256
	MaxArrayLength  = 65536
	MaxDiscoveryHit = 50
)

// ToolIDPattern allows alphanumeric, hyphens, underscores, and dots (for service.tool format)
var ToolIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ErrInvalidRequest marks every validation failure
var ErrInvalidRequest = errors.New("invalid request")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// ValidateString validates a string field with length and content checks
func ValidateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if value == "" {
		if required {
			return invalid("%s is required", fieldName)
		}
		return nil
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return invalid("%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return invalid("%s must not exceed %d characters", fieldName, maxLen)
	}

	if strings.Contains(value, "\x00") {
		return invalid("%s contains invalid characters", fieldName)
	}

	return nil
}

// ValidateToolID validates a tool ID field (allows dots for service.tool format)
func ValidateToolID(id, fieldName string, required bool) error {
	if err := ValidateString(id, fieldName, 1, MaxIDLength, required); err != nil {
		return err
	}

	if id != "" && !ToolIDPattern.MatchString(id) {
		return invalid("%s contains invalid characters (only alphanumeric, dots, hyphens, and underscores allowed)", fieldName)
	}

	return nil
}

// ValidateQuery validates a discovery query
func ValidateQuery(query string) error {
	return ValidateString(strings.TrimSpace(query), "query", 1, MaxQueryLength, true)
}

// ValidateJSONDepth checks if nesting depth is within limits
func ValidateJSONDepth(data interface{}, maxDepth int) error {
	return checkDepth(data, 0, maxDepth)
}

func checkDepth(data interface{}, currentDepth int, maxDepth int) error {
	if currentDepth > maxDepth {
		return invalid("nesting depth %d exceeds maximum %d", currentDepth, maxDepth)
	}

	switch v := data.(type) {
	case map[string]interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	case []interface{}:
		if len(v) > MaxArrayLength {
			return invalid("array of %d elements exceeds maximum %d", len(v), MaxArrayLength)
		}
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	}

	return nil
}

// ValidateParams bounds the shape of a tool's parameter map
func ValidateParams(params map[string]interface{}) error {
	if len(params) > MaxParamCount {
		return invalid("%d params exceeds maximum %d", len(params), MaxParamCount)
	}
	for name, value := range params {
		if err := ValidateString(name, "param name", 1, MaxIDLength, true); err != nil {
			return err
		}
		if err := checkDepth(value, 1, MaxParamDepth); err != nil {
			return fmt.Errorf("param %s: %w", name, err)
		}
	}
	return nil
}

// ValidateExecuteRequest validates a single tool invocation
func ValidateExecuteRequest(req types.ExecuteRequest) error {
	if err := ValidateToolID(req.ToolID, "tool_id", true); err != nil {
		return err
	}
	return ValidateParams(req.Params)
}

// ValidateBatch validates every call in a batch; the error names the failing index
func ValidateBatch(calls []types.ExecuteRequest) error {
	if len(calls) == 0 {
		return invalid("batch has no calls")
	}
	if len(calls) > MaxBatchCalls {
		return invalid("batch of %d calls exceeds maximum %d", len(calls), MaxBatchCalls)
	}
	for i, call := range calls {
		if err := ValidateExecuteRequest(call); err != nil {
			return fmt.Errorf("call %d: %w", i, err)
		}
	}
	return nil
}
