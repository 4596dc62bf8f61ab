// Package testutil provides testing utilities and helpers for formulary tests.
package testutil

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// MockServiceProvider is a mock implementation of service.Provider for testing.
type MockServiceProvider struct {
	mock.Mock
}

// Definition mocks the Definition method.
func (m *MockServiceProvider) Definition() types.Service {
	args := m.Called()
	return args.Get(0).(types.Service)
}

// Execute mocks the Execute method.
func (m *MockServiceProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	args := m.Called(ctx, toolID, params, appCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Result), args.Error(1)
}

// NewMockServiceProvider creates a new mock service provider with default behaviors.
func NewMockServiceProvider(t *testing.T, serviceID string) *MockServiceProvider {
	t.Helper()
	m := new(MockServiceProvider)

	// Default behavior: return a simple service definition
	m.On("Definition").Return(CreateTestService(t, serviceID, types.CategoryMath)).Maybe()

	return m
}

// CreateTestService creates a test service definition.
func CreateTestService(t *testing.T, id string, category types.Category) types.Service {
	t.Helper()

	return types.Service{
		ID:           id,
		Name:         "Test Service",
		Description:  "A test service for unit testing",
		Category:     category,
		Capabilities: []string{"test"},
		Tools: []types.Tool{
			{
				ID:          id + ".test",
				Name:        "test",
				Description: "Test tool",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// AssertSuccess is a helper to assert a successful result.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if !result.Success {
		msg := "<nil>"
		if result.Error != nil {
			msg = *result.Error
		}
		t.Fatalf("Expected success, got error: %s", msg)
	}
}

// AssertError is a helper to assert an error result.
func AssertError(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if result.Success {
		t.Fatal("Expected error, got success")
	}
	if result.Error == nil {
		t.Fatal("Expected error message, got nil")
	}
}

// AssertErrorKind asserts a failed result tagged with the given domain error kind.
func AssertErrorKind(t *testing.T, result *types.Result, kind string) {
	t.Helper()
	AssertError(t, result)
	if result.Data == nil {
		t.Fatalf("Expected error kind %s, got no data", kind)
	}
	if got := result.Data["error_kind"]; got != kind {
		t.Fatalf("Expected error kind %s, got %v", kind, got)
	}
}

// AssertDataField is a helper to assert a data field exists and matches expected value.
func AssertDataField(t *testing.T, result *types.Result, field string, expected interface{}) {
	t.Helper()
	AssertSuccess(t, result)

	if result.Data == nil {
		t.Fatal("Result data is nil")
	}

	actual, ok := result.Data[field]
	if !ok {
		t.Fatalf("Field %s not found in result data", field)
	}

	if actual != expected {
		t.Fatalf("Field %s: expected %v, got %v", field, expected, actual)
	}
}

// AssertNumberField asserts a numeric data field within tolerance.
func AssertNumberField(t *testing.T, result *types.Result, field string, expected, tolerance float64) {
	t.Helper()
	AssertSuccess(t, result)

	actual, ok := result.Data[field].(float64)
	if !ok {
		t.Fatalf("Field %s is %T, want float64", field, result.Data[field])
	}
	if math.Abs(actual-expected) > tolerance {
		t.Fatalf("Field %s: expected %v ± %v, got %v", field, expected, tolerance, actual)
	}
}

// Handler is the method signature shared by every math tool.
type Handler func(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)

// DefaultTolerance bounds numeric comparisons in KnownAnswer cases.
const DefaultTolerance = 1e-9

// KnownAnswer is one table row: a tool call and what it must produce.
type KnownAnswer struct {
	Name   string
	Call   Handler
	Params map[string]interface{}
	// Field defaults to "result"
	Field string
	// Want is compared within Tolerance when it is a float64 or a
	// map[string]float64 of components, and exactly otherwise
	Want      interface{}
	Tolerance float64
	// Kind is the expected error_kind; Fails expects a failure with no kind
	Kind  string
	Fails bool
}

// RunKnownAnswers runs each case as a subtest.
func RunKnownAnswers(t *testing.T, cases []KnownAnswer) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			result, err := tc.Call(context.Background(), tc.Params, nil)
			require.NoError(t, err)

			switch {
			case tc.Kind != "":
				AssertErrorKind(t, result, tc.Kind)
				return
			case tc.Fails:
				AssertError(t, result)
				assert.Nil(t, result.Data["error_kind"])
				return
			}

			AssertSuccess(t, result)
			field := tc.Field
			if field == "" {
				field = "result"
			}
			tol := tc.Tolerance
			if tol == 0 {
				tol = DefaultTolerance
			}
			got, ok := result.Data[field]
			require.True(t, ok, "field %s missing from %v", field, result.Data)

			switch want := tc.Want.(type) {
			case float64:
				assert.InDelta(t, want, got, tol)
			case map[string]float64:
				components, ok := got.(map[string]interface{})
				require.True(t, ok, "field %s is %T", field, got)
				for k, v := range want {
					assert.InDelta(t, v, components[k], tol, k)
				}
			case []float64:
				assert.InDeltaSlice(t, want, got, tol)
			default:
				assert.Equal(t, want, got)
			}
		})
	}
}
