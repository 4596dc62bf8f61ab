package math_test

import (
	"context"
	gomath "math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mathprovider "github.com/GriffinCanCode/formulary/internal/providers/math"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
	"github.com/GriffinCanCode/formulary/tests/helpers/testutil"
)

func execute(t *testing.T, p *mathprovider.Provider, toolID string, params map[string]interface{}) *types.Result {
	t.Helper()
	result, err := p.Execute(context.Background(), toolID, params, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestDefinition(t *testing.T) {
	p := mathprovider.NewProvider()
	def := p.Definition()

	assert.Equal(t, "math", def.ID)
	assert.Equal(t, types.CategoryMath, def.Category)
	assert.NotEmpty(t, def.Capabilities)

	seen := make(map[string]bool)
	for _, tool := range def.Tools {
		assert.False(t, seen[tool.ID], "duplicate tool %s", tool.ID)
		seen[tool.ID] = true
		assert.True(t, strings.HasPrefix(tool.ID, "math."), tool.ID)
		assert.NotEmpty(t, tool.Name, tool.ID)
		assert.NotEmpty(t, tool.Returns, tool.ID)
	}
	assert.Greater(t, len(def.Tools), 100)
}

func TestEveryToolIsRouted(t *testing.T) {
	p := mathprovider.NewProvider()
	for _, tool := range p.Definition().Tools {
		result := execute(t, p, tool.ID, map[string]interface{}{})
		if result.Error != nil {
			assert.NotContains(t, *result.Error, "unknown tool", tool.ID)
		}
	}
}

func TestUnknownTool(t *testing.T) {
	p := mathprovider.NewProvider()
	result := execute(t, p, "math.nope", nil)
	testutil.AssertError(t, result)
	assert.Contains(t, *result.Error, "unknown tool")
}

func TestSpaceTools(t *testing.T) {
	p := mathprovider.NewProvider()

	t.Run("Cross", func(t *testing.T) {
		result := execute(t, p, "math.space.cross", map[string]interface{}{
			"a": []interface{}{1.0, 0.0, 0.0},
			"b": []interface{}{0.0, 1.0, 0.0},
		})
		testutil.AssertSuccess(t, result)
		assert.Equal(t, map[string]interface{}{"x": 0.0, "y": 0.0, "z": 1.0}, result.Data["result"])
	})

	t.Run("Dot with object vectors", func(t *testing.T) {
		result := execute(t, p, "math.space.dot", map[string]interface{}{
			"a": map[string]interface{}{"x": 1, "y": 2, "z": 3},
			"b": map[string]interface{}{"x": 4, "y": 5, "z": 6},
		})
		testutil.AssertDataField(t, result, "result", 32.0)
	})

	t.Run("Normalize zero vector", func(t *testing.T) {
		result := execute(t, p, "math.space.normalize", map[string]interface{}{
			"v": []interface{}{0, 0, 0},
		})
		testutil.AssertErrorKind(t, result, "zero_vector")
	})

	t.Run("Plane from collinear points", func(t *testing.T) {
		result := execute(t, p, "math.space.plane", map[string]interface{}{
			"p1": []interface{}{0, 0, 0},
			"p2": []interface{}{1, 1, 1},
			"p3": []interface{}{2, 2, 2},
		})
		testutil.AssertErrorKind(t, result, "not_coplanar")
	})

	t.Run("Plane contains its points", func(t *testing.T) {
		result := execute(t, p, "math.space.plane", map[string]interface{}{
			"p1": []interface{}{1, 0, 0},
			"p2": []interface{}{0, 1, 0},
			"p3": []interface{}{0, 0, 1},
		})
		testutil.AssertSuccess(t, result)
		plane := result.Data["result"].(map[string]interface{})

		contains := execute(t, p, "math.space.contains", map[string]interface{}{
			"plane": plane,
			"point": []interface{}{1.0 / 3, 1.0 / 3, 1.0 / 3},
		})
		testutil.AssertDataField(t, contains, "result", true)
	})

	t.Run("Perpendicular planes", func(t *testing.T) {
		result := execute(t, p, "math.space.planesPerpendicular", map[string]interface{}{
			"p1": []interface{}{1, 0, 0, 0},
			"p2": []interface{}{0, 1, 0, -3},
		})
		testutil.AssertDataField(t, result, "result", true)
	})

	t.Run("Line angle", func(t *testing.T) {
		result := execute(t, p, "math.space.lineAngle", map[string]interface{}{
			"line":  []interface{}{0, 0, 1},
			"plane": []interface{}{0, 0, 1, 0},
		})
		testutil.AssertNumberField(t, result, "result", gomath.Pi/2, 1e-12)
	})

	t.Run("Malformed vector", func(t *testing.T) {
		result := execute(t, p, "math.space.dot", map[string]interface{}{
			"a": []interface{}{1, 2},
			"b": []interface{}{1, 2, 3},
		})
		testutil.AssertError(t, result)
		assert.Contains(t, *result.Error, "a parameter required")
		assert.Nil(t, result.Data)
	})
}

func TestTrigAndAlgebraTools(t *testing.T) {
	p := mathprovider.NewProvider()

	t.Run("Tan undefined", func(t *testing.T) {
		result := execute(t, p, "math.trig.tan", map[string]interface{}{"x": gomath.Pi / 2})
		testutil.AssertErrorKind(t, result, "undefined")
	})

	t.Run("Auxiliary angle", func(t *testing.T) {
		result := execute(t, p, "math.trig.auxiliary", map[string]interface{}{"a": 3, "b": 4})
		testutil.AssertNumberField(t, result, "amplitude", 5, 1e-12)
	})

	t.Run("Complex divide by zero", func(t *testing.T) {
		result := execute(t, p, "math.algebra.complexDivide", map[string]interface{}{
			"a": []interface{}{1, 1},
			"b": []interface{}{0, 0},
		})
		testutil.AssertErrorKind(t, result, "divide_by_zero")
	})

	t.Run("Means", func(t *testing.T) {
		result := execute(t, p, "math.algebra.means", map[string]interface{}{
			"numbers": []interface{}{1, 4, 4},
		})
		testutil.AssertNumberField(t, result, "arithmetic", 3, 1e-12)
		testutil.AssertNumberField(t, result, "geometric", gomath.Cbrt(16), 1e-12)
	})
}

func TestStatisticsTools(t *testing.T) {
	p := mathprovider.NewProvider()

	t.Run("Classical", func(t *testing.T) {
		result := execute(t, p, "math.probability.classical", map[string]interface{}{"favorable": 1, "total": 4})
		testutil.AssertDataField(t, result, "result", 0.25)
	})

	t.Run("Classical empty sample space", func(t *testing.T) {
		result := execute(t, p, "math.probability.classical", map[string]interface{}{"favorable": 0, "total": 0})
		testutil.AssertErrorKind(t, result, "empty_sample_space")
	})

	t.Run("Least squares", func(t *testing.T) {
		result := execute(t, p, "math.stats.leastSquares", map[string]interface{}{
			"x": []interface{}{1, 2, 3, 4},
			"y": []interface{}{3, 5, 7, 9},
		})
		testutil.AssertNumberField(t, result, "slope", 2, 1e-9)
		testutil.AssertNumberField(t, result, "intercept", 1, 1e-9)
	})
}

func TestAdvancedTools(t *testing.T) {
	p := mathprovider.NewProvider()

	t.Run("Combination", func(t *testing.T) {
		result := execute(t, p, "math.combinatorics.combination", map[string]interface{}{"n": 5, "k": 2})
		testutil.AssertDataField(t, result, "result", uint64(10))
	})

	t.Run("Combination overflow", func(t *testing.T) {
		result := execute(t, p, "math.combinatorics.combination", map[string]interface{}{"n": 100, "k": 50})
		testutil.AssertErrorKind(t, result, "overflow")
	})

	t.Run("Fractional count rejected", func(t *testing.T) {
		result := execute(t, p, "math.combinatorics.derangement", map[string]interface{}{"n": 2.5})
		testutil.AssertError(t, result)
	})

	t.Run("Taylor exp", func(t *testing.T) {
		result := execute(t, p, "math.calculus.taylor", map[string]interface{}{
			"f": "exp", "x0": 0, "x": 1, "n": 15,
		})
		testutil.AssertNumberField(t, result, "result", gomath.E, 1e-10)
	})

	t.Run("Taylor sin", func(t *testing.T) {
		result := execute(t, p, "math.calculus.taylor", map[string]interface{}{
			"f": "sin", "x0": 0, "x": 0.5, "n": 11,
		})
		testutil.AssertNumberField(t, result, "result", gomath.Sin(0.5), 1e-10)
	})

	t.Run("L'Hospital sin over identity", func(t *testing.T) {
		result := execute(t, p, "math.calculus.lhospital", map[string]interface{}{
			"f": "sin", "g": "identity", "x0": 0,
		})
		testutil.AssertNumberField(t, result, "result", 1, 1e-12)
	})

	t.Run("Unknown function name", func(t *testing.T) {
		result := execute(t, p, "math.calculus.jensen", map[string]interface{}{
			"f": "sinh", "points": []interface{}{1, 2},
		})
		testutil.AssertError(t, result)
		assert.Contains(t, *result.Error, "unknown function")
	})
}

func TestGeometryTools(t *testing.T) {
	p := mathprovider.NewProvider()

	t.Run("Heron", func(t *testing.T) {
		result := execute(t, p, "math.triangle.heron", map[string]interface{}{"a": 3, "b": 4, "c": 5})
		testutil.AssertNumberField(t, result, "result", 6, 1e-12)
	})

	t.Run("Centroid", func(t *testing.T) {
		result := execute(t, p, "math.triangle.centroid", map[string]interface{}{
			"A": []interface{}{0, 0},
			"B": []interface{}{3, 0},
			"C": []interface{}{0, 3},
		})
		testutil.AssertSuccess(t, result)
		assert.Equal(t, map[string]interface{}{"x": 1.0, "y": 1.0}, result.Data["result"])
	})

	t.Run("Euler violation", func(t *testing.T) {
		result := execute(t, p, "math.solid.euler", map[string]interface{}{"v": 8, "e": 12, "f": 5})
		testutil.AssertErrorKind(t, result, "euler_violation")
	})

	t.Run("Cube", func(t *testing.T) {
		result := execute(t, p, "math.solid.euler", map[string]interface{}{"v": 8, "e": 12, "f": 6})
		testutil.AssertDataField(t, result, "result", int64(2))
	})
}

func TestUtilities(t *testing.T) {
	p := mathprovider.NewProvider()

	testutil.AssertDataField(t, execute(t, p, "math.pi", nil), "result", gomath.Pi)
	testutil.AssertNumberField(t, execute(t, p, "math.radians", map[string]interface{}{"degrees": 180}), "result", gomath.Pi, 1e-12)
	testutil.AssertNumberField(t, execute(t, p, "math.normalizeDegrees", map[string]interface{}{"degrees": -90}), "result", 270, 1e-12)
}
