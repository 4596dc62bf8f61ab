package operations

import (
	gomath "math"
	"testing"

	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/tests/helpers/testutil"
)

type params = map[string]interface{}

func TestTrigTools(t *testing.T) {
	tr := &TrigOps{MathOps: &common.MathOps{}}
	testutil.RunKnownAnswers(t, []testutil.KnownAnswer{
		{Name: "tan", Call: tr.Tan, Params: params{"x": gomath.Pi / 4}, Want: 1.0},
		{Name: "tan at pole", Call: tr.Tan, Params: params{"x": gomath.Pi / 2}, Kind: "undefined"},
		{Name: "tan missing x", Call: tr.Tan, Params: params{}, Fails: true},
		{Name: "deg to rad", Call: tr.DegToRad, Params: params{"degrees": 180}, Want: gomath.Pi},
		{Name: "rad to deg", Call: tr.RadToDeg, Params: params{"radians": gomath.Pi / 2}, Want: 90.0},
		{Name: "sin to cos", Call: tr.SinToCos, Params: params{"sin": 0.6}, Want: 0.8},
		{Name: "sin out of range", Call: tr.SinToCos, Params: params{"sin": 1.5}, Kind: "out_of_range"},
		{Name: "cos to sin", Call: tr.CosToSin, Params: params{"cos": -0.8}, Want: 0.6},
		{Name: "sin add", Call: tr.SinAdd, Params: params{"a": gomath.Pi / 6, "b": gomath.Pi / 3}, Want: 1.0},
		{Name: "sin sub", Call: tr.SinSub, Params: params{"a": gomath.Pi / 2, "b": gomath.Pi / 3}, Want: 0.5},
		{Name: "cos add", Call: tr.CosAdd, Params: params{"a": gomath.Pi / 6, "b": gomath.Pi / 6}, Want: 0.5},
		{Name: "cos sub", Call: tr.CosSub, Params: params{"a": 1.3, "b": 1.3}, Want: 1.0},
		{Name: "sin double", Call: tr.SinDouble, Params: params{"x": gomath.Pi / 4}, Want: 1.0},
		{Name: "cos double", Call: tr.CosDouble, Params: params{"x": gomath.Pi / 3}, Want: -0.5},
		{Name: "tan double", Call: tr.TanDouble, Params: params{"x": gomath.Pi / 8}, Want: 1.0},
		{Name: "tan double undefined", Call: tr.TanDouble, Params: params{"x": gomath.Pi / 4}, Kind: "undefined"},
		{Name: "sin half", Call: tr.SinHalf, Params: params{"cos": -1}, Want: 1.0},
		{Name: "cos half", Call: tr.CosHalf, Params: params{"cos": 0}, Want: gomath.Sqrt2 / 2},
		{Name: "cos half out of range", Call: tr.CosHalf, Params: params{"cos": 2}, Kind: "out_of_range"},
		{Name: "tan half", Call: tr.TanHalf, Params: params{"cos": 0}, Want: 1.0},
		{Name: "tan half undefined", Call: tr.TanHalf, Params: params{"cos": -1}, Kind: "undefined"},
		{Name: "sin sum to product", Call: tr.SinSumToProduct, Params: params{"a": gomath.Pi / 2, "b": gomath.Pi / 6}, Want: 1.5},
		{Name: "sin diff to product", Call: tr.SinDiffToProduct, Params: params{"a": gomath.Pi / 2, "b": gomath.Pi / 6}, Want: 0.5},
		{Name: "cos sum to product", Call: tr.CosSumToProduct, Params: params{"a": 0, "b": gomath.Pi / 3}, Want: 1.5},
		{Name: "cos diff to product", Call: tr.CosDiffToProduct, Params: params{"a": 0, "b": gomath.Pi / 3}, Want: 0.5},
		{Name: "sin cos to sum", Call: tr.SinCosToSum, Params: params{"a": gomath.Pi / 2, "b": 0}, Want: 1.0},
		{Name: "sin cos to sum first", Call: tr.SinCosToSum, Params: params{"a": gomath.Pi / 2, "b": 0}, Field: "first", Want: 0.5},
		{Name: "sin sin to sum", Call: tr.SinSinToSum, Params: params{"a": gomath.Pi / 2, "b": gomath.Pi / 6}, Want: 0.5},
		{Name: "cos cos to sum", Call: tr.CosCosToSum, Params: params{"a": gomath.Pi / 3, "b": gomath.Pi / 3}, Want: 0.25},
		{Name: "cos cos to sum second", Call: tr.CosCosToSum, Params: params{"a": gomath.Pi / 3, "b": gomath.Pi / 3}, Field: "second", Want: -0.25},
		{Name: "product to sum missing b", Call: tr.SinSinToSum, Params: params{"a": 1}, Fails: true},
		{Name: "sin from tan half", Call: tr.SinFromTanHalf, Params: params{"t": 1}, Want: 1.0},
		{Name: "cos from tan half", Call: tr.CosFromTanHalf, Params: params{"t": 1}, Want: 0.0},
		{Name: "tan from tan half", Call: tr.TanFromTanHalf, Params: params{"t": 0.5}, Want: 4.0 / 3.0},
		{Name: "tan from tan half undefined", Call: tr.TanFromTanHalf, Params: params{"t": -1}, Kind: "undefined"},
		{Name: "auxiliary amplitude", Call: tr.Auxiliary, Params: params{"a": 3, "b": 4}, Field: "amplitude", Want: 5.0},
		{Name: "auxiliary phase", Call: tr.Auxiliary, Params: params{"a": 1, "b": 1}, Field: "phase", Want: gomath.Pi / 4},
		{Name: "auxiliary undefined", Call: tr.Auxiliary, Params: params{"a": 0, "b": 0}, Kind: "undefined"},
		{Name: "inverse auxiliary", Call: tr.InverseAuxiliary, Params: params{"amplitude": 2, "phase": gomath.Pi / 6}, Field: "b", Want: 1.0},
		{Name: "period", Call: tr.Period, Params: params{"omega": -2}, Want: gomath.Pi},
		{Name: "period zero frequency", Call: tr.Period, Params: params{"omega": 0}, Kind: "zero_frequency"},
	})
}

func TestAlgebraTools(t *testing.T) {
	al := &AlgebraOps{MathOps: &common.MathOps{}}
	testutil.RunKnownAnswers(t, []testutil.KnownAnswer{
		{Name: "cubic difference", Call: al.CubicDifference, Params: params{"a": 3, "b": 2}, Want: 19.0},
		{Name: "subset count", Call: al.SubsetCount, Params: params{"n": 10}, Want: uint64(1024)},
		{Name: "subset count fractional", Call: al.SubsetCount, Params: params{"n": 2.5}, Fails: true},
		{Name: "subset count negative", Call: al.SubsetCount, Params: params{"n": -1}, Fails: true},
		{Name: "harmonic mean", Call: al.Means, Params: params{"numbers": []interface{}{1, 2, 4}}, Field: "harmonic", Want: 12.0 / 7.0},
		{Name: "geometric mean", Call: al.Means, Params: params{"numbers": []interface{}{1, 2, 4}}, Field: "geometric", Want: 2.0},
		{Name: "quadratic mean", Call: al.Means, Params: params{"numbers": []float64{1, 2, 4}}, Field: "quadratic", Want: gomath.Sqrt(7)},
		{Name: "means empty", Call: al.Means, Params: params{"numbers": []interface{}{}}, Kind: "empty_set"},
		{Name: "means non-positive", Call: al.Means, Params: params{"numbers": []interface{}{1, 0}}, Kind: "non_positive"},
		{Name: "cauchy", Call: al.Cauchy, Params: params{"a": 1, "b": 2, "c": 2, "d": 4}, Want: 100.0},
		{Name: "cauchy condition", Call: al.Cauchy, Params: params{"a": 1, "b": 2, "c": 3, "d": 4}, Kind: "cauchy_condition"},
		{Name: "cauchy missing d", Call: al.Cauchy, Params: params{"a": 1, "b": 2, "c": 3}, Fails: true},
		{Name: "log", Call: al.Log, Params: params{"base": 2, "x": 1024}, Want: 10.0},
		{Name: "log base one", Call: al.Log, Params: params{"base": 1, "x": 8}, Kind: "invalid_base"},
		{Name: "log of zero", Call: al.Log, Params: params{"base": 10, "x": 0}, Kind: "invalid_argument"},
		{Name: "check log", Call: al.CheckLog, Params: params{"base": 10, "x": 5}, Want: true},
		{Name: "check log negative base", Call: al.CheckLog, Params: params{"base": -2, "x": 5}, Kind: "invalid_base"},
		{Name: "growth rate", Call: al.GrowthRate, Params: params{"present": 120, "previous": 100}, Want: 0.2},
		{Name: "growth from zero", Call: al.GrowthRate, Params: params{"present": 1, "previous": 0}, Kind: "zero_previous"},
		{Name: "complex add", Call: al.ComplexAdd, Params: params{"a": []float64{1, 2}, "b": []float64{3, -1}}, Want: map[string]float64{"re": 4, "im": 1}},
		{Name: "complex multiply", Call: al.ComplexMultiply, Params: params{"a": []float64{1, 2}, "b": params{"re": 3, "im": -1}}, Want: map[string]float64{"re": 5, "im": 5}},
		{Name: "complex divide", Call: al.ComplexDivide, Params: params{"a": []float64{5, 5}, "b": []float64{3, -1}}, Want: map[string]float64{"re": 1, "im": 2}},
		{Name: "complex divide by zero", Call: al.ComplexDivide, Params: params{"a": []float64{1, 2}, "b": []float64{1e-6, 0}}, Kind: "divide_by_zero"},
		{Name: "complex missing b", Call: al.ComplexAdd, Params: params{"a": []float64{1, 2}}, Fails: true},
		{Name: "complex conjugate", Call: al.ComplexConjugate, Params: params{"z": []float64{1, 2}}, Want: map[string]float64{"re": 1, "im": -2}},
		{Name: "complex modulus", Call: al.ComplexModulus, Params: params{"z": []float64{3, 4}}, Want: 5.0},
		{Name: "arithmetic term", Call: al.ArithmeticTerm, Params: params{"a1": 2, "d": 3, "n": 5}, Want: 14.0},
		{Name: "arithmetic sum", Call: al.ArithmeticSum, Params: params{"a1": 2, "d": 3, "n": 5}, Want: 40.0},
		{Name: "arithmetic sum of nothing", Call: al.ArithmeticSum, Params: params{"a1": 2, "d": 3, "n": 0}, Kind: "invalid_term_index"},
		{Name: "geometric term", Call: al.GeometricTerm, Params: params{"a1": 3, "r": 2, "n": 4}, Want: 24.0},
		{Name: "geometric sum", Call: al.GeometricSum, Params: params{"a1": 3, "r": 2, "n": 4}, Want: 45.0},
		{Name: "geometric unit ratio", Call: al.GeometricSum, Params: params{"a1": 3, "r": 1, "n": 4}, Want: 12.0},
		{Name: "geometric zero ratio", Call: al.GeometricTerm, Params: params{"a1": 3, "r": 0, "n": 4}, Kind: "zero_ratio"},
		{Name: "geometric term overflow", Call: al.GeometricTerm, Params: params{"a1": 1, "r": 10, "n": 400}, Kind: "non_finite"},
		{Name: "sequence missing n", Call: al.GeometricTerm, Params: params{"a1": 3, "r": 2}, Fails: true},
		{Name: "fibonacci", Call: al.Recurrence, Params: params{"initial": []interface{}{0, 1}, "coeffs": []interface{}{1, 1}, "n": 10}, Want: 55.0},
		{Name: "recurrence length mismatch", Call: al.Recurrence, Params: params{"initial": []interface{}{1}, "coeffs": []interface{}{1, 2}, "n": 3}, Kind: "coefficient_length"},
		{Name: "recurrence negative index", Call: al.Recurrence, Params: params{"initial": []interface{}{1}, "coeffs": []interface{}{1}, "n": -1}, Kind: "negative_index"},
		{Name: "recurrence index too large", Call: al.Recurrence, Params: params{"initial": []interface{}{1}, "coeffs": []interface{}{1}, "n": 2_000_000}, Fails: true},
	})
}
