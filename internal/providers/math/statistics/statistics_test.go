package statistics

import (
	gomath "math"
	"testing"

	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/tests/helpers/testutil"
)

type params = map[string]interface{}

func TestProbabilityTools(t *testing.T) {
	p := &ProbabilityOps{MathOps: &common.MathOps{}}
	testutil.RunKnownAnswers(t, []testutil.KnownAnswer{
		{Name: "independent", Call: p.Independent, Params: params{"pA": 0.5, "pB": 0.4, "pAB": 0.2}, Want: true},
		{Name: "dependent", Call: p.Independent, Params: params{"pA": 0.5, "pB": 0.4, "pAB": 0.3}, Want: false},
		{Name: "independent out of range", Call: p.Independent, Params: params{"pA": 1.2, "pB": 0.4, "pAB": 0.3}, Kind: "invalid_probability"},
		{Name: "independent missing pAB", Call: p.Independent, Params: params{"pA": 0.5, "pB": 0.4}, Fails: true},
		{Name: "classical", Call: p.Classical, Params: params{"favorable": 3, "total": 12}, Want: 0.25},
		{Name: "classical empty space", Call: p.Classical, Params: params{"favorable": 0, "total": 0}, Kind: "empty_sample_space"},
		{Name: "classical too many favorable", Call: p.Classical, Params: params{"favorable": 5, "total": 3}, Kind: "favorable_exceeds"},
		{Name: "classical fractional count", Call: p.Classical, Params: params{"favorable": 1.5, "total": 3}, Fails: true},
		{Name: "conditional", Call: p.Conditional, Params: params{"pAB": 0.2, "pB": 0.4}, Want: 0.5},
		{Name: "conditional on impossible event", Call: p.Conditional, Params: params{"pAB": 0, "pB": 0}, Kind: "zero_probability"},
		{Name: "multiplication", Call: p.Multiplication, Params: params{"pA": 0.5, "pBGivenA": 0.6}, Want: 0.3},
		{Name: "multiplication negative", Call: p.Multiplication, Params: params{"pA": -0.1, "pBGivenA": 0.6}, Kind: "invalid_probability"},
		{Name: "total", Call: p.Total, Params: params{"partition": []interface{}{0.3, 0.7}, "conditional": []interface{}{0.5, 0.1}}, Want: 0.22},
		{Name: "total mismatch", Call: p.Total, Params: params{"partition": []float64{0.5}, "conditional": []float64{0.1, 0.2}}, Kind: "length_mismatch"},
		{Name: "total empty", Call: p.Total, Params: params{"partition": []float64{}, "conditional": []float64{}}, Kind: "empty_events"},
		{Name: "total missing conditional", Call: p.Total, Params: params{"partition": []float64{1}}, Fails: true},
		{Name: "total rejects NaN", Call: p.Total, Params: params{"partition": []float64{gomath.NaN()}, "conditional": []float64{1}}, Fails: true},
		{Name: "bayes", Call: p.Bayes, Params: params{"prior": 0.5, "likelihood": 0.8, "evidence": 0.5}, Want: 0.8},
		{Name: "bayes zero evidence", Call: p.Bayes, Params: params{"prior": 0.5, "likelihood": 0.8, "evidence": 0}, Kind: "zero_probability"},
	})
}

func TestRandomVariableTools(t *testing.T) {
	r := &RandomOps{MathOps: &common.MathOps{}}
	dist := params{"values": []interface{}{1, 2, 3}, "probs": []interface{}{0.2, 0.5, 0.3}}
	testutil.RunKnownAnswers(t, []testutil.KnownAnswer{
		{Name: "expectation", Call: r.Expectation, Params: dist, Want: 2.1},
		{Name: "variance", Call: r.Variance, Params: dist, Want: 0.49},
		{Name: "expectation bad sum", Call: r.Expectation, Params: params{"values": []float64{1, 2}, "probs": []float64{0.5, 0.4}}, Kind: "probability_sum"},
		{Name: "expectation mismatch", Call: r.Expectation, Params: params{"values": []float64{1, 2}, "probs": []float64{1}}, Kind: "length_mismatch"},
		{Name: "variance invalid probability", Call: r.Variance, Params: params{"values": []float64{1, 2}, "probs": []float64{1.5, -0.5}}, Kind: "invalid_probability"},
		{Name: "mean scalar", Call: r.MeanScalar, Params: params{"a": 3, "meanX": 2}, Want: 6.0},
		{Name: "mean sum", Call: r.MeanSum, Params: params{"meanX": 1.5, "meanY": 2.5}, Want: 4.0},
		{Name: "mean linear", Call: r.MeanLinear, Params: params{"coeffs": []float64{2, 3}, "means": []float64{1, 1}, "constant": 4}, Want: 9.0},
		{Name: "mean linear without constant", Call: r.MeanLinear, Params: params{"coeffs": []float64{2, 3}, "means": []float64{1, 1}}, Want: 5.0},
		{Name: "mean linear mismatch", Call: r.MeanLinear, Params: params{"coeffs": []float64{2}, "means": []float64{1, 1}}, Kind: "length_mismatch"},
		{Name: "variance scalar", Call: r.VarianceScalar, Params: params{"a": -2, "varX": 3}, Want: 12.0},
		{Name: "variance scalar negative", Call: r.VarianceScalar, Params: params{"a": 2, "varX": -1}, Kind: "negative_variance"},
		{Name: "variance sum", Call: r.VarianceSum, Params: params{"varX": 1, "varY": 2}, Want: 3.0},
		{Name: "variance linear", Call: r.VarianceLinear, Params: params{"coeffs": []float64{2, 1}, "variances": []float64{1, 4}}, Want: 8.0},
		{Name: "variance linear negative", Call: r.VarianceLinear, Params: params{"coeffs": []float64{1}, "variances": []float64{-1}}, Kind: "negative_variance"},
	})
}

func TestRegressionTools(t *testing.T) {
	r := &RegressionOps{MathOps: &common.MathOps{}}
	line := params{"x": []interface{}{1, 2, 3}, "y": []interface{}{3, 5, 7}}
	testutil.RunKnownAnswers(t, []testutil.KnownAnswer{
		{Name: "least squares slope", Call: r.LeastSquares, Params: line, Field: "slope", Want: 2.0},
		{Name: "least squares intercept", Call: r.LeastSquares, Params: line, Field: "intercept", Want: 1.0},
		{Name: "least squares single point", Call: r.LeastSquares, Params: params{"x": []float64{1}, "y": []float64{1}}, Kind: "insufficient_data"},
		{Name: "least squares vertical", Call: r.LeastSquares, Params: params{"x": []float64{1, 1}, "y": []float64{1, 2}}, Kind: "zero_variance"},
		{Name: "least squares mismatch", Call: r.LeastSquares, Params: params{"x": []float64{1, 2, 3}, "y": []float64{1, 2}}, Kind: "length_mismatch"},
		{Name: "predict", Call: r.Predict, Params: params{"x": 2, "slope": 3, "intercept": 1}, Want: 7.0},
		{Name: "predict missing intercept", Call: r.Predict, Params: params{"x": 2, "slope": 3}, Fails: true},
		{Name: "chi squared", Call: r.ChiSquared, Params: params{"observed": []float64{10, 20}, "expected": []float64{15, 15}}, Want: 10.0 / 3.0},
		{Name: "chi squared zero expected", Call: r.ChiSquared, Params: params{"observed": []float64{1, 2}, "expected": []float64{0, 1}}, Kind: "non_positive_expected"},
		{Name: "chi squared negative observed", Call: r.ChiSquared, Params: params{"observed": []float64{-1, 2}, "expected": []float64{1, 1}}, Kind: "negative_observed"},
		{Name: "median of even sample", Call: r.Percentile, Params: params{"p": 50, "numbers": []float64{4, 1, 3, 2}}, Want: 2.5},
		{Name: "percentile between ranks", Call: r.Percentile, Params: params{"p": 30, "numbers": []float64{5, 4, 3, 2, 1}}, Want: 2.0},
		{Name: "percentile zero", Call: r.Percentile, Params: params{"p": 0, "numbers": []float64{5, 4, 3}}, Want: 3.0},
		{Name: "percentile above range", Call: r.Percentile, Params: params{"p": 101, "numbers": []float64{1}}, Kind: "invalid_percentile"},
		{Name: "percentile empty", Call: r.Percentile, Params: params{"p": 50, "numbers": []float64{}}, Kind: "empty_sample"},
		{Name: "mean", Call: r.Mean, Params: params{"numbers": []interface{}{1, 2, 3, 4}}, Want: 2.5},
		{Name: "variance", Call: r.Variance, Params: params{"numbers": []interface{}{1, 2, 3, 4}}, Want: 1.25},
		{Name: "mean empty", Call: r.Mean, Params: params{"numbers": []interface{}{}}, Kind: "empty_sample"},
	})
}
