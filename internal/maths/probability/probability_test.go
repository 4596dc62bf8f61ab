package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsIndependent(t *testing.T) {
	ok, err := IsIndependent(0.5, 0.4, 0.2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsIndependent(0.5, 0.4, 0.3)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = IsIndependent(1.2, 0.4, 0.3)
	assert.ErrorIs(t, err, ErrInvalidProbability)
}

func TestClassical(t *testing.T) {
	p, err := Classical(3, 12)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, p, 1e-12)

	_, err = Classical(1, 0)
	assert.ErrorIs(t, err, ErrEmptySampleSpace)
	_, err = Classical(13, 12)
	assert.ErrorIs(t, err, ErrFavorableExceeds)
}

func TestConditionalAndBayes(t *testing.T) {
	p, err := Conditional(0.12, 0.4)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, p, 1e-12)
	_, err = Conditional(0.1, 0)
	assert.ErrorIs(t, err, ErrZeroProbability)
	_, err = Conditional(-0.1, 0.5)
	assert.ErrorIs(t, err, ErrInvalidProbability)

	p, err = MultiplicationRule(0.4, 0.3)
	require.NoError(t, err)
	assert.InDelta(t, 0.12, p, 1e-12)

	p, err = Bayes(0.01, 0.9, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 0.18, p, 1e-12)
	_, err = Bayes(0.01, 0.9, 0)
	assert.ErrorIs(t, err, ErrZeroProbability)
}

func TestTotalProbability(t *testing.T) {
	p, err := TotalProbability([]float64{0.3, 0.7}, []float64{0.5, 0.1})
	require.NoError(t, err)
	assert.InDelta(t, 0.22, p, 1e-12)

	_, err = TotalProbability(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyEvents)
	_, err = TotalProbability([]float64{0.3, 0.7}, []float64{0.5})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	_, err = TotalProbability([]float64{0.3, 0.7}, []float64{0.5, 1.5})
	assert.ErrorIs(t, err, ErrInvalidProbability)
}

func TestRandomVariable(t *testing.T) {
	values := []float64{0, 1, 2}
	probs := []float64{0.25, 0.5, 0.25}

	mean, err := ExpectedValue(values, probs)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, mean, 1e-12)

	v, err := Variance(values, probs)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-12)

	_, err = ExpectedValue(values, []float64{0.5, 0.5, 0.5})
	assert.ErrorIs(t, err, ErrProbabilitySum)
	_, err = Variance(values, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	_, err = ExpectedValue(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyEvents)
}

func TestLinearRules(t *testing.T) {
	assert.Equal(t, 7.0, MeanConstant(7))
	assert.Equal(t, 6.0, MeanScalarMultiple(3, 2))
	assert.Equal(t, 5.0, MeanSum(2, 3))
	assert.Equal(t, 0.0, VarianceConstant(7))

	m, err := MeanLinearCombination([]float64{2, 3}, []float64{1, 4}, 5)
	require.NoError(t, err)
	assert.InDelta(t, 19.0, m, 1e-12)
	_, err = MeanLinearCombination([]float64{2}, []float64{1, 4}, 5)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	v, err := VarianceScalarMultiple(-3, 2)
	require.NoError(t, err)
	assert.InDelta(t, 18.0, v, 1e-12)
	_, err = VarianceScalarMultiple(2, -1)
	assert.ErrorIs(t, err, ErrNegativeVariance)

	v, err = VarianceSumIndependent(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v, 1e-12)

	v, err = VarianceLinearCombination([]float64{2, 3}, []float64{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 22.0, v, 1e-12)
	_, err = VarianceLinearCombination([]float64{2, 3}, []float64{1, -2})
	assert.ErrorIs(t, err, ErrNegativeVariance)
}

func TestLeastSquares(t *testing.T) {
	line, err := LeastSquares([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, line.Slope, 1e-9)
	assert.InDelta(t, 1.0, line.Intercept, 1e-9)
	assert.InDelta(t, 21.0, EmpiricalRegression(10, line), 1e-9)

	_, err = LeastSquares([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrInsufficientData)
	_, err = LeastSquares([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	_, err = LeastSquares([]float64{2, 2, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrZeroVariance)
}

func TestChiSquared(t *testing.T) {
	chi, err := ChiSquared([]float64{10, 20, 30}, []float64{20, 20, 20})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, chi, 1e-12)

	_, err = ChiSquared([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	_, err = ChiSquared(nil, nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
	_, err = ChiSquared([]float64{-1}, []float64{1})
	assert.ErrorIs(t, err, ErrNegativeObserved)
	_, err = ChiSquared([]float64{1}, []float64{0})
	assert.ErrorIs(t, err, ErrNonPositiveExpected)
}

func TestPercentile(t *testing.T) {
	data := []float64{40, 10, 30, 20}
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 10},
		{10, 10},
		{25, 15},
		{50, 25},
		{60, 30},
		{100, 40},
	}
	for _, tt := range tests {
		got, err := Percentile(tt.p, data)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-12, "p=%v", tt.p)
	}
	assert.Equal(t, []float64{40, 10, 30, 20}, data, "input must not be reordered")

	_, err := Percentile(-1, data)
	assert.ErrorIs(t, err, ErrInvalidPercentile)
	_, err = Percentile(101, data)
	assert.ErrorIs(t, err, ErrInvalidPercentile)
	_, err = Percentile(50, nil)
	assert.ErrorIs(t, err, ErrEmptySample)
}

func TestSampleMoments(t *testing.T) {
	sample := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	mean, err := SampleMean(sample)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, mean, 1e-12)

	v, err := SampleVariance(sample)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, v, 1e-12)

	_, err = SampleMean(nil)
	assert.ErrorIs(t, err, ErrEmptySample)
	_, err = SampleVariance(nil)
	assert.ErrorIs(t, err, ErrEmptySample)
}
