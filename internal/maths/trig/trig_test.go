package trig

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-12

func TestTan(t *testing.T) {
	v, err := Tan(gomath.Pi / 4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, delta)

	_, err = Tan(gomath.Pi / 2)
	assert.ErrorIs(t, err, ErrUndefined)
	_, err = Tan(3 * gomath.Pi / 2)
	assert.ErrorIs(t, err, ErrUndefined)
}

func TestConversions(t *testing.T) {
	assert.InDelta(t, gomath.Pi, DegToRad(180), delta)
	assert.InDelta(t, 90.0, RadToDeg(gomath.Pi/2), delta)

	c, err := SinToCos(0.6)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, c, delta)
	s, err := CosToSin(0.8)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, s, delta)

	_, err = SinToCos(1.5)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = CosToSin(-1.01)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestAngleSums(t *testing.T) {
	a, b := 0.7, 0.3
	assert.InDelta(t, gomath.Sin(a+b), SinAdd(a, b), delta)
	assert.InDelta(t, gomath.Sin(a-b), SinSub(a, b), delta)
	assert.InDelta(t, gomath.Cos(a+b), CosAdd(a, b), delta)
	assert.InDelta(t, gomath.Cos(a-b), CosSub(a, b), delta)
}

func TestMultipleAngles(t *testing.T) {
	x := 0.4
	assert.InDelta(t, gomath.Sin(2*x), SinDouble(x), delta)
	assert.InDelta(t, gomath.Cos(2*x), CosDouble(x), delta)

	v, err := TanDouble(x)
	require.NoError(t, err)
	assert.InDelta(t, gomath.Tan(2*x), v, 1e-9)
	_, err = TanDouble(gomath.Pi / 4)
	assert.ErrorIs(t, err, ErrUndefined)

	c := gomath.Cos(x)
	s, err := SinHalf(c)
	require.NoError(t, err)
	assert.InDelta(t, gomath.Sin(x/2), s, delta)
	h, err := CosHalf(c)
	require.NoError(t, err)
	assert.InDelta(t, gomath.Cos(x/2), h, delta)
	th, err := TanHalf(c)
	require.NoError(t, err)
	assert.InDelta(t, gomath.Tan(x/2), th, 1e-9)

	_, err = TanHalf(-1)
	assert.ErrorIs(t, err, ErrUndefined)
	_, err = SinHalf(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSumToProduct(t *testing.T) {
	a, b := 1.1, 0.2
	assert.InDelta(t, gomath.Sin(a)+gomath.Sin(b), SinSumToProduct(a, b), delta)
	assert.InDelta(t, gomath.Sin(a)-gomath.Sin(b), SinDiffToProduct(a, b), delta)
	assert.InDelta(t, gomath.Cos(a)+gomath.Cos(b), CosSumToProduct(a, b), delta)
	assert.InDelta(t, gomath.Cos(a)-gomath.Cos(b), CosDiffToProduct(a, b), delta)
}

func TestProductToSum(t *testing.T) {
	a, b := 1.1, 0.2
	p, q := SinCosToSum(a, b)
	assert.InDelta(t, gomath.Sin(a)*gomath.Cos(b), p+q, delta)
	p, q = SinSinToSum(a, b)
	assert.InDelta(t, gomath.Sin(a)*gomath.Sin(b), p+q, delta)
	p, q = CosCosToSum(a, b)
	assert.InDelta(t, gomath.Cos(a)*gomath.Cos(b), p+q, delta)
}

func TestTanHalfSubstitution(t *testing.T) {
	x := 0.9
	half := gomath.Tan(x / 2)
	assert.InDelta(t, gomath.Sin(x), SinFromTanHalf(half), delta)
	assert.InDelta(t, gomath.Cos(x), CosFromTanHalf(half), delta)

	v, err := TanFromTanHalf(half)
	require.NoError(t, err)
	assert.InDelta(t, gomath.Tan(x), v, 1e-9)
	_, err = TanFromTanHalf(1)
	assert.ErrorIs(t, err, ErrUndefined)
}

func TestAuxiliaryAngle(t *testing.T) {
	aux, err := AuxiliaryAngle(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, gomath.Sqrt2, aux.Amplitude, delta)
	assert.InDelta(t, gomath.Pi/4, aux.Phase, delta)

	a, b := InverseAuxiliaryAngle(aux)
	assert.InDelta(t, 1.0, a, delta)
	assert.InDelta(t, 1.0, b, delta)

	x := 0.35
	assert.InDelta(t, gomath.Sin(x)+gomath.Cos(x), aux.Amplitude*gomath.Sin(x+aux.Phase), delta)

	_, err = AuxiliaryAngle(0, 0)
	assert.ErrorIs(t, err, ErrUndefined)
}

func TestPeriod(t *testing.T) {
	p, err := Period(2)
	require.NoError(t, err)
	assert.InDelta(t, gomath.Pi, p, delta)

	p, err = Period(-4)
	require.NoError(t, err)
	assert.InDelta(t, gomath.Pi/2, p, delta)

	_, err = Period(0)
	assert.ErrorIs(t, err, ErrZeroFrequency)
}
