package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, -5, 6)

	assert.Equal(t, NewVector3(5, -3, 9), a.Add(b))
	assert.Equal(t, NewVector3(-3, 7, -3), a.Sub(b))
	assert.Equal(t, NewVector3(2, 4, 6), a.Scale(2))
	assert.Equal(t, 12.0, a.Dot(b))
	assert.Equal(t, NewVector3(27, 6, -13), a.Cross(b))
	assert.InDelta(t, 5.0, NewVector3(3, 4, 0).Magnitude(), Epsilon)
}

func TestCrossProduct(t *testing.T) {
	vectors := []Vector3{
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
		NewVector3(1, 2, 3),
		NewVector3(-2.5, 0.5, 7),
		NewVector3(1e3, -4e2, 3e-1),
	}

	t.Run("right hand rule", func(t *testing.T) {
		assert.Equal(t, NewVector3(0, 0, 1), NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0)))
	})

	for _, v := range vectors {
		for _, w := range vectors {
			vw := v.Cross(w)
			wv := w.Cross(v)
			assert.InDelta(t, 0, vw.Add(wv).Magnitude(), Epsilon, "anticommutative for %v, %v", v, w)
			assert.InDelta(t, 0, v.Dot(vw), 1e-6, "orthogonal to first operand")
			assert.InDelta(t, 0, w.Dot(vw), 1e-6, "orthogonal to second operand")
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Run("unit length", func(t *testing.T) {
		for _, v := range []Vector3{
			NewVector3(3, 4, 0),
			NewVector3(-1, -1, -1),
			NewVector3(1e-5, 0, 0),
			NewVector3(123456, -7, 0.25),
		} {
			unit, err := v.Normalize()
			require.NoError(t, err)
			assert.InDelta(t, 1.0, unit.Magnitude(), Epsilon)
		}
	})

	t.Run("zero vector", func(t *testing.T) {
		_, err := NewVector3(0, 0, 0).Normalize()
		assert.ErrorIs(t, err, ErrZeroVector)

		_, err = NewVector3(1e-11, 0, 0).Normalize()
		assert.ErrorIs(t, err, ErrZeroVector)
	})
}

func TestIsCollinear(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector3
		want bool
	}{
		{"same direction", NewVector3(1, 2, 3), NewVector3(2, 4, 6), true},
		{"opposite direction", NewVector3(1, 2, 3), NewVector3(-3, -6, -9), true},
		{"orthogonal", NewVector3(1, 0, 0), NewVector3(0, 1, 0), false},
		{"skewed", NewVector3(1, 1, 0), NewVector3(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.IsCollinear(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("zero operand", func(t *testing.T) {
		_, err := NewVector3(1, 0, 0).IsCollinear(Vector3{})
		assert.ErrorIs(t, err, ErrZeroVector)
		_, err = Vector3{}.IsCollinear(NewVector3(1, 0, 0))
		assert.ErrorIs(t, err, ErrZeroVector)
	})
}

func TestCosAngle(t *testing.T) {
	cos, err := CosAngle(NewVector3(1, 0, 0), NewVector3(1, 1, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0.7071067811865476, cos, Epsilon)

	_, err = CosAngle(NewVector3(1, 0, 0), Vector3{})
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestIsZeroTolerance(t *testing.T) {
	tests := []struct {
		v    Vector3
		want bool
	}{
		{Vector3{}, true},
		{NewVector3(Epsilon/2, 0, 0), true},
		{NewVector3(0, -Epsilon/4, Epsilon/4), true},
		{NewVector3(1.5*Epsilon, 0, 0), false},
		{NewVector3(0, 0, 2*Epsilon), false},
		{NewVector3(1, 0, 0), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.IsZero(), "%v", tt.v)
		_, err := tt.v.Normalize()
		assert.Equal(t, tt.want, err != nil, "%v", tt.v)
	}
}
