package eos

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrate(Te *testing.T) {
	cases := []struct {
		name string
		f    func(float64) float64
		a, b float64
		want float64
	}{
		{"x^5", func(x float64) float64 { return math.Pow(x, 5) }, 0, 1, 1.0 / 6},
		{"sin", math.Sin, 0, math.Pi, 2},
		{"exp", math.Exp, 0, 2, math.Exp(2) - 1},
		{"empty", math.Exp, 1, 1, 0},
	}
	for _, c := range cases {
		v, err := Integrate(c.f, c.a, c.b, nil)
		require.NoError(Te, err, c.name)
		assert.InDelta(Te, c.want, v, 1e-9, c.name)
	}
}

func TestIntegrateFailure(Te *testing.T) {
	_, err := Integrate(func(x float64) float64 { return math.NaN() }, 0, 1, nil)
	assert.ErrorIs(Te, err, ErrIntegrationFailure)

	o := DefaultOptions()
	o.QuadMaxDepth = 2
	_, err = Integrate(func(x float64) float64 { return math.Abs(x - 0.3) }, 0, 1, o)
	assert.ErrorIs(Te, err, ErrIntegrationFailure)

	_, err = Integrate(math.Sin, 1, 0, nil)
	assert.ErrorIs(Te, err, ErrInvalidInput)
	o = DefaultOptions()
	o.QuadPoints = 0
	_, err = Integrate(math.Sin, 0, 1, o)
	assert.ErrorIs(Te, err, ErrInvalidInput)
}

func TestIntegrateKink(Te *testing.T) {
	v, err := Integrate(func(x float64) float64 { return math.Abs(x - 0.3) }, 0, 1, nil)
	require.NoError(Te, err)
	assert.InDelta(Te, 0.29, v, 1e-9)
}
