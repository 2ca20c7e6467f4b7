package eos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestB01Guesses(Te *testing.T) {
	g, err := B01Guesses(0.1, 10, 0.1)
	require.NoError(Te, err)
	require.Len(Te, g, 100)
	assert.Equal(Te, 0.1, g[0])
	assert.InDelta(Te, 10, g[len(g)-1], 1e-9)
	_, err = B01Guesses(1, 0, 0.1)
	assert.ErrorIs(Te, err, ErrInvalidInput)
	_, err = B01Guesses(0, 1, 0)
	assert.ErrorIs(Te, err, ErrInvalidInput)
}

func TestFitB01Sweep(Te *testing.T) {
	P := Params{E0: -100, V0: 21, B0: 0.8, B01: 3.5}
	S := synthetic(Te, P, 18, 24, 7, 1e-6, -1e-6, 0.5e-6)
	guesses := []float64{1, 3.5, 6}
	r, err := FitB01Sweep(S, guesses, nil)
	require.NoError(Te, err)
	assert.InDelta(Te, 21, r.Params.V0, 0.01)
	require.NotNil(Te, r.Cov)
	best := floats.Sum(r.StdErr())
	//no single starting point may do better than the chosen one.
	for _, b01 := range guesses {
		g := InitialGuess(S)
		g.B0 = DefaultOptions().SweepB0
		g.B01 = b01
		f, err := FitFrom(S, g, nil)
		require.NoError(Te, err, "B01 guess %g", b01)
		if se := f.StdErr(); se != nil {
			assert.LessOrEqual(Te, best, floats.Sum(se), "B01 guess %g", b01)
		}
	}
}

func TestFitB01SweepErrors(Te *testing.T) {
	S := synthetic(Te, testParams, 18.8, 21.2, 7)
	_, err := FitB01Sweep(S, nil, nil)
	assert.ErrorIs(Te, err, ErrInvalidInput)
	_, err = FitB01Sweep(S[:2], []float64{4}, nil)
	assert.ErrorIs(Te, err, ErrInvalidInput)
	o := DefaultOptions()
	o.MaxIterations = 1
	_, err = FitB01Sweep(S, []float64{1, 4}, o)
	assert.ErrorIs(Te, err, ErrFitFailure)
}
