package eos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeltaSameCurve(Te *testing.T) {
	S := synthetic(Te, testParams, 18.8, 21.2, 7)
	d, err := Delta(S, S, 1, nil)
	require.NoError(Te, err)
	assert.InDelta(Te, 0, d, 1e-12)
}

func TestDeltaKnownShift(Te *testing.T) {
	//A constant energy difference c gives c*1000/natoms.
	a := synthetic(Te, testParams, 18.8, 21.2, 7)
	shifted := testParams
	shifted.E0 += 0.002
	b := synthetic(Te, shifted, 18.8, 21.2, 7)
	d, err := Delta(a, b, 2, nil)
	require.NoError(Te, err)
	assert.InDelta(Te, 1.0, d, 1e-6)
	d2, err := Delta(b, a, 2, nil)
	require.NoError(Te, err)
	assert.InDelta(Te, d, d2, 1e-9)
}

func TestDeltaGrowsWithB0(Te *testing.T) {
	a := synthetic(Te, testParams, 18.8, 21.2, 7)
	prev := 0.0
	for _, b0 := range []float64{0.55, 0.6, 0.7} {
		P := testParams
		P.B0 = b0
		b := synthetic(Te, P, 18.8, 21.2, 7)
		d, err := Delta(a, b, 1, nil)
		require.NoError(Te, err)
		assert.Greater(Te, d, prev, "B0 %g", b0)
		prev = d
	}
}

func TestDeltaRange(Te *testing.T) {
	a := synthetic(Te, testParams, 18.8, 21.2, 7)
	for name, c := range map[string][2]float64{
		"both ends": {18.801, 21.201},
		"one end":   {18.8, 21.201},
	} {
		b := synthetic(Te, testParams, c[0], c[1], 7)
		_, err := Delta(a, b, 1, nil)
		assert.ErrorIs(Te, err, ErrMismatchedRange, name)
		assert.NotErrorIs(Te, err, ErrFitFailure, name)
	}
	b := synthetic(Te, testParams, 18.80005, 21.20005, 7)
	_, err := Delta(a, b, 1, nil)
	assert.NoError(Te, err)
	vmin, vmax, err := CheckRange(a, b, 1e-4)
	require.NoError(Te, err)
	assert.Equal(Te, 18.80005, vmin)
	assert.Equal(Te, 21.2, vmax)
}

func TestDeltaErrors(Te *testing.T) {
	a := synthetic(Te, testParams, 18.8, 21.2, 7)
	o := DefaultOptions()
	o.MaxIterations = 1
	_, err := Delta(a, a, 1, o)
	assert.ErrorIs(Te, err, ErrFitFailure)

	_, err = Delta(a, a, 0, nil)
	assert.ErrorIs(Te, err, ErrInvalidInput)
	_, err = Delta(a, a[:3], 1, nil)
	assert.ErrorIs(Te, err, ErrInvalidInput)
	_, err = DeltaParams(testParams, testParams, 21, 19, 1, nil)
	assert.ErrorIs(Te, err, ErrInvalidInput)
}

//Total energies from plane-wave codes are thousands of eV, while the curves differ by meV.
func TestDeltaTotalEnergies(Te *testing.T) {
	P := Params{E0: -15793.5, V0: 160.2, B0: 0.6, B01: 4.5}
	vmin, vmax := 0.94*P.V0, 1.06*P.V0
	steps := []float64{-1, 0, 1}
	for _, i := range steps {
		for _, j := range steps {
			for _, k := range steps {
				for _, l := range steps {
					Q := Params{E0: P.E0 + 1e-3*i, V0: P.V0 * (1 + 1e-3*j), B0: P.B0 * (1 + 1e-2*k), B01: P.B01 + 0.1*l}
					d, err := DeltaParams(P, Q, vmin, vmax, 2, nil)
					require.NoError(Te, err, "params %s", Q)
					assert.True(Te, d >= 0 && finite(d), "params %s: %g", Q, d)
				}
			}
		}
	}

	shifted := P
	shifted.E0 += 1e-3
	d, err := DeltaParams(P, shifted, vmin, vmax, 2, nil)
	require.NoError(Te, err)
	assert.InDelta(Te, 0.5, d, 1e-8)

	a := synthetic(Te, P, vmin, vmax, DefaultPoints)
	b := synthetic(Te, shifted, vmin, vmax, DefaultPoints)
	d, err = Delta(a, b, 2, nil)
	require.NoError(Te, err)
	assert.InDelta(Te, 0.5, d, 1e-6)
}

func TestDeltaKeepsInvalidInput(Te *testing.T) {
	a := synthetic(Te, testParams, 18.8, 21.2, 7)
	o := DefaultOptions()
	o.MaxIterations = 0
	_, err := Delta(a, a, 1, o)
	assert.ErrorIs(Te, err, ErrInvalidInput)
	assert.NotErrorIs(Te, err, ErrFitFailure)
}
