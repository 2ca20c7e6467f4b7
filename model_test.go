package eos

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = Params{E0: -10.0, V0: 20.0, B0: 0.5, B01: 4.0}

func TestEnergyAtV0(Te *testing.T) {
	e, err := testParams.Energy(testParams.V0)
	require.NoError(Te, err)
	assert.Equal(Te, testParams.E0, e)
}

func TestEnergyMinimum(Te *testing.T) {
	for _, P := range []Params{testParams, {E0: 3, V0: 11.5, B0: 1.2, B01: 5.5}, {E0: -1, V0: 40, B0: 0.1, B01: 3}} {
		e0, err := P.Energy(P.V0)
		require.NoError(Te, err)
		for _, dv := range []float64{1e-3, 0.05, 0.5} {
			below, err := P.Energy(P.V0 - dv)
			require.NoError(Te, err)
			above, err := P.Energy(P.V0 + dv)
			require.NoError(Te, err)
			assert.Greater(Te, below, e0, "params %s, dv %g", P, dv)
			assert.Greater(Te, above, e0, "params %s, dv %g", P, dv)
		}
	}
}

func TestEnergiesMatchEnergy(Te *testing.T) {
	vols := []float64{18.8, 19.4, 20, 20.6, 21.2}
	dst := make([]float64, 0, len(vols))
	es, err := testParams.Energies(vols, dst)
	require.NoError(Te, err)
	require.Len(Te, es, len(vols))
	for i, v := range vols {
		e, err := testParams.Energy(v)
		require.NoError(Te, err)
		assert.Equal(Te, e, es[i])
	}
}

func TestEnergyInvalidVolume(Te *testing.T) {
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := testParams.Energy(v)
		assert.ErrorIs(Te, err, ErrInvalidInput, "volume %g", v)
	}
	_, err := testParams.Energies([]float64{19, 0, 21})
	assert.ErrorIs(Te, err, ErrInvalidInput)
}

func TestPressure(Te *testing.T) {
	P := Params{E0: -10, V0: 20, B0: 0.5, B01: 4.5}
	p0, err := P.Pressure(P.V0)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, p0)
	const h = 1e-5
	for _, v := range []float64{18.5, 19.5, 20.5, 21.5} {
		p, err := P.Pressure(v)
		require.NoError(Te, err)
		up, _ := P.Energy(v + h)
		down, _ := P.Energy(v - h)
		assert.InDelta(Te, -(up-down)/(2*h), p, 1e-7, "volume %g", v)
		if v < P.V0 {
			assert.Positive(Te, p)
		} else {
			assert.Negative(Te, p)
		}
	}
}

func TestGrid(Te *testing.T) {
	pts, err := Grid(testParams, 19, 21, 0.5)
	require.NoError(Te, err)
	require.Len(Te, pts, 4)
	for i, p := range pts {
		assert.InDelta(Te, 19+0.5*float64(i), p.X, 1e-12)
		e, _ := testParams.Energy(p.X)
		assert.Equal(Te, e, p.Y)
	}
	_, err = Grid(testParams, 19, 21, 0)
	assert.ErrorIs(Te, err, ErrInvalidInput)
	_, err = Grid(testParams, 21, 19, 0.1)
	assert.ErrorIs(Te, err, ErrInvalidInput)
}

func TestParamsSlice(Te *testing.T) {
	s := testParams.Slice()
	assert.Equal(Te, []float64{-10, 20, 0.5, 4}, s)
	assert.Equal(Te, testParams, ParamsFromSlice(s))
	assert.Equal(Te, 0.0, testParams.Relative().E0)
	assert.Panics(Te, func() { ParamsFromSlice([]float64{1, 2, 3}) })
}

func TestSamples(Te *testing.T) {
	s, err := NewSamples([]float64{21, 19, 20}, []float64{-9.9, -9.8, -10})
	require.NoError(Te, err)
	assert.Equal(Te, []float64{19, 20, 21}, s.Volumes())
	assert.Equal(Te, []float64{-9.8, -10, -9.9}, s.Energies())
	vmin, vmax := s.Range()
	assert.Equal(Te, 19.0, vmin)
	assert.Equal(Te, 21.0, vmax)
	assert.Equal(Te, []float64{0.2, 0, 0.1}, roundAll(s.Shift(10).Energies()))

	//Samples is a plotter.XYer, so it can go back and forth.
	s2, err := SamplesFromXYer(s)
	require.NoError(Te, err)
	assert.Equal(Te, s, s2)

	_, err = NewSamples([]float64{1, 2}, []float64{1})
	assert.ErrorIs(Te, err, ErrInvalidInput)
}

func roundAll(s []float64) []float64 {
	for i, v := range s {
		s[i] = math.Round(v*1e9) / 1e9
	}
	return s
}

func TestValidate(Te *testing.T) {
	good := Samples{{18, -1}, {19, -1.1}, {20, -1.2}, {21, -1.1}}
	assert.NoError(Te, good.Validate(MinSamples))
	cases := map[string]Samples{
		"too few":    good[:3],
		"duplicate":  {{18, -1}, {19, -1.1}, {19, -1.2}, {21, -1.1}},
		"zero":       {{0, -1}, {19, -1.1}, {20, -1.2}, {21, -1.1}},
		"negative":   {{-18, -1}, {19, -1.1}, {20, -1.2}, {21, -1.1}},
		"nan energy": {{18, math.NaN()}, {19, -1.1}, {20, -1.2}, {21, -1.1}},
		"inf volume": {{math.Inf(1), -1}, {19, -1.1}, {20, -1.2}, {21, -1.1}},
	}
	for name, c := range cases {
		err := c.Validate(MinSamples)
		assert.ErrorIs(Te, err, ErrInvalidInput, name)
	}
}
