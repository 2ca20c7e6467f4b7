/*
 * model.go, part of goEoS.
 *
 * Copyright 2026 Raul Mera Adasme <rauldotmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package eos

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
)

// Params contains the parameters of the third-order Birch-Murnaghan equation of state.
// No physical bounds are enforced, a fit can produce negative or oddly scaled values.
type Params struct {
	E0  float64 //energy at the equilibrium volume
	V0  float64 //equilibrium volume
	B0  float64 //bulk modulus at V0, in energy/volume units
	B01 float64 //pressure derivative of the bulk modulus, dimensionless
}

// ParamsFromSlice returns a Params from a slice with E0, V0, B0 and B01, in that order.
// It panics if the slice doesn't have 4 elements.
func ParamsFromSlice(s []float64) Params {
	if len(s) != 4 {
		panic(ErrParamLen)
	}
	return Params{E0: s[0], V0: s[1], B0: s[2], B01: s[3]}
}

// Slice returns the parameters as a slice with E0, V0, B0 and B01, in that order.
// If a dst slice of capacity 4 or more is given, it is used.
func (P Params) Slice(dst ...[]float64) []float64 {
	var ret []float64
	if len(dst) > 0 && cap(dst[0]) >= 4 {
		ret = dst[0][:4]
	} else {
		ret = make([]float64, 4)
	}
	ret[0], ret[1], ret[2], ret[3] = P.E0, P.V0, P.B0, P.B01
	return ret
}

// String returns a string representation of the parameters.
func (P Params) String() string {
	return fmt.Sprintf("E0: %.8f, V0: %.6f, B0: %.6f, B01: %.6f", P.E0, P.V0, P.B0, P.B01)
}

// Relative returns a copy of the parameters with E0 set to zero, for curves
// that are compared relative to their own minimum.
func (P Params) Relative() Params {
	P.E0 = 0
	return P
}

// IsFinite returns true if no parameter is NaN or infinite.
func (P Params) IsFinite() bool {
	for _, v := range []float64{P.E0, P.V0, P.B0, P.B01} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// bm is the third-order Birch-Murnaghan energy-volume relation. It performs no checks.
func bm(v float64, P Params) float64 {
	return P.E0 + correction(v, P)
}

// correction is the Birch-Murnaghan energy relative to E0. Differences between curves
// must be taken on it, with the E0 difference added apart.
func correction(v float64, P Params) float64 {
	r := math.Pow(P.V0/v, 2.0/3.0)
	return 9.0 / 16.0 * P.B0 * P.V0 * (r - 1) * (r - 1) * (2 + (P.B01-4)*(r-1))
}

func checkVolume(v float64, caller string) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return NewError(ErrInvalidInput, fmt.Sprintf("volume must be positive and finite, got %g", v), caller)
	}
	return nil
}

// Energy returns the energy at volume v. It returns an error of kind ErrInvalidInput if
// v is not positive and finite.
func (P Params) Energy(v float64) (float64, error) {
	if err := checkVolume(v, "Energy"); err != nil {
		return 0, err
	}
	return bm(v, P), nil
}

// Energies returns the energies at each of the volumes in vols. If a dst slice with enough
// capacity is given, the energies are put there. If any volume is not positive, an error
// of kind ErrInvalidInput is returned.
func (P Params) Energies(vols []float64, dst ...[]float64) ([]float64, error) {
	var ret []float64
	if len(dst) > 0 && cap(dst[0]) >= len(vols) {
		ret = dst[0][:len(vols)]
	} else {
		ret = make([]float64, len(vols))
	}
	for i, v := range vols {
		if err := checkVolume(v, "Energies"); err != nil {
			return nil, err
		}
		ret[i] = bm(v, P)
	}
	return ret, nil
}

// Pressure returns -dE/dV at volume v, in the units of B0.
func (P Params) Pressure(v float64) (float64, error) {
	if err := checkVolume(v, "Pressure"); err != nil {
		return 0, err
	}
	r := math.Pow(P.V0/v, 2.0/3.0)
	x := r - 1
	return 1.5 * P.B0 * (P.V0 / v) * r * x * (1 + 0.75*(P.B01-4)*x), nil
}

// Grid evaluates the curve at vmin, vmin+step, vmin+2*step... up to, but not including, vmax.
// The result can be given directly to gonum/plot plotters.
func Grid(P Params, vmin, vmax, step float64) (plotter.XYs, error) {
	if err := checkVolume(vmin, "Grid"); err != nil {
		return nil, err
	}
	if !(vmax > vmin) || !(step > 0) {
		return nil, NewError(ErrInvalidInput, fmt.Sprintf("need vmax > vmin and step > 0, got %g, %g, %g", vmin, vmax, step), "Grid")
	}
	n := int(math.Ceil((vmax - vmin) / step))
	ret := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		v := vmin + float64(i)*step
		if v >= vmax {
			break
		}
		ret = append(ret, plotter.XY{X: v, Y: bm(v, P)})
	}
	return ret, nil
}
