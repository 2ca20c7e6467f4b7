/*
 * delta.go, part of goEoS.
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
	"errors"
	"fmt"
	"math"
)

//DeltaScale converts the Delta factor from energy units to milli-energy units (meV/atom for eV).
const DeltaScale = 1000.0

//CheckRange returns an error of kind ErrMismatchedRange if the smallest or the largest volumes
//of the curves a and b differ by more than tol. It returns the overlap of both ranges otherwise.
func CheckRange(a, b Samples, tol float64) (float64, float64, error) {
	amin, amax := a.Range()
	bmin, bmax := b.Range()
	if !(math.Abs(amin-bmin) <= tol) || !(math.Abs(amax-bmax) <= tol) {
		return 0, 0, NewError(ErrMismatchedRange, fmt.Sprintf("[%g, %g] and [%g, %g] differ by more than %g", amin, amax, bmin, bmax, tol), "CheckRange")
	}
	return math.Max(amin, bmin), math.Min(amax, bmax), nil
}

//Delta fits both curves and returns the Delta factor between the fits, per atom, in milli-units
//of the energy (meV/atom for energies in eV). The curves are assumed to describe the same
//structure, with natoms atoms, and must span the same volume range within o.RangeTolerance.
//The errors have the kinds ErrInvalidInput, ErrMismatchedRange, ErrFitFailure (wrapping the
//error of the failed fit) and ErrIntegrationFailure.
func Delta(a, b Samples, natoms int, o *Options) (float64, error) {
	o = orDefault(o)
	for _, s := range []Samples{a, b} {
		if err := s.Validate(MinSamples); err != nil {
			return 0, errDecorate(err, "Delta")
		}
	}
	vmin, vmax, err := CheckRange(a, b, o.RangeTolerance)
	if err != nil {
		return 0, errDecorate(err, "Delta")
	}
	fa, err := Fit(a, o)
	if err != nil {
		return 0, fitError(err, "first curve")
	}
	fb, err := Fit(b, o)
	if err != nil {
		return 0, fitError(err, "second curve")
	}
	d, err := DeltaParams(fa.Params, fb.Params, vmin, vmax, natoms, o)
	return d, errDecorate(err, "Delta")
}

//fitError reports the failed fit of one of the compared curves as ErrFitFailure.
//Invalid input, such as a non-positive iteration budget, keeps its own kind.
func fitError(err error, curve string) error {
	if errors.Is(err, ErrInvalidInput) {
		return errDecorate(err, "Delta: "+curve)
	}
	return WrapError(ErrFitFailure, fmt.Errorf("%s: %w", curve, err), "Delta")
}

//DeltaParams returns the Delta factor between the curves with parameters pa and pb over the
//volume range [vmin, vmax]: sqrt(integral((Ea-Eb)^2)/(vmax-vmin))*1000/natoms.
func DeltaParams(pa, pb Params, vmin, vmax float64, natoms int, o *Options) (float64, error) {
	o = orDefault(o)
	if natoms <= 0 {
		return 0, NewError(ErrInvalidInput, fmt.Sprintf("the number of atoms must be positive, got %d", natoms), "DeltaParams")
	}
	if err := checkVolume(vmin, "DeltaParams"); err != nil {
		return 0, err
	}
	if !(vmax > vmin) || !finite(vmax) {
		return 0, NewError(ErrInvalidInput, fmt.Sprintf("empty volume range [%g, %g]", vmin, vmax), "DeltaParams")
	}
	if !pa.IsFinite() || !pb.IsFinite() {
		return 0, NewError(ErrInvalidInput, "non-finite parameters", "DeltaParams")
	}
	de0 := pa.E0 - pb.E0
	de2 := func(v float64) float64 {
		d := de0 + (correction(v, pa) - correction(v, pb))
		return d * d
	}
	integral, err := Integrate(de2, vmin, vmax, o)
	if err != nil {
		return 0, errDecorate(err, "DeltaParams")
	}
	return math.Sqrt(integral/(vmax-vmin)) * DeltaScale / float64(natoms), nil
}
