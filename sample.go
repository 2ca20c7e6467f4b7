/*
 * sample.go, part of goEoS.
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
	"sort"

	"gonum.org/v1/plot/plotter"
)

// MinSamples is the smallest number of samples that can determine the 4 parameters.
const MinSamples = 4

// Sample is a volume, energy pair.
type Sample struct {
	V float64
	E float64
}

// Samples is a curve, a sequence of volume, energy pairs. The functions in this package
// that build Samples return them sorted by ascending volume.
// Samples implements the gonum/plot plotter.XYer interface.
type Samples []Sample

// NewSamples pairs vols and energies and returns them sorted by volume.
// It does not validate the values, only that both slices have the same length.
func NewSamples(vols, energies []float64) (Samples, error) {
	if len(vols) != len(energies) {
		return nil, NewError(ErrInvalidInput, fmt.Sprintf("%d volumes but %d energies", len(vols), len(energies)), "NewSamples")
	}
	ret := make(Samples, len(vols))
	for i, v := range vols {
		ret[i] = Sample{V: v, E: energies[i]}
	}
	ret.sort()
	return ret, nil
}

// SamplesFromXYer builds a sorted curve from any plotter.XYer, with X as volume and Y as energy.
func SamplesFromXYer(xy plotter.XYer) (Samples, error) {
	pts, err := plotter.CopyXYs(xy)
	if err != nil {
		return nil, WrapError(ErrInvalidInput, err, "SamplesFromXYer")
	}
	ret := make(Samples, len(pts))
	for i, p := range pts {
		ret[i] = Sample{V: p.X, E: p.Y}
	}
	ret.sort()
	return ret, nil
}

func (S Samples) sort() {
	sort.SliceStable(S, func(i, j int) bool { return S[i].V < S[j].V })
}

// Len returns the number of samples.
func (S Samples) Len() int { return len(S) }

// XY returns the volume and energy of the ith sample.
func (S Samples) XY(i int) (float64, float64) { return S[i].V, S[i].E }

// Sorted returns a copy of the curve sorted by ascending volume.
func (S Samples) Sorted() Samples {
	ret := make(Samples, len(S))
	copy(ret, S)
	ret.sort()
	return ret
}

// Volumes returns a new slice with the volumes of the curve.
func (S Samples) Volumes() []float64 {
	ret := make([]float64, len(S))
	for i, v := range S {
		ret[i] = v.V
	}
	return ret
}

// Energies returns a new slice with the energies of the curve.
func (S Samples) Energies() []float64 {
	ret := make([]float64, len(S))
	for i, v := range S {
		ret[i] = v.E
	}
	return ret
}

// Shift returns a copy of the curve with de added to every energy.
func (S Samples) Shift(de float64) Samples {
	ret := make(Samples, len(S))
	for i, v := range S {
		ret[i] = Sample{V: v.V, E: v.E + de}
	}
	return ret
}

// Range returns the smallest and largest volume in the curve.
// It returns NaNs for an empty curve.
func (S Samples) Range() (float64, float64) {
	if len(S) == 0 {
		return math.NaN(), math.NaN()
	}
	vmin, vmax := S[0].V, S[0].V
	for _, v := range S[1:] {
		vmin = math.Min(vmin, v.V)
		vmax = math.Max(vmax, v.V)
	}
	return vmin, vmax
}

// Validate returns an error of kind ErrInvalidInput if the curve has less than min samples,
// if a volume is not positive and finite, if an energy is not finite, or if two samples
// share the same volume.
func (S Samples) Validate(min int) error {
	if len(S) < min {
		return NewError(ErrInvalidInput, fmt.Sprintf("%d samples given, at least %d needed", len(S), min), "Validate")
	}
	seen := make(map[float64]bool, len(S))
	for i, v := range S {
		if err := checkVolume(v.V, "Validate"); err != nil {
			return err
		}
		if math.IsNaN(v.E) || math.IsInf(v.E, 0) {
			return NewError(ErrInvalidInput, fmt.Sprintf("energy of sample %d is not finite", i), "Validate")
		}
		if seen[v.V] {
			return NewError(ErrInvalidInput, fmt.Sprintf("duplicate volume %g", v.V), "Validate")
		}
		seen[v.V] = true
	}
	return nil
}
