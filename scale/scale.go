/*
 * scale.go, part of goEoS.
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

//Package scale builds the family of uniformly scaled crystal structures whose ground-state
//energies make up an equation-of-state curve.
package scale

import (
	"fmt"
	"math"

	eos "github.com/rmera/goeos"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//LatticeScales returns n linear scale factors, evenly spaced between the cube roots of
//vmin and vmax, so the scaled cells span volumes from vmin to vmax times the original one.
func LatticeScales(vmin, vmax float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, eos.NewError(eos.ErrInvalidInput, fmt.Sprintf("at least 2 scales needed, got %d", n), "LatticeScales")
	}
	if !(vmin > 0) || !(vmax > vmin) {
		return nil, eos.NewError(eos.ErrInvalidInput, fmt.Sprintf("bad volume scale range %g, %g", vmin, vmax), "LatticeScales")
	}
	return floats.Span(make([]float64, n), math.Cbrt(vmin), math.Cbrt(vmax)), nil
}

//DefaultLatticeScales returns the 7 lattice scales that take the volume from 0.94 to 1.06 times
//the original.
func DefaultLatticeScales() []float64 {
	s, err := LatticeScales(eos.VolumeScaleMin, eos.VolumeScaleMax, eos.DefaultPoints)
	if err != nil {
		panic(err.Error()) //constants, can't happen.
	}
	return s
}

//Structure is a crystal unit cell.
type Structure struct {
	Cell        *mat.Dense //3x3, each row is a lattice vector, in A
	Positions   *mat.Dense //Nx3 cartesian coordinates, in A
	Symbols     []string
	Label       string
	Description string
}

//NewStructure returns a structure from a 9-element row-major cell, a 3N-element slice of
//cartesian positions, and the N atomic symbols. The slices are copied.
func NewStructure(cell, positions []float64, symbols []string) (*Structure, error) {
	if len(cell) != 9 {
		return nil, eos.NewError(eos.ErrInvalidInput, fmt.Sprintf("the cell must have 9 elements, got %d", len(cell)), "NewStructure")
	}
	if len(positions) != 3*len(symbols) {
		return nil, eos.NewError(eos.ErrInvalidInput, fmt.Sprintf("%d coordinates for %d atoms", len(positions), len(symbols)), "NewStructure")
	}
	S := &Structure{
		Cell:    mat.NewDense(3, 3, append([]float64(nil), cell...)),
		Symbols: append([]string(nil), symbols...),
	}
	if len(symbols) > 0 {
		S.Positions = mat.NewDense(len(symbols), 3, append([]float64(nil), positions...))
	}
	if S.Volume() == 0 {
		return nil, eos.NewError(eos.ErrInvalidInput, "the lattice vectors are linearly dependent", "NewStructure")
	}
	return S, nil
}

//NAtoms returns the number of atoms in the cell.
func (S *Structure) NAtoms() int {
	return len(S.Symbols)
}

//Volume returns the volume of the cell, the absolute value of the determinant of the lattice vectors.
func (S *Structure) Volume() float64 {
	return math.Abs(mat.Det(S.Cell))
}

//Scaled returns a new structure with both the cell and the positions multiplied by s.
func (S *Structure) Scaled(s float64) (*Structure, error) {
	if !(s > 0) || math.IsInf(s, 0) {
		return nil, eos.NewError(eos.ErrInvalidInput, fmt.Sprintf("scale factors must be positive and finite, got %g", s), "Scaled")
	}
	ret := &Structure{
		Cell:        mat.NewDense(3, 3, nil),
		Symbols:     append([]string(nil), S.Symbols...),
		Label:       "created inside EoS run",
		Description: fmt.Sprintf("auxiliary structure for EoS created from the structure %q, lattice constant scaling: %f", S.Label, s),
	}
	ret.Cell.Scale(s, S.Cell)
	if S.Positions != nil {
		r, c := S.Positions.Dims()
		ret.Positions = mat.NewDense(r, c, nil)
		ret.Positions.Scale(s, S.Positions)
	}
	return ret, nil
}

//Family returns one scaled copy of S for each of the scales.
func (S *Structure) Family(scales []float64) ([]*Structure, error) {
	ret := make([]*Structure, 0, len(scales))
	for _, s := range scales {
		n, err := S.Scaled(s)
		if err != nil {
			err.(eos.Error).Decorate("Family")
			return nil, err
		}
		ret = append(ret, n)
	}
	return ret, nil
}

//Volumes returns the volumes of the cells obtained by scaling S by each of the scales.
func (S *Structure) Volumes(scales []float64) []float64 {
	v := S.Volume()
	ret := make([]float64, len(scales))
	for i, s := range scales {
		ret[i] = v * s * s * s
	}
	return ret
}
