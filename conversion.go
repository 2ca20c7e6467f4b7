/*
 * conversion.go, part of goEoS.
 *
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
 *
 */

package eos

//This provides conversion factors between the units plane-wave codes report (Quantum ESPRESSO
//gives Ry and bohr^3, exciting gives Ha and bohr^3) and the eV, A^3 units used for EoS comparisons.

//Conversions
const (
	Ry2EV     = 13.605693122994 //Rydberg to eV
	EV2Ry     = 1 / Ry2EV
	Ha2EV     = 27.211386245988 //Hartree to eV
	EV2Ha     = 1 / Ha2EV
	Bohr2A    = 0.529177210903
	A2Bohr    = 1 / Bohr2A
	Bohr3ToA3 = Bohr2A * Bohr2A * Bohr2A
	A3ToBohr3 = 1 / Bohr3ToA3
	EVA3ToGPa = 160.21766208 //eV/A^3 to GPa, for bulk moduli
	GPaToEVA3 = 1 / EVA3ToGPa
)

//Usual volume scaling range for an EoS curve, relative to the reference volume,
//and the usual number of points in it.
const (
	VolumeScaleMin = 0.94
	VolumeScaleMax = 1.06
	DefaultPoints  = 7
)
