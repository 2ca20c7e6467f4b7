/*
 * doc.go, part of goEoS.
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

/*
Package eos is the main package of the goEoS library. It fits equations of state to
energy-volume curves obtained from ab-initio ground-state calculations on a family of
volume-scaled structures, and compares two such fits.

	**goEoS Capabilities**

    Evaluates the third-order Birch-Murnaghan energy-volume relation, and the
	pressure derived from it, for single volumes, slices, or dense grids ready
	for gonum/plot.

    Fits the 4 Birch-Murnaghan parameters (E0, V0, B0, B0') to a curve with a
	Levenberg-Marquardt solver, returning the covariance of the parameters when
	it can be obtained. A fit either succeeds or returns an error; it never
	returns made-up parameters.

    Optionally, tries a sweep of starting values for B0' and keeps the fit with
	the smallest total standard error.

    Fits many independent curves concurrently, with per-curve failures.

    Calculates the Delta factor between two curves: the root mean square
	energy difference between their fits over the common volume range, in
	milli-units per atom.

The subpackage scale builds the family of scaled structures for a curve, and eosio reads
and writes energy-volume files (plain, gzip or zstd-compressed) and YAML reports.
The eosfit program (cmd/eosfit) puts everything together.

Errors returned by this module satisfy the Error interface, and their kind can be tested
with errors.Is against ErrInvalidInput, ErrFitFailure, ErrMismatchedRange and
ErrIntegrationFailure.
*/
package eos
