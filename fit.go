/*
 * fit.go, part of goEoS.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//FitResult contains the information returned by a successful fit.
type FitResult struct {
	Params      Params
	Cov         *mat.SymDense //covariance of E0, V0, B0, B01. It can be nil, see Fit.
	Cost        float64       //half the sum of squared residuals
	Iterations  int
	Evaluations int //evaluations of the residuals
}

//String returns a string representation of the FitResult.
func (F *FitResult) String() string {
	return fmt.Sprintf("%s, cost: %.3e, iterations: %d", F.Params, F.Cost, F.Iterations)
}

//StdErr returns the standard errors of E0, V0, B0 and B01, or nil if there is no covariance.
func (F *FitResult) StdErr() []float64 {
	if F == nil {
		panic(ErrNilResult)
	}
	if F.Cov == nil {
		return nil
	}
	ret := make([]float64, nParams)
	for i := range ret {
		ret[i] = math.Sqrt(F.Cov.At(i, i))
	}
	return ret
}

//InitialGuess returns the starting point used by Fit: the lowest energy as E0,
//the mean volume as V0, and zero for both B0 and B01.
func InitialGuess(S Samples) Params {
	return Params{
		E0:  floats.Min(S.Energies()),
		V0:  stat.Mean(S.Volumes(), nil),
		B0:  0,
		B01: 0,
	}
}

//Fit fits the Birch-Murnaghan parameters to the curve S by unconstrained non-linear least
//squares, starting from InitialGuess(S). A nil o means DefaultOptions().
//It returns an error of kind ErrInvalidInput if S has less than 4 samples, duplicate volumes, or
//non-positive or non-finite values, and of kind ErrFitFailure if the solver does not converge or
//the fit is degenerate (the parameters are not determined by the data, as for a flat curve).
//On success, the covariance in the result is nil when there are only 4 samples, when the fit is
//perfect, or when it is too ill-conditioned to invert.
func Fit(S Samples, o *Options) (*FitResult, error) {
	if err := S.Validate(MinSamples); err != nil {
		return nil, errDecorate(err, "Fit")
	}
	r, err := fit(S.Sorted(), InitialGuess(S), orDefault(o))
	if err != nil {
		return nil, errDecorate(err, "Fit")
	}
	return r, nil
}

//FitFrom is like Fit, but starts the solver from the given guess.
func FitFrom(S Samples, guess Params, o *Options) (*FitResult, error) {
	if err := S.Validate(MinSamples); err != nil {
		return nil, errDecorate(err, "FitFrom")
	}
	r, err := fit(S.Sorted(), guess, orDefault(o))
	if err != nil {
		return nil, errDecorate(err, "FitFrom")
	}
	return r, nil
}

func fit(S Samples, guess Params, o *Options) (*FitResult, error) {
	if o.MaxIterations <= 0 {
		return nil, NewError(ErrInvalidInput, "the iteration budget must be positive", "fit")
	}
	P, info, err := levenbergMarquardt(S, guess, o)
	if err != nil {
		o.Logger.Info("Birch-Murnaghan fit failed", "guess", guess.String(), "samples", len(S), "reason", err.Error())
		return nil, errDecorate(err, "fit")
	}
	return &FitResult{
		Params:      P,
		Cov:         covariance(info),
		Cost:        info.cost,
		Iterations:  info.iterations,
		Evaluations: info.evaluations,
	}, nil
}
