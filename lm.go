/*
 * lm.go, part of goEoS.
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

//A Levenberg-Marquardt least squares solver specialized for the 4 parameters of the
//Birch-Murnaghan relation. Each step solves the damped problem
// min ||J*d + r||^2 + lambda*d^T*D*d
//as an augmented least squares system with QR, so the normal matrix J^T*J is never
//formed during the iterations. D is Marquardt's scaling (the largest squared column norms of J seen).
//The damping update is Nielsen's.

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const nParams = 4

//residuals puts model-observed for each sample in dst and returns half the sum of their squares.
func residuals(dst []float64, S Samples, P Params) float64 {
	var cost float64
	for i, s := range S {
		dst[i] = bm(s.V, P) - s.E
		cost += dst[i] * dst[i]
	}
	return 0.5 * cost
}

//jacobian fills J (len(S)x4) with the derivatives of the model with respect to
//E0, V0, B0 and B01, in that order.
func jacobian(J *mat.Dense, S Samples, P Params) {
	const c = 9.0 / 16.0
	for i, s := range S {
		r := math.Pow(P.V0/s.V, 2.0/3.0)
		x := r - 1
		g := x * x * (2 + (P.B01-4)*x)
		dg := 4*x + 3*(P.B01-4)*x*x
		J.Set(i, 0, 1)
		J.Set(i, 1, c*P.B0*(g+2.0/3.0*r*dg))
		J.Set(i, 2, c*P.V0*g)
		J.Set(i, 3, c*P.B0*P.V0*x*x*x)
	}
}

//updateScaling keeps in diag the largest squared column norm of J seen so far.
//Columns that have always been zero get a scaling of 1.
func updateScaling(diag []float64, J *mat.Dense) {
	r, _ := J.Dims()
	for j := range diag {
		var n2 float64
		for i := 0; i < r; i++ {
			n2 += J.At(i, j) * J.At(i, j)
		}
		if n2 > diag[j] {
			diag[j] = n2
		}
		if diag[j] == 0 {
			diag[j] = 1
		}
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

type lmInfo struct {
	cost        float64 //half the sum of squared residuals at the solution
	iterations  int
	evaluations int
	jac         *mat.Dense //the Jacobian at the solution
}

//levenbergMarquardt minimizes the sum of squared residuals of the model on S, starting from guess.
//It returns an error of kind ErrFitFailure if it doesn't converge within o.MaxIterations, if the
//damping grows past o.MaxDamping, if the residuals at the guess are not finite, or if the
//Jacobian at the solution is rank-deficient, so the parameters are not determined by the data.
func levenbergMarquardt(S Samples, guess Params, o *Options) (Params, *lmInfo, error) {
	n := len(S)
	log := o.Logger.V(1)
	p := guess.Slice()
	res := make([]float64, n)
	info := &lmInfo{evaluations: 1}
	cost := residuals(res, S, guess)
	if !finite(cost) {
		return guess, info, NewError(ErrFitFailure, fmt.Sprintf("non-finite residuals at the initial guess %s", guess), "levenbergMarquardt")
	}
	J := mat.NewDense(n, nParams, nil)
	jacobian(J, S, guess)
	diag := make([]float64, nParams)
	updateScaling(diag, J)

	lambda := 1e-3
	nu := 2.0
	A := mat.NewDense(n+nParams, nParams, nil)
	b := mat.NewVecDense(n+nParams, nil)
	grad := mat.NewVecDense(nParams, nil)
	jd := mat.NewVecDense(n, nil)
	var step mat.VecDense
	trial := make([]float64, nParams)
	tres := make([]float64, n)
	converged := false
	for info.iterations = 0; info.iterations < o.MaxIterations; info.iterations++ {
		if cost == 0 {
			converged = true
			break
		}
		if o.GTol > 0 {
			grad.MulVec(J.T(), mat.NewVecDense(n, res))
			if mat.Norm(grad, math.Inf(1)) <= o.GTol {
				converged = true
				break
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < nParams; j++ {
				A.Set(i, j, J.At(i, j))
			}
			b.SetVec(i, -res[i])
		}
		for i := 0; i < nParams; i++ {
			for j := 0; j < nParams; j++ {
				A.Set(n+i, j, 0)
			}
			A.Set(n+i, i, math.Sqrt(lambda*diag[i]))
			b.SetVec(n+i, 0)
		}
		err := step.SolveVec(A, b)
		var cond mat.Condition
		if err != nil && !errors.As(err, &cond) {
			log.Info("LM step could not be solved", "iteration", info.iterations, "lambda", lambda, "err", err.Error())
			step.Reset()
			if lambda, nu = lambda*nu, nu*2; lambda > o.MaxDamping {
				break
			}
			continue
		}
		stepnorm := mat.Norm(&step, 2)
		if !finite(stepnorm) {
			step.Reset()
			if lambda, nu = lambda*nu, nu*2; lambda > o.MaxDamping {
				break
			}
			continue
		}
		if stepnorm <= o.XTol*(floats.Norm(p, 2)+o.XTol) {
			converged = true
			break
		}
		for i := range trial {
			trial[i] = p[i] + step.AtVec(i)
		}
		tp := ParamsFromSlice(trial)
		tcost := residuals(tres, S, tp)
		info.evaluations++
		//the reduction predicted by the linear model
		jd.MulVec(J, &step)
		var lin float64
		for i, v := range res {
			t := v + jd.AtVec(i)
			lin += t * t
		}
		pred := cost - 0.5*lin
		actual := cost - tcost
		if finite(tcost) && pred > 0 && actual > 0 {
			rho := actual / pred
			small := actual <= o.FTol*cost && pred <= o.FTol*cost
			copy(p, trial)
			copy(res, tres)
			cost = tcost
			jacobian(J, S, tp)
			updateScaling(diag, J)
			lambda *= math.Max(1.0/3.0, 1-math.Pow(2*rho-1, 3))
			nu = 2
			log.Info("LM step accepted", "iteration", info.iterations, "cost", cost, "lambda", lambda)
			if small {
				converged = true
				info.iterations++
				break
			}
			continue
		}
		step.Reset()
		if lambda, nu = lambda*nu, nu*2; lambda > o.MaxDamping {
			break
		}
	}
	P := ParamsFromSlice(p)
	info.cost = cost
	info.jac = J
	if !converged {
		if lambda > o.MaxDamping {
			return P, info, NewError(ErrFitFailure, fmt.Sprintf("damping diverged after %d iterations (lambda=%g)", info.iterations, lambda), "levenbergMarquardt")
		}
		return P, info, NewError(ErrFitFailure, fmt.Sprintf("no convergence in %d iterations", o.MaxIterations), "levenbergMarquardt")
	}
	if !P.IsFinite() {
		return P, info, NewError(ErrFitFailure, fmt.Sprintf("non-finite parameters %s", P), "levenbergMarquardt")
	}
	if rk := rank(J); rk < nParams {
		return P, info, NewError(ErrFitFailure, fmt.Sprintf("degenerate fit, the Jacobian at %s has rank %d", P, rk), "levenbergMarquardt")
	}
	return P, info, nil
}

const machEps = 0x1p-52

//rank returns the numerical rank of J, counting the singular values larger than
//max(rows, 4)*eps times the largest one.
func rank(J *mat.Dense) int {
	var svd mat.SVD
	if !svd.Factorize(J, mat.SVDNone) {
		return 0
	}
	r, _ := J.Dims()
	return svd.Rank(float64(max(r, nParams)) * machEps)
}

//covariance returns s^2*(J^T*J)^-1 with s^2 = sum(r^2)/(n-4), or nil if there are no
//degrees of freedom left, if the fit is perfect, or if J^T*J is too ill-conditioned to invert.
func covariance(info *lmInfo) *mat.SymDense {
	n, _ := info.jac.Dims()
	if n <= nParams || info.cost == 0 {
		return nil
	}
	var jtj mat.SymDense
	jtj.SymOuterK(1, info.jac.T())
	var ch mat.Cholesky
	if ok := ch.Factorize(&jtj); !ok {
		return nil
	}
	if ch.Cond() > 1e15 {
		return nil
	}
	var inv mat.SymDense
	if err := ch.InverseTo(&inv); err != nil {
		return nil
	}
	inv.ScaleSym(2*info.cost/float64(n-nParams), &inv)
	return &inv
}
