package eos

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

//B01Guesses returns from, from+step, ... up to to (inclusive, within rounding).
//B01Guesses(0.1, 10, 0.1) gives the grid of B01 starting values used by FitB01Sweep
//in its usual setup.
func B01Guesses(from, to, step float64) ([]float64, error) {
	if !(step > 0) || to < from {
		return nil, NewError(ErrInvalidInput, fmt.Sprintf("bad guess range %g to %g, step %g", from, to, step), "B01Guesses")
	}
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = from + float64(i)*step
	}
	return ret, nil
}

//FitB01Sweep is an opt-in alternative to Fit. It fits S once for each value in b01s, starting
//from E0=min(E), V0=mean(V), B0=o.SweepB0 and B01 set to that value. Among the successful fits
//that have a covariance, it returns the one with the smallest sum of the standard errors of the
//4 parameters. If no successful fit has a covariance, it returns the one with the smallest cost.
//If every fit fails, it returns an error of kind ErrFitFailure wrapping the last failure.
//Fit never does this on its own.
func FitB01Sweep(S Samples, b01s []float64, o *Options) (*FitResult, error) {
	o = orDefault(o)
	if err := S.Validate(MinSamples); err != nil {
		return nil, errDecorate(err, "FitB01Sweep")
	}
	if len(b01s) == 0 {
		return nil, NewError(ErrInvalidInput, "no B01 guesses given", "FitB01Sweep")
	}
	sorted := S.Sorted()
	guess := InitialGuess(sorted)
	guess.B0 = o.SweepB0
	var best, bestNoCov *FitResult
	bestErr := math.Inf(1)
	var lasterr error
	for _, b01 := range b01s {
		guess.B01 = b01
		r, err := fit(sorted, guess, o)
		if err != nil {
			lasterr = err
			continue
		}
		if se := r.StdErr(); se != nil && finite(floats.Sum(se)) {
			if s := floats.Sum(se); s < bestErr {
				bestErr = s
				best = r
			}
			o.Logger.V(1).Info("B01 sweep", "b01", b01, "stderr", floats.Sum(se))
			continue
		}
		if bestNoCov == nil || r.Cost < bestNoCov.Cost {
			bestNoCov = r
		}
	}
	switch {
	case best != nil:
		return best, nil
	case bestNoCov != nil:
		return bestNoCov, nil
	}
	return nil, WrapError(ErrFitFailure, lasterr, "FitB01Sweep")
}
