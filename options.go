package eos

import "github.com/go-logr/logr"

//Options contains the numerical settings for the Fit, FitB01Sweep, Delta and Integrate functions.
type Options struct {
	//Levenberg-Marquardt
	MaxIterations int     //budget of LM iterations, counting rejected steps. Must be > 0.
	FTol          float64 //relative reduction of the cost below which the fit is converged
	XTol          float64 //relative step size below which the fit is converged
	GTol          float64 //infinity norm of the gradient below which the fit is converged. 0 disables it.
	MaxDamping    float64 //the fit fails if the damping parameter grows past this.

	//B01 sweep
	SweepB0 float64 //initial guess for B0 used by FitB01Sweep

	//Delta metric
	RangeTolerance float64 //largest absolute difference allowed between the endpoints of compared curves
	QuadAbsTol     float64 //absolute error allowed for the whole integral
	QuadRelTol     float64 //error allowed relative to the magnitude of the whole integral
	QuadMaxDepth   int //maximum number of bisections of a quadrature panel
	QuadPoints     int //Gauss-Legendre points in the coarse estimate of a panel. The fine one uses twice as many.

	Logger logr.Logger
}

//DefaultOptions returns the settings used unless something else is requested.
//FTol is MINPACK's default, XTol is tighter, since the step test uses the unscaled
//norm of the parameters, which E0 dominates. The quadrature tolerances are QUADPACK's
//defaults. The sweep B0 guess is 0.1 and the range tolerance for comparisons is 1e-4.
func DefaultOptions() *Options {
	r := new(Options)
	r.MaxIterations = 2000
	r.FTol = 1.49012e-8
	r.XTol = 1e-10
	r.GTol = 0
	r.MaxDamping = 1e16
	r.SweepB0 = 0.1
	r.RangeTolerance = 1e-4
	r.QuadAbsTol = 1.49e-8
	r.QuadRelTol = 1.49e-8
	r.QuadMaxDepth = 30
	r.QuadPoints = 8
	r.Logger = logr.Discard()
	return r
}

func orDefault(o *Options) *Options {
	if o == nil {
		return DefaultOptions()
	}
	return o
}
