package eos

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

//BatchResult is the outcome of one of the fits requested to FitAll.
//Exactly one of Result and Err is non-nil.
type BatchResult struct {
	Index  int
	Result *FitResult
	Err    error
}

//FitAll fits each of the curves concurrently, with at most workers fits running at the same time
//(all logical CPUs if workers <= 0). Failures are reported per curve, one failed curve doesn't affect
//the others. Curves not yet started when ctx is done get ctx.Err() as their error.
//The results are in the same order as the curves.
func FitAll(ctx context.Context, curves []Samples, o *Options, workers int) []BatchResult {
	o = orDefault(o)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	ret := make([]BatchResult, len(curves))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range curves {
		i, c := i, c
		ret[i].Index = i
		if err := gctx.Err(); err != nil {
			ret[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				ret[i].Err = err
				return nil
			}
			r, err := Fit(c, o)
			if err != nil {
				o.Logger.Info("skipping curve", "index", i, "reason", err.Error())
			}
			ret[i].Result, ret[i].Err = r, err
			return nil
		})
	}
	g.Wait() //the goroutines never return errors.
	return ret
}
