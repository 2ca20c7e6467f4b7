package eos

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

//maxPanels bounds the total number of panels Integrate will evaluate.
const maxPanels = 1 << 14

type panel struct {
	a, b  float64
	depth int
}

//Integrate returns the integral of f between a and b, by adaptive bisection on Gauss-Legendre panels.
//On each panel an o.QuadPoints estimate is compared with a 2*o.QuadPoints one, and the panel is
//accepted when they differ by less than max(o.QuadAbsTol, o.QuadRelTol*|I|)*w/(b-a), where w is
//the width of the panel and I the fine estimate over the whole interval. Otherwise it is split in two.
//The tolerance is thus a budget for the whole integral, shared among panels by width.
//It returns an error of kind ErrIntegrationFailure if f gives non-finite values or if a panel
//would need more than o.QuadMaxDepth bisections.
func Integrate(f func(float64) float64, a, b float64, o *Options) (float64, error) {
	o = orDefault(o)
	if !finite(a) || !finite(b) || b < a {
		return 0, NewError(ErrInvalidInput, fmt.Sprintf("bad integration limits %g, %g", a, b), "Integrate")
	}
	if o.QuadPoints <= 0 {
		return 0, NewError(ErrInvalidInput, "the number of quadrature points must be positive", "Integrate")
	}
	if a == b {
		return 0, nil
	}
	width := b - a
	var rule quad.Legendre
	var total float64
	scale := math.NaN() //magnitude of the whole integral, from the first panel
	evaluated := 0
	stack := []panel{{a: a, b: b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		evaluated++
		coarse := quad.Fixed(f, p.a, p.b, o.QuadPoints, rule, 0)
		fine := quad.Fixed(f, p.a, p.b, 2*o.QuadPoints, rule, 0)
		if !finite(coarse) || !finite(fine) {
			return 0, NewError(ErrIntegrationFailure, fmt.Sprintf("non-finite integrand in [%g, %g]", p.a, p.b), "Integrate")
		}
		if math.IsNaN(scale) {
			scale = math.Abs(fine)
		}
		tol := math.Max(o.QuadAbsTol, o.QuadRelTol*scale) * (p.b - p.a) / width
		if math.Abs(fine-coarse) <= tol {
			total += fine
			continue
		}
		if p.depth >= o.QuadMaxDepth || evaluated >= maxPanels {
			return 0, NewError(ErrIntegrationFailure, fmt.Sprintf("no convergence in [%g, %g] after %d bisections, error estimate %g", p.a, p.b, p.depth, math.Abs(fine-coarse)), "Integrate")
		}
		mid := p.a + 0.5*(p.b-p.a)
		stack = append(stack, panel{a: p.a, b: mid, depth: p.depth + 1}, panel{a: mid, b: p.b, depth: p.depth + 1})
	}
	return total, nil
}
