// core/yieldcurve/nelson_siegel.go
package yieldcurve

import "math"

// NelsonSiegel holds the level, slope, curvature and decay parameters.
type NelsonSiegel struct {
	Beta0, Beta1, Beta2 float64
	Tau                 float64
}

// Default is the benchmark curve.
var Default = NelsonSiegel{Beta0: 0.05, Beta1: -0.02, Beta2: 0.01, Tau: 2.0}

// Yield evaluates the closed form at maturity t (t > 0).
func (ns NelsonSiegel) Yield(t float64) float64 {
	x := t / ns.Tau
	e := math.Exp(-x)
	f := (1 - e) / x
	return ns.Beta0 + ns.Beta1*f + ns.Beta2*(f-e)
}

// Step is the spacing of the maturity grid.
const Step = 0.1

// SumGrid sums yields at t = (i+1)·Step for i in [0,n).
func (ns NelsonSiegel) SumGrid(n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		sum += ns.Yield(float64(i+1) * Step)
	}
	return sum
}
