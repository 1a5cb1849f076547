// core/garch/garch.go
package garch

import "math"

// Params are the GARCH(1,1) coefficients.
type Params struct {
	Omega float64
	Alpha float64
	Beta  float64
}

// Default are the benchmark coefficients.
var Default = Params{Omega: 0.0001, Alpha: 0.1, Beta: 0.85}

// Unconditional is the long-run variance ω/(1-α-β). It seeds the recursion.
// There is no stationarity check: α+β=1 yields +Inf like the other ports.
func (p Params) Unconditional() float64 {
	return p.Omega / (1 - p.Alpha - p.Beta)
}

// SyntheticReturns produces the deterministic sawtooth return series
// 0.01 * ((i mod 100) - 50) / 50.
func SyntheticReturns(n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = 0.01 * float64(i%100-50) / 50.0
	}
	return r
}

// Variances runs variance[i] = ω + α·r[i]² + β·variance[i-1] with
// variance[-1] = Unconditional().
func (p Params) Variances(returns []float64) []float64 {
	v := make([]float64, len(returns))
	prev := p.Unconditional()
	for i, r := range returns {
		v[i] = p.Omega + p.Alpha*r*r + p.Beta*prev
		prev = v[i]
	}
	return v
}

// VolSum reduces a variance path to Σ√variance.
func VolSum(variances []float64) float64 {
	var s float64
	for _, v := range variances {
		s += math.Sqrt(v)
	}
	return s
}

// Run is the full benchmark body for n observations.
func (p Params) Run(n int) float64 {
	return VolSum(p.Variances(SyntheticReturns(n)))
}
