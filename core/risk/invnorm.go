// core/risk/invnorm.go
package risk

import "math"

// Probability clamp applied before the approximation.
const (
	minProb = 1e-16
	maxProb = 1.0 - 1e-16
)

// Central-region coefficients of Wichura's AS241 (PPND16).
var (
	invNumer = [8]float64{
		3.387132872796366608,
		133.14166789178437745,
		1971.5909503065514427,
		13731.693765509461125,
		45921.953931549871457,
		67265.770927008700853,
		33430.575583588128105,
		2509.0809287301226727,
	}
	invDenom = [8]float64{
		1.0,
		42.313330701600911252,
		687.1870074920579083,
		5394.1960214247511077,
		21213.794301586595867,
		39321.036750754037691,
		28729.085735721942674,
		5226.495278852854561,
	}
)

// InvNorm approximates the standard normal quantile with the AS241 central
// rational function, applied over the whole (0,1) range. The tail branches of
// the full algorithm are intentionally absent so results match the other
// ports bit for bit; accuracy degrades outside |p-0.5| <= 0.425.
func InvNorm(p float64) float64 {
	if p <= 0.0 {
		p = minProb
	} else if p >= 1.0 {
		p = maxProb
	}
	q := p - 0.5
	r := 0.180625 - q*q
	return q * horner(invNumer, r) / horner(invDenom, r)
}

// horner evaluates c[0] + r*(c[1] + r*(... + r*c[7])) innermost-first, the same
// association as the written-out polynomial.
func horner(c [8]float64, r float64) float64 {
	acc := c[7]
	for i := 6; i >= 0; i-- {
		acc = c[i] + r*acc
	}
	return acc
}

// NormPDF is the standard normal density.
func NormPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2.0*math.Pi)
}
