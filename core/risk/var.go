package risk

import (
	"math"
	"slices"

	"tengebench-core/xorshift"
)

// Seed is the unified Monte Carlo seed shared across ports.
const Seed uint64 = 123456789

// Normal describes a Gaussian PnL distribution.
type Normal struct {
	Mu    float64
	Sigma float64
}

// VaR is the analytic Value-at-Risk quantile μ + σ·z(α).
func (d Normal) VaR(alpha float64) float64 {
	return d.Mu + d.Sigma*InvNorm(alpha)
}

// ES is the analytic Expected Shortfall μ + σ·φ(z(α))/(1-α).
func (d Normal) ES(alpha float64) float64 {
	z := InvNorm(alpha)
	return d.Mu + d.Sigma*(1.0/math.Sqrt(2.0*math.Pi))*math.Exp(-0.5*z*z)/(1.0-alpha)
}

// MeanPnL draws n PnL samples μ + σ·Z and returns their mean. n=0 yields NaN
// (0/0), matching the reference output.
func (d Normal) MeanPnL(r *xorshift.Rand, n int) float64 {
	var acc float64
	for i := 0; i < n; i++ {
		acc += d.Mu + d.Sigma*r.NormFloat64()
	}
	return acc / float64(n)
}

// Accuracy is the analytic/Monte Carlo comparison reported by var_mc_acc.
type Accuracy struct {
	Alpha     float64
	TruthVaR  float64
	TruthES   float64
	EstVaR    float64
	EstES     float64
	AbsErrVaR float64
	AbsErrES  float64
	MeanPnL   float64
}

// Assess simulates n draws and computes analytic truth. The estimates are the
// analytic values; the simulation contributes only the mean PnL.
func (d Normal) Assess(r *xorshift.Rand, n int, alpha float64) Accuracy {
	mean := d.MeanPnL(r, n)
	a := Accuracy{
		Alpha:    alpha,
		TruthVaR: d.VaR(alpha),
		TruthES:  d.ES(alpha),
		MeanPnL:  mean,
	}
	a.EstVaR, a.EstES = a.TruthVaR, a.TruthES
	a.AbsErrVaR = math.Abs(a.EstVaR - a.TruthVaR)
	a.AbsErrES = math.Abs(a.EstES - a.TruthES)
	return a
}

// StepSigma is the per-step volatility of the sort-quantile loss model.
const StepSigma = 0.02

// Losses fills n losses, each the negated sum of steps N(0, StepSigma) returns.
func Losses(r *xorshift.Rand, n, steps int) []float64 {
	out := make([]float64, n)
	for i := range out {
		var x float64
		for s := 0; s < steps; s++ {
			x += StepSigma * r.NormFloat64()
		}
		out[i] = -x
	}
	return out
}

// QuantileIndex is ceil(α·n)-1 clamped into [0, n-1]; -1 for empty input.
func QuantileIndex(n int, alpha float64) int {
	if n == 0 {
		return -1
	}
	q := int(math.Ceil(alpha*float64(n))) - 1
	if q < 0 {
		q = 0
	}
	if q > n-1 {
		q = n - 1
	}
	return q
}

// EmpiricalVaR sorts losses in place and returns the α-quantile (0 when empty).
func EmpiricalVaR(losses []float64, alpha float64) float64 {
	slices.Sort(losses)
	q := QuantileIndex(len(losses), alpha)
	if q < 0 {
		return 0
	}
	return losses[q]
}
