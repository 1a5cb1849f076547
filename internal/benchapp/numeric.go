// internal/benchapp/numeric.go
package benchapp

import (
	"tengebench-core/dft"
	"tengebench-core/garch"
	"tengebench-core/matrix"
	"tengebench-core/portfolio"
	"tengebench-core/yieldcurve"
	"tengebench/internal/harness"
)

// The programs in this file time their setup together with the kernel,
// except yield_curve which has no setup.

var FFT = Program{
	Name:     "fft",
	Synopsis: "[N=1024]",
	Run:      runFFT,
}

func runFFT(inv harness.Invocation) harness.Result {
	n := inv.Args.Int(0, 1024)
	sw := inv.Start()
	power := dft.Run(n)
	elapsed := sw.Elapsed()
	return harness.Result{
		Task: "fft", N: uint64(n), Elapsed: elapsed,
		Fields: []harness.Field{harness.Float("POWER_SUM", power, 6)},
	}
}

var Garch = Program{
	Name:     "garch",
	Synopsis: "[N=10000]",
	Run:      runGarch,
}

func runGarch(inv harness.Invocation) harness.Result {
	n := inv.Args.Int(0, 10000)
	sw := inv.Start()
	vol := garch.Default.Run(n)
	elapsed := sw.Elapsed()
	return harness.Result{
		Task: "garch", N: uint64(n), Elapsed: elapsed,
		Fields: []harness.Field{harness.Float("VOL_SUM", vol, 6)},
	}
}

var MatrixOps = Program{
	Name:     "matrix_ops",
	Synopsis: "[N=100]",
	Run:      runMatrixOps,
}

func runMatrixOps(inv harness.Invocation) harness.Result {
	n := inv.Args.Int(0, 100)
	sw := inv.Start()
	trace := matrix.Run(n)
	elapsed := sw.Elapsed()
	return harness.Result{
		Task: "matrix_ops", N: uint64(n), Elapsed: elapsed,
		Fields: []harness.Field{harness.Float("TRACE", trace, 6)},
	}
}

var PortfolioOpt = Program{
	Name:     "portfolio_opt",
	Synopsis: "[N=100]",
	Run:      runPortfolioOpt,
}

func runPortfolioOpt(inv harness.Invocation) harness.Result {
	n := inv.Args.Int(0, 100)
	sw := inv.Start()
	variance := portfolio.NewUniform(n).Variance()
	elapsed := sw.Elapsed()
	return harness.Result{
		Task: "portfolio_opt", N: uint64(n), Elapsed: elapsed,
		Fields: []harness.Field{harness.Float("PORTFOLIO_VAR", variance, 6)},
	}
}

var YieldCurve = Program{
	Name:     "yield_curve",
	Synopsis: "[N=1000]",
	Run:      runYieldCurve,
}

func runYieldCurve(inv harness.Invocation) harness.Result {
	n := inv.Args.Int(0, 1000)
	curve := yieldcurve.Default
	sw := inv.Start()
	sum := curve.SumGrid(n)
	elapsed := sw.Elapsed()
	return harness.Result{
		Task: "yield_curve", N: uint64(n), Elapsed: elapsed,
		Fields: []harness.Field{harness.Float("SUM", sum, 6)},
	}
}
