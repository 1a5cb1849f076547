package benchapp

import (
	"tengebench-core/risk"
	"tengebench-core/xorshift"
	"tengebench/internal/harness"
	"tengebench/internal/runutil"
)

// VarMC estimates the loss quantile by sorting simulated losses.
var VarMC = Program{
	Name:     "var_mc",
	Synopsis: "[N=1000000] [steps=1] [alpha=0.99]  env: BATCH_ITER",
	Run:      runVarMC,
}

func runVarMC(inv harness.Invocation) harness.Result {
	n := inv.Args.Int(0, 1000000)
	steps := inv.Args.Int(1, 1)
	alpha := inv.Args.Float(2, 0.99)
	iters := runutil.EffectiveReps(inv.Env.Int(runutil.EnvBatchIter, 0))
	r := xorshift.New(risk.Seed)

	sw := inv.Start()
	var acc float64
	for k := 0; k < iters; k++ {
		acc += risk.EmpiricalVaR(risk.Losses(r, n, steps), alpha)
	}
	elapsed := sw.Elapsed()

	return harness.Result{
		Task:    "var_mc",
		N:       uint64(n),
		Elapsed: harness.PerRep(elapsed, iters),
		Fields:  []harness.Field{harness.Float("ACC", acc, 6)},
	}
}

// VarMCAcc compares analytic VaR/ES against a Monte Carlo run.
var VarMCAcc = Program{
	Name:     "var_mc_acc",
	Synopsis: "[N=1000000] [mu=0.0] [sigma=1.0] [alpha=0.99]",
	Run:      runVarMCAcc,
}

func runVarMCAcc(inv harness.Invocation) harness.Result {
	n := inv.Args.Int(0, 1000000)
	d := risk.Normal{
		Mu:    inv.Args.Float(1, 0.0),
		Sigma: inv.Args.Float(2, 1.0),
	}
	alpha := inv.Args.Float(3, 0.99)

	sw := inv.Start()
	a := d.Assess(xorshift.New(risk.Seed), n, alpha)
	elapsed := sw.Elapsed()

	return harness.Result{
		Task:    "var_mc_acc",
		N:       uint64(n),
		Elapsed: elapsed,
		Fields: []harness.Field{
			harness.Float("ALPHA", a.Alpha, 6),
			harness.Float("TRUTH_VAR", a.TruthVaR, 12),
			harness.Float("TRUTH_ES", a.TruthES, 12),
			harness.Float("EST_VAR", a.EstVaR, 12),
			harness.Float("EST_ES", a.EstES, 12),
			harness.Float("ABS_ERR_VAR", a.AbsErrVaR, 12),
			harness.Float("ABS_ERR_ES", a.AbsErrES, 12),
			harness.Float("ACC", a.MeanPnL, 6),
		},
	}
}
