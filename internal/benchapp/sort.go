package benchapp

import (
	"tengebench-core/intsort"
	"tengebench/internal/harness"
	"tengebench/internal/runutil"
)

// Sort times generate+sort+checksum over BATCH_ITER iterations and prints the
// bare per-iteration nanoseconds. PRINT_SINK=1 prints the full line with the
// XOR checksum instead.
var Sort = Program{
	Name:     "sort",
	Synopsis: "[N=100000]  env: BATCH_ITER, PRINT_SINK=1",
	Run:      runSort,
}

func runSort(inv harness.Invocation) harness.Result {
	n := inv.Args.Int(0, 100000)
	iters := runutil.EffectiveReps(inv.Env.Int(runutil.EnvBatchIter, 0))

	sw := inv.Start()
	var acc uint64
	for i := 0; i < iters; i++ {
		acc ^= intsort.Run(n)
	}
	elapsed := sw.Elapsed()

	return harness.Result{
		Task:    "sort",
		N:       uint64(n),
		Elapsed: harness.PerRep(elapsed, iters),
		Fields:  []harness.Field{harness.Uint("CHECKSUM", acc)},
		Sink:    acc,
		Style:   harness.StyleBareNanos,
		Verbose: inv.PrintSink(),
	}
}
