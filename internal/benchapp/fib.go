// internal/benchapp/fib.go
package benchapp

import (
	"tengebench-core/fib"
	"tengebench/internal/harness"
	"tengebench/internal/runutil"
)

// FibIter evaluates fib(N) once, or XOR-folds INNER_REPS evaluations. It is
// timed externally: nothing is printed unless PRINT_SINK=1, which prints the
// bare sink.
var FibIter = Program{
	Name:     "fib_iter",
	Synopsis: "[N=90]  env: INNER_REPS, PRINT_SINK=1",
	Run:      runFibIter,
}

func runFibIter(inv harness.Invocation) harness.Result {
	n := inv.Args.Uint64(0, 90)
	inner := inv.Env.Uint64(runutil.EnvInnerReps, 0)

	sw := inv.Start()
	var sink uint64
	if inner == 0 {
		sink = fib.Iter(n)
	} else {
		sink = fib.XorFold(n, inner)
	}
	elapsed := sw.Elapsed()

	return harness.Result{
		Task:    "fib_iter",
		N:       n,
		Elapsed: elapsed,
		Sink:    sink,
		Style:   harness.StyleSinkOnly,
		Verbose: inv.PrintSink(),
	}
}

// FibIterFixed repeats fib(N) reps times and reports the per-rep average.
// reps comes from argv[1], then INNER_REPS, then 1.
var FibIterFixed = Program{
	Name:     "fib_iter_fixed",
	Synopsis: "[N=90] [reps=1]  env: INNER_REPS",
	Run:      runFibIterFixed,
}

func runFibIterFixed(inv harness.Invocation) harness.Result {
	n := inv.Args.Uint64(0, 90)
	reps := runutil.EffectiveReps(inv.Args.Int(1, inv.Env.Int(runutil.EnvInnerReps, 1)))

	_ = fib.Iter(10) // warm-up

	sw := inv.Start()
	var sink uint64
	for r := 0; r < reps; r++ {
		sink ^= fib.Iter(n)
	}
	elapsed := sw.Elapsed()

	return harness.Result{
		Task:    "fib_iter_fixed",
		N:       n,
		Elapsed: harness.PerRep(elapsed, reps),
		Fields:  []harness.Field{harness.Uint("SINK", sink)},
		Sink:    sink,
	}
}

// FibRec is the naive recursive Fibonacci, BATCH_ITER times.
var FibRec = Program{
	Name:     "fib_rec",
	Synopsis: "[N=35]  env: BATCH_ITER",
	Run:      runFibRec,
}

func runFibRec(inv harness.Invocation) harness.Result {
	n := inv.Args.Int(0, 35)
	iters := runutil.EffectiveReps(inv.Env.Int(runutil.EnvBatchIter, 0))

	sw := inv.Start()
	var acc uint64
	for i := 0; i < iters; i++ {
		acc ^= fib.Rec(n)
	}
	elapsed := sw.Elapsed()

	return harness.Result{
		Task:    "fib_rec",
		N:       uint64(n),
		Elapsed: harness.PerRep(elapsed, iters),
		Fields:  []harness.Field{harness.Uint("ACC", acc)},
		Sink:    acc,
	}
}
