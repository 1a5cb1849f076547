package benchapp

import (
	"tengebench-core/nbody"
	"tengebench-core/xorshift"
	"tengebench/internal/harness"
)

// Both N-body programs exclude initialisation from the timed window and
// compute the energy diagnostic after the stopwatch stops.

type nbodyArgs struct {
	n     int
	steps int
	dt    float64
}

func parseNBody(inv harness.Invocation) nbodyArgs {
	return nbodyArgs{
		n:     inv.Args.Int(0, 4096),
		steps: inv.Args.Int(1, 10),
		dt:    inv.Args.Float(2, 1e-3),
	}
}

// NBody is the all-pairs variant. It prints bare nanoseconds; PRINT_SINK=1
// prints the full line with ENERGY.
var NBody = Program{
	Name:     "nbody",
	Synopsis: "[N=4096] [steps=10] [dt=1e-3]  env: PRINT_SINK=1",
	Run:      runNBody,
}

func runNBody(inv harness.Invocation) harness.Result {
	a := parseNBody(inv)
	b := nbody.NewBodies(xorshift.New(nbody.Seed), a.n)
	b.Init()

	sw := inv.Start()
	for s := 0; s < a.steps; s++ {
		b.Step(a.dt)
	}
	elapsed := sw.Elapsed()

	return harness.Result{
		Task:    "nbody",
		N:       uint64(a.n),
		Elapsed: elapsed,
		Fields:  []harness.Field{harness.Float("ENERGY", b.Energy(), 9)},
		Style:   harness.StyleBareNanos,
		Verbose: inv.PrintSink(),
	}
}

// NBodySym is the symmetric, tiled variant.
var NBodySym = Program{
	Name:     "nbody_sym",
	Synopsis: "[N=4096] [steps=10] [dt=1e-3]",
	Run:      runNBodySym,
}

func runNBodySym(inv harness.Invocation) harness.Result {
	a := parseNBody(inv)
	s := nbody.NewTiled(xorshift.New(nbody.Seed), a.n)
	s.Init()

	sw := inv.Start()
	for i := 0; i < a.steps; i++ {
		s.Step(a.dt)
	}
	elapsed := sw.Elapsed()

	return harness.Result{
		Task:    "nbody_sym",
		N:       uint64(a.n),
		Elapsed: elapsed,
		Fields:  []harness.Field{harness.Float("ENERGY", s.Energy(), 9)},
	}
}
