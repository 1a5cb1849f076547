package harness

import (
	"tengebench/internal/cliutil"
	"tengebench/internal/runutil"
)

// Invocation is everything a program may read.
type Invocation struct {
	Args  cliutil.Positionals
	Env   runutil.Env
	Clock Clock
}

// Start opens a timed window on the invocation's clock.
func (inv Invocation) Start() Stopwatch { return Start(inv.Clock) }

// PrintSink reports whether PRINT_SINK=1 asked for diagnostic output.
func (inv Invocation) PrintSink() bool { return inv.Env.Flag(runutil.EnvPrintSink) }
