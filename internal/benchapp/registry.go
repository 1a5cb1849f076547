// internal/benchapp/registry.go
package benchapp

import (
	"slices"

	"tengebench/internal/harness"
)

// Program is one benchmark entry point.
type Program struct {
	Name     string
	Synopsis string // positional arguments and env knobs, for listings
	Run      func(harness.Invocation) harness.Result
}

var programs = map[string]Program{}

func init() {
	for _, p := range []Program{
		FibIter, FibIterFixed, FibRec,
		Sort, FFT, Garch, MatrixOps,
		NBody, NBodySym,
		PortfolioOpt, YieldCurve,
		VarMC, VarMCAcc,
	} {
		programs[p.Name] = p
	}
}

// Lookup finds a program by task name.
func Lookup(name string) (Program, bool) {
	p, ok := programs[name]
	return p, ok
}

// Names lists registered task names in lexical order.
func Names() []string {
	out := make([]string, 0, len(programs))
	for name := range programs {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
