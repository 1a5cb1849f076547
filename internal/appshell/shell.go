// internal/appshell/shell.go
package appshell

import (
	"io"
	"log/slog"
	"os"

	"tengebench/internal/benchapp"
	"tengebench/internal/cliutil"
	"tengebench/internal/cmdutil"
	"tengebench/internal/harness"
	"tengebench/internal/runutil"
	"tengebench/internal/writers"
)

// Main is the whole body of a benchmark binary's main function.
func Main(p benchapp.Program) {
	code := Run(p, os.Args[1:], runutil.OS(), os.Stdout, os.Stderr)
	os.Exit(code)
}

// Run executes p once and emits its result line. Benchmarks always exit 0:
// a failed write to a closed pipe is ignored and any other write failure is
// only logged.
func Run(p benchapp.Program, argv []string, env runutil.Env, stdout, stderr io.Writer) int {
	return RunWith(p, harness.Invocation{Args: cliutil.Positionals(argv), Env: env}, stdout, cmdutil.NewLogger(stderr, false, false))
}

// RunWith is Run with a prepared invocation and logger.
func RunWith(p benchapp.Program, inv harness.Invocation, stdout io.Writer, log *slog.Logger) int {
	res := p.Run(inv)
	if err := harness.Emit(stdout, res); err != nil && !writers.IsBrokenPipe(err) {
		log.Warn("write result", "task", p.Name, "err", err)
	}
	return 0
}
