// internal/suite/runner.go
package suite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tengebench/internal/benchapp"
	"tengebench/internal/cliutil"
	"tengebench/internal/cmdutil"
	"tengebench/internal/harness"
	"tengebench/internal/runutil"
)

var ErrUnknownProgram = errors.New("unknown program")

// Job is one benchmark invocation.
type Job struct {
	Program benchapp.Program
	Args    []string
	Env     map[string]string // overlaid on the runner's base environment
	Rep     int               // 1-based repetition index
}

// Expand resolves name and returns repeat jobs for it (non-positive repeat
// means 1).
func Expand(name string, args []string, repeat int, env map[string]string) ([]Job, error) {
	p, ok := benchapp.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownProgram, name)
	}
	repeat = runutil.EffectiveReps(repeat)
	jobs := make([]Job, repeat)
	for i := range jobs {
		jobs[i] = Job{Program: p, Args: args, Env: env, Rep: i + 1}
	}
	return jobs, nil
}

// Runner executes jobs one after another in this process. Jobs never overlap.
type Runner struct {
	Env   runutil.Env   // base environment; nil means the process environment
	Clock harness.Clock // nil means time.Now
	Out   io.Writer     // result lines
	Log   *slog.Logger  // nil discards
}

// Report summarises a finished (or interrupted) suite.
type Report struct {
	RunID   string
	Results []harness.Result
}

// Run executes jobs sequentially, emitting each result line to r.Out.
// Cancellation is checked between jobs only; a running kernel is never
// interrupted.
func (r *Runner) Run(ctx context.Context, jobs []Job) (Report, error) {
	base := r.Env
	if base == nil {
		base = runutil.OS()
	}
	log := r.Log
	if log == nil {
		log = cmdutil.Discard()
	}
	rep := Report{RunID: uuid.NewString()}
	log = log.With("run_id", rep.RunID)
	log.Info("suite starting", "jobs", len(jobs))
	started := time.Now()

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			log.Warn("suite interrupted", "completed", i, "jobs", len(jobs))
			return rep, fmt.Errorf("suite interrupted after %d of %d runs: %w", i, len(jobs), err)
		}
		res := job.Program.Run(harness.Invocation{
			Args:  cliutil.Positionals(job.Args),
			Env:   runutil.Overlay(base, job.Env),
			Clock: r.Clock,
		})
		rep.Results = append(rep.Results, res)
		log.Debug("run finished", "task", res.Task, "n", res.N, "time_ns", res.Elapsed, "rep", job.Rep)
		if err := harness.Emit(r.Out, res); err != nil {
			return rep, fmt.Errorf("emit %s: %w", res.Task, err)
		}
	}

	log.Info("suite finished", "runs", len(rep.Results), "wall", time.Since(started).Round(time.Millisecond))
	return rep, nil
}
