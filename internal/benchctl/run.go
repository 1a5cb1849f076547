// internal/benchctl/run.go
package benchctl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tengebench/internal/suite"
)

type runFlags struct {
	plan   string
	repeat int
	env    []string
	out    string
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run [program [args...]]",
		Short: "Run one program, or a YAML plan, sequentially in-process",
		Example: `  benchctl run --repeat 5 sort 100000
  benchctl run --env BATCH_ITER=3 fib_rec 30
  benchctl run --plan nightly.yaml --out results.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, a, f, args)
		},
	}
	fl := cmd.Flags()
	// Everything after the program name belongs to the program.
	fl.SetInterspersed(false)
	fl.StringVar(&f.plan, "plan", "", "YAML suite plan to run")
	fl.IntVar(&f.repeat, "repeat", 1, "invocations per program (ignored with --plan)")
	fl.StringArrayVar(&f.env, "env", nil, "KEY=VALUE set for every invocation (repeatable)")
	fl.StringVar(&f.out, "out", "", "append result lines to this file instead of stdout")
	return cmd
}

func parseEnvPairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	env := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("bad --env %q: want KEY=VALUE", kv)
		}
		env[k] = v
	}
	return env, nil
}

func buildJobs(f runFlags, args []string, env map[string]string) ([]suite.Job, error) {
	if f.plan == "" {
		if len(args) == 0 {
			return nil, fmt.Errorf("run: need a program name or --plan")
		}
		return suite.Expand(args[0], args[1:], f.repeat, env)
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("run: --plan does not take a program (got %q)", args[0])
	}
	p, err := suite.LoadPlan(f.plan)
	if err != nil {
		return nil, err
	}
	jobs, err := p.Jobs()
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		jobs[i].Env = overlay(jobs[i].Env, env)
	}
	return jobs, nil
}

// overlay returns base with over applied on top; --env beats the plan.
func overlay(base, over map[string]string) map[string]string {
	if len(over) == 0 {
		return base
	}
	out := make(map[string]string, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

func runRun(cmd *cobra.Command, a *app, f runFlags, args []string) error {
	env, err := parseEnvPairs(f.env)
	if err != nil {
		return err
	}
	jobs, err := buildJobs(f, args, env)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if f.out != "" {
		fh, err := os.OpenFile(f.out, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open --out: %w", err)
		}
		defer fh.Close()
		out = fh
	}

	r := &suite.Runner{Env: a.env, Clock: a.clock, Out: out, Log: a.logger(cmd)}
	_, err = r.Run(cmd.Context(), jobs)
	return err
}
