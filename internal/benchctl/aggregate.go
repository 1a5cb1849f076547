// internal/benchctl/aggregate.go
package benchctl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tengebench/internal/cliutil"
	"tengebench/internal/results"
	"tengebench/internal/writers"
)

type aggregateFlags struct {
	format   string
	defaults results.Defaults
	where    []string
}

func newAggregateCmd(a *app) *cobra.Command {
	var f aggregateFlags
	cmd := &cobra.Command{
		Use:   "aggregate [files|globs|-]...",
		Short: "Group result lines by task, language, variant and size, and summarise timings",
		Long: `aggregate reads result lines (TASK=...,N=...,TIME_NS=...), bare nanosecond
lines, or CSV files with a TASK column, and reports count, mean, stddev,
median, min, max and CV per (task, lang, variant, N) group.

With no inputs, or "-", it reads stdin. --task/--lang/--variant/--n tag
records that do not name those fields themselves.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAggregate(cmd, a, f, args)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.format, "format", "f", "", "output format: "+strings.Join(writers.Formats(), ", ")+" (default table on a terminal, csv otherwise)")
	fl.StringVar(&f.defaults.Task, "task", "", "task name for lines without TASK")
	fl.StringVar(&f.defaults.Lang, "lang", "", "language for lines without LANG")
	fl.StringVar(&f.defaults.Variant, "variant", "", "variant for lines without VARIANT")
	fl.StringVar(&f.defaults.N, "n", "", "size for lines without N")
	fl.StringArrayVar(&f.where, "where", nil, "keep only groups matching KEY=VALUE (task, lang, variant, n; repeatable)")
	return cmd
}

func parseWhere(pairs []string) (results.Filter, error) {
	var f results.Filter
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return f, fmt.Errorf("bad --where %q: want KEY=VALUE", kv)
		}
		switch strings.ToLower(k) {
		case "task":
			f.Task = v
		case "lang":
			f.Lang = v
		case "variant":
			f.Variant = v
		case "n":
			f.N = v
		default:
			return f, fmt.Errorf("bad --where key %q", k)
		}
	}
	return f, nil
}

func runAggregate(cmd *cobra.Command, a *app, f aggregateFlags, args []string) error {
	log := a.logger(cmd)
	filter, err := parseWhere(f.where)
	if err != nil {
		return err
	}
	format := f.format
	if format == "" {
		format = "csv"
		if a.isTTY != nil && a.isTTY(cmd.OutOrStdout()) {
			format = "table"
		}
	}
	if _, ok := writers.SummaryWriters[format]; !ok {
		return fmt.Errorf("unknown --format %q (have %s)", format, strings.Join(writers.Formats(), ", "))
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	inputs, err = cliutil.ExpandPositionals(inputs)
	if err != nil {
		return err
	}

	var recs []results.Record
	for _, in := range inputs {
		got, skipped, err := readInput(cmd.InOrStdin(), in, f.defaults)
		if errors.Is(err, os.ErrNotExist) {
			log.Warn("input not found", "path", in)
			continue
		}
		if err != nil {
			return err
		}
		log.Debug("read input", "path", in, "records", len(got), "skipped", skipped)
		recs = append(recs, got...)
	}
	if len(recs) == 0 {
		return errors.New("aggregate: no records read from inputs")
	}

	return writers.Write(format, cmd.OutOrStdout(), results.Aggregate(recs, filter))
}

func readInput(stdin io.Reader, path string, d results.Defaults) ([]results.Record, int, error) {
	if path == "-" {
		return results.Read(stdin, d)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer fh.Close()
	recs, skipped, err := results.Read(fh, d)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return recs, skipped, nil
}
