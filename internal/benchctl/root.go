// internal/benchctl/root.go
package benchctl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tengebench/internal/cmdutil"
	"tengebench/internal/harness"
	"tengebench/internal/runutil"
	"tengebench/internal/writers"
)

// app is the state shared by every subcommand.
type app struct {
	quiet   bool
	verbose bool

	env   runutil.Env
	clock harness.Clock
	isTTY func(io.Writer) bool
}

func (a *app) logger(cmd *cobra.Command) *slog.Logger {
	return cmdutil.NewLogger(cmd.ErrOrStderr(), a.quiet, a.verbose)
}

func terminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newRoot(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "benchctl",
		Short: "Run the micro-benchmark programs and aggregate their result lines",
		Long: `benchctl drives the tengebench programs in-process, one at a time,
and turns collected result lines (from any language port) into reports.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "log errors only")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every run")

	root.AddCommand(
		newListCmd(),
		newRunCmd(a),
		newAggregateCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs benchctl with argv and returns the process exit code:
// 0 on success, 130 when interrupted, 1 otherwise.
func Execute(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return execute(ctx, &app{env: runutil.OS(), isTTY: terminal}, argv, stdin, stdout, stderr)
}

func execute(ctx context.Context, a *app, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRoot(a)
	root.SetArgs(argv)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return 0
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(stderr, "benchctl: %v\n", err)
		return 130
	default:
		fmt.Fprintf(stderr, "benchctl: %v\n", err)
		return 1
	}
}
