// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tengebench/internal/appshell"
	"tengebench/internal/benchapp"
	"tengebench/internal/benchctl"
	"tengebench/internal/runutil"
)

var lineRE = regexp.MustCompile(`^TASK=([a-z_]+),N=(\d+),TIME_NS=(\d+)(,[A-Z_]+=[^,]+)*$`)

// small keeps every program fast enough for the unit test budget.
var small = map[string][]string{
	"fib_iter":       {"50"},
	"fib_iter_fixed": {"10"},
	"fib_rec":        {"15"},
	"sort":           {"1000"},
	"fft":            {"64"},
	"garch":          {"500"},
	"matrix_ops":     {"12"},
	"nbody":          {"70", "2"},
	"nbody_sym":      {"70", "2"},
	"portfolio_opt":  {"20"},
	"yield_curve":    {"50"},
	"var_mc":         {"1000"},
	"var_mc_acc":     {"1000"},
}

func TestEveryProgramEmitsOneLine(t *testing.T) {
	env := runutil.Map(map[string]string{runutil.EnvPrintSink: "1"})
	for _, name := range benchapp.Names() {
		t.Run(name, func(t *testing.T) {
			p, ok := benchapp.Lookup(name)
			require.True(t, ok)
			args, ok := small[name]
			require.True(t, ok, "no small arguments for %s", name)

			var out, errBuf bytes.Buffer
			code := appshell.Run(p, args, env, &out, &errBuf)
			require.Zero(t, code)
			assert.Empty(t, errBuf.String())

			if name == "fib_iter" {
				assert.Equal(t, "12586269025\n", out.String())
				return
			}
			line := strings.TrimSuffix(out.String(), "\n")
			assert.NotContains(t, line, "\n")
			m := lineRE.FindStringSubmatch(line)
			require.NotNil(t, m, "malformed line %q", line)
			assert.Equal(t, name, m[1])
			assert.Equal(t, args[0], m[2])
		})
	}
}

func TestFibIterFixed_N10(t *testing.T) {
	var out bytes.Buffer
	code := appshell.Run(benchapp.FibIterFixed, []string{"10"}, runutil.Map(nil), &out, &bytes.Buffer{})
	require.Zero(t, code)
	assert.Contains(t, out.String(), "N=10")
	assert.Contains(t, out.String(), "SINK=55")
}

func TestBadArgumentsFallBackToDefaults(t *testing.T) {
	var out bytes.Buffer
	appshell.Run(benchapp.YieldCurve, []string{"-5"}, runutil.Map(nil), &out, &bytes.Buffer{})
	assert.True(t, strings.HasPrefix(out.String(), "TASK=yield_curve,N=1000,"), out.String())
}

func TestRunThenAggregate(t *testing.T) {
	var lines, errBuf bytes.Buffer
	code := benchctl.Execute(context.Background(),
		[]string{"run", "-q", "--repeat", "3", "garch", "200"}, nil, &lines, &errBuf)
	require.Zero(t, code, errBuf.String())
	require.Equal(t, 3, strings.Count(lines.String(), "\n"))

	var report bytes.Buffer
	code = benchctl.Execute(context.Background(),
		[]string{"aggregate", "--lang", "go", "-f", "csv"}, &lines, &report, &errBuf)
	require.Zero(t, code, errBuf.String())
	rows := strings.Split(strings.TrimSpace(report.String()), "\n")
	require.Len(t, rows, 2)
	assert.True(t, strings.HasPrefix(rows[1], "garch,go,,200,"), rows[1])
	assert.Contains(t, rows[1], ",3,")
}
