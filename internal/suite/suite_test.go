package suite

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tengebench/internal/harness"
	"tengebench/internal/runutil"
)

const goodPlan = `
name: smoke
repeat: 2
env:
  BATCH_ITER: "1"
runs:
  - program: fib_iter_fixed
    args: ["10"]
  - program: sort
    args: ["32"]
    repeat: 1
    env:
      PRINT_SINK: "1"
`

func tick() harness.Clock {
	t := time.Unix(0, 0)
	return func() time.Time {
		now := t
		t = t.Add(500 * time.Nanosecond)
		return now
	}
}

func TestParsePlan(t *testing.T) {
	p, err := ParsePlan([]byte(goodPlan))
	require.NoError(t, err)
	assert.Equal(t, "smoke", p.Name)
	require.Len(t, p.Runs, 2)

	jobs, err := p.Jobs()
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "fib_iter_fixed", jobs[0].Program.Name)
	assert.Equal(t, 2, jobs[1].Rep)
	assert.Equal(t, map[string]string{"BATCH_ITER": "1", "PRINT_SINK": "1"}, jobs[2].Env)
}

func validationTags(t *testing.T, err error) []string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "want ValidationErrors, got %v", err)
	var tags []string
	for _, fe := range verrs {
		tags = append(tags, fe.Tag())
	}
	return tags
}

func TestParsePlan_Invalid(t *testing.T) {
	_, err := ParsePlan([]byte("runs:\n  - program: quicksort\n"))
	assert.Equal(t, []string{"program"}, validationTags(t, err))

	_, err = ParsePlan([]byte("runs:\n  - program: fft\n    repeat: -1\n"))
	assert.Equal(t, []string{"gte"}, validationTags(t, err))

	_, err = ParsePlan([]byte("env: {batch_iter: \"2\"}\nruns:\n  - program: fft\n"))
	assert.Equal(t, []string{"envkey"}, validationTags(t, err))

	_, err = ParsePlan([]byte("name: empty\n"))
	assert.Equal(t, []string{"required"}, validationTags(t, err))
}

func TestParsePlan_Malformed(t *testing.T) {
	_, err := ParsePlan([]byte("runs:\n  - program: fft\n    argz: [1]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argz")

	_, err = ParsePlan(nil)
	assert.ErrorContains(t, err, "empty document")
}

func TestLoadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(goodPlan), 0o644))
	p, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Len(t, p.Runs, 2)

	_, err = LoadPlan(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExpand_Unknown(t *testing.T) {
	_, err := Expand("bogosort", nil, 1, nil)
	assert.ErrorIs(t, err, ErrUnknownProgram)

	jobs, err := Expand("fft", []string{"8"}, 0, nil)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestRunner_Run(t *testing.T) {
	p, err := ParsePlan([]byte(goodPlan))
	require.NoError(t, err)
	jobs, err := p.Jobs()
	require.NoError(t, err)

	var out bytes.Buffer
	r := &Runner{Env: runutil.Map(nil), Clock: tick(), Out: &out}
	rep, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)
	assert.NotEmpty(t, rep.RunID)
	assert.Len(t, rep.Results, 3)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"TASK=fib_iter_fixed,N=10,TIME_NS=500,SINK=55",
		"TASK=fib_iter_fixed,N=10,TIME_NS=500,SINK=55",
		"TASK=sort,N=32,TIME_NS=500,CHECKSUM=17598384246377965283",
	}, lines)
}

func TestRunner_BaseEnvIsOverlaid(t *testing.T) {
	jobs, err := Expand("fib_iter_fixed", []string{"10"}, 1, map[string]string{runutil.EnvInnerReps: "2"})
	require.NoError(t, err)

	var out bytes.Buffer
	r := &Runner{Env: runutil.Map(map[string]string{runutil.EnvInnerReps: "5"}), Clock: tick(), Out: &out}
	_, err = r.Run(context.Background(), jobs)
	require.NoError(t, err)
	assert.Equal(t, "TASK=fib_iter_fixed,N=10,TIME_NS=250,SINK=0\n", out.String())
}

func TestRunner_Cancelled(t *testing.T) {
	jobs, err := Expand("fft", []string{"4"}, 3, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	rep, err := (&Runner{Env: runutil.Map(nil), Out: &out}).Run(ctx, jobs)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rep.Results)
	assert.Zero(t, out.Len())
}

func TestMustRegister(t *testing.T) {
	ok := func(validator.FieldLevel) bool { return true }
	assert.NotPanics(t, func() { mustRegister(validator.New(), "always", ok) })
	assert.Panics(t, func() { mustRegister(validator.New(), "", ok) })
}
