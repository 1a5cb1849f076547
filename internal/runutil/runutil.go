// internal/runutil/runutil.go
package runutil

import (
	"os"
	"strconv"
	"strings"
)

// Environment knobs understood by the benchmark programs.
const (
	EnvInnerReps = "INNER_REPS" // Fibonacci inner repetition count
	EnvPrintSink = "PRINT_SINK" // "1" enables diagnostic output
	EnvBatchIter = "BATCH_ITER" // outer repetition count (sort, fib_rec, var_mc)
)

// Env looks up one variable; it has the shape of os.LookupEnv.
type Env func(key string) (string, bool)

// OS is the process environment.
func OS() Env { return os.LookupEnv }

// Map serves variables from m. A nil map is an empty environment.
func Map(m map[string]string) Env {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Overlay consults over first and falls back to base.
func Overlay(base Env, over map[string]string) Env {
	if len(over) == 0 {
		return base
	}
	return func(key string) (string, bool) {
		if v, ok := over[key]; ok {
			return v, true
		}
		if base == nil {
			return "", false
		}
		return base(key)
	}
}

func (e Env) get(key string) (string, bool) {
	if e == nil {
		return "", false
	}
	v, ok := e(key)
	return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
}

// Int returns the variable as an int, or def when unset or unparsable.
func (e Env) Int(key string, def int) int {
	s, ok := e.get(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// Uint64 returns the variable as a uint64, or def when unset or unparsable.
func (e Env) Uint64(key string, def uint64) uint64 {
	s, ok := e.get(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return def
	}
	return v
}

// Flag reports whether the variable is exactly "1".
func (e Env) Flag(key string) bool {
	s, ok := e.get(key)
	return ok && s == "1"
}

// EffectiveReps maps unset, zero and negative repetition counts to 1.
func EffectiveReps(reps int) int {
	if reps <= 0 {
		return 1
	}
	return reps
}
