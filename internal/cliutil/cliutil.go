// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Positionals is a benchmark's raw argv (without the program name).
// Every accessor falls back to the supplied default when the argument is
// absent or does not parse; a bad argument is never an error.
type Positionals []string

func (p Positionals) at(i int) (string, bool) {
	if i < 0 || i >= len(p) {
		return "", false
	}
	return strings.TrimSpace(p[i]), true
}

// Int reads a non-negative size or count. Negative literals fall back like
// any other unparsable value.
func (p Positionals) Int(i, def int) int {
	s, ok := p.at(i)
	if !ok {
		return def
	}
	v, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return def
	}
	return int(v)
}

// Uint64 reads an unsigned 64-bit value.
func (p Positionals) Uint64(i int, def uint64) uint64 {
	s, ok := p.at(i)
	if !ok {
		return def
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return def
	}
	return v
}

// Float reads a float64 (accepts anything strconv.ParseFloat does, e.g. 1e-3).
func (p Positionals) Float(i int, def float64) float64 {
	s, ok := p.at(i)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals.
// "-" (stdin) passes through untouched.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" {
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %w", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
		} else {
			out = append(out, a)
		}
	}
	return out, nil
}
