// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"slices"

	"tengebench/internal/results"
)

// SummaryWriter renders one complete aggregation.
type SummaryWriter func(w io.Writer, groups []results.Summary) error

// SummaryWriters maps a format name to its writer. Formats register
// themselves in init() blocks.
var SummaryWriters = map[string]SummaryWriter{}

// Register adds or replaces a format (last wins).
func Register(format string, fn SummaryWriter) { SummaryWriters[format] = fn }

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, groups []results.Summary) error {
	fn, ok := SummaryWriters[format]
	if !ok {
		return fmt.Errorf("unknown summary format %q (no writer registered)", format)
	}
	return fn(w, groups)
}

// Formats lists registered format names.
func Formats() []string {
	out := make([]string, 0, len(SummaryWriters))
	for k := range SummaryWriters {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
