package harness

import (
	"io"
	"strconv"
	"strings"
)

// Field is one trailing KEY=value pair of a result line.
type Field struct {
	Key   string
	Value string
}

// Float formats v with a fixed number of decimals.
func Float(key string, v float64, prec int) Field {
	return Field{Key: key, Value: strconv.FormatFloat(v, 'f', prec, 64)}
}

// Uint formats an unsigned checksum.
func Uint(key string, v uint64) Field {
	return Field{Key: key, Value: strconv.FormatUint(v, 10)}
}

// Style selects how a Result is rendered.
type Style int

const (
	// StyleLine always prints the key=value line.
	StyleLine Style = iota
	// StyleBareNanos prints only TIME_NS as a bare integer, or the full line
	// when Verbose is set.
	StyleBareNanos
	// StyleSinkOnly prints nothing, or the bare sink when Verbose is set.
	StyleSinkOnly
)

// Result is what one invocation observed.
type Result struct {
	Task    string
	N       uint64
	Elapsed uint64 // ns; per-rep average for repeated kernels
	Fields  []Field
	Sink    uint64 // anti-elision accumulator for programs without a printed checksum
	Style   Style
	Verbose bool
}

// Line is the full key=value rendering regardless of Style.
func (r Result) Line() string {
	var b strings.Builder
	b.Grow(48 + 24*len(r.Fields))
	b.WriteString("TASK=")
	b.WriteString(r.Task)
	b.WriteString(",N=")
	b.WriteString(strconv.FormatUint(r.N, 10))
	b.WriteString(",TIME_NS=")
	b.WriteString(strconv.FormatUint(r.Elapsed, 10))
	for _, f := range r.Fields {
		b.WriteByte(',')
		b.WriteString(f.Key)
		b.WriteByte('=')
		b.WriteString(f.Value)
	}
	return b.String()
}

// Render applies Style. An empty string means nothing is printed.
func (r Result) Render() string {
	switch r.Style {
	case StyleBareNanos:
		if r.Verbose {
			return r.Line()
		}
		return strconv.FormatUint(r.Elapsed, 10)
	case StyleSinkOnly:
		if r.Verbose {
			return strconv.FormatUint(r.Sink, 10)
		}
		return ""
	default:
		return r.Line()
	}
}

// Emit writes the rendered line and its newline in a single write.
func Emit(w io.Writer, r Result) error {
	s := r.Render()
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}
