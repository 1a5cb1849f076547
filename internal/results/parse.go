// internal/results/parse.go
package results

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrNoTime = errors.New("results: no time field")
	ErrNoTask = errors.New("results: no task name")
)

// Record is one timed observation.
type Record struct {
	Task    string
	Lang    string
	Variant string
	N       string
	TimeNS  float64
}

// Defaults tag lines that do not carry their own identity, such as the bare
// nanosecond lines of sort and nbody.
type Defaults struct {
	Task    string
	Lang    string
	Variant string
	N       string
}

func firstOf(kv map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := kv[k]; v != "" {
			return v
		}
	}
	return ""
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// fromFields builds a record from lower-cased column names.
func fromFields(kv map[string]string, d Defaults) (Record, error) {
	rec := Record{
		Task:    orDefault(firstOf(kv, "task"), d.Task),
		Lang:    orDefault(firstOf(kv, "lang"), d.Lang),
		Variant: orDefault(firstOf(kv, "variant", "var", "algo"), d.Variant),
		N:       orDefault(firstOf(kv, "n", "size"), d.N),
	}
	if rec.Task == "" {
		return Record{}, ErrNoTask
	}
	ns, ok := timeNS(kv)
	if !ok {
		return Record{}, ErrNoTime
	}
	rec.TimeNS = ns
	return rec, nil
}

func timeNS(kv map[string]string) (float64, bool) {
	for _, k := range []string{"time_ns", "avg_ns"} {
		if v, err := strconv.ParseFloat(kv[k], 64); err == nil {
			return v, true
		}
	}
	if v, err := strconv.ParseFloat(kv["time_us"], 64); err == nil {
		return v * 1000, true
	}
	// Runners that keep every repetition write rep1_ns, rep2_ns, ...
	var sum float64
	var n int
	for _, k := range slices.Sorted(maps.Keys(kv)) {
		if !strings.HasPrefix(k, "rep") || !strings.HasSuffix(k, "_ns") {
			continue
		}
		if x, err := strconv.ParseFloat(kv[k], 64); err == nil {
			sum += x
			n++
		}
	}
	if n > 0 {
		return sum / float64(n), true
	}
	return 0, false
}

// ParseLine reads one result line: either KEY=value pairs joined by commas,
// or a bare nanosecond count tagged with d.
func ParseLine(line string, d Defaults) (Record, error) {
	line = strings.TrimSpace(line)
	if ns, err := strconv.ParseUint(line, 10, 64); err == nil {
		return fromFields(map[string]string{"time_ns": strconv.FormatUint(ns, 10)}, d)
	}
	kv := map[string]string{}
	for _, part := range strings.Split(line, ",") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		kv[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return fromFields(kv, d)
}

// splitCSV parses one CSV row, honouring quoted fields.
func splitCSV(line string) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	fields, err := cr.Read()
	if err != nil {
		return nil, err
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields, nil
}

// csvHeader returns the lower-cased columns when line is a CSV header row
// naming a task column.
func csvHeader(line string) ([]string, bool) {
	if !strings.Contains(line, ",") || strings.Contains(line, "=") {
		return nil, false
	}
	cols, err := splitCSV(line)
	if err != nil {
		return nil, false
	}
	for i := range cols {
		cols[i] = strings.ToLower(cols[i])
	}
	return cols, slices.Contains(cols, "task")
}

// Read collects records from r. Result lines and CSV files (header row
// naming a task column) are both accepted; blank and '#' lines are ignored.
// Lines that yield no record are counted in skipped rather than failing the
// read.
func Read(r io.Reader, d Defaults) (recs []Record, skipped int, err error) {
	sc := bufio.NewScanner(r)
	var header []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if cols, ok := csvHeader(line); ok {
			header = cols
			continue
		}
		var rec Record
		var perr error
		if header != nil && !strings.Contains(line, "=") && strings.Contains(line, ",") {
			var fields []string
			if fields, perr = splitCSV(line); perr == nil {
				rec, perr = fromFields(zip(header, fields), d)
			}
		} else {
			rec, perr = ParseLine(line, d)
		}
		if perr != nil {
			skipped++
			continue
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return recs, skipped, fmt.Errorf("read results: %w", err)
	}
	return recs, skipped, nil
}

func zip(cols, vals []string) map[string]string {
	kv := make(map[string]string, len(cols))
	for i, c := range cols {
		if i < len(vals) {
			kv[c] = strings.TrimSpace(vals[i])
		}
	}
	return kv
}
