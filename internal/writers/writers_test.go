package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tengebench/internal/results"
	"tengebench/pkg/api"
)

func sample() []results.Summary {
	return []results.Summary{
		{Key: results.Key{Task: "sort", Lang: "tenge", N: "100000"}, Count: 3, Mean: 1500, StdDev: 15.2, PopStdDev: 12.4, Median: 1490, Min: 1480, Max: 1530, CV: 0.83},
		{Key: results.Key{Task: "sort", Lang: "go", N: "100000"}, Count: 1, Mean: 1200, Median: 1200, Min: 1200, Max: 1200},
		{Key: results.Key{Task: "sort", Lang: "zig", N: "100000"}, Count: 1, Mean: 900, Median: 900, Min: 900, Max: 900},
	}
}

func TestUnknownFormat(t *testing.T) {
	err := Write("nope-format", &bytes.Buffer{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown summary format")
}

func TestFormatsRegistered(t *testing.T) {
	assert.Equal(t, []string{"csv", "json", "md", "prom", "table"}, Formats())
}

func TestCSV(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("csv", &b, sample()))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "TASK,LANG,VARIANT,N,AVG_NS,STD_NS,COUNT,MEDIAN_NS,MIN_NS,MAX_NS,CV_PCT", lines[0])
	assert.Equal(t, "sort,tenge,,100000,1500,12,3,1490,1480,1530,0.83", lines[1])
}

func TestMarkdown(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("md", &b, sample()))
	out := b.String()
	assert.Contains(t, out, "## sort\n")
	assert.Contains(t, out, "| N | Variant | Tenge | C | Rust | Go | Zig |")
	assert.Contains(t, out, "| 100000 | — | 1500 ns ± 12 | — | — | 1200 ns | 900 ns |")
}

func TestJSON(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("json", &b, sample()))
	var rep api.ReportV1
	require.NoError(t, json.Unmarshal(b.Bytes(), &rep))
	assert.Equal(t, api.SchemaV1, rep.Schema)
	require.Len(t, rep.Groups, 3)
	assert.Equal(t, "tenge", rep.Groups[0].Lang)
	assert.Equal(t, 1500.0, rep.Groups[0].MeanNS)
}

func TestProm(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("prom", &b, sample()[:1]))
	out := b.String()
	assert.Contains(t, out, "# TYPE tengebench_mean_ns gauge")
	assert.Contains(t, out, `tengebench_mean_ns{lang="tenge",n="100000",task="sort",variant=""} 1500`)
	assert.Contains(t, out, `tengebench_samples{lang="tenge",n="100000",task="sort",variant=""} 3`)
}

func TestTable(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("table", &b, sample()))
	out := b.String()
	assert.Contains(t, out, "TASK")
	assert.Contains(t, out, "tenge")
	assert.Contains(t, out, "1500")
}

func TestMarkdown_MixedCaseLanguagesShareACell(t *testing.T) {
	groups := results.Aggregate([]results.Record{
		{Task: "fft", Lang: "Go", N: "8", TimeNS: 100},
		{Task: "fft", Lang: "go", N: "8", TimeNS: 300},
	}, results.Filter{})
	var b bytes.Buffer
	require.NoError(t, Write("md", &b, groups))
	assert.Contains(t, b.String(), "| 8 | — | — | — | — | 200 ns ± 100 |")
}
