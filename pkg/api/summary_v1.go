// pkg/api/summary_v1.go
package api

// SchemaV1 identifies the summary document layout.
const SchemaV1 = "tengebench.summary/v1"

// SummaryV1 is the stable JSON schema for one aggregated (task, lang, variant, N)
// group. Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SummaryV1 struct {
	Task     string  `json:"task"`
	Lang     string  `json:"lang,omitempty"`
	Variant  string  `json:"variant,omitempty"`
	N        string  `json:"n"`
	Count    int     `json:"count"`
	MeanNS   float64 `json:"mean_ns"`
	StdDevNS float64 `json:"stddev_ns"`
	MedianNS float64 `json:"median_ns"`
	MinNS    float64 `json:"min_ns"`
	MaxNS    float64 `json:"max_ns"`
	CVPct    float64 `json:"cv_pct"`
}

// ReportV1 wraps the groups of one aggregation.
type ReportV1 struct {
	Schema string      `json:"schema"`
	Groups []SummaryV1 `json:"groups"`
}
