package writers

import (
	"encoding/json"
	"io"

	"tengebench/internal/results"
	"tengebench/pkg/api"
)

func init() { Register("json", writeJSON) }

// ToAPI converts summaries to their wire form.
func ToAPI(groups []results.Summary) api.ReportV1 {
	out := api.ReportV1{Schema: api.SchemaV1, Groups: make([]api.SummaryV1, 0, len(groups))}
	for _, g := range groups {
		out.Groups = append(out.Groups, api.SummaryV1{
			Task:     g.Task,
			Lang:     g.Lang,
			Variant:  g.Variant,
			N:        g.N,
			Count:    g.Count,
			MeanNS:   g.Mean,
			StdDevNS: g.StdDev,
			MedianNS: g.Median,
			MinNS:    g.Min,
			MaxNS:    g.Max,
			CVPct:    g.CV,
		})
	}
	return out
}

func writeJSON(w io.Writer, groups []results.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPI(groups))
}
