package writers

import (
	"encoding/csv"
	"io"
	"strconv"

	"tengebench/internal/results"
)

func init() { Register("csv", writeCSV) }

// CSVHeader is the results_agg.csv column set. STD_NS is the population
// deviation, as in results_agg.csv; CV_PCT uses the sample deviation.
var CSVHeader = []string{"TASK", "LANG", "VARIANT", "N", "AVG_NS", "STD_NS", "COUNT", "MEDIAN_NS", "MIN_NS", "MAX_NS", "CV_PCT"}

func ns(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) }

func writeCSV(w io.Writer, groups []results.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, g := range groups {
		row := []string{
			g.Task, g.Lang, g.Variant, g.N,
			ns(g.Mean), ns(g.PopStdDev), strconv.Itoa(g.Count),
			ns(g.Median), ns(g.Min), ns(g.Max),
			strconv.FormatFloat(g.CV, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
