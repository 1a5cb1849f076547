package writers

import (
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"tengebench/internal/results"
)

func init() { Register("table", writeTable) }

var (
	tableHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCell   = lipgloss.NewStyle().Padding(0, 1)
	tableNum    = tableCell.Align(lipgloss.Right)
)

func writeTable(w io.Writer, groups []results.Summary) error {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			g.Task, g.Lang, g.Variant, g.N,
			strconv.Itoa(g.Count), ns(g.Mean), ns(g.Median), ns(g.StdDev),
			strconv.FormatFloat(g.CV, 'f', 2, 64) + "%",
		})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("TASK", "LANG", "VARIANT", "N", "RUNS", "MEAN NS", "MEDIAN NS", "STDDEV", "CV").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeader
			case col >= 3:
				return tableNum
			default:
				return tableCell
			}
		})
	_, err := io.WriteString(w, t.String()+"\n")
	return err
}
