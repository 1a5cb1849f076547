package writers

import (
	"bufio"
	"cmp"
	"io"
	"slices"
	"strings"

	"tengebench/internal/results"
)

func init() { Register("md", writeMarkdown) }

const mdMissing = "—"

// languageColumns returns the preferred languages followed by any others
// present in groups.
func languageColumns(groups []results.Summary) []string {
	cols := slices.Clone(results.PreferredLangs)
	for _, g := range groups {
		l := strings.ToLower(g.Lang)
		if l != "" && !slices.Contains(cols, l) {
			cols = append(cols, l)
		}
	}
	slices.SortStableFunc(cols[len(results.PreferredLangs):], strings.Compare)
	return cols
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func mdCell(g results.Summary) string {
	v := ns(g.Mean) + " ns"
	if sd := ns(g.PopStdDev); sd != "0" {
		v += " ± " + sd
	}
	return v
}

type sizeVariant struct{ n, variant string }

func writeMarkdown(w io.Writer, groups []results.Summary) error {
	bw := bufio.NewWriter(w)
	langs := languageColumns(groups)

	bw.WriteString("# Aggregated Benchmarks\n\n")
	bw.WriteString("_Language columns ordered as: ")
	for i, l := range langs {
		if i > 0 {
			bw.WriteString(" → ")
		}
		bw.WriteString(titleCase(l))
	}
	bw.WriteString("._\n\n")

	var tasks []string
	byTask := map[string][]results.Summary{}
	for _, g := range groups {
		if _, ok := byTask[g.Task]; !ok {
			tasks = append(tasks, g.Task)
		}
		byTask[g.Task] = append(byTask[g.Task], g)
	}

	for _, task := range tasks {
		items := byTask[task]
		bw.WriteString("## " + task + "\n\n")

		header := []string{"N", "Variant"}
		for _, l := range langs {
			header = append(header, titleCase(l))
		}
		bw.WriteString("| " + strings.Join(header, " | ") + " |\n")
		bw.WriteString("|" + strings.Repeat("---|", len(header)) + "\n")

		var combos []sizeVariant
		cells := map[sizeVariant]map[string]string{}
		for _, g := range items {
			k := sizeVariant{g.N, g.Variant}
			if _, ok := cells[k]; !ok {
				combos = append(combos, k)
				cells[k] = map[string]string{}
			}
			l := strings.ToLower(g.Lang)
			if _, taken := cells[k][l]; !taken {
				cells[k][l] = mdCell(g)
			}
		}
		slices.SortStableFunc(combos, func(a, b sizeVariant) int {
			return cmp.Or(cmp.Compare(len(a.n), len(b.n)), cmp.Compare(a.n, b.n), cmp.Compare(a.variant, b.variant))
		})

		for _, k := range combos {
			variant := k.variant
			if variant == "" {
				variant = mdMissing
			}
			row := []string{k.n, variant}
			for _, l := range langs {
				v, ok := cells[k][l]
				if !ok {
					v = mdMissing
				}
				row = append(row, v)
			}
			bw.WriteString("| " + strings.Join(row, " | ") + " |\n")
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}
