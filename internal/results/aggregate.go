// internal/results/aggregate.go
package results

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
)

// PreferredLangs is the column order used by every report.
var PreferredLangs = []string{"tenge", "c", "rust", "go"}

// Key identifies one aggregation group.
type Key struct {
	Task    string
	Lang    string
	Variant string
	N       string
}

// Summary describes the timings of one group, in nanoseconds. StdDev is the
// sample (n-1) deviation and drives CV, a percentage; PopStdDev divides by n
// like the results_agg.csv reports.
type Summary struct {
	Key
	Count     int
	Mean      float64
	StdDev    float64
	PopStdDev float64
	Median    float64
	Min       float64
	Max       float64
	CV        float64
}

// Filter keeps records whose non-empty fields match.
type Filter struct {
	Task    string
	Lang    string
	Variant string
	N       string
}

func (f Filter) match(r Record) bool {
	return (f.Task == "" || f.Task == r.Task) &&
		(f.Lang == "" || strings.EqualFold(f.Lang, r.Lang)) &&
		(f.Variant == "" || f.Variant == r.Variant) &&
		(f.N == "" || f.N == r.N)
}

// Aggregate groups records by (task, lang, variant, N) and summarises each
// group. Groups come back sorted by task, preferred language order, variant
// and N.
func Aggregate(recs []Record, f Filter) []Summary {
	// Languages group case-insensitively; a group keeps the spelling of its
	// first record.
	groups := map[Key][]float64{}
	shown := map[Key]Key{}
	var order []Key
	for _, r := range recs {
		if !f.match(r) {
			continue
		}
		k := Key{Task: r.Task, Lang: strings.ToLower(r.Lang), Variant: r.Variant, N: r.N}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
			shown[k] = Key{Task: r.Task, Lang: r.Lang, Variant: r.Variant, N: r.N}
		}
		groups[k] = append(groups[k], r.TimeNS)
	}

	out := make([]Summary, 0, len(order))
	for _, k := range order {
		out = append(out, summarise(shown[k], groups[k]))
	}
	slices.SortFunc(out, func(a, b Summary) int {
		return cmp.Or(
			cmp.Compare(a.Task, b.Task),
			CompareLang(a.Lang, b.Lang),
			cmp.Compare(a.Variant, b.Variant),
			compareN(a.N, b.N),
		)
	})
	return out
}

func summarise(k Key, xs []float64) Summary {
	s := stats.Sample{Xs: xs}
	sum := Summary{Key: k, Count: len(xs), Mean: s.Mean()}
	sum.Min, sum.Max = s.Bounds()
	if n := len(xs); n > 1 {
		sum.StdDev = s.StdDev()
		sum.PopStdDev = sum.StdDev * math.Sqrt(float64(n-1)/float64(n))
	}
	if sum.Mean > 0 {
		sum.CV = sum.StdDev / sum.Mean * 100
	}
	sum.Median = s.Sort().Quantile(0.5)
	return sum
}

// LangRank places preferred languages first; the rest share one rank.
func LangRank(lang string) int {
	if i := slices.Index(PreferredLangs, strings.ToLower(lang)); i >= 0 {
		return i
	}
	return len(PreferredLangs)
}

// CompareLang orders languages by LangRank, then by name.
func CompareLang(a, b string) int {
	return cmp.Or(
		cmp.Compare(LangRank(a), LangRank(b)),
		cmp.Compare(strings.ToLower(a), strings.ToLower(b)),
	)
}

// compareN orders sizes numerically when both parse, lexically otherwise.
func compareN(a, b string) int {
	na, ea := parseN(a)
	nb, eb := parseN(b)
	if ea && eb {
		return cmp.Compare(na, nb)
	}
	return cmp.Compare(a, b)
}

func parseN(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	return n, err == nil
}
