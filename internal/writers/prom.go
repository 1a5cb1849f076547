package writers

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"tengebench/internal/results"
)

func init() { Register("prom", writeProm) }

var promLabels = []string{"task", "lang", "variant", "n"}

// writeProm emits the Prometheus text exposition format, suitable for the
// node_exporter textfile collector.
func writeProm(w io.Writer, groups []results.Summary) error {
	reg := prometheus.NewRegistry()
	gauge := func(name, help string) *prometheus.GaugeVec {
		g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "tengebench",
			Name:      name,
			Help:      help,
		}, promLabels)
		reg.MustRegister(g)
		return g
	}
	mean := gauge("mean_ns", "Mean elapsed nanoseconds per run.")
	stddev := gauge("stddev_ns", "Sample standard deviation of elapsed nanoseconds.")
	median := gauge("median_ns", "Median elapsed nanoseconds.")
	lo := gauge("min_ns", "Fastest run in nanoseconds.")
	hi := gauge("max_ns", "Slowest run in nanoseconds.")
	count := gauge("samples", "Number of runs aggregated.")

	for _, g := range groups {
		labels := prometheus.Labels{"task": g.Task, "lang": g.Lang, "variant": g.Variant, "n": g.N}
		mean.With(labels).Set(g.Mean)
		stddev.With(labels).Set(g.StdDev)
		median.With(labels).Set(g.Median)
		lo.With(labels).Set(g.Min)
		hi.With(labels).Set(g.Max)
		count.With(labels).Set(float64(g.Count))
	}

	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
