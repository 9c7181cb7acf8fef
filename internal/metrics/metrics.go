// Package metrics collects Prometheus counters for a naptr-editor run.
//
// The counters live on a private registry rather than the default one, so a
// run can dump them in the node-exporter textfile format when it ends.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "naptr_editor"

// Metrics holds the counters of one run. A nil *Metrics is valid and counts nothing.
type Metrics struct {
	registry *prometheus.Registry

	recordsLoaded prometheus.Counter
	parseFailures *prometheus.CounterVec
	recordsSaved  prometheus.Counter
	logStatements *prometheus.CounterVec
}

// New registers all counters. zone becomes a constant label of every series.
func New(zone string) *Metrics {
	var (
		reg    = prometheus.NewRegistry()
		f      = promauto.With(reg)
		labels = prometheus.Labels{"zone": zone}
	)

	return &Metrics{
		registry: reg,
		recordsLoaded: f.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "records_loaded_total",
			Help:        "Number of NAPTR records parsed from zone files.",
			ConstLabels: labels,
		}),
		parseFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "parse_failures_total",
			Help:        "Number of NAPTR lines that failed to parse, by error kind.",
			ConstLabels: labels,
		}, []string{"kind"}),
		recordsSaved: f.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "records_saved_total",
			Help:        "Number of NAPTR records written to zone files.",
			ConstLabels: labels,
		}),
		logStatements: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "log_statements_total",
			Help:        "Number of log statements, differentiated by log level.",
			ConstLabels: labels,
		}, []string{"level"}),
	}
}

// Registry exposes the registry, e.g. for tests or an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Loaded counts n parsed records.
func (m *Metrics) Loaded(n int) {
	if m != nil {
		m.recordsLoaded.Add(float64(n))
	}
}

// Failed counts one rejected line of the given kind.
func (m *Metrics) Failed(kind string) {
	if m != nil {
		m.parseFailures.WithLabelValues(kind).Inc()
	}
}

// Saved counts n written records.
func (m *Metrics) Saved(n int) {
	if m != nil {
		m.recordsSaved.Add(float64(n))
	}
}

// LogStatement counts one log statement at level.
func (m *Metrics) LogStatement(level string) {
	if m != nil {
		m.logStatements.WithLabelValues(level).Inc()
	}
}

// WriteTextfile writes all series to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}

	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}

	return nil
}
