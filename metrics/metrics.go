package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the report instruments on their own registry.
type Recorder struct {
	registry *prometheus.Registry
	reports  *prometheus.CounterVec
	failures *prometheus.CounterVec
	rows     *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "techlympics",
			Name:      "reports_total",
			Help:      "Reports built, by kind.",
		}, []string{"kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "techlympics",
			Name:      "report_failures_total",
			Help:      "Reports that could not be built, by kind and stage.",
		}, []string{"kind", "stage"}),
		rows: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "techlympics",
			Name:      "report_rows",
			Help:      "Participation rows read per report.",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "techlympics",
			Name:      "report_duration_seconds",
			Help:      "Time to load and aggregate a report.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
	}
	r.registry.MustRegister(r.reports, r.failures, r.rows, r.duration)
	return r
}

// Observe records a successfully built report.
func (r *Recorder) Observe(kind string, rows int, took time.Duration) {
	r.reports.WithLabelValues(kind).Inc()
	r.rows.WithLabelValues(kind).Observe(float64(rows))
	r.duration.WithLabelValues(kind).Observe(took.Seconds())
}

func (r *Recorder) Failure(kind, stage string) {
	r.failures.WithLabelValues(kind, stage).Inc()
}

// Handler serves the /metrics scrape endpoint.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }
