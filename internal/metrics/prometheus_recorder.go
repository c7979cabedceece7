package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	guides           *prom.CounterVec
	fallbacks        *prom.CounterVec
	contentReadFails prom.Counter
	runDuration      prom.Histogram
	runOutcome       *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		guides: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "quarkusio_search",
			Name:      "guides_total",
			Help:      "Guides produced by enumeration, by origin",
		}, []string{"origin"}),
		fallbacks: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "quarkusio_search",
			Name:      "metadata_fallbacks_total",
			Help:      "Versions whose structured metadata was unavailable",
		}, []string{"version"}),
		contentReadFails: prom.NewCounter(prom.CounterOpts{
			Namespace: "quarkusio_search",
			Name:      "content_read_failures_total",
			Help:      "Deferred guide content reads that failed",
		}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "quarkusio_search",
			Name:      "index_run_duration_seconds",
			Help:      "Total index run duration",
			Buckets:   prom.DefBuckets,
		}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "quarkusio_search",
			Name:      "index_outcomes_total",
			Help:      "Index run outcomes by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.guides, pr.fallbacks, pr.contentReadFails, pr.runDuration, pr.runOutcome)
	return pr
}

func (pr *PrometheusRecorder) IncGuide(origin string) {
	pr.guides.WithLabelValues(origin).Inc()
}

func (pr *PrometheusRecorder) IncMetadataFallback(version string) {
	pr.fallbacks.WithLabelValues(version).Inc()
}

func (pr *PrometheusRecorder) IncContentReadFailure() {
	pr.contentReadFails.Inc()
}

func (pr *PrometheusRecorder) ObserveIndexRunDuration(d time.Duration) {
	pr.runDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncIndexOutcome(outcome string) {
	pr.runOutcome.WithLabelValues(outcome).Inc()
}
