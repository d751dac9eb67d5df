package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry     *prom.Registry
	pageDuration prom.Histogram
	runDuration  prom.Histogram
	runOutcomes  *prom.CounterVec
	pages        prom.Gauge
	collisions   prom.Counter
}

// NewPrometheusRecorder constructs and registers the render metrics on the
// given registry (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		registry: reg,
		pageDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "nuxtdoc",
			Name:      "page_render_duration_seconds",
			Help:      "Duration of individual page renders",
			Buckets:   prom.DefBuckets,
		}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "nuxtdoc",
			Name:      "run_duration_seconds",
			Help:      "Total render run duration",
			Buckets:   prom.DefBuckets,
		}),
		runOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "nuxtdoc",
			Name:      "run_outcomes_total",
			Help:      "Render run outcomes by final status",
		}, []string{"outcome"}),
		pages: prom.NewGauge(prom.GaugeOpts{
			Namespace: "nuxtdoc",
			Name:      "pages_rendered",
			Help:      "Pages rendered by the most recent run",
		}),
		collisions: prom.NewCounter(prom.CounterOpts{
			Namespace: "nuxtdoc",
			Name:      "output_path_collisions_total",
			Help:      "Pages that resolved to an already-written output path",
		}),
	}

	reg.MustRegister(pr.pageDuration, pr.runDuration, pr.runOutcomes, pr.pages, pr.collisions)
	return pr
}

func (pr *PrometheusRecorder) ObservePageRenderDuration(d time.Duration) {
	pr.pageDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	pr.runDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncRunOutcome(outcome string) {
	pr.runOutcomes.WithLabelValues(outcome).Inc()
}

func (pr *PrometheusRecorder) SetPagesRendered(n int) {
	pr.pages.Set(float64(n))
}

func (pr *PrometheusRecorder) IncPathCollision() {
	pr.collisions.Inc()
}

// Handler exposes the recorder's registry for scraping.
func (pr *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(pr.registry, promhttp.HandlerOpts{})
}
