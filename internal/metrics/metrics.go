package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors. A nil *Metrics records nothing.
type Metrics struct {
	analyses       *prometheus.CounterVec
	riskScore      prometheus.Histogram
	contentFetches *prometheus.CounterVec
	gatherer       prometheus.Gatherer
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "phishguard",
			Name:      "analyses_total",
			Help:      "URL analyses by verdict.",
		}, []string{"verdict"}),
		riskScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "phishguard",
			Name:      "risk_score",
			Help:      "Distribution of aggregate risk scores.",
			Buckets:   []float64{0, 20, 40, 60, 80, 120, 160, 240, 320},
		}),
		contentFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "phishguard",
			Name:      "content_inspections_total",
			Help:      "Content inspections by outcome.",
		}, []string{"outcome"}),
		gatherer: reg,
	}
	reg.MustRegister(m.analyses, m.riskScore, m.contentFetches)
	return m
}

func (m *Metrics) ObserveAnalysis(verdict string, score int) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(verdict).Inc()
	m.riskScore.Observe(float64(score))
}

func (m *Metrics) ObserveContent(outcome string) {
	if m == nil {
		return
	}
	m.contentFetches.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
