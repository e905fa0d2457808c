// Package metrics exposes registration counters and latencies in the
// Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "devconnector"

// Metrics owns a dedicated registry so tests and multiple servers in one
// process do not collide on the global one.
type Metrics struct {
	registry      *prometheus.Registry
	registrations *prometheus.CounterVec
	duration      prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Registration attempts by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "registration_duration_seconds",
			Help:      "Time spent handling a registration attempt.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		m.registrations,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	for _, o := range []string{"success", "invalid", "conflict", "internal"} {
		m.registrations.WithLabelValues(o)
	}

	return m
}

// ObserveRegistration records one attempt.
func (m *Metrics) ObserveRegistration(outcome string, elapsed time.Duration) {
	m.registrations.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
