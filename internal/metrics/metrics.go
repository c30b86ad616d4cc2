package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "oncall"

// Metrics records on-call sync runs. It implements contract.RunObserver.
type Metrics struct {
	registry    *prometheus.Registry
	runs        *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	lastSuccess prometheus.Gauge
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of on-call sync runs by outcome",
			},
			[]string{"status"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of on-call sync runs in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"status"},
		),
		lastSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_success_timestamp_seconds",
				Help:      "Unix time of the last run that did not fail",
			},
		),
	}

	registry.MustRegister(
		m.runs,
		m.runDuration,
		m.lastSuccess,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) ObserveRun(status entity.OutcomeStatus, took time.Duration) {
	m.runs.WithLabelValues(string(status)).Inc()
	m.runDuration.WithLabelValues(string(status)).Observe(took.Seconds())
	if status != entity.OutcomeFailed {
		m.lastSuccess.SetToCurrentTime()
	}
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Push sends the run metrics to a Prometheus Pushgateway. One-shot runs use
// it since nothing scrapes them.
func (m *Metrics) Push(ctx context.Context, url, job string) error {
	err := push.New(url, job).
		Collector(m.runs).
		Collector(m.runDuration).
		Collector(m.lastSuccess).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to push metrics: %w", err)
	}
	return nil
}
