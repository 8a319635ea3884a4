// Package metrics exposes the service's Prometheus collectors on a private
// registry. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fantasy_golf"

type Metrics struct {
	registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	boardBuilds    *prometheus.CounterVec
	boardDuration  *prometheus.HistogramVec
	boardRows      *prometheus.HistogramVec
	memoLookups    *prometheus.CounterVec
	breakerState   *prometheus.GaugeVec
	finalizeTotal  *prometheus.CounterVec
	jobRuns        *prometheus.CounterVec
	poolQueueDepth prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	auto := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status_code"}),
		httpDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		boardBuilds: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "board_builds_total",
			Help:      "Ranking board computations by board kind.",
		}, []string{"board"}),
		boardDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "board_build_duration_seconds",
			Help:      "Time spent building a ranking board.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		}, []string{"board"}),
		boardRows: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "board_rows",
			Help:      "Rows ranked per board build.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
		}, []string{"board"}),
		memoLookups: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "memo",
			Name:      "lookups_total",
			Help:      "Memoized function lookups by result.",
		}, []string{"func", "result"}),
		breakerState: auto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dependency",
			Name:      "circuit_open",
			Help:      "1 while the named circuit breaker is open or half open.",
		}, []string{"dependency"}),
		finalizeTotal: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "results",
			Name:      "finalized_total",
			Help:      "Tournament finalize attempts by outcome.",
		}, []string{"outcome"}),
		jobRuns: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "runs_total",
			Help:      "Scheduled job runs by job and outcome.",
		}, []string{"job", "outcome"}),
		poolQueueDepth: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "results",
			Name:      "pool_waiting",
			Help:      "Tasks waiting for a finalize worker.",
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveBoard(board string, rows int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.boardBuilds.WithLabelValues(board).Inc()
	m.boardDuration.WithLabelValues(board).Observe(elapsed.Seconds())
	m.boardRows.WithLabelValues(board).Observe(float64(rows))
}

func (m *Metrics) MemoHit(name string) {
	if m == nil {
		return
	}
	m.memoLookups.WithLabelValues(name, "hit").Inc()
}

func (m *Metrics) MemoMiss(name string) {
	if m == nil {
		return
	}
	m.memoLookups.WithLabelValues(name, "miss").Inc()
}

// BreakerChanged matches resilience.StateChangeFunc.
func (m *Metrics) BreakerChanged(name string, _, to string) {
	if m == nil {
		return
	}
	v := 1.0
	if to == "closed" {
		v = 0
	}
	m.breakerState.WithLabelValues(name).Set(v)
}

func (m *Metrics) ObserveFinalize(outcome string) {
	if m == nil {
		return
	}
	m.finalizeTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveJob(job, outcome string) {
	if m == nil {
		return
	}
	m.jobRuns.WithLabelValues(job, outcome).Inc()
}

func (m *Metrics) SetPoolWaiting(n int) {
	if m == nil {
		return
	}
	m.poolQueueDepth.Set(float64(n))
}
