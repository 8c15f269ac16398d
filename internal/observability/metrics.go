package observability

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry             *prometheus.Registry
	httpRequestsTotal    *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
	completionsRecorded  prometheus.Counter
	trendsExcludedEvents prometheus.Counter
}

// NewMetrics registers the service collectors, plus the Go runtime and
// process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		completionsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "habit_completions_recorded_total",
			Help: "Total habit completions stored.",
		}),
		trendsExcludedEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trends_excluded_events_total",
			Help: "Total malformed completion events skipped by the trends aggregator.",
		}),
	}

	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpDuration,
		m.completionsRecorded,
		m.trendsExcludedEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Middleware records request count and latency under the matched route
// pattern, so /habits/3/completions and /habits/4/completions share a series.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		if m == nil {
			return err
		}

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// CompletionRecorded implements the habits completion observer.
func (m *Metrics) CompletionRecorded() {
	if m == nil {
		return
	}
	m.completionsRecorded.Inc()
}

// TrendsExcluded implements the trends excluded-event observer.
func (m *Metrics) TrendsExcluded(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.trendsExcludedEvents.Add(float64(n))
}
