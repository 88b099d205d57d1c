package middleware

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsPath = "/metrics"

type httpMetrics struct {
	registry *prometheus.Registry
	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	routesOnce sync.Once
	routes     map[string]struct{}
}

func newHTTPMetrics() *httpMetrics {
	m := &httpMetrics{
		registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "food_share",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "food_share",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "food_share",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "path"}),
	}

	m.registry.MustRegister(
		m.inFlight,
		m.requests,
		m.duration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

func (m *middleware) MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == metricsPath {
			return c.Next()
		}

		start := time.Now()
		m.metrics.inFlight.Inc()
		defer m.metrics.inFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		method := strings.ToUpper(c.Method())
		path := m.metrics.routeLabel(c)

		m.metrics.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		m.metrics.duration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}

// routeLabel returns the matched route template. A request that only reached
// Use middleware, such as a 404 under a group prefix, is labelled "unmatched".
// Routes are indexed on the first request, after the table is registered.
func (m *httpMetrics) routeLabel(c *fiber.Ctx) string {
	m.routesOnce.Do(func() {
		m.routes = make(map[string]struct{})
		for _, r := range c.App().GetRoutes(true) {
			m.routes[r.Method+" "+r.Path] = struct{}{}
		}
	})

	route := c.Route()
	if _, ok := m.routes[route.Method+" "+route.Path]; !ok {
		return "unmatched"
	}
	return route.Path
}

func (m *middleware) MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.metrics.registry, promhttp.HandlerOpts{}))
}
