package router

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/envelope-zero/transaction-import/internal/importer"
	"github.com/envelope-zero/transaction-import/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// URLMiddleware sets the API URL in the context so that handlers can build links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), url.String())
		c.Next()
	}
}

// metrics returns all Prometheus collectors of the backend.
func metrics() []prometheus.Collector {
	return append([]prometheus.Collector{
		requestCount,
		requestDuration,
	}, importer.Collectors()...)
}

// registerPrometheusMetrics registers all Prometheus metrics
// with the default registry.
//
// If one metric cannot be registered, the ones registered before it
// are unregistered again.
func registerPrometheusMetrics() error {
	registered := make([]prometheus.Collector, 0, len(metrics()))
	for _, c := range metrics() {
		if err := prometheus.Register(c); err != nil {
			for _, r := range registered {
				prometheus.Unregister(r)
			}
			return fmt.Errorf("could not register metrics with Prometheus: %w", err)
		}
		registered = append(registered, c)
	}

	return nil
}

// unregisterPrometheusMetrics unregisters all Prometheus metrics.
//
// This is needed to cleanly exit.
func unregisterPrometheusMetrics() bool {
	ok := true
	for _, c := range metrics() {
		ok = prometheus.Unregister(c) && ok
	}

	return ok
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace all URL parameters with their name to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}

var errMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")
