package service

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation on a private
// registry. All observation methods are nil-safe so instrumentation can
// be omitted in tests.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	mutationTotal   *prometheus.CounterVec
	unlockTotal     *prometheus.CounterVec
	exportTotal     *prometheus.CounterVec
	answeredItems   prometheus.Gauge
}

// NewMetricsService registers the collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	mutationTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "audit_mutations_total",
		Help: "Total state mutations by kind",
	}, []string{"kind"})

	unlockTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "audit_unlock_attempts_total",
		Help: "Unlock attempts by outcome",
	}, []string{"outcome"})

	exportTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "audit_exports_total",
		Help: "Generated export artifacts by format",
	}, []string{"format"})

	answeredItems := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "audit_answered_items",
		Help: "Number of checklist items currently answered",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, mutationTotal, unlockTotal, exportTotal, answeredItems, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		mutationTotal:   mutationTotal,
		unlockTotal:     unlockTotal,
		exportTotal:     exportTotal,
		answeredItems:   answeredItems,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// GinMiddleware records duration and count for every request.
func (m *MetricsService) GinMiddleware() gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		m.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}

// ObserveMutation counts one state mutation.
func (m *MetricsService) ObserveMutation(kind string) {
	if m == nil {
		return
	}
	m.mutationTotal.WithLabelValues(kind).Inc()
}

// ObserveUnlock counts one unlock attempt.
func (m *MetricsService) ObserveUnlock(success bool) {
	if m == nil {
		return
	}
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.unlockTotal.WithLabelValues(outcome).Inc()
}

// ObserveExport counts one generated artifact.
func (m *MetricsService) ObserveExport(format string) {
	if m == nil {
		return
	}
	m.exportTotal.WithLabelValues(format).Inc()
}

// SetAnsweredItems publishes the current progress gauge.
func (m *MetricsService) SetAnsweredItems(n int) {
	if m == nil {
		return
	}
	m.answeredItems.Set(float64(n))
}
