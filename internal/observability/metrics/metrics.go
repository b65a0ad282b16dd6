package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics exposes request-level prometheus instruments.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics() (*HTTPMetrics, error) {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dairyadmin_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dairyadmin_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := prometheus.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return nil, err
		}
	}
	return m, nil
}

// Metrics exposes application-level instruments.
type Metrics struct {
	billsGenerated prometheus.Counter
	ordersResolved prometheus.Counter
	billLockDenied prometheus.Counter
	summaryExports prometheus.Counter
}

func New() (*Metrics, error) {
	m := &Metrics{
		billsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dairyadmin_monthly_bills_generated_total",
			Help: "Monthly bills aggregated.",
		}),
		ordersResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dairyadmin_orders_resolved_total",
			Help: "Per-day order resolutions performed.",
		}),
		billLockDenied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dairyadmin_bill_lock_denied_total",
			Help: "Monthly bill requests rejected because one was already in flight.",
		}),
		summaryExports: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dairyadmin_summary_exports_total",
			Help: "Daily summary spreadsheet exports.",
		}),
	}

	for _, c := range []prometheus.Collector{m.billsGenerated, m.ordersResolved, m.billLockDenied, m.summaryExports} {
		if err := prometheus.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) BillGenerated() {
	if m == nil {
		return
	}
	m.billsGenerated.Inc()
}

func (m *Metrics) OrderResolved() {
	if m == nil {
		return
	}
	m.ordersResolved.Inc()
}

func (m *Metrics) BillLockDenied() {
	if m == nil {
		return
	}
	m.billLockDenied.Inc()
}

func (m *Metrics) SummaryExported() {
	if m == nil {
		return
	}
	m.summaryExports.Inc()
}

// GinMiddleware records per-request counters and latency.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
