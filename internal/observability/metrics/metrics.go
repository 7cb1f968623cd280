package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Module registers the application metrics.
var Module = fx.Provide(New)

// Metrics exposes application-level instruments.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	billsSaved      prometheus.Counter
	receiptsPrinted prometheus.Counter
}

func New() (*Metrics, error) {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aurum_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "aurum_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		billsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aurum_bills_saved_total",
			Help: "Bills created or updated.",
		}),
		receiptsPrinted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aurum_receipts_printed_total",
			Help: "Receipt PDFs generated.",
		}),
	}

	for _, collector := range []prometheus.Collector{
		m.requestsTotal,
		m.requestDuration,
		m.billsSaved,
		m.receiptsPrinted,
	} {
		if err := prometheus.Register(collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) ObserveBillSaved()      { m.billsSaved.Inc() }
func (m *Metrics) ObserveReceiptPrinted() { m.receiptsPrinted.Inc() }

// GinMiddleware records request counts and latency per route.
func GinMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		m.requestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
