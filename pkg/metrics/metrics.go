package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	ApplicationsSubmitted prometheus.Counter
	LeadsAnalyzed         *prometheus.CounterVec
	DocumentsGenerated    prometheus.Counter
	DocumentsApproved     prometheus.Counter
	EmailsSent            *prometheus.CounterVec
	HealthRecomputes      prometheus.Counter
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		ApplicationsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "applications_submitted_total",
			Help: "Total number of accelerator applications submitted",
		}),
		LeadsAnalyzed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leads_analyzed_total",
				Help: "Total number of lead fit analyses",
			},
			[]string{"status"}, // success, failed
		),
		DocumentsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "onboarding_documents_generated_total",
			Help: "Total number of onboarding documents generated",
		}),
		DocumentsApproved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "onboarding_documents_approved_total",
			Help: "Total number of onboarding documents approved",
		}),
		EmailsSent: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emails_sent_total",
				Help: "Total number of emails sent",
			},
			[]string{"template", "status"},
		),
		HealthRecomputes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "health_recomputes_total",
			Help: "Total number of client health score recomputes",
		}),
	}
}

// Middleware returns an Echo middleware that records request metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			labels := []string{c.Request().Method, path, strconv.Itoa(status)}
			m.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			m.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
