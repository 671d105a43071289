package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

type PrometheusAdapter struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	componentEvents     *prometheus.CounterVec
}

var _ ports.MetricsPort = (*PrometheusAdapter)(nil)

// NewPrometheusAdapter registers the service metrics with reg. Pass
// prometheus.DefaultRegisterer to expose them on /metrics.
func NewPrometheusAdapter(reg prometheus.Registerer) *PrometheusAdapter {
	factory := promauto.With(reg)

	return &PrometheusAdapter{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webike_wear_http_requests_total",
				Help: "Total HTTP requests processed by route, method, and status code",
			},
			[]string{"route", "method", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "webike_wear_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"route", "method"},
		),
		componentEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webike_wear_component_events_total",
				Help: "Component lifecycle events by action",
			},
			[]string{"action"},
		),
	}
}

func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	method := c.Request.Method

	p.httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
	p.httpRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
}

func (p *PrometheusAdapter) RecordComponentEvent(action string) {
	p.componentEvents.WithLabelValues(action).Inc()
}
