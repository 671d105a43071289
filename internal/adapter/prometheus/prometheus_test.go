package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusAdapterRecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	adapter := NewPrometheusAdapter(prometheus.NewRegistry())

	router := gin.New()
	router.GET("/bikes/:id", func(c *gin.Context) {
		start := time.Now()
		c.Status(http.StatusNoContent)
		adapter.RecordMetrics(c, start)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bikes/42", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(adapter.httpRequestsTotal.WithLabelValues("/bikes/:id", "GET", "204")))
}

func TestPrometheusAdapterComponentEvents(t *testing.T) {
	adapter := NewPrometheusAdapter(prometheus.NewRegistry())

	adapter.RecordComponentEvent("replaced")
	adapter.RecordComponentEvent("replaced")
	adapter.RecordComponentEvent("added")

	assert.Equal(t, 2.0, testutil.ToFloat64(adapter.componentEvents.WithLabelValues("replaced")))
	assert.Equal(t, 1.0, testutil.ToFloat64(adapter.componentEvents.WithLabelValues("added")))
}
