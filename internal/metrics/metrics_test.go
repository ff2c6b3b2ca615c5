package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRecorderCounters(t *testing.T) {
	m := New("test")

	m.RecordAdded("dashboard")
	m.RecordAdded("dashboard")
	m.ValidationFailed("sales")

	body := scrape(t, m)
	assert.Contains(t, body, `test_records_added_total{view="dashboard"} 2`)
	assert.Contains(t, body, `test_validation_failures_total{field="sales"} 1`)
}

func TestHandlerExposesHTTPMetrics(t *testing.T) {
	m := New("kpi")
	m.ObserveHTTP(http.MethodGet, "/api/v1/dashboard", http.StatusOK, 3*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `kpi_http_requests_total{method="GET",route="/api/v1/dashboard",status="200"} 1`)
	assert.Contains(t, body, "kpi_http_request_duration_seconds_count")
}
