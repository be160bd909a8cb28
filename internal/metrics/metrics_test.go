package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New()
	m.ObserveFilter("listings", 2*time.Millisecond, 12)
	m.ObserveFilter("listings", time.Millisecond, 0)
	m.ObserveChart("box", "miss")
	m.SetDatasetRows(51525)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.filterRequests.WithLabelValues("listings")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.chartBuilds.WithLabelValues("box", "miss")))
	assert.Equal(t, 51525.0, testutil.ToFloat64(m.datasetRows))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.SetDatasetRows(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "vehicle_dashboard_dataset_rows 3")
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveFilter("listings", time.Second, 1)
	m.ObserveChart("histogram", "off")
	m.SetDatasetRows(1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
