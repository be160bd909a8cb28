package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/yourorg/vehicle-dashboard/http"
	"github.com/yourorg/vehicle-dashboard/internal/chartcache"
	"github.com/yourorg/vehicle-dashboard/internal/dataset"
	"github.com/yourorg/vehicle-dashboard/internal/dataset/datasettest"
	"github.com/yourorg/vehicle-dashboard/internal/locale"
	"github.com/yourorg/vehicle-dashboard/internal/logger"
	"github.com/yourorg/vehicle-dashboard/internal/metrics"
)

func testDeps(t *testing.T, logs *bytes.Buffer) httpapi.Deps {
	t.Helper()
	ds := datasettest.Fleet(t)
	cat, err := dataset.NewCatalog(ds)
	require.NoError(t, err)
	loc, err := locale.New("en")
	require.NoError(t, err)
	return httpapi.Deps{
		Dataset: ds,
		Catalog: cat,
		Locale:  loc,
		Metrics: metrics.New(),
		Logger:  logger.New(logs, "debug", "json"),
	}
}

func TestHealth(t *testing.T) {
	var logs bytes.Buffer
	deps := testDeps(t, &logs)
	h := BuildRouter(deps, 0)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, true, out["ok"])
	assert.Equal(t, float64(8), out["rows"])
	assert.Equal(t, deps.Dataset.Fingerprint(), out["fingerprint"])
	assert.NotEmpty(t, rec.Header().Get(logger.RequestIDHeader))
	assert.Contains(t, logs.String(), `"path":"/health"`)
}

func TestRoutesAreMounted(t *testing.T) {
	h := BuildRouter(testDeps(t, &bytes.Buffer{}), 0)
	for _, path := range []string{"/v1/dashboard", "/v1/listings", "/v1/charts", "/v1/charts/histogram", "/metrics"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestMetricsRecordFilters(t *testing.T) {
	h := BuildRouter(testDeps(t, &bytes.Buffer{}), 0)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/listings?type=suv", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `vehicle_dashboard_filter_requests_total{endpoint="listings"} 1`)
	assert.Contains(t, rec.Body.String(), "vehicle_dashboard_dataset_rows")
}

func TestRateLimit(t *testing.T) {
	h := BuildRouter(testDeps(t, &bytes.Buffer{}), 2)
	codes := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRecoverer(t *testing.T) {
	deps := testDeps(t, &bytes.Buffer{})
	deps.Logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	deps.Dataset = nil
	h := BuildRouter(deps, 0)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	return b, ok, nil
}

func (m *memStore) Set(_ context.Context, key string, val []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = val
	return nil
}

func (m *memStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

func TestWarmFillsCacheForEveryType(t *testing.T) {
	deps := testDeps(t, &bytes.Buffer{})
	store := &memStore{data: map[string][]byte{}}
	deps.Cache = chartcache.New(store, deps.Dataset.Fingerprint(), time.Minute, deps.Logger)

	warm(deps.Logger, deps.Cache, deps.Dataset, deps.Catalog, time.Second)
	require.Eventually(t, func() bool { return store.len() == len(deps.Catalog.Types) }, 2*time.Second, 10*time.Millisecond)

	h := BuildRouter(deps, 0)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/charts?type=suv", nil))
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "hit", out["cache"])
}
