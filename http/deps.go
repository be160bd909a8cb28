package httpapi

import (
	"log/slog"
	"time"

	"github.com/yourorg/vehicle-dashboard/internal/chartcache"
	"github.com/yourorg/vehicle-dashboard/internal/dataset"
	"github.com/yourorg/vehicle-dashboard/internal/filter"
	"github.com/yourorg/vehicle-dashboard/internal/locale"
	"github.com/yourorg/vehicle-dashboard/internal/metrics"
)

// Deps is the read-only state shared by every handler. Dataset and Catalog
// are built once at startup; Cache and Metrics may be nil.
type Deps struct {
	Dataset *dataset.Dataset
	Catalog *dataset.Catalog
	Locale  *locale.Formatter
	Cache   *chartcache.Cache
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// run filters the dataset and records how long it took.
func (d Deps) run(endpoint string, c filter.Criteria) filter.Result {
	start := time.Now()
	res := filter.Filter(d.Dataset, c)
	d.Metrics.ObserveFilter(endpoint, time.Since(start), res.Count())
	return res
}
