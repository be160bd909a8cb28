package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/yourorg/vehicle-dashboard/http"
	"github.com/yourorg/vehicle-dashboard/internal/chartcache"
	"github.com/yourorg/vehicle-dashboard/internal/charts"
	"github.com/yourorg/vehicle-dashboard/internal/dataset"
	"github.com/yourorg/vehicle-dashboard/internal/env"
	"github.com/yourorg/vehicle-dashboard/internal/filter"
	"github.com/yourorg/vehicle-dashboard/internal/locale"
	"github.com/yourorg/vehicle-dashboard/internal/logger"
	"github.com/yourorg/vehicle-dashboard/internal/metrics"
	"github.com/yourorg/vehicle-dashboard/internal/redisx"
	"github.com/yourorg/vehicle-dashboard/internal/source"
	"github.com/yourorg/vehicle-dashboard/internal/warmup"
)

func main() {
	cfg, err := env.Load()
	if err != nil {
		slog.Error("config error", slog.Any("error", err))
		os.Exit(1)
	}
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds, err := source.Load(ctx, source.Config{
		Location: cfg.DataSource,
		Table:    cfg.DataTable,
		Timeout:  cfg.SourceTimeout,
		Logger:   log,
	})
	if err != nil {
		log.Error("dataset load failed", slog.String("source", cfg.DataSource), slog.Any("error", err))
		os.Exit(1)
	}
	cat, err := dataset.NewCatalog(ds)
	if err != nil {
		log.Error("catalog build failed", slog.Any("error", err))
		os.Exit(1)
	}
	loc, err := locale.New(cfg.Locale)
	if err != nil {
		log.Error("locale error", slog.String("locale", cfg.Locale), slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("dataset loaded",
		slog.String("source", ds.Source()),
		slog.Int("rows", ds.Len()),
		slog.String("fingerprint", ds.Fingerprint()),
	)

	m := metrics.New()
	m.SetDatasetRows(ds.Len())

	var cache *chartcache.Cache
	if cfg.CacheEnabled() {
		rc := redisx.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer rc.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rc.Ping(pingCtx); err != nil {
			log.Warn("redis unavailable, chart cache disabled", slog.String("addr", cfg.RedisAddr), slog.Any("error", err))
		} else {
			cache = chartcache.New(rc, ds.Fingerprint(), cfg.CacheTTL, log)
		}
		cancel()
	}
	if cache != nil && cfg.CacheWarm {
		warm(log, cache, ds, cat, cfg.SourceTimeout)
	}

	deps := httpapi.Deps{Dataset: ds, Catalog: cat, Locale: loc, Cache: cache, Metrics: m, Logger: log}
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           BuildRouter(deps, cfg.RateLimit),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("vehicle-dashboard listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("server stopped")
}

// warm fills the chart cache for every vehicle type option in the background.
func warm(log *slog.Logger, cache *chartcache.Cache, ds *dataset.Dataset, cat *dataset.Catalog, timeout time.Duration) {
	w := warmup.New(len(cat.Types), 2, timeout, func(ctx context.Context, j warmup.Job) {
		_, outcome := cache.Charts(ctx, j.Criteria, charts.All, func() charts.Set {
			return charts.Build(filter.Filter(ds, j.Criteria), charts.All)
		})
		log.Debug("chart cache warmed", slog.String("key", j.Key), slog.String("cache", string(outcome)))
	})
	for _, j := range warmup.PerType(filter.Unconstrained(cat), cat.Types) {
		w.Enqueue(j)
	}
	go func() {
		w.Close()
		log.Info("chart cache warm-up finished", slog.Int("jobs", len(cat.Types)))
	}()
}
