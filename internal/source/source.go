// Package source reads the raw listing table from its configured location:
// a local CSV file, a CSV served over HTTP, or a Postgres table.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/yourorg/vehicle-dashboard/internal/dataset"
)

// Loader produces the raw table once at startup.
type Loader interface {
	Load(ctx context.Context) (*dataset.RawTable, error)
}

// Config locates the dataset. Location is a file path, an http(s) URL or a
// postgres DSN; Table only applies to postgres.
type Config struct {
	Location string
	Table    string
	Timeout  time.Duration
	Logger   *slog.Logger
}

// Open picks a Loader from the location scheme.
func Open(cfg Config) (Loader, error) {
	loc := strings.TrimSpace(cfg.Location)
	if loc == "" {
		return nil, dataset.NewLoadError("", "no data source configured", nil)
	}
	switch {
	case strings.HasPrefix(loc, "http://"), strings.HasPrefix(loc, "https://"):
		return NewHTTP(loc, cfg.Timeout, cfg.Logger), nil
	case strings.HasPrefix(loc, "postgres://"), strings.HasPrefix(loc, "postgresql://"):
		return NewPostgres(loc, cfg.Table), nil
	default:
		return File{Path: loc}, nil
	}
}

// Load opens the configured source, reads it and prepares the Dataset.
// Every failure is a dataset.ErrDataLoad.
func Load(ctx context.Context, cfg Config) (*dataset.Dataset, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	l, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	raw, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.Prepare(raw)
}

// File reads a CSV from the local filesystem.
type File struct {
	Path string
}

func (f File) Load(_ context.Context) (*dataset.RawTable, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, dataset.NewLoadError(f.Path, "open", err)
	}
	defer fh.Close()
	return ReadCSV(fh, f.Path)
}

func (f File) String() string { return fmt.Sprintf("file:%s", f.Path) }
