// Command datacheck loads the configured dataset once and prints what the
// dashboard would start with: row count, option lists and slider bounds.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/yourorg/vehicle-dashboard/internal/dataset"
	"github.com/yourorg/vehicle-dashboard/internal/env"
	"github.com/yourorg/vehicle-dashboard/internal/export"
	"github.com/yourorg/vehicle-dashboard/internal/locale"
	"github.com/yourorg/vehicle-dashboard/internal/logger"
	"github.com/yourorg/vehicle-dashboard/internal/source"
)

type summary struct {
	Source      string                    `json:"source"`
	Rows        int                       `json:"rows"`
	RowsLabel   string                    `json:"rows_label"`
	Fingerprint string                    `json:"fingerprint"`
	Options     map[string][]string       `json:"options"`
	Bounds      map[string]dataset.Bounds `json:"bounds"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("datacheck failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := env.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("datacheck", flag.ContinueOnError)
	src := fs.String("source", cfg.DataSource, "csv path, http(s) URL or postgres DSN")
	table := fs.String("table", cfg.DataTable, "table name for postgres sources")
	options := fs.String("options", "type,condition", "columns to list distinct values for")
	bounds := fs.String("bounds", "price,model_year", "columns to report min/max for")
	xlsx := fs.String("xlsx", "", "also write every prepared row to this .xlsx file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	ds, err := source.Load(ctx, source.Config{Location: *src, Table: *table, Timeout: cfg.SourceTimeout, Logger: log})
	if err != nil {
		return err
	}
	loc, err := locale.New(cfg.Locale)
	if err != nil {
		return err
	}

	out := summary{
		Source:      ds.Source(),
		Rows:        ds.Len(),
		RowsLabel:   loc.DatasetHeadline(ds.Len()),
		Fingerprint: ds.Fingerprint(),
		Options:     map[string][]string{},
		Bounds:      map[string]dataset.Bounds{},
	}
	for _, col := range splitList(*options) {
		vals, err := dataset.DistinctValues(ds, col)
		if err != nil {
			return err
		}
		out.Options[col] = vals
	}
	for _, col := range splitList(*bounds) {
		b, err := dataset.NumericBounds(ds, col)
		if err != nil {
			return err
		}
		out.Bounds[col] = b
	}

	if *xlsx != "" {
		if err := writeWorkbook(*xlsx, ds); err != nil {
			return err
		}
		log.Info("workbook written", slog.String("path", *xlsx), slog.Int("rows", ds.Len()))
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeWorkbook(path string, ds *dataset.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteXLSX(f, ds.Listings()); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func splitList(v string) []string {
	fields := strings.FieldsFunc(v, func(r rune) bool {
		switch r {
		case ',', ';', ' ', '\t':
			return true
		default:
			return false
		}
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
