package source

import (
	"context"
	"net/url"

	"github.com/yourorg/vehicle-dashboard/internal/dataset"
	"github.com/yourorg/vehicle-dashboard/internal/store"
)

// Postgres reads the listing table with a single SELECT.
type Postgres struct {
	dsn   string
	table string
}

func NewPostgres(dsn, table string) *Postgres {
	if table == "" {
		table = store.DefaultTable
	}
	return &Postgres{dsn: dsn, table: table}
}

func (p *Postgres) Load(ctx context.Context) (*dataset.RawTable, error) {
	name := redact(p.dsn) + "#" + p.table
	st, err := store.Open(p.dsn)
	if err != nil {
		return nil, dataset.NewLoadError(name, "open", err)
	}
	defer st.DB.Close()
	if err := st.Ping(ctx); err != nil {
		return nil, dataset.NewLoadError(name, "ping", err)
	}
	raw, err := st.LoadRawTable(ctx, p.table)
	if err != nil {
		return nil, dataset.NewLoadError(name, "query", err)
	}
	raw.Source = name
	return raw, nil
}

// redact drops the password from a DSN before it reaches logs.
func redact(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "postgres"
	}
	return u.Redacted()
}
