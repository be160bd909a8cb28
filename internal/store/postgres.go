package store

import (
    "context"
    "database/sql"
    "errors"
    "fmt"
    "regexp"
    "strings"
    "time"

    "github.com/jackc/pgx/v5"
    _ "github.com/jackc/pgx/v5/stdlib"

    "github.com/yourorg/vehicle-dashboard/internal/dataset"
)

// DefaultTable is the listing table read when none is configured.
const DefaultTable = "vehicles_us"

var reTable = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

type Store struct { DB *sql.DB }

func Open(dsn string) (*Store, error) {
    db, err := sql.Open("pgx", dsn)
    if err != nil { return nil, err }
    db.SetMaxOpenConns(2)
    db.SetMaxIdleConns(1)
    db.SetConnMaxLifetime(30 * time.Minute)
    return &Store{DB: db}, nil
}

func (s *Store) Ping(ctx context.Context) error { return s.DB.PingContext(ctx) }

// ListingQuery builds the read-only SELECT for table. The column order
// matches dataset.RequiredColumns.
func ListingQuery(table string) (string, error) {
    if !reTable.MatchString(table) {
        return "", fmt.Errorf("invalid table name %q", table)
    }
    cols := make([]string, len(dataset.RequiredColumns))
    for i, c := range dataset.RequiredColumns {
        cols[i] = pgx.Identifier{c}.Sanitize()
    }
    ident := pgx.Identifier(strings.Split(table, ".")).Sanitize()
    return "SELECT " + strings.Join(cols, ", ") + " FROM " + ident, nil
}

// LoadRawTable reads every listing row. NULL cells become nil fields.
func (s *Store) LoadRawTable(ctx context.Context, table string) (*dataset.RawTable, error) {
    if s.DB == nil { return nil, errors.New("nil db") }
    q, err := ListingQuery(table)
    if err != nil { return nil, err }

    rows, err := s.DB.QueryContext(ctx, q)
    if err != nil { return nil, err }
    defer rows.Close()

    raw := &dataset.RawTable{Source: table, Columns: append([]string(nil), dataset.RequiredColumns...)}
    n := 0
    for rows.Next() {
        n++
        var (
            price                        sql.NullFloat64
            modelYear, odometer, is4WD   sql.NullFloat64
            model, condition, typ, paint sql.NullString
        )
        if err := rows.Scan(&price, &modelYear, &model, &condition, &odometer, &typ, &paint, &is4WD); err != nil {
            return nil, fmt.Errorf("row %d: %w", n, err)
        }
        if !price.Valid {
            return nil, fmt.Errorf("row %d: price: value required", n)
        }
        raw.Rows = append(raw.Rows, dataset.RawRow{
            Price:      price.Float64,
            Odometer:   nullFloat(odometer),
            ModelYear:  nullFloat(modelYear),
            Is4WD:      nullFloat(is4WD),
            PaintColor: nullString(paint),
            Type:       nullString(typ),
            Condition:  nullString(condition),
            Model:      nullString(model),
        })
    }
    if err := rows.Err(); err != nil { return nil, err }
    return raw, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
    if !v.Valid { return nil }
    f := v.Float64
    return &f
}

func nullString(v sql.NullString) *string {
    if !v.Valid { return nil }
    s := v.String
    return &s
}
