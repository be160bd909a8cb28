// Package datasettest builds small prepared datasets for tests.
package datasettest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourorg/vehicle-dashboard/internal/dataset"
)

// Row is a compact fixture; empty Type/Condition/Model become nulls.
type Row struct {
	Type      string
	Condition string
	Model     string
	Price     float64
	Odometer  float64
	ModelYear int
}

// Str returns a pointer to s.
func Str(s string) *string { return &s }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return Str(s)
}

// Raw converts fixture rows into a RawTable carrying every required column.
func Raw(rows ...Row) *dataset.RawTable {
	raw := &dataset.RawTable{Source: "fixture", Columns: append([]string(nil), dataset.RequiredColumns...)}
	for _, r := range rows {
		raw.Rows = append(raw.Rows, dataset.RawRow{
			Price:      r.Price,
			Odometer:   Float(r.Odometer),
			ModelYear:  Float(float64(r.ModelYear)),
			Is4WD:      Float(0),
			PaintColor: Str("white"),
			Type:       optional(r.Type),
			Condition:  optional(r.Condition),
			Model:      optional(r.Model),
		})
	}
	return raw
}

// New prepares rows and fails the test on error.
func New(t testing.TB, rows ...Row) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Prepare(Raw(rows...))
	require.NoError(t, err)
	return ds
}

// Fleet is a varied dataset shared by several package tests.
func Fleet(t testing.TB) *dataset.Dataset {
	t.Helper()
	return New(t,
		Row{Type: "suv", Condition: "good", Model: "ford explorer", Price: 5000, Odometer: 120000, ModelYear: 2015},
		Row{Type: "sedan", Condition: "fair", Model: "honda civic", Price: 3000, Odometer: 150000, ModelYear: 2010},
		Row{Type: "pickup", Condition: "excellent", Model: "ram 1500", Price: 25000, Odometer: 40000, ModelYear: 2018},
		Row{Type: "", Condition: "good", Model: "toyota camry", Price: 8000, Odometer: 90000, ModelYear: 2014},
		Row{Type: "suv", Condition: "", Model: "jeep cherokee", Price: 12000, Odometer: 60000, ModelYear: 2016},
		Row{Type: "sedan", Condition: "good", Model: "", Price: 6500, Odometer: 110000, ModelYear: 2012},
		Row{Type: "truck", Condition: "like new", Model: "chevrolet silverado", Price: 32000, Odometer: 15000, ModelYear: 2019},
		Row{Type: "suv", Condition: "excellent", Model: "honda cr-v", Price: 18000, Odometer: 45000, ModelYear: 2017},
	)
}
