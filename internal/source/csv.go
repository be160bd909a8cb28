package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/yourorg/vehicle-dashboard/internal/canon"
	"github.com/yourorg/vehicle-dashboard/internal/dataset"
)

// ReadCSV parses a delimited listing file. Unknown columns are ignored;
// required ones are checked later by dataset.Prepare.
func ReadCSV(r io.Reader, name string) (*dataset.RawTable, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	// short rows are padded with missing cells
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, dataset.NewLoadError(name, "empty file", nil)
	}
	if err != nil {
		return nil, dataset.NewLoadError(name, "read header", err)
	}
	columns := canon.Headers(append([]string(nil), header...))
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := idx[c]; !dup {
			idx[c] = i
		}
	}
	raw := &dataset.RawTable{Source: name, Columns: columns}
	for _, col := range dataset.RequiredColumns {
		if _, ok := idx[col]; !ok {
			// Prepare reports the full list of missing columns.
			return raw, nil
		}
	}

	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, dataset.NewLoadError(name, fmt.Sprintf("line %d", line), err)
		}
		row, err := parseRow(rec, idx)
		if err != nil {
			return nil, dataset.NewLoadError(name, fmt.Sprintf("line %d", line), err)
		}
		raw.Rows = append(raw.Rows, row)
	}
	return raw, nil
}

func parseRow(rec []string, idx map[string]int) (dataset.RawRow, error) {
	cell := func(col string) string {
		i := idx[col]
		if i >= len(rec) {
			return ""
		}
		return rec[i]
	}
	var (
		row dataset.RawRow
		err error
	)
	price, err := number(dataset.ColPrice, cell(dataset.ColPrice))
	if err != nil {
		return row, err
	}
	if price == nil {
		return row, fmt.Errorf("%s: value required", dataset.ColPrice)
	}
	row.Price = *price
	if row.Odometer, err = number(dataset.ColOdometer, cell(dataset.ColOdometer)); err != nil {
		return row, err
	}
	if row.ModelYear, err = number(dataset.ColModelYear, cell(dataset.ColModelYear)); err != nil {
		return row, err
	}
	if row.Is4WD, err = number(dataset.ColIs4WD, cell(dataset.ColIs4WD)); err != nil {
		return row, err
	}
	row.PaintColor = text(cell(dataset.ColPaintColor))
	row.Type = text(cell(dataset.ColType))
	row.Condition = text(cell(dataset.ColCondition))
	row.Model = text(cell(dataset.ColModel))
	return row, nil
}

// number parses a numeric cell, returning nil for missing values.
func number(col, s string) (*float64, error) {
	if canon.IsMissing(s) {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%s: invalid number %q", col, s)
	}
	return &f, nil
}

func text(s string) *string {
	if canon.IsMissing(s) {
		return nil
	}
	v := strings.Clone(s)
	return &v
}
