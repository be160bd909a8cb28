// Package export writes filtered listings to spreadsheet files.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/yourorg/vehicle-dashboard/internal/dataset"
)

// SheetName is the worksheet holding the rows.
const SheetName = "listings"

// ContentTypeXLSX is the MIME type of the workbook.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteXLSX streams rows into a single-sheet workbook, header first, in
// dataset.RequiredColumns order. Null text cells stay empty.
func WriteXLSX(w io.Writer, rows []dataset.Listing) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}
	header := make([]any, len(dataset.RequiredColumns))
	for i, c := range dataset.RequiredColumns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, l := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, rowValues(l)); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}

func rowValues(l dataset.Listing) []any {
	return []any{
		l.Price,
		l.ModelYear,
		optional(l.Model),
		optional(l.Condition),
		l.Odometer,
		optional(l.Type),
		l.PaintColor,
		l.Is4WD,
	}
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
