package dataset

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"

	"github.com/zeebo/xxh3"
)

// Dataset is the cleaned, read-only listing table. Build it with Prepare;
// nothing mutates it afterwards, so it is safe to share across goroutines.
type Dataset struct {
	source      string
	rows        []Listing
	fingerprint uint64
}

// Prepare validates raw and fills the missing odometer, model_year, is_4wd
// and paint_color cells. type, condition and model pass through untouched.
func Prepare(raw *RawTable) (*Dataset, error) {
	if raw == nil {
		return nil, NewLoadError("", "no source table", nil)
	}
	var missing []string
	for _, col := range RequiredColumns {
		if !raw.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, NewLoadError(raw.Source, "invalid header", &MissingColumnsError{Columns: missing})
	}
	if len(raw.Rows) == 0 {
		return nil, NewLoadError(raw.Source, "source has no rows", nil)
	}

	rows := make([]Listing, len(raw.Rows))
	for i, r := range raw.Rows {
		if r.Price < 0 || math.IsNaN(r.Price) || math.IsInf(r.Price, 0) {
			return nil, NewLoadError(raw.Source, fmt.Sprintf("row %d", i+1), fmt.Errorf("invalid price %v", r.Price))
		}
		year, err := intOr(ColModelYear, r.ModelYear)
		if err != nil {
			return nil, NewLoadError(raw.Source, fmt.Sprintf("row %d", i+1), err)
		}
		is4wd, err := intOr(ColIs4WD, r.Is4WD)
		if err != nil {
			return nil, NewLoadError(raw.Source, fmt.Sprintf("row %d", i+1), err)
		}
		if r.Odometer != nil && math.IsInf(*r.Odometer, 0) {
			return nil, NewLoadError(raw.Source, fmt.Sprintf("row %d", i+1), fmt.Errorf("invalid %s %v", ColOdometer, *r.Odometer))
		}
		rows[i] = Listing{
			Price:      r.Price,
			Odometer:   floatOr(r.Odometer, 0),
			ModelYear:  year,
			Is4WD:      is4wd,
			PaintColor: deref(r.PaintColor, UnknownPaintColor),
			Type:       cloneString(r.Type),
			Condition:  cloneString(r.Condition),
			Model:      cloneString(r.Model),
		}
	}
	return &Dataset{source: raw.Source, rows: rows, fingerprint: fingerprint(rows)}, nil
}

func floatOr(v *float64, def float64) float64 {
	if v == nil || math.IsNaN(*v) {
		return def
	}
	return *v
}

// intOr converts an integer column, treating nil and NaN as 0. Values
// outside the int32 range are rejected.
func intOr(col string, v *float64) (int, error) {
	f := floatOr(v, 0)
	if math.IsInf(f, 0) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("invalid %s %v", col, f)
	}
	return int(f), nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Len is the number of listings.
func (d *Dataset) Len() int { return len(d.rows) }

// At returns a copy of the i-th listing.
func (d *Dataset) At(i int) Listing { return d.rows[i].Clone() }

// Source names where the rows came from.
func (d *Dataset) Source() string { return d.source }

// All yields a copy of every listing in source order.
func (d *Dataset) All() iter.Seq2[int, Listing] {
	return func(yield func(int, Listing) bool) {
		for i, l := range d.rows {
			if !yield(i, l.Clone()) {
				return
			}
		}
	}
}

// Listings returns a copy of every row.
func (d *Dataset) Listings() []Listing {
	out := make([]Listing, len(d.rows))
	for i, l := range d.rows {
		out[i] = l.Clone()
	}
	return out
}

// Fingerprint is a content hash of the prepared rows; equal inputs give equal fingerprints.
func (d *Dataset) Fingerprint() string { return fmt.Sprintf("%016x", d.fingerprint) }

func fingerprint(rows []Listing) uint64 {
	h := xxh3.New()
	var buf [8]byte
	writeFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = h.Write(buf[:])
	}
	writeString := func(s *string) {
		if s == nil {
			_, _ = h.Write([]byte{0})
			return
		}
		_, _ = h.Write([]byte{1})
		_, _ = h.WriteString(*s)
		_, _ = h.Write([]byte{0})
	}
	for _, l := range rows {
		writeFloat(l.Price)
		writeFloat(l.Odometer)
		writeFloat(float64(l.ModelYear))
		writeFloat(float64(l.Is4WD))
		writeString(&l.PaintColor)
		writeString(l.Type)
		writeString(l.Condition)
		writeString(l.Model)
	}
	return h.Sum64()
}
