package dataset

import (
	"fmt"
	"math"
	"slices"
)

// AllOption is the sentinel that means "no constraint" on a category filter.
const AllOption = "all"

// DistinctValues returns AllOption followed by the sorted, de-duplicated
// non-null values of a text column.
func DistinctValues(d *Dataset, column string) ([]string, error) {
	get, err := textColumn(column)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	values := make([]string, 0, 16)
	for _, l := range d.rows {
		v := get(l)
		if v == nil {
			continue
		}
		if _, ok := seen[*v]; ok {
			continue
		}
		seen[*v] = struct{}{}
		values = append(values, *v)
	}
	slices.Sort(values)
	return append([]string{AllOption}, values...), nil
}

func textColumn(column string) (func(Listing) *string, error) {
	switch column {
	case ColType:
		return func(l Listing) *string { return l.Type }, nil
	case ColCondition:
		return func(l Listing) *string { return l.Condition }, nil
	case ColModel:
		return func(l Listing) *string { return l.Model }, nil
	case ColPaintColor:
		return func(l Listing) *string { return &l.PaintColor }, nil
	}
	return nil, fmt.Errorf("%w: %q is not a text column", ErrUnknownColumn, column)
}

// Bounds is an inclusive numeric range observed in a column.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NumericBounds returns the minimum and maximum of a numeric column over the
// whole dataset.
func NumericBounds(d *Dataset, column string) (Bounds, error) {
	get, err := numericColumn(column)
	if err != nil {
		return Bounds{}, err
	}
	if len(d.rows) == 0 {
		return Bounds{}, nil
	}
	b := Bounds{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, l := range d.rows {
		v := get(l)
		b.Min = math.Min(b.Min, v)
		b.Max = math.Max(b.Max, v)
	}
	return b, nil
}

func numericColumn(column string) (func(Listing) float64, error) {
	switch column {
	case ColPrice:
		return func(l Listing) float64 { return l.Price }, nil
	case ColOdometer:
		return func(l Listing) float64 { return l.Odometer }, nil
	case ColModelYear:
		return func(l Listing) float64 { return float64(l.ModelYear) }, nil
	case ColIs4WD:
		return func(l Listing) float64 { return float64(l.Is4WD) }, nil
	}
	return nil, fmt.Errorf("%w: %q is not a numeric column", ErrUnknownColumn, column)
}
