// Package filter selects the listings that match the dashboard controls.
package filter

import (
	"github.com/yourorg/vehicle-dashboard/internal/dataset"
)

// Range is an inclusive [Min, Max] interval. Min > Max matches nothing.
type Range[T int | float64] struct {
	Min T `json:"min"`
	Max T `json:"max"`
}

// Contains reports whether v lies inside the range.
func (r Range[T]) Contains(v T) bool { return r.Min <= v && v <= r.Max }

// Criteria is the current state of every filter control. An empty or
// dataset.AllOption category means "no constraint".
type Criteria struct {
	VehicleType string         `json:"type"`
	Condition   string         `json:"condition"`
	Price       Range[float64] `json:"price"`
	Year        Range[int]     `json:"model_year"`
}

// Unconstrained returns criteria spanning the full catalog bounds.
func Unconstrained(cat *dataset.Catalog) Criteria {
	return Criteria{
		VehicleType: dataset.AllOption,
		Condition:   dataset.AllOption,
		Price:       Range[float64]{Min: cat.Price.Min, Max: cat.Price.Max},
		Year:        Range[int]{Min: int(cat.ModelYear.Min), Max: int(cat.ModelYear.Max)},
	}
}

// Match reports whether l satisfies every criterion.
func (c Criteria) Match(l dataset.Listing) bool {
	return matchCategory(c.VehicleType, l.Type) &&
		matchCategory(c.Condition, l.Condition) &&
		c.Price.Contains(l.Price) &&
		c.Year.Contains(l.ModelYear)
}

func matchCategory(want string, got *string) bool {
	if want == "" || want == dataset.AllOption {
		return true
	}
	return got != nil && *got == want
}

// Result is the ordered subsequence of the dataset that matched.
type Result struct {
	Rows []dataset.Listing
}

// Count is the number of matching rows.
func (r Result) Count() int { return len(r.Rows) }

// Filter scans ds once and keeps, in order, every listing matching c.
func Filter(ds *dataset.Dataset, c Criteria) Result {
	rows := make([]dataset.Listing, 0)
	for _, l := range ds.All() {
		if c.Match(l) {
			rows = append(rows, l)
		}
	}
	return Result{Rows: rows}
}
