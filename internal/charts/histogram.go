package charts

import (
	"math"

	"github.com/yourorg/vehicle-dashboard/internal/filter"
)

// Bin is a half-open [Start, End) bucket; the last bin also holds End.
type Bin struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

// Histogram is the odometer distribution.
type Histogram struct {
	Title  string `json:"title"`
	Column string `json:"column"`
	Total  int    `json:"total"`
	Bins   []Bin  `json:"bins"`
}

// OdometerHistogram splits the filtered odometer range into n equal-width
// bins. An empty result has no bins; a constant column gets a single bin.
func OdometerHistogram(res filter.Result, n int) Histogram {
	h := Histogram{Title: "Odometer distribution", Column: "odometer", Total: res.Count(), Bins: []Bin{}}
	if res.Count() == 0 || n <= 0 {
		return h
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, l := range res.Rows {
		lo = math.Min(lo, l.Odometer)
		hi = math.Max(hi, l.Odometer)
	}
	if lo == hi {
		h.Bins = append(h.Bins, Bin{Start: lo, End: hi, Count: res.Count()})
		return h
	}
	width := (hi - lo) / float64(n)
	h.Bins = make([]Bin, n)
	for i := range h.Bins {
		h.Bins[i].Start = lo + float64(i)*width
		h.Bins[i].End = lo + float64(i+1)*width
	}
	h.Bins[n-1].End = hi
	for _, l := range res.Rows {
		idx := int((l.Odometer - lo) / width)
		if idx >= n {
			idx = n - 1
		}
		h.Bins[idx].Count++
	}
	return h
}
