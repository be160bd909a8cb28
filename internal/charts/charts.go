// Package charts turns a filtered result into the data series behind the
// four dashboard charts. Rendering and styling belong to the front end.
package charts

import (
	"fmt"
	"strings"

	"github.com/yourorg/vehicle-dashboard/internal/filter"
)

// Kind names one of the dashboard charts.
type Kind string

const (
	KindHistogram  Kind = "histogram"
	KindScatter    Kind = "scatter"
	KindBox        Kind = "box"
	KindConditions Kind = "conditions"
)

// Kinds lists every chart in display order.
var Kinds = []Kind{KindHistogram, KindScatter, KindBox, KindConditions}

// ParseKind maps a user supplied name to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown chart %q", s)
}

// OdometerBins is the histogram resolution used by the dashboard.
const OdometerBins = 40

// Selection is the set of enabled chart toggles.
type Selection struct {
	Histogram  bool `json:"histogram"`
	Scatter    bool `json:"scatter"`
	Box        bool `json:"box"`
	Conditions bool `json:"conditions"`
}

// All enables every chart; it is what an empty toggle list means.
var All = Selection{Histogram: true, Scatter: true, Box: true, Conditions: true}

// Only enables a single chart.
func Only(k Kind) Selection {
	var s Selection
	s.Enable(k)
	return s
}

// Enable turns on chart k.
func (s *Selection) Enable(k Kind) {
	switch k {
	case KindHistogram:
		s.Histogram = true
	case KindScatter:
		s.Scatter = true
	case KindBox:
		s.Box = true
	case KindConditions:
		s.Conditions = true
	}
}

// Enabled reports whether chart k is on.
func (s Selection) Enabled(k Kind) bool {
	switch k {
	case KindHistogram:
		return s.Histogram
	case KindScatter:
		return s.Scatter
	case KindBox:
		return s.Box
	case KindConditions:
		return s.Conditions
	}
	return false
}

// Any reports whether at least one chart is enabled.
func (s Selection) Any() bool { return s.Histogram || s.Scatter || s.Box || s.Conditions }

// Set carries the enabled charts; disabled ones are nil.
type Set struct {
	Histogram  *Histogram `json:"histogram,omitempty"`
	Scatter    *Scatter   `json:"scatter,omitempty"`
	Box        *Box       `json:"box,omitempty"`
	Conditions *Bar       `json:"conditions,omitempty"`
}

// Build computes every chart enabled in sel from res.
func Build(res filter.Result, sel Selection) Set {
	var set Set
	if sel.Histogram {
		h := OdometerHistogram(res, OdometerBins)
		set.Histogram = &h
	}
	if sel.Scatter {
		sc := PriceVsOdometer(res)
		set.Scatter = &sc
	}
	if sel.Box {
		b := PriceByType(res)
		set.Box = &b
	}
	if sel.Conditions {
		bar := ConditionCounts(res)
		set.Conditions = &bar
	}
	return set
}
