package charts

import (
	"cmp"
	"slices"

	"github.com/yourorg/vehicle-dashboard/internal/filter"
)

// BarItem is the listing count for one condition.
type BarItem struct {
	Condition string `json:"condition"`
	Count     int    `json:"count"`
}

// Bar is the vehicle count per condition.
type Bar struct {
	Title string    `json:"title"`
	Bars  []BarItem `json:"bars"`
}

// ConditionCounts counts non-null conditions, largest first, ties by name.
func ConditionCounts(res filter.Result) Bar {
	counts := make(map[string]int)
	for _, l := range res.Rows {
		if l.Condition != nil {
			counts[*l.Condition]++
		}
	}
	bars := make([]BarItem, 0, len(counts))
	for c, n := range counts {
		bars = append(bars, BarItem{Condition: c, Count: n})
	}
	slices.SortFunc(bars, func(a, b BarItem) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Condition, b.Condition)
	})
	return Bar{Title: "Vehicle count by condition", Bars: bars}
}
