package charts

import (
	"math"
	"slices"

	"github.com/yourorg/vehicle-dashboard/internal/filter"
)

// SingleTypeNotice replaces the box plot when fewer than two types remain.
const SingleTypeNotice = "Select more than one vehicle type to view this chart."

// BoxGroup summarises the prices of one vehicle type. Whiskers stop at the
// most extreme prices within 1.5 IQR of the quartiles.
type BoxGroup struct {
	Type         string    `json:"type"`
	Count        int       `json:"count"`
	Min          float64   `json:"min"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	Max          float64   `json:"max"`
	LowerWhisker float64   `json:"lower_whisker"`
	UpperWhisker float64   `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers"`
}

// Box is the price distribution per vehicle type.
type Box struct {
	Title      string     `json:"title"`
	Suppressed bool       `json:"suppressed"`
	Notice     string     `json:"notice,omitempty"`
	Groups     []BoxGroup `json:"groups"`
}

// PriceByType builds one box per non-null type, in order of first
// appearance. With zero or one distinct type the chart is suppressed.
func PriceByType(res filter.Result) Box {
	b := Box{Title: "Price distribution by vehicle type", Groups: []BoxGroup{}}
	var order []string
	prices := make(map[string][]float64)
	for _, l := range res.Rows {
		if l.Type == nil {
			continue
		}
		t := *l.Type
		if _, ok := prices[t]; !ok {
			order = append(order, t)
		}
		prices[t] = append(prices[t], l.Price)
	}
	if len(order) <= 1 {
		b.Suppressed = true
		b.Notice = SingleTypeNotice
		return b
	}
	for _, t := range order {
		b.Groups = append(b.Groups, summarize(t, prices[t]))
	}
	return b
}

func summarize(name string, xs []float64) BoxGroup {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	g := BoxGroup{
		Type:     name,
		Count:    len(sorted),
		Min:      sorted[0],
		Q1:       quantile(sorted, 0.25),
		Median:   quantile(sorted, 0.5),
		Q3:       quantile(sorted, 0.75),
		Max:      sorted[len(sorted)-1],
		Outliers: []float64{},
	}
	iqr := g.Q3 - g.Q1
	lowFence, highFence := g.Q1-1.5*iqr, g.Q3+1.5*iqr
	g.LowerWhisker, g.UpperWhisker = g.Max, g.Min
	for _, v := range sorted {
		if v < lowFence || v > highFence {
			g.Outliers = append(g.Outliers, v)
			continue
		}
		g.LowerWhisker = math.Min(g.LowerWhisker, v)
		g.UpperWhisker = math.Max(g.UpperWhisker, v)
	}
	return g
}

// quantile interpolates linearly between closest ranks of a sorted slice.
func quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
