package httpapi

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/yourorg/vehicle-dashboard/internal/charts"
	"github.com/yourorg/vehicle-dashboard/internal/dataset"
	"github.com/yourorg/vehicle-dashboard/internal/filter"
)

// FilterRequest carries the sidebar controls. Missing categories mean "all";
// missing bounds fall back to the dataset bounds.
type FilterRequest struct {
	Type      string   `json:"type,omitempty"`
	Condition string   `json:"condition,omitempty"`
	MinPrice  *float64 `json:"min_price,omitempty"`
	MaxPrice  *float64 `json:"max_price,omitempty"`
	MinYear   *int     `json:"min_year,omitempty"`
	MaxYear   *int     `json:"max_year,omitempty"`
}

// ChartsRequest adds the chart toggles to a FilterRequest.
type ChartsRequest struct {
	FilterRequest
	Charts []string `json:"charts,omitempty"`
}

func defFloat(v *float64, d float64) float64 {
	if v == nil {
		return d
	}
	return *v
}

func defInt(v *int, d int) int {
	if v == nil {
		return d
	}
	return *v
}

// Criteria resolves the request against the catalog defaults.
func (f FilterRequest) Criteria(cat *dataset.Catalog) filter.Criteria {
	c := filter.Unconstrained(cat)
	if f.Type != "" {
		c.VehicleType = f.Type
	}
	if f.Condition != "" {
		c.Condition = f.Condition
	}
	c.Price.Min = defFloat(f.MinPrice, c.Price.Min)
	c.Price.Max = defFloat(f.MaxPrice, c.Price.Max)
	c.Year.Min = defInt(f.MinYear, c.Year.Min)
	c.Year.Max = defInt(f.MaxYear, c.Year.Max)
	return c
}

// filterFromQuery reads ?type=&condition=&min_price=&max_price=&min_year=&max_year=.
func filterFromQuery(q url.Values) (FilterRequest, *APIError) {
	body := FilterRequest{
		Type:      q.Get("type"),
		Condition: q.Get("condition"),
	}
	for _, p := range []struct {
		name string
		dst  **float64
	}{{"min_price", &body.MinPrice}, {"max_price", &body.MaxPrice}} {
		if v := q.Get(p.name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return body, invalidParameter(p.name, v)
			}
			*p.dst = &f
		}
	}
	for _, p := range []struct {
		name string
		dst  **int
	}{{"min_year", &body.MinYear}, {"max_year", &body.MaxYear}} {
		if v := q.Get(p.name); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return body, invalidParameter(p.name, v)
			}
			*p.dst = &i
		}
	}
	return body, nil
}

// chartsFromQuery accepts ?charts=histogram,box as well as repeated ?charts=.
func chartsFromQuery(q url.Values) []string {
	var out []string
	for _, v := range q["charts"] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func selection(names []string) (charts.Selection, *APIError) {
	var sel charts.Selection
	for _, n := range names {
		k, err := charts.ParseKind(n)
		if err != nil {
			return sel, invalidParameter("charts", n)
		}
		sel.Enable(k)
	}
	return sel, nil
}
