package charts

import (
	"github.com/yourorg/vehicle-dashboard/internal/filter"
)

// Point is one listing on the price/odometer plane with its hover fields.
type Point struct {
	Odometer  float64 `json:"odometer"`
	Price     float64 `json:"price"`
	Model     string  `json:"model"`
	ModelYear int     `json:"model_year"`
	Type      string  `json:"type"`
}

// Series groups the points sharing a condition colour. Null conditions form
// the series with an empty name.
type Series struct {
	Condition string  `json:"condition"`
	Points    []Point `json:"points"`
}

// Scatter is price against odometer, coloured by condition.
type Scatter struct {
	Title  string   `json:"title"`
	X      string   `json:"x"`
	Y      string   `json:"y"`
	Total  int      `json:"total"`
	Series []Series `json:"series"`
}

// PriceVsOdometer groups the filtered rows by condition in order of first appearance.
func PriceVsOdometer(res filter.Result) Scatter {
	sc := Scatter{Title: "Price vs. odometer by condition", X: "odometer", Y: "price", Total: res.Count(), Series: []Series{}}
	index := make(map[string]int)
	for _, l := range res.Rows {
		cond := l.ConditionOr("")
		i, ok := index[cond]
		if !ok {
			i = len(sc.Series)
			index[cond] = i
			sc.Series = append(sc.Series, Series{Condition: cond})
		}
		sc.Series[i].Points = append(sc.Series[i].Points, Point{
			Odometer:  l.Odometer,
			Price:     l.Price,
			Model:     l.ModelOr(""),
			ModelYear: l.ModelYear,
			Type:      l.TypeOr(""),
		})
	}
	return sc
}
