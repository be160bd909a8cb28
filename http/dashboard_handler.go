package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// RegisterDashboard serves the headline and the initial control state.
func RegisterDashboard(r chi.Router, d Deps) {
	r.Get("/v1/dashboard", func(w http.ResponseWriter, req *http.Request) {
		total := d.Dataset.Len()
		render.JSON(w, req, map[string]any{
			"ok":          true,
			"total":       total,
			"total_label": d.Locale.Count(total),
			"headline":    d.Locale.DatasetHeadline(total),
			"locale":      d.Locale.Tag(),
			"options": map[string][]string{
				"type":      d.Catalog.Types,
				"condition": d.Catalog.Conditions,
			},
			"bounds": map[string]any{
				"price":      d.Catalog.Price,
				"model_year": d.Catalog.ModelYear,
			},
			"charts": []string{"histogram", "scatter", "box", "conditions"},
		})
	})
}
