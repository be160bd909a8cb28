package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/vehicle-dashboard/internal/chartcache"
	"github.com/yourorg/vehicle-dashboard/internal/charts"
	"github.com/yourorg/vehicle-dashboard/internal/logger"
)

func RegisterCharts(r chi.Router, d Deps) {
	r.Post("/v1/charts", func(w http.ResponseWriter, req *http.Request) {
		var body ChartsRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, req, invalidRequest(err))
			return
		}
		sel, apiErr := selectionOrAll(body.Charts)
		if apiErr != nil {
			writeError(w, req, apiErr)
			return
		}
		handleChartsRequest(w, req, d, body.FilterRequest, sel)
	})

	r.Get("/v1/charts", func(w http.ResponseWriter, req *http.Request) {
		body, apiErr := filterFromQuery(req.URL.Query())
		if apiErr != nil {
			writeError(w, req, apiErr)
			return
		}
		sel, apiErr := selectionOrAll(chartsFromQuery(req.URL.Query()))
		if apiErr != nil {
			writeError(w, req, apiErr)
			return
		}
		handleChartsRequest(w, req, d, body, sel)
	})

	r.Get("/v1/charts/{chart}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "chart")
		kind, err := charts.ParseKind(name)
		if err != nil {
			writeError(w, req, &APIError{
				StatusCode: http.StatusNotFound,
				ErrorCode:  "UNKNOWN_CHART",
				Message:    err.Error(),
				Details:    map[string]any{"known": charts.Kinds},
			})
			return
		}
		body, apiErr := filterFromQuery(req.URL.Query())
		if apiErr != nil {
			writeError(w, req, apiErr)
			return
		}
		handleChartsRequest(w, req, d, body, charts.Only(kind))
	})
}

// noCharts turns every toggle off.
const noCharts = "none"

func selectionOrAll(names []string) (charts.Selection, *APIError) {
	if len(names) == 0 {
		return charts.All, nil
	}
	if len(names) == 1 && strings.EqualFold(strings.TrimSpace(names[0]), noCharts) {
		return charts.Selection{}, nil
	}
	return selection(names)
}

func handleChartsRequest(w http.ResponseWriter, req *http.Request, d Deps, body FilterRequest, sel charts.Selection) {
	crit := body.Criteria(d.Catalog)
	if !sel.Any() {
		render.JSON(w, req, map[string]any{
			"ok":       true,
			"cache":    chartcache.Off,
			"criteria": crit,
			"charts":   charts.Set{},
		})
		return
	}
	set, outcome := d.Cache.Charts(req.Context(), crit, sel, func() charts.Set {
		return charts.Build(d.run("charts", crit), sel)
	})
	for _, k := range charts.Kinds {
		if sel.Enabled(k) {
			d.Metrics.ObserveChart(string(k), string(outcome))
		}
	}
	logger.FromContext(req.Context(), d.Logger).Debug("charts served",
		slog.String("cache", string(outcome)),
		slog.String("type", crit.VehicleType),
	)
	render.JSON(w, req, map[string]any{
		"ok":       true,
		"cache":    outcome,
		"criteria": crit,
		"charts":   set,
	})
}
