package httpapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/vehicle-dashboard/internal/export"
	"github.com/yourorg/vehicle-dashboard/internal/filter"
	"github.com/yourorg/vehicle-dashboard/internal/logger"
)

func RegisterListings(r chi.Router, d Deps) {
	// POST JSON
	r.Post("/v1/listings", func(w http.ResponseWriter, req *http.Request) {
		var body FilterRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, req, invalidRequest(err))
			return
		}
		handleListingsRequest(w, req, d, body)
	})

	// GET query
	r.Get("/v1/listings", func(w http.ResponseWriter, req *http.Request) {
		body, apiErr := filterFromQuery(req.URL.Query())
		if apiErr != nil {
			writeError(w, req, apiErr)
			return
		}
		handleListingsRequest(w, req, d, body)
	})

	r.Get("/v1/listings/export.xlsx", func(w http.ResponseWriter, req *http.Request) {
		body, apiErr := filterFromQuery(req.URL.Query())
		if apiErr != nil {
			writeError(w, req, apiErr)
			return
		}
		res := d.run("export", body.Criteria(d.Catalog))

		var buf bytes.Buffer
		if err := export.WriteXLSX(&buf, res.Rows); err != nil {
			logger.FromContext(req.Context(), d.Logger).Error("xlsx export failed", slog.Any("error", err))
			writeError(w, req, internalError(err))
			return
		}
		w.Header().Set("Content-Type", export.ContentTypeXLSX)
		w.Header().Set("Content-Disposition", `attachment; filename="listings.xlsx"`)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		_, _ = buf.WriteTo(w)
	})
}

func handleListingsRequest(w http.ResponseWriter, req *http.Request, d Deps, body FilterRequest) {
	crit := body.Criteria(d.Catalog)
	res := d.run("listings", crit)
	logger.FromContext(req.Context(), d.Logger).Debug("listings filtered",
		slog.String("type", crit.VehicleType),
		slog.String("condition", crit.Condition),
		slog.Int("count", res.Count()),
	)
	render.JSON(w, req, listingsResponse(d, crit, res))
}

func listingsResponse(d Deps, crit filter.Criteria, res filter.Result) map[string]any {
	return map[string]any{
		"ok":          true,
		"count":       res.Count(),
		"count_label": d.Locale.Count(res.Count()),
		"headline":    d.Locale.ResultHeadline(res.Count()),
		"criteria":    crit,
		"listings":    res.Rows,
	}
}
