package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	httpapi "github.com/yourorg/vehicle-dashboard/http"
	"github.com/yourorg/vehicle-dashboard/internal/logger"
)

// BuildRouter wires every route. rateLimit is requests per minute per IP;
// zero disables limiting.
func BuildRouter(deps httpapi.Deps, rateLimit int) http.Handler {
	r := chi.NewRouter()
	r.Use(logger.Middleware(deps.Logger))
	r.Use(middleware.Recoverer)
	if rateLimit > 0 {
		r.Use(httprate.LimitByIP(rateLimit, 1*time.Minute))
	}
	r.Get("/metrics", deps.Metrics.Handler().ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			render.JSON(w, req, map[string]any{"ok": true, "rows": deps.Dataset.Len(), "fingerprint": deps.Dataset.Fingerprint()})
		})

		httpapi.RegisterDashboard(r, deps)
		httpapi.RegisterListings(r, deps)
		httpapi.RegisterCharts(r, deps)
	})

	return r
}
