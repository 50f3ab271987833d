package handler

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes mounts the JSON API, operational endpoints and the static frontend
// on a chi router.
func Routes(h *Handler, assets fs.FS) http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/people", h.ListPeople)
		r.Post("/people", h.AddPerson)
		r.Get("/bills", h.ListBills)
		r.Post("/bills", h.AddBill)
		r.Get("/summary", h.Summary)
	})

	r.Get("/healthz", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Everything else is the embedded frontend
	r.NotFound(Static(assets))

	return r
}
