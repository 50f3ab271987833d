// Package handler provides the JSON HTTP API and serves the embedded
// frontend assets.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tabsplit/tabsplit/internal/service"
)

// Handler wraps application dependencies for HTTP handlers.
type Handler struct {
	svc *service.LedgerService
}

// New creates a new Handler instance.
func New(svc *service.LedgerService) *Handler {
	return &Handler{svc: svc}
}

// Health is a liveness endpoint.
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError writes a JSON error response with the given status code.
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
