package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tabsplit/tabsplit/internal/models"
	"github.com/tabsplit/tabsplit/internal/service"
)

type addPersonRequest struct {
	Name string `json:"name"`
}

// AddPerson registers a new person.
// POST /api/people
//
// An empty name is accepted and ignored (no-op); a duplicate name returns
// 409 with a user-visible error message.
func (h *Handler) AddPerson(w http.ResponseWriter, r *http.Request) {
	var req addPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.svc.AddPerson(r.Context(), req.Name); err != nil {
		if errors.Is(err, service.ErrDuplicatePerson) {
			writeError(w, http.StatusConflict, err)
			return
		}
		slog.Error("AddPerson failed", "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Errorf("internal error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPeople returns every registered person.
// GET /api/people
func (h *Handler) ListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.svc.People(r.Context())
	if err != nil {
		slog.Error("ListPeople failed", "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Errorf("internal error"))
		return
	}
	if people == nil {
		people = []models.Person{}
	}
	writeJSON(w, http.StatusOK, people)
}
