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

type addBillRequest struct {
	Purpose  string   `json:"purpose"`
	Amount   float64  `json:"amount"`
	Payer    string   `json:"payer"`
	Included []string `json:"included"`
}

// AddBill records a new shared expense.
// POST /api/bills
//
// Invalid input (empty purpose, non-positive amount, missing payer, empty
// included set) returns 400 with a user-visible message and writes nothing.
func (h *Handler) AddBill(w http.ResponseWriter, r *http.Request) {
	var req addBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	bill, err := h.svc.AddBill(r.Context(), req.Purpose, req.Amount, req.Payer, req.Included)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBill) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		slog.Error("AddBill failed", "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Errorf("internal error"))
		return
	}

	writeJSON(w, http.StatusCreated, bill)
}

// ListBills returns every recorded bill.
// GET /api/bills
func (h *Handler) ListBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.svc.Bills(r.Context())
	if err != nil {
		slog.Error("ListBills failed", "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Errorf("internal error"))
		return
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	writeJSON(w, http.StatusOK, bills)
}

// Summary returns the full snapshot: people, bills, balances and the
// settlement plan, recomputed from scratch on every call.
// GET /api/summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		slog.Error("Summary failed", "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Errorf("internal error"))
		return
	}
	if summary.People == nil {
		summary.People = []models.Person{}
	}
	if summary.Bills == nil {
		summary.Bills = []models.Bill{}
	}
	if summary.Transfers == nil {
		summary.Transfers = []models.Transfer{}
	}
	writeJSON(w, http.StatusOK, summary)
}
