package httpx

import (
	"errors"
	"net/http"

	"github.com/campushq/campus-ui-api/internal/data/memory"
	"github.com/campushq/campus-ui-api/internal/domain/model"
)

// FineHandlers serves the library fines screens.
type FineHandlers struct {
	Store *memory.FineStore
}

// List handles GET /api/fines.
// Filters: ?student_id=<id>&status=outstanding|paid|waived. Sort:
// ?sort=issued_at|amount_cents with optional :asc/:desc.
func (h *FineHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := model.FineQuery{
		StudentID: q.Get("student_id"),
		Status:    model.FineStatus(q.Get("status")),
	}
	query.SortField, query.SortDir = ParseSortParam(q, "sort", "dir")

	fines, err := h.Store.List(r.Context(), query)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"fines": fines, "count": len(fines)})
}

// Waive handles POST /api/fines/{id}/waive.
func (h *FineHandlers) Waive(w http.ResponseWriter, r *http.Request) {
	fine, err := h.Store.Waive(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, memory.ErrNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "fine_not_found", Err: err})
			return
		}
		// Already paid or waived.
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "fine_not_waivable", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, fine)
}

// issueFineRequest is the body for Issue.
type issueFineRequest struct {
	StudentID   string `json:"student_id"`
	Reason      string `json:"reason"`
	AmountCents int64  `json:"amount_cents"`
}

// Issue handles POST /api/fines.
func (h *FineHandlers) Issue(w http.ResponseWriter, r *http.Request) {
	var req issueFineRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	fine, err := h.Store.Issue(r.Context(), req.StudentID, req.Reason, req.AmountCents)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_fine", Err: err})
		return
	}
	WriteJSON(w, http.StatusCreated, fine)
}
