package httpx

import (
	"errors"
	"net/http"

	"github.com/campushq/campus-ui-api/internal/data/memory"
	"github.com/campushq/campus-ui-api/internal/domain/model"
)

// FeeHandlers serves the term fee screens.
type FeeHandlers struct {
	Fees     *memory.FeeStore
	Students *memory.StudentStore
}

// List handles GET /api/fees.
// Filters: ?student_id=<id>&term=<term>&overdue=true. Sort:
// ?sort=due_date|amount_cents with optional :asc/:desc.
func (h *FeeHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := model.FeeQuery{
		StudentID:   q.Get("student_id"),
		Term:        q.Get("term"),
		OverdueOnly: q.Get("overdue") == "true",
	}
	query.SortField, query.SortDir = ParseSortParam(q, "sort", "dir")

	fees, err := h.Fees.List(r.Context(), query)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"fees": fees, "count": len(fees)})
}

// recordPaymentRequest is the body for RecordPayment.
type recordPaymentRequest struct {
	AmountCents int64 `json:"amount_cents"`
}

// RecordPayment handles POST /api/fees/{id}/payments.
func (h *FeeHandlers) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	fee, err := h.Fees.RecordPayment(r.Context(), r.PathValue("id"), req.AmountCents)
	if err != nil {
		if errors.Is(err, memory.ErrNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "fee_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_payment", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, fee)
}

// MyFees handles GET /api/my/fees. The signed-in guardian is resolved to
// the fees of every student linked to their email.
func (h *FeeHandlers) MyFees(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	students, err := h.Students.FindByGuardianEmail(r.Context(), session.Email)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "lookup_failed", Err: err})
		return
	}

	type studentFees struct {
		Student model.Student `json:"student"`
		Fees    []model.Fee   `json:"fees"`
	}

	out := make([]studentFees, 0, len(students))
	for _, st := range students {
		fees, listErr := h.Fees.List(r.Context(), model.FeeQuery{StudentID: st.ID})
		if listErr != nil {
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: listErr})
			return
		}
		out = append(out, studentFees{Student: st, Fees: fees})
	}
	WriteJSON(w, http.StatusOK, map[string]any{"students": out, "count": len(out)})
}
