package httpx

import (
	"errors"
	"net/http"

	"github.com/campushq/campus-ui-api/internal/data/memory"
	"github.com/campushq/campus-ui-api/internal/domain/model"
)

// StudentHandlers serves the student roster screens.
type StudentHandlers struct {
	Store *memory.StudentStore
}

// List handles GET /api/students.
// Filters: ?q=<name substring>&class=<class>&active=true|false. Sort:
// ?sort=name|class_name|enrolled_at with optional :asc/:desc.
func (h *StudentHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := model.StudentQuery{
		Search:    q.Get("q"),
		ClassName: q.Get("class"),
	}
	query.SortField, query.SortDir = ParseSortParam(q, "sort", "dir")

	switch q.Get("active") {
	case "true":
		active := true
		query.Active = &active
	case "false":
		active := false
		query.Active = &active
	}

	students, err := h.Store.List(r.Context(), query)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"students": students, "count": len(students)})
}

// Get handles GET /api/students/{id}.
func (h *StudentHandlers) Get(w http.ResponseWriter, r *http.Request) {
	student, err := h.Store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, memory.ErrNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "student_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, student)
}
