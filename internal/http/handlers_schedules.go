package httpx

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/campushq/campus-ui-api/internal/data/memory"
	"github.com/campushq/campus-ui-api/internal/domain/model"
)

// ScheduleHandlers serves the timetable screens.
type ScheduleHandlers struct {
	Schedules *memory.ScheduleStore
	Students  *memory.StudentStore
}

// List handles GET /api/schedules.
// Filters: ?class=<class>&teacher=<name>&day=<weekday name>.
func (h *ScheduleHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := model.ScheduleQuery{
		ClassName:   q.Get("class"),
		TeacherName: q.Get("teacher"),
	}

	if dayParam := q.Get("day"); dayParam != "" {
		day, ok := parseWeekday(dayParam)
		if !ok {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "invalid_day",
				Err:     errors.New("day must be a weekday name"),
			})
			return
		}
		query.Day = &day
	}

	entries, err := h.Schedules.List(r.Context(), query)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"schedule": entries, "count": len(entries)})
}

// MySchedule handles GET /api/my/schedule. The signed-in student is
// resolved by email to their class timetable.
func (h *ScheduleHandlers) MySchedule(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	student, err := h.Students.FindByEmail(r.Context(), session.Email)
	if err != nil {
		if errors.Is(err, memory.ErrNotFound) {
			WriteError(w, ErrorParams{
				Code:    http.StatusNotFound,
				ErrCode: "student_not_linked",
				Err:     errors.New("no student record matches this account"),
			})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "lookup_failed", Err: err})
		return
	}

	entries, err := h.Schedules.List(r.Context(), model.ScheduleQuery{ClassName: student.ClassName})
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"class":    student.ClassName,
		"schedule": entries,
		"count":    len(entries),
	})
}

func parseWeekday(s string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, true
		}
	}
	return 0, false
}

// assignSlotRequest is the body for Assign.
type assignSlotRequest struct {
	ClassName   string `json:"class_name"`
	Subject     string `json:"subject"`
	TeacherName string `json:"teacher_name"`
	Room        string `json:"room"`
	Day         string `json:"day"`
	Period      int    `json:"period"`
}

// Assign handles POST /api/schedules.
func (h *ScheduleHandlers) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignSlotRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	day, ok := parseWeekday(req.Day)
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_day",
			Err:     errors.New("day must be a weekday name"),
		})
		return
	}

	entry, err := h.Schedules.Assign(r.Context(), model.ScheduleEntry{
		ClassName:   req.ClassName,
		Subject:     req.Subject,
		TeacherName: req.TeacherName,
		Room:        req.Room,
		Day:         day,
		Period:      req.Period,
	})
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "slot_unavailable", Err: err})
		return
	}
	WriteJSON(w, http.StatusCreated, entry)
}
