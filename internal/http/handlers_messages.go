package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/campushq/campus-ui-api/internal/data/memory"
	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
	"github.com/campushq/campus-ui-api/internal/domain/model"
)

// MessageHandlers serves the campus message board.
type MessageHandlers struct {
	Store *memory.MessageStore
}

// List handles GET /api/messages.
// Filters: ?from_role=<role>&q=<subject substring>.
func (h *MessageHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := model.MessageQuery{Search: q.Get("q")}

	if roleParam := q.Get("from_role"); roleParam != "" {
		role, ok := domainauth.ParseRole(roleParam)
		if !ok {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "invalid_role",
				Err:     errors.New("unknown role: " + roleParam),
			})
			return
		}
		query.FromRole = role
	}

	messages, err := h.Store.List(r.Context(), query)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"messages": messages, "count": len(messages)})
}

// postMessageRequest is the body for Post. Sender identity comes from the
// session, never the body.
type postMessageRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Post handles POST /api/messages.
func (h *MessageHandlers) Post(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	var req postMessageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	msg, err := h.Store.Send(r.Context(), model.NewMessage{
		FromName: strings.TrimSpace(session.FirstName + " " + session.LastName),
		FromRole: session.Role,
		Subject:  req.Subject,
		Body:     req.Body,
	})
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_message", Err: err})
		return
	}
	WriteJSON(w, http.StatusCreated, msg)
}
