package model

import (
	"errors"
	"strings"
	"time"

	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
)

// Message is one entry in the campus message board.
type Message struct {
	ID       string          `json:"id"`
	FromName string          `json:"from_name"`
	FromRole domainauth.Role `json:"from_role"`
	Subject  string          `json:"subject"`
	Body     string          `json:"body"`
	SentAt   time.Time       `json:"sent_at"`
}

// NewMessage carries the fields a sender provides.
type NewMessage struct {
	FromName string          `json:"from_name"`
	FromRole domainauth.Role `json:"-"`
	Subject  string          `json:"subject"`
	Body     string          `json:"body"`
}

// Validate cleans and checks the draft.
func (nm *NewMessage) Validate() error {
	nm.FromName = strings.TrimSpace(nm.FromName)
	nm.Subject = strings.TrimSpace(nm.Subject)
	nm.Body = strings.TrimSpace(nm.Body)

	if nm.FromName == "" {
		return errors.New("sender name is required")
	}
	if nm.Subject == "" {
		return errors.New("subject is required")
	}
	if nm.Body == "" {
		return errors.New("body is required")
	}
	return nil
}

// MessageQuery filters message lists.
type MessageQuery struct {
	FromRole domainauth.Role
	Search   string // case-insensitive substring on subject
}

// Matches reports whether the message passes the query's filters.
func (q MessageQuery) Matches(m Message) bool {
	if q.FromRole != "" && m.FromRole != q.FromRole {
		return false
	}
	if q.Search != "" && !strings.Contains(strings.ToLower(m.Subject), strings.ToLower(q.Search)) {
		return false
	}
	return true
}
