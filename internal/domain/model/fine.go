package model

import "time"

// FineStatus is the lifecycle state of a library fine.
type FineStatus string

const (
	FineOutstanding FineStatus = "outstanding"
	FinePaid        FineStatus = "paid"
	FineWaived      FineStatus = "waived"
)

// Fine is a library fine issued against a student.
type Fine struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"student_id"`
	Reason      string     `json:"reason"`
	AmountCents int64      `json:"amount_cents"`
	Status      FineStatus `json:"status"`
	IssuedAt    time.Time  `json:"issued_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// Outstanding reports whether the fine still needs collection.
func (f Fine) Outstanding() bool { return f.Status == FineOutstanding }

// FineQuery filters and orders fine lists.
type FineQuery struct {
	StudentID string
	Status    FineStatus
	SortField string // issued_at | amount_cents
	SortDir   string
}

// Matches reports whether the fine passes the query's filters.
func (q FineQuery) Matches(f Fine) bool {
	if q.StudentID != "" && f.StudentID != q.StudentID {
		return false
	}
	if q.Status != "" && f.Status != q.Status {
		return false
	}
	return true
}
