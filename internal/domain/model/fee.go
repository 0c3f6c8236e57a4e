package model

import "time"

// Fee is a term fee assessed against a student.
type Fee struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	Term        string    `json:"term"`
	AmountCents int64     `json:"amount_cents"`
	PaidCents   int64     `json:"paid_cents"`
	DueDate     time.Time `json:"due_date"`
}

// OutstandingCents is the unpaid balance; never negative.
func (f Fee) OutstandingCents() int64 {
	if f.PaidCents >= f.AmountCents {
		return 0
	}
	return f.AmountCents - f.PaidCents
}

// Settled reports whether the fee is fully paid.
func (f Fee) Settled() bool { return f.OutstandingCents() == 0 }

// Overdue reports whether an unsettled fee is past its due date.
func (f Fee) Overdue(now time.Time) bool {
	return !f.Settled() && now.After(f.DueDate)
}

// FeeQuery filters and orders fee lists.
type FeeQuery struct {
	StudentID   string
	Term        string
	OverdueOnly bool
	Now         time.Time // reference time for OverdueOnly; zero means time.Now
	SortField   string    // due_date | amount_cents
	SortDir     string
}

// Matches reports whether the fee passes the query's filters.
func (q FeeQuery) Matches(f Fee) bool {
	if q.StudentID != "" && f.StudentID != q.StudentID {
		return false
	}
	if q.Term != "" && f.Term != q.Term {
		return false
	}
	if q.OverdueOnly {
		now := q.Now
		if now.IsZero() {
			now = time.Now()
		}
		if !f.Overdue(now) {
			return false
		}
	}
	return true
}
