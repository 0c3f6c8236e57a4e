package model

// Package model defines the campus records the dashboard screens render
// and mutate. These are plain value types; list filtering semantics live
// with the queries here, execution with the stores.

import (
	"strings"
	"time"
)

// Student is one enrolled student record.
type Student struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ClassName     string    `json:"class_name"`
	GuardianEmail string    `json:"guardian_email"`
	Active        bool      `json:"active"`
	EnrolledAt    time.Time `json:"enrolled_at"`
}

// StudentQuery filters and orders student lists.
type StudentQuery struct {
	Search    string // case-insensitive substring on name
	ClassName string
	Active    *bool
	SortField string // name | class_name | enrolled_at
	SortDir   string // asc | desc
}

// Matches reports whether the student passes the query's filters.
func (q StudentQuery) Matches(s Student) bool {
	if q.Search != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(q.Search)) {
		return false
	}
	if q.ClassName != "" && s.ClassName != q.ClassName {
		return false
	}
	if q.Active != nil && s.Active != *q.Active {
		return false
	}
	return true
}
