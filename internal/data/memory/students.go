package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/campushq/campus-ui-api/internal/domain/model"
)

// StudentStore lists and fetches student records.
type StudentStore struct {
	mu       sync.RWMutex
	students []model.Student
}

// NewStudentStore creates a store holding the given records.
func NewStudentStore(students []model.Student) *StudentStore {
	return &StudentStore{students: append([]model.Student(nil), students...)}
}

// List returns the students matching the query, ordered per its sort
// fields (name ascending by default).
func (s *StudentStore) List(_ context.Context, q model.StudentQuery) ([]model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Student, 0, len(s.students))
	for _, st := range s.students {
		if q.Matches(st) {
			out = append(out, st)
		}
	}

	desc := sortDescending(q.SortDir)
	switch q.SortField {
	case "class_name":
		orderBy(out, desc, func(a, b model.Student) bool {
			if a.ClassName != b.ClassName {
				return a.ClassName < b.ClassName
			}
			return a.Name < b.Name
		})
	case "enrolled_at":
		orderBy(out, desc, func(a, b model.Student) bool { return a.EnrolledAt.Before(b.EnrolledAt) })
	default:
		orderBy(out, desc, func(a, b model.Student) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		})
	}
	return out, nil
}

// Get returns the student with the given id, or ErrNotFound.
func (s *StudentStore) Get(_ context.Context, id string) (model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.students {
		if st.ID == id {
			return st, nil
		}
	}
	return model.Student{}, ErrNotFound
}

// FindByEmail returns the student whose own email matches, or ErrNotFound.
func (s *StudentStore) FindByEmail(_ context.Context, email string) (model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.students {
		if strings.EqualFold(st.Email, email) {
			return st, nil
		}
	}
	return model.Student{}, ErrNotFound
}

// FindByGuardianEmail returns every student linked to the guardian email.
func (s *StudentStore) FindByGuardianEmail(_ context.Context, email string) ([]model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Student
	for _, st := range s.students {
		if strings.EqualFold(st.GuardianEmail, email) {
			out = append(out, st)
		}
	}
	return out, nil
}
