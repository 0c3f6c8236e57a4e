package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/campushq/campus-ui-api/internal/domain/model"
)

// FineStore lists, issues, and waives library fines.
type FineStore struct {
	mu    sync.RWMutex
	fines []model.Fine
	clock Clock
}

// NewFineStore creates a store holding the given fines.
func NewFineStore(fines []model.Fine, clock Clock) *FineStore {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FineStore{fines: append([]model.Fine(nil), fines...), clock: clock}
}

// List returns the fines matching the query, newest first by default.
func (s *FineStore) List(_ context.Context, q model.FineQuery) ([]model.Fine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Fine, 0, len(s.fines))
	for _, f := range s.fines {
		if q.Matches(f) {
			out = append(out, f)
		}
	}

	switch q.SortField {
	case "amount_cents":
		orderBy(out, sortDescending(q.SortDir), func(a, b model.Fine) bool { return a.AmountCents < b.AmountCents })
	case "issued_at":
		orderBy(out, sortDescending(q.SortDir), func(a, b model.Fine) bool { return a.IssuedAt.Before(b.IssuedAt) })
	default:
		orderBy(out, true, func(a, b model.Fine) bool { return a.IssuedAt.Before(b.IssuedAt) })
	}
	return out, nil
}

// Get returns the fine with the given id, or ErrNotFound.
func (s *FineStore) Get(_ context.Context, id string) (model.Fine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.fines {
		if f.ID == id {
			return f, nil
		}
	}
	return model.Fine{}, ErrNotFound
}

// Waive marks an outstanding fine as waived and stamps the resolution
// time. Waiving a resolved fine is rejected.
func (s *FineStore) Waive(_ context.Context, id string) (model.Fine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.fines {
		if f.ID != id {
			continue
		}
		if f.Status != model.FineOutstanding {
			return model.Fine{}, fmt.Errorf("fine %s is already %s", id, f.Status)
		}
		now := s.clock.Now()
		s.fines[i].Status = model.FineWaived
		s.fines[i].ResolvedAt = &now
		return s.fines[i], nil
	}
	return model.Fine{}, ErrNotFound
}

// Issue creates a new outstanding fine against a student.
func (s *FineStore) Issue(_ context.Context, studentID, reason string, amountCents int64) (model.Fine, error) {
	if studentID == "" {
		return model.Fine{}, fmt.Errorf("student id is required")
	}
	if reason == "" {
		return model.Fine{}, fmt.Errorf("reason is required")
	}
	if amountCents <= 0 {
		return model.Fine{}, fmt.Errorf("fine amount must be positive, got %d", amountCents)
	}

	fine := model.Fine{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		Reason:      reason,
		AmountCents: amountCents,
		Status:      model.FineOutstanding,
		IssuedAt:    s.clock.Now(),
	}

	s.mu.Lock()
	s.fines = append(s.fines, fine)
	s.mu.Unlock()
	return fine, nil
}
