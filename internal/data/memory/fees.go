package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/campushq/campus-ui-api/internal/domain/model"
)

// FeeStore lists term fees and records payments.
type FeeStore struct {
	mu    sync.RWMutex
	fees  []model.Fee
	clock Clock
}

// NewFeeStore creates a store holding the given fees.
func NewFeeStore(fees []model.Fee, clock Clock) *FeeStore {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FeeStore{fees: append([]model.Fee(nil), fees...), clock: clock}
}

// List returns the fees matching the query, due date ascending by
// default. OverdueOnly is resolved against the store clock when the
// query carries no reference time.
func (s *FeeStore) List(_ context.Context, q model.FeeQuery) ([]model.Fee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if q.OverdueOnly && q.Now.IsZero() {
		q.Now = s.clock.Now()
	}

	out := make([]model.Fee, 0, len(s.fees))
	for _, f := range s.fees {
		if q.Matches(f) {
			out = append(out, f)
		}
	}

	switch q.SortField {
	case "amount_cents":
		orderBy(out, sortDescending(q.SortDir), func(a, b model.Fee) bool { return a.AmountCents < b.AmountCents })
	default:
		orderBy(out, sortDescending(q.SortDir), func(a, b model.Fee) bool { return a.DueDate.Before(b.DueDate) })
	}
	return out, nil
}

// Get returns the fee with the given id, or ErrNotFound.
func (s *FeeStore) Get(_ context.Context, id string) (model.Fee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.fees {
		if f.ID == id {
			return f, nil
		}
	}
	return model.Fee{}, ErrNotFound
}

// RecordPayment applies a payment against a fee. The amount must be
// positive and must not exceed the outstanding balance.
func (s *FeeStore) RecordPayment(_ context.Context, id string, amountCents int64) (model.Fee, error) {
	if amountCents <= 0 {
		return model.Fee{}, fmt.Errorf("payment amount must be positive, got %d", amountCents)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.fees {
		if f.ID != id {
			continue
		}
		if outstanding := f.OutstandingCents(); amountCents > outstanding {
			return model.Fee{}, fmt.Errorf("payment %d exceeds outstanding balance %d", amountCents, outstanding)
		}
		s.fees[i].PaidCents += amountCents
		return s.fees[i], nil
	}
	return model.Fee{}, ErrNotFound
}
