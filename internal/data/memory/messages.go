package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/campushq/campus-ui-api/internal/domain/model"
)

// MessageStore lists and appends message board entries.
type MessageStore struct {
	mu       sync.RWMutex
	messages []model.Message
	clock    Clock
}

// NewMessageStore creates a store holding the given messages.
func NewMessageStore(messages []model.Message, clock Clock) *MessageStore {
	if clock == nil {
		clock = SystemClock{}
	}
	return &MessageStore{messages: append([]model.Message(nil), messages...), clock: clock}
}

// List returns messages matching the query, newest first.
func (s *MessageStore) List(_ context.Context, q model.MessageQuery) ([]model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Message, 0, len(s.messages))
	for _, m := range s.messages {
		if q.Matches(m) {
			out = append(out, m)
		}
	}
	orderBy(out, true, func(a, b model.Message) bool { return a.SentAt.Before(b.SentAt) })
	return out, nil
}

// Send validates the draft, stamps id and send time, and appends it.
func (s *MessageStore) Send(_ context.Context, draft model.NewMessage) (model.Message, error) {
	if err := draft.Validate(); err != nil {
		return model.Message{}, err
	}

	msg := model.Message{
		ID:       uuid.NewString(),
		FromName: draft.FromName,
		FromRole: draft.FromRole,
		Subject:  draft.Subject,
		Body:     draft.Body,
		SentAt:   s.clock.Now(),
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	return msg, nil
}
