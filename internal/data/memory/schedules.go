package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campushq/campus-ui-api/internal/domain/model"
)

// ScheduleStore lists and assigns timetable entries.
type ScheduleStore struct {
	mu      sync.RWMutex
	entries []model.ScheduleEntry
}

// NewScheduleStore creates a store holding the given entries.
func NewScheduleStore(entries []model.ScheduleEntry) *ScheduleStore {
	return &ScheduleStore{entries: append([]model.ScheduleEntry(nil), entries...)}
}

// List returns entries matching the query in weekday and period order.
func (s *ScheduleStore) List(_ context.Context, q model.ScheduleQuery) ([]model.ScheduleEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ScheduleEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if q.Matches(e) {
			out = append(out, e)
		}
	}

	orderBy(out, false, func(a, b model.ScheduleEntry) bool {
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Period != b.Period {
			return a.Period < b.Period
		}
		return a.ClassName < b.ClassName
	})
	return out, nil
}

// Assign adds a timetable entry, rejecting double bookings of the class
// or the room in the same slot.
func (s *ScheduleStore) Assign(_ context.Context, entry model.ScheduleEntry) (model.ScheduleEntry, error) {
	if entry.ClassName == "" || entry.Subject == "" || entry.TeacherName == "" {
		return model.ScheduleEntry{}, errors.New("class, subject and teacher are required")
	}
	if entry.Day < time.Sunday || entry.Day > time.Saturday {
		return model.ScheduleEntry{}, errors.New("day must be a weekday")
	}
	if entry.Period < 1 {
		return model.ScheduleEntry{}, errors.New("period must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.Day != entry.Day || e.Period != entry.Period {
			continue
		}
		if e.ClassName == entry.ClassName {
			return model.ScheduleEntry{}, fmt.Errorf("class %s already has %s in that slot", e.ClassName, e.Subject)
		}
		if entry.Room != "" && e.Room == entry.Room {
			return model.ScheduleEntry{}, fmt.Errorf("room %s is already booked in that slot", e.Room)
		}
	}

	entry.ID = uuid.NewString()
	s.entries = append(s.entries, entry)
	return entry, nil
}
