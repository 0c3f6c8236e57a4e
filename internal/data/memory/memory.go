// Package memory holds the seeded in-memory stores backing the dashboard
// screens. Stores are safe for concurrent use and return copies, so
// handlers can never mutate shared state through a returned value.
package memory

import (
	"errors"
	"sort"
	"time"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("memory: record not found")

// Clock provides the current time and can be fixed in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct{ T time.Time }

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.T }

// sortDescending interprets a direction string; anything but "desc" is ascending.
func sortDescending(dir string) bool { return dir == "desc" }

// orderBy sorts items with less, reversing when descending.
func orderBy[T any](items []T, desc bool, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}
