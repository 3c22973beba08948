// Package practice holds the pure practice core: the clinical timeline,
// appointment scheduling queries, ledger aggregation, goal progress and
// settings normalization. Nothing here performs I/O; callers persist the
// returned values.
package practice

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current instant
type Clock interface {
	Now() time.Time
}

// IDGenerator supplies identifiers that never collide within a practice
type IDGenerator interface {
	NewID() string
}

// SystemClock reads the wall clock in Location (UTC when nil)
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// UUIDGenerator issues random v4 UUIDs
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// calendarDate drops the time of day, keeping the location of t
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
