package mocks

import (
	"time"

	"inn/shared/clock"
	"inn/shared/timezone"
)

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock frozen at the given instant.
func NewFixed(now time.Time) clock.Clock {
	return &fixedClock{now: now}
}

// Now implements clock.Clock.
func (c *fixedClock) Now() time.Time {
	return c.now
}

// Today implements clock.Clock.
func (c *fixedClock) Today() time.Time {
	return timezone.Date(c.now)
}
