// Package clock abstracts "what day is it" so date validation in the booking
// core can be exercised deterministically. Production code injects the real
// clock; tests inject a fixed one from the mocks subpackage.
package clock

import (
	"time"

	"inn/shared/timezone"
)

type Clock interface {
	// Now returns the current time in the application timezone.
	Now() time.Time
	// Today returns the current calendar date at midnight in the
	// application timezone.
	Today() time.Time
}

type realClock struct{}

// New returns the wall clock in the application timezone.
func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return timezone.Now()
}

func (realClock) Today() time.Time {
	return timezone.Today()
}
