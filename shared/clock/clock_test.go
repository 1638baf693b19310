package clock_test

import (
	"testing"
	"time"

	"inn/shared/clock"
	"inn/shared/clock/mocks"
	"inn/shared/timezone"
)

func TestRealClock(t *testing.T) {
	c := clock.New()

	now := c.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	today := c.Today()
	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Errorf("expected Today() at midnight, got %v", today)
	}
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2026, 3, 9, 15, 30, 0, 0, timezone.GetLocation())
	c := mocks.NewFixed(instant)

	if !c.Now().Equal(instant) {
		t.Errorf("expected Now() to be %v, got %v", instant, c.Now())
	}

	expectedToday := time.Date(2026, 3, 9, 0, 0, 0, 0, timezone.GetLocation())
	if !c.Today().Equal(expectedToday) {
		t.Errorf("expected Today() to be %v, got %v", expectedToday, c.Today())
	}
}
