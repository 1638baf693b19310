package timezone_test

import (
	"testing"
	"time"

	"inn/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestDate(t *testing.T) {
	in := time.Date(2026, 9, 14, 17, 45, 12, 999, timezone.GetLocation())
	day := timezone.Date(in)

	if day.Hour() != 0 || day.Minute() != 0 || day.Second() != 0 || day.Nanosecond() != 0 {
		t.Errorf("expected midnight, got %v", day)
	}

	if day.Year() != 2026 || day.Month() != time.September || day.Day() != 14 {
		t.Errorf("expected calendar day to be preserved, got %v", day)
	}

	// Normalizing an already-normalized date is a no-op.
	if again := timezone.Date(day); !again.Equal(day) {
		t.Errorf("expected idempotent normalization, got %v", again)
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Errorf("expected Today() at midnight, got %v", today)
	}

	if !today.Equal(timezone.Date(timezone.Now())) {
		t.Error("expected Today() to equal Date(Now())")
	}
}
