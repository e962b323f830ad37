package timezone_test

import (
	"desk/shared/timezone"
	"testing"
	"time"
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

func TestTimestamp(t *testing.T) {
	value := time.Date(2025, 6, 1, 14, 30, 15, 999, timezone.GetLocation())

	if got := timezone.Timestamp(value); got != "2025-06-01T14:30:15" {
		t.Errorf("expected 2025-06-01T14:30:15, got %s", got)
	}
}

func TestTimestampConvertsToAppLocation(t *testing.T) {
	value := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	want := value.In(timezone.GetLocation()).Format(timezone.TimestampLayout)
	if got := timezone.Timestamp(value); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
