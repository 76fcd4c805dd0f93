package text

import (
	"testing"
	"time"
)

func TestRelativeTimeUnderMinute(t *testing.T) {
	got := RelativeTime(time.Now().Add(-30 * time.Second))
	if got != "<1m ago" {
		t.Errorf("under a minute: got %q, want %q", got, "<1m ago")
	}
}

func TestRelativeTimeMinutes(t *testing.T) {
	got := RelativeTime(time.Now().Add(-5 * time.Minute))
	if got != "5m ago" {
		t.Errorf("minutes: got %q, want %q", got, "5m ago")
	}
}

func TestRelativeTimeHours(t *testing.T) {
	got := RelativeTime(time.Now().Add(-3 * time.Hour))
	if got != "3h ago" {
		t.Errorf("hours: got %q, want %q", got, "3h ago")
	}
}

func TestRelativeTimeDays(t *testing.T) {
	got := RelativeTime(time.Now().Add(-49 * time.Hour))
	if got != "2d ago" {
		t.Errorf("days: got %q, want %q", got, "2d ago")
	}
}

func TestRelativeTimeWeeks(t *testing.T) {
	got := RelativeTime(time.Now().Add(-16 * 24 * time.Hour))
	if got != "2w ago" {
		t.Errorf("weeks: got %q, want %q", got, "2w ago")
	}
}

func TestRelativeTimeFuture(t *testing.T) {
	got := RelativeTime(time.Now().Add(time.Hour))
	if got != "<1m ago" {
		t.Errorf("future clamps to now: got %q", got)
	}
}

func TestRelativeTimeOldDate(t *testing.T) {
	old := time.Date(2020, time.March, 14, 0, 0, 0, 0, time.UTC)
	got := RelativeTime(old)
	if got != "Mar 14 2020" {
		t.Errorf("old date: got %q, want %q", got, "Mar 14 2020")
	}
}
