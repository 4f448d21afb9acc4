package booking

import (
	"testing"
	"time"

	"spotbook/models"
)

func TestValidateDates(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("start in the past is rejected", func(t *testing.T) {
		iv := models.Interval{Start: now.Add(-time.Hour), End: now.AddDate(0, 0, 3)}
		errs := validateDates(iv, now)
		if errs["start"] != msgStartInPast {
			t.Fatalf("expected start error, got %v", errs)
		}
	})

	t.Run("end in the past is rejected", func(t *testing.T) {
		iv := models.Interval{Start: now.Add(-48 * time.Hour), End: now.Add(-24 * time.Hour)}
		errs := validateDates(iv, now)
		if errs["end"] != msgEndInPast {
			t.Fatalf("expected end-in-past error, got %v", errs)
		}
	})

	t.Run("end exactly on the minimum span is rejected", func(t *testing.T) {
		start := now.AddDate(0, 0, 10)
		iv := models.Interval{Start: start, End: start.Add(models.MinBookingSpan)}
		errs := validateDates(iv, now)
		if errs["end"] != msgEndTooEarly {
			t.Fatalf("expected end-too-early error, got %v", errs)
		}
		if _, ok := errs["start"]; ok {
			t.Fatalf("start should be clean, got %v", errs)
		}
	})

	t.Run("end one millisecond past the minimum span is accepted", func(t *testing.T) {
		start := now.AddDate(0, 0, 10)
		iv := models.Interval{Start: start, End: start.Add(models.MinBookingSpan + time.Millisecond)}
		if errs := validateDates(iv, now); len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	t.Run("start exactly now is accepted", func(t *testing.T) {
		iv := models.Interval{Start: now, End: now.AddDate(0, 0, 2)}
		if errs := validateDates(iv, now); len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})
}

func TestCheckNotPastEnd(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	b := &models.Booking{StartDate: now.AddDate(0, 0, -10), EndDate: now.AddDate(0, 0, -5)}
	if err := checkNotPastEnd(b, now); err == nil {
		t.Fatalf("expected past bookings to be frozen against edits")
	}

	b = &models.Booking{StartDate: now.AddDate(0, 0, 5), EndDate: now.AddDate(0, 0, 10)}
	if err := checkNotPastEnd(b, now); err != nil {
		t.Fatalf("expected future booking to be editable, got %v", err)
	}

	// End exactly now is not yet past.
	b = &models.Booking{StartDate: now.AddDate(0, 0, -2), EndDate: now}
	if err := checkNotPastEnd(b, now); err != nil {
		t.Fatalf("expected booking ending exactly now to be editable, got %v", err)
	}
}

func TestCheckNotInProgress(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		start   time.Time
		end     time.Time
		blocked bool
	}{
		{"mid booking", now.AddDate(0, 0, -1), now.AddDate(0, 0, 1), true},
		{"starts exactly now", now, now.AddDate(0, 0, 2), true},
		{"ends exactly now", now.AddDate(0, 0, -2), now, true},
		{"not yet started", now.AddDate(0, 0, 1), now.AddDate(0, 0, 3), false},
		{"already over", now.AddDate(0, 0, -3), now.AddDate(0, 0, -1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &models.Booking{StartDate: tc.start, EndDate: tc.end}
			err := checkNotInProgress(b, now)
			if tc.blocked && err == nil {
				t.Fatalf("expected in-progress rejection")
			}
			if !tc.blocked && err != nil {
				t.Fatalf("expected cancellation to be allowed, got %v", err)
			}
		})
	}
}
