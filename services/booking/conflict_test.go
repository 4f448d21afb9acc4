package booking

import (
	"testing"
	"time"

	"spotbook/models"
)

func day(n int) time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func existingBooking(id string, start, end time.Time) models.Booking {
	return models.Booking{
		ID:        id,
		SpotID:    "spot-1",
		UserID:    "holder",
		StartDate: start,
		EndDate:   end,
	}
}

func TestDetectConflicts(t *testing.T) {
	t.Parallel()

	others := []models.Booking{existingBooking("b1", day(10), day(15))}

	t.Run("empty list never conflicts", func(t *testing.T) {
		report := detectConflicts(models.Interval{Start: day(10), End: day(15)}, nil)
		if len(report) != 0 {
			t.Fatalf("expected empty report, got %v", report)
		}
	})

	t.Run("start 12h from an existing start conflicts", func(t *testing.T) {
		candidate := models.Interval{Start: day(10).Add(-12 * time.Hour), End: day(10).Add(-2 * time.Hour)}
		report := detectConflicts(candidate, others)
		if report["start"] != msgStartConflict {
			t.Fatalf("expected start conflict, got %v", report)
		}
		if _, ok := report["end"]; ok {
			t.Fatalf("end should be clean, got %v", report)
		}
	})

	t.Run("start 30h from an existing start is clean", func(t *testing.T) {
		candidate := models.Interval{Start: day(15).Add(30 * time.Hour), End: day(17).Add(30 * time.Hour)}
		report := detectConflicts(candidate, others)
		if len(report) != 0 {
			t.Fatalf("expected empty report, got %v", report)
		}
	})

	t.Run("enclosing an existing booking flags both fields", func(t *testing.T) {
		candidate := models.Interval{Start: day(9), End: day(16)}
		report := detectConflicts(candidate, others)
		if report["start"] != msgStartConflict || report["end"] != msgEndConflict {
			t.Fatalf("expected both fields flagged, got %v", report)
		}
	})

	t.Run("boundary landing inside an existing booking conflicts", func(t *testing.T) {
		candidate := models.Interval{Start: day(6), End: day(12)}
		report := detectConflicts(candidate, others)
		if _, ok := report["start"]; ok {
			t.Fatalf("start is outside the existing booking, got %v", report)
		}
		if report["end"] != msgEndConflict {
			t.Fatalf("expected end conflict from point containment, got %v", report)
		}
	})

	t.Run("passes accumulate into one report", func(t *testing.T) {
		// Start is 12h from the existing start (buffered pass); end lands
		// inside the existing booking (point pass).
		candidate := models.Interval{Start: day(10).Add(-12 * time.Hour), End: day(14)}
		report := detectConflicts(candidate, others)
		if report["start"] != msgStartConflict || report["end"] != msgEndConflict {
			t.Fatalf("expected both fields flagged, got %v", report)
		}
	})

	t.Run("revalidating accepted dates stays clean", func(t *testing.T) {
		candidate := models.Interval{Start: day(20), End: day(25)}
		if report := detectConflicts(candidate, others); len(report) != 0 {
			t.Fatalf("expected empty report, got %v", report)
		}
		// Idempotence: same inputs, same verdict.
		if report := detectConflicts(candidate, others); len(report) != 0 {
			t.Fatalf("expected empty report on re-validation, got %v", report)
		}
	})
}
