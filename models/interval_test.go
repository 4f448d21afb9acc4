package models

import (
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestIntervalProximity(t *testing.T) {
	t.Parallel()

	base := Interval{Start: day(10), End: day(15)}

	t.Run("start within buffer conflicts", func(t *testing.T) {
		iv := Interval{Start: day(10).Add(-12 * time.Hour), End: day(14)}
		if !iv.StartNear(base, ProximityBuffer) {
			t.Fatalf("expected start 12h away to be within the proximity buffer")
		}
	})

	t.Run("start outside buffer is clean", func(t *testing.T) {
		iv := Interval{Start: day(10).Add(-30 * time.Hour), End: day(14)}
		if iv.StartNear(base, ProximityBuffer) {
			t.Fatalf("expected start 30h away to be outside the proximity buffer")
		}
	})

	t.Run("buffer bounds are inclusive", func(t *testing.T) {
		exact := Interval{Start: day(10).Add(-ProximityBuffer), End: day(14)}
		if !exact.StartNear(base, ProximityBuffer) {
			t.Fatalf("expected start exactly on the buffer edge to conflict")
		}

		past := Interval{Start: day(10).Add(-ProximityBuffer - time.Millisecond), End: day(14)}
		if past.StartNear(base, ProximityBuffer) {
			t.Fatalf("expected start 1ms past the buffer edge to be clean")
		}
	})

	t.Run("end proximity is independent of start", func(t *testing.T) {
		iv := Interval{Start: day(1), End: day(15).Add(6 * time.Hour)}
		if iv.StartNear(base, ProximityBuffer) {
			t.Fatalf("start should be far from the base start")
		}
		if !iv.EndNear(base, ProximityBuffer) {
			t.Fatalf("expected end 6h away to be within the proximity buffer")
		}
		if !iv.OverlapsBuffered(base, ProximityBuffer) {
			t.Fatalf("either boundary near should report a buffered overlap")
		}
	})
}

func TestIntervalContainment(t *testing.T) {
	t.Parallel()

	base := Interval{Start: day(10), End: day(15)}

	t.Run("fully contains", func(t *testing.T) {
		wide := Interval{Start: day(9), End: day(16)}
		if !wide.FullyContains(base) {
			t.Fatalf("expected [9,16] to fully contain [10,15]")
		}
		if base.FullyContains(wide) {
			t.Fatalf("[10,15] must not contain [9,16]")
		}
		// Equal boundaries count as contained.
		if !base.FullyContains(base) {
			t.Fatalf("an interval must contain itself")
		}
	})

	t.Run("strictly within", func(t *testing.T) {
		inner := Interval{Start: day(11), End: day(14)}
		if !inner.StrictlyWithin(base) {
			t.Fatalf("expected [11,14] to lie within [10,15]")
		}
		if base.StrictlyWithin(inner) {
			t.Fatalf("[10,15] must not lie within [11,14]")
		}
		if !base.StrictlyWithin(base) {
			t.Fatalf("equal boundaries count as within")
		}
	})

	t.Run("covers instant inclusively", func(t *testing.T) {
		if !base.Covers(day(10)) || !base.Covers(day(15)) {
			t.Fatalf("boundaries must be covered")
		}
		if !base.Covers(day(12)) {
			t.Fatalf("interior instant must be covered")
		}
		if base.Covers(day(10).Add(-time.Millisecond)) || base.Covers(day(15).Add(time.Millisecond)) {
			t.Fatalf("instants outside the range must not be covered")
		}
	})
}
