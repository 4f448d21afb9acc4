package booking

import (
	"time"

	"spotbook/models"
)

const (
	msgStartInPast = "Start date cannot be in the past"
	msgEndInPast   = "End date cannot be in the past"
	msgEndTooEarly = "End date must be at least a day after the start date"
)

// validateDates checks the shape of a proposed date range against now.
// The returned map is empty when the range is acceptable.
func validateDates(candidate models.Interval, now time.Time) map[string]string {
	errs := make(map[string]string)
	if candidate.Start.Before(now) {
		errs["start"] = msgStartInPast
	}
	switch {
	case candidate.End.Before(now):
		errs["end"] = msgEndInPast
	case !candidate.End.After(candidate.Start.Add(models.MinBookingSpan)):
		// End exactly on the floor is still rejected; one millisecond past
		// it is accepted.
		errs["end"] = msgEndTooEarly
	}
	return errs
}

// checkNotPastEnd rejects modification of a booking whose stored end already
// elapsed. Past bookings are frozen against edits.
func checkNotPastEnd(b *models.Booking, now time.Time) error {
	if b.EndDate.Before(now) {
		return &PastEndError{}
	}
	return nil
}

// checkNotInProgress rejects cancellation while now falls within the
// booking's range, boundaries inclusive.
func checkNotInProgress(b *models.Booking, now time.Time) error {
	if b.Interval().Covers(now) {
		return &InProgressError{}
	}
	return nil
}
