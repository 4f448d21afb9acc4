package booking

import "spotbook/models"

const (
	msgStartConflict = "Start date conflicts with an existing booking"
	msgEndConflict   = "End date conflicts with an existing booking"
)

// detectConflicts compares a candidate date range against the other bookings
// of the same spot and returns a field->message report. An empty report means
// the candidate is clean. The booking under modification must already be
// excluded from others; failing to exclude it produces false self-conflicts.
//
// Three passes run over the same list and accumulate into one report. They
// partially overlap in coverage but each guards a distinct scenario, so they
// are kept as independently testable rules.
func detectConflicts(candidate models.Interval, others []models.Booking) map[string]string {
	report := make(map[string]string)

	// Buffered proximity: boundaries within the tolerance window of another
	// booking's boundaries count as conflicting even without true overlap.
	for _, other := range others {
		iv := other.Interval()
		if candidate.StartNear(iv, models.ProximityBuffer) {
			report["start"] = msgStartConflict
		}
		if candidate.EndNear(iv, models.ProximityBuffer) {
			report["end"] = msgEndConflict
		}
	}

	// Enclosure: the candidate range swallowing an existing booking whole
	// flags both boundaries.
	for _, other := range others {
		if candidate.FullyContains(other.Interval()) {
			report["start"] = msgStartConflict
			report["end"] = msgEndConflict
		}
	}

	// Point containment: exact check, no tolerance. A candidate boundary
	// landing inside an existing booking conflicts.
	for _, other := range others {
		iv := other.Interval()
		if iv.Covers(candidate.Start) {
			report["start"] = msgStartConflict
		}
		if iv.Covers(candidate.End) {
			report["end"] = msgEndConflict
		}
	}

	return report
}
