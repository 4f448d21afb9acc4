package models

import "time"

// ProximityBuffer is the tolerance window used to treat near-identical dates
// as conflicting even without true overlap. Intentionally just under 24h.
const ProximityBuffer = 86_300_000 * time.Millisecond

// MinBookingSpan is the minimum distance required between a booking's start
// and end. It currently shares ProximityBuffer's value but is a separate
// knob; do not derive one from the other.
const MinBookingSpan = 86_300_000 * time.Millisecond

// Interval is a date range with Start strictly before End. It is built fresh
// per request from raw input and never persisted.
type Interval struct {
	Start time.Time
	End   time.Time
}

// StartNear reports whether iv's start falls within
// [other.Start - buffer, other.Start + buffer], bounds inclusive.
func (iv Interval) StartNear(other Interval, buffer time.Duration) bool {
	return within(iv.Start, other.Start, buffer)
}

// EndNear reports whether iv's end falls within
// [other.End - buffer, other.End + buffer], bounds inclusive.
func (iv Interval) EndNear(other Interval, buffer time.Duration) bool {
	return within(iv.End, other.End, buffer)
}

// OverlapsBuffered reports whether either boundary of iv lies within buffer
// of the corresponding boundary of other. This is a fuzzy proximity check,
// not geometric overlap.
func (iv Interval) OverlapsBuffered(other Interval, buffer time.Duration) bool {
	return iv.StartNear(other, buffer) || iv.EndNear(other, buffer)
}

// FullyContains reports whether other is entirely enclosed by iv,
// boundaries inclusive.
func (iv Interval) FullyContains(other Interval) bool {
	return !other.Start.Before(iv.Start) && !other.End.After(iv.End)
}

// StrictlyWithin reports whether iv lies entirely inside other,
// boundaries inclusive. No buffer tolerance applies.
func (iv Interval) StrictlyWithin(other Interval) bool {
	return !iv.Start.Before(other.Start) && !iv.End.After(other.End)
}

// Covers reports whether t falls inside iv, boundaries inclusive.
func (iv Interval) Covers(t time.Time) bool {
	return !t.Before(iv.Start) && !t.After(iv.End)
}

// within reports |t - ref| <= buffer with inclusive bounds.
func within(t, ref time.Time, buffer time.Duration) bool {
	return !t.Before(ref.Add(-buffer)) && !t.After(ref.Add(buffer))
}
