package booking

import "fmt"

// ConflictMessage is the top-level message returned whenever the requested
// dates collide with another booking on the same spot.
const ConflictMessage = "Sorry, this spot is already booked for the specified dates"

// NotFoundError signals that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s couldn't be found", e.Resource)
}

// ForbiddenError signals that the actor lacks the required relationship to
// the booking or its spot.
type ForbiddenError struct{}

func (e *ForbiddenError) Error() string {
	return "Forbidden"
}

// PastEndError signals an attempt to modify a booking whose end has already
// elapsed.
type PastEndError struct{}

func (e *PastEndError) Error() string {
	return "Past bookings can't be modified"
}

// InProgressError signals an attempt to cancel a booking that is currently
// in progress.
type InProgressError struct{}

func (e *InProgressError) Error() string {
	return "Bookings that have been started can't be deleted"
}

// InvalidDatesError carries field-level validation failures for a proposed
// date range.
type InvalidDatesError struct {
	Errors map[string]string
}

func (e *InvalidDatesError) Error() string {
	return fmt.Sprintf("invalid booking dates: %v", e.Errors)
}

// ConflictError carries field-level schedule conflicts against existing
// bookings. Errors maps "start" and/or "end" to a description.
type ConflictError struct {
	Errors map[string]string
}

func (e *ConflictError) Error() string {
	return ConflictMessage
}
