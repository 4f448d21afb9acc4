package booking

import (
	"context"
	"time"

	bookingRepo "spotbook/database/repository/booking"
	spotRepo "spotbook/database/repository/spot"
	"spotbook/models"
	"spotbook/utils"
)

// BookingService defines the operations exposed to the transport layer.
type BookingService interface {
	CreateBooking(ctx context.Context, actorID, spotID string, start, end time.Time) (*models.Booking, error)
	UpdateBookingDates(ctx context.Context, actorID, bookingID string, start, end time.Time) (*models.Booking, error)
	CancelBooking(ctx context.Context, actorID, bookingID string) error
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	// ListSpotBookings returns the spot's bookings plus whether the actor
	// owns the spot; non-owners only get to see the date ranges.
	ListSpotBookings(ctx context.Context, actorID, spotID string) ([]models.Booking, bool, error)
}

// ReminderScheduler schedules an upcoming-booking reminder. Implementations
// must tolerate start dates closer than the configured lead time.
type ReminderScheduler interface {
	ScheduleBookingReminder(b *models.Booking, spotName string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	SpotRepo  spotRepo.SpotRepository
	Clock     utils.Clock
	Reminders ReminderScheduler // optional; nil disables reminders
}
