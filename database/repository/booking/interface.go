package bookingRepo

import (
	"context"

	"spotbook/models"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	// GetByID returns the booking or nil when no booking has the given id.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListForSpot returns all bookings for a spot ordered by start date,
	// excluding the booking with excludeID. Pass excludeID == "" to list all.
	ListForSpot(ctx context.Context, spotID, excludeID string) ([]models.Booking, error)
	// ListForUser returns all bookings held by a user ordered by start date.
	ListForUser(ctx context.Context, userID string) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id string) error
}
