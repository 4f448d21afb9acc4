package booking

import (
	"context"
	"fmt"

	"spotbook/models"
)

// GetBookingByID fetches a single booking.
func (s *DefaultBookingService) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "Booking"}
	}
	return b, nil
}

// ListUserBookings returns every booking held by the given user.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

// ListSpotBookings returns a spot's bookings and whether the actor owns the
// spot. The transport layer trims holder details for non-owners.
func (s *DefaultBookingService) ListSpotBookings(ctx context.Context, actorID, spotID string) ([]models.Booking, bool, error) {
	spot, err := s.SpotRepo.GetByID(ctx, spotID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch spot %s: %w", spotID, err)
	}
	if spot == nil {
		return nil, false, &NotFoundError{Resource: "Spot"}
	}

	bookings, err := s.Repo.ListForSpot(ctx, spotID, "")
	if err != nil {
		return nil, false, fmt.Errorf("failed to list bookings for spot %s: %w", spotID, err)
	}
	return bookings, spot.OwnerID == actorID, nil
}
