package booking

import (
	"context"
	"fmt"
	"time"

	"spotbook/models"
	"spotbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates and persists a new booking against a spot. It runs
// the same date-shape and conflict gates as an update, with no booking
// excluded from the comparison set.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, actorID, spotID string, start, end time.Time) (*models.Booking, error) {
	spot, err := s.SpotRepo.GetByID(ctx, spotID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spot %s: %w", spotID, err)
	}
	if spot == nil {
		return nil, &NotFoundError{Resource: "Spot"}
	}
	// Owners don't book their own spots.
	if spot.OwnerID == actorID {
		return nil, &ForbiddenError{}
	}

	now := s.Clock.Now()
	candidate := models.Interval{Start: start, End: end}
	if errs := validateDates(candidate, now); len(errs) > 0 {
		return nil, &InvalidDatesError{Errors: errs}
	}

	others, err := s.Repo.ListForSpot(ctx, spotID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for spot %s: %w", spotID, err)
	}
	if report := detectConflicts(candidate, others); len(report) > 0 {
		return nil, &ConflictError{Errors: report}
	}

	b := &models.Booking{
		ID:        uuid.New().String(),
		SpotID:    spotID,
		UserID:    actorID,
		StartDate: start,
		EndDate:   end,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.scheduleReminder(b, spot.Name)
	return b, nil
}

// UpdateBookingDates moves an existing booking to a new date range. The
// pipeline is fixed and terminal on first failure: authorization, past-end
// freeze, date-shape validation, then the conflict passes against every
// other booking on the same spot.
func (s *DefaultBookingService) UpdateBookingDates(ctx context.Context, actorID, bookingID string, start, end time.Time) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "Booking"}
	}

	if err := authorizeModify(b, actorID); err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	if err := checkNotPastEnd(b, now); err != nil {
		return nil, err
	}

	candidate := models.Interval{Start: start, End: end}
	if errs := validateDates(candidate, now); len(errs) > 0 {
		return nil, &InvalidDatesError{Errors: errs}
	}

	// The booking under modification is excluded at the query level so it
	// never conflicts with itself.
	others, err := s.Repo.ListForSpot(ctx, b.SpotID, b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for spot %s: %w", b.SpotID, err)
	}
	if report := detectConflicts(candidate, others); len(report) > 0 {
		return nil, &ConflictError{Errors: report}
	}

	b.StartDate = start
	b.EndDate = end
	b.UpdatedAt = now
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", bookingID, err)
	}

	s.scheduleReminder(b, s.spotName(ctx, b.SpotID))
	return b, nil
}

// CancelBooking deletes a booking. The holder or the spot's owner may cancel;
// bookings currently in progress are immutable.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, actorID, bookingID string) error {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if b == nil {
		return &NotFoundError{Resource: "Booking"}
	}

	spot, err := s.SpotRepo.GetByID(ctx, b.SpotID)
	if err != nil {
		return fmt.Errorf("failed to fetch spot %s: %w", b.SpotID, err)
	}
	if err := authorizeCancel(b, spot, actorID); err != nil {
		return err
	}

	if err := checkNotInProgress(b, s.Clock.Now()); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, b.ID); err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", bookingID, err)
	}
	return nil
}

// scheduleReminder enqueues an upcoming-booking reminder. Failures are logged
// and swallowed; reminders never block a mutation that already persisted.
func (s *DefaultBookingService) scheduleReminder(b *models.Booking, spotName string) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.ScheduleBookingReminder(b, spotName); err != nil {
		utils.GetLogger().Warn("failed to schedule booking reminder",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) spotName(ctx context.Context, spotID string) string {
	spot, err := s.SpotRepo.GetByID(ctx, spotID)
	if err != nil || spot == nil {
		return ""
	}
	return spot.Name
}
