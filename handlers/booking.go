package handlers

import (
	"errors"
	"net/http"
	"time"

	"spotbook/services/booking"
	"spotbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking service over HTTP.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// bookingDatesInput is the typed payload for create/update requests.
// Dates are RFC 3339 instants.
type bookingDatesInput struct {
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// CreateBooking handles POST /api/spots/:spotID/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input bookingDatesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	actorID := c.GetString("userID")
	b, err := h.Svc.CreateBooking(c.Request.Context(), actorID, c.Param("spotID"), input.StartDate, input.EndDate)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBooking handles PUT /api/bookings/:bookingID.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var input bookingDatesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	actorID := c.GetString("userID")
	b, err := h.Svc.UpdateBookingDates(c.Request.Context(), actorID, c.Param("bookingID"), input.StartDate, input.EndDate)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBooking handles DELETE /api/bookings/:bookingID.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	actorID := c.GetString("userID")
	if err := h.Svc.CancelBooking(c.Request.Context(), actorID, c.Param("bookingID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted"})
}

// GetBooking handles GET /api/bookings/:bookingID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Svc.GetBookingByID(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListCurrentUserBookings handles GET /api/bookings/current.
func (h *BookingHandler) ListCurrentUserBookings(c *gin.Context) {
	actorID := c.GetString("userID")
	bookings, err := h.Svc.ListUserBookings(c.Request.Context(), actorID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListSpotBookings handles GET /api/spots/:spotID/bookings. The spot's owner
// sees full booking records; everyone else only sees the date ranges.
func (h *BookingHandler) ListSpotBookings(c *gin.Context) {
	actorID := c.GetString("userID")
	bookings, isOwner, err := h.Svc.ListSpotBookings(c.Request.Context(), actorID, c.Param("spotID"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if isOwner {
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
		return
	}

	trimmed := make([]gin.H, 0, len(bookings))
	for _, b := range bookings {
		trimmed = append(trimmed, gin.H{
			"spotId":    b.SpotID,
			"startDate": b.StartDate,
			"endDate":   b.EndDate,
		})
	}
	c.JSON(http.StatusOK, gin.H{"bookings": trimmed})
}

// respondError maps the booking error taxonomy onto HTTP responses.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var (
		notFound   *booking.NotFoundError
		forbidden  *booking.ForbiddenError
		pastEnd    *booking.PastEndError
		inProgress *booking.InProgressError
		invalid    *booking.InvalidDatesError
		conflict   *booking.ConflictError
	)
	switch {
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, notFound.Error(), "")
	case errors.As(err, &forbidden):
		utils.JSONError(c, http.StatusForbidden, forbidden.Error(), "")
	case errors.As(err, &pastEnd):
		utils.JSONError(c, http.StatusForbidden, pastEnd.Error(), "")
	case errors.As(err, &inProgress):
		utils.JSONError(c, http.StatusForbidden, inProgress.Error(), "")
	case errors.As(err, &invalid):
		utils.JSONFieldErrors(c, http.StatusBadRequest, "Bad Request", invalid.Errors)
	case errors.As(err, &conflict):
		utils.JSONFieldErrors(c, http.StatusForbidden, booking.ConflictMessage, conflict.Errors)
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Internal Server Error"})
	}
}
