package models

import "time"

// ReminderPayload is the message enqueued for an upcoming-booking reminder.
type ReminderPayload struct {
	BookingID string    `json:"bookingId"`
	UserID    string    `json:"userId"`
	SpotName  string    `json:"spotName"`
	StartDate time.Time `json:"startDate"`
}
