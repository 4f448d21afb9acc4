package models

import "time"

// Booking represents a time-bounded claim on a spot by a user.
type Booking struct {
	ID        string    `bson:"id" json:"id"`                // Unique booking identifier (UUID)
	SpotID    string    `bson:"spot_id" json:"spotId"`       // Spot the booking is made against
	UserID    string    `bson:"user_id" json:"userId"`       // User who holds the booking
	StartDate time.Time `bson:"start_date" json:"startDate"` // Booking start instant (UTC)
	EndDate   time.Time `bson:"end_date" json:"endDate"`     // Booking end instant (UTC)
	CreatedAt time.Time `bson:"created_at" json:"createdAt"` // Timestamp when booking was created
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"` // Timestamp of the last mutation
}

// Interval returns the booking's date range as an interval value.
func (b Booking) Interval() Interval {
	return Interval{Start: b.StartDate, End: b.EndDate}
}
