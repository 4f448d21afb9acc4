package models

import "time"

// Spot is a bookable entity. The booking core only ever reads spots;
// ownership determines who may cancel bookings made against one.
type Spot struct {
	ID          string    `bson:"id" json:"id"`
	OwnerID     string    `bson:"owner_id" json:"ownerId"`
	Name        string    `bson:"name" json:"name"`
	Address     string    `bson:"address" json:"address"`
	City        string    `bson:"city" json:"city"`
	Country     string    `bson:"country" json:"country"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
