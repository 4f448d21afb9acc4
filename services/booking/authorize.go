package booking

import "spotbook/models"

// authorizeModify allows only the booking's holder to change its dates.
func authorizeModify(b *models.Booking, actorID string) error {
	if b.UserID != actorID {
		return &ForbiddenError{}
	}
	return nil
}

// authorizeCancel allows the booking's holder or the spot's owner to cancel.
func authorizeCancel(b *models.Booking, spot *models.Spot, actorID string) error {
	if b.UserID == actorID {
		return nil
	}
	if spot != nil && spot.OwnerID == actorID {
		return nil
	}
	return &ForbiddenError{}
}
