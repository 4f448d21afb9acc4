package spotRepo

import (
	"context"

	"spotbook/models"
)

// SpotRepository defines the read-only spot lookups the booking core needs.
type SpotRepository interface {
	// GetByID returns the spot or nil when no spot has the given id.
	GetByID(ctx context.Context, id string) (*models.Spot, error)
}
