package guestRepo

import (
	"context"
	"errors"

	"salonbook/models"
)

// ErrNotFound is returned when no guest matches.
var ErrNotFound = errors.New("guest not found")

// GuestRepository defines methods for guest data access.
type GuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	GetByID(ctx context.Context, id string) (*models.Guest, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Guest, error)
	// Delete removes the guest only when it belongs to ownerID.
	Delete(ctx context.Context, ownerID, id string) error
}
