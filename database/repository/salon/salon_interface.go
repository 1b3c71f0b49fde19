package salonRepo

import (
	"context"
	"errors"

	"salonbook/models"
)

// ErrNotFound is returned when no salon matches.
var ErrNotFound = errors.New("salon not found")

// SalonRepository defines methods for salon data access.
type SalonRepository interface {
	Create(ctx context.Context, salon *models.Salon) error
	GetByID(ctx context.Context, id string) (*models.Salon, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Salon, error)
	// ListIDsByOwner returns the IDs of every salon owned by ownerID.
	ListIDsByOwner(ctx context.Context, ownerID string) ([]string, error)
	Update(ctx context.Context, salon *models.Salon) error
	// SearchNearby returns salons within criteria.RadiusKm, nearest first.
	SearchNearby(ctx context.Context, criteria models.SalonSearchCriteria) ([]models.Salon, error)
}
