package salon

import (
	"context"
	"fmt"

	"salonbook/database/repository"
	"salonbook/models"
)

type SalonService interface {
	SetupSalon(ctx context.Context, ownerID string, req models.SetupSalonRequest) (*models.Salon, error)
	UpdateSalon(ctx context.Context, ownerID, salonID string, req models.UpdateSalonRequest) (*models.Salon, error)
	GetSalon(ctx context.Context, salonID string) (*models.Salon, error)
	ListOwnedSalons(ctx context.Context, ownerID string) ([]models.Salon, error)
	SearchNearby(ctx context.Context, criteria models.SalonSearchCriteria) ([]models.Salon, error)
}

// RoleChanger updates a user's role together with any cached session.
type RoleChanger interface {
	ChangeRole(ctx context.Context, userID string, role models.Role) error
}

// SalonCacheInvalidator drops every cached availability day of a salon.
type SalonCacheInvalidator interface {
	InvalidateSalon(ctx context.Context, salonID string) error
}

// DefaultSalonService is the production implementation.
type DefaultSalonService struct {
	Repo  repository.SalonRepository
	Users repository.UserRepository
	// Roles promotes owners; when nil the role is written straight to Users.
	Roles RoleChanger
	// Availability is cleared after hours or services change; nil skips it.
	Availability SalonCacheInvalidator
	// DefaultRadiusKm is used when a search does not give a radius.
	DefaultRadiusKm float64
}

func NewDefaultSalonService(repo repository.SalonRepository, users repository.UserRepository, radiusKm float64) (*DefaultSalonService, error) {
	if repo == nil || users == nil {
		return nil, fmt.Errorf("salon service initialization error: one or more dependencies are nil")
	}
	return &DefaultSalonService{Repo: repo, Users: users, DefaultRadiusKm: radiusKm}, nil
}
