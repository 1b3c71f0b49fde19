package salon

import (
	"context"
	"errors"
	"fmt"
	"strings"

	salonRepo "salonbook/database/repository/salon"
	"salonbook/models"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SetupSalon creates a salon for ownerID and promotes the owner to designer.
func (s *DefaultSalonService) SetupSalon(ctx context.Context, ownerID string, req models.SetupSalonRequest) (*models.Salon, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(req.Name) == "" {
		return nil, ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(req.Address) == "" {
		return nil, ValidationError{Field: "address", Reason: "is required"}
	}
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return nil, ValidationError{Field: "location", Reason: "coordinates out of range"}
	}
	if err := ValidateBusinessHours(req.BusinessHours); err != nil {
		return nil, err
	}
	services, err := NormalizeServices(req.Services)
	if err != nil {
		return nil, err
	}

	salon := &models.Salon{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Name:          strings.TrimSpace(req.Name),
		Address:       strings.TrimSpace(req.Address),
		Phone:         req.Phone,
		Email:         req.Email,
		Location:      models.NewGeoPoint(req.Latitude, req.Longitude),
		BusinessHours: req.BusinessHours,
		Services:      services,
	}
	if err := s.Repo.Create(ctx, salon); err != nil {
		logger.Error("SetupSalon: failed to create salon", zap.String("ownerID", ownerID), zap.Error(err))
		return nil, fmt.Errorf("failed to create salon: %w", err)
	}

	if err := s.promote(ctx, ownerID); err != nil {
		logger.Error("SetupSalon: failed to promote owner", zap.String("ownerID", ownerID), zap.Error(err))
		return nil, fmt.Errorf("salon created but owner role could not be updated: %w", err)
	}

	logger.Info("Salon created", zap.String("salonID", salon.ID), zap.String("ownerID", ownerID))
	return salon, nil
}

// UpdateSalon applies req to a salon owned by ownerID.
func (s *DefaultSalonService) UpdateSalon(ctx context.Context, ownerID, salonID string, req models.UpdateSalonRequest) (*models.Salon, error) {
	salon, err := s.GetSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if salon.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ValidationError{Field: "name", Reason: "cannot be empty"}
		}
		salon.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		salon.Address = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Email != nil {
		salon.Email = *req.Email
	}
	if req.BusinessHours != nil {
		if err := ValidateBusinessHours(req.BusinessHours); err != nil {
			return nil, err
		}
		salon.BusinessHours = req.BusinessHours
	}
	if req.Services != nil {
		services, err := NormalizeServices(req.Services)
		if err != nil {
			return nil, err
		}
		salon.Services = services
	}

	if err := s.Repo.Update(ctx, salon); err != nil {
		if errors.Is(err, salonRepo.ErrNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, fmt.Errorf("failed to update salon: %w", err)
	}

	if s.Availability != nil {
		if err := s.Availability.InvalidateSalon(ctx, salon.ID); err != nil {
			utils.GetLogger().Warn("UpdateSalon: availability cache invalidation failed",
				zap.String("salonID", salon.ID), zap.Error(err))
		}
	}
	return salon, nil
}

func (s *DefaultSalonService) promote(ctx context.Context, ownerID string) error {
	if s.Roles != nil {
		return s.Roles.ChangeRole(ctx, ownerID, models.RoleDesigner)
	}
	return s.Users.SetRole(ctx, ownerID, models.RoleDesigner)
}

func (s *DefaultSalonService) GetSalon(ctx context.Context, salonID string) (*models.Salon, error) {
	salon, err := s.Repo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, fmt.Errorf("failed to load salon: %w", err)
	}
	return salon, nil
}

func (s *DefaultSalonService) ListOwnedSalons(ctx context.Context, ownerID string) ([]models.Salon, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

// SearchNearby returns salons around a point, nearest first.
func (s *DefaultSalonService) SearchNearby(ctx context.Context, criteria models.SalonSearchCriteria) ([]models.Salon, error) {
	if criteria.Latitude < -90 || criteria.Latitude > 90 || criteria.Longitude < -180 || criteria.Longitude > 180 {
		return nil, ValidationError{Field: "location", Reason: "coordinates out of range"}
	}
	if criteria.RadiusKm <= 0 {
		criteria.RadiusKm = s.DefaultRadiusKm
	}
	if criteria.RadiusKm <= 0 {
		criteria.RadiusKm = 10
	}
	return s.Repo.SearchNearby(ctx, criteria)
}
