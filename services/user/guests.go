package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"salonbook/database/repository"
	guestRepo "salonbook/database/repository/guest"
	"salonbook/models"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultUserService) AddGuest(ctx context.Context, ownerID string, req models.CreateGuestRequest) (*models.Guest, error) {
	name := strings.TrimSpace(req.FullName)
	if name == "" {
		return nil, ValidationError{Field: "full_name", Reason: "is required"}
	}
	if !req.Gender.Valid() {
		return nil, ValidationError{Field: "gender", Reason: "must be male or female"}
	}
	if err := validateAge(req.Age); err != nil {
		return nil, err
	}

	g := &models.Guest{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		FullName:   name,
		Gender:     req.Gender,
		Age:        req.Age,
		HairLength: req.HairLength,
		Notes:      req.Notes,
		CreatedAt:  s.now(),
	}
	if err := s.Guests.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to add guest: %w", err)
	}
	return g, nil
}

func (s *DefaultUserService) ListGuests(ctx context.Context, ownerID string) ([]models.Guest, error) {
	return s.Guests.ListByOwner(ctx, ownerID)
}

// DeleteGuest removes one of the owner's guests and cancels the guest's
// appointments that have not started yet.
func (s *DefaultUserService) DeleteGuest(ctx context.Context, ownerID, guestID string) error {
	if err := s.Guests.Delete(ctx, ownerID, guestID); err != nil {
		if errors.Is(err, guestRepo.ErrNotFound) {
			return ErrGuestNotFound
		}
		return fmt.Errorf("failed to delete guest: %w", err)
	}

	if s.Appointments == nil {
		return nil
	}
	cutoff := repository.CutoffAt(s.now().In(s.location()))
	cancelled, err := s.Appointments.CancelFutureForGuest(ctx, guestID, cutoff)
	if err != nil {
		utils.GetLogger().Error("DeleteGuest: failed to cancel guest appointments",
			zap.String("guestID", guestID), zap.Error(err))
		return fmt.Errorf("guest removed but appointments could not be cancelled: %w", err)
	}
	s.releaseDays(ctx, cancelled)
	utils.GetLogger().Info("Guest removed",
		zap.String("guestID", guestID), zap.Int("cancelledAppointments", len(cancelled)))
	return nil
}

// releaseDays invalidates cached availability for each salon day that had a
// cancelled appointment.
func (s *DefaultUserService) releaseDays(ctx context.Context, cancelled []models.Appointment) {
	if s.Availability == nil {
		return
	}
	seen := make(map[string]bool)
	for _, a := range cancelled {
		key := a.SalonID + "|" + a.Date
		if seen[key] {
			continue
		}
		seen[key] = true
		if err := s.Availability.Invalidate(ctx, a.SalonID, a.Date); err != nil {
			utils.GetLogger().Warn("DeleteGuest: availability cache invalidation failed",
				zap.String("salonID", a.SalonID), zap.String("date", a.Date), zap.Error(err))
		}
	}
}
