package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "salonbook/database/repository/user"
	"salonbook/models"
	"salonbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func (s *DefaultUserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return u, nil
}

// UpdateProfile applies the non-nil fields of req.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	updateDoc := bson.M{}

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return nil, ValidationError{Field: "full_name", Reason: "cannot be empty"}
		}
		updateDoc["fullName"] = name
	}
	if req.Phone != nil {
		updateDoc["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Gender != nil {
		if !req.Gender.Valid() {
			return nil, ValidationError{Field: "gender", Reason: "must be male or female"}
		}
		updateDoc["gender"] = *req.Gender
	}
	if req.Age != nil {
		if err := validateAge(*req.Age); err != nil {
			return nil, err
		}
		updateDoc["age"] = *req.Age
	}
	if req.HairLength != nil {
		switch *req.HairLength {
		case "", "short", "medium", "long":
			updateDoc["hairLength"] = *req.HairLength
		default:
			return nil, ValidationError{Field: "hair_length", Reason: "must be short, medium or long"}
		}
	}
	if req.HairColor != nil {
		updateDoc["hairColor"] = *req.HairColor
	}
	if req.Notes != nil {
		updateDoc["notes"] = *req.Notes
	}

	if len(updateDoc) > 0 {
		if err := s.Repo.UpdateSetDocument(ctx, userID, updateDoc); err != nil {
			if errors.Is(err, userRepo.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			utils.GetLogger().Error("UpdateProfile: update failed", zap.String("userID", userID), zap.Error(err))
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}
	return s.GetProfile(ctx, userID)
}
