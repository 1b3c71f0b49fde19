package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "salonbook/database/repository/user"
	"salonbook/models"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}
	if err := validateGender(req.Gender); err != nil {
		return nil, err
	}
	if err := validateAge(req.Age); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, ValidationError{Field: "full_name", Reason: "is required"}
	}

	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		logger.Error("SignUp: failed to check email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        req.Phone,
		Gender:       req.Gender,
		Age:          req.Age,
		Role:         models.RoleCustomer,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		logger.Error("SignUp: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	resp, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, err
	}
	logger.Info("User registered", zap.String("userID", u.ID))
	return resp, nil
}
