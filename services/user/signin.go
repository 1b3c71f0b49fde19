package user

import (
	"context"
	"errors"
	"fmt"

	userRepo "salonbook/database/repository/user"
	"salonbook/models"
	"salonbook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) SignIn(ctx context.Context, req models.SignInRequest) (*models.AuthResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// Fetch user record.
	userRec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		utils.GetLogger().Error("SignIn: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	// Verify password.
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Drop the cached session of the token being replaced.
	if userRec.TokenHash != "" && s.Sessions != nil {
		if err := utils.DeleteAuthSession(ctx, s.Sessions, userRec.TokenHash); err != nil {
			utils.GetLogger().Warn("SignIn: failed to clear old session", zap.Error(err))
		}
	}

	return s.issueToken(ctx, userRec)
}

// issueToken signs a fresh token, stores its hash and caches the session.
func (s *DefaultUserService) issueToken(ctx context.Context, u *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, string(u.Role), s.tokenTTL())
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, u.ID, tokenHash); err != nil {
		utils.GetLogger().Error("issueToken: failed to store token hash", zap.String("userID", u.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	s.cacheSession(ctx, tokenHash, utils.AuthSession{UserID: u.ID, Role: string(u.Role)})

	u.PasswordHash = ""
	u.TokenHash = ""
	return &models.AuthResponse{Token: token, User: u}, nil
}

func (s *DefaultUserService) cacheSession(ctx context.Context, tokenHash string, session utils.AuthSession) {
	if s.Sessions == nil {
		return
	}
	if err := utils.SaveAuthSession(ctx, s.Sessions, tokenHash, session); err != nil {
		utils.GetLogger().Warn("failed to cache auth session", zap.Error(err))
	}
}

// SignOut clears the stored token hash so the current token stops working.
// tokenHash, when known, also evicts the cached session.
func (s *DefaultUserService) SignOut(ctx context.Context, userID, tokenHash string) error {
	if err := s.Repo.SetTokenHash(ctx, userID, ""); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to sign out: %w", err)
	}
	if tokenHash != "" && s.Sessions != nil {
		if err := utils.DeleteAuthSession(ctx, s.Sessions, tokenHash); err != nil {
			utils.GetLogger().Warn("SignOut: failed to clear session", zap.Error(err))
		}
	}
	utils.GetLogger().Info("User signed out", zap.String("userID", userID))
	return nil
}

// Authenticate resolves a bearer token to a session. The token must carry a
// valid signature and be the one most recently issued to its user.
func (s *DefaultUserService) Authenticate(ctx context.Context, token string) (*utils.AuthSession, error) {
	claims, err := utils.ParseClaims(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	tokenHash := utils.HashToken(token)

	if s.Sessions != nil {
		session, err := utils.GetAuthSession(ctx, s.Sessions, tokenHash)
		if err == nil && session.UserID == claims.Subject {
			return session, nil
		}
		if err != nil && !errors.Is(err, redis.Nil) {
			utils.GetLogger().Warn("Authenticate: session cache unavailable", zap.Error(err))
		}
	}

	u, err := s.Repo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to verify session: %w", err)
	}
	if u.ID != claims.Subject {
		return nil, ErrUnauthorized
	}

	session := utils.AuthSession{UserID: u.ID, Role: string(u.Role)}
	s.cacheSession(ctx, tokenHash, session)
	return &session, nil
}

// ChangeRole stores the user's new role and drops the user's cached session so
// the next request sees it.
func (s *DefaultUserService) ChangeRole(ctx context.Context, userID string, role models.Role) error {
	if err := s.Repo.SetRole(ctx, userID, role); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to change role: %w", err)
	}
	if s.Sessions != nil {
		if err := utils.DeleteUserAuthSession(ctx, s.Sessions, userID); err != nil {
			utils.GetLogger().Warn("ChangeRole: failed to clear session", zap.String("userID", userID), zap.Error(err))
		}
	}
	utils.GetLogger().Info("User role changed", zap.String("userID", userID), zap.String("role", string(role)))
	return nil
}
