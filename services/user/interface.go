package user

import (
	"context"
	"time"

	"salonbook/database/repository"
	"salonbook/models"
	"salonbook/utils"

	"github.com/go-redis/redis/v8"
)

type UserService interface {
	// Authentication
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error)
	SignIn(ctx context.Context, req models.SignInRequest) (*models.AuthResponse, error)
	SignOut(ctx context.Context, userID, tokenHash string) error
	Authenticate(ctx context.Context, token string) (*utils.AuthSession, error)
	ChangeRole(ctx context.Context, userID string, role models.Role) error

	// Profile
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error)

	// Guests
	AddGuest(ctx context.Context, ownerID string, req models.CreateGuestRequest) (*models.Guest, error)
	ListGuests(ctx context.Context, ownerID string) ([]models.Guest, error)
	DeleteGuest(ctx context.Context, ownerID, guestID string) error
}

// AvailabilityInvalidator drops cached availability for one salon day.
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, salonID, date string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo         repository.UserRepository
	Guests       repository.GuestRepository
	Appointments repository.AppointmentRepository
	// Availability is told about days freed by guest removal; nil skips it.
	Availability AvailabilityInvalidator
	// Sessions caches token lookups; nil disables the cache.
	Sessions *redis.Client
	TokenTTL time.Duration
	// Location is the salon timezone used to decide which guest appointments are in the future.
	Location *time.Location
	Now      func() time.Time
}

func (s *DefaultUserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultUserService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

func (s *DefaultUserService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 72 * time.Hour
}
