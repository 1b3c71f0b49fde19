package userRepo

import (
	"context"
	"errors"

	"salonbook/models"
)

// ErrNotFound is returned when no user matches.
var ErrNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, including the password hash.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByTokenHash retrieves the user currently holding the given session token.
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error)
	// UpdateSetDocument applies a $set document to the user.
	UpdateSetDocument(ctx context.Context, id string, updateDoc map[string]interface{}) error
	// SetTokenHash stores (or clears, with "") the hash of the active session token.
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	// SetRole changes the user's role.
	SetRole(ctx context.Context, id string, role models.Role) error
}
