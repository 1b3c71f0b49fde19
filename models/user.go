// models/user.go
package models

import "time"

// Gender drives service duration and price.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool { return g == GenderMale || g == GenderFemale }

// Role separates customers from salon owners ("designers").
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDesigner Role = "designer"
)

// User is a customer or designer account together with its profile.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	FullName     string    `bson:"fullName" json:"full_name"`
	Phone        string    `bson:"phone" json:"phone"`
	Gender       Gender    `bson:"gender" json:"gender,omitempty"`
	Age          int       `bson:"age" json:"age,omitempty"`
	HairLength   string    `bson:"hairLength,omitempty" json:"hair_length,omitempty"` // short, medium or long
	HairColor    string    `bson:"hairColor,omitempty" json:"hair_color,omitempty"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Role         Role      `bson:"role" json:"role"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updated_at"`
}

// SignUpRequest is the registration payload.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	Gender   Gender `json:"gender"`
	Age      int    `json:"age"`
}

// SignInRequest is the login payload.
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the fields a user may change. Nil means unchanged.
type UpdateProfileRequest struct {
	FullName   *string `json:"full_name"`
	Phone      *string `json:"phone"`
	Gender     *Gender `json:"gender"`
	Age        *int    `json:"age"`
	HairLength *string `json:"hair_length"`
	HairColor  *string `json:"hair_color"`
	Notes      *string `json:"notes"`
}

// AuthResponse is returned on sign-up and sign-in.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
