package models

import "time"

// Guest is a person a user books on behalf of.
type Guest struct {
	ID         string    `bson:"id" json:"id"`
	OwnerID    string    `bson:"ownerId" json:"owner_id"`
	FullName   string    `bson:"fullName" json:"full_name"`
	Gender     Gender    `bson:"gender" json:"gender"`
	Age        int       `bson:"age" json:"age,omitempty"`
	HairLength string    `bson:"hairLength,omitempty" json:"hair_length,omitempty"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"created_at"`
}

type CreateGuestRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Gender     Gender `json:"gender" binding:"required"`
	Age        int    `json:"age"`
	HairLength string `json:"hair_length"`
	Notes      string `json:"notes"`
}
