// File: database/repository/user/userMongoCrud.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc map[string]interface{}) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range updateDoc {
		set[k] = v
	}
	// Wrap in $set to comply with MongoDB update syntax
	update := bson.M{"$set": set}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetTokenHash stores the active session token hash; an empty hash signs the user out.
func (r *MongoUserRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	return r.UpdateSetDocument(ctx, id, bson.M{"tokenHash": tokenHash})
}

func (r *MongoUserRepo) SetRole(ctx context.Context, id string, role models.Role) error {
	return r.UpdateSetDocument(ctx, id, bson.M{"role": role})
}
