package guestRepo

import (
	"context"
	"fmt"
	"time"

	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoGuestRepo struct {
	coll *mongo.Collection
}

// NewMongoGuestRepo constructs a new MongoDB GuestRepository.
func NewMongoGuestRepo() GuestRepository {
	repo := &mongoGuestRepo{coll: database.Database().Collection("guests")}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create guest indexes: %v\n", err)
	}
	return repo
}

// EnsureIndexes creates the necessary indexes on the guests collection.
func (r *mongoGuestRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_id")},
		{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: 1}}, Options: options.Index().SetName("owner_created_idx")},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create guest indexes: %w", err)
	}
	return nil
}

func (r *mongoGuestRepo) Create(ctx context.Context, guest *models.Guest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if guest.CreatedAt.IsZero() {
		guest.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, guest); err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

func (r *mongoGuestRepo) GetByID(ctx context.Context, id string) (*models.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var guest models.Guest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&guest); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch guest %s: %w", id, err)
	}
	return &guest, nil
}

func (r *mongoGuestRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	guests := []models.Guest{}
	if err := cursor.All(ctx, &guests); err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *mongoGuestRepo) Delete(ctx context.Context, ownerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
