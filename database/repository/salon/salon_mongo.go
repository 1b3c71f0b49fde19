package salonRepo

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

// MongoSalonRepo implements SalonRepository using MongoDB.
type MongoSalonRepo struct {
	coll *mongo.Collection
}

// NewMongoSalonRepo creates a new instance of SalonRepository using MongoDB.
func NewMongoSalonRepo() SalonRepository {
	repo := &MongoSalonRepo{coll: database.Database().Collection("salons")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes creates indexes for frequently used fields in queries.
func (r *MongoSalonRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		{Keys: bson.D{{Key: "services.type", Value: 1}}},
		// $geoNear needs exactly one 2dsphere index on the collection.
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoSalonRepo) Create(ctx context.Context, salon *models.Salon) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	salon.CreatedAt = now
	salon.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, salon); err != nil {
		return fmt.Errorf("failed to create salon: %w", err)
	}
	return nil
}

func (r *MongoSalonRepo) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var salon models.Salon
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&salon); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching salon with id %s: %w", id, err)
	}
	return &salon, nil
}

func (r *MongoSalonRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list salons: %w", err)
	}
	defer cursor.Close(ctx)

	salons := []models.Salon{}
	if err := cursor.All(ctx, &salons); err != nil {
		return nil, fmt.Errorf("failed to decode salons: %w", err)
	}
	return salons, nil
}

func (r *MongoSalonRepo) ListIDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list salon ids: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID string `bson:"id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

// Update replaces the mutable parts of a salon.
func (r *MongoSalonRepo) Update(ctx context.Context, salon *models.Salon) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	salon.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":          salon.Name,
		"address":       salon.Address,
		"phone":         salon.Phone,
		"email":         salon.Email,
		"businessHours": salon.BusinessHours,
		"services":      salon.Services,
		"updatedAt":     salon.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": salon.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update salon with id %s: %w", salon.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
