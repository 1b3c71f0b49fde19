package salonRepo

import (
	"context"
	"fmt"
	"time"

	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// buildNearbyPipeline returns the aggregation used by SearchNearby.
func buildNearbyPipeline(criteria models.SalonSearchCriteria) mongo.Pipeline {
	var pipeline mongo.Pipeline

	// 1) $geoNear: must come first to filter+sort by distance
	pipeline = append(pipeline, bson.D{
		{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: bson.A{criteria.Longitude, criteria.Latitude}},
			}},
			{Key: "distanceField", Value: "distance"},
			{Key: "spherical", Value: true},
			{Key: "maxDistance", Value: criteria.RadiusKm * 1000},
		}},
	})

	// 2) $match: only salons offering the requested kind of service
	if criteria.ServiceType != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"services.type": bson.M{"$regex": criteria.ServiceType, "$options": "i"},
		}}})
	}

	// 3) cap the result set
	pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(50)}})
	return pipeline
}

func (r *MongoSalonRepo) SearchNearby(ctx context.Context, criteria models.SalonSearchCriteria) ([]models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, buildNearbyPipeline(criteria))
	if err != nil {
		return nil, fmt.Errorf("aggregation query failed: %w", err)
	}
	defer cursor.Close(ctx)

	salons := []models.Salon{}
	if err := cursor.All(ctx, &salons); err != nil {
		return nil, fmt.Errorf("failed to decode salons: %w", err)
	}
	return salons, nil
}
