// FILE: database/repository/appointment/indexes.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
func (r *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on appointment ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Availability and overlap queries
		{
			Keys:    bson.D{{Key: "salonId", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().SetName("salon_date_status_start_idx"),
		},
		// User history
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("user_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "guestId", Value: 1}},
			Options: options.Index().SetName("guest_idx").SetSparse(true),
		},
		// Completion sweep
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "date", Value: 1}, {Key: "endTime", Value: 1}},
			Options: options.Index().SetName("status_date_end_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}

	// One lock document per salon day.
	_, err = r.locks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "salonId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_salon_date"),
	})
	if err != nil {
		return fmt.Errorf("failed to create appointment lock index: %w", err)
	}
	return nil
}
