// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonbook/models"
	"salonbook/services/availability"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIfFree bumps the day lock of apt's salon, then runs the overlap check
// and the insert in the same transaction. Every booking of a salon day writes
// the same lock document, so concurrent transactions conflict on it and one of
// them is retried against the committed book.
func (r *mongoAppointmentRepo) CreateIfFree(ctx context.Context, apt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.locks.UpdateOne(sc, dayLockFilter(apt.SalonID, apt.Date), dayLockUpdate(time.Now()),
			options.Update().SetUpsert(true)); err != nil {
			return nil, err
		}
		n, err := r.coll.CountDocuments(sc, overlapFilter(apt.SalonID, apt.Date, apt.StartTime, apt.EndTime), options.Count().SetLimit(1))
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, ErrOverlap
		}
		now := time.Now()
		apt.CreatedAt = now
		apt.UpdatedAt = now
		if _, err := r.coll.InsertOne(sc, apt); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if errors.Is(err, ErrOverlap) {
		return ErrOverlap
	}
	if err != nil {
		return fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var apt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&apt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &apt, nil
}

func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id string, from []models.AppointmentStatus, to models.AppointmentStatus, note string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"status": to, "updatedAt": time.Now()}
	if note != "" {
		set["cancellationReason"] = note
	}
	filter := bson.M{"id": id, "status": bson.M{"$in": from}}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update appointment %s: %w", id, err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// Distinguish a missing document from one in the wrong state.
	n, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return ErrStatusConflict
}

func (r *mongoAppointmentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoAppointmentRepo) CompleteEnded(ctx context.Context, cutoff Cutoff) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": availability.StatusCompleted, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateMany(ctx, endedFilter(cutoff), update)
	if err != nil {
		return 0, fmt.Errorf("failed to complete ended appointments: %w", err)
	}
	return res.ModifiedCount, nil
}

// CancelFutureForGuest cancels the guest's future blocking appointments and
// returns the ones it cancelled.
func (r *mongoAppointmentRepo) CancelFutureForGuest(ctx context.Context, guestID string, cutoff Cutoff) ([]models.Appointment, error) {
	apts, err := r.find(ctx, futureGuestFilter(guestID, cutoff))
	if err != nil {
		return nil, fmt.Errorf("failed to list guest appointments: %w", err)
	}
	if len(apts) == 0 {
		return apts, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	ids := make([]string, 0, len(apts))
	for _, a := range apts {
		ids = append(ids, a.ID)
	}
	filter := bson.M{"id": bson.M{"$in": ids}, "status": bson.M{"$in": blockingStatuses}}
	update := bson.M{"$set": bson.M{
		"status":             availability.StatusCancelled,
		"cancellationReason": "guest removed",
		"updatedAt":          time.Now(),
	}}
	if _, err := r.coll.UpdateMany(ctx, filter, update); err != nil {
		return nil, fmt.Errorf("failed to cancel guest appointments: %w", err)
	}
	return apts, nil
}
