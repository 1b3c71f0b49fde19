package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var chronological = bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}}

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(chronological))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	apts := []models.Appointment{}
	if err := cursor.All(ctx, &apts); err != nil {
		return nil, err
	}
	return apts, nil
}

func (r *mongoAppointmentRepo) ListBySalonAndDate(ctx context.Context, salonID, date string, statuses []models.AppointmentStatus) ([]models.Appointment, error) {
	filter := bson.M{"salonId": salonID, "date": date}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	apts, err := r.find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for salon %s on %s: %w", salonID, date, err)
	}
	return apts, nil
}

func (r *mongoAppointmentRepo) ListByUser(ctx context.Context, userID, fromDate, toDate string) ([]models.Appointment, error) {
	filter := bson.M{"userId": userID}
	if rng := dateRange(fromDate, toDate); len(rng) > 0 {
		filter["date"] = rng
	}
	apts, err := r.find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for user %s: %w", userID, err)
	}
	return apts, nil
}

func (r *mongoAppointmentRepo) ListBySalons(ctx context.Context, salonIDs []string, date string) ([]models.Appointment, error) {
	if len(salonIDs) == 0 {
		return []models.Appointment{}, nil
	}
	filter := bson.M{"salonId": bson.M{"$in": salonIDs}}
	if date != "" {
		filter["date"] = date
	}
	apts, err := r.find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list salon appointments: %w", err)
	}
	return apts, nil
}
