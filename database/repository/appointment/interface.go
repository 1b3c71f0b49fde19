// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"

	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no appointment matches.
	ErrNotFound = errors.New("appointment not found")
	// ErrOverlap is returned by CreateIfFree when a blocking appointment intersects the new one.
	ErrOverlap = errors.New("appointment overlaps an existing booking")
	// ErrStatusConflict is returned when a conditional status change finds the appointment in another state.
	ErrStatusConflict = errors.New("appointment status changed concurrently")
)

// Cutoff is a wall-clock instant in the salon's timezone, split the way appointments are stored.
type Cutoff struct {
	Date   string
	Minute models.TimeOfDay
}

type AppointmentRepository interface {
	// CreateIfFree inserts apt unless a blocking appointment at the same salon intersects it.
	CreateIfFree(ctx context.Context, apt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// ListBySalonAndDate returns the salon's appointments on date; an empty statuses slice means all.
	ListBySalonAndDate(ctx context.Context, salonID, date string, statuses []models.AppointmentStatus) ([]models.Appointment, error)
	// ListByUser returns the user's appointments with fromDate <= date <= toDate; empty bounds are open.
	ListByUser(ctx context.Context, userID, fromDate, toDate string) ([]models.Appointment, error)
	// ListBySalons returns appointments of any of salonIDs, optionally restricted to one date.
	ListBySalons(ctx context.Context, salonIDs []string, date string) ([]models.Appointment, error)
	// UpdateStatus moves an appointment to `to` only if its current status is one of from.
	UpdateStatus(ctx context.Context, id string, from []models.AppointmentStatus, to models.AppointmentStatus, note string) error
	Delete(ctx context.Context, id string) error
	// CompleteEnded marks confirmed appointments ending at or before cutoff as completed.
	CompleteEnded(ctx context.Context, cutoff Cutoff) (int64, error)
	// CancelFutureForGuest cancels the guest's blocking appointments starting after
	// cutoff and returns them as they were before the change.
	CancelFutureForGuest(ctx context.Context, guestID string, cutoff Cutoff) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
	// locks holds one document per salon day, written by every booking transaction.
	locks *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &mongoAppointmentRepo{
		client: database.MongoClient,
		coll:   database.Database().Collection("appointments"),
		locks:  database.Database().Collection("appointment_locks"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create appointment indexes: %v\n", err)
	}
	return repo
}
