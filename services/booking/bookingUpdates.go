package booking

import (
	"context"
	"fmt"

	"salonbook/database/repository"
	"salonbook/models"
	"salonbook/services/availability"
	"salonbook/utils"

	"go.uber.org/zap"
)

// allowedFrom lists, per target status, the statuses a designer may move from.
var allowedFrom = map[models.AppointmentStatus][]models.AppointmentStatus{
	availability.StatusConfirmed: {availability.StatusPending},
	availability.StatusCancelled: {availability.StatusPending, availability.StatusConfirmed},
	availability.StatusCompleted: {availability.StatusConfirmed},
}

// CanTransition reports whether from -> to is a legal designer transition.
func CanTransition(from, to models.AppointmentStatus) bool {
	for _, s := range allowedFrom[to] {
		if s == from {
			return true
		}
	}
	return false
}

// ListSalonAppointments returns the appointments of every salon ownerID runs,
// optionally restricted to one date.
func (s *DefaultBookingService) ListSalonAppointments(ctx context.Context, ownerID string, filter ListFilter, date string) ([]models.Appointment, error) {
	ids, err := s.Salons.ListIDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salons: %w", err)
	}
	apts, err := s.Appointments.ListBySalons(ctx, ids, date)
	if err != nil {
		return nil, err
	}
	if filter == FilterAll {
		return apts, nil
	}
	upcoming, past := partition(apts, s.now())
	if filter == FilterPast {
		return past, nil
	}
	return upcoming, nil
}

// UpdateStatus moves an appointment of one of ownerID's salons along its lifecycle.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, ownerID, appointmentID string, status models.AppointmentStatus) (*models.Appointment, error) {
	if !status.Valid() {
		return nil, ErrInvalidTransition
	}
	apt, err := s.loadAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	salon, err := s.loadSalon(ctx, apt.SalonID)
	if err != nil {
		return nil, err
	}
	if salon.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	if !CanTransition(apt.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.Appointments.UpdateStatus(ctx, apt.ID, allowedFrom[status], status, ""); err != nil {
		return nil, mapStatusError(err)
	}
	if !status.Blocking() {
		s.invalidate(ctx, apt.SalonID, apt.Date)
	}

	utils.GetLogger().Info("Appointment status updated",
		zap.String("appointmentID", apt.ID),
		zap.String("from", string(apt.Status)), zap.String("to", string(status)))
	apt.Status = status
	return apt, nil
}

// CompletePast marks confirmed appointments that have ended as completed.
func (s *DefaultBookingService) CompletePast(ctx context.Context) (int64, error) {
	n, err := s.Appointments.CompleteEnded(ctx, repository.CutoffAt(s.now()))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		utils.GetLogger().Info("Completed ended appointments", zap.Int64("count", n))
	}
	return n, nil
}
