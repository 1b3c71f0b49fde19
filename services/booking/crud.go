package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	appointmentRepo "salonbook/database/repository/appointment"
	"salonbook/models"
	"salonbook/services/availability"
	"salonbook/utils"

	"go.uber.org/zap"
)

// isUpcoming reports whether a still-active appointment has not ended at now.
func isUpcoming(a models.Appointment, now time.Time) bool {
	if !a.Status.Blocking() {
		return false
	}
	day, err := time.ParseInLocation(availability.DateLayout, a.Date, now.Location())
	if err != nil {
		return false
	}
	return a.EndTime.On(day).After(now)
}

// partition splits appointments into upcoming (soonest first) and past (most recent first).
func partition(apts []models.Appointment, now time.Time) (upcoming, past []models.Appointment) {
	upcoming = []models.Appointment{}
	past = []models.Appointment{}
	for _, a := range apts {
		if isUpcoming(a, now) {
			upcoming = append(upcoming, a)
		} else {
			past = append(past, a)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return before(upcoming[i], upcoming[j]) })
	sort.SliceStable(past, func(i, j int) bool { return before(past[j], past[i]) })
	return upcoming, past
}

func before(a, b models.Appointment) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.StartTime < b.StartTime
}

func (s *DefaultBookingService) ListUpcoming(ctx context.Context, userID string) ([]models.Appointment, error) {
	now := s.now()
	// Anything still upcoming started no earlier than yesterday.
	from := now.AddDate(0, 0, -1).Format(availability.DateLayout)
	apts, err := s.Appointments.ListByUser(ctx, userID, from, "")
	if err != nil {
		return nil, err
	}
	upcoming, _ := partition(apts, now)
	return upcoming, nil
}

func (s *DefaultBookingService) ListPast(ctx context.Context, userID string) ([]models.Appointment, error) {
	apts, err := s.Appointments.ListByUser(ctx, userID, "", "")
	if err != nil {
		return nil, err
	}
	_, past := partition(apts, s.now())
	return past, nil
}

func (s *DefaultBookingService) loadAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	apt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	return apt, nil
}

// Cancel lets the customer who booked, or the salon's owner, cancel a pending or confirmed appointment.
func (s *DefaultBookingService) Cancel(ctx context.Context, userID, appointmentID, reason string) (*models.Appointment, error) {
	apt, err := s.loadAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if apt.UserID != userID {
		salon, err := s.loadSalon(ctx, apt.SalonID)
		if err != nil || salon.OwnerID != userID {
			return nil, ErrForbidden
		}
	}
	if !apt.Status.Blocking() {
		return nil, ErrInvalidTransition
	}

	if err := s.Appointments.UpdateStatus(ctx, apt.ID, blockingStatuses, availability.StatusCancelled, reason); err != nil {
		return nil, mapStatusError(err)
	}
	s.invalidate(ctx, apt.SalonID, apt.Date)

	apt.Status = availability.StatusCancelled
	apt.CancelReason = reason
	utils.GetLogger().Info("Appointment cancelled", zap.String("appointmentID", apt.ID), zap.String("by", userID))
	return apt, nil
}

// Delete removes the caller's own appointment record.
func (s *DefaultBookingService) Delete(ctx context.Context, userID, appointmentID string) error {
	apt, err := s.loadAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}
	if apt.UserID != userID {
		return ErrForbidden
	}
	if err := s.Appointments.Delete(ctx, apt.ID); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	if apt.Status.Blocking() {
		s.invalidate(ctx, apt.SalonID, apt.Date)
	}
	return nil
}

func mapStatusError(err error) error {
	switch {
	case errors.Is(err, appointmentRepo.ErrNotFound):
		return ErrAppointmentNotFound
	case errors.Is(err, appointmentRepo.ErrStatusConflict):
		return ErrInvalidTransition
	default:
		return fmt.Errorf("failed to update appointment: %w", err)
	}
}
