package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "salonbook/database/repository/appointment"
	"salonbook/models"
	"salonbook/services/availability"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Book reserves req.StartTime for userID (or one of the user's guests). The
// start must be in the freshly computed availability, and the insert is
// guarded by a transactional overlap check against concurrent bookings.
func (s *DefaultBookingService) Book(ctx context.Context, userID string, req models.BookAppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	now := s.now()
	if _, err := time.ParseInLocation(availability.DateLayout, req.Date, now.Location()); err != nil {
		return nil, ErrInvalidDate
	}

	salon, err := s.loadSalon(ctx, req.SalonID)
	if err != nil {
		return nil, err
	}
	svc, found := salon.ServiceByID(req.ServiceID)
	if !found {
		return nil, ErrServiceNotFound
	}
	gender, err := s.resolveGender(ctx, userID, req.GuestID)
	if err != nil {
		return nil, err
	}
	duration := svc.DurationFor(gender)

	// Re-check against the current book; the client's list may be stale.
	slots, ok := s.computeSlots(ctx, salon, req.Date, duration, now)
	if !ok || !containsStart(slots, req.StartTime) {
		logger.Info("Book: start not available",
			zap.String("salonID", salon.ID), zap.String("date", req.Date), zap.String("start", req.StartTime.String()))
		return nil, ErrSlotUnavailable
	}

	apt := &models.Appointment{
		ID:          uuid.New().String(),
		SalonID:     salon.ID,
		UserID:      userID,
		GuestID:     req.GuestID,
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.StartTime.Add(duration),
		Duration:    duration,
		TotalPrice:  svc.PriceFor(gender),
		Status:      availability.StatusConfirmed,
		Notes:       req.Notes,
	}
	if err := s.Appointments.CreateIfFree(ctx, apt); err != nil {
		if errors.Is(err, appointmentRepo.ErrOverlap) {
			return nil, ErrSlotUnavailable
		}
		logger.Error("Book: insert failed", zap.String("salonID", salon.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.invalidate(ctx, salon.ID, req.Date)
	logger.Info("Appointment booked",
		zap.String("appointmentID", apt.ID), zap.String("salonID", salon.ID),
		zap.String("date", apt.Date), zap.String("start", apt.StartTime.String()))
	return apt, nil
}

func containsStart(slots []availability.TimeSlot, start availability.TimeOfDay) bool {
	for _, slot := range slots {
		if slot.StartTime == start && slot.IsAvailable {
			return true
		}
	}
	return false
}

func (s *DefaultBookingService) invalidate(ctx context.Context, salonID, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, salonID, date); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed",
			zap.String("salonID", salonID), zap.String("date", date), zap.Error(err))
	}
}
