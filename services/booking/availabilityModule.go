package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	guestRepo "salonbook/database/repository/guest"
	salonRepo "salonbook/database/repository/salon"
	"salonbook/models"
	"salonbook/services/availability"
	"salonbook/utils"

	"go.uber.org/zap"
)

var blockingStatuses = []models.AppointmentStatus{availability.StatusPending, availability.StatusConfirmed}

func (s *DefaultBookingService) loadSalon(ctx context.Context, salonID string) (*models.Salon, error) {
	salon, err := s.Salons.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, fmt.Errorf("failed to load salon: %w", err)
	}
	return salon, nil
}

// computeSlots loads the salon's bookings for date and runs the calculator.
// ok is false when the result is a degraded empty list that must not be cached.
func (s *DefaultBookingService) computeSlots(ctx context.Context, salon *models.Salon, date string, duration int, now time.Time) (slots []availability.TimeSlot, ok bool) {
	logger := utils.GetLogger()

	day, err := time.ParseInLocation(availability.DateLayout, date, now.Location())
	if err != nil {
		logger.Warn("availability: unparsable date", zap.String("salonID", salon.ID), zap.String("date", date))
		return []availability.TimeSlot{}, false
	}

	existing, err := s.Appointments.ListBySalonAndDate(ctx, salon.ID, date, blockingStatuses)
	if err != nil {
		logger.Warn("availability: failed to load appointments",
			zap.String("salonID", salon.ID), zap.String("date", date), zap.Error(err))
		return []availability.TimeSlot{}, false
	}

	booked := make([]availability.ExistingAppointment, 0, len(existing))
	for _, a := range existing {
		booked = append(booked, a.Existing())
	}

	return availability.ComputeAvailableSlots(availability.SlotRequest{
		Date:                 date,
		DurationMinutes:      duration,
		BusinessHours:        salon.HoursFor(day.Weekday()),
		ExistingAppointments: booked,
		Now:                  now,
		Granularity:          s.Granularity,
		Strategy:             s.Strategy,
	}), true
}

// slotsFor serves a slot list from the cache when possible.
func (s *DefaultBookingService) slotsFor(ctx context.Context, salon *models.Salon, date string, duration int) []availability.TimeSlot {
	logger := utils.GetLogger()
	now := s.now()

	if s.Cache != nil {
		cached, hit, err := s.Cache.Get(ctx, salon.ID, date, duration)
		if err != nil {
			logger.Warn("availability cache read failed", zap.String("salonID", salon.ID), zap.Error(err))
		} else if hit {
			return dropPast(cached, date, now)
		}
	}

	slots, ok := s.computeSlots(ctx, salon, date, duration, now)
	if ok && s.Cache != nil {
		if err := s.Cache.Set(ctx, salon.ID, date, duration, slots); err != nil {
			logger.Warn("availability cache write failed", zap.String("salonID", salon.ID), zap.Error(err))
		}
	}
	return slots
}

// dropPast removes cached starts that have gone by since the entry was written.
func dropPast(slots []availability.TimeSlot, date string, now time.Time) []availability.TimeSlot {
	day, err := time.ParseInLocation(availability.DateLayout, date, now.Location())
	if err != nil {
		return []availability.TimeSlot{}
	}
	out := make([]availability.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if !slot.StartTime.On(day).Before(now) {
			out = append(out, slot)
		}
	}
	return out
}

func newAvailabilityResponse(salonID, date string, duration int, slots []availability.TimeSlot) *models.AvailabilityResponse {
	return &models.AvailabilityResponse{
		SalonID:         salonID,
		Date:            date,
		DurationMinutes: duration,
		Slots:           slots,
		Grouped:         availability.GroupByDayPart(slots),
	}
}

// GetAvailability lists the start times at which a booking of durationMinutes fits.
func (s *DefaultBookingService) GetAvailability(ctx context.Context, salonID, date string, durationMinutes int) (*models.AvailabilityResponse, error) {
	salon, err := s.loadSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if durationMinutes <= 0 {
		return newAvailabilityResponse(salonID, date, durationMinutes, []availability.TimeSlot{}), nil
	}
	slots := s.slotsFor(ctx, salon, date, durationMinutes)
	return newAvailabilityResponse(salonID, date, durationMinutes, slots), nil
}

// GetAvailabilityForService derives the duration from the service and the
// gender of whoever is being booked.
func (s *DefaultBookingService) GetAvailabilityForService(ctx context.Context, salonID, serviceID, date, userID, guestID string) (*models.AvailabilityResponse, error) {
	salon, err := s.loadSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	svc, found := salon.ServiceByID(serviceID)
	if !found {
		return nil, ErrServiceNotFound
	}
	gender, err := s.resolveGender(ctx, userID, guestID)
	if err != nil {
		return nil, err
	}
	duration := svc.DurationFor(gender)
	slots := s.slotsFor(ctx, salon, date, duration)
	return newAvailabilityResponse(salonID, date, duration, slots), nil
}

// resolveGender picks the guest's gender when booking for a guest, otherwise the
// user's. Anonymous callers get the default.
func (s *DefaultBookingService) resolveGender(ctx context.Context, userID, guestID string) (models.Gender, error) {
	if guestID != "" {
		g, err := s.Guests.GetByID(ctx, guestID)
		if err != nil {
			if errors.Is(err, guestRepo.ErrNotFound) {
				return "", ErrGuestNotFound
			}
			return "", fmt.Errorf("failed to load guest: %w", err)
		}
		if g.OwnerID != userID {
			return "", ErrGuestNotFound
		}
		return g.Gender, nil
	}
	if userID == "" {
		return "", nil
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		utils.GetLogger().Warn("resolveGender: profile unavailable", zap.String("userID", userID), zap.Error(err))
		return "", nil
	}
	return u.Gender, nil
}

// GetCalendar lists the next HorizonDays days, marking those the salon is closed.
func (s *DefaultBookingService) GetCalendar(ctx context.Context, salonID string) (*models.CalendarResponse, error) {
	salon, err := s.loadSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	horizon := s.HorizonDays
	if horizon <= 0 {
		horizon = 90
	}
	return &models.CalendarResponse{
		SalonID: salonID,
		Days:    availability.BookableDates(s.now(), horizon, salon.BusinessHours),
	}, nil
}
