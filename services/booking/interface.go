package booking

import (
	"context"
	"fmt"
	"time"

	"salonbook/database/repository"
	"salonbook/models"
	"salonbook/services/availability"
)

// ListFilter selects appointments relative to the current instant.
type ListFilter string

const (
	FilterUpcoming ListFilter = "upcoming"
	FilterPast     ListFilter = "past"
	FilterAll      ListFilter = "all"
)

// ParseListFilter maps a query value onto a filter, defaulting to FilterUpcoming.
func ParseListFilter(s string) ListFilter {
	switch ListFilter(s) {
	case FilterPast, FilterAll:
		return ListFilter(s)
	}
	return FilterUpcoming
}

type BookingService interface {
	// Availability
	GetAvailability(ctx context.Context, salonID, date string, durationMinutes int) (*models.AvailabilityResponse, error)
	GetAvailabilityForService(ctx context.Context, salonID, serviceID, date, userID, guestID string) (*models.AvailabilityResponse, error)
	GetCalendar(ctx context.Context, salonID string) (*models.CalendarResponse, error)

	// Customer lifecycle
	Book(ctx context.Context, userID string, req models.BookAppointmentRequest) (*models.Appointment, error)
	ListUpcoming(ctx context.Context, userID string) ([]models.Appointment, error)
	ListPast(ctx context.Context, userID string) ([]models.Appointment, error)
	Cancel(ctx context.Context, userID, appointmentID, reason string) (*models.Appointment, error)
	Delete(ctx context.Context, userID, appointmentID string) error

	// Designer
	ListSalonAppointments(ctx context.Context, ownerID string, filter ListFilter, date string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, ownerID, appointmentID string, status models.AppointmentStatus) (*models.Appointment, error)

	// Maintenance
	CompletePast(ctx context.Context) (int64, error)
}

// DefaultBookingService implements BookingService on top of the repositories
// and the pure availability calculator.
type DefaultBookingService struct {
	Salons       repository.SalonRepository
	Appointments repository.AppointmentRepository
	Users        repository.UserRepository
	Guests       repository.GuestRepository
	// Cache is optional; nil computes every request.
	Cache AvailabilityCache

	Location    *time.Location
	Strategy    availability.Strategy
	Granularity int
	HorizonDays int
	Now         func() time.Time
}

func NewDefaultBookingService(
	salons repository.SalonRepository,
	appointments repository.AppointmentRepository,
	users repository.UserRepository,
	guests repository.GuestRepository,
	cache AvailabilityCache,
) (*DefaultBookingService, error) {
	if salons == nil || appointments == nil || users == nil || guests == nil {
		return nil, fmt.Errorf("booking service initialization error: one or more dependencies are nil")
	}
	return &DefaultBookingService{
		Salons:       salons,
		Appointments: appointments,
		Users:        users,
		Guests:       guests,
		Cache:        cache,
		Location:     time.Local,
		Strategy:     availability.StrategyGrid,
		Granularity:  availability.DefaultGranularity,
		HorizonDays:  90,
		Now:          time.Now,
	}, nil
}

// now returns the current instant in the salon's timezone.
func (s *DefaultBookingService) now() time.Time {
	clock := s.Now
	if clock == nil {
		clock = time.Now
	}
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return clock().In(loc)
}
