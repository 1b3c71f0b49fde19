package booking

import (
	"context"
	"sync"

	"salonbook/database/repository"
	appointmentRepo "salonbook/database/repository/appointment"
	guestRepo "salonbook/database/repository/guest"
	salonRepo "salonbook/database/repository/salon"
	userRepo "salonbook/database/repository/user"
	"salonbook/models"
	"salonbook/services/availability"
)

type memSalons struct {
	repository.SalonRepository
	salons map[string]models.Salon
}

func (m *memSalons) GetByID(_ context.Context, id string) (*models.Salon, error) {
	s, ok := m.salons[id]
	if !ok {
		return nil, salonRepo.ErrNotFound
	}
	return &s, nil
}

func (m *memSalons) ListIDsByOwner(_ context.Context, ownerID string) ([]string, error) {
	ids := []string{}
	for _, s := range m.salons {
		if s.OwnerID == ownerID {
			ids = append(ids, s.ID)
		}
	}
	return ids, nil
}

type memUsers struct {
	repository.UserRepository
	users map[string]models.User
}

func (m *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return &u, nil
}

type memGuests struct {
	repository.GuestRepository
	guests map[string]models.Guest
}

func (m *memGuests) GetByID(_ context.Context, id string) (*models.Guest, error) {
	g, ok := m.guests[id]
	if !ok {
		return nil, guestRepo.ErrNotFound
	}
	return &g, nil
}

// memAppointments is an in-memory AppointmentRepository.
type memAppointments struct {
	mu      sync.Mutex
	apts    map[string]models.Appointment
	listErr error
	lists   int
}

func newMemAppointments() *memAppointments {
	return &memAppointments{apts: map[string]models.Appointment{}}
}

func (m *memAppointments) put(a models.Appointment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apts[a.ID] = a
}

func (m *memAppointments) overlaps(salonID, date string, start, end models.TimeOfDay) bool {
	for _, a := range m.apts {
		if a.SalonID == salonID && a.Date == date && a.Status.Blocking() &&
			availability.Overlaps(a.StartTime, a.EndTime, start, end) {
			return true
		}
	}
	return false
}

func (m *memAppointments) CreateIfFree(_ context.Context, a *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.overlaps(a.SalonID, a.Date, a.StartTime, a.EndTime) {
		return appointmentRepo.ErrOverlap
	}
	m.apts[a.ID] = *a
	return nil
}

func (m *memAppointments) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	return &a, nil
}

func (m *memAppointments) filter(match func(models.Appointment) bool) []models.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Appointment{}
	for _, a := range m.apts {
		if match(a) {
			out = append(out, a)
		}
	}
	return out
}

func (m *memAppointments) ListBySalonAndDate(_ context.Context, salonID, date string, statuses []models.AppointmentStatus) ([]models.Appointment, error) {
	m.lists++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.filter(func(a models.Appointment) bool {
		if a.SalonID != salonID || a.Date != date {
			return false
		}
		if len(statuses) == 0 {
			return true
		}
		for _, s := range statuses {
			if a.Status == s {
				return true
			}
		}
		return false
	}), nil
}

func (m *memAppointments) ListByUser(_ context.Context, userID, fromDate, toDate string) ([]models.Appointment, error) {
	return m.filter(func(a models.Appointment) bool {
		return a.UserID == userID && (fromDate == "" || a.Date >= fromDate) && (toDate == "" || a.Date <= toDate)
	}), nil
}

func (m *memAppointments) ListBySalons(_ context.Context, salonIDs []string, date string) ([]models.Appointment, error) {
	return m.filter(func(a models.Appointment) bool {
		for _, id := range salonIDs {
			if a.SalonID == id && (date == "" || a.Date == date) {
				return true
			}
		}
		return false
	}), nil
}

func (m *memAppointments) UpdateStatus(_ context.Context, id string, from []models.AppointmentStatus, to models.AppointmentStatus, note string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apts[id]
	if !ok {
		return appointmentRepo.ErrNotFound
	}
	for _, s := range from {
		if a.Status == s {
			a.Status = to
			if note != "" {
				a.CancelReason = note
			}
			m.apts[id] = a
			return nil
		}
	}
	return appointmentRepo.ErrStatusConflict
}

func (m *memAppointments) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.apts[id]; !ok {
		return appointmentRepo.ErrNotFound
	}
	delete(m.apts, id)
	return nil
}

func (m *memAppointments) CompleteEnded(_ context.Context, c repository.Cutoff) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, a := range m.apts {
		if a.Status != availability.StatusConfirmed {
			continue
		}
		if a.Date < c.Date || (a.Date == c.Date && a.EndTime <= c.Minute) {
			a.Status = availability.StatusCompleted
			m.apts[id] = a
			n++
		}
	}
	return n, nil
}

func (m *memAppointments) CancelFutureForGuest(_ context.Context, guestID string, c repository.Cutoff) ([]models.Appointment, error) {
	return []models.Appointment{}, nil
}
