// Package availability computes the bookable start times of a salon day.
//
// Everything here is a pure function of its inputs: the caller supplies the
// date, the salon's hours for that weekday, the appointments already on the
// book and the current instant. Nothing reads a clock or touches storage.
package availability

import "time"

// DefaultGranularity is the step, in minutes, between candidate start times.
const DefaultGranularity = 5

// DateLayout is the calendar date format used by requests and storage.
const DateLayout = "2006-01-02"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Blocking reports whether an appointment in this status reserves time.
func (s AppointmentStatus) Blocking() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// BusinessHours is a salon's opening window for one weekday.
type BusinessHours struct {
	DayOfWeek time.Weekday `bson:"dayOfWeek" json:"day_of_week"`
	OpenTime  TimeOfDay    `bson:"openTime" json:"open_time"`   // e.g., "09:00"
	CloseTime TimeOfDay    `bson:"closeTime" json:"close_time"` // e.g., "17:00"
	IsClosed  bool         `bson:"isClosed" json:"is_closed"`
}

// Open reports whether the record describes a usable window.
func (h *BusinessHours) Open() bool {
	return h != nil && !h.IsClosed && h.OpenTime < h.CloseTime
}

// ExistingAppointment is an appointment already on the book for the queried date.
type ExistingAppointment struct {
	Date      string            `json:"date"`
	StartTime TimeOfDay         `json:"start_time"`
	EndTime   TimeOfDay         `json:"end_time"`
	Status    AppointmentStatus `json:"status"`
}

// Strategy selects how a candidate is tested against existing appointments.
type Strategy string

const (
	// StrategyGrid marks every booked step of the day and rejects a candidate
	// touching any marked step.
	StrategyGrid Strategy = "grid"
	// StrategyOverlap tests each candidate against each appointment interval.
	StrategyOverlap Strategy = "overlap"
)

// ParseStrategy maps a config value onto a Strategy, defaulting to StrategyGrid.
func ParseStrategy(s string) Strategy {
	if Strategy(s) == StrategyOverlap {
		return StrategyOverlap
	}
	return StrategyGrid
}

// SlotRequest is the input of ComputeAvailableSlots.
type SlotRequest struct {
	Date                 string
	DurationMinutes      int
	BusinessHours        *BusinessHours
	ExistingAppointments []ExistingAppointment
	Now                  time.Time
	// Granularity is the candidate step in minutes; zero means DefaultGranularity.
	Granularity int
	Strategy    Strategy
}

// TimeSlot is one bookable start time. IsAvailable is always true for
// returned slots; unavailable starts are omitted.
type TimeSlot struct {
	StartTime   TimeOfDay `json:"start_time"`
	IsAvailable bool      `json:"is_available"`
}
