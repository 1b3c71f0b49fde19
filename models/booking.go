package models

import (
	"time"

	"salonbook/services/availability"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus = availability.AppointmentStatus

// TimeOfDay is a wall-clock time in the salon's timezone, stored as minutes from midnight.
type TimeOfDay = availability.TimeOfDay

// Appointment represents a booking record.
type Appointment struct {
	ID           string            `bson:"id" json:"id"`                                                      // Unique appointment identifier (UUID)
	SalonID      string            `bson:"salonId" json:"salon_id"`                                           // Salon that was booked
	UserID       string            `bson:"userId" json:"user_id"`                                             // User who made the booking
	GuestID      string            `bson:"guestId,omitempty" json:"guest_id,omitempty"`                       // Set when booked on behalf of a guest
	ServiceID    string            `bson:"serviceId" json:"service_id"`                                       // Service from the salon's menu
	ServiceName  string            `bson:"serviceName" json:"service_name"`                                   // Snapshot of the service name at booking time
	Date         string            `bson:"date" json:"date"`                                                  // "YYYY-MM-DD" in the salon's timezone
	StartTime    TimeOfDay         `bson:"startTime" json:"start_time"`                                       // minutes from midnight
	EndTime      TimeOfDay         `bson:"endTime" json:"end_time"`                                           // minutes from midnight
	Duration     int               `bson:"duration" json:"duration"`                                          // minutes
	TotalPrice   float64           `bson:"totalPrice" json:"total_price"`                                     // Price charged for the chosen gender
	Status       AppointmentStatus `bson:"status" json:"status"`                                              // pending, confirmed, cancelled or completed
	Notes        string            `bson:"notes,omitempty" json:"notes,omitempty"`                            // Free-form notes for the designer
	CancelReason string            `bson:"cancellationReason,omitempty" json:"cancellation_reason,omitempty"` // Reason given on cancellation
	CreatedAt    time.Time         `bson:"createdAt" json:"created_at"`                                       // Timestamp when appointment was created
	UpdatedAt    time.Time         `bson:"updatedAt" json:"updated_at"`                                       // Timestamp of the last status change
}

// Existing projects the appointment onto the calculator input.
func (a Appointment) Existing() availability.ExistingAppointment {
	return availability.ExistingAppointment{
		Date:      a.Date,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Status:    a.Status,
	}
}

// BookAppointmentRequest is the payload for booking a start time.
type BookAppointmentRequest struct {
	SalonID   string    `json:"salon_id" binding:"required"`
	ServiceID string    `json:"service_id" binding:"required"`
	GuestID   string    `json:"guest_id"`
	Date      string    `json:"date" binding:"required"`
	StartTime TimeOfDay `json:"start_time"`
	Notes     string    `json:"notes"`
}

// CancelAppointmentRequest carries an optional reason.
type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

// UpdateStatusRequest is used by designers to move an appointment along its lifecycle.
type UpdateStatusRequest struct {
	Status AppointmentStatus `json:"status" binding:"required"`
}
