package models

import "salonbook/services/availability"

// AvailabilityQuery identifies the day and duration a client wants to book.
type AvailabilityQuery struct {
	SalonID         string `form:"-"`
	Date            string `form:"date" binding:"required"`
	DurationMinutes int    `form:"duration"`
	ServiceID       string `form:"serviceId"`
	GuestID         string `form:"guestId"`
}

// AvailabilityResponse lists the bookable start times of one day.
type AvailabilityResponse struct {
	SalonID         string                    `json:"salon_id"`
	Date            string                    `json:"date"`
	DurationMinutes int                       `json:"duration_minutes"`
	Slots           []availability.TimeSlot   `json:"slots"`
	Grouped         availability.GroupedSlots `json:"grouped"`
}

// CalendarResponse lists the days a salon can be booked on.
type CalendarResponse struct {
	SalonID string                     `json:"salon_id"`
	Days    []availability.CalendarDay `json:"days"`
}
