package booking

import "errors"

var (
	ErrSalonNotFound       = errors.New("salon not found")
	ErrServiceNotFound     = errors.New("service not offered by this salon")
	ErrGuestNotFound       = errors.New("guest not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidDate         = errors.New("date must be formatted as YYYY-MM-DD")
	ErrSlotUnavailable     = errors.New("the selected time is no longer available")
	ErrForbidden           = errors.New("not allowed to manage this appointment")
	ErrInvalidTransition   = errors.New("appointment cannot move to the requested status")
)
