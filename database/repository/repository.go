package repository

import (
	appointmentRepo "salonbook/database/repository/appointment"
	guestRepo "salonbook/database/repository/guest"
	salonRepo "salonbook/database/repository/salon"
	userRepo "salonbook/database/repository/user"
)

// Re-export the UserRepository interface and constructor.
type UserRepository = userRepo.UserRepository

var NewMongoUserRepository = userRepo.NewMongoUserRepo

// Re-export the GuestRepository interface and constructor.
type GuestRepository = guestRepo.GuestRepository

var NewMongoGuestRepo = guestRepo.NewMongoGuestRepo

// Re-export the SalonRepository interface and constructor.
type SalonRepository = salonRepo.SalonRepository

var NewMongoSalonRepo = salonRepo.NewMongoSalonRepo

// Re-export the AppointmentRepository interface and constructor.
type AppointmentRepository = appointmentRepo.AppointmentRepository

type Cutoff = appointmentRepo.Cutoff

var NewMongoAppointmentRepo = appointmentRepo.NewMongoAppointmentRepo
var CutoffAt = appointmentRepo.CutoffAt
