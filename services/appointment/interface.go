package appointment

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	appointmentRepo "physiocare/database/repository/appointment"
	userRepo "physiocare/database/repository/user"
	"physiocare/models"
)

// AppointmentService mediates bookings, cancellations, slot blocking and
// availability for physiotherapist calendars.
type AppointmentService interface {
	Book(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Cancel(ctx context.Context, id, cancelledBy string) error
	UpdateNotes(ctx context.Context, id, notes string) error
	ListForPhysiotherapist(ctx context.Context, physioID string) ([]models.Appointment, []models.DecodeFailure, error)
	ListForPatient(ctx context.Context, userID string) ([]models.Appointment, []models.DecodeFailure, error)

	AvailableSlots(ctx context.Context, physioID, date string) ([]string, error)
	BlockSlot(ctx context.Context, physioID, date, timeSlot, reason string) error
	UnblockSlot(ctx context.Context, physioID, date, timeSlot string) error
	BlockedSlots(ctx context.Context, physioID, date string) ([]models.BlockedTimeSlot, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo  appointmentRepo.AppointmentRepository
	Users userRepo.UserRepository
	// Cache holds short-lived availability snapshots; nil disables caching.
	Cache *redis.Client
	// Reminders enqueues appointment-morning pushes; nil disables reminders.
	Reminders *asynq.Client
}
