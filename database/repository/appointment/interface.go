// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"physiocare/database"
	"physiocare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository persists appointments and blocked time slots.
type AppointmentRepository interface {
	Create(ctx context.Context, appt models.Appointment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Update(ctx context.Context, appt models.Appointment) error
	Cancel(ctx context.Context, id, cancelledBy string) error
	Delete(ctx context.Context, id string) error
	GetByPhysiotherapist(ctx context.Context, physioID string) ([]models.Appointment, []models.DecodeFailure, error)
	GetByUser(ctx context.Context, userID string) ([]models.Appointment, []models.DecodeFailure, error)
	GetByPhysiotherapistAndDate(ctx context.Context, physioID, date string) ([]models.Appointment, error)

	BlockSlot(ctx context.Context, blocked models.BlockedTimeSlot) (string, error)
	UnblockSlot(ctx context.Context, physioID, date, timeSlot string) error
	GetBlockedSlots(ctx context.Context, physioID, date string) ([]models.BlockedTimeSlot, error)
}

type mongoAppointmentRepo struct {
	appointments *mongo.Collection
	blocked      *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.DB()
	return &mongoAppointmentRepo{
		appointments: db.Collection("appointments"),
		blocked:      db.Collection("blockedTimeSlots"),
	}
}
