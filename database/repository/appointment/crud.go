// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"physiocare/models"
)

func (r *mongoAppointmentRepo) Create(ctx context.Context, appt models.Appointment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if appt.Status == "" {
		appt.Status = models.AppointmentPending
	}
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now()
	}
	if _, err := r.appointments.InsertOne(ctx, appt); err != nil {
		return "", err
	}
	return appt.ID, nil
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.appointments.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// Update overwrites the whole document; mutation is field-level overwrite
// with no version check.
func (r *mongoAppointmentRepo) Update(ctx context.Context, appt models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.appointments.ReplaceOne(ctx, bson.M{"id": appt.ID}, appt)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Cancel marks the appointment cancelled, stamping the cancelling actor and
// the cancellation time.
func (r *mongoAppointmentRepo) Cancel(ctx context.Context, id, cancelledBy string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":      models.AppointmentCancelled,
		"cancelledBy": cancelledBy,
		"cancelledAt": time.Now(),
	}}
	res, err := r.appointments.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAppointmentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.appointments.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAppointmentRepo) GetByPhysiotherapist(ctx context.Context, physioID string) ([]models.Appointment, []models.DecodeFailure, error) {
	return r.findAppointments(ctx, bson.M{"physiotherapistId": physioID})
}

func (r *mongoAppointmentRepo) GetByUser(ctx context.Context, userID string) ([]models.Appointment, []models.DecodeFailure, error) {
	return r.findAppointments(ctx, bson.M{"userId": userID})
}

func (r *mongoAppointmentRepo) GetByPhysiotherapistAndDate(ctx context.Context, physioID, date string) ([]models.Appointment, error) {
	appts, _, err := r.findAppointments(ctx, bson.M{"physiotherapistId": physioID, "date": date})
	return appts, err
}

func (r *mongoAppointmentRepo) findAppointments(ctx context.Context, filter bson.M) ([]models.Appointment, []models.DecodeFailure, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.appointments.Find(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close(ctx)

	var (
		appts    []models.Appointment
		failures []models.DecodeFailure
	)
	for cursor.Next(ctx) {
		var appt models.Appointment
		if err := cursor.Decode(&appt); err != nil {
			id := "unknown"
			if v, ok := cursor.Current.Lookup("id").StringValueOK(); ok {
				id = v
			}
			failures = append(failures, models.DecodeFailure{ID: id, Reason: err.Error()})
			continue
		}
		appts = append(appts, appt)
	}
	if err := cursor.Err(); err != nil {
		return nil, nil, err
	}
	return appts, failures, nil
}
