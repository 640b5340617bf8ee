// File: database/repository/appointment/blocked.go
package appointmentRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"physiocare/models"
)

func (r *mongoAppointmentRepo) BlockSlot(ctx context.Context, blocked models.BlockedTimeSlot) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if blocked.ID == "" {
		blocked.ID = uuid.New().String()
	}
	if blocked.CreatedAt.IsZero() {
		blocked.CreatedAt = time.Now()
	}
	if _, err := r.blocked.InsertOne(ctx, blocked); err != nil {
		return "", err
	}
	return blocked.ID, nil
}

func (r *mongoAppointmentRepo) UnblockSlot(ctx context.Context, physioID, date, timeSlot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"physiotherapistId": physioID, "date": date, "timeSlot": timeSlot}
	res, err := r.blocked.DeleteMany(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAppointmentRepo) GetBlockedSlots(ctx context.Context, physioID, date string) ([]models.BlockedTimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.blocked.Find(ctx, bson.M{"physiotherapistId": physioID, "date": date})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.BlockedTimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}
