// File: database/repository/exercise/crud.go
package exerciseRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"physiocare/models"
)

func (r *mongoExerciseRepo) CreateExercise(ctx context.Context, ex models.Exercise) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if ex.ID == "" {
		ex.ID = uuid.New().String()
	}
	if ex.CreatedAt.IsZero() {
		ex.CreatedAt = time.Now()
	}
	if _, err := r.exercises.InsertOne(ctx, ex); err != nil {
		return "", err
	}
	return ex.ID, nil
}

func (r *mongoExerciseRepo) GetExerciseByID(ctx context.Context, id string) (*models.Exercise, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ex models.Exercise
	if err := r.exercises.FindOne(ctx, bson.M{"id": id}).Decode(&ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

func (r *mongoExerciseRepo) GetAllExercises(ctx context.Context) ([]models.Exercise, []models.DecodeFailure, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.exercises.Find(ctx, bson.M{})
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close(ctx)

	var (
		exercises []models.Exercise
		failures  []models.DecodeFailure
	)
	for cursor.Next(ctx) {
		var ex models.Exercise
		if err := cursor.Decode(&ex); err != nil {
			id := "unknown"
			if v, ok := cursor.Current.Lookup("id").StringValueOK(); ok {
				id = v
			}
			failures = append(failures, models.DecodeFailure{ID: id, Reason: err.Error()})
			continue
		}
		exercises = append(exercises, ex)
	}
	if err := cursor.Err(); err != nil {
		return nil, nil, err
	}
	return exercises, failures, nil
}

func (r *mongoExerciseRepo) DeleteExercise(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.exercises.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoExerciseRepo) CreatePlan(ctx context.Context, plan models.ExercisePlan) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if plan.Status == "" {
		plan.Status = models.PlanActive
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now()
	}
	if _, err := r.plans.InsertOne(ctx, plan); err != nil {
		return "", err
	}
	return plan.ID, nil
}

func (r *mongoExerciseRepo) GetPlanByID(ctx context.Context, id string) (*models.ExercisePlan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var plan models.ExercisePlan
	if err := r.plans.FindOne(ctx, bson.M{"id": id}).Decode(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mongoExerciseRepo) UpdatePlan(ctx context.Context, plan models.ExercisePlan) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.plans.ReplaceOne(ctx, bson.M{"id": plan.ID}, plan)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoExerciseRepo) UpdatePlanStatus(ctx context.Context, id string, status models.PlanStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.plans.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoExerciseRepo) DeletePlan(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.plans.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoExerciseRepo) GetPlansByPatient(ctx context.Context, patientID string) ([]models.ExercisePlan, []models.DecodeFailure, error) {
	return r.findPlans(ctx, bson.M{"patientId": patientID})
}

func (r *mongoExerciseRepo) GetPlansByPhysiotherapist(ctx context.Context, physioID string) ([]models.ExercisePlan, []models.DecodeFailure, error) {
	return r.findPlans(ctx, bson.M{"physiotherapistId": physioID})
}

func (r *mongoExerciseRepo) findPlans(ctx context.Context, filter bson.M) ([]models.ExercisePlan, []models.DecodeFailure, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.plans.Find(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close(ctx)

	var (
		plans    []models.ExercisePlan
		failures []models.DecodeFailure
	)
	for cursor.Next(ctx) {
		var plan models.ExercisePlan
		if err := cursor.Decode(&plan); err != nil {
			id := "unknown"
			if v, ok := cursor.Current.Lookup("id").StringValueOK(); ok {
				id = v
			}
			failures = append(failures, models.DecodeFailure{ID: id, Reason: err.Error()})
			continue
		}
		plans = append(plans, plan)
	}
	if err := cursor.Err(); err != nil {
		return nil, nil, err
	}
	return plans, failures, nil
}
