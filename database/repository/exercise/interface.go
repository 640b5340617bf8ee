// File: database/repository/exercise/interface.go
package exerciseRepo

import (
	"context"

	"physiocare/database"
	"physiocare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ExerciseRepository persists the exercise catalog and assigned plans.
type ExerciseRepository interface {
	CreateExercise(ctx context.Context, ex models.Exercise) (string, error)
	GetExerciseByID(ctx context.Context, id string) (*models.Exercise, error)
	GetAllExercises(ctx context.Context) ([]models.Exercise, []models.DecodeFailure, error)
	DeleteExercise(ctx context.Context, id string) error

	CreatePlan(ctx context.Context, plan models.ExercisePlan) (string, error)
	GetPlanByID(ctx context.Context, id string) (*models.ExercisePlan, error)
	UpdatePlan(ctx context.Context, plan models.ExercisePlan) error
	UpdatePlanStatus(ctx context.Context, id string, status models.PlanStatus) error
	DeletePlan(ctx context.Context, id string) error
	GetPlansByPatient(ctx context.Context, patientID string) ([]models.ExercisePlan, []models.DecodeFailure, error)
	GetPlansByPhysiotherapist(ctx context.Context, physioID string) ([]models.ExercisePlan, []models.DecodeFailure, error)
}

type mongoExerciseRepo struct {
	exercises *mongo.Collection
	plans     *mongo.Collection
}

// NewMongoExerciseRepo constructs a new MongoDB ExerciseRepository.
func NewMongoExerciseRepo() ExerciseRepository {
	db := database.DB()
	return &mongoExerciseRepo{
		exercises: db.Collection("exercises"),
		plans:     db.Collection("exercisePlans"),
	}
}
