package exercise

import (
	"context"

	exerciseRepo "physiocare/database/repository/exercise"
	userRepo "physiocare/database/repository/user"
	"physiocare/models"
)

// ExerciseService owns the exercise catalog and assigned plans.
type ExerciseService interface {
	CreateExercise(ctx context.Context, ex models.Exercise) (string, error)
	GetExercise(ctx context.Context, id string) (*models.Exercise, error)
	ListExercises(ctx context.Context, category string, difficulty models.Difficulty) ([]models.Exercise, []models.DecodeFailure, error)
	DeleteExercise(ctx context.Context, id string) error

	CreatePlan(ctx context.Context, plan models.ExercisePlan) (string, error)
	GetPlan(ctx context.Context, id string) (*models.ExercisePlan, error)
	UpdatePlan(ctx context.Context, plan models.ExercisePlan) error
	UpdatePlanStatus(ctx context.Context, id string, status models.PlanStatus) error
	DeletePlan(ctx context.Context, id string) error
	PlansForPatient(ctx context.Context, patientID string) ([]models.ExercisePlan, []models.DecodeFailure, error)
	PlansForPhysiotherapist(ctx context.Context, physioID string) ([]models.ExercisePlan, []models.DecodeFailure, error)
}

// DefaultExerciseService is the production implementation.
type DefaultExerciseService struct {
	Repo  exerciseRepo.ExerciseRepository
	Users userRepo.UserRepository
}
