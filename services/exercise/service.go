package exercise

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"physiocare/database"
	"physiocare/models"
)

// ErrExerciseNotFound signals a lookup for an id that has no document.
var ErrExerciseNotFound = errors.New("exercise not found")

// ErrPlanNotFound signals a plan lookup for an id that has no document.
var ErrPlanNotFound = errors.New("exercise plan not found")

func (s *DefaultExerciseService) CreateExercise(ctx context.Context, ex models.Exercise) (string, error) {
	if ex.Name == "" {
		return "", fmt.Errorf("exercise: name is required")
	}
	return s.Repo.CreateExercise(ctx, ex)
}

func (s *DefaultExerciseService) GetExercise(ctx context.Context, id string) (*models.Exercise, error) {
	ex, err := s.Repo.GetExerciseByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("exercise: failed to load %s: %w", id, err)
	}
	return ex, nil
}

// ListExercises filters the catalog in memory. An empty category matches
// everything; an empty difficulty matches everything, otherwise only exact
// matches survive. The result sorts ascending by difficulty ordinal
// (EASY < MEDIUM < HARD), tie-broken by name.
func (s *DefaultExerciseService) ListExercises(ctx context.Context, category string, difficulty models.Difficulty) ([]models.Exercise, []models.DecodeFailure, error) {
	all, failures, err := s.Repo.GetAllExercises(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("exercise: failed to load catalog: %w", err)
	}

	filtered := make([]models.Exercise, 0, len(all))
	for _, ex := range all {
		if category != "" && ex.Category != category {
			continue
		}
		if difficulty != "" && ex.Difficulty != difficulty {
			continue
		}
		filtered = append(filtered, ex)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Difficulty.Ordinal() != filtered[j].Difficulty.Ordinal() {
			return filtered[i].Difficulty.Ordinal() < filtered[j].Difficulty.Ordinal()
		}
		return filtered[i].Name < filtered[j].Name
	})
	return filtered, failures, nil
}

func (s *DefaultExerciseService) DeleteExercise(ctx context.Context, id string) error {
	if err := s.Repo.DeleteExercise(ctx, id); err != nil {
		if database.IsNotFound(err) {
			return ErrExerciseNotFound
		}
		return fmt.Errorf("exercise: failed to delete %s: %w", id, err)
	}
	return nil
}

// CreatePlan stores a plan, resolving the patient's display name the same
// way appointments do: profile, then account email, then placeholder.
func (s *DefaultExerciseService) CreatePlan(ctx context.Context, plan models.ExercisePlan) (string, error) {
	if plan.PatientID == "" || plan.PhysiotherapistID == "" {
		return "", fmt.Errorf("exercise: patient and physiotherapist are required")
	}
	if plan.PatientName == "" {
		plan.PatientName = s.resolvePatientName(ctx, plan.PatientID)
	}
	return s.Repo.CreatePlan(ctx, plan)
}

func (s *DefaultExerciseService) GetPlan(ctx context.Context, id string) (*models.ExercisePlan, error) {
	plan, err := s.Repo.GetPlanByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("exercise: failed to load plan %s: %w", id, err)
	}
	return plan, nil
}

func (s *DefaultExerciseService) UpdatePlan(ctx context.Context, plan models.ExercisePlan) error {
	if err := s.Repo.UpdatePlan(ctx, plan); err != nil {
		if database.IsNotFound(err) {
			return ErrPlanNotFound
		}
		return fmt.Errorf("exercise: failed to update plan %s: %w", plan.ID, err)
	}
	return nil
}

func (s *DefaultExerciseService) UpdatePlanStatus(ctx context.Context, id string, status models.PlanStatus) error {
	if err := s.Repo.UpdatePlanStatus(ctx, id, status); err != nil {
		if database.IsNotFound(err) {
			return ErrPlanNotFound
		}
		return fmt.Errorf("exercise: failed to update plan status %s: %w", id, err)
	}
	return nil
}

func (s *DefaultExerciseService) DeletePlan(ctx context.Context, id string) error {
	if err := s.Repo.DeletePlan(ctx, id); err != nil {
		if database.IsNotFound(err) {
			return ErrPlanNotFound
		}
		return fmt.Errorf("exercise: failed to delete plan %s: %w", id, err)
	}
	return nil
}

func (s *DefaultExerciseService) PlansForPatient(ctx context.Context, patientID string) ([]models.ExercisePlan, []models.DecodeFailure, error) {
	return s.Repo.GetPlansByPatient(ctx, patientID)
}

func (s *DefaultExerciseService) PlansForPhysiotherapist(ctx context.Context, physioID string) ([]models.ExercisePlan, []models.DecodeFailure, error) {
	return s.Repo.GetPlansByPhysiotherapist(ctx, physioID)
}

func (s *DefaultExerciseService) resolvePatientName(ctx context.Context, patientID string) string {
	if s.Users != nil {
		if profile, err := s.Users.GetProfile(ctx, patientID); err == nil {
			if name := profile.FullName(); name != "" {
				return name
			}
		}
		if user, err := s.Users.GetByID(ctx, patientID); err == nil && user.Email != "" {
			return user.Email
		}
	}
	short := patientID
	if len(short) > 8 {
		short = short[:8]
	}
	return "Hasta " + short
}
