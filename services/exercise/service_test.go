package exercise

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"physiocare/models"
)

// fakeExerciseRepo keeps the catalog and plans in memory.
type fakeExerciseRepo struct {
	exercises []models.Exercise
	plans     []models.ExercisePlan
	nextID    int
}

func (f *fakeExerciseRepo) genID() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

func (f *fakeExerciseRepo) CreateExercise(ctx context.Context, ex models.Exercise) (string, error) {
	if ex.ID == "" {
		ex.ID = f.genID()
	}
	f.exercises = append(f.exercises, ex)
	return ex.ID, nil
}

func (f *fakeExerciseRepo) GetExerciseByID(ctx context.Context, id string) (*models.Exercise, error) {
	for _, ex := range f.exercises {
		if ex.ID == id {
			cp := ex
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeExerciseRepo) GetAllExercises(ctx context.Context) ([]models.Exercise, []models.DecodeFailure, error) {
	out := make([]models.Exercise, len(f.exercises))
	copy(out, f.exercises)
	return out, nil, nil
}

func (f *fakeExerciseRepo) DeleteExercise(ctx context.Context, id string) error {
	for i, ex := range f.exercises {
		if ex.ID == id {
			f.exercises = append(f.exercises[:i], f.exercises[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeExerciseRepo) CreatePlan(ctx context.Context, plan models.ExercisePlan) (string, error) {
	if plan.ID == "" {
		plan.ID = f.genID()
	}
	if plan.Status == "" {
		plan.Status = models.PlanActive
	}
	f.plans = append(f.plans, plan)
	return plan.ID, nil
}

func (f *fakeExerciseRepo) GetPlanByID(ctx context.Context, id string) (*models.ExercisePlan, error) {
	for _, p := range f.plans {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeExerciseRepo) UpdatePlan(ctx context.Context, plan models.ExercisePlan) error {
	for i := range f.plans {
		if f.plans[i].ID == plan.ID {
			f.plans[i] = plan
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeExerciseRepo) UpdatePlanStatus(ctx context.Context, id string, status models.PlanStatus) error {
	for i := range f.plans {
		if f.plans[i].ID == id {
			f.plans[i].Status = status
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeExerciseRepo) DeletePlan(ctx context.Context, id string) error {
	for i, p := range f.plans {
		if p.ID == id {
			f.plans = append(f.plans[:i], f.plans[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeExerciseRepo) GetPlansByPatient(ctx context.Context, patientID string) ([]models.ExercisePlan, []models.DecodeFailure, error) {
	var out []models.ExercisePlan
	for _, p := range f.plans {
		if p.PatientID == patientID {
			out = append(out, p)
		}
	}
	return out, nil, nil
}

func (f *fakeExerciseRepo) GetPlansByPhysiotherapist(ctx context.Context, physioID string) ([]models.ExercisePlan, []models.DecodeFailure, error) {
	var out []models.ExercisePlan
	for _, p := range f.plans {
		if p.PhysiotherapistID == physioID {
			out = append(out, p)
		}
	}
	return out, nil, nil
}

func seedCatalog(t *testing.T, repo *fakeExerciseRepo) {
	t.Helper()
	catalog := []models.Exercise{
		{Name: "Köprü", Category: "core", Difficulty: models.DifficultyHard},
		{Name: "Duvar oturuşu", Category: "bacak", Difficulty: models.DifficultyMedium},
		{Name: "Topuk yükseltme", Category: "bacak", Difficulty: models.DifficultyEasy},
		{Name: "Plank", Category: "core", Difficulty: models.DifficultyMedium},
		{Name: "Omuz germe", Category: "omuz", Difficulty: models.DifficultyEasy},
	}
	for _, ex := range catalog {
		_, err := repo.CreateExercise(context.Background(), ex)
		require.NoError(t, err)
	}
}

func TestListExercisesUnfilteredSortsByDifficulty(t *testing.T) {
	repo := &fakeExerciseRepo{}
	seedCatalog(t, repo)
	svc := &DefaultExerciseService{Repo: repo}

	exercises, _, err := svc.ListExercises(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, exercises, 5)

	for i := 1; i < len(exercises); i++ {
		assert.LessOrEqual(t, exercises[i-1].Difficulty.Ordinal(), exercises[i].Difficulty.Ordinal())
	}
	assert.Equal(t, models.DifficultyEasy, exercises[0].Difficulty)
	assert.Equal(t, models.DifficultyHard, exercises[4].Difficulty)
}

func TestListExercisesCategoryFilter(t *testing.T) {
	repo := &fakeExerciseRepo{}
	seedCatalog(t, repo)
	svc := &DefaultExerciseService{Repo: repo}

	exercises, _, err := svc.ListExercises(context.Background(), "bacak", "")
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	assert.Equal(t, "Topuk yükseltme", exercises[0].Name) // easy before medium
	assert.Equal(t, "Duvar oturuşu", exercises[1].Name)
}

func TestListExercisesDifficultyFilterIsExact(t *testing.T) {
	repo := &fakeExerciseRepo{}
	seedCatalog(t, repo)
	svc := &DefaultExerciseService{Repo: repo}

	exercises, _, err := svc.ListExercises(context.Background(), "", models.DifficultyMedium)
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	for _, ex := range exercises {
		assert.Equal(t, models.DifficultyMedium, ex.Difficulty)
	}

	exercises, _, err = svc.ListExercises(context.Background(), "core", models.DifficultyHard)
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Köprü", exercises[0].Name)
}

func TestListExercisesNoMatches(t *testing.T) {
	repo := &fakeExerciseRepo{}
	seedCatalog(t, repo)
	svc := &DefaultExerciseService{Repo: repo}

	exercises, _, err := svc.ListExercises(context.Background(), "boyun", "")
	require.NoError(t, err)
	assert.Empty(t, exercises)
	assert.NotNil(t, exercises)
}

func TestCreatePlanResolvesPatientName(t *testing.T) {
	repo := &fakeExerciseRepo{}
	users := &fakeUserRepo{
		profiles: map[string]models.UserProfile{
			"p1": {UserID: "p1", FirstName: "Ali", LastName: "Demir"},
		},
		users: map[string]models.User{},
	}
	svc := &DefaultExerciseService{Repo: repo, Users: users}
	ctx := context.Background()

	id, err := svc.CreatePlan(ctx, models.ExercisePlan{
		Title: "Diz programı", PatientID: "p1", PhysiotherapistID: "physio-1",
	})
	require.NoError(t, err)

	plan, err := svc.GetPlan(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ali Demir", plan.PatientName)
	assert.Equal(t, models.PlanActive, plan.Status)
}

func TestCreatePlanPlaceholderName(t *testing.T) {
	repo := &fakeExerciseRepo{}
	users := &fakeUserRepo{users: map[string]models.User{}, profiles: map[string]models.UserProfile{}}
	svc := &DefaultExerciseService{Repo: repo, Users: users}

	id, err := svc.CreatePlan(context.Background(), models.ExercisePlan{
		PatientID: "patient-12345678", PhysiotherapistID: "physio-1",
	})
	require.NoError(t, err)

	plan, err := svc.GetPlan(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Hasta patient-", plan.PatientName)
}

func TestUpdatePlanStatusNotFound(t *testing.T) {
	svc := &DefaultExerciseService{Repo: &fakeExerciseRepo{}}
	err := svc.UpdatePlanStatus(context.Background(), "missing", models.PlanCompleted)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

// fakeUserRepo serves fixed accounts and profiles.
type fakeUserRepo struct {
	users    map[string]models.User
	profiles map[string]models.UserProfile
}

func (f *fakeUserRepo) Create(ctx context.Context, user models.User) (string, error) {
	return user.ID, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) Update(ctx context.Context, user models.User) error { return nil }

func (f *fakeUserRepo) SetFCMToken(ctx context.Context, id, token string) error { return nil }

func (f *fakeUserRepo) SetTokenHash(ctx context.Context, id, hash string) error { return nil }

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeUserRepo) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	if p, ok := f.profiles[userID]; ok {
		return &p, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) UpsertProfile(ctx context.Context, profile models.UserProfile) error {
	return nil
}
