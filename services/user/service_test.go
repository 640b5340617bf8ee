package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"physiocare/models"
	"physiocare/utils"
)

// fakeUserRepo keeps accounts and profiles in memory.
type fakeUserRepo struct {
	users    map[string]models.User
	profiles map[string]models.UserProfile
	nextID   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    map[string]models.User{},
		profiles: map[string]models.UserProfile{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user models.User) (string, error) {
	if user.ID == "" {
		f.nextID++
		user.ID = fmt.Sprintf("user-%d", f.nextID)
	}
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) Update(ctx context.Context, user models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) SetFCMToken(ctx context.Context, id, token string) error {
	u, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.FCMToken = token
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) SetTokenHash(ctx context.Context, id, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.TokenHash = hash
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	if p, ok := f.profiles[userID]; ok {
		return &p, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) UpsertProfile(ctx context.Context, profile models.UserProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func TestRegisterAndSignIn(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	result, err := svc.Register(ctx, "Ayse@Example.com", "gizli-sifre", models.RolePatient)
	require.NoError(t, err)
	require.NotEmpty(t, result.UserID)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, models.RolePatient, result.Role)

	// Email is normalized and the password hash is not the plaintext.
	stored := repo.users[result.UserID]
	assert.Equal(t, "ayse@example.com", stored.Email)
	assert.NotEqual(t, "gizli-sifre", stored.PasswordHash)
	assert.Equal(t, utils.HashToken(result.Token), stored.TokenHash)

	signedIn, err := svc.SignIn(ctx, "AYSE@example.COM", "gizli-sifre")
	require.NoError(t, err)
	assert.Equal(t, result.UserID, signedIn.UserID)

	// The token round-trips through claim extraction.
	sub, role, err := utils.ExtractClaimsFromToken(signedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, result.UserID, sub)
	assert.Equal(t, string(models.RolePatient), role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	_, err := svc.Register(ctx, "ali@example.com", "parola1", models.RolePhysiotherapist)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "ali@example.com", "parola2", models.RolePatient)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterUnknownRoleDefaultsToPatient(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	result, err := svc.Register(context.Background(), "x@example.com", "parola", models.Role("admin"))
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, result.Role)
}

func TestSignInWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	_, err := svc.Register(ctx, "ali@example.com", "dogru-parola", models.RolePatient)
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, "ali@example.com", "yanlis-parola")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, "bilinmeyen@example.com", "parola")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignOutClearsTokenHash(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	result, err := svc.Register(ctx, "ali@example.com", "parola", models.RolePatient)
	require.NoError(t, err)
	require.NotEmpty(t, repo.users[result.UserID].TokenHash)

	require.NoError(t, svc.SignOut(ctx, result.UserID))
	assert.Empty(t, repo.users[result.UserID].TokenHash)
}

func TestProfileRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	require.Error(t, svc.UpsertProfile(ctx, models.UserProfile{}))

	profile := models.UserProfile{UserID: "u1", FirstName: "Ayşe", LastName: "Yılmaz"}
	require.NoError(t, svc.UpsertProfile(ctx, profile))

	got, err := svc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ayşe Yılmaz", got.FullName())

	_, err = svc.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
