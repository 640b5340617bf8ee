package user

import (
	"context"

	userRepo "physiocare/database/repository/user"
	"physiocare/models"

	"github.com/go-redis/redis/v8"
)

// AuthResult carries the outcome of a successful registration or sign-in.
type AuthResult struct {
	UserID string      `json:"userId"`
	Role   models.Role `json:"role"`
	Token  string      `json:"token"`
}

// UserService owns accounts, sessions and display profiles.
type UserService interface {
	Register(ctx context.Context, email, password string, role models.Role) (*AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	SignOut(ctx context.Context, userID string) error

	GetByID(ctx context.Context, id string) (*models.User, error)
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpsertProfile(ctx context.Context, profile models.UserProfile) error
	UpdateFCMToken(ctx context.Context, userID, token string) error
}

// DefaultUserService is the production implementation. AuthCache may be nil,
// in which case token revocation falls back to the stored hash alone.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}
