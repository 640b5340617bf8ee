// File: database/repository/user/interface.go
package userRepo

import (
	"context"

	"physiocare/database"
	"physiocare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository persists accounts and display profiles.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user models.User) error
	SetFCMToken(ctx context.Context, id, token string) error
	SetTokenHash(ctx context.Context, id, hash string) error
	Delete(ctx context.Context, id string) error

	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpsertProfile(ctx context.Context, profile models.UserProfile) error
}

type mongoUserRepo struct {
	users    *mongo.Collection
	profiles *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	db := database.DB()
	return &mongoUserRepo{
		users:    db.Collection("user"),
		profiles: db.Collection("user_profiles"),
	}
}
