// File: database/repository/form/interface.go
package formRepo

import (
	"context"

	"physiocare/database"
	"physiocare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// FormRepository persists evaluation forms and their responses.
type FormRepository interface {
	// Forms.
	Create(ctx context.Context, form models.EvaluationForm) (string, error)
	GetByID(ctx context.Context, id string) (*models.EvaluationForm, error)
	GetAll(ctx context.Context) ([]models.EvaluationForm, []models.DecodeFailure, error)
	CountByTitles(ctx context.Context, titles []string) (int64, error)
	WatchAll(ctx context.Context, fetch func(context.Context) models.Resource[models.FormList]) *database.Subscription[models.FormList]
	WatchByID(ctx context.Context, id string) *database.Subscription[models.EvaluationForm]

	// Responses.
	SaveResponse(ctx context.Context, resp models.FormResponse) (string, error)
	GetResponseByID(ctx context.Context, id string) (*models.FormResponse, error)
	GetResponsesByUser(ctx context.Context, userID string) ([]models.FormResponse, []models.DecodeFailure, error)
	CompletedFormIDs(ctx context.Context, userID string) (map[string]bool, error)
	DeleteResponse(ctx context.Context, id string) error
}

type mongoFormRepo struct {
	forms     *mongo.Collection
	responses *mongo.Collection
}

// NewMongoFormRepo constructs a new MongoDB FormRepository.
func NewMongoFormRepo() FormRepository {
	db := database.DB()
	return &mongoFormRepo{
		forms:     db.Collection("evaluationForms"),
		responses: db.Collection("formResponses"),
	}
}
