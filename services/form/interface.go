package form

import (
	"context"

	"physiocare/database"
	formRepo "physiocare/database/repository/form"
	"physiocare/models"
	"physiocare/services/chat"
)

// FormService owns the evaluation-form and response lifecycle: library
// streams with per-user completion, response persistence with lazy title
// backfill, sharing through chat, and default-form seeding.
type FormService interface {
	Forms(ctx context.Context, userID string) *database.Subscription[models.FormList]
	FormByID(ctx context.Context, id string) *database.Subscription[models.EvaluationForm]
	GetForms(ctx context.Context, userID string) (models.FormList, error)
	GetFormByID(ctx context.Context, id string) (*models.EvaluationForm, error)

	SaveResponse(ctx context.Context, resp models.FormResponse) (string, error)
	ResponsesByUser(ctx context.Context, userID string) ([]models.FormResponse, []models.DecodeFailure, error)
	ResponseByID(ctx context.Context, id string) (*models.FormResponse, error)
	DeleteResponse(ctx context.Context, id string) error
	ShareResponse(ctx context.Context, responseID, senderID, receiverID string) (string, error)

	InitializeDefaultForms(ctx context.Context) error
}

// DefaultFormService is the production implementation.
type DefaultFormService struct {
	Repo formRepo.FormRepository
	Chat chat.ChatService
}
