// File: database/repository/chat/interface.go
package chatRepo

import (
	"context"

	"physiocare/database"
	"physiocare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ChatRepository persists chat threads and messages.
type ChatRepository interface {
	GetThreadByID(ctx context.Context, id string) (*models.ChatThread, error)
	ThreadsByUser(ctx context.Context, userID string) ([]models.ChatThread, error)
	CreateThread(ctx context.Context, thread models.ChatThread) (string, error)
	AppendMessage(ctx context.Context, msg models.ChatMessage) (string, error)
	IncrementUnread(ctx context.Context, threadID, userID string) error
	ResetUnread(ctx context.Context, threadID, userID string) error
	MessagesByThread(ctx context.Context, threadID string) ([]models.ChatMessage, []models.DecodeFailure, error)
	WatchMessages(ctx context.Context, threadID string) *database.Subscription[[]models.ChatMessage]
}

type mongoChatRepo struct {
	threads  *mongo.Collection
	messages *mongo.Collection
}

// NewMongoChatRepo constructs a new MongoDB ChatRepository.
func NewMongoChatRepo() ChatRepository {
	db := database.DB()
	return &mongoChatRepo{
		threads:  db.Collection("chatThreads"),
		messages: db.Collection("messages"),
	}
}
