package chat

import (
	"context"

	"physiocare/database"
	chatRepo "physiocare/database/repository/chat"
	"physiocare/models"
	"physiocare/services/notification"
)

// ChatService routes messages and shared records between two users.
type ChatService interface {
	// SendMessage delivers content from sender to receiver, reusing their
	// existing shared thread or creating one. Returns the thread and message ids.
	SendMessage(ctx context.Context, senderID, receiverID, content string) (string, string, error)
	ThreadsForUser(ctx context.Context, userID string) ([]models.ChatThread, error)
	Messages(ctx context.Context, threadID string) ([]models.ChatMessage, []models.DecodeFailure, error)
	MarkThreadRead(ctx context.Context, threadID, userID string) error
	WatchMessages(ctx context.Context, threadID string) *database.Subscription[[]models.ChatMessage]
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Repo chatRepo.ChatRepository
	// Notifier is optional; message pushes are best-effort.
	Notifier notification.NotificationService
}
