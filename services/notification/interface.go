package notification

import (
	"context"

	userRepo "physiocare/database/repository/user"
)

// NotificationService sends FCM pushes to platform users.
type NotificationService interface {
	SendPush(ctx context.Context, userID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}
