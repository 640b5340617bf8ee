package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"

	"physiocare/utils"
)

// SendPush looks up the user's FCM token and sends a push.
func (s *DefaultNotificationService) SendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendPush: could not find user %s: %w", userID, err)
	}
	if user.FCMToken == "" {
		return fmt.Errorf("SendPush: user %s has no FCM token", userID)
	}
	if utils.FCMClient == nil {
		return fmt.Errorf("SendPush: FCM client not initialized")
	}

	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = string(user.Role)
	}

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPush: failed to send FCM message: %w", err)
	}
	return nil
}
