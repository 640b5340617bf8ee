package chat

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"physiocare/database"
	"physiocare/models"
	"physiocare/utils"
)

// SendMessage finds or creates the thread shared by sender and receiver,
// appends the message, and bumps the receiver's unread counter. Thread
// matching is a linear scan of the sender's threads in document order; the
// first thread containing both participants wins. The lookup-then-create
// sequence is not atomic, so concurrent first messages between the same two
// users can race into duplicate threads.
func (s *DefaultChatService) SendMessage(ctx context.Context, senderID, receiverID, content string) (string, string, error) {
	logger := utils.GetLogger()

	if senderID == "" || receiverID == "" {
		return "", "", fmt.Errorf("chat: sender and receiver are required")
	}

	threadID, err := s.findOrCreateThread(ctx, senderID, receiverID)
	if err != nil {
		return "", "", err
	}

	msg := models.ChatMessage{
		ThreadID: threadID,
		SenderID: senderID,
		Content:  content,
		SentAt:   time.Now(),
	}
	msgID, err := s.Repo.AppendMessage(ctx, msg)
	if err != nil {
		return "", "", fmt.Errorf("chat: failed to append message: %w", err)
	}

	if err := s.Repo.IncrementUnread(ctx, threadID, receiverID); err != nil {
		return "", "", fmt.Errorf("chat: failed to increment unread counter: %w", err)
	}

	if s.Notifier != nil {
		body := content
		if models.IsAttachment(content) {
			body = "Sizinle bir kayıt paylaşıldı"
		}
		if err := s.Notifier.SendPush(ctx, receiverID, "Yeni mesaj", body, map[string]string{
			"threadId": threadID,
		}); err != nil {
			logger.Warn("chat: push notification failed", zap.String("receiverId", receiverID), zap.Error(err))
		}
	}

	return threadID, msgID, nil
}

func (s *DefaultChatService) findOrCreateThread(ctx context.Context, senderID, receiverID string) (string, error) {
	threads, err := s.Repo.ThreadsByUser(ctx, senderID)
	if err != nil {
		return "", fmt.Errorf("chat: failed to list threads: %w", err)
	}
	for _, t := range threads {
		if t.HasParticipant(senderID) && t.HasParticipant(receiverID) {
			return t.ID, nil
		}
	}

	thread := models.ChatThread{
		ParticipantIDs: []string{senderID, receiverID},
		UnreadCounts:   map[string]int{senderID: 0, receiverID: 0},
		CreatedAt:      time.Now(),
	}
	id, err := s.Repo.CreateThread(ctx, thread)
	if err != nil {
		return "", fmt.Errorf("chat: failed to create thread: %w", err)
	}
	return id, nil
}

func (s *DefaultChatService) ThreadsForUser(ctx context.Context, userID string) ([]models.ChatThread, error) {
	return s.Repo.ThreadsByUser(ctx, userID)
}

func (s *DefaultChatService) Messages(ctx context.Context, threadID string) ([]models.ChatMessage, []models.DecodeFailure, error) {
	return s.Repo.MessagesByThread(ctx, threadID)
}

// MarkThreadRead zeroes the user's unread counter for the thread.
func (s *DefaultChatService) MarkThreadRead(ctx context.Context, threadID, userID string) error {
	return s.Repo.ResetUnread(ctx, threadID, userID)
}

func (s *DefaultChatService) WatchMessages(ctx context.Context, threadID string) *database.Subscription[[]models.ChatMessage] {
	return s.Repo.WatchMessages(ctx, threadID)
}
