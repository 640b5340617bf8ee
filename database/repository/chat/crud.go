// File: database/repository/chat/crud.go
package chatRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"physiocare/database"
	"physiocare/models"
)

func (r *mongoChatRepo) GetThreadByID(ctx context.Context, id string) (*models.ChatThread, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var thread models.ChatThread
	if err := r.threads.FindOne(ctx, bson.M{"id": id}).Decode(&thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

// ThreadsByUser returns the user's threads in document order. Thread matching
// during sharing relies on this ordering for its first-match tie-break.
func (r *mongoChatRepo) ThreadsByUser(ctx context.Context, userID string) ([]models.ChatThread, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.threads.Find(ctx, bson.M{"participantIds": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var threads []models.ChatThread
	if err := cursor.All(ctx, &threads); err != nil {
		return nil, err
	}
	return threads, nil
}

func (r *mongoChatRepo) CreateThread(ctx context.Context, thread models.ChatThread) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if thread.ID == "" {
		thread.ID = uuid.New().String()
	}
	if thread.CreatedAt.IsZero() {
		thread.CreatedAt = time.Now()
	}
	if thread.UnreadCounts == nil {
		thread.UnreadCounts = make(map[string]int, len(thread.ParticipantIDs))
	}
	if _, err := r.threads.InsertOne(ctx, thread); err != nil {
		return "", err
	}
	return thread.ID, nil
}

// AppendMessage inserts a message and refreshes the thread's last-message
// denormalization in a second write. The two writes are not transactional.
func (r *mongoChatRepo) AppendMessage(ctx context.Context, msg models.ChatMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.SentAt.IsZero() {
		msg.SentAt = time.Now()
	}
	if _, err := r.messages.InsertOne(ctx, msg); err != nil {
		return "", err
	}

	update := bson.M{"$set": bson.M{
		"lastMessage":   msg.Content,
		"lastMessageAt": msg.SentAt,
	}}
	if _, err := r.threads.UpdateOne(ctx, bson.M{"id": msg.ThreadID}, update); err != nil {
		return "", err
	}
	return msg.ID, nil
}

// IncrementUnread bumps the receiver's unread counter with the store's native
// atomic increment.
func (r *mongoChatRepo) IncrementUnread(ctx context.Context, threadID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$inc": bson.M{"unreadCounts." + userID: 1}}
	res, err := r.threads.UpdateOne(ctx, bson.M{"id": threadID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoChatRepo) ResetUnread(ctx context.Context, threadID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"unreadCounts." + userID: 0}}
	_, err := r.threads.UpdateOne(ctx, bson.M{"id": threadID}, update)
	return err
}

func (r *mongoChatRepo) MessagesByThread(ctx context.Context, threadID string) ([]models.ChatMessage, []models.DecodeFailure, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.messages.Find(ctx, bson.M{"threadId": threadID})
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close(ctx)

	var (
		msgs     []models.ChatMessage
		failures []models.DecodeFailure
	)
	for cursor.Next(ctx) {
		var msg models.ChatMessage
		if err := cursor.Decode(&msg); err != nil {
			id := "unknown"
			if v, ok := cursor.Current.Lookup("id").StringValueOK(); ok {
				id = v
			}
			failures = append(failures, models.DecodeFailure{ID: id, Reason: err.Error()})
			continue
		}
		msgs = append(msgs, msg)
	}
	if err := cursor.Err(); err != nil {
		return nil, nil, err
	}
	return msgs, failures, nil
}

// WatchMessages streams a thread's messages, re-reading on every change.
func (r *mongoChatRepo) WatchMessages(ctx context.Context, threadID string) *database.Subscription[[]models.ChatMessage] {
	fetch := func(ctx context.Context) models.Resource[[]models.ChatMessage] {
		msgs, _, err := r.MessagesByThread(ctx, threadID)
		if err != nil {
			return models.Failure[[]models.ChatMessage]("Mesajlar yüklenemedi", err)
		}
		return models.Success(msgs)
	}
	return database.WatchCollection(ctx, r.messages, fetch)
}
