package chat

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"physiocare/database"
	"physiocare/models"
)

// fakeChatRepo keeps threads and messages in memory, in insertion order.
type fakeChatRepo struct {
	threads  []models.ChatThread
	messages []models.ChatMessage
	nextID   int
}

func (f *fakeChatRepo) genID() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

func (f *fakeChatRepo) GetThreadByID(ctx context.Context, id string) (*models.ChatThread, error) {
	for _, t := range f.threads {
		if t.ID == id {
			cp := t
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeChatRepo) ThreadsByUser(ctx context.Context, userID string) ([]models.ChatThread, error) {
	var out []models.ChatThread
	for _, t := range f.threads {
		if t.HasParticipant(userID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) CreateThread(ctx context.Context, thread models.ChatThread) (string, error) {
	if thread.ID == "" {
		thread.ID = f.genID()
	}
	f.threads = append(f.threads, thread)
	return thread.ID, nil
}

func (f *fakeChatRepo) AppendMessage(ctx context.Context, msg models.ChatMessage) (string, error) {
	if msg.ID == "" {
		msg.ID = f.genID()
	}
	f.messages = append(f.messages, msg)
	for i := range f.threads {
		if f.threads[i].ID == msg.ThreadID {
			f.threads[i].LastMessage = msg.Content
			f.threads[i].LastMessageAt = msg.SentAt
		}
	}
	return msg.ID, nil
}

func (f *fakeChatRepo) IncrementUnread(ctx context.Context, threadID, userID string) error {
	for i := range f.threads {
		if f.threads[i].ID == threadID {
			if f.threads[i].UnreadCounts == nil {
				f.threads[i].UnreadCounts = map[string]int{}
			}
			f.threads[i].UnreadCounts[userID]++
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeChatRepo) ResetUnread(ctx context.Context, threadID, userID string) error {
	for i := range f.threads {
		if f.threads[i].ID == threadID {
			if f.threads[i].UnreadCounts != nil {
				f.threads[i].UnreadCounts[userID] = 0
			}
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeChatRepo) MessagesByThread(ctx context.Context, threadID string) ([]models.ChatMessage, []models.DecodeFailure, error) {
	var out []models.ChatMessage
	for _, m := range f.messages {
		if m.ThreadID == threadID {
			out = append(out, m)
		}
	}
	return out, nil, nil
}

func (f *fakeChatRepo) WatchMessages(ctx context.Context, threadID string) *database.Subscription[[]models.ChatMessage] {
	return nil
}

// fakeNotifier records pushes.
type fakeNotifier struct {
	bodies []string
	err    error
}

func (n *fakeNotifier) SendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	n.bodies = append(n.bodies, body)
	return n.err
}

func TestSendMessageCreatesThread(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := &DefaultChatService{Repo: repo}
	ctx := context.Background()

	threadID, msgID, err := svc.SendMessage(ctx, "patient-1", "physio-1", "Merhaba")
	require.NoError(t, err)
	require.NotEmpty(t, threadID)
	require.NotEmpty(t, msgID)

	require.Len(t, repo.threads, 1)
	thread := repo.threads[0]
	assert.True(t, thread.HasParticipant("patient-1"))
	assert.True(t, thread.HasParticipant("physio-1"))
	assert.Equal(t, "Merhaba", thread.LastMessage)
	assert.Equal(t, 1, thread.UnreadCounts["physio-1"])
	assert.Equal(t, 0, thread.UnreadCounts["patient-1"])
}

func TestSendMessageReusesFirstMatchingThread(t *testing.T) {
	repo := &fakeChatRepo{}
	ctx := context.Background()

	// Two threads share both participants; the first in document order wins.
	first, err := repo.CreateThread(ctx, models.ChatThread{ParticipantIDs: []string{"a", "b"}})
	require.NoError(t, err)
	_, err = repo.CreateThread(ctx, models.ChatThread{ParticipantIDs: []string{"a", "b"}})
	require.NoError(t, err)

	svc := &DefaultChatService{Repo: repo}
	threadID, _, err := svc.SendMessage(ctx, "a", "b", "hangisi?")
	require.NoError(t, err)
	assert.Equal(t, first, threadID)
	assert.Len(t, repo.threads, 2)
}

func TestSendMessageDirectionAgnosticThreadMatch(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := &DefaultChatService{Repo: repo}
	ctx := context.Background()

	forward, _, err := svc.SendMessage(ctx, "a", "b", "bir")
	require.NoError(t, err)
	reverse, _, err := svc.SendMessage(ctx, "b", "a", "iki")
	require.NoError(t, err)

	assert.Equal(t, forward, reverse)
	assert.Len(t, repo.threads, 1)
}

func TestMarkThreadReadResetsCounter(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := &DefaultChatService{Repo: repo}
	ctx := context.Background()

	threadID, _, err := svc.SendMessage(ctx, "a", "b", "bir")
	require.NoError(t, err)
	_, _, err = svc.SendMessage(ctx, "a", "b", "iki")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.threads[0].UnreadCounts["b"])

	require.NoError(t, svc.MarkThreadRead(ctx, threadID, "b"))
	assert.Equal(t, 0, repo.threads[0].UnreadCounts["b"])
}

func TestSendMessagePushBodyForAttachment(t *testing.T) {
	repo := &fakeChatRepo{}
	notifier := &fakeNotifier{}
	svc := &DefaultChatService{Repo: repo, Notifier: notifier}
	ctx := context.Background()

	_, _, err := svc.SendMessage(ctx, "a", "b", "düz metin")
	require.NoError(t, err)

	content, err := models.EncodeAttachment(models.AttachmentEvaluationForm, map[string]string{"responseId": "r1"})
	require.NoError(t, err)
	_, _, err = svc.SendMessage(ctx, "a", "b", content)
	require.NoError(t, err)

	require.Len(t, notifier.bodies, 2)
	assert.Equal(t, "düz metin", notifier.bodies[0])
	// Raw envelope JSON never reaches the push preview.
	assert.Equal(t, "Sizinle bir kayıt paylaşıldı", notifier.bodies[1])
}

func TestSendMessagePushFailureIsNotFatal(t *testing.T) {
	repo := &fakeChatRepo{}
	notifier := &fakeNotifier{err: fmt.Errorf("fcm down")}
	svc := &DefaultChatService{Repo: repo, Notifier: notifier}

	_, _, err := svc.SendMessage(context.Background(), "a", "b", "merhaba")
	assert.NoError(t, err)
	assert.Len(t, repo.messages, 1)
}

func TestSendMessageRequiresParticipants(t *testing.T) {
	svc := &DefaultChatService{Repo: &fakeChatRepo{}}
	_, _, err := svc.SendMessage(context.Background(), "", "b", "x")
	assert.Error(t, err)
	_, _, err = svc.SendMessage(context.Background(), "a", "", "x")
	assert.Error(t, err)
}
