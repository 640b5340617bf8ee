package models

import "time"

// ChatThread is a persisted grouping of exactly two participant identifiers.
// UnreadCounts tracks unseen messages per participant and is mutated only via
// atomic counter increments.
type ChatThread struct {
	ID             string         `bson:"id" json:"id"`
	ParticipantIDs []string       `bson:"participantIds" json:"participantIds"`
	UnreadCounts   map[string]int `bson:"unreadCounts,omitempty" json:"unreadCounts,omitempty"`
	LastMessage    string         `bson:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	LastMessageAt  time.Time      `bson:"lastMessageAt,omitempty" json:"lastMessageAt,omitempty"`
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt"`
}

// HasParticipant reports whether the given user is one of the two participants.
func (t ChatThread) HasParticipant(userID string) bool {
	for _, id := range t.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ChatMessage is a single message in a thread. Shared records travel as
// envelope-encoded content (see DecodeAttachment).
type ChatMessage struct {
	ID       string    `bson:"id" json:"id"`
	ThreadID string    `bson:"threadId" json:"threadId"`
	SenderID string    `bson:"senderId" json:"senderId"`
	Content  string    `bson:"content" json:"content"`
	SentAt   time.Time `bson:"sentAt" json:"sentAt"`
}
