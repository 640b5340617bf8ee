package models

import "time"

// Fallback titles used when a response's denormalized title is blank and the
// referenced form cannot supply one.
const (
	FallbackResponseTitle = "Form Yanıtı"
	FallbackFormTitle     = "Bilinmeyen Form"
)

// FormResponse is a user's completed answer set for an evaluation form.
// FormID and UserID are weak references; Title is denormalized from the form
// at write time and backfilled lazily at read time when blank.
type FormResponse struct {
	ID            string            `bson:"id" json:"id"`
	FormID        string            `bson:"formId" json:"formId"`
	UserID        string            `bson:"userId" json:"userId"`
	Title         string            `bson:"title" json:"title"`
	Answers       map[string]string `bson:"answers" json:"answers"` // question id -> free-text answer
	Score         int               `bson:"score" json:"score"`
	MaxScore      int               `bson:"maxScore" json:"maxScore"`
	Notes         string            `bson:"notes,omitempty" json:"notes,omitempty"`
	DateCompleted time.Time         `bson:"dateCompleted" json:"dateCompleted"`
}

// SharedFormResponse is the payload subset embedded in a chat attachment when
// a response is shared with another user.
type SharedFormResponse struct {
	ResponseID    string    `json:"responseId"`
	FormID        string    `json:"formId"`
	Title         string    `json:"title"`
	Score         int       `json:"score"`
	MaxScore      int       `json:"maxScore"`
	Notes         string    `json:"notes,omitempty"`
	DateCompleted time.Time `json:"dateCompleted"`
}
