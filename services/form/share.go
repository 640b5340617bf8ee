package form

import (
	"context"
	"fmt"

	"physiocare/models"
)

// ShareResponse serializes a subset of the response into a versioned chat
// attachment and delivers it to the receiver through their shared thread.
// Returns the thread id the attachment landed in.
func (s *DefaultFormService) ShareResponse(ctx context.Context, responseID, senderID, receiverID string) (string, error) {
	if s.Chat == nil {
		return "", fmt.Errorf("form: chat service not configured")
	}

	resp, err := s.ResponseByID(ctx, responseID)
	if err != nil {
		return "", err
	}

	title := resp.Title
	if title == "" {
		title = models.FallbackResponseTitle
	}

	payload := models.SharedFormResponse{
		ResponseID:    resp.ID,
		FormID:        resp.FormID,
		Title:         title,
		Score:         resp.Score,
		MaxScore:      resp.MaxScore,
		Notes:         resp.Notes,
		DateCompleted: resp.DateCompleted,
	}
	content, err := models.EncodeAttachment(models.AttachmentEvaluationForm, payload)
	if err != nil {
		return "", fmt.Errorf("form: failed to encode shared response: %w", err)
	}

	threadID, _, err := s.Chat.SendMessage(ctx, senderID, receiverID, content)
	if err != nil {
		return "", fmt.Errorf("form: failed to share response: %w", err)
	}
	return threadID, nil
}
