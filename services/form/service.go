package form

import (
	"context"
	"fmt"

	"physiocare/database"
	"physiocare/models"
)

// GetForms returns the form library annotated with the user's completion
// status. Decode failures ride along instead of being dropped.
func (s *DefaultFormService) GetForms(ctx context.Context, userID string) (models.FormList, error) {
	forms, failures, err := s.Repo.GetAll(ctx)
	if err != nil {
		return models.FormList{}, fmt.Errorf("form: failed to load forms: %w", err)
	}

	completed, err := s.Repo.CompletedFormIDs(ctx, userID)
	if err != nil {
		return models.FormList{}, fmt.Errorf("form: failed to load completion status: %w", err)
	}
	for i := range forms {
		forms[i].IsCompleted = completed[forms[i].ID]
	}
	return models.FormList{Forms: forms, Failures: failures}, nil
}

// Forms opens a restartable stream over the library, re-annotated per change.
func (s *DefaultFormService) Forms(ctx context.Context, userID string) *database.Subscription[models.FormList] {
	fetch := func(ctx context.Context) models.Resource[models.FormList] {
		list, err := s.GetForms(ctx, userID)
		if err != nil {
			return models.Failure[models.FormList]("Formlar yüklenemedi", err)
		}
		return models.Success(list)
	}
	return s.Repo.WatchAll(ctx, fetch)
}

func (s *DefaultFormService) FormByID(ctx context.Context, id string) *database.Subscription[models.EvaluationForm] {
	return s.Repo.WatchByID(ctx, id)
}

func (s *DefaultFormService) GetFormByID(ctx context.Context, id string) (*models.EvaluationForm, error) {
	form, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("form: failed to load form %s: %w", id, err)
	}
	return form, nil
}

// SaveResponse upserts the response. The denormalized title is copied from
// the referenced form when the caller left it blank, and the score is
// computed from the answers when none was supplied. Answer shape is not
// otherwise validated.
func (s *DefaultFormService) SaveResponse(ctx context.Context, resp models.FormResponse) (string, error) {
	if resp.Title == "" || resp.Score == 0 {
		if form, err := s.Repo.GetByID(ctx, resp.FormID); err == nil {
			if resp.Title == "" {
				resp.Title = form.Title
			}
			if resp.Score == 0 {
				score, maxScore := ComputeScore(*form, resp.Answers)
				resp.Score = score
				if resp.MaxScore == 0 {
					resp.MaxScore = maxScore
				}
			}
		}
	}

	id, err := s.Repo.SaveResponse(ctx, resp)
	if err != nil {
		return "", fmt.Errorf("form: failed to save response: %w", err)
	}
	return id, nil
}

func (s *DefaultFormService) ResponsesByUser(ctx context.Context, userID string) ([]models.FormResponse, []models.DecodeFailure, error) {
	responses, failures, err := s.Repo.GetResponsesByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("form: failed to load responses: %w", err)
	}
	for i := range responses {
		s.backfillTitle(ctx, &responses[i])
	}
	if responses == nil {
		responses = []models.FormResponse{}
	}
	return responses, failures, nil
}

func (s *DefaultFormService) ResponseByID(ctx context.Context, id string) (*models.FormResponse, error) {
	resp, err := s.Repo.GetResponseByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrResponseNotFound
		}
		return nil, fmt.Errorf("form: failed to load response %s: %w", id, err)
	}
	s.backfillTitle(ctx, resp)
	return resp, nil
}

func (s *DefaultFormService) DeleteResponse(ctx context.Context, id string) error {
	if err := s.Repo.DeleteResponse(ctx, id); err != nil {
		if database.IsNotFound(err) {
			return ErrResponseNotFound
		}
		return fmt.Errorf("form: failed to delete response %s: %w", id, err)
	}
	return nil
}

// backfillTitle lazily fills a blank denormalized title from the referenced
// form; a missing or unresolvable form yields the fixed fallback.
func (s *DefaultFormService) backfillTitle(ctx context.Context, resp *models.FormResponse) {
	if resp.Title != "" {
		return
	}
	if resp.FormID != "" {
		if form, err := s.Repo.GetByID(ctx, resp.FormID); err == nil && form.Title != "" {
			resp.Title = form.Title
			return
		}
	}
	resp.Title = models.FallbackFormTitle
}
