// File: database/repository/form/watch.go
package formRepo

import (
	"context"

	"physiocare/database"
	"physiocare/models"
)

// WatchAll opens a restartable stream over the form library. The fetch
// function is supplied by the service layer so each emission carries
// per-user completion annotations.
func (r *mongoFormRepo) WatchAll(
	ctx context.Context,
	fetch func(context.Context) models.Resource[models.FormList],
) *database.Subscription[models.FormList] {
	return database.WatchCollection(ctx, r.forms, fetch)
}

// WatchByID streams a single form document, re-reading it on every change to
// the collection. A missing document is a distinct not-found error.
func (r *mongoFormRepo) WatchByID(ctx context.Context, id string) *database.Subscription[models.EvaluationForm] {
	fetch := func(ctx context.Context) models.Resource[models.EvaluationForm] {
		form, err := r.GetByID(ctx, id)
		if err != nil {
			if database.IsNotFound(err) {
				return models.Failure[models.EvaluationForm]("Form bulunamadı", err)
			}
			return models.Failure[models.EvaluationForm]("Form yüklenemedi", err)
		}
		return models.Success(*form)
	}
	return database.WatchCollection(ctx, r.forms, fetch)
}
