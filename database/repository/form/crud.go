// File: database/repository/form/crud.go
package formRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"physiocare/models"
)

func (r *mongoFormRepo) Create(ctx context.Context, form models.EvaluationForm) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if form.ID == "" {
		form.ID = uuid.New().String()
	}
	if form.DateCreated.IsZero() {
		form.DateCreated = time.Now()
	}
	if _, err := r.forms.InsertOne(ctx, form); err != nil {
		return "", err
	}
	return form.ID, nil
}

func (r *mongoFormRepo) GetByID(ctx context.Context, id string) (*models.EvaluationForm, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var form models.EvaluationForm
	if err := r.forms.FindOne(ctx, bson.M{"id": id}).Decode(&form); err != nil {
		return nil, err
	}
	normalizeForm(&form)
	return &form, nil
}

func (r *mongoFormRepo) CountByTitles(ctx context.Context, titles []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.forms.CountDocuments(ctx, bson.M{"title": bson.M{"$in": titles}})
}

// SaveResponse upserts a response keyed by its id, generating one when blank.
func (r *mongoFormRepo) SaveResponse(ctx context.Context, resp models.FormResponse) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if resp.ID == "" {
		resp.ID = uuid.New().String()
	}
	if resp.DateCompleted.IsZero() {
		resp.DateCompleted = time.Now()
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.responses.ReplaceOne(ctx, bson.M{"id": resp.ID}, resp, opts); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (r *mongoFormRepo) GetResponseByID(ctx context.Context, id string) (*models.FormResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var resp models.FormResponse
	if err := r.responses.FindOne(ctx, bson.M{"id": id}).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *mongoFormRepo) DeleteResponse(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.responses.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
