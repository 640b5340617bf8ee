// File: database/repository/form/queries.go
package formRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"physiocare/models"
)

// GetAll returns the library forms (forms with no owner) ordered by title.
// Documents that fail to decode are reported, not dropped.
func (r *mongoFormRepo) GetAll(ctx context.Context) ([]models.EvaluationForm, []models.DecodeFailure, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := r.forms.Find(ctx, bson.M{"userId": ""}, opts)
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close(ctx)

	var (
		forms    []models.EvaluationForm
		failures []models.DecodeFailure
	)
	for cursor.Next(ctx) {
		var form models.EvaluationForm
		if err := cursor.Decode(&form); err != nil {
			failures = append(failures, models.DecodeFailure{
				ID:     rawDocumentID(cursor.Current),
				Reason: err.Error(),
			})
			continue
		}
		normalizeForm(&form)
		forms = append(forms, form)
	}
	if err := cursor.Err(); err != nil {
		return nil, nil, err
	}
	return forms, failures, nil
}

func (r *mongoFormRepo) GetResponsesByUser(ctx context.Context, userID string) ([]models.FormResponse, []models.DecodeFailure, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dateCompleted", Value: -1}})
	cursor, err := r.responses.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close(ctx)

	var (
		responses []models.FormResponse
		failures  []models.DecodeFailure
	)
	for cursor.Next(ctx) {
		var resp models.FormResponse
		if err := cursor.Decode(&resp); err != nil {
			failures = append(failures, models.DecodeFailure{
				ID:     rawDocumentID(cursor.Current),
				Reason: err.Error(),
			})
			continue
		}
		responses = append(responses, resp)
	}
	if err := cursor.Err(); err != nil {
		return nil, nil, err
	}
	return responses, failures, nil
}

// CompletedFormIDs returns the set of form ids the user has responded to.
func (r *mongoFormRepo) CompletedFormIDs(ctx context.Context, userID string) (map[string]bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ids, err := r.responses.Distinct(ctx, "formId", bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	completed := make(map[string]bool, len(ids))
	for _, raw := range ids {
		if id, ok := raw.(string); ok && id != "" {
			completed[id] = true
		}
	}
	return completed, nil
}

// normalizeForm applies the enum decoding contract: blank types become their
// canonical defaults while unrecognized stored values are preserved.
func normalizeForm(form *models.EvaluationForm) {
	form.Type = models.ParseFormType(string(form.Type))
	for i := range form.Questions {
		form.Questions[i].Type = models.ParseQuestionType(string(form.Questions[i].Type))
	}
}

// rawDocumentID pulls the application-level id out of a raw document so a
// decode failure can still be attributed.
func rawDocumentID(doc bson.Raw) string {
	if id, ok := doc.Lookup("id").StringValueOK(); ok {
		return id
	}
	if oid, ok := doc.Lookup("_id").ObjectIDOK(); ok {
		return oid.Hex()
	}
	return "unknown"
}
