package form

import (
	"context"
	"fmt"
	"time"

	"physiocare/models"
)

// Well-known titles of the built-in assessment forms. Seeding keys off these.
const (
	DefaultVASTitle  = "VAS - Görsel Analog Skala"
	DefaultDASHTitle = "DASH - Kol, Omuz ve El Sorunları Anketi"
	DefaultSF36Title = "SF-36 - Yaşam Kalitesi Ölçeği"
)

// InitializeDefaultForms seeds the three built-in assessment forms iff none
// of the well-known titles already exist. Idempotent under sequential calls;
// the existence check and the inserts are not transactional, so concurrent
// first launches can still race.
func (s *DefaultFormService) InitializeDefaultForms(ctx context.Context) error {
	titles := []string{DefaultVASTitle, DefaultDASHTitle, DefaultSF36Title}

	count, err := s.Repo.CountByTitles(ctx, titles)
	if err != nil {
		return fmt.Errorf("form: failed to check default forms: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, f := range defaultForms() {
		if _, err := s.Repo.Create(ctx, f); err != nil {
			return fmt.Errorf("form: failed to seed %q: %w", f.Title, err)
		}
	}
	return nil
}

func defaultForms() []models.EvaluationForm {
	now := time.Now()
	return []models.EvaluationForm{
		{
			Title:       DefaultVASTitle,
			Description: "Ağrı şiddetini 0 (ağrı yok) ile 10 (dayanılmaz ağrı) arasında değerlendirin.",
			Type:        models.FormTypeVAS,
			MaxScore:    10,
			DateCreated: now,
			Questions: []models.FormQuestion{
				{ID: "vas-1", Text: "Şu andaki ağrı şiddetinizi işaretleyin.", Type: models.QuestionTypeScale, Required: true, Min: 0, Max: 10},
			},
		},
		{
			Title:       DefaultDASHTitle,
			Description: "Son bir hafta içinde kol, omuz veya elinizle ilgili zorlukları değerlendirin.",
			Type:        models.FormTypeDASH,
			MaxScore:    25,
			DateCreated: now,
			Questions: []models.FormQuestion{
				{ID: "dash-1", Text: "Sıkı kapatılmış bir kavanozu açmak", Type: models.QuestionTypeScale, Required: true, Min: 1, Max: 5},
				{ID: "dash-2", Text: "Ağır bir alışveriş torbası taşımak", Type: models.QuestionTypeScale, Required: true, Min: 1, Max: 5},
				{ID: "dash-3", Text: "Sırtınızı yıkamak", Type: models.QuestionTypeScale, Required: true, Min: 1, Max: 5},
				{ID: "dash-4", Text: "Başınızın üzerindeki bir rafa ulaşmak", Type: models.QuestionTypeScale, Required: true, Min: 1, Max: 5},
				{ID: "dash-5", Text: "Kol, omuz veya el ağrınızın şiddeti", Type: models.QuestionTypeScale, Required: true, Min: 1, Max: 5},
			},
		},
		{
			Title:       DefaultSF36Title,
			Description: "Genel sağlık durumunuz hakkındaki görüşlerinizi değerlendirin.",
			Type:        models.FormTypeSF36,
			MaxScore:    12,
			DateCreated: now,
			Questions: []models.FormQuestion{
				{ID: "sf36-1", Text: "Genel olarak sağlığınızı nasıl değerlendirirsiniz?", Type: models.QuestionTypeScale, Required: true, Min: 1, Max: 5},
				{ID: "sf36-2", Text: "Sağlığınız bugün orta düzeyde aktiviteleri (masa itmek, yürüyüş) kısıtlıyor mu?", Type: models.QuestionTypeYesNo, Required: true},
				{ID: "sf36-3", Text: "Son dört haftada ağrı işinizi ne kadar etkiledi?", Type: models.QuestionTypeScale, Required: true, Min: 1, Max: 5},
				{ID: "sf36-4", Text: "Kendinizi enerjik hissediyor musunuz?", Type: models.QuestionTypeYesNo, Required: true},
			},
		},
	}
}
