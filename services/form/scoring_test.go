package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"physiocare/models"
)

func TestComputeScoreScaleClamping(t *testing.T) {
	form := models.EvaluationForm{
		Questions: []models.FormQuestion{
			{ID: "q1", Type: models.QuestionTypeScale, Min: 1, Max: 5},
			{ID: "q2", Type: models.QuestionTypeScale, Min: 1, Max: 5},
			{ID: "q3", Type: models.QuestionTypeScale, Min: 1, Max: 5},
		},
	}

	score, maxScore := ComputeScore(form, map[string]string{
		"q1": "3",
		"q2": "12", // above the bound, clamps to 5
		"q3": "0",  // below the bound, clamps to 1
	})
	assert.Equal(t, 9, score)
	assert.Equal(t, 15, maxScore)
}

func TestComputeScoreYesNo(t *testing.T) {
	form := models.EvaluationForm{
		Questions: []models.FormQuestion{
			{ID: "q1", Type: models.QuestionTypeYesNo},
			{ID: "q2", Type: models.QuestionTypeYesNo},
			{ID: "q3", Type: models.QuestionTypeYesNo},
			{ID: "q4", Type: models.QuestionTypeYesNo},
		},
	}

	score, maxScore := ComputeScore(form, map[string]string{
		"q1": "Evet",
		"q2": "yes",
		"q3": "hayır",
		"q4": "no",
	})
	assert.Equal(t, 2, score)
	assert.Equal(t, 4, maxScore)
}

func TestComputeScoreMultipleChoice(t *testing.T) {
	form := models.EvaluationForm{
		Questions: []models.FormQuestion{
			{ID: "q1", Type: models.QuestionTypeMultipleChoice, Options: []string{"Hiç", "Bazen", "Sık sık", "Her zaman"}},
		},
	}

	score, maxScore := ComputeScore(form, map[string]string{"q1": "sık sık"})
	assert.Equal(t, 2, score)
	assert.Equal(t, 3, maxScore)
}

func TestComputeScoreIgnoresTextAndUnparseable(t *testing.T) {
	form := models.EvaluationForm{
		Questions: []models.FormQuestion{
			{ID: "q1", Type: models.QuestionTypeText},
			{ID: "q2", Type: models.QuestionTypeScale, Min: 0, Max: 10},
			// Unknown stored types score as TEXT.
			{ID: "q3", Type: models.QuestionType("SLIDER")},
		},
	}

	score, maxScore := ComputeScore(form, map[string]string{
		"q1": "serbest metin",
		"q2": "yedi",
		"q3": "5",
	})
	assert.Equal(t, 0, score)
	assert.Equal(t, 10, maxScore)
}

func TestComputeScoreFormMaxOverrides(t *testing.T) {
	form := models.EvaluationForm{
		MaxScore: 100,
		Questions: []models.FormQuestion{
			{ID: "q1", Type: models.QuestionTypeScale, Min: 0, Max: 10},
		},
	}

	score, maxScore := ComputeScore(form, map[string]string{"q1": "4"})
	assert.Equal(t, 4, score)
	assert.Equal(t, 100, maxScore)
}
