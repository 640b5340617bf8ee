package form

import (
	"strconv"
	"strings"

	"physiocare/models"
)

// ComputeScore derives a response score from free-text answers. Scale answers
// parse as integers clamped to the question bounds, yes/no answers count as
// 1/0, multiple-choice answers score by option position. Text questions do
// not contribute. A form-level MaxScore overrides the computed maximum.
func ComputeScore(form models.EvaluationForm, answers map[string]string) (int, int) {
	var score, maxScore int

	for _, q := range form.Questions {
		answer := answers[q.ID]

		switch q.Type.Canonical() {
		case models.QuestionTypeScale:
			maxScore += q.Max
			if answer == "" {
				continue
			}
			val, err := strconv.Atoi(strings.TrimSpace(answer))
			if err != nil {
				continue
			}
			if val < q.Min {
				val = q.Min
			}
			if val > q.Max {
				val = q.Max
			}
			score += val

		case models.QuestionTypeYesNo:
			maxScore++
			if isAffirmative(answer) {
				score++
			}

		case models.QuestionTypeMultipleChoice:
			if len(q.Options) == 0 {
				continue
			}
			maxScore += len(q.Options) - 1
			for i, opt := range q.Options {
				if strings.EqualFold(strings.TrimSpace(answer), opt) {
					score += i
					break
				}
			}
		}
	}

	if form.MaxScore > 0 {
		maxScore = form.MaxScore
	}
	return score, maxScore
}

func isAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "evet", "true", "1":
		return true
	}
	return false
}
