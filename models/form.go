package models

import "time"

// FormType classifies an evaluation form. Stored values that do not match a
// known member are preserved verbatim instead of being aliased at decode
// time; Known reports whether the value is one of the closed set and
// Canonical maps unrecognized values to CUSTOM for scoring and display.
type FormType string

const (
	FormTypeVAS    FormType = "VAS"
	FormTypeDASH   FormType = "DASH"
	FormTypeSF36   FormType = "SF36"
	FormTypeCustom FormType = "CUSTOM"
)

func (t FormType) Known() bool {
	switch t {
	case FormTypeVAS, FormTypeDASH, FormTypeSF36, FormTypeCustom:
		return true
	}
	return false
}

// Canonical returns the member downstream logic should act on. Unrecognized
// stored values canonicalize to CUSTOM; the raw value stays on the form.
func (t FormType) Canonical() FormType {
	if !t.Known() {
		return FormTypeCustom
	}
	return t
}

// ParseFormType decodes a stored type string. A blank value means the form
// predates typed categories and is treated as CUSTOM outright.
func ParseFormType(raw string) FormType {
	if raw == "" {
		return FormTypeCustom
	}
	return FormType(raw)
}

// QuestionType classifies a form question. Same decoding contract as
// FormType, with TEXT as the canonical fallback.
type QuestionType string

const (
	QuestionTypeText           QuestionType = "TEXT"
	QuestionTypeScale          QuestionType = "SCALE"
	QuestionTypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionTypeYesNo          QuestionType = "YES_NO"
)

func (t QuestionType) Known() bool {
	switch t {
	case QuestionTypeText, QuestionTypeScale, QuestionTypeMultipleChoice, QuestionTypeYesNo:
		return true
	}
	return false
}

func (t QuestionType) Canonical() QuestionType {
	if !t.Known() {
		return QuestionTypeText
	}
	return t
}

func ParseQuestionType(raw string) QuestionType {
	if raw == "" {
		return QuestionTypeText
	}
	return QuestionType(raw)
}

// FormQuestion is a single question inside an evaluation form.
type FormQuestion struct {
	ID       string       `bson:"id" json:"id"`
	Text     string       `bson:"text" json:"text"`
	Type     QuestionType `bson:"type" json:"type"`
	Options  []string     `bson:"options,omitempty" json:"options,omitempty"` // ordered; empty unless multiple-choice
	Required bool         `bson:"required" json:"required"`
	Min      int          `bson:"min,omitempty" json:"min,omitempty"`
	Max      int          `bson:"max,omitempty" json:"max,omitempty"`
}

// EvaluationForm is a stored assessment form (VAS, DASH, SF-36 or custom).
// IsCompleted is derived per viewing user and never persisted.
type EvaluationForm struct {
	ID          string         `bson:"id" json:"id"`
	Title       string         `bson:"title" json:"title"`
	Description string         `bson:"description" json:"description"`
	Type        FormType       `bson:"type" json:"type"`
	Questions   []FormQuestion `bson:"questions" json:"questions"`
	MaxScore    int            `bson:"maxScore" json:"maxScore"`
	UserID      string         `bson:"userId" json:"userId"` // blank for library forms with no owner
	DateCreated time.Time      `bson:"dateCreated" json:"dateCreated"`
	IsCompleted bool           `bson:"-" json:"isCompleted"`
}

// FormList pairs decoded forms with the documents that failed to decode.
type FormList struct {
	Forms    []EvaluationForm `json:"forms"`
	Failures []DecodeFailure  `json:"failures,omitempty"`
}
