package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormTypeCanonical(t *testing.T) {
	tests := []struct {
		raw       string
		want      FormType
		canonical FormType
		known     bool
	}{
		{"VAS", FormTypeVAS, FormTypeVAS, true},
		{"DASH", FormTypeDASH, FormTypeDASH, true},
		{"SF36", FormTypeSF36, FormTypeSF36, true},
		{"CUSTOM", FormTypeCustom, FormTypeCustom, true},
		{"", FormTypeCustom, FormTypeCustom, true},
		// Unrecognized stored values survive verbatim but act as CUSTOM.
		{"BERG_BALANCE", FormType("BERG_BALANCE"), FormTypeCustom, false},
		{"vas", FormType("vas"), FormTypeCustom, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			parsed := ParseFormType(tt.raw)
			assert.Equal(t, tt.want, parsed)
			assert.Equal(t, tt.canonical, parsed.Canonical())
			assert.Equal(t, tt.known, parsed.Known())
		})
	}
}

func TestQuestionTypeCanonical(t *testing.T) {
	tests := []struct {
		raw       string
		want      QuestionType
		canonical QuestionType
	}{
		{"TEXT", QuestionTypeText, QuestionTypeText},
		{"SCALE", QuestionTypeScale, QuestionTypeScale},
		{"MULTIPLE_CHOICE", QuestionTypeMultipleChoice, QuestionTypeMultipleChoice},
		{"YES_NO", QuestionTypeYesNo, QuestionTypeYesNo},
		{"", QuestionTypeText, QuestionTypeText},
		{"SLIDER", QuestionType("SLIDER"), QuestionTypeText},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			parsed := ParseQuestionType(tt.raw)
			assert.Equal(t, tt.want, parsed)
			assert.Equal(t, tt.canonical, parsed.Canonical())
		})
	}
}
