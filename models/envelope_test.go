package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeAttachment(t *testing.T) {
	payload := SharedFormResponse{
		ResponseID:    "resp-1",
		FormID:        "form-1",
		Title:         "VAS - Görsel Analog Skala",
		Score:         7,
		MaxScore:      10,
		DateCompleted: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	content, err := EncodeAttachment(AttachmentEvaluationForm, payload)
	require.NoError(t, err)

	env, err := DecodeAttachment(content)
	require.NoError(t, err)
	assert.Equal(t, AttachmentEvaluationForm, env.Kind)
	assert.Equal(t, EnvelopeVersion, env.Version)

	var decoded SharedFormResponse
	require.NoError(t, json.Unmarshal(env.Payload, &decoded))
	assert.Equal(t, payload.ResponseID, decoded.ResponseID)
	assert.Equal(t, payload.Score, decoded.Score)
	assert.True(t, payload.DateCompleted.Equal(decoded.DateCompleted))
}

func TestEncodeAttachmentUnknownKind(t *testing.T) {
	_, err := EncodeAttachment(AttachmentKind("prescription"), map[string]string{})
	assert.Error(t, err)
}

func TestDecodeAttachmentRejectsBadEnvelopes(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"plain text", "merhaba"},
		{"unknown kind", `{"kind":"prescription","version":1,"payload":{}}`},
		{"version zero", `{"kind":"evaluation_form","version":0,"payload":{}}`},
		{"future version", `{"kind":"evaluation_form","version":2,"payload":{}}`},
		{"missing payload", `{"kind":"evaluation_form","version":1}`},
		{"invalid payload", `{"kind":"evaluation_form","version":1,"payload":"{"}`},
		{"legacy bad json", "[EVALUATION_FORM]\nnot-json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAttachment(tt.content)
			assert.Error(t, err)
			assert.False(t, IsAttachment(tt.content))
		})
	}
}

func TestDecodeAttachmentLegacyFormat(t *testing.T) {
	content := "[EVALUATION_FORM]\n{\"responseId\":\"resp-1\",\"score\":5}"

	env, err := DecodeAttachment(content)
	require.NoError(t, err)
	assert.Equal(t, AttachmentEvaluationForm, env.Kind)
	// Legacy payloads carry no version marker and report version 0.
	assert.Equal(t, 0, env.Version)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(env.Payload, &decoded))
	assert.Equal(t, "resp-1", decoded["responseId"])

	assert.True(t, IsAttachment(content))
}

func TestDecodeAttachmentLegacyKinds(t *testing.T) {
	tests := []struct {
		tag  string
		kind AttachmentKind
	}{
		{"[EVALUATION_FORM]", AttachmentEvaluationForm},
		{"[MEDICAL_REPORT]", AttachmentMedicalReport},
		{"[RADIOLOGICAL_IMAGE]", AttachmentRadiologicalImage},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			env, err := DecodeAttachment(tt.tag + "\n{}")
			require.NoError(t, err)
			assert.Equal(t, tt.kind, env.Kind)
		})
	}
}
