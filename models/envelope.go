package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AttachmentKind tags the payload type of a structured chat attachment.
type AttachmentKind string

const (
	AttachmentEvaluationForm    AttachmentKind = "evaluation_form"
	AttachmentMedicalReport     AttachmentKind = "medical_report"
	AttachmentRadiologicalImage AttachmentKind = "radiological_image"
)

func (k AttachmentKind) Known() bool {
	switch k {
	case AttachmentEvaluationForm, AttachmentMedicalReport, AttachmentRadiologicalImage:
		return true
	}
	return false
}

// EnvelopeVersion is the current wire version for chat attachments.
const EnvelopeVersion = 1

// Envelope is the versioned tagged union used to embed structured records
// inside the text-message channel.
type Envelope struct {
	Kind    AttachmentKind  `json:"kind"`
	Version int             `json:"version"`
	Payload json.RawMessage `json:"payload"`
}

// Legacy tag lines written by older clients: a bracketed tag followed by a
// newline and a bare JSON object.
var legacyTags = map[string]AttachmentKind{
	"[EVALUATION_FORM]":    AttachmentEvaluationForm,
	"[MEDICAL_REPORT]":     AttachmentMedicalReport,
	"[RADIOLOGICAL_IMAGE]": AttachmentRadiologicalImage,
}

// EncodeAttachment serializes a payload into envelope message content.
func EncodeAttachment(kind AttachmentKind, payload any) (string, error) {
	if !kind.Known() {
		return "", fmt.Errorf("envelope: unknown attachment kind %q", kind)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("envelope: failed to marshal payload: %w", err)
	}
	env := Envelope{Kind: kind, Version: EnvelopeVersion, Payload: raw}
	out, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("envelope: failed to marshal envelope: %w", err)
	}
	return string(out), nil
}

// DecodeAttachment parses message content into an envelope. It validates the
// kind and version, and still accepts legacy tag-prefixed payloads, which are
// reported with Version 0.
func DecodeAttachment(content string) (*Envelope, error) {
	trimmed := strings.TrimSpace(content)

	if tagLine, rest, found := strings.Cut(trimmed, "\n"); found {
		if kind, ok := legacyTags[strings.TrimSpace(tagLine)]; ok {
			payload := strings.TrimSpace(rest)
			if !json.Valid([]byte(payload)) {
				return nil, fmt.Errorf("envelope: legacy %s payload is not valid JSON", tagLine)
			}
			return &Envelope{Kind: kind, Version: 0, Payload: json.RawMessage(payload)}, nil
		}
	}

	var env Envelope
	if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
		return nil, fmt.Errorf("envelope: failed to decode: %w", err)
	}
	if !env.Kind.Known() {
		return nil, fmt.Errorf("envelope: unknown attachment kind %q", env.Kind)
	}
	if env.Version < 1 || env.Version > EnvelopeVersion {
		return nil, fmt.Errorf("envelope: unsupported version %d", env.Version)
	}
	if len(env.Payload) == 0 || !json.Valid(env.Payload) {
		return nil, fmt.Errorf("envelope: missing or invalid payload")
	}
	return &env, nil
}

// IsAttachment reports whether message content looks like a structured
// attachment (current or legacy format) without fully decoding it.
func IsAttachment(content string) bool {
	_, err := DecodeAttachment(content)
	return err == nil
}
