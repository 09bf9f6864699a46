package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-shape",
	Description: "test shape",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{"type": "string"},
			"n":    map[string]any{"type": "integer"},
		},
		"required": []any{"text"},
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"text":"hi","n":3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_UnknownFieldsIgnored(t *testing.T) {
	// Forward compatibility: extra fields must not reject the payload.
	err := validateResponse(testSchema, json.RawMessage(`{"text":"hi","extra":"field"}`))
	if err != nil {
		t.Fatalf("unexpected error for extra field: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"n":3}`))
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"text":42}`))
	if err == nil {
		t.Fatal("expected error for wrong field type")
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`not json at all`))
	if err == nil {
		t.Fatal("expected error for non-JSON input")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should pass anything: %v", err)
	}
}
