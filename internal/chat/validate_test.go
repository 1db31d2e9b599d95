package chat

import (
	"encoding/json"
	"errors"
	"testing"
)

func turnSchema() *Schema {
	return &Schema{
		Name:        "test-turn",
		Description: "A test turn envelope",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"reply": map[string]any{"type": "string"},
				"done":  map[string]any{"type": "boolean"},
				"score": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			},
			"required": []any{"reply", "done"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"reply":"keep going","done":false,"score":0}`)
	if err := validateResponse(turnSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"reply":"done!","done":true}`)
	if err := validateResponse(turnSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"reply":"half an envelope"}`)
	err := validateResponse(turnSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"reply":"hi","done":"yes"}`)
	err := validateResponse(turnSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"reply":"hi","done":true,"score":120}`)
	err := validateResponse(turnSchema(), raw)
	if err == nil {
		t.Fatal("expected error for out-of-range score")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(turnSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	if err := validateResponse(turnSchema(), raw); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_ProjectTurnSchema(t *testing.T) {
	valid := json.RawMessage(`{"reply":"what will it power?","done":false,"score":0}`)
	if err := validateResponse(projectTurnSchema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"reply":"done","done":true}`)
	if err := validateResponse(projectTurnSchema, invalid); err == nil {
		t.Fatal("expected error for missing score")
	}
}
