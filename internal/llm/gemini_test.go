package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		got := resolveModel(ProviderGemini, tt.input)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reason":   map[string]any{"type": "string", "description": "one sentence"},
			"priority": map[string]any{"type": "integer"},
			"tone":     map[string]any{"type": "string", "enum": []any{"encouraging", "neutral"}},
			"concepts": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{"reason", "priority"},
	}

	schema := geminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["reason"].Type != genai.TypeString {
		t.Fatalf("expected STRING for reason, got %s", schema.Properties["reason"].Type)
	}
	if schema.Properties["reason"].Description != "one sentence" {
		t.Fatalf("description = %q", schema.Properties["reason"].Description)
	}
	if schema.Properties["priority"].Type != genai.TypeInteger {
		t.Fatalf("expected INTEGER for priority, got %s", schema.Properties["priority"].Type)
	}
	if len(schema.Properties["tone"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["tone"].Enum))
	}
	if schema.Properties["concepts"].Items.Type != genai.TypeString {
		t.Fatalf("expected STRING items, got %s", schema.Properties["concepts"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestStringList(t *testing.T) {
	if got := stringList([]any{"a", 1, "b"}); len(got) != 2 {
		t.Fatalf("expected non-strings to be dropped, got %v", got)
	}
	if got := stringList(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
