package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: UserMessage("first")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: UserMessage("second")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockJSON(map[string]any{"wrong": true}))
	_, err := mock.Generate(context.Background(), Request{Schema: reasonSchema()})
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(context.Background(), Request{System: "sys", Messages: UserMessage("hello")})

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
	if mock.Name() != "mock" || mock.ModelID() != "mock" {
		t.Fatalf("unexpected identity %q/%q", mock.Name(), mock.ModelID())
	}
}

func TestResponse_Decode(t *testing.T) {
	resp := &Response{Content: json.RawMessage(`{"reason":"Keep going"}`)}
	var out struct {
		Reason string `json:"reason"`
	}
	if err := resp.Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Reason != "Keep going" {
		t.Fatalf("reason = %q", out.Reason)
	}

	bad := &Response{Content: json.RawMessage(`[1,2`)}
	var invErr *ErrInvalidResponse
	if err := bad.Decode(&out); !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "recommend-reason")
	if p := PurposeFrom(ctx); p != "recommend-reason" {
		t.Fatalf("expected 'recommend-reason', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"openai with key", Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"openrouter without key", Config{Provider: ProviderOpenRouter}, true},
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "g"}}, false},
		{"mock needs no key", Config{Provider: ProviderMock}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
		{"no provider", Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		provider string
		input    string
		expected string
	}{
		{ProviderAnthropic, "claude-sonnet", "claude-sonnet-4-20250514"},
		{ProviderAnthropic, "claude-haiku", "claude-haiku-4-5-20251001"},
		{ProviderAnthropic, "claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
		{ProviderGemini, "gemini-flash", "gemini-2.0-flash"},
		{ProviderGemini, "gemini-2.0-flash", "gemini-2.0-flash"},
		{ProviderOpenAI, "gpt-mini", "gpt-4o-mini"},
		{ProviderOpenRouter, "gemini-flash", "gemini-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.provider, tt.input); got != tt.expected {
			t.Errorf("resolveModel(%q, %q) = %q, want %q", tt.provider, tt.input, got, tt.expected)
		}
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	if got := c.Cost(1_000_000, 0); got != 0.15 {
		t.Errorf("cost = %v, want 0.15", got)
	}
	if LookupCost("google/gemini-2.0-flash") == nil {
		t.Error("expected OpenRouter-style id to resolve")
	}
	if LookupCost("nope") != nil {
		t.Error("expected nil for unknown model")
	}
}
