package llm

import (
	"context"
	"testing"
	"time"

	"github.com/adamlaw669/Curio/internal/store"
)

func TestNewProvider_Mock(t *testing.T) {
	s := openTestStore(t)
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	cfg.Timeout = time.Second
	cfg.Retry.InitialWait = time.Millisecond
	cfg.Retry.MaxWait = 2 * time.Millisecond

	p, err := NewProvider(context.Background(), cfg, s.EventRepo(), nil)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if p.Name() != ProviderMock {
		t.Fatalf("name = %q", p.Name())
	}

	// The mock has no canned responses, so every attempt fails and is
	// recorded once per retry.
	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error from empty mock")
	}
	events, err := s.EventRepo().LLMRequests(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != cfg.Retry.MaxAttempts {
		t.Fatalf("expected %d recorded attempts, got %d", cfg.Retry.MaxAttempts, len(events))
	}
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no provider", Config{}},
		{"missing key", Config{Provider: ProviderOpenAI}},
		{"unknown", Config{Provider: "llama"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewProvider(context.Background(), tt.cfg, nil, nil); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewProvider_VendorIdentity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenRouter
	cfg.OpenRouter.APIKey = "sk-or-test"

	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if p.Name() != ProviderOpenRouter {
		t.Fatalf("name = %q", p.Name())
	}
	if p.ModelID() != cfg.OpenRouter.Model {
		t.Fatalf("model = %q, want %q", p.ModelID(), cfg.OpenRouter.Model)
	}
}
