package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/adamlaw669/Curio/internal/catalog"
	"github.com/adamlaw669/Curio/internal/llm"
	"github.com/adamlaw669/Curio/internal/logger"
)

// Purpose labels narration calls in the LLM request log.
const Purpose = "recommend-reason"

// Kind says why a module is being recommended.
type Kind string

const (
	KindReview  Kind = "review"
	KindAdvance Kind = "advance"
)

// Input is what the narrator knows about one recommendation.
type Input struct {
	Kind    Kind
	Concept catalog.Concept
	Mastery float64
	Module  catalog.Module
}

// fallback is the template reason used without an LLM.
func (in Input) fallback() string {
	if in.Kind == KindAdvance {
		return fmt.Sprintf("You've mastered %s. Ready for the next challenge!", in.Concept.Name)
	}
	return fmt.Sprintf("Your %s mastery is %.0f%%. %s will help you build it up.",
		in.Concept.Name, in.Mastery, in.Module.Title)
}

// ReasonSchema is the JSON schema narration responses must satisfy.
var ReasonSchema = &llm.Schema{
	Name:        "recommendation-reason",
	Description: "A short, encouraging reason for a module recommendation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reason": map[string]any{
				"type":        "string",
				"minLength":   1,
				"maxLength":   240,
				"description": "One or two sentences addressed to the student",
			},
		},
		"required":             []any{"reason"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You write recommendation reasons for an adaptive learning platform.

Rules:
- Address the student directly in one or two short sentences.
- Mention the concept and the recommended module by name.
- Be encouraging and specific. Never shame a low score.
- Do not invent scores, dates or modules that are not given.`

// NarratorConfig bounds narration requests.
type NarratorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultNarratorConfig returns the narration defaults.
func DefaultNarratorConfig() NarratorConfig {
	return NarratorConfig{MaxTokens: 200, Temperature: 0.4}
}

// Narrator asks an LLM to phrase recommendation reasons.
type Narrator struct {
	provider llm.Provider
	config   NarratorConfig
	log      *logger.Logger
}

// NewNarrator creates a Narrator. log may be nil.
func NewNarrator(p llm.Provider, cfg NarratorConfig, log *logger.Logger) *Narrator {
	if log == nil {
		log = logger.Nop()
	}
	return &Narrator{provider: p, config: cfg, log: log}
}

type reasonOutput struct {
	Reason string `json:"reason"`
}

// Reason returns the LLM's reason for in, or fallback on any failure.
func (n *Narrator) Reason(ctx context.Context, in Input, fallback string) string {
	ctx = llm.WithPurpose(ctx, Purpose)

	resp, err := n.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserMessage(buildUserMessage(in)),
		Schema:      ReasonSchema,
		MaxTokens:   n.config.MaxTokens,
		Temperature: n.config.Temperature,
	})
	if err != nil {
		n.log.Warn("narration failed, using template", "module", in.Module.ID, "error", err)
		return fallback
	}

	var out reasonOutput
	if err := resp.Decode(&out); err != nil {
		n.log.Warn("narration unreadable, using template", "module", in.Module.ID, "error", err)
		return fallback
	}
	reason := strings.TrimSpace(out.Reason)
	if reason == "" {
		return fallback
	}
	return reason
}

func buildUserMessage(in Input) string {
	var b strings.Builder
	switch in.Kind {
	case KindAdvance:
		b.WriteString("Goal: move on to new material\n")
	default:
		b.WriteString("Goal: review a weak concept\n")
	}
	fmt.Fprintf(&b, "Concept: %s (%s)\n", in.Concept.Name, in.Concept.Topic)
	fmt.Fprintf(&b, "Mastery: %.0f%%\n", in.Mastery)
	fmt.Fprintf(&b, "Module: %s\n", in.Module.Title)
	fmt.Fprintf(&b, "Format: %s, %s, about %d minutes\n", in.Module.ContentType, in.Module.Difficulty, in.Module.EstTimeMins)
	if in.Module.Description != "" {
		fmt.Fprintf(&b, "About the module: %s\n", in.Module.Description)
	}
	return b.String()
}
