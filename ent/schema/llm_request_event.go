package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is one provider call. Rows feed `curio llm list` and
// `curio llm stats`.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("anthropic, openai, openrouter, gemini or mock"),
		field.String("model").
			Comment("Model ID reported by the provider"),
		field.String("purpose").
			Comment("Caller label from llm.WithPurpose, e.g. recommend-reason"),
		field.Int("input_tokens").
			Default(0).
			Comment("Prompt tokens"),
		field.Int("output_tokens").
			Default(0).
			Comment("Completion tokens"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Round trip in milliseconds"),
		field.Bool("success").
			Comment("False when the provider returned an error"),
		field.String("error_message").
			Default("").
			Comment("Provider error text, empty on success"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose", "success"),
		index.Fields("model"),
	}
}
