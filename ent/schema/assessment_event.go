package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records a scored attempt appended after startup.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			Comment("Catalog assessment id"),
		field.String("student_id"),
		field.String("concept_id"),
		field.Float("score").
			Comment("0..100"),
		field.String("date").
			Comment("Calendar date, YYYY-MM-DD"),
		field.String("module_id").
			Default(""),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("concept_id"),
	}
}
