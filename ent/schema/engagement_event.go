package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EngagementEvent records time-on-task appended after startup.
type EngagementEvent struct {
	ent.Schema
}

func (EngagementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EngagementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id"),
		field.String("date").
			Comment("Calendar date, YYYY-MM-DD"),
		field.Int("minutes").
			Default(0),
		field.String("module_id").
			Default(""),
	}
}

func (EngagementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
	}
}
