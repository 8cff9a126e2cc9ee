package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin is embedded by every append-only fact table. seq orders
// facts across tables for replay.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("seq").
			Unique().
			Immutable().
			Comment("Position in the store-wide append order"),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable().
			Comment("When the fact was written, not the assessment date"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recorded_at"),
	}
}
