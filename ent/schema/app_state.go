package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AppState holds keyed JSON blobs such as the persisted session.
type AppState struct {
	ent.Schema
}

func (AppState) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Blob key, e.g. curio-app-storage"),
		field.JSON("data", json.RawMessage{}).
			Comment("Opaque JSON payload"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
