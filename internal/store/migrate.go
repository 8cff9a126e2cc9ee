package store

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/adamlaw669/Curio/ent/schema"
)

// Table names.
const (
	tableAppState    = "app_state"
	tableAssessments = "assessment_events"
	tableEngagement  = "engagement_events"
	tableLLMRequests = "llm_request_events"
)

// tables lists every ent schema the store migrates, keyed by table name.
var tables = []struct {
	name   string
	schema ent.Interface
}{
	{tableAppState, entschema.AppState{}},
	{tableAssessments, entschema.AssessmentEvent{}},
	{tableEngagement, entschema.EngagementEvent{}},
	{tableLLMRequests, entschema.LLMRequestEvent{}},
}

// migrate creates or updates the tables described by the ent schemas.
// Tables are derived from the schema descriptors at runtime, so no
// generated client is needed.
func migrate(ctx context.Context, drv dialect.Driver) error {
	var defs []*schema.Table
	for _, t := range tables {
		def, err := tableFor(t.name, t.schema)
		if err != nil {
			return err
		}
		defs = append(defs, def)
	}

	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	return m.Create(ctx, defs...)
}

// tableFor converts an ent schema into a migration table. Every table
// gets an auto-increment "id" primary key, as ent does by default; mixin
// fields come before the schema's own fields.
func tableFor(name string, s ent.Interface) (*schema.Table, error) {
	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := &schema.Table{
		Name:       name,
		Columns:    []*schema.Column{id},
		PrimaryKey: []*schema.Column{id},
	}

	var fields []ent.Field
	var indexes []ent.Index
	for _, mx := range s.Mixin() {
		fields = append(fields, mx.Fields()...)
		indexes = append(indexes, mx.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	byName := make(map[string]*schema.Column, len(fields))
	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, d.Name, d.Err)
		}
		col := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
			Size:     int64(d.Size),
			Comment:  d.Comment,
		}
		switch v := d.Default.(type) {
		case string, int, int64, float64, bool:
			col.Default = v
		}
		t.Columns = append(t.Columns, col)
		byName[d.Name] = col
	}

	for _, ix := range indexes {
		d := ix.Descriptor()
		idx := &schema.Index{
			Name:   name + "_" + strings.Join(d.Fields, "_"),
			Unique: d.Unique,
		}
		for _, fname := range d.Fields {
			col, ok := byName[fname]
			if !ok {
				return nil, fmt.Errorf("%s: index on unknown field %q", name, fname)
			}
			idx.Columns = append(idx.Columns, col)
		}
		t.Indexes = append(t.Indexes, idx)
	}
	return t, nil
}
