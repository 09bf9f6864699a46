package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonPackage is a fully generated lesson, stored whole. The row is
// written exactly once per key; the unique index is the durable
// at-most-once guarantee across processes.
type LessonPackage struct {
	ent.Schema
}

func (LessonPackage) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Immutable().
			Comment("Normalized topic|level descriptor key"),
		field.String("topic"),
		field.String("level"),
		field.String("title").
			Default(""),
		field.String("model").
			Default("").
			Comment("Model that produced the accepted skeleton"),
		field.JSON("data", map[string]any{}).
			Comment("The merged package document"),
		field.JSON("status", map[string]string{}).
			Comment("Per-section enhancement status"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LessonPackage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("level"),
	}
}
