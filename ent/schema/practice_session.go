package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PracticeSession is the guided-dialogue state for one lesson: current
// stage index plus the append-only turn history. One row per lesson
// key; a flush resets the row in place and stamps flushed_at.
type PracticeSession struct {
	ent.Schema
}

func (PracticeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_key").
			Unique().
			Immutable(),
		field.Int("stage_idx").
			Default(0).
			Comment("Current stage; only ever increases within a session"),
		field.Bool("completed").
			Default(false),
		field.JSON("turns", []map[string]any{}).
			Optional().
			Comment("Append-only turn records"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("flushed_at").
			Optional().
			Nillable().
			Comment("Set on the first flush, updated on each one after"),
	}
}
