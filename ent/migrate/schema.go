// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LessonPackagesColumns holds the columns for the "lesson_packages" table.
	LessonPackagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "data", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LessonPackagesTable holds the schema information for the "lesson_packages" table.
	LessonPackagesTable = &schema.Table{
		Name:       "lesson_packages",
		Columns:    LessonPackagesColumns,
		PrimaryKey: []*schema.Column{LessonPackagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonpackage_topic",
				Unique:  false,
				Columns: []*schema.Column{LessonPackagesColumns[2]},
			},
			{
				Name:    "lessonpackage_level",
				Unique:  false,
				Columns: []*schema.Column{LessonPackagesColumns[3]},
			},
		},
	}
	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lesson_key", Type: field.TypeString, Unique: true},
		{Name: "stage_idx", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "turns", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "flushed_at", Type: field.TypeTime, Nullable: true},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		LessonPackagesTable,
		PracticeSessionsTable,
	}
)

func init() {
}
