// Code generated by ent, DO NOT EDIT.

package practicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practicesession type in the database.
	Label = "practice_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLessonKey holds the string denoting the lesson_key field in the database.
	FieldLessonKey = "lesson_key"
	// FieldStageIdx holds the string denoting the stage_idx field in the database.
	FieldStageIdx = "stage_idx"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldTurns holds the string denoting the turns field in the database.
	FieldTurns = "turns"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldFlushedAt holds the string denoting the flushed_at field in the database.
	FieldFlushedAt = "flushed_at"
	// Table holds the table name of the practicesession in the database.
	Table = "practice_sessions"
)

// Columns holds all SQL columns for practicesession fields.
var Columns = []string{
	FieldID,
	FieldLessonKey,
	FieldStageIdx,
	FieldCompleted,
	FieldTurns,
	FieldStartedAt,
	FieldUpdatedAt,
	FieldFlushedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStageIdx holds the default value on creation for the "stage_idx" field.
	DefaultStageIdx int
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the PracticeSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLessonKey orders the results by the lesson_key field.
func ByLessonKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonKey, opts...).ToFunc()
}

// ByStageIdx orders the results by the stage_idx field.
func ByStageIdx(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageIdx, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFlushedAt orders the results by the flushed_at field.
func ByFlushedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlushedAt, opts...).ToFunc()
}
