// Code generated by ent, DO NOT EDIT.

package practicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/akito/kotoba/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldID, id))
}

// LessonKey applies equality check predicate on the "lesson_key" field. It's identical to LessonKeyEQ.
func LessonKey(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldLessonKey, v))
}

// StageIdx applies equality check predicate on the "stage_idx" field. It's identical to StageIdxEQ.
func StageIdx(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStageIdx, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCompleted, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStartedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// FlushedAt applies equality check predicate on the "flushed_at" field. It's identical to FlushedAtEQ.
func FlushedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldFlushedAt, v))
}

// LessonKeyEQ applies the EQ predicate on the "lesson_key" field.
func LessonKeyEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldLessonKey, v))
}

// LessonKeyNEQ applies the NEQ predicate on the "lesson_key" field.
func LessonKeyNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldLessonKey, v))
}

// LessonKeyIn applies the In predicate on the "lesson_key" field.
func LessonKeyIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldLessonKey, vs...))
}

// LessonKeyNotIn applies the NotIn predicate on the "lesson_key" field.
func LessonKeyNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldLessonKey, vs...))
}

// LessonKeyGT applies the GT predicate on the "lesson_key" field.
func LessonKeyGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldLessonKey, v))
}

// LessonKeyGTE applies the GTE predicate on the "lesson_key" field.
func LessonKeyGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldLessonKey, v))
}

// LessonKeyLT applies the LT predicate on the "lesson_key" field.
func LessonKeyLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldLessonKey, v))
}

// LessonKeyLTE applies the LTE predicate on the "lesson_key" field.
func LessonKeyLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldLessonKey, v))
}

// LessonKeyContains applies the Contains predicate on the "lesson_key" field.
func LessonKeyContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldLessonKey, v))
}

// LessonKeyHasPrefix applies the HasPrefix predicate on the "lesson_key" field.
func LessonKeyHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldLessonKey, v))
}

// LessonKeyHasSuffix applies the HasSuffix predicate on the "lesson_key" field.
func LessonKeyHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldLessonKey, v))
}

// LessonKeyEqualFold applies the EqualFold predicate on the "lesson_key" field.
func LessonKeyEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldLessonKey, v))
}

// LessonKeyContainsFold applies the ContainsFold predicate on the "lesson_key" field.
func LessonKeyContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldLessonKey, v))
}

// StageIdxEQ applies the EQ predicate on the "stage_idx" field.
func StageIdxEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStageIdx, v))
}

// StageIdxNEQ applies the NEQ predicate on the "stage_idx" field.
func StageIdxNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldStageIdx, v))
}

// StageIdxIn applies the In predicate on the "stage_idx" field.
func StageIdxIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldStageIdx, vs...))
}

// StageIdxNotIn applies the NotIn predicate on the "stage_idx" field.
func StageIdxNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldStageIdx, vs...))
}

// StageIdxGT applies the GT predicate on the "stage_idx" field.
func StageIdxGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldStageIdx, v))
}

// StageIdxGTE applies the GTE predicate on the "stage_idx" field.
func StageIdxGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldStageIdx, v))
}

// StageIdxLT applies the LT predicate on the "stage_idx" field.
func StageIdxLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldStageIdx, v))
}

// StageIdxLTE applies the LTE predicate on the "stage_idx" field.
func StageIdxLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldStageIdx, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCompleted, v))
}

// TurnsIsNil applies the IsNil predicate on the "turns" field.
func TurnsIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldTurns))
}

// TurnsNotNil applies the NotNil predicate on the "turns" field.
func TurnsNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldTurns))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldStartedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// FlushedAtEQ applies the EQ predicate on the "flushed_at" field.
func FlushedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldFlushedAt, v))
}

// FlushedAtNEQ applies the NEQ predicate on the "flushed_at" field.
func FlushedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldFlushedAt, v))
}

// FlushedAtIn applies the In predicate on the "flushed_at" field.
func FlushedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldFlushedAt, vs...))
}

// FlushedAtNotIn applies the NotIn predicate on the "flushed_at" field.
func FlushedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldFlushedAt, vs...))
}

// FlushedAtGT applies the GT predicate on the "flushed_at" field.
func FlushedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldFlushedAt, v))
}

// FlushedAtGTE applies the GTE predicate on the "flushed_at" field.
func FlushedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldFlushedAt, v))
}

// FlushedAtLT applies the LT predicate on the "flushed_at" field.
func FlushedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldFlushedAt, v))
}

// FlushedAtLTE applies the LTE predicate on the "flushed_at" field.
func FlushedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldFlushedAt, v))
}

// FlushedAtIsNil applies the IsNil predicate on the "flushed_at" field.
func FlushedAtIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldFlushedAt))
}

// FlushedAtNotNil applies the NotNil predicate on the "flushed_at" field.
func FlushedAtNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldFlushedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.NotPredicates(p))
}
