// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/akito/kotoba/ent/practicesession"
	"github.com/akito/kotoba/ent/predicate"
)

// PracticeSessionUpdate is the builder for updating PracticeSession entities.
type PracticeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdate) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStageIdx sets the "stage_idx" field.
func (_u *PracticeSessionUpdate) SetStageIdx(v int) *PracticeSessionUpdate {
	_u.mutation.ResetStageIdx()
	_u.mutation.SetStageIdx(v)
	return _u
}

// SetNillableStageIdx sets the "stage_idx" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableStageIdx(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetStageIdx(*v)
	}
	return _u
}

// AddStageIdx adds value to the "stage_idx" field.
func (_u *PracticeSessionUpdate) AddStageIdx(v int) *PracticeSessionUpdate {
	_u.mutation.AddStageIdx(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *PracticeSessionUpdate) SetCompleted(v bool) *PracticeSessionUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableCompleted(v *bool) *PracticeSessionUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetTurns sets the "turns" field.
func (_u *PracticeSessionUpdate) SetTurns(v []map[string]interface{}) *PracticeSessionUpdate {
	_u.mutation.SetTurns(v)
	return _u
}

// AppendTurns appends value to the "turns" field.
func (_u *PracticeSessionUpdate) AppendTurns(v []map[string]interface{}) *PracticeSessionUpdate {
	_u.mutation.AppendTurns(v)
	return _u
}

// ClearTurns clears the value of the "turns" field.
func (_u *PracticeSessionUpdate) ClearTurns() *PracticeSessionUpdate {
	_u.mutation.ClearTurns()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PracticeSessionUpdate) SetUpdatedAt(v time.Time) *PracticeSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFlushedAt sets the "flushed_at" field.
func (_u *PracticeSessionUpdate) SetFlushedAt(v time.Time) *PracticeSessionUpdate {
	_u.mutation.SetFlushedAt(v)
	return _u
}

// SetNillableFlushedAt sets the "flushed_at" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableFlushedAt(v *time.Time) *PracticeSessionUpdate {
	if v != nil {
		_u.SetFlushedAt(*v)
	}
	return _u
}

// ClearFlushedAt clears the value of the "flushed_at" field.
func (_u *PracticeSessionUpdate) ClearFlushedAt() *PracticeSessionUpdate {
	_u.mutation.ClearFlushedAt()
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdate) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PracticeSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := practicesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PracticeSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageIdx(); ok {
		_spec.SetField(practicesession.FieldStageIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIdx(); ok {
		_spec.AddField(practicesession.FieldStageIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(practicesession.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Turns(); ok {
		_spec.SetField(practicesession.FieldTurns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTurns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldTurns, value)
		})
	}
	if _u.mutation.TurnsCleared() {
		_spec.ClearField(practicesession.FieldTurns, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(practicesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FlushedAt(); ok {
		_spec.SetField(practicesession.FieldFlushedAt, field.TypeTime, value)
	}
	if _u.mutation.FlushedAtCleared() {
		_spec.ClearField(practicesession.FieldFlushedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeSessionUpdateOne is the builder for updating a single PracticeSession entity.
type PracticeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// SetStageIdx sets the "stage_idx" field.
func (_u *PracticeSessionUpdateOne) SetStageIdx(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetStageIdx()
	_u.mutation.SetStageIdx(v)
	return _u
}

// SetNillableStageIdx sets the "stage_idx" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableStageIdx(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetStageIdx(*v)
	}
	return _u
}

// AddStageIdx adds value to the "stage_idx" field.
func (_u *PracticeSessionUpdateOne) AddStageIdx(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddStageIdx(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *PracticeSessionUpdateOne) SetCompleted(v bool) *PracticeSessionUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableCompleted(v *bool) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetTurns sets the "turns" field.
func (_u *PracticeSessionUpdateOne) SetTurns(v []map[string]interface{}) *PracticeSessionUpdateOne {
	_u.mutation.SetTurns(v)
	return _u
}

// AppendTurns appends value to the "turns" field.
func (_u *PracticeSessionUpdateOne) AppendTurns(v []map[string]interface{}) *PracticeSessionUpdateOne {
	_u.mutation.AppendTurns(v)
	return _u
}

// ClearTurns clears the value of the "turns" field.
func (_u *PracticeSessionUpdateOne) ClearTurns() *PracticeSessionUpdateOne {
	_u.mutation.ClearTurns()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PracticeSessionUpdateOne) SetUpdatedAt(v time.Time) *PracticeSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFlushedAt sets the "flushed_at" field.
func (_u *PracticeSessionUpdateOne) SetFlushedAt(v time.Time) *PracticeSessionUpdateOne {
	_u.mutation.SetFlushedAt(v)
	return _u
}

// SetNillableFlushedAt sets the "flushed_at" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableFlushedAt(v *time.Time) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetFlushedAt(*v)
	}
	return _u
}

// ClearFlushedAt clears the value of the "flushed_at" field.
func (_u *PracticeSessionUpdateOne) ClearFlushedAt() *PracticeSessionUpdateOne {
	_u.mutation.ClearFlushedAt()
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdateOne) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdateOne) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeSessionUpdateOne) Select(field string, fields ...string) *PracticeSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeSession entity.
func (_u *PracticeSessionUpdateOne) Save(ctx context.Context) (*PracticeSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) SaveX(ctx context.Context) *PracticeSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PracticeSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := practicesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PracticeSessionUpdateOne) sqlSave(ctx context.Context) (_node *PracticeSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesession.FieldID)
		for _, f := range fields {
			if !practicesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicesession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageIdx(); ok {
		_spec.SetField(practicesession.FieldStageIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIdx(); ok {
		_spec.AddField(practicesession.FieldStageIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(practicesession.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Turns(); ok {
		_spec.SetField(practicesession.FieldTurns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTurns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldTurns, value)
		})
	}
	if _u.mutation.TurnsCleared() {
		_spec.ClearField(practicesession.FieldTurns, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(practicesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FlushedAt(); ok {
		_spec.SetField(practicesession.FieldFlushedAt, field.TypeTime, value)
	}
	if _u.mutation.FlushedAtCleared() {
		_spec.ClearField(practicesession.FieldFlushedAt, field.TypeTime)
	}
	_node = &PracticeSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
