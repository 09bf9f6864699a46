// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/akito/kotoba/ent/practicesession"
)

// PracticeSessionCreate is the builder for creating a PracticeSession entity.
type PracticeSessionCreate struct {
	config
	mutation *PracticeSessionMutation
	hooks    []Hook
}

// SetLessonKey sets the "lesson_key" field.
func (_c *PracticeSessionCreate) SetLessonKey(v string) *PracticeSessionCreate {
	_c.mutation.SetLessonKey(v)
	return _c
}

// SetStageIdx sets the "stage_idx" field.
func (_c *PracticeSessionCreate) SetStageIdx(v int) *PracticeSessionCreate {
	_c.mutation.SetStageIdx(v)
	return _c
}

// SetNillableStageIdx sets the "stage_idx" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableStageIdx(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetStageIdx(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *PracticeSessionCreate) SetCompleted(v bool) *PracticeSessionCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableCompleted(v *bool) *PracticeSessionCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetTurns sets the "turns" field.
func (_c *PracticeSessionCreate) SetTurns(v []map[string]interface{}) *PracticeSessionCreate {
	_c.mutation.SetTurns(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PracticeSessionCreate) SetStartedAt(v time.Time) *PracticeSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableStartedAt(v *time.Time) *PracticeSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PracticeSessionCreate) SetUpdatedAt(v time.Time) *PracticeSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableUpdatedAt(v *time.Time) *PracticeSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFlushedAt sets the "flushed_at" field.
func (_c *PracticeSessionCreate) SetFlushedAt(v time.Time) *PracticeSessionCreate {
	_c.mutation.SetFlushedAt(v)
	return _c
}

// SetNillableFlushedAt sets the "flushed_at" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableFlushedAt(v *time.Time) *PracticeSessionCreate {
	if v != nil {
		_c.SetFlushedAt(*v)
	}
	return _c
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_c *PracticeSessionCreate) Mutation() *PracticeSessionMutation {
	return _c.mutation
}

// Save creates the PracticeSession in the database.
func (_c *PracticeSessionCreate) Save(ctx context.Context) (*PracticeSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeSessionCreate) SaveX(ctx context.Context) *PracticeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeSessionCreate) defaults() {
	if _, ok := _c.mutation.StageIdx(); !ok {
		v := practicesession.DefaultStageIdx
		_c.mutation.SetStageIdx(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := practicesession.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := practicesession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := practicesession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeSessionCreate) check() error {
	if _, ok := _c.mutation.LessonKey(); !ok {
		return &ValidationError{Name: "lesson_key", err: errors.New(`ent: missing required field "PracticeSession.lesson_key"`)}
	}
	if _, ok := _c.mutation.StageIdx(); !ok {
		return &ValidationError{Name: "stage_idx", err: errors.New(`ent: missing required field "PracticeSession.stage_idx"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "PracticeSession.completed"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "PracticeSession.started_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PracticeSession.updated_at"`)}
	}
	return nil
}

func (_c *PracticeSessionCreate) sqlSave(ctx context.Context) (*PracticeSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PracticeSessionCreate) createSpec() (*PracticeSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practicesession.Table, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LessonKey(); ok {
		_spec.SetField(practicesession.FieldLessonKey, field.TypeString, value)
		_node.LessonKey = value
	}
	if value, ok := _c.mutation.StageIdx(); ok {
		_spec.SetField(practicesession.FieldStageIdx, field.TypeInt, value)
		_node.StageIdx = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(practicesession.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.Turns(); ok {
		_spec.SetField(practicesession.FieldTurns, field.TypeJSON, value)
		_node.Turns = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(practicesession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(practicesession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FlushedAt(); ok {
		_spec.SetField(practicesession.FieldFlushedAt, field.TypeTime, value)
		_node.FlushedAt = &value
	}
	return _node, _spec
}

// PracticeSessionCreateBulk is the builder for creating many PracticeSession entities in bulk.
type PracticeSessionCreateBulk struct {
	config
	err      error
	builders []*PracticeSessionCreate
}

// Save creates the PracticeSession entities in the database.
func (_c *PracticeSessionCreateBulk) Save(ctx context.Context) ([]*PracticeSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PracticeSessionCreateBulk) SaveX(ctx context.Context) []*PracticeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
