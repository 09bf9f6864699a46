// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/akito/kotoba/ent/lessonpackage"
)

// LessonPackageCreate is the builder for creating a LessonPackage entity.
type LessonPackageCreate struct {
	config
	mutation *LessonPackageMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *LessonPackageCreate) SetKey(v string) *LessonPackageCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *LessonPackageCreate) SetTopic(v string) *LessonPackageCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *LessonPackageCreate) SetLevel(v string) *LessonPackageCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LessonPackageCreate) SetTitle(v string) *LessonPackageCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *LessonPackageCreate) SetNillableTitle(v *string) *LessonPackageCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *LessonPackageCreate) SetModel(v string) *LessonPackageCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *LessonPackageCreate) SetNillableModel(v *string) *LessonPackageCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *LessonPackageCreate) SetData(v map[string]interface{}) *LessonPackageCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LessonPackageCreate) SetStatus(v map[string]string) *LessonPackageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LessonPackageCreate) SetCreatedAt(v time.Time) *LessonPackageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LessonPackageCreate) SetNillableCreatedAt(v *time.Time) *LessonPackageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the LessonPackageMutation object of the builder.
func (_c *LessonPackageCreate) Mutation() *LessonPackageMutation {
	return _c.mutation
}

// Save creates the LessonPackage in the database.
func (_c *LessonPackageCreate) Save(ctx context.Context) (*LessonPackage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonPackageCreate) SaveX(ctx context.Context) *LessonPackage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonPackageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonPackageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonPackageCreate) defaults() {
	if _, ok := _c.mutation.Title(); !ok {
		v := lessonpackage.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.Model(); !ok {
		v := lessonpackage.DefaultModel
		_c.mutation.SetModel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lessonpackage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonPackageCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "LessonPackage.key"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "LessonPackage.topic"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "LessonPackage.level"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "LessonPackage.title"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LessonPackage.model"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "LessonPackage.data"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LessonPackage.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LessonPackage.created_at"`)}
	}
	return nil
}

func (_c *LessonPackageCreate) sqlSave(ctx context.Context) (*LessonPackage, error) {
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

func (_c *LessonPackageCreate) createSpec() (*LessonPackage, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonPackage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonpackage.Table, sqlgraph.NewFieldSpec(lessonpackage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(lessonpackage.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(lessonpackage.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(lessonpackage.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lessonpackage.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(lessonpackage.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(lessonpackage.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(lessonpackage.FieldStatus, field.TypeJSON, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lessonpackage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LessonPackageCreateBulk is the builder for creating many LessonPackage entities in bulk.
type LessonPackageCreateBulk struct {
	config
	err      error
	builders []*LessonPackageCreate
}

// Save creates the LessonPackage entities in the database.
func (_c *LessonPackageCreateBulk) Save(ctx context.Context) ([]*LessonPackage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonPackage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonPackageMutation)
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
func (_c *LessonPackageCreateBulk) SaveX(ctx context.Context) []*LessonPackage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonPackageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonPackageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
