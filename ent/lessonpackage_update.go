// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/akito/kotoba/ent/lessonpackage"
	"github.com/akito/kotoba/ent/predicate"
)

// LessonPackageUpdate is the builder for updating LessonPackage entities.
type LessonPackageUpdate struct {
	config
	hooks    []Hook
	mutation *LessonPackageMutation
}

// Where appends a list predicates to the LessonPackageUpdate builder.
func (_u *LessonPackageUpdate) Where(ps ...predicate.LessonPackage) *LessonPackageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LessonPackageUpdate) SetTopic(v string) *LessonPackageUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LessonPackageUpdate) SetNillableTopic(v *string) *LessonPackageUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *LessonPackageUpdate) SetLevel(v string) *LessonPackageUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LessonPackageUpdate) SetNillableLevel(v *string) *LessonPackageUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonPackageUpdate) SetTitle(v string) *LessonPackageUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonPackageUpdate) SetNillableTitle(v *string) *LessonPackageUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LessonPackageUpdate) SetModel(v string) *LessonPackageUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LessonPackageUpdate) SetNillableModel(v *string) *LessonPackageUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *LessonPackageUpdate) SetData(v map[string]interface{}) *LessonPackageUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LessonPackageUpdate) SetStatus(v map[string]string) *LessonPackageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// Mutation returns the LessonPackageMutation object of the builder.
func (_u *LessonPackageUpdate) Mutation() *LessonPackageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonPackageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonPackageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonPackageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonPackageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LessonPackageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(lessonpackage.Table, lessonpackage.Columns, sqlgraph.NewFieldSpec(lessonpackage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(lessonpackage.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(lessonpackage.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lessonpackage.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(lessonpackage.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(lessonpackage.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lessonpackage.FieldStatus, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonpackage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonPackageUpdateOne is the builder for updating a single LessonPackage entity.
type LessonPackageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonPackageMutation
}

// SetTopic sets the "topic" field.
func (_u *LessonPackageUpdateOne) SetTopic(v string) *LessonPackageUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LessonPackageUpdateOne) SetNillableTopic(v *string) *LessonPackageUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *LessonPackageUpdateOne) SetLevel(v string) *LessonPackageUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LessonPackageUpdateOne) SetNillableLevel(v *string) *LessonPackageUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonPackageUpdateOne) SetTitle(v string) *LessonPackageUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonPackageUpdateOne) SetNillableTitle(v *string) *LessonPackageUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LessonPackageUpdateOne) SetModel(v string) *LessonPackageUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LessonPackageUpdateOne) SetNillableModel(v *string) *LessonPackageUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *LessonPackageUpdateOne) SetData(v map[string]interface{}) *LessonPackageUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LessonPackageUpdateOne) SetStatus(v map[string]string) *LessonPackageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// Mutation returns the LessonPackageMutation object of the builder.
func (_u *LessonPackageUpdateOne) Mutation() *LessonPackageMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonPackageUpdate builder.
func (_u *LessonPackageUpdateOne) Where(ps ...predicate.LessonPackage) *LessonPackageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonPackageUpdateOne) Select(field string, fields ...string) *LessonPackageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonPackage entity.
func (_u *LessonPackageUpdateOne) Save(ctx context.Context) (*LessonPackage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonPackageUpdateOne) SaveX(ctx context.Context) *LessonPackage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonPackageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonPackageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LessonPackageUpdateOne) sqlSave(ctx context.Context) (_node *LessonPackage, err error) {
	_spec := sqlgraph.NewUpdateSpec(lessonpackage.Table, lessonpackage.Columns, sqlgraph.NewFieldSpec(lessonpackage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonPackage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonpackage.FieldID)
		for _, f := range fields {
			if !lessonpackage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonpackage.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(lessonpackage.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(lessonpackage.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lessonpackage.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(lessonpackage.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(lessonpackage.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lessonpackage.FieldStatus, field.TypeJSON, value)
	}
	_node = &LessonPackage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonpackage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
