// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cobbleworks/foundry/ent/predicate"
	"github.com/cobbleworks/foundry/ent/workevent"
)

// WorkEventUpdate is the builder for updating WorkEvent entities.
type WorkEventUpdate struct {
	config
	hooks    []Hook
	mutation *WorkEventMutation
}

// Where appends a list predicates to the WorkEventUpdate builder.
func (_u *WorkEventUpdate) Where(ps ...predicate.WorkEvent) *WorkEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the WorkEventMutation object of the builder.
func (_u *WorkEventUpdate) Mutation() *WorkEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WorkEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(workevent.Table, workevent.Columns, sqlgraph.NewFieldSpec(workevent.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.StepNameCleared() {
		_spec.ClearField(workevent.FieldStepName, field.TypeString)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(workevent.FieldStatus, field.TypeString)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(workevent.FieldPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkEventUpdateOne is the builder for updating a single WorkEvent entity.
type WorkEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkEventMutation
}

// Mutation returns the WorkEventMutation object of the builder.
func (_u *WorkEventUpdateOne) Mutation() *WorkEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkEventUpdate builder.
func (_u *WorkEventUpdateOne) Where(ps ...predicate.WorkEvent) *WorkEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkEventUpdateOne) Select(field string, fields ...string) *WorkEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkEvent entity.
func (_u *WorkEventUpdateOne) Save(ctx context.Context) (*WorkEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkEventUpdateOne) SaveX(ctx context.Context) *WorkEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WorkEventUpdateOne) sqlSave(ctx context.Context) (_node *WorkEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(workevent.Table, workevent.Columns, sqlgraph.NewFieldSpec(workevent.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workevent.FieldID)
		for _, f := range fields {
			if !workevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workevent.FieldID {
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
	if _u.mutation.StepNameCleared() {
		_spec.ClearField(workevent.FieldStepName, field.TypeString)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(workevent.FieldStatus, field.TypeString)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(workevent.FieldPayload, field.TypeJSON)
	}
	_node = &WorkEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
