// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cobbleworks/foundry/ent/workevent"
)

// WorkEventCreate is the builder for creating a WorkEvent entity.
type WorkEventCreate struct {
	config
	mutation *WorkEventMutation
	hooks    []Hook
}

// SetTicketID sets the "ticket_id" field.
func (_c *WorkEventCreate) SetTicketID(v string) *WorkEventCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *WorkEventCreate) SetEventType(v string) *WorkEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetStepName sets the "step_name" field.
func (_c *WorkEventCreate) SetStepName(v string) *WorkEventCreate {
	_c.mutation.SetStepName(v)
	return _c
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_c *WorkEventCreate) SetNillableStepName(v *string) *WorkEventCreate {
	if v != nil {
		_c.SetStepName(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkEventCreate) SetStatus(v string) *WorkEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkEventCreate) SetNillableStatus(v *string) *WorkEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *WorkEventCreate) SetPayload(v map[string]interface{}) *WorkEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkEventCreate) SetCreatedAt(v time.Time) *WorkEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkEventCreate) SetNillableCreatedAt(v *time.Time) *WorkEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkEventCreate) SetID(v int64) *WorkEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WorkEventMutation object of the builder.
func (_c *WorkEventCreate) Mutation() *WorkEventMutation {
	return _c.mutation
}

// Save creates the WorkEvent in the database.
func (_c *WorkEventCreate) Save(ctx context.Context) (*WorkEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkEventCreate) SaveX(ctx context.Context) *WorkEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkEventCreate) check() error {
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "WorkEvent.ticket_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "WorkEvent.event_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkEvent.created_at"`)}
	}
	return nil
}

func (_c *WorkEventCreate) sqlSave(ctx context.Context) (*WorkEvent, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkEventCreate) createSpec() (*WorkEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workevent.Table, sqlgraph.NewFieldSpec(workevent.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TicketID(); ok {
		_spec.SetField(workevent.FieldTicketID, field.TypeString, value)
		_node.TicketID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(workevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.StepName(); ok {
		_spec.SetField(workevent.FieldStepName, field.TypeString, value)
		_node.StepName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(workevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// WorkEventCreateBulk is the builder for creating many WorkEvent entities in bulk.
type WorkEventCreateBulk struct {
	config
	err      error
	builders []*WorkEventCreate
}

// Save creates the WorkEvent entities in the database.
func (_c *WorkEventCreateBulk) Save(ctx context.Context) ([]*WorkEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkEventMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
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
func (_c *WorkEventCreateBulk) SaveX(ctx context.Context) []*WorkEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
