// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cobbleworks/foundry/ent/agentsubscription"
)

// AgentSubscriptionCreate is the builder for creating a AgentSubscription entity.
type AgentSubscriptionCreate struct {
	config
	mutation *AgentSubscriptionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AgentSubscriptionCreate) SetUserID(v string) *AgentSubscriptionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AgentSubscriptionCreate) SetWorkspaceID(v string) *AgentSubscriptionCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetAgentKind sets the "agent_kind" field.
func (_c *AgentSubscriptionCreate) SetAgentKind(v agentsubscription.AgentKind) *AgentSubscriptionCreate {
	_c.mutation.SetAgentKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentSubscriptionCreate) SetStatus(v agentsubscription.Status) *AgentSubscriptionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentSubscriptionCreate) SetNillableStatus(v *agentsubscription.Status) *AgentSubscriptionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *AgentSubscriptionCreate) SetExpiresAt(v time.Time) *AgentSubscriptionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *AgentSubscriptionCreate) SetNillableExpiresAt(v *time.Time) *AgentSubscriptionCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentSubscriptionCreate) SetCreatedAt(v time.Time) *AgentSubscriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentSubscriptionCreate) SetNillableCreatedAt(v *time.Time) *AgentSubscriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentSubscriptionCreate) SetUpdatedAt(v time.Time) *AgentSubscriptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentSubscriptionCreate) SetNillableUpdatedAt(v *time.Time) *AgentSubscriptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentSubscriptionCreate) SetID(v string) *AgentSubscriptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentSubscriptionMutation object of the builder.
func (_c *AgentSubscriptionCreate) Mutation() *AgentSubscriptionMutation {
	return _c.mutation
}

// Save creates the AgentSubscription in the database.
func (_c *AgentSubscriptionCreate) Save(ctx context.Context) (*AgentSubscription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentSubscriptionCreate) SaveX(ctx context.Context) *AgentSubscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSubscriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSubscriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentSubscriptionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentsubscription.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentsubscription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentsubscription.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentSubscriptionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AgentSubscription.user_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "AgentSubscription.workspace_id"`)}
	}
	if _, ok := _c.mutation.AgentKind(); !ok {
		return &ValidationError{Name: "agent_kind", err: errors.New(`ent: missing required field "AgentSubscription.agent_kind"`)}
	}
	if v, ok := _c.mutation.AgentKind(); ok {
		if err := agentsubscription.AgentKindValidator(v); err != nil {
			return &ValidationError{Name: "agent_kind", err: fmt.Errorf(`ent: validator failed for field "AgentSubscription.agent_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentSubscription.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentsubscription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSubscription.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentSubscription.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentSubscription.updated_at"`)}
	}
	return nil
}

func (_c *AgentSubscriptionCreate) sqlSave(ctx context.Context) (*AgentSubscription, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentSubscription.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentSubscriptionCreate) createSpec() (*AgentSubscription, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentSubscription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentsubscription.Table, sqlgraph.NewFieldSpec(agentsubscription.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(agentsubscription.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(agentsubscription.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.AgentKind(); ok {
		_spec.SetField(agentsubscription.FieldAgentKind, field.TypeEnum, value)
		_node.AgentKind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentsubscription.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(agentsubscription.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentsubscription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentsubscription.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AgentSubscriptionCreateBulk is the builder for creating many AgentSubscription entities in bulk.
type AgentSubscriptionCreateBulk struct {
	config
	err      error
	builders []*AgentSubscriptionCreate
}

// Save creates the AgentSubscription entities in the database.
func (_c *AgentSubscriptionCreateBulk) Save(ctx context.Context) ([]*AgentSubscription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentSubscription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentSubscriptionMutation)
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
func (_c *AgentSubscriptionCreateBulk) SaveX(ctx context.Context) []*AgentSubscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSubscriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSubscriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
