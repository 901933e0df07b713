// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cobbleworks/foundry/ent/agentsession"
)

// AgentSessionCreate is the builder for creating a AgentSession entity.
type AgentSessionCreate struct {
	config
	mutation *AgentSessionMutation
	hooks    []Hook
}

// SetBasketID sets the "basket_id" field.
func (_c *AgentSessionCreate) SetBasketID(v string) *AgentSessionCreate {
	_c.mutation.SetBasketID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AgentSessionCreate) SetWorkspaceID(v string) *AgentSessionCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetAgentKind sets the "agent_kind" field.
func (_c *AgentSessionCreate) SetAgentKind(v agentsession.AgentKind) *AgentSessionCreate {
	_c.mutation.SetAgentKind(v)
	return _c
}

// SetParentSessionID sets the "parent_session_id" field.
func (_c *AgentSessionCreate) SetParentSessionID(v string) *AgentSessionCreate {
	_c.mutation.SetParentSessionID(v)
	return _c
}

// SetNillableParentSessionID sets the "parent_session_id" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableParentSessionID(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetParentSessionID(*v)
	}
	return _c
}

// SetCreatedBySessionID sets the "created_by_session_id" field.
func (_c *AgentSessionCreate) SetCreatedBySessionID(v string) *AgentSessionCreate {
	_c.mutation.SetCreatedBySessionID(v)
	return _c
}

// SetNillableCreatedBySessionID sets the "created_by_session_id" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableCreatedBySessionID(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetCreatedBySessionID(*v)
	}
	return _c
}

// SetProviderSessionID sets the "provider_session_id" field.
func (_c *AgentSessionCreate) SetProviderSessionID(v string) *AgentSessionCreate {
	_c.mutation.SetProviderSessionID(v)
	return _c
}

// SetNillableProviderSessionID sets the "provider_session_id" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableProviderSessionID(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetProviderSessionID(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *AgentSessionCreate) SetState(v map[string]interface{}) *AgentSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetSessionMetadata sets the "session_metadata" field.
func (_c *AgentSessionCreate) SetSessionMetadata(v map[string]interface{}) *AgentSessionCreate {
	_c.mutation.SetSessionMetadata(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *AgentSessionCreate) SetCreatedBy(v string) *AgentSessionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableCreatedBy(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetLastClaimedBy sets the "last_claimed_by" field.
func (_c *AgentSessionCreate) SetLastClaimedBy(v string) *AgentSessionCreate {
	_c.mutation.SetLastClaimedBy(v)
	return _c
}

// SetNillableLastClaimedBy sets the "last_claimed_by" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableLastClaimedBy(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetLastClaimedBy(*v)
	}
	return _c
}

// SetLastClaimedAt sets the "last_claimed_at" field.
func (_c *AgentSessionCreate) SetLastClaimedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetLastClaimedAt(v)
	return _c
}

// SetNillableLastClaimedAt sets the "last_claimed_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableLastClaimedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetLastClaimedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentSessionCreate) SetCreatedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableCreatedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentSessionCreate) SetUpdatedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableUpdatedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentSessionCreate) SetID(v string) *AgentSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetParentID sets the "parent" edge to the AgentSession entity by ID.
func (_c *AgentSessionCreate) SetParentID(id string) *AgentSessionCreate {
	_c.mutation.SetParentID(id)
	return _c
}

// SetNillableParentID sets the "parent" edge to the AgentSession entity by ID if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableParentID(id *string) *AgentSessionCreate {
	if id != nil {
		_c = _c.SetParentID(*id)
	}
	return _c
}

// SetParent sets the "parent" edge to the AgentSession entity.
func (_c *AgentSessionCreate) SetParent(v *AgentSession) *AgentSessionCreate {
	return _c.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the AgentSession entity by IDs.
func (_c *AgentSessionCreate) AddChildIDs(ids ...string) *AgentSessionCreate {
	_c.mutation.AddChildIDs(ids...)
	return _c
}

// AddChildren adds the "children" edges to the AgentSession entity.
func (_c *AgentSessionCreate) AddChildren(v ...*AgentSession) *AgentSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChildIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_c *AgentSessionCreate) Mutation() *AgentSessionMutation {
	return _c.mutation
}

// Save creates the AgentSession in the database.
func (_c *AgentSessionCreate) Save(ctx context.Context) (*AgentSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentSessionCreate) SaveX(ctx context.Context) *AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentSessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentSessionCreate) check() error {
	if _, ok := _c.mutation.BasketID(); !ok {
		return &ValidationError{Name: "basket_id", err: errors.New(`ent: missing required field "AgentSession.basket_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "AgentSession.workspace_id"`)}
	}
	if _, ok := _c.mutation.AgentKind(); !ok {
		return &ValidationError{Name: "agent_kind", err: errors.New(`ent: missing required field "AgentSession.agent_kind"`)}
	}
	if v, ok := _c.mutation.AgentKind(); ok {
		if err := agentsession.AgentKindValidator(v); err != nil {
			return &ValidationError{Name: "agent_kind", err: fmt.Errorf(`ent: validator failed for field "AgentSession.agent_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentSession.updated_at"`)}
	}
	return nil
}

func (_c *AgentSessionCreate) sqlSave(ctx context.Context) (*AgentSession, error) {
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
			return nil, fmt.Errorf("unexpected AgentSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentSessionCreate) createSpec() (*AgentSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentsession.Table, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BasketID(); ok {
		_spec.SetField(agentsession.FieldBasketID, field.TypeString, value)
		_node.BasketID = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(agentsession.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.AgentKind(); ok {
		_spec.SetField(agentsession.FieldAgentKind, field.TypeEnum, value)
		_node.AgentKind = value
	}
	if value, ok := _c.mutation.CreatedBySessionID(); ok {
		_spec.SetField(agentsession.FieldCreatedBySessionID, field.TypeString, value)
		_node.CreatedBySessionID = &value
	}
	if value, ok := _c.mutation.ProviderSessionID(); ok {
		_spec.SetField(agentsession.FieldProviderSessionID, field.TypeString, value)
		_node.ProviderSessionID = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(agentsession.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.SessionMetadata(); ok {
		_spec.SetField(agentsession.FieldSessionMetadata, field.TypeJSON, value)
		_node.SessionMetadata = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(agentsession.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.LastClaimedBy(); ok {
		_spec.SetField(agentsession.FieldLastClaimedBy, field.TypeString, value)
		_node.LastClaimedBy = &value
	}
	if value, ok := _c.mutation.LastClaimedAt(); ok {
		_spec.SetField(agentsession.FieldLastClaimedAt, field.TypeTime, value)
		_node.LastClaimedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentsession.ParentTable,
			Columns: []string{agentsession.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentSessionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.ChildrenTable,
			Columns: []string{agentsession.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentSessionCreateBulk is the builder for creating many AgentSession entities in bulk.
type AgentSessionCreateBulk struct {
	config
	err      error
	builders []*AgentSessionCreate
}

// Save creates the AgentSession entities in the database.
func (_c *AgentSessionCreateBulk) Save(ctx context.Context) ([]*AgentSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentSessionMutation)
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
func (_c *AgentSessionCreateBulk) SaveX(ctx context.Context) []*AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
