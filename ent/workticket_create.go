// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/ent/workticket"
)

// WorkTicketCreate is the builder for creating a WorkTicket entity.
type WorkTicketCreate struct {
	config
	mutation *WorkTicketMutation
	hooks    []Hook
}

// SetWorkRequestID sets the "work_request_id" field.
func (_c *WorkTicketCreate) SetWorkRequestID(v string) *WorkTicketCreate {
	_c.mutation.SetWorkRequestID(v)
	return _c
}

// SetAgentSessionID sets the "agent_session_id" field.
func (_c *WorkTicketCreate) SetAgentSessionID(v string) *WorkTicketCreate {
	_c.mutation.SetAgentSessionID(v)
	return _c
}

// SetBasketID sets the "basket_id" field.
func (_c *WorkTicketCreate) SetBasketID(v string) *WorkTicketCreate {
	_c.mutation.SetBasketID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *WorkTicketCreate) SetWorkspaceID(v string) *WorkTicketCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetAgentKind sets the "agent_kind" field.
func (_c *WorkTicketCreate) SetAgentKind(v workticket.AgentKind) *WorkTicketCreate {
	_c.mutation.SetAgentKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkTicketCreate) SetStatus(v workticket.Status) *WorkTicketCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkTicketCreate) SetNillableStatus(v *workticket.Status) *WorkTicketCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *WorkTicketCreate) SetPriority(v int) *WorkTicketCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *WorkTicketCreate) SetNillablePriority(v *int) *WorkTicketCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *WorkTicketCreate) SetStartedAt(v time.Time) *WorkTicketCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *WorkTicketCreate) SetNillableStartedAt(v *time.Time) *WorkTicketCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *WorkTicketCreate) SetEndedAt(v time.Time) *WorkTicketCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *WorkTicketCreate) SetNillableEndedAt(v *time.Time) *WorkTicketCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetTicketMetadata sets the "ticket_metadata" field.
func (_c *WorkTicketCreate) SetTicketMetadata(v map[string]interface{}) *WorkTicketCreate {
	_c.mutation.SetTicketMetadata(v)
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *WorkTicketCreate) SetPodID(v string) *WorkTicketCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *WorkTicketCreate) SetNillablePodID(v *string) *WorkTicketCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *WorkTicketCreate) SetClaimedAt(v time.Time) *WorkTicketCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *WorkTicketCreate) SetNillableClaimedAt(v *time.Time) *WorkTicketCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *WorkTicketCreate) SetLastHeartbeatAt(v time.Time) *WorkTicketCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *WorkTicketCreate) SetNillableLastHeartbeatAt(v *time.Time) *WorkTicketCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkTicketCreate) SetCreatedAt(v time.Time) *WorkTicketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkTicketCreate) SetNillableCreatedAt(v *time.Time) *WorkTicketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkTicketCreate) SetUpdatedAt(v time.Time) *WorkTicketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkTicketCreate) SetNillableUpdatedAt(v *time.Time) *WorkTicketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkTicketCreate) SetID(v string) *WorkTicketCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkRequest sets the "work_request" edge to the WorkRequest entity.
func (_c *WorkTicketCreate) SetWorkRequest(v *WorkRequest) *WorkTicketCreate {
	return _c.SetWorkRequestID(v.ID)
}

// Mutation returns the WorkTicketMutation object of the builder.
func (_c *WorkTicketCreate) Mutation() *WorkTicketMutation {
	return _c.mutation
}

// Save creates the WorkTicket in the database.
func (_c *WorkTicketCreate) Save(ctx context.Context) (*WorkTicket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkTicketCreate) SaveX(ctx context.Context) *WorkTicket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkTicketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkTicketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkTicketCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workticket.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := workticket.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workticket.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workticket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkTicketCreate) check() error {
	if _, ok := _c.mutation.WorkRequestID(); !ok {
		return &ValidationError{Name: "work_request_id", err: errors.New(`ent: missing required field "WorkTicket.work_request_id"`)}
	}
	if _, ok := _c.mutation.AgentSessionID(); !ok {
		return &ValidationError{Name: "agent_session_id", err: errors.New(`ent: missing required field "WorkTicket.agent_session_id"`)}
	}
	if _, ok := _c.mutation.BasketID(); !ok {
		return &ValidationError{Name: "basket_id", err: errors.New(`ent: missing required field "WorkTicket.basket_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "WorkTicket.workspace_id"`)}
	}
	if _, ok := _c.mutation.AgentKind(); !ok {
		return &ValidationError{Name: "agent_kind", err: errors.New(`ent: missing required field "WorkTicket.agent_kind"`)}
	}
	if v, ok := _c.mutation.AgentKind(); ok {
		if err := workticket.AgentKindValidator(v); err != nil {
			return &ValidationError{Name: "agent_kind", err: fmt.Errorf(`ent: validator failed for field "WorkTicket.agent_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkTicket.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkTicket.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "WorkTicket.priority"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkTicket.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkTicket.updated_at"`)}
	}
	if len(_c.mutation.WorkRequestIDs()) == 0 {
		return &ValidationError{Name: "work_request", err: errors.New(`ent: missing required edge "WorkTicket.work_request"`)}
	}
	return nil
}

func (_c *WorkTicketCreate) sqlSave(ctx context.Context) (*WorkTicket, error) {
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
			return nil, fmt.Errorf("unexpected WorkTicket.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkTicketCreate) createSpec() (*WorkTicket, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkTicket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workticket.Table, sqlgraph.NewFieldSpec(workticket.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentSessionID(); ok {
		_spec.SetField(workticket.FieldAgentSessionID, field.TypeString, value)
		_node.AgentSessionID = value
	}
	if value, ok := _c.mutation.BasketID(); ok {
		_spec.SetField(workticket.FieldBasketID, field.TypeString, value)
		_node.BasketID = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(workticket.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.AgentKind(); ok {
		_spec.SetField(workticket.FieldAgentKind, field.TypeEnum, value)
		_node.AgentKind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workticket.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(workticket.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(workticket.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(workticket.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.TicketMetadata(); ok {
		_spec.SetField(workticket.FieldTicketMetadata, field.TypeJSON, value)
		_node.TicketMetadata = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(workticket.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(workticket.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workticket.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workticket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workticket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkRequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   workticket.WorkRequestTable,
			Columns: []string{workticket.WorkRequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkRequestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkTicketCreateBulk is the builder for creating many WorkTicket entities in bulk.
type WorkTicketCreateBulk struct {
	config
	err      error
	builders []*WorkTicketCreate
}

// Save creates the WorkTicket entities in the database.
func (_c *WorkTicketCreateBulk) Save(ctx context.Context) ([]*WorkTicket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkTicket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkTicketMutation)
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
func (_c *WorkTicketCreateBulk) SaveX(ctx context.Context) []*WorkTicket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkTicketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkTicketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
