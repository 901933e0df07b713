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

// WorkRequestCreate is the builder for creating a WorkRequest entity.
type WorkRequestCreate struct {
	config
	mutation *WorkRequestMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *WorkRequestCreate) SetUserID(v string) *WorkRequestCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *WorkRequestCreate) SetWorkspaceID(v string) *WorkRequestCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetBasketID sets the "basket_id" field.
func (_c *WorkRequestCreate) SetBasketID(v string) *WorkRequestCreate {
	_c.mutation.SetBasketID(v)
	return _c
}

// SetAgentKind sets the "agent_kind" field.
func (_c *WorkRequestCreate) SetAgentKind(v workrequest.AgentKind) *WorkRequestCreate {
	_c.mutation.SetAgentKind(v)
	return _c
}

// SetWorkMode sets the "work_mode" field.
func (_c *WorkRequestCreate) SetWorkMode(v string) *WorkRequestCreate {
	_c.mutation.SetWorkMode(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *WorkRequestCreate) SetPayload(v map[string]interface{}) *WorkRequestCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetIsTrial sets the "is_trial" field.
func (_c *WorkRequestCreate) SetIsTrial(v bool) *WorkRequestCreate {
	_c.mutation.SetIsTrial(v)
	return _c
}

// SetNillableIsTrial sets the "is_trial" field if the given value is not nil.
func (_c *WorkRequestCreate) SetNillableIsTrial(v *bool) *WorkRequestCreate {
	if v != nil {
		_c.SetIsTrial(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkRequestCreate) SetStatus(v workrequest.Status) *WorkRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkRequestCreate) SetNillableStatus(v *workrequest.Status) *WorkRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResultSummary sets the "result_summary" field.
func (_c *WorkRequestCreate) SetResultSummary(v string) *WorkRequestCreate {
	_c.mutation.SetResultSummary(v)
	return _c
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_c *WorkRequestCreate) SetNillableResultSummary(v *string) *WorkRequestCreate {
	if v != nil {
		_c.SetResultSummary(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkRequestCreate) SetErrorMessage(v string) *WorkRequestCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkRequestCreate) SetNillableErrorMessage(v *string) *WorkRequestCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *WorkRequestCreate) SetPriority(v int) *WorkRequestCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *WorkRequestCreate) SetNillablePriority(v *int) *WorkRequestCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkRequestCreate) SetCreatedAt(v time.Time) *WorkRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkRequestCreate) SetNillableCreatedAt(v *time.Time) *WorkRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkRequestCreate) SetUpdatedAt(v time.Time) *WorkRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkRequestCreate) SetNillableUpdatedAt(v *time.Time) *WorkRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkRequestCreate) SetID(v string) *WorkRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTicketID sets the "ticket" edge to the WorkTicket entity by ID.
func (_c *WorkRequestCreate) SetTicketID(id string) *WorkRequestCreate {
	_c.mutation.SetTicketID(id)
	return _c
}

// SetNillableTicketID sets the "ticket" edge to the WorkTicket entity by ID if the given value is not nil.
func (_c *WorkRequestCreate) SetNillableTicketID(id *string) *WorkRequestCreate {
	if id != nil {
		_c = _c.SetTicketID(*id)
	}
	return _c
}

// SetTicket sets the "ticket" edge to the WorkTicket entity.
func (_c *WorkRequestCreate) SetTicket(v *WorkTicket) *WorkRequestCreate {
	return _c.SetTicketID(v.ID)
}

// Mutation returns the WorkRequestMutation object of the builder.
func (_c *WorkRequestCreate) Mutation() *WorkRequestMutation {
	return _c.mutation
}

// Save creates the WorkRequest in the database.
func (_c *WorkRequestCreate) Save(ctx context.Context) (*WorkRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkRequestCreate) SaveX(ctx context.Context) *WorkRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkRequestCreate) defaults() {
	if _, ok := _c.mutation.IsTrial(); !ok {
		v := workrequest.DefaultIsTrial
		_c.mutation.SetIsTrial(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := workrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := workrequest.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkRequestCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "WorkRequest.user_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "WorkRequest.workspace_id"`)}
	}
	if _, ok := _c.mutation.BasketID(); !ok {
		return &ValidationError{Name: "basket_id", err: errors.New(`ent: missing required field "WorkRequest.basket_id"`)}
	}
	if _, ok := _c.mutation.AgentKind(); !ok {
		return &ValidationError{Name: "agent_kind", err: errors.New(`ent: missing required field "WorkRequest.agent_kind"`)}
	}
	if v, ok := _c.mutation.AgentKind(); ok {
		if err := workrequest.AgentKindValidator(v); err != nil {
			return &ValidationError{Name: "agent_kind", err: fmt.Errorf(`ent: validator failed for field "WorkRequest.agent_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WorkMode(); !ok {
		return &ValidationError{Name: "work_mode", err: errors.New(`ent: missing required field "WorkRequest.work_mode"`)}
	}
	if _, ok := _c.mutation.IsTrial(); !ok {
		return &ValidationError{Name: "is_trial", err: errors.New(`ent: missing required field "WorkRequest.is_trial"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "WorkRequest.priority"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkRequest.updated_at"`)}
	}
	return nil
}

func (_c *WorkRequestCreate) sqlSave(ctx context.Context) (*WorkRequest, error) {
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
			return nil, fmt.Errorf("unexpected WorkRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkRequestCreate) createSpec() (*WorkRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workrequest.Table, sqlgraph.NewFieldSpec(workrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(workrequest.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(workrequest.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.BasketID(); ok {
		_spec.SetField(workrequest.FieldBasketID, field.TypeString, value)
		_node.BasketID = value
	}
	if value, ok := _c.mutation.AgentKind(); ok {
		_spec.SetField(workrequest.FieldAgentKind, field.TypeEnum, value)
		_node.AgentKind = value
	}
	if value, ok := _c.mutation.WorkMode(); ok {
		_spec.SetField(workrequest.FieldWorkMode, field.TypeString, value)
		_node.WorkMode = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(workrequest.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.IsTrial(); ok {
		_spec.SetField(workrequest.FieldIsTrial, field.TypeBool, value)
		_node.IsTrial = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ResultSummary(); ok {
		_spec.SetField(workrequest.FieldResultSummary, field.TypeString, value)
		_node.ResultSummary = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workrequest.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(workrequest.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   workrequest.TicketTable,
			Columns: []string{workrequest.TicketColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workticket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkRequestCreateBulk is the builder for creating many WorkRequest entities in bulk.
type WorkRequestCreateBulk struct {
	config
	err      error
	builders []*WorkRequestCreate
}

// Save creates the WorkRequest entities in the database.
func (_c *WorkRequestCreateBulk) Save(ctx context.Context) ([]*WorkRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkRequestMutation)
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
func (_c *WorkRequestCreateBulk) SaveX(ctx context.Context) []*WorkRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
