// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cobbleworks/foundry/ent/agentsession"
	"github.com/cobbleworks/foundry/ent/predicate"
)

// AgentSessionUpdate is the builder for updating AgentSession entities.
type AgentSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentSessionMutation
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdate) Where(ps ...predicate.AgentSession) *AgentSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProviderSessionID sets the "provider_session_id" field.
func (_u *AgentSessionUpdate) SetProviderSessionID(v string) *AgentSessionUpdate {
	_u.mutation.SetProviderSessionID(v)
	return _u
}

// SetNillableProviderSessionID sets the "provider_session_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableProviderSessionID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetProviderSessionID(*v)
	}
	return _u
}

// ClearProviderSessionID clears the value of the "provider_session_id" field.
func (_u *AgentSessionUpdate) ClearProviderSessionID() *AgentSessionUpdate {
	_u.mutation.ClearProviderSessionID()
	return _u
}

// SetState sets the "state" field.
func (_u *AgentSessionUpdate) SetState(v map[string]interface{}) *AgentSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *AgentSessionUpdate) ClearState() *AgentSessionUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetSessionMetadata sets the "session_metadata" field.
func (_u *AgentSessionUpdate) SetSessionMetadata(v map[string]interface{}) *AgentSessionUpdate {
	_u.mutation.SetSessionMetadata(v)
	return _u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (_u *AgentSessionUpdate) ClearSessionMetadata() *AgentSessionUpdate {
	_u.mutation.ClearSessionMetadata()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AgentSessionUpdate) SetCreatedBy(v string) *AgentSessionUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableCreatedBy(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *AgentSessionUpdate) ClearCreatedBy() *AgentSessionUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetLastClaimedBy sets the "last_claimed_by" field.
func (_u *AgentSessionUpdate) SetLastClaimedBy(v string) *AgentSessionUpdate {
	_u.mutation.SetLastClaimedBy(v)
	return _u
}

// SetNillableLastClaimedBy sets the "last_claimed_by" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableLastClaimedBy(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetLastClaimedBy(*v)
	}
	return _u
}

// ClearLastClaimedBy clears the value of the "last_claimed_by" field.
func (_u *AgentSessionUpdate) ClearLastClaimedBy() *AgentSessionUpdate {
	_u.mutation.ClearLastClaimedBy()
	return _u
}

// SetLastClaimedAt sets the "last_claimed_at" field.
func (_u *AgentSessionUpdate) SetLastClaimedAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetLastClaimedAt(v)
	return _u
}

// SetNillableLastClaimedAt sets the "last_claimed_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableLastClaimedAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetLastClaimedAt(*v)
	}
	return _u
}

// ClearLastClaimedAt clears the value of the "last_claimed_at" field.
func (_u *AgentSessionUpdate) ClearLastClaimedAt() *AgentSessionUpdate {
	_u.mutation.ClearLastClaimedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentSessionUpdate) SetUpdatedAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddChildIDs adds the "children" edge to the AgentSession entity by IDs.
func (_u *AgentSessionUpdate) AddChildIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the AgentSession entity.
func (_u *AgentSessionUpdate) AddChildren(v ...*AgentSession) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdate) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// ClearChildren clears all "children" edges to the AgentSession entity.
func (_u *AgentSessionUpdate) ClearChildren() *AgentSessionUpdate {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to AgentSession entities by IDs.
func (_u *AgentSessionUpdate) RemoveChildIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to AgentSession entities.
func (_u *AgentSessionUpdate) RemoveChildren(v ...*AgentSession) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.CreatedBySessionIDCleared() {
		_spec.ClearField(agentsession.FieldCreatedBySessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderSessionID(); ok {
		_spec.SetField(agentsession.FieldProviderSessionID, field.TypeString, value)
	}
	if _u.mutation.ProviderSessionIDCleared() {
		_spec.ClearField(agentsession.FieldProviderSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(agentsession.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(agentsession.FieldState, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionMetadata(); ok {
		_spec.SetField(agentsession.FieldSessionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SessionMetadataCleared() {
		_spec.ClearField(agentsession.FieldSessionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(agentsession.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(agentsession.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastClaimedBy(); ok {
		_spec.SetField(agentsession.FieldLastClaimedBy, field.TypeString, value)
	}
	if _u.mutation.LastClaimedByCleared() {
		_spec.ClearField(agentsession.FieldLastClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastClaimedAt(); ok {
		_spec.SetField(agentsession.FieldLastClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.LastClaimedAtCleared() {
		_spec.ClearField(agentsession.FieldLastClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentSessionUpdateOne is the builder for updating a single AgentSession entity.
type AgentSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentSessionMutation
}

// SetProviderSessionID sets the "provider_session_id" field.
func (_u *AgentSessionUpdateOne) SetProviderSessionID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetProviderSessionID(v)
	return _u
}

// SetNillableProviderSessionID sets the "provider_session_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableProviderSessionID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetProviderSessionID(*v)
	}
	return _u
}

// ClearProviderSessionID clears the value of the "provider_session_id" field.
func (_u *AgentSessionUpdateOne) ClearProviderSessionID() *AgentSessionUpdateOne {
	_u.mutation.ClearProviderSessionID()
	return _u
}

// SetState sets the "state" field.
func (_u *AgentSessionUpdateOne) SetState(v map[string]interface{}) *AgentSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *AgentSessionUpdateOne) ClearState() *AgentSessionUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetSessionMetadata sets the "session_metadata" field.
func (_u *AgentSessionUpdateOne) SetSessionMetadata(v map[string]interface{}) *AgentSessionUpdateOne {
	_u.mutation.SetSessionMetadata(v)
	return _u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (_u *AgentSessionUpdateOne) ClearSessionMetadata() *AgentSessionUpdateOne {
	_u.mutation.ClearSessionMetadata()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AgentSessionUpdateOne) SetCreatedBy(v string) *AgentSessionUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableCreatedBy(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *AgentSessionUpdateOne) ClearCreatedBy() *AgentSessionUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetLastClaimedBy sets the "last_claimed_by" field.
func (_u *AgentSessionUpdateOne) SetLastClaimedBy(v string) *AgentSessionUpdateOne {
	_u.mutation.SetLastClaimedBy(v)
	return _u
}

// SetNillableLastClaimedBy sets the "last_claimed_by" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableLastClaimedBy(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetLastClaimedBy(*v)
	}
	return _u
}

// ClearLastClaimedBy clears the value of the "last_claimed_by" field.
func (_u *AgentSessionUpdateOne) ClearLastClaimedBy() *AgentSessionUpdateOne {
	_u.mutation.ClearLastClaimedBy()
	return _u
}

// SetLastClaimedAt sets the "last_claimed_at" field.
func (_u *AgentSessionUpdateOne) SetLastClaimedAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetLastClaimedAt(v)
	return _u
}

// SetNillableLastClaimedAt sets the "last_claimed_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableLastClaimedAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetLastClaimedAt(*v)
	}
	return _u
}

// ClearLastClaimedAt clears the value of the "last_claimed_at" field.
func (_u *AgentSessionUpdateOne) ClearLastClaimedAt() *AgentSessionUpdateOne {
	_u.mutation.ClearLastClaimedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentSessionUpdateOne) SetUpdatedAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddChildIDs adds the "children" edge to the AgentSession entity by IDs.
func (_u *AgentSessionUpdateOne) AddChildIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the AgentSession entity.
func (_u *AgentSessionUpdateOne) AddChildren(v ...*AgentSession) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdateOne) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// ClearChildren clears all "children" edges to the AgentSession entity.
func (_u *AgentSessionUpdateOne) ClearChildren() *AgentSessionUpdateOne {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to AgentSession entities by IDs.
func (_u *AgentSessionUpdateOne) RemoveChildIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to AgentSession entities.
func (_u *AgentSessionUpdateOne) RemoveChildren(v ...*AgentSession) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdateOne) Where(ps ...predicate.AgentSession) *AgentSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentSessionUpdateOne) Select(field string, fields ...string) *AgentSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentSession entity.
func (_u *AgentSessionUpdateOne) Save(ctx context.Context) (*AgentSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) SaveX(ctx context.Context) *AgentSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentSessionUpdateOne) sqlSave(ctx context.Context) (_node *AgentSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentsession.FieldID)
		for _, f := range fields {
			if !agentsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentsession.FieldID {
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
	if _u.mutation.CreatedBySessionIDCleared() {
		_spec.ClearField(agentsession.FieldCreatedBySessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderSessionID(); ok {
		_spec.SetField(agentsession.FieldProviderSessionID, field.TypeString, value)
	}
	if _u.mutation.ProviderSessionIDCleared() {
		_spec.ClearField(agentsession.FieldProviderSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(agentsession.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(agentsession.FieldState, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionMetadata(); ok {
		_spec.SetField(agentsession.FieldSessionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SessionMetadataCleared() {
		_spec.ClearField(agentsession.FieldSessionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(agentsession.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(agentsession.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastClaimedBy(); ok {
		_spec.SetField(agentsession.FieldLastClaimedBy, field.TypeString, value)
	}
	if _u.mutation.LastClaimedByCleared() {
		_spec.ClearField(agentsession.FieldLastClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastClaimedAt(); ok {
		_spec.SetField(agentsession.FieldLastClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.LastClaimedAtCleared() {
		_spec.ClearField(agentsession.FieldLastClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
