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
	"github.com/cobbleworks/foundry/ent/predicate"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/ent/workticket"
)

// WorkRequestUpdate is the builder for updating WorkRequest entities.
type WorkRequestUpdate struct {
	config
	hooks    []Hook
	mutation *WorkRequestMutation
}

// Where appends a list predicates to the WorkRequestUpdate builder.
func (_u *WorkRequestUpdate) Where(ps ...predicate.WorkRequest) *WorkRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentKind sets the "agent_kind" field.
func (_u *WorkRequestUpdate) SetAgentKind(v workrequest.AgentKind) *WorkRequestUpdate {
	_u.mutation.SetAgentKind(v)
	return _u
}

// SetNillableAgentKind sets the "agent_kind" field if the given value is not nil.
func (_u *WorkRequestUpdate) SetNillableAgentKind(v *workrequest.AgentKind) *WorkRequestUpdate {
	if v != nil {
		_u.SetAgentKind(*v)
	}
	return _u
}

// SetWorkMode sets the "work_mode" field.
func (_u *WorkRequestUpdate) SetWorkMode(v string) *WorkRequestUpdate {
	_u.mutation.SetWorkMode(v)
	return _u
}

// SetNillableWorkMode sets the "work_mode" field if the given value is not nil.
func (_u *WorkRequestUpdate) SetNillableWorkMode(v *string) *WorkRequestUpdate {
	if v != nil {
		_u.SetWorkMode(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WorkRequestUpdate) SetPayload(v map[string]interface{}) *WorkRequestUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *WorkRequestUpdate) ClearPayload() *WorkRequestUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetIsTrial sets the "is_trial" field.
func (_u *WorkRequestUpdate) SetIsTrial(v bool) *WorkRequestUpdate {
	_u.mutation.SetIsTrial(v)
	return _u
}

// SetNillableIsTrial sets the "is_trial" field if the given value is not nil.
func (_u *WorkRequestUpdate) SetNillableIsTrial(v *bool) *WorkRequestUpdate {
	if v != nil {
		_u.SetIsTrial(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkRequestUpdate) SetStatus(v workrequest.Status) *WorkRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkRequestUpdate) SetNillableStatus(v *workrequest.Status) *WorkRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *WorkRequestUpdate) SetResultSummary(v string) *WorkRequestUpdate {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *WorkRequestUpdate) SetNillableResultSummary(v *string) *WorkRequestUpdate {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *WorkRequestUpdate) ClearResultSummary() *WorkRequestUpdate {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkRequestUpdate) SetErrorMessage(v string) *WorkRequestUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkRequestUpdate) SetNillableErrorMessage(v *string) *WorkRequestUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkRequestUpdate) ClearErrorMessage() *WorkRequestUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *WorkRequestUpdate) SetPriority(v int) *WorkRequestUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *WorkRequestUpdate) SetNillablePriority(v *int) *WorkRequestUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *WorkRequestUpdate) AddPriority(v int) *WorkRequestUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkRequestUpdate) SetUpdatedAt(v time.Time) *WorkRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTicketID sets the "ticket" edge to the WorkTicket entity by ID.
func (_u *WorkRequestUpdate) SetTicketID(id string) *WorkRequestUpdate {
	_u.mutation.SetTicketID(id)
	return _u
}

// SetNillableTicketID sets the "ticket" edge to the WorkTicket entity by ID if the given value is not nil.
func (_u *WorkRequestUpdate) SetNillableTicketID(id *string) *WorkRequestUpdate {
	if id != nil {
		_u = _u.SetTicketID(*id)
	}
	return _u
}

// SetTicket sets the "ticket" edge to the WorkTicket entity.
func (_u *WorkRequestUpdate) SetTicket(v *WorkTicket) *WorkRequestUpdate {
	return _u.SetTicketID(v.ID)
}

// Mutation returns the WorkRequestMutation object of the builder.
func (_u *WorkRequestUpdate) Mutation() *WorkRequestMutation {
	return _u.mutation
}

// ClearTicket clears the "ticket" edge to the WorkTicket entity.
func (_u *WorkRequestUpdate) ClearTicket() *WorkRequestUpdate {
	_u.mutation.ClearTicket()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkRequestUpdate) check() error {
	if v, ok := _u.mutation.AgentKind(); ok {
		if err := workrequest.AgentKindValidator(v); err != nil {
			return &ValidationError{Name: "agent_kind", err: fmt.Errorf(`ent: validator failed for field "WorkRequest.agent_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workrequest.Table, workrequest.Columns, sqlgraph.NewFieldSpec(workrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentKind(); ok {
		_spec.SetField(workrequest.FieldAgentKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorkMode(); ok {
		_spec.SetField(workrequest.FieldWorkMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(workrequest.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(workrequest.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsTrial(); ok {
		_spec.SetField(workrequest.FieldIsTrial, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(workrequest.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(workrequest.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workrequest.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workrequest.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(workrequest.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(workrequest.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TicketCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TicketIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkRequestUpdateOne is the builder for updating a single WorkRequest entity.
type WorkRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkRequestMutation
}

// SetAgentKind sets the "agent_kind" field.
func (_u *WorkRequestUpdateOne) SetAgentKind(v workrequest.AgentKind) *WorkRequestUpdateOne {
	_u.mutation.SetAgentKind(v)
	return _u
}

// SetNillableAgentKind sets the "agent_kind" field if the given value is not nil.
func (_u *WorkRequestUpdateOne) SetNillableAgentKind(v *workrequest.AgentKind) *WorkRequestUpdateOne {
	if v != nil {
		_u.SetAgentKind(*v)
	}
	return _u
}

// SetWorkMode sets the "work_mode" field.
func (_u *WorkRequestUpdateOne) SetWorkMode(v string) *WorkRequestUpdateOne {
	_u.mutation.SetWorkMode(v)
	return _u
}

// SetNillableWorkMode sets the "work_mode" field if the given value is not nil.
func (_u *WorkRequestUpdateOne) SetNillableWorkMode(v *string) *WorkRequestUpdateOne {
	if v != nil {
		_u.SetWorkMode(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WorkRequestUpdateOne) SetPayload(v map[string]interface{}) *WorkRequestUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *WorkRequestUpdateOne) ClearPayload() *WorkRequestUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetIsTrial sets the "is_trial" field.
func (_u *WorkRequestUpdateOne) SetIsTrial(v bool) *WorkRequestUpdateOne {
	_u.mutation.SetIsTrial(v)
	return _u
}

// SetNillableIsTrial sets the "is_trial" field if the given value is not nil.
func (_u *WorkRequestUpdateOne) SetNillableIsTrial(v *bool) *WorkRequestUpdateOne {
	if v != nil {
		_u.SetIsTrial(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkRequestUpdateOne) SetStatus(v workrequest.Status) *WorkRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkRequestUpdateOne) SetNillableStatus(v *workrequest.Status) *WorkRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *WorkRequestUpdateOne) SetResultSummary(v string) *WorkRequestUpdateOne {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *WorkRequestUpdateOne) SetNillableResultSummary(v *string) *WorkRequestUpdateOne {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *WorkRequestUpdateOne) ClearResultSummary() *WorkRequestUpdateOne {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkRequestUpdateOne) SetErrorMessage(v string) *WorkRequestUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkRequestUpdateOne) SetNillableErrorMessage(v *string) *WorkRequestUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkRequestUpdateOne) ClearErrorMessage() *WorkRequestUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *WorkRequestUpdateOne) SetPriority(v int) *WorkRequestUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *WorkRequestUpdateOne) SetNillablePriority(v *int) *WorkRequestUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *WorkRequestUpdateOne) AddPriority(v int) *WorkRequestUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkRequestUpdateOne) SetUpdatedAt(v time.Time) *WorkRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTicketID sets the "ticket" edge to the WorkTicket entity by ID.
func (_u *WorkRequestUpdateOne) SetTicketID(id string) *WorkRequestUpdateOne {
	_u.mutation.SetTicketID(id)
	return _u
}

// SetNillableTicketID sets the "ticket" edge to the WorkTicket entity by ID if the given value is not nil.
func (_u *WorkRequestUpdateOne) SetNillableTicketID(id *string) *WorkRequestUpdateOne {
	if id != nil {
		_u = _u.SetTicketID(*id)
	}
	return _u
}

// SetTicket sets the "ticket" edge to the WorkTicket entity.
func (_u *WorkRequestUpdateOne) SetTicket(v *WorkTicket) *WorkRequestUpdateOne {
	return _u.SetTicketID(v.ID)
}

// Mutation returns the WorkRequestMutation object of the builder.
func (_u *WorkRequestUpdateOne) Mutation() *WorkRequestMutation {
	return _u.mutation
}

// ClearTicket clears the "ticket" edge to the WorkTicket entity.
func (_u *WorkRequestUpdateOne) ClearTicket() *WorkRequestUpdateOne {
	_u.mutation.ClearTicket()
	return _u
}

// Where appends a list predicates to the WorkRequestUpdate builder.
func (_u *WorkRequestUpdateOne) Where(ps ...predicate.WorkRequest) *WorkRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkRequestUpdateOne) Select(field string, fields ...string) *WorkRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkRequest entity.
func (_u *WorkRequestUpdateOne) Save(ctx context.Context) (*WorkRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkRequestUpdateOne) SaveX(ctx context.Context) *WorkRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkRequestUpdateOne) check() error {
	if v, ok := _u.mutation.AgentKind(); ok {
		if err := workrequest.AgentKindValidator(v); err != nil {
			return &ValidationError{Name: "agent_kind", err: fmt.Errorf(`ent: validator failed for field "WorkRequest.agent_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkRequestUpdateOne) sqlSave(ctx context.Context) (_node *WorkRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workrequest.Table, workrequest.Columns, sqlgraph.NewFieldSpec(workrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workrequest.FieldID)
		for _, f := range fields {
			if !workrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workrequest.FieldID {
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
	if value, ok := _u.mutation.AgentKind(); ok {
		_spec.SetField(workrequest.FieldAgentKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorkMode(); ok {
		_spec.SetField(workrequest.FieldWorkMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(workrequest.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(workrequest.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsTrial(); ok {
		_spec.SetField(workrequest.FieldIsTrial, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(workrequest.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(workrequest.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workrequest.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workrequest.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(workrequest.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(workrequest.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TicketCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TicketIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
