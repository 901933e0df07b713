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
	"github.com/cobbleworks/foundry/ent/workticket"
)

// WorkTicketUpdate is the builder for updating WorkTicket entities.
type WorkTicketUpdate struct {
	config
	hooks    []Hook
	mutation *WorkTicketMutation
}

// Where appends a list predicates to the WorkTicketUpdate builder.
func (_u *WorkTicketUpdate) Where(ps ...predicate.WorkTicket) *WorkTicketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkTicketUpdate) SetStatus(v workticket.Status) *WorkTicketUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkTicketUpdate) SetNillableStatus(v *workticket.Status) *WorkTicketUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *WorkTicketUpdate) SetPriority(v int) *WorkTicketUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *WorkTicketUpdate) SetNillablePriority(v *int) *WorkTicketUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *WorkTicketUpdate) AddPriority(v int) *WorkTicketUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkTicketUpdate) SetStartedAt(v time.Time) *WorkTicketUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkTicketUpdate) SetNillableStartedAt(v *time.Time) *WorkTicketUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkTicketUpdate) ClearStartedAt() *WorkTicketUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *WorkTicketUpdate) SetEndedAt(v time.Time) *WorkTicketUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *WorkTicketUpdate) SetNillableEndedAt(v *time.Time) *WorkTicketUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *WorkTicketUpdate) ClearEndedAt() *WorkTicketUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetTicketMetadata sets the "ticket_metadata" field.
func (_u *WorkTicketUpdate) SetTicketMetadata(v map[string]interface{}) *WorkTicketUpdate {
	_u.mutation.SetTicketMetadata(v)
	return _u
}

// ClearTicketMetadata clears the value of the "ticket_metadata" field.
func (_u *WorkTicketUpdate) ClearTicketMetadata() *WorkTicketUpdate {
	_u.mutation.ClearTicketMetadata()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkTicketUpdate) SetPodID(v string) *WorkTicketUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkTicketUpdate) SetNillablePodID(v *string) *WorkTicketUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkTicketUpdate) ClearPodID() *WorkTicketUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *WorkTicketUpdate) SetClaimedAt(v time.Time) *WorkTicketUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *WorkTicketUpdate) SetNillableClaimedAt(v *time.Time) *WorkTicketUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *WorkTicketUpdate) ClearClaimedAt() *WorkTicketUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkTicketUpdate) SetLastHeartbeatAt(v time.Time) *WorkTicketUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkTicketUpdate) SetNillableLastHeartbeatAt(v *time.Time) *WorkTicketUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkTicketUpdate) ClearLastHeartbeatAt() *WorkTicketUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkTicketUpdate) SetUpdatedAt(v time.Time) *WorkTicketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkTicketMutation object of the builder.
func (_u *WorkTicketUpdate) Mutation() *WorkTicketMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkTicketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkTicketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkTicketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkTicketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkTicketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkTicketUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkTicket.status": %w`, err)}
		}
	}
	if _u.mutation.WorkRequestCleared() && len(_u.mutation.WorkRequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkTicket.work_request"`)
	}
	return nil
}

func (_u *WorkTicketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workticket.Table, workticket.Columns, sqlgraph.NewFieldSpec(workticket.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(workticket.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(workticket.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workticket.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workticket.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(workticket.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(workticket.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TicketMetadata(); ok {
		_spec.SetField(workticket.FieldTicketMetadata, field.TypeJSON, value)
	}
	if _u.mutation.TicketMetadataCleared() {
		_spec.ClearField(workticket.FieldTicketMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workticket.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workticket.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(workticket.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(workticket.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workticket.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workticket.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkTicketUpdateOne is the builder for updating a single WorkTicket entity.
type WorkTicketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkTicketMutation
}

// SetStatus sets the "status" field.
func (_u *WorkTicketUpdateOne) SetStatus(v workticket.Status) *WorkTicketUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkTicketUpdateOne) SetNillableStatus(v *workticket.Status) *WorkTicketUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *WorkTicketUpdateOne) SetPriority(v int) *WorkTicketUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *WorkTicketUpdateOne) SetNillablePriority(v *int) *WorkTicketUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *WorkTicketUpdateOne) AddPriority(v int) *WorkTicketUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkTicketUpdateOne) SetStartedAt(v time.Time) *WorkTicketUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkTicketUpdateOne) SetNillableStartedAt(v *time.Time) *WorkTicketUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkTicketUpdateOne) ClearStartedAt() *WorkTicketUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *WorkTicketUpdateOne) SetEndedAt(v time.Time) *WorkTicketUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *WorkTicketUpdateOne) SetNillableEndedAt(v *time.Time) *WorkTicketUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *WorkTicketUpdateOne) ClearEndedAt() *WorkTicketUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetTicketMetadata sets the "ticket_metadata" field.
func (_u *WorkTicketUpdateOne) SetTicketMetadata(v map[string]interface{}) *WorkTicketUpdateOne {
	_u.mutation.SetTicketMetadata(v)
	return _u
}

// ClearTicketMetadata clears the value of the "ticket_metadata" field.
func (_u *WorkTicketUpdateOne) ClearTicketMetadata() *WorkTicketUpdateOne {
	_u.mutation.ClearTicketMetadata()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkTicketUpdateOne) SetPodID(v string) *WorkTicketUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkTicketUpdateOne) SetNillablePodID(v *string) *WorkTicketUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkTicketUpdateOne) ClearPodID() *WorkTicketUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *WorkTicketUpdateOne) SetClaimedAt(v time.Time) *WorkTicketUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *WorkTicketUpdateOne) SetNillableClaimedAt(v *time.Time) *WorkTicketUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *WorkTicketUpdateOne) ClearClaimedAt() *WorkTicketUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkTicketUpdateOne) SetLastHeartbeatAt(v time.Time) *WorkTicketUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkTicketUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *WorkTicketUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkTicketUpdateOne) ClearLastHeartbeatAt() *WorkTicketUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkTicketUpdateOne) SetUpdatedAt(v time.Time) *WorkTicketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkTicketMutation object of the builder.
func (_u *WorkTicketUpdateOne) Mutation() *WorkTicketMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkTicketUpdate builder.
func (_u *WorkTicketUpdateOne) Where(ps ...predicate.WorkTicket) *WorkTicketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkTicketUpdateOne) Select(field string, fields ...string) *WorkTicketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkTicket entity.
func (_u *WorkTicketUpdateOne) Save(ctx context.Context) (*WorkTicket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkTicketUpdateOne) SaveX(ctx context.Context) *WorkTicket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkTicketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkTicketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkTicketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkTicketUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkTicket.status": %w`, err)}
		}
	}
	if _u.mutation.WorkRequestCleared() && len(_u.mutation.WorkRequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkTicket.work_request"`)
	}
	return nil
}

func (_u *WorkTicketUpdateOne) sqlSave(ctx context.Context) (_node *WorkTicket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workticket.Table, workticket.Columns, sqlgraph.NewFieldSpec(workticket.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkTicket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workticket.FieldID)
		for _, f := range fields {
			if !workticket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workticket.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(workticket.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(workticket.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workticket.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workticket.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(workticket.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(workticket.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TicketMetadata(); ok {
		_spec.SetField(workticket.FieldTicketMetadata, field.TypeJSON, value)
	}
	if _u.mutation.TicketMetadataCleared() {
		_spec.ClearField(workticket.FieldTicketMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workticket.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workticket.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(workticket.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(workticket.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workticket.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workticket.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workticket.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkTicket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
