// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/cobbleworks/foundry/ent/predicate"
	"github.com/cobbleworks/foundry/ent/project"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdate) SetName(v string) *ProjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProjectUpdate) SetDescription(v string) *ProjectUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableDescription(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProjectUpdate) ClearDescription() *ProjectUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectUpdate) SetStatus(v project.Status) *ProjectUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableStatus(v *project.Status) *ProjectUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPromotionMode sets the "promotion_mode" field.
func (_u *ProjectUpdate) SetPromotionMode(v project.PromotionMode) *ProjectUpdate {
	_u.mutation.SetPromotionMode(v)
	return _u
}

// SetNillablePromotionMode sets the "promotion_mode" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillablePromotionMode(v *project.PromotionMode) *ProjectUpdate {
	if v != nil {
		_u.SetPromotionMode(*v)
	}
	return _u
}

// SetAutoPromoteTypes sets the "auto_promote_types" field.
func (_u *ProjectUpdate) SetAutoPromoteTypes(v []string) *ProjectUpdate {
	_u.mutation.SetAutoPromoteTypes(v)
	return _u
}

// AppendAutoPromoteTypes appends value to the "auto_promote_types" field.
func (_u *ProjectUpdate) AppendAutoPromoteTypes(v []string) *ProjectUpdate {
	_u.mutation.AppendAutoPromoteTypes(v)
	return _u
}

// ClearAutoPromoteTypes clears the value of the "auto_promote_types" field.
func (_u *ProjectUpdate) ClearAutoPromoteTypes() *ProjectUpdate {
	_u.mutation.ClearAutoPromoteTypes()
	return _u
}

// SetGovernancePolicy sets the "governance_policy" field.
func (_u *ProjectUpdate) SetGovernancePolicy(v map[string]interface{}) *ProjectUpdate {
	_u.mutation.SetGovernancePolicy(v)
	return _u
}

// ClearGovernancePolicy clears the value of the "governance_policy" field.
func (_u *ProjectUpdate) ClearGovernancePolicy() *ProjectUpdate {
	_u.mutation.ClearGovernancePolicy()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ProjectUpdate) SetCreatedBy(v string) *ProjectUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableCreatedBy(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ProjectUpdate) ClearCreatedBy() *ProjectUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdate) SetUpdatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromotionMode(); ok {
		if err := project.PromotionModeValidator(v); err != nil {
			return &ValidationError{Name: "promotion_mode", err: fmt.Errorf(`ent: validator failed for field "Project.promotion_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(project.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(project.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PromotionMode(); ok {
		_spec.SetField(project.FieldPromotionMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AutoPromoteTypes(); ok {
		_spec.SetField(project.FieldAutoPromoteTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAutoPromoteTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldAutoPromoteTypes, value)
		})
	}
	if _u.mutation.AutoPromoteTypesCleared() {
		_spec.ClearField(project.FieldAutoPromoteTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.GovernancePolicy(); ok {
		_spec.SetField(project.FieldGovernancePolicy, field.TypeJSON, value)
	}
	if _u.mutation.GovernancePolicyCleared() {
		_spec.ClearField(project.FieldGovernancePolicy, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(project.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(project.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetName sets the "name" field.
func (_u *ProjectUpdateOne) SetName(v string) *ProjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProjectUpdateOne) SetDescription(v string) *ProjectUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableDescription(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProjectUpdateOne) ClearDescription() *ProjectUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectUpdateOne) SetStatus(v project.Status) *ProjectUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableStatus(v *project.Status) *ProjectUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPromotionMode sets the "promotion_mode" field.
func (_u *ProjectUpdateOne) SetPromotionMode(v project.PromotionMode) *ProjectUpdateOne {
	_u.mutation.SetPromotionMode(v)
	return _u
}

// SetNillablePromotionMode sets the "promotion_mode" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillablePromotionMode(v *project.PromotionMode) *ProjectUpdateOne {
	if v != nil {
		_u.SetPromotionMode(*v)
	}
	return _u
}

// SetAutoPromoteTypes sets the "auto_promote_types" field.
func (_u *ProjectUpdateOne) SetAutoPromoteTypes(v []string) *ProjectUpdateOne {
	_u.mutation.SetAutoPromoteTypes(v)
	return _u
}

// AppendAutoPromoteTypes appends value to the "auto_promote_types" field.
func (_u *ProjectUpdateOne) AppendAutoPromoteTypes(v []string) *ProjectUpdateOne {
	_u.mutation.AppendAutoPromoteTypes(v)
	return _u
}

// ClearAutoPromoteTypes clears the value of the "auto_promote_types" field.
func (_u *ProjectUpdateOne) ClearAutoPromoteTypes() *ProjectUpdateOne {
	_u.mutation.ClearAutoPromoteTypes()
	return _u
}

// SetGovernancePolicy sets the "governance_policy" field.
func (_u *ProjectUpdateOne) SetGovernancePolicy(v map[string]interface{}) *ProjectUpdateOne {
	_u.mutation.SetGovernancePolicy(v)
	return _u
}

// ClearGovernancePolicy clears the value of the "governance_policy" field.
func (_u *ProjectUpdateOne) ClearGovernancePolicy() *ProjectUpdateOne {
	_u.mutation.ClearGovernancePolicy()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ProjectUpdateOne) SetCreatedBy(v string) *ProjectUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableCreatedBy(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ProjectUpdateOne) ClearCreatedBy() *ProjectUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdateOne) SetUpdatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromotionMode(); ok {
		if err := project.PromotionModeValidator(v); err != nil {
			return &ValidationError{Name: "promotion_mode", err: fmt.Errorf(`ent: validator failed for field "Project.promotion_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(project.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(project.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PromotionMode(); ok {
		_spec.SetField(project.FieldPromotionMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AutoPromoteTypes(); ok {
		_spec.SetField(project.FieldAutoPromoteTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAutoPromoteTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldAutoPromoteTypes, value)
		})
	}
	if _u.mutation.AutoPromoteTypesCleared() {
		_spec.ClearField(project.FieldAutoPromoteTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.GovernancePolicy(); ok {
		_spec.SetField(project.FieldGovernancePolicy, field.TypeJSON, value)
	}
	if _u.mutation.GovernancePolicyCleared() {
		_spec.ClearField(project.FieldGovernancePolicy, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(project.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(project.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
