// Code generated by ent, DO NOT EDIT.

package workrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cobbleworks/foundry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldUserID, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldWorkspaceID, v))
}

// BasketID applies equality check predicate on the "basket_id" field. It's identical to BasketIDEQ.
func BasketID(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldBasketID, v))
}

// WorkMode applies equality check predicate on the "work_mode" field. It's identical to WorkModeEQ.
func WorkMode(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldWorkMode, v))
}

// IsTrial applies equality check predicate on the "is_trial" field. It's identical to IsTrialEQ.
func IsTrial(v bool) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldIsTrial, v))
}

// ResultSummary applies equality check predicate on the "result_summary" field. It's identical to ResultSummaryEQ.
func ResultSummary(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldResultSummary, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldErrorMessage, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldPriority, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldContainsFold(FieldUserID, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// BasketIDEQ applies the EQ predicate on the "basket_id" field.
func BasketIDEQ(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldBasketID, v))
}

// BasketIDNEQ applies the NEQ predicate on the "basket_id" field.
func BasketIDNEQ(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNEQ(FieldBasketID, v))
}

// BasketIDIn applies the In predicate on the "basket_id" field.
func BasketIDIn(vs ...string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldIn(FieldBasketID, vs...))
}

// BasketIDNotIn applies the NotIn predicate on the "basket_id" field.
func BasketIDNotIn(vs ...string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNotIn(FieldBasketID, vs...))
}

// BasketIDGT applies the GT predicate on the "basket_id" field.
func BasketIDGT(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGT(FieldBasketID, v))
}

// BasketIDGTE applies the GTE predicate on the "basket_id" field.
func BasketIDGTE(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGTE(FieldBasketID, v))
}

// BasketIDLT applies the LT predicate on the "basket_id" field.
func BasketIDLT(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLT(FieldBasketID, v))
}

// BasketIDLTE applies the LTE predicate on the "basket_id" field.
func BasketIDLTE(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLTE(FieldBasketID, v))
}

// BasketIDContains applies the Contains predicate on the "basket_id" field.
func BasketIDContains(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldContains(FieldBasketID, v))
}

// BasketIDHasPrefix applies the HasPrefix predicate on the "basket_id" field.
func BasketIDHasPrefix(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldHasPrefix(FieldBasketID, v))
}

// BasketIDHasSuffix applies the HasSuffix predicate on the "basket_id" field.
func BasketIDHasSuffix(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldHasSuffix(FieldBasketID, v))
}

// BasketIDEqualFold applies the EqualFold predicate on the "basket_id" field.
func BasketIDEqualFold(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEqualFold(FieldBasketID, v))
}

// BasketIDContainsFold applies the ContainsFold predicate on the "basket_id" field.
func BasketIDContainsFold(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldContainsFold(FieldBasketID, v))
}

// AgentKindEQ applies the EQ predicate on the "agent_kind" field.
func AgentKindEQ(v AgentKind) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldAgentKind, v))
}

// AgentKindNEQ applies the NEQ predicate on the "agent_kind" field.
func AgentKindNEQ(v AgentKind) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNEQ(FieldAgentKind, v))
}

// AgentKindIn applies the In predicate on the "agent_kind" field.
func AgentKindIn(vs ...AgentKind) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldIn(FieldAgentKind, vs...))
}

// AgentKindNotIn applies the NotIn predicate on the "agent_kind" field.
func AgentKindNotIn(vs ...AgentKind) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNotIn(FieldAgentKind, vs...))
}

// WorkModeEQ applies the EQ predicate on the "work_mode" field.
func WorkModeEQ(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldWorkMode, v))
}

// WorkModeNEQ applies the NEQ predicate on the "work_mode" field.
func WorkModeNEQ(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNEQ(FieldWorkMode, v))
}

// WorkModeIn applies the In predicate on the "work_mode" field.
func WorkModeIn(vs ...string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldIn(FieldWorkMode, vs...))
}

// WorkModeNotIn applies the NotIn predicate on the "work_mode" field.
func WorkModeNotIn(vs ...string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNotIn(FieldWorkMode, vs...))
}

// WorkModeGT applies the GT predicate on the "work_mode" field.
func WorkModeGT(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGT(FieldWorkMode, v))
}

// WorkModeGTE applies the GTE predicate on the "work_mode" field.
func WorkModeGTE(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGTE(FieldWorkMode, v))
}

// WorkModeLT applies the LT predicate on the "work_mode" field.
func WorkModeLT(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLT(FieldWorkMode, v))
}

// WorkModeLTE applies the LTE predicate on the "work_mode" field.
func WorkModeLTE(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLTE(FieldWorkMode, v))
}

// WorkModeContains applies the Contains predicate on the "work_mode" field.
func WorkModeContains(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldContains(FieldWorkMode, v))
}

// WorkModeHasPrefix applies the HasPrefix predicate on the "work_mode" field.
func WorkModeHasPrefix(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldHasPrefix(FieldWorkMode, v))
}

// WorkModeHasSuffix applies the HasSuffix predicate on the "work_mode" field.
func WorkModeHasSuffix(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldHasSuffix(FieldWorkMode, v))
}

// WorkModeEqualFold applies the EqualFold predicate on the "work_mode" field.
func WorkModeEqualFold(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEqualFold(FieldWorkMode, v))
}

// WorkModeContainsFold applies the ContainsFold predicate on the "work_mode" field.
func WorkModeContainsFold(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldContainsFold(FieldWorkMode, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNotNull(FieldPayload))
}

// IsTrialEQ applies the EQ predicate on the "is_trial" field.
func IsTrialEQ(v bool) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldIsTrial, v))
}

// IsTrialNEQ applies the NEQ predicate on the "is_trial" field.
func IsTrialNEQ(v bool) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNEQ(FieldIsTrial, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// ResultSummaryEQ applies the EQ predicate on the "result_summary" field.
func ResultSummaryEQ(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldResultSummary, v))
}

// ResultSummaryNEQ applies the NEQ predicate on the "result_summary" field.
func ResultSummaryNEQ(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNEQ(FieldResultSummary, v))
}

// ResultSummaryIn applies the In predicate on the "result_summary" field.
func ResultSummaryIn(vs ...string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldIn(FieldResultSummary, vs...))
}

// ResultSummaryNotIn applies the NotIn predicate on the "result_summary" field.
func ResultSummaryNotIn(vs ...string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNotIn(FieldResultSummary, vs...))
}

// ResultSummaryGT applies the GT predicate on the "result_summary" field.
func ResultSummaryGT(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGT(FieldResultSummary, v))
}

// ResultSummaryGTE applies the GTE predicate on the "result_summary" field.
func ResultSummaryGTE(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGTE(FieldResultSummary, v))
}

// ResultSummaryLT applies the LT predicate on the "result_summary" field.
func ResultSummaryLT(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLT(FieldResultSummary, v))
}

// ResultSummaryLTE applies the LTE predicate on the "result_summary" field.
func ResultSummaryLTE(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLTE(FieldResultSummary, v))
}

// ResultSummaryContains applies the Contains predicate on the "result_summary" field.
func ResultSummaryContains(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldContains(FieldResultSummary, v))
}

// ResultSummaryHasPrefix applies the HasPrefix predicate on the "result_summary" field.
func ResultSummaryHasPrefix(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldHasPrefix(FieldResultSummary, v))
}

// ResultSummaryHasSuffix applies the HasSuffix predicate on the "result_summary" field.
func ResultSummaryHasSuffix(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldHasSuffix(FieldResultSummary, v))
}

// ResultSummaryIsNil applies the IsNil predicate on the "result_summary" field.
func ResultSummaryIsNil() predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldIsNull(FieldResultSummary))
}

// ResultSummaryNotNil applies the NotNil predicate on the "result_summary" field.
func ResultSummaryNotNil() predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNotNull(FieldResultSummary))
}

// ResultSummaryEqualFold applies the EqualFold predicate on the "result_summary" field.
func ResultSummaryEqualFold(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEqualFold(FieldResultSummary, v))
}

// ResultSummaryContainsFold applies the ContainsFold predicate on the "result_summary" field.
func ResultSummaryContainsFold(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldContainsFold(FieldResultSummary, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldContainsFold(FieldErrorMessage, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLTE(FieldPriority, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkRequest {
	return predicate.WorkRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTicket applies the HasEdge predicate on the "ticket" edge.
func HasTicket() predicate.WorkRequest {
	return predicate.WorkRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, TicketTable, TicketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketWith applies the HasEdge predicate on the "ticket" edge with a given conditions (other predicates).
func HasTicketWith(preds ...predicate.WorkTicket) predicate.WorkRequest {
	return predicate.WorkRequest(func(s *sql.Selector) {
		step := newTicketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkRequest) predicate.WorkRequest {
	return predicate.WorkRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkRequest) predicate.WorkRequest {
	return predicate.WorkRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkRequest) predicate.WorkRequest {
	return predicate.WorkRequest(sql.NotPredicates(p))
}
