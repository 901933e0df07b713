// Code generated by ent, DO NOT EDIT.

package workticket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cobbleworks/foundry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldContainsFold(FieldID, id))
}

// WorkRequestID applies equality check predicate on the "work_request_id" field. It's identical to WorkRequestIDEQ.
func WorkRequestID(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldWorkRequestID, v))
}

// AgentSessionID applies equality check predicate on the "agent_session_id" field. It's identical to AgentSessionIDEQ.
func AgentSessionID(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldAgentSessionID, v))
}

// BasketID applies equality check predicate on the "basket_id" field. It's identical to BasketIDEQ.
func BasketID(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldBasketID, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldWorkspaceID, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldPriority, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldEndedAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldPodID, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldClaimedAt, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkRequestIDEQ applies the EQ predicate on the "work_request_id" field.
func WorkRequestIDEQ(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldWorkRequestID, v))
}

// WorkRequestIDNEQ applies the NEQ predicate on the "work_request_id" field.
func WorkRequestIDNEQ(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNEQ(FieldWorkRequestID, v))
}

// WorkRequestIDIn applies the In predicate on the "work_request_id" field.
func WorkRequestIDIn(vs ...string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIn(FieldWorkRequestID, vs...))
}

// WorkRequestIDNotIn applies the NotIn predicate on the "work_request_id" field.
func WorkRequestIDNotIn(vs ...string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotIn(FieldWorkRequestID, vs...))
}

// WorkRequestIDGT applies the GT predicate on the "work_request_id" field.
func WorkRequestIDGT(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGT(FieldWorkRequestID, v))
}

// WorkRequestIDGTE applies the GTE predicate on the "work_request_id" field.
func WorkRequestIDGTE(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGTE(FieldWorkRequestID, v))
}

// WorkRequestIDLT applies the LT predicate on the "work_request_id" field.
func WorkRequestIDLT(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLT(FieldWorkRequestID, v))
}

// WorkRequestIDLTE applies the LTE predicate on the "work_request_id" field.
func WorkRequestIDLTE(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLTE(FieldWorkRequestID, v))
}

// WorkRequestIDContains applies the Contains predicate on the "work_request_id" field.
func WorkRequestIDContains(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldContains(FieldWorkRequestID, v))
}

// WorkRequestIDHasPrefix applies the HasPrefix predicate on the "work_request_id" field.
func WorkRequestIDHasPrefix(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldHasPrefix(FieldWorkRequestID, v))
}

// WorkRequestIDHasSuffix applies the HasSuffix predicate on the "work_request_id" field.
func WorkRequestIDHasSuffix(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldHasSuffix(FieldWorkRequestID, v))
}

// WorkRequestIDEqualFold applies the EqualFold predicate on the "work_request_id" field.
func WorkRequestIDEqualFold(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEqualFold(FieldWorkRequestID, v))
}

// WorkRequestIDContainsFold applies the ContainsFold predicate on the "work_request_id" field.
func WorkRequestIDContainsFold(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldContainsFold(FieldWorkRequestID, v))
}

// AgentSessionIDEQ applies the EQ predicate on the "agent_session_id" field.
func AgentSessionIDEQ(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldAgentSessionID, v))
}

// AgentSessionIDNEQ applies the NEQ predicate on the "agent_session_id" field.
func AgentSessionIDNEQ(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNEQ(FieldAgentSessionID, v))
}

// AgentSessionIDIn applies the In predicate on the "agent_session_id" field.
func AgentSessionIDIn(vs ...string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIn(FieldAgentSessionID, vs...))
}

// AgentSessionIDNotIn applies the NotIn predicate on the "agent_session_id" field.
func AgentSessionIDNotIn(vs ...string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotIn(FieldAgentSessionID, vs...))
}

// AgentSessionIDGT applies the GT predicate on the "agent_session_id" field.
func AgentSessionIDGT(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGT(FieldAgentSessionID, v))
}

// AgentSessionIDGTE applies the GTE predicate on the "agent_session_id" field.
func AgentSessionIDGTE(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGTE(FieldAgentSessionID, v))
}

// AgentSessionIDLT applies the LT predicate on the "agent_session_id" field.
func AgentSessionIDLT(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLT(FieldAgentSessionID, v))
}

// AgentSessionIDLTE applies the LTE predicate on the "agent_session_id" field.
func AgentSessionIDLTE(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLTE(FieldAgentSessionID, v))
}

// AgentSessionIDContains applies the Contains predicate on the "agent_session_id" field.
func AgentSessionIDContains(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldContains(FieldAgentSessionID, v))
}

// AgentSessionIDHasPrefix applies the HasPrefix predicate on the "agent_session_id" field.
func AgentSessionIDHasPrefix(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldHasPrefix(FieldAgentSessionID, v))
}

// AgentSessionIDHasSuffix applies the HasSuffix predicate on the "agent_session_id" field.
func AgentSessionIDHasSuffix(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldHasSuffix(FieldAgentSessionID, v))
}

// AgentSessionIDEqualFold applies the EqualFold predicate on the "agent_session_id" field.
func AgentSessionIDEqualFold(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEqualFold(FieldAgentSessionID, v))
}

// AgentSessionIDContainsFold applies the ContainsFold predicate on the "agent_session_id" field.
func AgentSessionIDContainsFold(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldContainsFold(FieldAgentSessionID, v))
}

// BasketIDEQ applies the EQ predicate on the "basket_id" field.
func BasketIDEQ(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldBasketID, v))
}

// BasketIDNEQ applies the NEQ predicate on the "basket_id" field.
func BasketIDNEQ(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNEQ(FieldBasketID, v))
}

// BasketIDIn applies the In predicate on the "basket_id" field.
func BasketIDIn(vs ...string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIn(FieldBasketID, vs...))
}

// BasketIDNotIn applies the NotIn predicate on the "basket_id" field.
func BasketIDNotIn(vs ...string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotIn(FieldBasketID, vs...))
}

// BasketIDGT applies the GT predicate on the "basket_id" field.
func BasketIDGT(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGT(FieldBasketID, v))
}

// BasketIDGTE applies the GTE predicate on the "basket_id" field.
func BasketIDGTE(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGTE(FieldBasketID, v))
}

// BasketIDLT applies the LT predicate on the "basket_id" field.
func BasketIDLT(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLT(FieldBasketID, v))
}

// BasketIDLTE applies the LTE predicate on the "basket_id" field.
func BasketIDLTE(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLTE(FieldBasketID, v))
}

// BasketIDContains applies the Contains predicate on the "basket_id" field.
func BasketIDContains(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldContains(FieldBasketID, v))
}

// BasketIDHasPrefix applies the HasPrefix predicate on the "basket_id" field.
func BasketIDHasPrefix(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldHasPrefix(FieldBasketID, v))
}

// BasketIDHasSuffix applies the HasSuffix predicate on the "basket_id" field.
func BasketIDHasSuffix(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldHasSuffix(FieldBasketID, v))
}

// BasketIDEqualFold applies the EqualFold predicate on the "basket_id" field.
func BasketIDEqualFold(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEqualFold(FieldBasketID, v))
}

// BasketIDContainsFold applies the ContainsFold predicate on the "basket_id" field.
func BasketIDContainsFold(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldContainsFold(FieldBasketID, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// AgentKindEQ applies the EQ predicate on the "agent_kind" field.
func AgentKindEQ(v AgentKind) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldAgentKind, v))
}

// AgentKindNEQ applies the NEQ predicate on the "agent_kind" field.
func AgentKindNEQ(v AgentKind) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNEQ(FieldAgentKind, v))
}

// AgentKindIn applies the In predicate on the "agent_kind" field.
func AgentKindIn(vs ...AgentKind) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIn(FieldAgentKind, vs...))
}

// AgentKindNotIn applies the NotIn predicate on the "agent_kind" field.
func AgentKindNotIn(vs ...AgentKind) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotIn(FieldAgentKind, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotIn(FieldStatus, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLTE(FieldPriority, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotNull(FieldStartedAt))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotNull(FieldEndedAt))
}

// TicketMetadataIsNil applies the IsNil predicate on the "ticket_metadata" field.
func TicketMetadataIsNil() predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIsNull(FieldTicketMetadata))
}

// TicketMetadataNotNil applies the NotNil predicate on the "ticket_metadata" field.
func TicketMetadataNotNil() predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotNull(FieldTicketMetadata))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldContainsFold(FieldPodID, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotNull(FieldClaimedAt))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkTicket {
	return predicate.WorkTicket(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkRequest applies the HasEdge predicate on the "work_request" edge.
func HasWorkRequest() predicate.WorkTicket {
	return predicate.WorkTicket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, WorkRequestTable, WorkRequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkRequestWith applies the HasEdge predicate on the "work_request" edge with a given conditions (other predicates).
func HasWorkRequestWith(preds ...predicate.WorkRequest) predicate.WorkTicket {
	return predicate.WorkTicket(func(s *sql.Selector) {
		step := newWorkRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkTicket) predicate.WorkTicket {
	return predicate.WorkTicket(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkTicket) predicate.WorkTicket {
	return predicate.WorkTicket(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkTicket) predicate.WorkTicket {
	return predicate.WorkTicket(sql.NotPredicates(p))
}
