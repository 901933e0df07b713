// Code generated by ent, DO NOT EDIT.

package agentsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cobbleworks/foundry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldID, id))
}

// BasketID applies equality check predicate on the "basket_id" field. It's identical to BasketIDEQ.
func BasketID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldBasketID, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldWorkspaceID, v))
}

// ParentSessionID applies equality check predicate on the "parent_session_id" field. It's identical to ParentSessionIDEQ.
func ParentSessionID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldParentSessionID, v))
}

// CreatedBySessionID applies equality check predicate on the "created_by_session_id" field. It's identical to CreatedBySessionIDEQ.
func CreatedBySessionID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCreatedBySessionID, v))
}

// ProviderSessionID applies equality check predicate on the "provider_session_id" field. It's identical to ProviderSessionIDEQ.
func ProviderSessionID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldProviderSessionID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCreatedBy, v))
}

// LastClaimedBy applies equality check predicate on the "last_claimed_by" field. It's identical to LastClaimedByEQ.
func LastClaimedBy(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldLastClaimedBy, v))
}

// LastClaimedAt applies equality check predicate on the "last_claimed_at" field. It's identical to LastClaimedAtEQ.
func LastClaimedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldLastClaimedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// BasketIDEQ applies the EQ predicate on the "basket_id" field.
func BasketIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldBasketID, v))
}

// BasketIDNEQ applies the NEQ predicate on the "basket_id" field.
func BasketIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldBasketID, v))
}

// BasketIDIn applies the In predicate on the "basket_id" field.
func BasketIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldBasketID, vs...))
}

// BasketIDNotIn applies the NotIn predicate on the "basket_id" field.
func BasketIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldBasketID, vs...))
}

// BasketIDGT applies the GT predicate on the "basket_id" field.
func BasketIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldBasketID, v))
}

// BasketIDGTE applies the GTE predicate on the "basket_id" field.
func BasketIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldBasketID, v))
}

// BasketIDLT applies the LT predicate on the "basket_id" field.
func BasketIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldBasketID, v))
}

// BasketIDLTE applies the LTE predicate on the "basket_id" field.
func BasketIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldBasketID, v))
}

// BasketIDContains applies the Contains predicate on the "basket_id" field.
func BasketIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldBasketID, v))
}

// BasketIDHasPrefix applies the HasPrefix predicate on the "basket_id" field.
func BasketIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldBasketID, v))
}

// BasketIDHasSuffix applies the HasSuffix predicate on the "basket_id" field.
func BasketIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldBasketID, v))
}

// BasketIDEqualFold applies the EqualFold predicate on the "basket_id" field.
func BasketIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldBasketID, v))
}

// BasketIDContainsFold applies the ContainsFold predicate on the "basket_id" field.
func BasketIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldBasketID, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// AgentKindEQ applies the EQ predicate on the "agent_kind" field.
func AgentKindEQ(v AgentKind) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldAgentKind, v))
}

// AgentKindNEQ applies the NEQ predicate on the "agent_kind" field.
func AgentKindNEQ(v AgentKind) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldAgentKind, v))
}

// AgentKindIn applies the In predicate on the "agent_kind" field.
func AgentKindIn(vs ...AgentKind) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldAgentKind, vs...))
}

// AgentKindNotIn applies the NotIn predicate on the "agent_kind" field.
func AgentKindNotIn(vs ...AgentKind) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldAgentKind, vs...))
}

// ParentSessionIDEQ applies the EQ predicate on the "parent_session_id" field.
func ParentSessionIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldParentSessionID, v))
}

// ParentSessionIDNEQ applies the NEQ predicate on the "parent_session_id" field.
func ParentSessionIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldParentSessionID, v))
}

// ParentSessionIDIn applies the In predicate on the "parent_session_id" field.
func ParentSessionIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldParentSessionID, vs...))
}

// ParentSessionIDNotIn applies the NotIn predicate on the "parent_session_id" field.
func ParentSessionIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldParentSessionID, vs...))
}

// ParentSessionIDGT applies the GT predicate on the "parent_session_id" field.
func ParentSessionIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldParentSessionID, v))
}

// ParentSessionIDGTE applies the GTE predicate on the "parent_session_id" field.
func ParentSessionIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldParentSessionID, v))
}

// ParentSessionIDLT applies the LT predicate on the "parent_session_id" field.
func ParentSessionIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldParentSessionID, v))
}

// ParentSessionIDLTE applies the LTE predicate on the "parent_session_id" field.
func ParentSessionIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldParentSessionID, v))
}

// ParentSessionIDContains applies the Contains predicate on the "parent_session_id" field.
func ParentSessionIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldParentSessionID, v))
}

// ParentSessionIDHasPrefix applies the HasPrefix predicate on the "parent_session_id" field.
func ParentSessionIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldParentSessionID, v))
}

// ParentSessionIDHasSuffix applies the HasSuffix predicate on the "parent_session_id" field.
func ParentSessionIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldParentSessionID, v))
}

// ParentSessionIDIsNil applies the IsNil predicate on the "parent_session_id" field.
func ParentSessionIDIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldParentSessionID))
}

// ParentSessionIDNotNil applies the NotNil predicate on the "parent_session_id" field.
func ParentSessionIDNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldParentSessionID))
}

// ParentSessionIDEqualFold applies the EqualFold predicate on the "parent_session_id" field.
func ParentSessionIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldParentSessionID, v))
}

// ParentSessionIDContainsFold applies the ContainsFold predicate on the "parent_session_id" field.
func ParentSessionIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldParentSessionID, v))
}

// CreatedBySessionIDEQ applies the EQ predicate on the "created_by_session_id" field.
func CreatedBySessionIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCreatedBySessionID, v))
}

// CreatedBySessionIDNEQ applies the NEQ predicate on the "created_by_session_id" field.
func CreatedBySessionIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldCreatedBySessionID, v))
}

// CreatedBySessionIDIn applies the In predicate on the "created_by_session_id" field.
func CreatedBySessionIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldCreatedBySessionID, vs...))
}

// CreatedBySessionIDNotIn applies the NotIn predicate on the "created_by_session_id" field.
func CreatedBySessionIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldCreatedBySessionID, vs...))
}

// CreatedBySessionIDGT applies the GT predicate on the "created_by_session_id" field.
func CreatedBySessionIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldCreatedBySessionID, v))
}

// CreatedBySessionIDGTE applies the GTE predicate on the "created_by_session_id" field.
func CreatedBySessionIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldCreatedBySessionID, v))
}

// CreatedBySessionIDLT applies the LT predicate on the "created_by_session_id" field.
func CreatedBySessionIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldCreatedBySessionID, v))
}

// CreatedBySessionIDLTE applies the LTE predicate on the "created_by_session_id" field.
func CreatedBySessionIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldCreatedBySessionID, v))
}

// CreatedBySessionIDContains applies the Contains predicate on the "created_by_session_id" field.
func CreatedBySessionIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldCreatedBySessionID, v))
}

// CreatedBySessionIDHasPrefix applies the HasPrefix predicate on the "created_by_session_id" field.
func CreatedBySessionIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldCreatedBySessionID, v))
}

// CreatedBySessionIDHasSuffix applies the HasSuffix predicate on the "created_by_session_id" field.
func CreatedBySessionIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldCreatedBySessionID, v))
}

// CreatedBySessionIDIsNil applies the IsNil predicate on the "created_by_session_id" field.
func CreatedBySessionIDIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldCreatedBySessionID))
}

// CreatedBySessionIDNotNil applies the NotNil predicate on the "created_by_session_id" field.
func CreatedBySessionIDNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldCreatedBySessionID))
}

// CreatedBySessionIDEqualFold applies the EqualFold predicate on the "created_by_session_id" field.
func CreatedBySessionIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldCreatedBySessionID, v))
}

// CreatedBySessionIDContainsFold applies the ContainsFold predicate on the "created_by_session_id" field.
func CreatedBySessionIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldCreatedBySessionID, v))
}

// ProviderSessionIDEQ applies the EQ predicate on the "provider_session_id" field.
func ProviderSessionIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldProviderSessionID, v))
}

// ProviderSessionIDNEQ applies the NEQ predicate on the "provider_session_id" field.
func ProviderSessionIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldProviderSessionID, v))
}

// ProviderSessionIDIn applies the In predicate on the "provider_session_id" field.
func ProviderSessionIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldProviderSessionID, vs...))
}

// ProviderSessionIDNotIn applies the NotIn predicate on the "provider_session_id" field.
func ProviderSessionIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldProviderSessionID, vs...))
}

// ProviderSessionIDGT applies the GT predicate on the "provider_session_id" field.
func ProviderSessionIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldProviderSessionID, v))
}

// ProviderSessionIDGTE applies the GTE predicate on the "provider_session_id" field.
func ProviderSessionIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldProviderSessionID, v))
}

// ProviderSessionIDLT applies the LT predicate on the "provider_session_id" field.
func ProviderSessionIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldProviderSessionID, v))
}

// ProviderSessionIDLTE applies the LTE predicate on the "provider_session_id" field.
func ProviderSessionIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldProviderSessionID, v))
}

// ProviderSessionIDContains applies the Contains predicate on the "provider_session_id" field.
func ProviderSessionIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldProviderSessionID, v))
}

// ProviderSessionIDHasPrefix applies the HasPrefix predicate on the "provider_session_id" field.
func ProviderSessionIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldProviderSessionID, v))
}

// ProviderSessionIDHasSuffix applies the HasSuffix predicate on the "provider_session_id" field.
func ProviderSessionIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldProviderSessionID, v))
}

// ProviderSessionIDIsNil applies the IsNil predicate on the "provider_session_id" field.
func ProviderSessionIDIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldProviderSessionID))
}

// ProviderSessionIDNotNil applies the NotNil predicate on the "provider_session_id" field.
func ProviderSessionIDNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldProviderSessionID))
}

// ProviderSessionIDEqualFold applies the EqualFold predicate on the "provider_session_id" field.
func ProviderSessionIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldProviderSessionID, v))
}

// ProviderSessionIDContainsFold applies the ContainsFold predicate on the "provider_session_id" field.
func ProviderSessionIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldProviderSessionID, v))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldState))
}

// SessionMetadataIsNil applies the IsNil predicate on the "session_metadata" field.
func SessionMetadataIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldSessionMetadata))
}

// SessionMetadataNotNil applies the NotNil predicate on the "session_metadata" field.
func SessionMetadataNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldSessionMetadata))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldCreatedBy, v))
}

// LastClaimedByEQ applies the EQ predicate on the "last_claimed_by" field.
func LastClaimedByEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldLastClaimedBy, v))
}

// LastClaimedByNEQ applies the NEQ predicate on the "last_claimed_by" field.
func LastClaimedByNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldLastClaimedBy, v))
}

// LastClaimedByIn applies the In predicate on the "last_claimed_by" field.
func LastClaimedByIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldLastClaimedBy, vs...))
}

// LastClaimedByNotIn applies the NotIn predicate on the "last_claimed_by" field.
func LastClaimedByNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldLastClaimedBy, vs...))
}

// LastClaimedByGT applies the GT predicate on the "last_claimed_by" field.
func LastClaimedByGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldLastClaimedBy, v))
}

// LastClaimedByGTE applies the GTE predicate on the "last_claimed_by" field.
func LastClaimedByGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldLastClaimedBy, v))
}

// LastClaimedByLT applies the LT predicate on the "last_claimed_by" field.
func LastClaimedByLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldLastClaimedBy, v))
}

// LastClaimedByLTE applies the LTE predicate on the "last_claimed_by" field.
func LastClaimedByLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldLastClaimedBy, v))
}

// LastClaimedByContains applies the Contains predicate on the "last_claimed_by" field.
func LastClaimedByContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldLastClaimedBy, v))
}

// LastClaimedByHasPrefix applies the HasPrefix predicate on the "last_claimed_by" field.
func LastClaimedByHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldLastClaimedBy, v))
}

// LastClaimedByHasSuffix applies the HasSuffix predicate on the "last_claimed_by" field.
func LastClaimedByHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldLastClaimedBy, v))
}

// LastClaimedByIsNil applies the IsNil predicate on the "last_claimed_by" field.
func LastClaimedByIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldLastClaimedBy))
}

// LastClaimedByNotNil applies the NotNil predicate on the "last_claimed_by" field.
func LastClaimedByNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldLastClaimedBy))
}

// LastClaimedByEqualFold applies the EqualFold predicate on the "last_claimed_by" field.
func LastClaimedByEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldLastClaimedBy, v))
}

// LastClaimedByContainsFold applies the ContainsFold predicate on the "last_claimed_by" field.
func LastClaimedByContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldLastClaimedBy, v))
}

// LastClaimedAtEQ applies the EQ predicate on the "last_claimed_at" field.
func LastClaimedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldLastClaimedAt, v))
}

// LastClaimedAtNEQ applies the NEQ predicate on the "last_claimed_at" field.
func LastClaimedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldLastClaimedAt, v))
}

// LastClaimedAtIn applies the In predicate on the "last_claimed_at" field.
func LastClaimedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldLastClaimedAt, vs...))
}

// LastClaimedAtNotIn applies the NotIn predicate on the "last_claimed_at" field.
func LastClaimedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldLastClaimedAt, vs...))
}

// LastClaimedAtGT applies the GT predicate on the "last_claimed_at" field.
func LastClaimedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldLastClaimedAt, v))
}

// LastClaimedAtGTE applies the GTE predicate on the "last_claimed_at" field.
func LastClaimedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldLastClaimedAt, v))
}

// LastClaimedAtLT applies the LT predicate on the "last_claimed_at" field.
func LastClaimedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldLastClaimedAt, v))
}

// LastClaimedAtLTE applies the LTE predicate on the "last_claimed_at" field.
func LastClaimedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldLastClaimedAt, v))
}

// LastClaimedAtIsNil applies the IsNil predicate on the "last_claimed_at" field.
func LastClaimedAtIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldLastClaimedAt))
}

// LastClaimedAtNotNil applies the NotNil predicate on the "last_claimed_at" field.
func LastClaimedAtNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldLastClaimedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildren applies the HasEdge predicate on the "children" edge.
func HasChildren() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildrenWith applies the HasEdge predicate on the "children" edge with a given conditions (other predicates).
func HasChildrenWith(preds ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newChildrenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.NotPredicates(p))
}
