// Code generated by ent, DO NOT EDIT.

package agentsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentsession type in the database.
	Label = "agent_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_session_id"
	// FieldBasketID holds the string denoting the basket_id field in the database.
	FieldBasketID = "basket_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldAgentKind holds the string denoting the agent_kind field in the database.
	FieldAgentKind = "agent_kind"
	// FieldParentSessionID holds the string denoting the parent_session_id field in the database.
	FieldParentSessionID = "parent_session_id"
	// FieldCreatedBySessionID holds the string denoting the created_by_session_id field in the database.
	FieldCreatedBySessionID = "created_by_session_id"
	// FieldProviderSessionID holds the string denoting the provider_session_id field in the database.
	FieldProviderSessionID = "provider_session_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldSessionMetadata holds the string denoting the session_metadata field in the database.
	FieldSessionMetadata = "session_metadata"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldLastClaimedBy holds the string denoting the last_claimed_by field in the database.
	FieldLastClaimedBy = "last_claimed_by"
	// FieldLastClaimedAt holds the string denoting the last_claimed_at field in the database.
	FieldLastClaimedAt = "last_claimed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeChildren holds the string denoting the children edge name in mutations.
	EdgeChildren = "children"
	// Table holds the table name of the agentsession in the database.
	Table = "agent_sessions"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "agent_sessions"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "parent_session_id"
	// ChildrenTable is the table that holds the children relation/edge.
	ChildrenTable = "agent_sessions"
	// ChildrenColumn is the table column denoting the children relation/edge.
	ChildrenColumn = "parent_session_id"
)

// Columns holds all SQL columns for agentsession fields.
var Columns = []string{
	FieldID,
	FieldBasketID,
	FieldWorkspaceID,
	FieldAgentKind,
	FieldParentSessionID,
	FieldCreatedBySessionID,
	FieldProviderSessionID,
	FieldState,
	FieldSessionMetadata,
	FieldCreatedBy,
	FieldLastClaimedBy,
	FieldLastClaimedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// AgentKind defines the type for the "agent_kind" enum field.
type AgentKind string

// AgentKind values.
const (
	AgentKindResearch        AgentKind = "research"
	AgentKindContent         AgentKind = "content"
	AgentKindReporting       AgentKind = "reporting"
	AgentKindThinkingPartner AgentKind = "thinking_partner"
)

func (ak AgentKind) String() string {
	return string(ak)
}

// AgentKindValidator is a validator for the "agent_kind" field enum values. It is called by the builders before save.
func AgentKindValidator(ak AgentKind) error {
	switch ak {
	case AgentKindResearch, AgentKindContent, AgentKindReporting, AgentKindThinkingPartner:
		return nil
	default:
		return fmt.Errorf("agentsession: invalid enum value for agent_kind field: %q", ak)
	}
}

// OrderOption defines the ordering options for the AgentSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBasketID orders the results by the basket_id field.
func ByBasketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBasketID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByAgentKind orders the results by the agent_kind field.
func ByAgentKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentKind, opts...).ToFunc()
}

// ByParentSessionID orders the results by the parent_session_id field.
func ByParentSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentSessionID, opts...).ToFunc()
}

// ByCreatedBySessionID orders the results by the created_by_session_id field.
func ByCreatedBySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBySessionID, opts...).ToFunc()
}

// ByProviderSessionID orders the results by the provider_session_id field.
func ByProviderSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderSessionID, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByLastClaimedBy orders the results by the last_claimed_by field.
func ByLastClaimedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastClaimedBy, opts...).ToFunc()
}

// ByLastClaimedAt orders the results by the last_claimed_at field.
func ByLastClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastClaimedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByChildrenCount orders the results by children count.
func ByChildrenCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChildrenStep(), opts...)
	}
}

// ByChildren orders the results by children terms.
func ByChildren(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChildrenStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newChildrenStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
	)
}
