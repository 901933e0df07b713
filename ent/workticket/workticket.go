// Code generated by ent, DO NOT EDIT.

package workticket

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workticket type in the database.
	Label = "work_ticket"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "work_ticket_id"
	// FieldWorkRequestID holds the string denoting the work_request_id field in the database.
	FieldWorkRequestID = "work_request_id"
	// FieldAgentSessionID holds the string denoting the agent_session_id field in the database.
	FieldAgentSessionID = "agent_session_id"
	// FieldBasketID holds the string denoting the basket_id field in the database.
	FieldBasketID = "basket_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldAgentKind holds the string denoting the agent_kind field in the database.
	FieldAgentKind = "agent_kind"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldTicketMetadata holds the string denoting the ticket_metadata field in the database.
	FieldTicketMetadata = "ticket_metadata"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldClaimedAt holds the string denoting the claimed_at field in the database.
	FieldClaimedAt = "claimed_at"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWorkRequest holds the string denoting the work_request edge name in mutations.
	EdgeWorkRequest = "work_request"
	// WorkRequestFieldID holds the string denoting the ID field of the WorkRequest.
	WorkRequestFieldID = "work_request_id"
	// Table holds the table name of the workticket in the database.
	Table = "work_tickets"
	// WorkRequestTable is the table that holds the work_request relation/edge.
	WorkRequestTable = "work_tickets"
	// WorkRequestInverseTable is the table name for the WorkRequest entity.
	// It exists in this package in order to avoid circular dependency with the "workrequest" package.
	WorkRequestInverseTable = "work_requests"
	// WorkRequestColumn is the table column denoting the work_request relation/edge.
	WorkRequestColumn = "work_request_id"
)

// Columns holds all SQL columns for workticket fields.
var Columns = []string{
	FieldID,
	FieldWorkRequestID,
	FieldAgentSessionID,
	FieldBasketID,
	FieldWorkspaceID,
	FieldAgentKind,
	FieldStatus,
	FieldPriority,
	FieldStartedAt,
	FieldEndedAt,
	FieldTicketMetadata,
	FieldPodID,
	FieldClaimedAt,
	FieldLastHeartbeatAt,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
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
		return fmt.Errorf("workticket: invalid enum value for agent_kind field: %q", ak)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending       Status = "pending"
	StatusRunning       Status = "running"
	StatusCompleted     Status = "completed"
	StatusPendingReview Status = "pending_review"
	StatusFailed        Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusPendingReview, StatusFailed:
		return nil
	default:
		return fmt.Errorf("workticket: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the WorkTicket queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkRequestID orders the results by the work_request_id field.
func ByWorkRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkRequestID, opts...).ToFunc()
}

// ByAgentSessionID orders the results by the agent_session_id field.
func ByAgentSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentSessionID, opts...).ToFunc()
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

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByClaimedAt orders the results by the claimed_at field.
func ByClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedAt, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByWorkRequestField orders the results by work_request field.
func ByWorkRequestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkRequestStep(), sql.OrderByField(field, opts...))
	}
}
func newWorkRequestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkRequestInverseTable, WorkRequestFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, WorkRequestTable, WorkRequestColumn),
	)
}
