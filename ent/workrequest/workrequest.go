// Code generated by ent, DO NOT EDIT.

package workrequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workrequest type in the database.
	Label = "work_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "work_request_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldBasketID holds the string denoting the basket_id field in the database.
	FieldBasketID = "basket_id"
	// FieldAgentKind holds the string denoting the agent_kind field in the database.
	FieldAgentKind = "agent_kind"
	// FieldWorkMode holds the string denoting the work_mode field in the database.
	FieldWorkMode = "work_mode"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldIsTrial holds the string denoting the is_trial field in the database.
	FieldIsTrial = "is_trial"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResultSummary holds the string denoting the result_summary field in the database.
	FieldResultSummary = "result_summary"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTicket holds the string denoting the ticket edge name in mutations.
	EdgeTicket = "ticket"
	// WorkTicketFieldID holds the string denoting the ID field of the WorkTicket.
	WorkTicketFieldID = "work_ticket_id"
	// Table holds the table name of the workrequest in the database.
	Table = "work_requests"
	// TicketTable is the table that holds the ticket relation/edge.
	TicketTable = "work_tickets"
	// TicketInverseTable is the table name for the WorkTicket entity.
	// It exists in this package in order to avoid circular dependency with the "workticket" package.
	TicketInverseTable = "work_tickets"
	// TicketColumn is the table column denoting the ticket relation/edge.
	TicketColumn = "work_request_id"
)

// Columns holds all SQL columns for workrequest fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldWorkspaceID,
	FieldBasketID,
	FieldAgentKind,
	FieldWorkMode,
	FieldPayload,
	FieldIsTrial,
	FieldStatus,
	FieldResultSummary,
	FieldErrorMessage,
	FieldPriority,
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
	// DefaultIsTrial holds the default value on creation for the "is_trial" field.
	DefaultIsTrial bool
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
		return fmt.Errorf("workrequest: invalid enum value for agent_kind field: %q", ak)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("workrequest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the WorkRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByBasketID orders the results by the basket_id field.
func ByBasketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBasketID, opts...).ToFunc()
}

// ByAgentKind orders the results by the agent_kind field.
func ByAgentKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentKind, opts...).ToFunc()
}

// ByWorkMode orders the results by the work_mode field.
func ByWorkMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkMode, opts...).ToFunc()
}

// ByIsTrial orders the results by the is_trial field.
func ByIsTrial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsTrial, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResultSummary orders the results by the result_summary field.
func ByResultSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultSummary, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTicketField orders the results by ticket field.
func ByTicketField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTicketStep(), sql.OrderByField(field, opts...))
	}
}
func newTicketStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TicketInverseTable, WorkTicketFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, TicketTable, TicketColumn),
	)
}
