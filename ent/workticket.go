// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/ent/workticket"
)

// WorkTicket is the model entity for the WorkTicket schema.
type WorkTicket struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkRequestID holds the value of the "work_request_id" field.
	WorkRequestID string `json:"work_request_id,omitempty"`
	// AgentSessionID holds the value of the "agent_session_id" field.
	AgentSessionID string `json:"agent_session_id,omitempty"`
	// BasketID holds the value of the "basket_id" field.
	BasketID string `json:"basket_id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// AgentKind holds the value of the "agent_kind" field.
	AgentKind workticket.AgentKind `json:"agent_kind,omitempty"`
	// Status holds the value of the "status" field.
	Status workticket.Status `json:"status,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// output_count, checkpoint_reason, error kind/message
	TicketMetadata map[string]interface{} `json:"ticket_metadata,omitempty"`
	// Worker replica that claimed the ticket
	PodID *string `json:"pod_id,omitempty"`
	// ClaimedAt holds the value of the "claimed_at" field.
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkTicketQuery when eager-loading is set.
	Edges        WorkTicketEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkTicketEdges holds the relations/edges for other nodes in the graph.
type WorkTicketEdges struct {
	// WorkRequest holds the value of the work_request edge.
	WorkRequest *WorkRequest `json:"work_request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkRequestOrErr returns the WorkRequest value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkTicketEdges) WorkRequestOrErr() (*WorkRequest, error) {
	if e.WorkRequest != nil {
		return e.WorkRequest, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workrequest.Label}
	}
	return nil, &NotLoadedError{edge: "work_request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkTicket) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workticket.FieldTicketMetadata:
			values[i] = new([]byte)
		case workticket.FieldPriority:
			values[i] = new(sql.NullInt64)
		case workticket.FieldID, workticket.FieldWorkRequestID, workticket.FieldAgentSessionID, workticket.FieldBasketID, workticket.FieldWorkspaceID, workticket.FieldAgentKind, workticket.FieldStatus, workticket.FieldPodID:
			values[i] = new(sql.NullString)
		case workticket.FieldStartedAt, workticket.FieldEndedAt, workticket.FieldClaimedAt, workticket.FieldLastHeartbeatAt, workticket.FieldCreatedAt, workticket.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkTicket fields.
func (_m *WorkTicket) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workticket.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workticket.FieldWorkRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_request_id", values[i])
			} else if value.Valid {
				_m.WorkRequestID = value.String
			}
		case workticket.FieldAgentSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_session_id", values[i])
			} else if value.Valid {
				_m.AgentSessionID = value.String
			}
		case workticket.FieldBasketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field basket_id", values[i])
			} else if value.Valid {
				_m.BasketID = value.String
			}
		case workticket.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case workticket.FieldAgentKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_kind", values[i])
			} else if value.Valid {
				_m.AgentKind = workticket.AgentKind(value.String)
			}
		case workticket.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workticket.Status(value.String)
			}
		case workticket.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case workticket.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case workticket.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case workticket.FieldTicketMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TicketMetadata); err != nil {
					return fmt.Errorf("unmarshal field ticket_metadata: %w", err)
				}
			}
		case workticket.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case workticket.FieldClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_at", values[i])
			} else if value.Valid {
				_m.ClaimedAt = new(time.Time)
				*_m.ClaimedAt = value.Time
			}
		case workticket.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case workticket.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workticket.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkTicket.
// This includes values selected through modifiers, order, etc.
func (_m *WorkTicket) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkRequest queries the "work_request" edge of the WorkTicket entity.
func (_m *WorkTicket) QueryWorkRequest() *WorkRequestQuery {
	return NewWorkTicketClient(_m.config).QueryWorkRequest(_m)
}

// Update returns a builder for updating this WorkTicket.
// Note that you need to call WorkTicket.Unwrap() before calling this method if this WorkTicket
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkTicket) Update() *WorkTicketUpdateOne {
	return NewWorkTicketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkTicket entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkTicket) Unwrap() *WorkTicket {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkTicket is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkTicket) String() string {
	var builder strings.Builder
	builder.WriteString("WorkTicket(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("work_request_id=")
	builder.WriteString(_m.WorkRequestID)
	builder.WriteString(", ")
	builder.WriteString("agent_session_id=")
	builder.WriteString(_m.AgentSessionID)
	builder.WriteString(", ")
	builder.WriteString("basket_id=")
	builder.WriteString(_m.BasketID)
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("agent_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentKind))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("ticket_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.TicketMetadata))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimedAt; v != nil {
		builder.WriteString("claimed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkTickets is a parsable slice of WorkTicket.
type WorkTickets []*WorkTicket
