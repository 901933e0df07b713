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

// WorkRequest is the model entity for the WorkRequest schema.
type WorkRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// BasketID holds the value of the "basket_id" field.
	BasketID string `json:"basket_id,omitempty"`
	// AgentKind holds the value of the "agent_kind" field.
	AgentKind workrequest.AgentKind `json:"agent_kind,omitempty"`
	// Free-form mode per agent kind (e.g. deep_dive, draft, tp_chat)
	WorkMode string `json:"work_mode,omitempty"`
	// Opaque task parameters passed through to the runtime
	Payload map[string]interface{} `json:"payload,omitempty"`
	// IsTrial holds the value of the "is_trial" field.
	IsTrial bool `json:"is_trial,omitempty"`
	// Status holds the value of the "status" field.
	Status workrequest.Status `json:"status,omitempty"`
	// ResultSummary holds the value of the "result_summary" field.
	ResultSummary *string `json:"result_summary,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkRequestQuery when eager-loading is set.
	Edges        WorkRequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkRequestEdges holds the relations/edges for other nodes in the graph.
type WorkRequestEdges struct {
	// Ticket holds the value of the ticket edge.
	Ticket *WorkTicket `json:"ticket,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TicketOrErr returns the Ticket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkRequestEdges) TicketOrErr() (*WorkTicket, error) {
	if e.Ticket != nil {
		return e.Ticket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workticket.Label}
	}
	return nil, &NotLoadedError{edge: "ticket"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workrequest.FieldPayload:
			values[i] = new([]byte)
		case workrequest.FieldIsTrial:
			values[i] = new(sql.NullBool)
		case workrequest.FieldPriority:
			values[i] = new(sql.NullInt64)
		case workrequest.FieldID, workrequest.FieldUserID, workrequest.FieldWorkspaceID, workrequest.FieldBasketID, workrequest.FieldAgentKind, workrequest.FieldWorkMode, workrequest.FieldStatus, workrequest.FieldResultSummary, workrequest.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case workrequest.FieldCreatedAt, workrequest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkRequest fields.
func (_m *WorkRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workrequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workrequest.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case workrequest.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case workrequest.FieldBasketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field basket_id", values[i])
			} else if value.Valid {
				_m.BasketID = value.String
			}
		case workrequest.FieldAgentKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_kind", values[i])
			} else if value.Valid {
				_m.AgentKind = workrequest.AgentKind(value.String)
			}
		case workrequest.FieldWorkMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_mode", values[i])
			} else if value.Valid {
				_m.WorkMode = value.String
			}
		case workrequest.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case workrequest.FieldIsTrial:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_trial", values[i])
			} else if value.Valid {
				_m.IsTrial = value.Bool
			}
		case workrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workrequest.Status(value.String)
			}
		case workrequest.FieldResultSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_summary", values[i])
			} else if value.Valid {
				_m.ResultSummary = new(string)
				*_m.ResultSummary = value.String
			}
		case workrequest.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case workrequest.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case workrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workrequest.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WorkRequest.
// This includes values selected through modifiers, order, etc.
func (_m *WorkRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTicket queries the "ticket" edge of the WorkRequest entity.
func (_m *WorkRequest) QueryTicket() *WorkTicketQuery {
	return NewWorkRequestClient(_m.config).QueryTicket(_m)
}

// Update returns a builder for updating this WorkRequest.
// Note that you need to call WorkRequest.Unwrap() before calling this method if this WorkRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkRequest) Update() *WorkRequestUpdateOne {
	return NewWorkRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkRequest) Unwrap() *WorkRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkRequest) String() string {
	var builder strings.Builder
	builder.WriteString("WorkRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("basket_id=")
	builder.WriteString(_m.BasketID)
	builder.WriteString(", ")
	builder.WriteString("agent_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentKind))
	builder.WriteString(", ")
	builder.WriteString("work_mode=")
	builder.WriteString(_m.WorkMode)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("is_trial=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsTrial))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ResultSummary; v != nil {
		builder.WriteString("result_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkRequests is a parsable slice of WorkRequest.
type WorkRequests []*WorkRequest
