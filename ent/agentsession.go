// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cobbleworks/foundry/ent/agentsession"
)

// AgentSession is the model entity for the AgentSession schema.
type AgentSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BasketID holds the value of the "basket_id" field.
	BasketID string `json:"basket_id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// AgentKind holds the value of the "agent_kind" field.
	AgentKind agentsession.AgentKind `json:"agent_kind,omitempty"`
	// Thinking-partner session of the same basket; nil only for the TP session itself
	ParentSessionID *string `json:"parent_session_id,omitempty"`
	// CreatedBySessionID holds the value of the "created_by_session_id" field.
	CreatedBySessionID *string `json:"created_by_session_id,omitempty"`
	// Opaque LLM provider conversation handle, set on first turn
	ProviderSessionID *string `json:"provider_session_id,omitempty"`
	// Provider conversation snapshot and runtime bookkeeping
	State map[string]interface{} `json:"state,omitempty"`
	// SessionMetadata holds the value of the "session_metadata" field.
	SessionMetadata map[string]interface{} `json:"session_metadata,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy *string `json:"created_by,omitempty"`
	// Ticket currently executing on this session (per-session serialization)
	LastClaimedBy *string `json:"last_claimed_by,omitempty"`
	// LastClaimedAt holds the value of the "last_claimed_at" field.
	LastClaimedAt *time.Time `json:"last_claimed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentSessionQuery when eager-loading is set.
	Edges        AgentSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentSessionEdges holds the relations/edges for other nodes in the graph.
type AgentSessionEdges struct {
	// Parent holds the value of the parent edge.
	Parent *AgentSession `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*AgentSession `json:"children,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentSessionEdges) ParentOrErr() (*AgentSession, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentsession.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e AgentSessionEdges) ChildrenOrErr() ([]*AgentSession, error) {
	if e.loadedTypes[1] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentsession.FieldState, agentsession.FieldSessionMetadata:
			values[i] = new([]byte)
		case agentsession.FieldID, agentsession.FieldBasketID, agentsession.FieldWorkspaceID, agentsession.FieldAgentKind, agentsession.FieldParentSessionID, agentsession.FieldCreatedBySessionID, agentsession.FieldProviderSessionID, agentsession.FieldCreatedBy, agentsession.FieldLastClaimedBy:
			values[i] = new(sql.NullString)
		case agentsession.FieldLastClaimedAt, agentsession.FieldCreatedAt, agentsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentSession fields.
func (_m *AgentSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentsession.FieldBasketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field basket_id", values[i])
			} else if value.Valid {
				_m.BasketID = value.String
			}
		case agentsession.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case agentsession.FieldAgentKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_kind", values[i])
			} else if value.Valid {
				_m.AgentKind = agentsession.AgentKind(value.String)
			}
		case agentsession.FieldParentSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_session_id", values[i])
			} else if value.Valid {
				_m.ParentSessionID = new(string)
				*_m.ParentSessionID = value.String
			}
		case agentsession.FieldCreatedBySessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by_session_id", values[i])
			} else if value.Valid {
				_m.CreatedBySessionID = new(string)
				*_m.CreatedBySessionID = value.String
			}
		case agentsession.FieldProviderSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_session_id", values[i])
			} else if value.Valid {
				_m.ProviderSessionID = new(string)
				*_m.ProviderSessionID = value.String
			}
		case agentsession.FieldState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.State); err != nil {
					return fmt.Errorf("unmarshal field state: %w", err)
				}
			}
		case agentsession.FieldSessionMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field session_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SessionMetadata); err != nil {
					return fmt.Errorf("unmarshal field session_metadata: %w", err)
				}
			}
		case agentsession.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = new(string)
				*_m.CreatedBy = value.String
			}
		case agentsession.FieldLastClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_claimed_by", values[i])
			} else if value.Valid {
				_m.LastClaimedBy = new(string)
				*_m.LastClaimedBy = value.String
			}
		case agentsession.FieldLastClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_claimed_at", values[i])
			} else if value.Valid {
				_m.LastClaimedAt = new(time.Time)
				*_m.LastClaimedAt = value.Time
			}
		case agentsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentsession.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentSession.
// This includes values selected through modifiers, order, etc.
func (_m *AgentSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParent queries the "parent" edge of the AgentSession entity.
func (_m *AgentSession) QueryParent() *AgentSessionQuery {
	return NewAgentSessionClient(_m.config).QueryParent(_m)
}

// QueryChildren queries the "children" edge of the AgentSession entity.
func (_m *AgentSession) QueryChildren() *AgentSessionQuery {
	return NewAgentSessionClient(_m.config).QueryChildren(_m)
}

// Update returns a builder for updating this AgentSession.
// Note that you need to call AgentSession.Unwrap() before calling this method if this AgentSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentSession) Update() *AgentSessionUpdateOne {
	return NewAgentSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentSession) Unwrap() *AgentSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentSession) String() string {
	var builder strings.Builder
	builder.WriteString("AgentSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("basket_id=")
	builder.WriteString(_m.BasketID)
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("agent_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentKind))
	builder.WriteString(", ")
	if v := _m.ParentSessionID; v != nil {
		builder.WriteString("parent_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CreatedBySessionID; v != nil {
		builder.WriteString("created_by_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProviderSessionID; v != nil {
		builder.WriteString("provider_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("session_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionMetadata))
	builder.WriteString(", ")
	if v := _m.CreatedBy; v != nil {
		builder.WriteString("created_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastClaimedBy; v != nil {
		builder.WriteString("last_claimed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastClaimedAt; v != nil {
		builder.WriteString("last_claimed_at=")
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

// AgentSessions is a parsable slice of AgentSession.
type AgentSessions []*AgentSession
