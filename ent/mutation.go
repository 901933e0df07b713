// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cobbleworks/foundry/ent/agentsession"
	"github.com/cobbleworks/foundry/ent/agentsubscription"
	"github.com/cobbleworks/foundry/ent/predicate"
	"github.com/cobbleworks/foundry/ent/project"
	"github.com/cobbleworks/foundry/ent/workevent"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/ent/workticket"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentSession      = "AgentSession"
	TypeAgentSubscription = "AgentSubscription"
	TypeProject           = "Project"
	TypeWorkEvent         = "WorkEvent"
	TypeWorkRequest       = "WorkRequest"
	TypeWorkTicket        = "WorkTicket"
)

// AgentSessionMutation represents an operation that mutates the AgentSession nodes in the graph.
type AgentSessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	basket_id             *string
	workspace_id          *string
	agent_kind            *agentsession.AgentKind
	created_by_session_id *string
	provider_session_id   *string
	state                 *map[string]interface{}
	session_metadata      *map[string]interface{}
	created_by            *string
	last_claimed_by       *string
	last_claimed_at       *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	parent                *string
	clearedparent         bool
	children              map[string]struct{}
	removedchildren       map[string]struct{}
	clearedchildren       bool
	done                  bool
	oldValue              func(context.Context) (*AgentSession, error)
	predicates            []predicate.AgentSession
}

var _ ent.Mutation = (*AgentSessionMutation)(nil)

// agentsessionOption allows management of the mutation configuration using functional options.
type agentsessionOption func(*AgentSessionMutation)

// newAgentSessionMutation creates new mutation for the AgentSession entity.
func newAgentSessionMutation(c config, op Op, opts ...agentsessionOption) *AgentSessionMutation {
	m := &AgentSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentSessionID sets the ID field of the mutation.
func withAgentSessionID(id string) agentsessionOption {
	return func(m *AgentSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentSession
		)
		m.oldValue = func(ctx context.Context) (*AgentSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentSession sets the old AgentSession of the mutation.
func withAgentSession(node *AgentSession) agentsessionOption {
	return func(m *AgentSessionMutation) {
		m.oldValue = func(context.Context) (*AgentSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentSession entities.
func (m *AgentSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBasketID sets the "basket_id" field.
func (m *AgentSessionMutation) SetBasketID(s string) {
	m.basket_id = &s
}

// BasketID returns the value of the "basket_id" field in the mutation.
func (m *AgentSessionMutation) BasketID() (r string, exists bool) {
	v := m.basket_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBasketID returns the old "basket_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldBasketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBasketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBasketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBasketID: %w", err)
	}
	return oldValue.BasketID, nil
}

// ResetBasketID resets all changes to the "basket_id" field.
func (m *AgentSessionMutation) ResetBasketID() {
	m.basket_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AgentSessionMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AgentSessionMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AgentSessionMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetAgentKind sets the "agent_kind" field.
func (m *AgentSessionMutation) SetAgentKind(ak agentsession.AgentKind) {
	m.agent_kind = &ak
}

// AgentKind returns the value of the "agent_kind" field in the mutation.
func (m *AgentSessionMutation) AgentKind() (r agentsession.AgentKind, exists bool) {
	v := m.agent_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentKind returns the old "agent_kind" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldAgentKind(ctx context.Context) (v agentsession.AgentKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentKind: %w", err)
	}
	return oldValue.AgentKind, nil
}

// ResetAgentKind resets all changes to the "agent_kind" field.
func (m *AgentSessionMutation) ResetAgentKind() {
	m.agent_kind = nil
}

// SetParentSessionID sets the "parent_session_id" field.
func (m *AgentSessionMutation) SetParentSessionID(s string) {
	m.parent = &s
}

// ParentSessionID returns the value of the "parent_session_id" field in the mutation.
func (m *AgentSessionMutation) ParentSessionID() (r string, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentSessionID returns the old "parent_session_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldParentSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentSessionID: %w", err)
	}
	return oldValue.ParentSessionID, nil
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (m *AgentSessionMutation) ClearParentSessionID() {
	m.parent = nil
	m.clearedFields[agentsession.FieldParentSessionID] = struct{}{}
}

// ParentSessionIDCleared returns if the "parent_session_id" field was cleared in this mutation.
func (m *AgentSessionMutation) ParentSessionIDCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldParentSessionID]
	return ok
}

// ResetParentSessionID resets all changes to the "parent_session_id" field.
func (m *AgentSessionMutation) ResetParentSessionID() {
	m.parent = nil
	delete(m.clearedFields, agentsession.FieldParentSessionID)
}

// SetCreatedBySessionID sets the "created_by_session_id" field.
func (m *AgentSessionMutation) SetCreatedBySessionID(s string) {
	m.created_by_session_id = &s
}

// CreatedBySessionID returns the value of the "created_by_session_id" field in the mutation.
func (m *AgentSessionMutation) CreatedBySessionID() (r string, exists bool) {
	v := m.created_by_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBySessionID returns the old "created_by_session_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldCreatedBySessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBySessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBySessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBySessionID: %w", err)
	}
	return oldValue.CreatedBySessionID, nil
}

// ClearCreatedBySessionID clears the value of the "created_by_session_id" field.
func (m *AgentSessionMutation) ClearCreatedBySessionID() {
	m.created_by_session_id = nil
	m.clearedFields[agentsession.FieldCreatedBySessionID] = struct{}{}
}

// CreatedBySessionIDCleared returns if the "created_by_session_id" field was cleared in this mutation.
func (m *AgentSessionMutation) CreatedBySessionIDCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldCreatedBySessionID]
	return ok
}

// ResetCreatedBySessionID resets all changes to the "created_by_session_id" field.
func (m *AgentSessionMutation) ResetCreatedBySessionID() {
	m.created_by_session_id = nil
	delete(m.clearedFields, agentsession.FieldCreatedBySessionID)
}

// SetProviderSessionID sets the "provider_session_id" field.
func (m *AgentSessionMutation) SetProviderSessionID(s string) {
	m.provider_session_id = &s
}

// ProviderSessionID returns the value of the "provider_session_id" field in the mutation.
func (m *AgentSessionMutation) ProviderSessionID() (r string, exists bool) {
	v := m.provider_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderSessionID returns the old "provider_session_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldProviderSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderSessionID: %w", err)
	}
	return oldValue.ProviderSessionID, nil
}

// ClearProviderSessionID clears the value of the "provider_session_id" field.
func (m *AgentSessionMutation) ClearProviderSessionID() {
	m.provider_session_id = nil
	m.clearedFields[agentsession.FieldProviderSessionID] = struct{}{}
}

// ProviderSessionIDCleared returns if the "provider_session_id" field was cleared in this mutation.
func (m *AgentSessionMutation) ProviderSessionIDCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldProviderSessionID]
	return ok
}

// ResetProviderSessionID resets all changes to the "provider_session_id" field.
func (m *AgentSessionMutation) ResetProviderSessionID() {
	m.provider_session_id = nil
	delete(m.clearedFields, agentsession.FieldProviderSessionID)
}

// SetState sets the "state" field.
func (m *AgentSessionMutation) SetState(value map[string]interface{}) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *AgentSessionMutation) State() (r map[string]interface{}, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *AgentSessionMutation) ClearState() {
	m.state = nil
	m.clearedFields[agentsession.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *AgentSessionMutation) StateCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *AgentSessionMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, agentsession.FieldState)
}

// SetSessionMetadata sets the "session_metadata" field.
func (m *AgentSessionMutation) SetSessionMetadata(value map[string]interface{}) {
	m.session_metadata = &value
}

// SessionMetadata returns the value of the "session_metadata" field in the mutation.
func (m *AgentSessionMutation) SessionMetadata() (r map[string]interface{}, exists bool) {
	v := m.session_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionMetadata returns the old "session_metadata" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldSessionMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionMetadata: %w", err)
	}
	return oldValue.SessionMetadata, nil
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (m *AgentSessionMutation) ClearSessionMetadata() {
	m.session_metadata = nil
	m.clearedFields[agentsession.FieldSessionMetadata] = struct{}{}
}

// SessionMetadataCleared returns if the "session_metadata" field was cleared in this mutation.
func (m *AgentSessionMutation) SessionMetadataCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldSessionMetadata]
	return ok
}

// ResetSessionMetadata resets all changes to the "session_metadata" field.
func (m *AgentSessionMutation) ResetSessionMetadata() {
	m.session_metadata = nil
	delete(m.clearedFields, agentsession.FieldSessionMetadata)
}

// SetCreatedBy sets the "created_by" field.
func (m *AgentSessionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *AgentSessionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *AgentSessionMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[agentsession.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *AgentSessionMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *AgentSessionMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, agentsession.FieldCreatedBy)
}

// SetLastClaimedBy sets the "last_claimed_by" field.
func (m *AgentSessionMutation) SetLastClaimedBy(s string) {
	m.last_claimed_by = &s
}

// LastClaimedBy returns the value of the "last_claimed_by" field in the mutation.
func (m *AgentSessionMutation) LastClaimedBy() (r string, exists bool) {
	v := m.last_claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldLastClaimedBy returns the old "last_claimed_by" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldLastClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastClaimedBy: %w", err)
	}
	return oldValue.LastClaimedBy, nil
}

// ClearLastClaimedBy clears the value of the "last_claimed_by" field.
func (m *AgentSessionMutation) ClearLastClaimedBy() {
	m.last_claimed_by = nil
	m.clearedFields[agentsession.FieldLastClaimedBy] = struct{}{}
}

// LastClaimedByCleared returns if the "last_claimed_by" field was cleared in this mutation.
func (m *AgentSessionMutation) LastClaimedByCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldLastClaimedBy]
	return ok
}

// ResetLastClaimedBy resets all changes to the "last_claimed_by" field.
func (m *AgentSessionMutation) ResetLastClaimedBy() {
	m.last_claimed_by = nil
	delete(m.clearedFields, agentsession.FieldLastClaimedBy)
}

// SetLastClaimedAt sets the "last_claimed_at" field.
func (m *AgentSessionMutation) SetLastClaimedAt(t time.Time) {
	m.last_claimed_at = &t
}

// LastClaimedAt returns the value of the "last_claimed_at" field in the mutation.
func (m *AgentSessionMutation) LastClaimedAt() (r time.Time, exists bool) {
	v := m.last_claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastClaimedAt returns the old "last_claimed_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldLastClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastClaimedAt: %w", err)
	}
	return oldValue.LastClaimedAt, nil
}

// ClearLastClaimedAt clears the value of the "last_claimed_at" field.
func (m *AgentSessionMutation) ClearLastClaimedAt() {
	m.last_claimed_at = nil
	m.clearedFields[agentsession.FieldLastClaimedAt] = struct{}{}
}

// LastClaimedAtCleared returns if the "last_claimed_at" field was cleared in this mutation.
func (m *AgentSessionMutation) LastClaimedAtCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldLastClaimedAt]
	return ok
}

// ResetLastClaimedAt resets all changes to the "last_claimed_at" field.
func (m *AgentSessionMutation) ResetLastClaimedAt() {
	m.last_claimed_at = nil
	delete(m.clearedFields, agentsession.FieldLastClaimedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetParentID sets the "parent" edge to the AgentSession entity by id.
func (m *AgentSessionMutation) SetParentID(id string) {
	m.parent = &id
}

// ClearParent clears the "parent" edge to the AgentSession entity.
func (m *AgentSessionMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[agentsession.FieldParentSessionID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the AgentSession entity was cleared.
func (m *AgentSessionMutation) ParentCleared() bool {
	return m.ParentSessionIDCleared() || m.clearedparent
}

// ParentID returns the "parent" edge ID in the mutation.
func (m *AgentSessionMutation) ParentID() (id string, exists bool) {
	if m.parent != nil {
		return *m.parent, true
	}
	return
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *AgentSessionMutation) ParentIDs() (ids []string) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *AgentSessionMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the AgentSession entity by ids.
func (m *AgentSessionMutation) AddChildIDs(ids ...string) {
	if m.children == nil {
		m.children = make(map[string]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the AgentSession entity.
func (m *AgentSessionMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the AgentSession entity was cleared.
func (m *AgentSessionMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the AgentSession entity by IDs.
func (m *AgentSessionMutation) RemoveChildIDs(ids ...string) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the AgentSession entity.
func (m *AgentSessionMutation) RemovedChildrenIDs() (ids []string) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *AgentSessionMutation) ChildrenIDs() (ids []string) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *AgentSessionMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// Where appends a list predicates to the AgentSessionMutation builder.
func (m *AgentSessionMutation) Where(ps ...predicate.AgentSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentSession).
func (m *AgentSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentSessionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.basket_id != nil {
		fields = append(fields, agentsession.FieldBasketID)
	}
	if m.workspace_id != nil {
		fields = append(fields, agentsession.FieldWorkspaceID)
	}
	if m.agent_kind != nil {
		fields = append(fields, agentsession.FieldAgentKind)
	}
	if m.parent != nil {
		fields = append(fields, agentsession.FieldParentSessionID)
	}
	if m.created_by_session_id != nil {
		fields = append(fields, agentsession.FieldCreatedBySessionID)
	}
	if m.provider_session_id != nil {
		fields = append(fields, agentsession.FieldProviderSessionID)
	}
	if m.state != nil {
		fields = append(fields, agentsession.FieldState)
	}
	if m.session_metadata != nil {
		fields = append(fields, agentsession.FieldSessionMetadata)
	}
	if m.created_by != nil {
		fields = append(fields, agentsession.FieldCreatedBy)
	}
	if m.last_claimed_by != nil {
		fields = append(fields, agentsession.FieldLastClaimedBy)
	}
	if m.last_claimed_at != nil {
		fields = append(fields, agentsession.FieldLastClaimedAt)
	}
	if m.created_at != nil {
		fields = append(fields, agentsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldBasketID:
		return m.BasketID()
	case agentsession.FieldWorkspaceID:
		return m.WorkspaceID()
	case agentsession.FieldAgentKind:
		return m.AgentKind()
	case agentsession.FieldParentSessionID:
		return m.ParentSessionID()
	case agentsession.FieldCreatedBySessionID:
		return m.CreatedBySessionID()
	case agentsession.FieldProviderSessionID:
		return m.ProviderSessionID()
	case agentsession.FieldState:
		return m.State()
	case agentsession.FieldSessionMetadata:
		return m.SessionMetadata()
	case agentsession.FieldCreatedBy:
		return m.CreatedBy()
	case agentsession.FieldLastClaimedBy:
		return m.LastClaimedBy()
	case agentsession.FieldLastClaimedAt:
		return m.LastClaimedAt()
	case agentsession.FieldCreatedAt:
		return m.CreatedAt()
	case agentsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentsession.FieldBasketID:
		return m.OldBasketID(ctx)
	case agentsession.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case agentsession.FieldAgentKind:
		return m.OldAgentKind(ctx)
	case agentsession.FieldParentSessionID:
		return m.OldParentSessionID(ctx)
	case agentsession.FieldCreatedBySessionID:
		return m.OldCreatedBySessionID(ctx)
	case agentsession.FieldProviderSessionID:
		return m.OldProviderSessionID(ctx)
	case agentsession.FieldState:
		return m.OldState(ctx)
	case agentsession.FieldSessionMetadata:
		return m.OldSessionMetadata(ctx)
	case agentsession.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case agentsession.FieldLastClaimedBy:
		return m.OldLastClaimedBy(ctx)
	case agentsession.FieldLastClaimedAt:
		return m.OldLastClaimedAt(ctx)
	case agentsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldBasketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBasketID(v)
		return nil
	case agentsession.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case agentsession.FieldAgentKind:
		v, ok := value.(agentsession.AgentKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentKind(v)
		return nil
	case agentsession.FieldParentSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentSessionID(v)
		return nil
	case agentsession.FieldCreatedBySessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBySessionID(v)
		return nil
	case agentsession.FieldProviderSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderSessionID(v)
		return nil
	case agentsession.FieldState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case agentsession.FieldSessionMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionMetadata(v)
		return nil
	case agentsession.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case agentsession.FieldLastClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastClaimedBy(v)
		return nil
	case agentsession.FieldLastClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastClaimedAt(v)
		return nil
	case agentsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentsession.FieldParentSessionID) {
		fields = append(fields, agentsession.FieldParentSessionID)
	}
	if m.FieldCleared(agentsession.FieldCreatedBySessionID) {
		fields = append(fields, agentsession.FieldCreatedBySessionID)
	}
	if m.FieldCleared(agentsession.FieldProviderSessionID) {
		fields = append(fields, agentsession.FieldProviderSessionID)
	}
	if m.FieldCleared(agentsession.FieldState) {
		fields = append(fields, agentsession.FieldState)
	}
	if m.FieldCleared(agentsession.FieldSessionMetadata) {
		fields = append(fields, agentsession.FieldSessionMetadata)
	}
	if m.FieldCleared(agentsession.FieldCreatedBy) {
		fields = append(fields, agentsession.FieldCreatedBy)
	}
	if m.FieldCleared(agentsession.FieldLastClaimedBy) {
		fields = append(fields, agentsession.FieldLastClaimedBy)
	}
	if m.FieldCleared(agentsession.FieldLastClaimedAt) {
		fields = append(fields, agentsession.FieldLastClaimedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentSessionMutation) ClearField(name string) error {
	switch name {
	case agentsession.FieldParentSessionID:
		m.ClearParentSessionID()
		return nil
	case agentsession.FieldCreatedBySessionID:
		m.ClearCreatedBySessionID()
		return nil
	case agentsession.FieldProviderSessionID:
		m.ClearProviderSessionID()
		return nil
	case agentsession.FieldState:
		m.ClearState()
		return nil
	case agentsession.FieldSessionMetadata:
		m.ClearSessionMetadata()
		return nil
	case agentsession.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case agentsession.FieldLastClaimedBy:
		m.ClearLastClaimedBy()
		return nil
	case agentsession.FieldLastClaimedAt:
		m.ClearLastClaimedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentSessionMutation) ResetField(name string) error {
	switch name {
	case agentsession.FieldBasketID:
		m.ResetBasketID()
		return nil
	case agentsession.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case agentsession.FieldAgentKind:
		m.ResetAgentKind()
		return nil
	case agentsession.FieldParentSessionID:
		m.ResetParentSessionID()
		return nil
	case agentsession.FieldCreatedBySessionID:
		m.ResetCreatedBySessionID()
		return nil
	case agentsession.FieldProviderSessionID:
		m.ResetProviderSessionID()
		return nil
	case agentsession.FieldState:
		m.ResetState()
		return nil
	case agentsession.FieldSessionMetadata:
		m.ResetSessionMetadata()
		return nil
	case agentsession.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case agentsession.FieldLastClaimedBy:
		m.ResetLastClaimedBy()
		return nil
	case agentsession.FieldLastClaimedAt:
		m.ResetLastClaimedAt()
		return nil
	case agentsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.parent != nil {
		edges = append(edges, agentsession.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, agentsession.EdgeChildren)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentsession.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case agentsession.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedchildren != nil {
		edges = append(edges, agentsession.EdgeChildren)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentsession.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedparent {
		edges = append(edges, agentsession.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, agentsession.EdgeChildren)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentsession.EdgeParent:
		return m.clearedparent
	case agentsession.EdgeChildren:
		return m.clearedchildren
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentSessionMutation) ClearEdge(name string) error {
	switch name {
	case agentsession.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown AgentSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentSessionMutation) ResetEdge(name string) error {
	switch name {
	case agentsession.EdgeParent:
		m.ResetParent()
		return nil
	case agentsession.EdgeChildren:
		m.ResetChildren()
		return nil
	}
	return fmt.Errorf("unknown AgentSession edge %s", name)
}

// AgentSubscriptionMutation represents an operation that mutates the AgentSubscription nodes in the graph.
type AgentSubscriptionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	workspace_id  *string
	agent_kind    *agentsubscription.AgentKind
	status        *agentsubscription.Status
	expires_at    *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AgentSubscription, error)
	predicates    []predicate.AgentSubscription
}

var _ ent.Mutation = (*AgentSubscriptionMutation)(nil)

// agentsubscriptionOption allows management of the mutation configuration using functional options.
type agentsubscriptionOption func(*AgentSubscriptionMutation)

// newAgentSubscriptionMutation creates new mutation for the AgentSubscription entity.
func newAgentSubscriptionMutation(c config, op Op, opts ...agentsubscriptionOption) *AgentSubscriptionMutation {
	m := &AgentSubscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentSubscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentSubscriptionID sets the ID field of the mutation.
func withAgentSubscriptionID(id string) agentsubscriptionOption {
	return func(m *AgentSubscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentSubscription
		)
		m.oldValue = func(ctx context.Context) (*AgentSubscription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentSubscription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentSubscription sets the old AgentSubscription of the mutation.
func withAgentSubscription(node *AgentSubscription) agentsubscriptionOption {
	return func(m *AgentSubscriptionMutation) {
		m.oldValue = func(context.Context) (*AgentSubscription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentSubscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentSubscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentSubscription entities.
func (m *AgentSubscriptionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentSubscriptionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentSubscriptionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentSubscription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AgentSubscriptionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AgentSubscriptionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AgentSubscription entity.
// If the AgentSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSubscriptionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AgentSubscriptionMutation) ResetUserID() {
	m.user_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AgentSubscriptionMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AgentSubscriptionMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AgentSubscription entity.
// If the AgentSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSubscriptionMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AgentSubscriptionMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetAgentKind sets the "agent_kind" field.
func (m *AgentSubscriptionMutation) SetAgentKind(ak agentsubscription.AgentKind) {
	m.agent_kind = &ak
}

// AgentKind returns the value of the "agent_kind" field in the mutation.
func (m *AgentSubscriptionMutation) AgentKind() (r agentsubscription.AgentKind, exists bool) {
	v := m.agent_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentKind returns the old "agent_kind" field's value of the AgentSubscription entity.
// If the AgentSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSubscriptionMutation) OldAgentKind(ctx context.Context) (v agentsubscription.AgentKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentKind: %w", err)
	}
	return oldValue.AgentKind, nil
}

// ResetAgentKind resets all changes to the "agent_kind" field.
func (m *AgentSubscriptionMutation) ResetAgentKind() {
	m.agent_kind = nil
}

// SetStatus sets the "status" field.
func (m *AgentSubscriptionMutation) SetStatus(a agentsubscription.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentSubscriptionMutation) Status() (r agentsubscription.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentSubscription entity.
// If the AgentSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSubscriptionMutation) OldStatus(ctx context.Context) (v agentsubscription.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentSubscriptionMutation) ResetStatus() {
	m.status = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *AgentSubscriptionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *AgentSubscriptionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the AgentSubscription entity.
// If the AgentSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSubscriptionMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *AgentSubscriptionMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[agentsubscription.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *AgentSubscriptionMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[agentsubscription.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *AgentSubscriptionMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, agentsubscription.FieldExpiresAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentSubscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentSubscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentSubscription entity.
// If the AgentSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSubscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentSubscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentSubscriptionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentSubscriptionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentSubscription entity.
// If the AgentSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSubscriptionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentSubscriptionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentSubscriptionMutation builder.
func (m *AgentSubscriptionMutation) Where(ps ...predicate.AgentSubscription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentSubscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentSubscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentSubscription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentSubscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentSubscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentSubscription).
func (m *AgentSubscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentSubscriptionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, agentsubscription.FieldUserID)
	}
	if m.workspace_id != nil {
		fields = append(fields, agentsubscription.FieldWorkspaceID)
	}
	if m.agent_kind != nil {
		fields = append(fields, agentsubscription.FieldAgentKind)
	}
	if m.status != nil {
		fields = append(fields, agentsubscription.FieldStatus)
	}
	if m.expires_at != nil {
		fields = append(fields, agentsubscription.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, agentsubscription.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentsubscription.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentSubscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentsubscription.FieldUserID:
		return m.UserID()
	case agentsubscription.FieldWorkspaceID:
		return m.WorkspaceID()
	case agentsubscription.FieldAgentKind:
		return m.AgentKind()
	case agentsubscription.FieldStatus:
		return m.Status()
	case agentsubscription.FieldExpiresAt:
		return m.ExpiresAt()
	case agentsubscription.FieldCreatedAt:
		return m.CreatedAt()
	case agentsubscription.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentSubscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentsubscription.FieldUserID:
		return m.OldUserID(ctx)
	case agentsubscription.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case agentsubscription.FieldAgentKind:
		return m.OldAgentKind(ctx)
	case agentsubscription.FieldStatus:
		return m.OldStatus(ctx)
	case agentsubscription.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case agentsubscription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentsubscription.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentSubscription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSubscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentsubscription.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case agentsubscription.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case agentsubscription.FieldAgentKind:
		v, ok := value.(agentsubscription.AgentKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentKind(v)
		return nil
	case agentsubscription.FieldStatus:
		v, ok := value.(agentsubscription.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentsubscription.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case agentsubscription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentsubscription.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSubscription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentSubscriptionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentSubscriptionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSubscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentSubscription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentSubscriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentsubscription.FieldExpiresAt) {
		fields = append(fields, agentsubscription.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentSubscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentSubscriptionMutation) ClearField(name string) error {
	switch name {
	case agentsubscription.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown AgentSubscription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentSubscriptionMutation) ResetField(name string) error {
	switch name {
	case agentsubscription.FieldUserID:
		m.ResetUserID()
		return nil
	case agentsubscription.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case agentsubscription.FieldAgentKind:
		m.ResetAgentKind()
		return nil
	case agentsubscription.FieldStatus:
		m.ResetStatus()
		return nil
	case agentsubscription.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case agentsubscription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentsubscription.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentSubscription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentSubscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentSubscriptionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentSubscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentSubscriptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentSubscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentSubscriptionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentSubscriptionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentSubscription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentSubscriptionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentSubscription edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	workspace_id             *string
	basket_id                *string
	name                     *string
	description              *string
	status                   *project.Status
	promotion_mode           *project.PromotionMode
	auto_promote_types       *[]string
	appendauto_promote_types []string
	governance_policy        *map[string]interface{}
	created_by               *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*Project, error)
	predicates               []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ProjectMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ProjectMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ProjectMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetBasketID sets the "basket_id" field.
func (m *ProjectMutation) SetBasketID(s string) {
	m.basket_id = &s
}

// BasketID returns the value of the "basket_id" field in the mutation.
func (m *ProjectMutation) BasketID() (r string, exists bool) {
	v := m.basket_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBasketID returns the old "basket_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldBasketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBasketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBasketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBasketID: %w", err)
	}
	return oldValue.BasketID, nil
}

// ResetBasketID resets all changes to the "basket_id" field.
func (m *ProjectMutation) ResetBasketID() {
	m.basket_id = nil
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *ProjectMutation) SetStatus(pr project.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProjectMutation) Status() (r project.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldStatus(ctx context.Context) (v project.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProjectMutation) ResetStatus() {
	m.status = nil
}

// SetPromotionMode sets the "promotion_mode" field.
func (m *ProjectMutation) SetPromotionMode(pm project.PromotionMode) {
	m.promotion_mode = &pm
}

// PromotionMode returns the value of the "promotion_mode" field in the mutation.
func (m *ProjectMutation) PromotionMode() (r project.PromotionMode, exists bool) {
	v := m.promotion_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldPromotionMode returns the old "promotion_mode" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldPromotionMode(ctx context.Context) (v project.PromotionMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromotionMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromotionMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromotionMode: %w", err)
	}
	return oldValue.PromotionMode, nil
}

// ResetPromotionMode resets all changes to the "promotion_mode" field.
func (m *ProjectMutation) ResetPromotionMode() {
	m.promotion_mode = nil
}

// SetAutoPromoteTypes sets the "auto_promote_types" field.
func (m *ProjectMutation) SetAutoPromoteTypes(s []string) {
	m.auto_promote_types = &s
	m.appendauto_promote_types = nil
}

// AutoPromoteTypes returns the value of the "auto_promote_types" field in the mutation.
func (m *ProjectMutation) AutoPromoteTypes() (r []string, exists bool) {
	v := m.auto_promote_types
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoPromoteTypes returns the old "auto_promote_types" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldAutoPromoteTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoPromoteTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoPromoteTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoPromoteTypes: %w", err)
	}
	return oldValue.AutoPromoteTypes, nil
}

// AppendAutoPromoteTypes adds s to the "auto_promote_types" field.
func (m *ProjectMutation) AppendAutoPromoteTypes(s []string) {
	m.appendauto_promote_types = append(m.appendauto_promote_types, s...)
}

// AppendedAutoPromoteTypes returns the list of values that were appended to the "auto_promote_types" field in this mutation.
func (m *ProjectMutation) AppendedAutoPromoteTypes() ([]string, bool) {
	if len(m.appendauto_promote_types) == 0 {
		return nil, false
	}
	return m.appendauto_promote_types, true
}

// ClearAutoPromoteTypes clears the value of the "auto_promote_types" field.
func (m *ProjectMutation) ClearAutoPromoteTypes() {
	m.auto_promote_types = nil
	m.appendauto_promote_types = nil
	m.clearedFields[project.FieldAutoPromoteTypes] = struct{}{}
}

// AutoPromoteTypesCleared returns if the "auto_promote_types" field was cleared in this mutation.
func (m *ProjectMutation) AutoPromoteTypesCleared() bool {
	_, ok := m.clearedFields[project.FieldAutoPromoteTypes]
	return ok
}

// ResetAutoPromoteTypes resets all changes to the "auto_promote_types" field.
func (m *ProjectMutation) ResetAutoPromoteTypes() {
	m.auto_promote_types = nil
	m.appendauto_promote_types = nil
	delete(m.clearedFields, project.FieldAutoPromoteTypes)
}

// SetGovernancePolicy sets the "governance_policy" field.
func (m *ProjectMutation) SetGovernancePolicy(value map[string]interface{}) {
	m.governance_policy = &value
}

// GovernancePolicy returns the value of the "governance_policy" field in the mutation.
func (m *ProjectMutation) GovernancePolicy() (r map[string]interface{}, exists bool) {
	v := m.governance_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldGovernancePolicy returns the old "governance_policy" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldGovernancePolicy(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGovernancePolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGovernancePolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGovernancePolicy: %w", err)
	}
	return oldValue.GovernancePolicy, nil
}

// ClearGovernancePolicy clears the value of the "governance_policy" field.
func (m *ProjectMutation) ClearGovernancePolicy() {
	m.governance_policy = nil
	m.clearedFields[project.FieldGovernancePolicy] = struct{}{}
}

// GovernancePolicyCleared returns if the "governance_policy" field was cleared in this mutation.
func (m *ProjectMutation) GovernancePolicyCleared() bool {
	_, ok := m.clearedFields[project.FieldGovernancePolicy]
	return ok
}

// ResetGovernancePolicy resets all changes to the "governance_policy" field.
func (m *ProjectMutation) ResetGovernancePolicy() {
	m.governance_policy = nil
	delete(m.clearedFields, project.FieldGovernancePolicy)
}

// SetCreatedBy sets the "created_by" field.
func (m *ProjectMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ProjectMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *ProjectMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[project.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *ProjectMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[project.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ProjectMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, project.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.workspace_id != nil {
		fields = append(fields, project.FieldWorkspaceID)
	}
	if m.basket_id != nil {
		fields = append(fields, project.FieldBasketID)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, project.FieldStatus)
	}
	if m.promotion_mode != nil {
		fields = append(fields, project.FieldPromotionMode)
	}
	if m.auto_promote_types != nil {
		fields = append(fields, project.FieldAutoPromoteTypes)
	}
	if m.governance_policy != nil {
		fields = append(fields, project.FieldGovernancePolicy)
	}
	if m.created_by != nil {
		fields = append(fields, project.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldWorkspaceID:
		return m.WorkspaceID()
	case project.FieldBasketID:
		return m.BasketID()
	case project.FieldName:
		return m.Name()
	case project.FieldDescription:
		return m.Description()
	case project.FieldStatus:
		return m.Status()
	case project.FieldPromotionMode:
		return m.PromotionMode()
	case project.FieldAutoPromoteTypes:
		return m.AutoPromoteTypes()
	case project.FieldGovernancePolicy:
		return m.GovernancePolicy()
	case project.FieldCreatedBy:
		return m.CreatedBy()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case project.FieldBasketID:
		return m.OldBasketID(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldStatus:
		return m.OldStatus(ctx)
	case project.FieldPromotionMode:
		return m.OldPromotionMode(ctx)
	case project.FieldAutoPromoteTypes:
		return m.OldAutoPromoteTypes(ctx)
	case project.FieldGovernancePolicy:
		return m.OldGovernancePolicy(ctx)
	case project.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case project.FieldBasketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBasketID(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldStatus:
		v, ok := value.(project.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case project.FieldPromotionMode:
		v, ok := value.(project.PromotionMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromotionMode(v)
		return nil
	case project.FieldAutoPromoteTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoPromoteTypes(v)
		return nil
	case project.FieldGovernancePolicy:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGovernancePolicy(v)
		return nil
	case project.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	if m.FieldCleared(project.FieldAutoPromoteTypes) {
		fields = append(fields, project.FieldAutoPromoteTypes)
	}
	if m.FieldCleared(project.FieldGovernancePolicy) {
		fields = append(fields, project.FieldGovernancePolicy)
	}
	if m.FieldCleared(project.FieldCreatedBy) {
		fields = append(fields, project.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	case project.FieldAutoPromoteTypes:
		m.ClearAutoPromoteTypes()
		return nil
	case project.FieldGovernancePolicy:
		m.ClearGovernancePolicy()
		return nil
	case project.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case project.FieldBasketID:
		m.ResetBasketID()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldStatus:
		m.ResetStatus()
		return nil
	case project.FieldPromotionMode:
		m.ResetPromotionMode()
		return nil
	case project.FieldAutoPromoteTypes:
		m.ResetAutoPromoteTypes()
		return nil
	case project.FieldGovernancePolicy:
		m.ResetGovernancePolicy()
		return nil
	case project.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Project edge %s", name)
}

// WorkEventMutation represents an operation that mutates the WorkEvent nodes in the graph.
type WorkEventMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	ticket_id     *string
	event_type    *string
	step_name     *string
	status        *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WorkEvent, error)
	predicates    []predicate.WorkEvent
}

var _ ent.Mutation = (*WorkEventMutation)(nil)

// workeventOption allows management of the mutation configuration using functional options.
type workeventOption func(*WorkEventMutation)

// newWorkEventMutation creates new mutation for the WorkEvent entity.
func newWorkEventMutation(c config, op Op, opts ...workeventOption) *WorkEventMutation {
	m := &WorkEventMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkEventID sets the ID field of the mutation.
func withWorkEventID(id int64) workeventOption {
	return func(m *WorkEventMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkEvent
		)
		m.oldValue = func(ctx context.Context) (*WorkEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkEvent sets the old WorkEvent of the mutation.
func withWorkEvent(node *WorkEvent) workeventOption {
	return func(m *WorkEventMutation) {
		m.oldValue = func(context.Context) (*WorkEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkEvent entities.
func (m *WorkEventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkEventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkEventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *WorkEventMutation) SetTicketID(s string) {
	m.ticket_id = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *WorkEventMutation) TicketID() (r string, exists bool) {
	v := m.ticket_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the WorkEvent entity.
// If the WorkEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkEventMutation) OldTicketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *WorkEventMutation) ResetTicketID() {
	m.ticket_id = nil
}

// SetEventType sets the "event_type" field.
func (m *WorkEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *WorkEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the WorkEvent entity.
// If the WorkEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *WorkEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetStepName sets the "step_name" field.
func (m *WorkEventMutation) SetStepName(s string) {
	m.step_name = &s
}

// StepName returns the value of the "step_name" field in the mutation.
func (m *WorkEventMutation) StepName() (r string, exists bool) {
	v := m.step_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStepName returns the old "step_name" field's value of the WorkEvent entity.
// If the WorkEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkEventMutation) OldStepName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepName: %w", err)
	}
	return oldValue.StepName, nil
}

// ClearStepName clears the value of the "step_name" field.
func (m *WorkEventMutation) ClearStepName() {
	m.step_name = nil
	m.clearedFields[workevent.FieldStepName] = struct{}{}
}

// StepNameCleared returns if the "step_name" field was cleared in this mutation.
func (m *WorkEventMutation) StepNameCleared() bool {
	_, ok := m.clearedFields[workevent.FieldStepName]
	return ok
}

// ResetStepName resets all changes to the "step_name" field.
func (m *WorkEventMutation) ResetStepName() {
	m.step_name = nil
	delete(m.clearedFields, workevent.FieldStepName)
}

// SetStatus sets the "status" field.
func (m *WorkEventMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkEventMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkEvent entity.
// If the WorkEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkEventMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *WorkEventMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[workevent.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *WorkEventMutation) StatusCleared() bool {
	_, ok := m.clearedFields[workevent.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkEventMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, workevent.FieldStatus)
}

// SetPayload sets the "payload" field.
func (m *WorkEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WorkEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WorkEvent entity.
// If the WorkEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *WorkEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[workevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *WorkEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[workevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *WorkEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, workevent.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkEvent entity.
// If the WorkEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the WorkEventMutation builder.
func (m *WorkEventMutation) Where(ps ...predicate.WorkEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkEvent).
func (m *WorkEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.ticket_id != nil {
		fields = append(fields, workevent.FieldTicketID)
	}
	if m.event_type != nil {
		fields = append(fields, workevent.FieldEventType)
	}
	if m.step_name != nil {
		fields = append(fields, workevent.FieldStepName)
	}
	if m.status != nil {
		fields = append(fields, workevent.FieldStatus)
	}
	if m.payload != nil {
		fields = append(fields, workevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, workevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workevent.FieldTicketID:
		return m.TicketID()
	case workevent.FieldEventType:
		return m.EventType()
	case workevent.FieldStepName:
		return m.StepName()
	case workevent.FieldStatus:
		return m.Status()
	case workevent.FieldPayload:
		return m.Payload()
	case workevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workevent.FieldTicketID:
		return m.OldTicketID(ctx)
	case workevent.FieldEventType:
		return m.OldEventType(ctx)
	case workevent.FieldStepName:
		return m.OldStepName(ctx)
	case workevent.FieldStatus:
		return m.OldStatus(ctx)
	case workevent.FieldPayload:
		return m.OldPayload(ctx)
	case workevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workevent.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case workevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case workevent.FieldStepName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepName(v)
		return nil
	case workevent.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case workevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workevent.FieldStepName) {
		fields = append(fields, workevent.FieldStepName)
	}
	if m.FieldCleared(workevent.FieldStatus) {
		fields = append(fields, workevent.FieldStatus)
	}
	if m.FieldCleared(workevent.FieldPayload) {
		fields = append(fields, workevent.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkEventMutation) ClearField(name string) error {
	switch name {
	case workevent.FieldStepName:
		m.ClearStepName()
		return nil
	case workevent.FieldStatus:
		m.ClearStatus()
		return nil
	case workevent.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown WorkEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkEventMutation) ResetField(name string) error {
	switch name {
	case workevent.FieldTicketID:
		m.ResetTicketID()
		return nil
	case workevent.FieldEventType:
		m.ResetEventType()
		return nil
	case workevent.FieldStepName:
		m.ResetStepName()
		return nil
	case workevent.FieldStatus:
		m.ResetStatus()
		return nil
	case workevent.FieldPayload:
		m.ResetPayload()
		return nil
	case workevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorkEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorkEvent edge %s", name)
}

// WorkRequestMutation represents an operation that mutates the WorkRequest nodes in the graph.
type WorkRequestMutation struct {
	config
	op             Op
	typ            string
	id             *string
	user_id        *string
	workspace_id   *string
	basket_id      *string
	agent_kind     *workrequest.AgentKind
	work_mode      *string
	payload        *map[string]interface{}
	is_trial       *bool
	status         *workrequest.Status
	result_summary *string
	error_message  *string
	priority       *int
	addpriority    *int
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	ticket         *string
	clearedticket  bool
	done           bool
	oldValue       func(context.Context) (*WorkRequest, error)
	predicates     []predicate.WorkRequest
}

var _ ent.Mutation = (*WorkRequestMutation)(nil)

// workrequestOption allows management of the mutation configuration using functional options.
type workrequestOption func(*WorkRequestMutation)

// newWorkRequestMutation creates new mutation for the WorkRequest entity.
func newWorkRequestMutation(c config, op Op, opts ...workrequestOption) *WorkRequestMutation {
	m := &WorkRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkRequestID sets the ID field of the mutation.
func withWorkRequestID(id string) workrequestOption {
	return func(m *WorkRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkRequest
		)
		m.oldValue = func(ctx context.Context) (*WorkRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkRequest sets the old WorkRequest of the mutation.
func withWorkRequest(node *WorkRequest) workrequestOption {
	return func(m *WorkRequestMutation) {
		m.oldValue = func(context.Context) (*WorkRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkRequest entities.
func (m *WorkRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *WorkRequestMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *WorkRequestMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the WorkRequest entity.
// If the WorkRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRequestMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *WorkRequestMutation) ResetUserID() {
	m.user_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *WorkRequestMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *WorkRequestMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the WorkRequest entity.
// If the WorkRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRequestMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *WorkRequestMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetBasketID sets the "basket_id" field.
func (m *WorkRequestMutation) SetBasketID(s string) {
	m.basket_id = &s
}

// BasketID returns the value of the "basket_id" field in the mutation.
func (m *WorkRequestMutation) BasketID() (r string, exists bool) {
	v := m.basket_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBasketID returns the old "basket_id" field's value of the WorkRequest entity.
// If the WorkRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRequestMutation) OldBasketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBasketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBasketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBasketID: %w", err)
	}
	return oldValue.BasketID, nil
}

// ResetBasketID resets all changes to the "basket_id" field.
func (m *WorkRequestMutation) ResetBasketID() {
	m.basket_id = nil
}

// SetAgentKind sets the "agent_kind" field.
func (m *WorkRequestMutation) SetAgentKind(wk workrequest.AgentKind) {
	m.agent_kind = &wk
}

// AgentKind returns the value of the "agent_kind" field in the mutation.
func (m *WorkRequestMutation) AgentKind() (r workrequest.AgentKind, exists bool) {
	v := m.agent_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentKind returns the old "agent_kind" field's value of the WorkRequest entity.
// If the WorkRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRequestMutation) OldAgentKind(ctx context.Context) (v workrequest.AgentKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentKind: %w", err)
	}
	return oldValue.AgentKind, nil
}

// ResetAgentKind resets all changes to the "agent_kind" field.
func (m *WorkRequestMutation) ResetAgentKind() {
	m.agent_kind = nil
}

// SetWorkMode sets the "work_mode" field.
func (m *WorkRequestMutation) SetWorkMode(s string) {
	m.work_mode = &s
}

// WorkMode returns the value of the "work_mode" field in the mutation.
func (m *WorkRequestMutation) WorkMode() (r string, exists bool) {
	v := m.work_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkMode returns the old "work_mode" field's value of the WorkRequest entity.
// If the WorkRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRequestMutation) OldWorkMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkMode: %w", err)
	}
	return oldValue.WorkMode, nil
}

// ResetWorkMode resets all changes to the "work_mode" field.
func (m *WorkRequestMutation) ResetWorkMode() {
	m.work_mode = nil
}

// SetPayload sets the "payload" field.
func (m *WorkRequestMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WorkRequestMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WorkRequest entity.
// If the WorkRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRequestMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *WorkRequestMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[workrequest.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *WorkRequestMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[workrequest.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *WorkRequestMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, workrequest.FieldPayload)
}

// SetIsTrial sets the "is_trial" field.
func (m *WorkRequestMutation) SetIsTrial(b bool) {
	m.is_trial = &b
}

// IsTrial returns the value of the "is_trial" field in the mutation.
func (m *WorkRequestMutation) IsTrial() (r bool, exists bool) {
	v := m.is_trial
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTrial returns the old "is_trial" field's value of the WorkRequest entity.
// If the WorkRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRequestMutation) OldIsTrial(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTrial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTrial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTrial: %w", err)
	}
	return oldValue.IsTrial, nil
}

// ResetIsTrial resets all changes to the "is_trial" field.
func (m *WorkRequestMutation) ResetIsTrial() {
	m.is_trial = nil
}

// SetStatus sets the "status" field.
func (m *WorkRequestMutation) SetStatus(w workrequest.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkRequestMutation) Status() (r workrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkRequest entity.
// If the WorkRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRequestMutation) OldStatus(ctx context.Context) (v workrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkRequestMutation) ResetStatus() {
	m.status = nil
}

// SetResultSummary sets the "result_summary" field.
func (m *WorkRequestMutation) SetResultSummary(s string) {
	m.result_summary = &s
}

// ResultSummary returns the value of the "result_summary" field in the mutation.
func (m *WorkRequestMutation) ResultSummary() (r string, exists bool) {
	v := m.result_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldResultSummary returns the old "result_summary" field's value of the WorkRequest entity.
// If the WorkRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRequestMutation) OldResultSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultSummary: %w", err)
	}
	return oldValue.ResultSummary, nil
}

// ClearResultSummary clears the value of the "result_summary" field.
func (m *WorkRequestMutation) ClearResultSummary() {
	m.result_summary = nil
	m.clearedFields[workrequest.FieldResultSummary] = struct{}{}
}

// ResultSummaryCleared returns if the "result_summary" field was cleared in this mutation.
func (m *WorkRequestMutation) ResultSummaryCleared() bool {
	_, ok := m.clearedFields[workrequest.FieldResultSummary]
	return ok
}

// ResetResultSummary resets all changes to the "result_summary" field.
func (m *WorkRequestMutation) ResetResultSummary() {
	m.result_summary = nil
	delete(m.clearedFields, workrequest.FieldResultSummary)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkRequestMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkRequestMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkRequest entity.
// If the WorkRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRequestMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkRequestMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workrequest.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkRequestMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workrequest.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkRequestMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workrequest.FieldErrorMessage)
}

// SetPriority sets the "priority" field.
func (m *WorkRequestMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *WorkRequestMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the WorkRequest entity.
// If the WorkRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRequestMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *WorkRequestMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *WorkRequestMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *WorkRequestMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkRequest entity.
// If the WorkRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkRequest entity.
// If the WorkRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTicketID sets the "ticket" edge to the WorkTicket entity by id.
func (m *WorkRequestMutation) SetTicketID(id string) {
	m.ticket = &id
}

// ClearTicket clears the "ticket" edge to the WorkTicket entity.
func (m *WorkRequestMutation) ClearTicket() {
	m.clearedticket = true
}

// TicketCleared reports if the "ticket" edge to the WorkTicket entity was cleared.
func (m *WorkRequestMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketID returns the "ticket" edge ID in the mutation.
func (m *WorkRequestMutation) TicketID() (id string, exists bool) {
	if m.ticket != nil {
		return *m.ticket, true
	}
	return
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *WorkRequestMutation) TicketIDs() (ids []string) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *WorkRequestMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the WorkRequestMutation builder.
func (m *WorkRequestMutation) Where(ps ...predicate.WorkRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkRequest).
func (m *WorkRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkRequestMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.user_id != nil {
		fields = append(fields, workrequest.FieldUserID)
	}
	if m.workspace_id != nil {
		fields = append(fields, workrequest.FieldWorkspaceID)
	}
	if m.basket_id != nil {
		fields = append(fields, workrequest.FieldBasketID)
	}
	if m.agent_kind != nil {
		fields = append(fields, workrequest.FieldAgentKind)
	}
	if m.work_mode != nil {
		fields = append(fields, workrequest.FieldWorkMode)
	}
	if m.payload != nil {
		fields = append(fields, workrequest.FieldPayload)
	}
	if m.is_trial != nil {
		fields = append(fields, workrequest.FieldIsTrial)
	}
	if m.status != nil {
		fields = append(fields, workrequest.FieldStatus)
	}
	if m.result_summary != nil {
		fields = append(fields, workrequest.FieldResultSummary)
	}
	if m.error_message != nil {
		fields = append(fields, workrequest.FieldErrorMessage)
	}
	if m.priority != nil {
		fields = append(fields, workrequest.FieldPriority)
	}
	if m.created_at != nil {
		fields = append(fields, workrequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workrequest.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workrequest.FieldUserID:
		return m.UserID()
	case workrequest.FieldWorkspaceID:
		return m.WorkspaceID()
	case workrequest.FieldBasketID:
		return m.BasketID()
	case workrequest.FieldAgentKind:
		return m.AgentKind()
	case workrequest.FieldWorkMode:
		return m.WorkMode()
	case workrequest.FieldPayload:
		return m.Payload()
	case workrequest.FieldIsTrial:
		return m.IsTrial()
	case workrequest.FieldStatus:
		return m.Status()
	case workrequest.FieldResultSummary:
		return m.ResultSummary()
	case workrequest.FieldErrorMessage:
		return m.ErrorMessage()
	case workrequest.FieldPriority:
		return m.Priority()
	case workrequest.FieldCreatedAt:
		return m.CreatedAt()
	case workrequest.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workrequest.FieldUserID:
		return m.OldUserID(ctx)
	case workrequest.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case workrequest.FieldBasketID:
		return m.OldBasketID(ctx)
	case workrequest.FieldAgentKind:
		return m.OldAgentKind(ctx)
	case workrequest.FieldWorkMode:
		return m.OldWorkMode(ctx)
	case workrequest.FieldPayload:
		return m.OldPayload(ctx)
	case workrequest.FieldIsTrial:
		return m.OldIsTrial(ctx)
	case workrequest.FieldStatus:
		return m.OldStatus(ctx)
	case workrequest.FieldResultSummary:
		return m.OldResultSummary(ctx)
	case workrequest.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workrequest.FieldPriority:
		return m.OldPriority(ctx)
	case workrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workrequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workrequest.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case workrequest.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case workrequest.FieldBasketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBasketID(v)
		return nil
	case workrequest.FieldAgentKind:
		v, ok := value.(workrequest.AgentKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentKind(v)
		return nil
	case workrequest.FieldWorkMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkMode(v)
		return nil
	case workrequest.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case workrequest.FieldIsTrial:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTrial(v)
		return nil
	case workrequest.FieldStatus:
		v, ok := value.(workrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workrequest.FieldResultSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultSummary(v)
		return nil
	case workrequest.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workrequest.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case workrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workrequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkRequestMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, workrequest.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workrequest.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workrequest.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown WorkRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workrequest.FieldPayload) {
		fields = append(fields, workrequest.FieldPayload)
	}
	if m.FieldCleared(workrequest.FieldResultSummary) {
		fields = append(fields, workrequest.FieldResultSummary)
	}
	if m.FieldCleared(workrequest.FieldErrorMessage) {
		fields = append(fields, workrequest.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkRequestMutation) ClearField(name string) error {
	switch name {
	case workrequest.FieldPayload:
		m.ClearPayload()
		return nil
	case workrequest.FieldResultSummary:
		m.ClearResultSummary()
		return nil
	case workrequest.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown WorkRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkRequestMutation) ResetField(name string) error {
	switch name {
	case workrequest.FieldUserID:
		m.ResetUserID()
		return nil
	case workrequest.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case workrequest.FieldBasketID:
		m.ResetBasketID()
		return nil
	case workrequest.FieldAgentKind:
		m.ResetAgentKind()
		return nil
	case workrequest.FieldWorkMode:
		m.ResetWorkMode()
		return nil
	case workrequest.FieldPayload:
		m.ResetPayload()
		return nil
	case workrequest.FieldIsTrial:
		m.ResetIsTrial()
		return nil
	case workrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case workrequest.FieldResultSummary:
		m.ResetResultSummary()
		return nil
	case workrequest.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workrequest.FieldPriority:
		m.ResetPriority()
		return nil
	case workrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workrequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, workrequest.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workrequest.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, workrequest.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case workrequest.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkRequestMutation) ClearEdge(name string) error {
	switch name {
	case workrequest.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown WorkRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkRequestMutation) ResetEdge(name string) error {
	switch name {
	case workrequest.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown WorkRequest edge %s", name)
}

// WorkTicketMutation represents an operation that mutates the WorkTicket nodes in the graph.
type WorkTicketMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	agent_session_id    *string
	basket_id           *string
	workspace_id        *string
	agent_kind          *workticket.AgentKind
	status              *workticket.Status
	priority            *int
	addpriority         *int
	started_at          *time.Time
	ended_at            *time.Time
	ticket_metadata     *map[string]interface{}
	pod_id              *string
	claimed_at          *time.Time
	last_heartbeat_at   *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	work_request        *string
	clearedwork_request bool
	done                bool
	oldValue            func(context.Context) (*WorkTicket, error)
	predicates          []predicate.WorkTicket
}

var _ ent.Mutation = (*WorkTicketMutation)(nil)

// workticketOption allows management of the mutation configuration using functional options.
type workticketOption func(*WorkTicketMutation)

// newWorkTicketMutation creates new mutation for the WorkTicket entity.
func newWorkTicketMutation(c config, op Op, opts ...workticketOption) *WorkTicketMutation {
	m := &WorkTicketMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkTicket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkTicketID sets the ID field of the mutation.
func withWorkTicketID(id string) workticketOption {
	return func(m *WorkTicketMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkTicket
		)
		m.oldValue = func(ctx context.Context) (*WorkTicket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkTicket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkTicket sets the old WorkTicket of the mutation.
func withWorkTicket(node *WorkTicket) workticketOption {
	return func(m *WorkTicketMutation) {
		m.oldValue = func(context.Context) (*WorkTicket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkTicketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkTicketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkTicket entities.
func (m *WorkTicketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkTicketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkTicketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkTicket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkRequestID sets the "work_request_id" field.
func (m *WorkTicketMutation) SetWorkRequestID(s string) {
	m.work_request = &s
}

// WorkRequestID returns the value of the "work_request_id" field in the mutation.
func (m *WorkTicketMutation) WorkRequestID() (r string, exists bool) {
	v := m.work_request
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkRequestID returns the old "work_request_id" field's value of the WorkTicket entity.
// If the WorkTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkTicketMutation) OldWorkRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkRequestID: %w", err)
	}
	return oldValue.WorkRequestID, nil
}

// ResetWorkRequestID resets all changes to the "work_request_id" field.
func (m *WorkTicketMutation) ResetWorkRequestID() {
	m.work_request = nil
}

// SetAgentSessionID sets the "agent_session_id" field.
func (m *WorkTicketMutation) SetAgentSessionID(s string) {
	m.agent_session_id = &s
}

// AgentSessionID returns the value of the "agent_session_id" field in the mutation.
func (m *WorkTicketMutation) AgentSessionID() (r string, exists bool) {
	v := m.agent_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentSessionID returns the old "agent_session_id" field's value of the WorkTicket entity.
// If the WorkTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkTicketMutation) OldAgentSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentSessionID: %w", err)
	}
	return oldValue.AgentSessionID, nil
}

// ResetAgentSessionID resets all changes to the "agent_session_id" field.
func (m *WorkTicketMutation) ResetAgentSessionID() {
	m.agent_session_id = nil
}

// SetBasketID sets the "basket_id" field.
func (m *WorkTicketMutation) SetBasketID(s string) {
	m.basket_id = &s
}

// BasketID returns the value of the "basket_id" field in the mutation.
func (m *WorkTicketMutation) BasketID() (r string, exists bool) {
	v := m.basket_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBasketID returns the old "basket_id" field's value of the WorkTicket entity.
// If the WorkTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkTicketMutation) OldBasketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBasketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBasketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBasketID: %w", err)
	}
	return oldValue.BasketID, nil
}

// ResetBasketID resets all changes to the "basket_id" field.
func (m *WorkTicketMutation) ResetBasketID() {
	m.basket_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *WorkTicketMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *WorkTicketMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the WorkTicket entity.
// If the WorkTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkTicketMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *WorkTicketMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetAgentKind sets the "agent_kind" field.
func (m *WorkTicketMutation) SetAgentKind(wk workticket.AgentKind) {
	m.agent_kind = &wk
}

// AgentKind returns the value of the "agent_kind" field in the mutation.
func (m *WorkTicketMutation) AgentKind() (r workticket.AgentKind, exists bool) {
	v := m.agent_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentKind returns the old "agent_kind" field's value of the WorkTicket entity.
// If the WorkTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkTicketMutation) OldAgentKind(ctx context.Context) (v workticket.AgentKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentKind: %w", err)
	}
	return oldValue.AgentKind, nil
}

// ResetAgentKind resets all changes to the "agent_kind" field.
func (m *WorkTicketMutation) ResetAgentKind() {
	m.agent_kind = nil
}

// SetStatus sets the "status" field.
func (m *WorkTicketMutation) SetStatus(w workticket.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkTicketMutation) Status() (r workticket.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkTicket entity.
// If the WorkTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkTicketMutation) OldStatus(ctx context.Context) (v workticket.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkTicketMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *WorkTicketMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *WorkTicketMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the WorkTicket entity.
// If the WorkTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkTicketMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *WorkTicketMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *WorkTicketMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *WorkTicketMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStartedAt sets the "started_at" field.
func (m *WorkTicketMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkTicketMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WorkTicket entity.
// If the WorkTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkTicketMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WorkTicketMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[workticket.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WorkTicketMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[workticket.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkTicketMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, workticket.FieldStartedAt)
}

// SetEndedAt sets the "ended_at" field.
func (m *WorkTicketMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *WorkTicketMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the WorkTicket entity.
// If the WorkTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkTicketMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *WorkTicketMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[workticket.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *WorkTicketMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[workticket.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *WorkTicketMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, workticket.FieldEndedAt)
}

// SetTicketMetadata sets the "ticket_metadata" field.
func (m *WorkTicketMutation) SetTicketMetadata(value map[string]interface{}) {
	m.ticket_metadata = &value
}

// TicketMetadata returns the value of the "ticket_metadata" field in the mutation.
func (m *WorkTicketMutation) TicketMetadata() (r map[string]interface{}, exists bool) {
	v := m.ticket_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketMetadata returns the old "ticket_metadata" field's value of the WorkTicket entity.
// If the WorkTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkTicketMutation) OldTicketMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketMetadata: %w", err)
	}
	return oldValue.TicketMetadata, nil
}

// ClearTicketMetadata clears the value of the "ticket_metadata" field.
func (m *WorkTicketMutation) ClearTicketMetadata() {
	m.ticket_metadata = nil
	m.clearedFields[workticket.FieldTicketMetadata] = struct{}{}
}

// TicketMetadataCleared returns if the "ticket_metadata" field was cleared in this mutation.
func (m *WorkTicketMutation) TicketMetadataCleared() bool {
	_, ok := m.clearedFields[workticket.FieldTicketMetadata]
	return ok
}

// ResetTicketMetadata resets all changes to the "ticket_metadata" field.
func (m *WorkTicketMutation) ResetTicketMetadata() {
	m.ticket_metadata = nil
	delete(m.clearedFields, workticket.FieldTicketMetadata)
}

// SetPodID sets the "pod_id" field.
func (m *WorkTicketMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *WorkTicketMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the WorkTicket entity.
// If the WorkTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkTicketMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *WorkTicketMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[workticket.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *WorkTicketMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[workticket.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *WorkTicketMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, workticket.FieldPodID)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *WorkTicketMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *WorkTicketMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the WorkTicket entity.
// If the WorkTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkTicketMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *WorkTicketMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[workticket.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *WorkTicketMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[workticket.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *WorkTicketMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, workticket.FieldClaimedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *WorkTicketMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *WorkTicketMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the WorkTicket entity.
// If the WorkTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkTicketMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *WorkTicketMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[workticket.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *WorkTicketMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[workticket.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *WorkTicketMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, workticket.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkTicketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkTicketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkTicket entity.
// If the WorkTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkTicketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkTicketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkTicketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkTicketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkTicket entity.
// If the WorkTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkTicketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkTicketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkRequest clears the "work_request" edge to the WorkRequest entity.
func (m *WorkTicketMutation) ClearWorkRequest() {
	m.clearedwork_request = true
	m.clearedFields[workticket.FieldWorkRequestID] = struct{}{}
}

// WorkRequestCleared reports if the "work_request" edge to the WorkRequest entity was cleared.
func (m *WorkTicketMutation) WorkRequestCleared() bool {
	return m.clearedwork_request
}

// WorkRequestIDs returns the "work_request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkRequestID instead. It exists only for internal usage by the builders.
func (m *WorkTicketMutation) WorkRequestIDs() (ids []string) {
	if id := m.work_request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkRequest resets all changes to the "work_request" edge.
func (m *WorkTicketMutation) ResetWorkRequest() {
	m.work_request = nil
	m.clearedwork_request = false
}

// Where appends a list predicates to the WorkTicketMutation builder.
func (m *WorkTicketMutation) Where(ps ...predicate.WorkTicket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkTicketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkTicketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkTicket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkTicketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkTicketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkTicket).
func (m *WorkTicketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkTicketMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.work_request != nil {
		fields = append(fields, workticket.FieldWorkRequestID)
	}
	if m.agent_session_id != nil {
		fields = append(fields, workticket.FieldAgentSessionID)
	}
	if m.basket_id != nil {
		fields = append(fields, workticket.FieldBasketID)
	}
	if m.workspace_id != nil {
		fields = append(fields, workticket.FieldWorkspaceID)
	}
	if m.agent_kind != nil {
		fields = append(fields, workticket.FieldAgentKind)
	}
	if m.status != nil {
		fields = append(fields, workticket.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, workticket.FieldPriority)
	}
	if m.started_at != nil {
		fields = append(fields, workticket.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, workticket.FieldEndedAt)
	}
	if m.ticket_metadata != nil {
		fields = append(fields, workticket.FieldTicketMetadata)
	}
	if m.pod_id != nil {
		fields = append(fields, workticket.FieldPodID)
	}
	if m.claimed_at != nil {
		fields = append(fields, workticket.FieldClaimedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, workticket.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, workticket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workticket.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkTicketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workticket.FieldWorkRequestID:
		return m.WorkRequestID()
	case workticket.FieldAgentSessionID:
		return m.AgentSessionID()
	case workticket.FieldBasketID:
		return m.BasketID()
	case workticket.FieldWorkspaceID:
		return m.WorkspaceID()
	case workticket.FieldAgentKind:
		return m.AgentKind()
	case workticket.FieldStatus:
		return m.Status()
	case workticket.FieldPriority:
		return m.Priority()
	case workticket.FieldStartedAt:
		return m.StartedAt()
	case workticket.FieldEndedAt:
		return m.EndedAt()
	case workticket.FieldTicketMetadata:
		return m.TicketMetadata()
	case workticket.FieldPodID:
		return m.PodID()
	case workticket.FieldClaimedAt:
		return m.ClaimedAt()
	case workticket.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case workticket.FieldCreatedAt:
		return m.CreatedAt()
	case workticket.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkTicketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workticket.FieldWorkRequestID:
		return m.OldWorkRequestID(ctx)
	case workticket.FieldAgentSessionID:
		return m.OldAgentSessionID(ctx)
	case workticket.FieldBasketID:
		return m.OldBasketID(ctx)
	case workticket.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case workticket.FieldAgentKind:
		return m.OldAgentKind(ctx)
	case workticket.FieldStatus:
		return m.OldStatus(ctx)
	case workticket.FieldPriority:
		return m.OldPriority(ctx)
	case workticket.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workticket.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case workticket.FieldTicketMetadata:
		return m.OldTicketMetadata(ctx)
	case workticket.FieldPodID:
		return m.OldPodID(ctx)
	case workticket.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case workticket.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case workticket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workticket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkTicket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkTicketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workticket.FieldWorkRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkRequestID(v)
		return nil
	case workticket.FieldAgentSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentSessionID(v)
		return nil
	case workticket.FieldBasketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBasketID(v)
		return nil
	case workticket.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case workticket.FieldAgentKind:
		v, ok := value.(workticket.AgentKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentKind(v)
		return nil
	case workticket.FieldStatus:
		v, ok := value.(workticket.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workticket.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case workticket.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workticket.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case workticket.FieldTicketMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketMetadata(v)
		return nil
	case workticket.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case workticket.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case workticket.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case workticket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workticket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkTicket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkTicketMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, workticket.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkTicketMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workticket.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkTicketMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workticket.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown WorkTicket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkTicketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workticket.FieldStartedAt) {
		fields = append(fields, workticket.FieldStartedAt)
	}
	if m.FieldCleared(workticket.FieldEndedAt) {
		fields = append(fields, workticket.FieldEndedAt)
	}
	if m.FieldCleared(workticket.FieldTicketMetadata) {
		fields = append(fields, workticket.FieldTicketMetadata)
	}
	if m.FieldCleared(workticket.FieldPodID) {
		fields = append(fields, workticket.FieldPodID)
	}
	if m.FieldCleared(workticket.FieldClaimedAt) {
		fields = append(fields, workticket.FieldClaimedAt)
	}
	if m.FieldCleared(workticket.FieldLastHeartbeatAt) {
		fields = append(fields, workticket.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkTicketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkTicketMutation) ClearField(name string) error {
	switch name {
	case workticket.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case workticket.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case workticket.FieldTicketMetadata:
		m.ClearTicketMetadata()
		return nil
	case workticket.FieldPodID:
		m.ClearPodID()
		return nil
	case workticket.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case workticket.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown WorkTicket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkTicketMutation) ResetField(name string) error {
	switch name {
	case workticket.FieldWorkRequestID:
		m.ResetWorkRequestID()
		return nil
	case workticket.FieldAgentSessionID:
		m.ResetAgentSessionID()
		return nil
	case workticket.FieldBasketID:
		m.ResetBasketID()
		return nil
	case workticket.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case workticket.FieldAgentKind:
		m.ResetAgentKind()
		return nil
	case workticket.FieldStatus:
		m.ResetStatus()
		return nil
	case workticket.FieldPriority:
		m.ResetPriority()
		return nil
	case workticket.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workticket.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case workticket.FieldTicketMetadata:
		m.ResetTicketMetadata()
		return nil
	case workticket.FieldPodID:
		m.ResetPodID()
		return nil
	case workticket.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case workticket.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case workticket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workticket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkTicket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkTicketMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.work_request != nil {
		edges = append(edges, workticket.EdgeWorkRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkTicketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workticket.EdgeWorkRequest:
		if id := m.work_request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkTicketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkTicketMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkTicketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwork_request {
		edges = append(edges, workticket.EdgeWorkRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkTicketMutation) EdgeCleared(name string) bool {
	switch name {
	case workticket.EdgeWorkRequest:
		return m.clearedwork_request
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkTicketMutation) ClearEdge(name string) error {
	switch name {
	case workticket.EdgeWorkRequest:
		m.ClearWorkRequest()
		return nil
	}
	return fmt.Errorf("unknown WorkTicket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkTicketMutation) ResetEdge(name string) error {
	switch name {
	case workticket.EdgeWorkRequest:
		m.ResetWorkRequest()
		return nil
	}
	return fmt.Errorf("unknown WorkTicket edge %s", name)
}
