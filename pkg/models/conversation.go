package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cobbleworks/foundry/pkg/agent"
)

// ConversationSnapshot is the session registry's view of an agent session's
// conversation: the provider-side handle plus the full message history.
// It round-trips through the session's JSON state column.
type ConversationSnapshot struct {
	ProviderSessionID string                      `json:"provider_session_id,omitempty"`
	Messages          []agent.ConversationMessage `json:"messages,omitempty"`
	TurnCount         int                         `json:"turn_count,omitempty"`
	UpdatedAt         time.Time                   `json:"updated_at,omitempty"`
}

// ToState encodes the snapshot for the session state JSON column.
func (s *ConversationSnapshot) ToState() (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal conversation snapshot: %w", err)
	}
	var state map[string]any
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to convert conversation snapshot: %w", err)
	}
	return state, nil
}

// SnapshotFromState decodes a session's state column. A nil or empty state
// yields an empty snapshot (first run of the session).
func SnapshotFromState(state map[string]any) (*ConversationSnapshot, error) {
	if len(state) == 0 {
		return &ConversationSnapshot{}, nil
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session state: %w", err)
	}
	var snap ConversationSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode session state: %w", err)
	}
	return &snap, nil
}
