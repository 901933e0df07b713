// Package events gives the in-memory progress hub a durable, multi-replica
// backbone. Every emitted event is persisted as a work_events row and
// announced on a Postgres NOTIFY channel inside the same transaction, so a
// pod crash never leaves a stream consumer with an event that no other pod
// can replay. Each replica runs one NotifyListener on a dedicated
// connection and feeds events originating on other pods into its local hub.
package events

import (
	"github.com/cobbleworks/foundry/pkg/progress"
)

// DefaultChannel is the NOTIFY channel work event envelopes are
// published on. Channels are database-scoped, not schema-scoped, so
// deployments sharing one database must override it per environment.
const DefaultChannel = "work_events"

// maxNotifyPayload is the byte budget for a NOTIFY payload. Postgres
// caps payloads at 8000 bytes; we stop short of the limit so the
// envelope fields added around the event always fit.
const maxNotifyPayload = 7900

// Envelope is the JSON document carried by a NOTIFY payload. It wraps
// the event with the database row ID and the identity of the pod that
// produced it, so receivers can skip their own events and re-fetch
// oversized ones from the work_events table.
type Envelope struct {
	progress.Event

	// DBEventID is the work_events row backing this notification.
	DBEventID int64 `json:"db_event_id"`

	// Origin identifies the publishing pod. Listeners drop envelopes
	// whose origin matches their own; those events already reached the
	// local hub synchronously.
	Origin string `json:"origin"`

	// Truncated is set when the event payload exceeded the NOTIFY
	// budget and was stripped from the envelope. Receivers load the
	// full row by DBEventID instead.
	Truncated bool `json:"truncated,omitempty"`
}
