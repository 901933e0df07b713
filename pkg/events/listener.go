package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cobbleworks/foundry/pkg/progress"
	"github.com/cobbleworks/foundry/pkg/services"
)

const (
	reconnectBaseDelay = time.Second
	reconnectMaxDelay  = 30 * time.Second
)

// NotifyListener owns one dedicated Postgres connection that LISTENs on
// the work events channel and feeds envelopes published by other pods
// into the local hub. Pooled connections cannot LISTEN reliably, so the
// listener holds a raw pgx.Conn outside the pool.
//
// The connection string must not pin a schema search_path: NOTIFY
// channels are database-scoped and the listener never touches tables
// directly.
type NotifyListener struct {
	connString string
	channel    string
	origin     string
	hub        *progress.Hub
	store      *Store
	warnings   *services.SystemWarningsService
	logger     *slog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewNotifyListener creates a listener. origin must match the value the
// local Publisher stamps on envelopes; events with that origin are
// skipped because the Broadcaster already delivered them to the hub.
// store may be nil, in which case truncated envelopes are delivered
// without their payload. warnings may be nil.
func NewNotifyListener(connString, channel, origin string, hub *progress.Hub, store *Store, warnings *services.SystemWarningsService, logger *slog.Logger) *NotifyListener {
	if channel == "" {
		channel = DefaultChannel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NotifyListener{
		connString: connString,
		channel:    channel,
		origin:     origin,
		hub:        hub,
		store:      store,
		warnings:   warnings,
		logger:     logger,
	}
}

// Start connects, issues LISTEN, and spawns the receive loop. The
// initial connection failing is returned to the caller; failures after
// that are handled by reconnecting in the loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return fmt.Errorf("notify listener already started")
	}

	conn, err := l.connect(ctx)
	if err != nil {
		return fmt.Errorf("start notify listener: %w", err)
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.done = make(chan struct{})
	l.running = true

	go l.receiveLoop(loopCtx, conn)

	l.logger.Info("Work event listener started", "channel", l.channel, "origin", l.origin)
	return nil
}

// Stop cancels the receive loop and waits for it to release the
// connection.
func (l *NotifyListener) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	cancel, done := l.cancel, l.done
	l.mu.Unlock()

	cancel()
	<-done
	l.logger.Info("Work event listener stopped", "channel", l.channel)
}

func (l *NotifyListener) connect(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	listenSQL := fmt.Sprintf("LISTEN %s", pgx.Identifier{l.channel}.Sanitize())
	if _, err := conn.Exec(ctx, listenSQL); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("listen on %s: %w", l.channel, err)
	}
	return conn, nil
}

// receiveLoop is the sole owner of the connection after Start returns.
// It blocks on WaitForNotification until the context is cancelled,
// reconnecting with capped exponential backoff when the connection
// drops.
func (l *NotifyListener) receiveLoop(ctx context.Context, conn *pgx.Conn) {
	defer close(l.done)
	defer func() {
		if conn != nil {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = conn.Close(closeCtx)
			cancel()
		}
	}()

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			l.logger.Warn("Work event listener lost its connection", "channel", l.channel, "error", err)
			if l.warnings != nil {
				l.warnings.AddWarning(services.WarningCategoryEventListener,
					"work event listener disconnected; cross-pod progress events are delayed",
					err.Error(), l.origin)
			}

			closeCtx, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
			_ = conn.Close(closeCtx)
			cancelClose()
			conn = nil

			conn = l.reconnect(ctx)
			if conn == nil {
				return
			}
			continue
		}

		l.dispatch(ctx, notification.Payload)
	}
}

// reconnect retries until a connection is established or the context is
// cancelled. Returns nil only on cancellation.
func (l *NotifyListener) reconnect(ctx context.Context) *pgx.Conn {
	delay := reconnectBaseDelay
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}

		conn, err := l.connect(ctx)
		if err != nil {
			l.logger.Warn("Work event listener reconnect failed", "channel", l.channel, "retry_in", delay, "error", err)
			delay *= 2
			if delay > reconnectMaxDelay {
				delay = reconnectMaxDelay
			}
			continue
		}

		l.logger.Info("Work event listener reconnected", "channel", l.channel)
		if l.warnings != nil {
			l.warnings.ClearBySource(services.WarningCategoryEventListener, l.origin)
		}
		return conn
	}
}

// dispatch decodes one NOTIFY payload and feeds it into the local hub.
// Events originating on this pod are dropped; truncated envelopes are
// re-fetched from the store to recover their payload.
func (l *NotifyListener) dispatch(ctx context.Context, payload string) {
	var env Envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		l.logger.Warn("Dropping malformed work event envelope", "channel", l.channel, "error", err)
		return
	}
	if env.Origin == l.origin {
		return
	}

	ev := env.Event
	if env.Truncated && l.store != nil {
		full, err := l.store.Get(ctx, env.DBEventID)
		if err != nil {
			l.logger.Warn("Failed to resolve truncated work event, delivering without payload",
				"db_event_id", env.DBEventID, "error", err)
		} else {
			ev = full
		}
	}

	l.hub.Emit(ev.TicketID, ev)
}
