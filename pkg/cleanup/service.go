// Package cleanup provides data retention sweeps.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/cobbleworks/foundry/pkg/config"
	"github.com/cobbleworks/foundry/pkg/events"
	"github.com/cobbleworks/foundry/pkg/progress"
)

// Service periodically enforces retention:
//   - Deletes work event rows past their retention window
//   - Drops idle in-memory progress buffers
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	store  *events.Store
	hub    *progress.Hub

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, store *events.Store, hub *progress.Hub) *Service {
	return &Service{
		config: cfg,
		store:  store,
		hub:    hub,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_retention", s.config.EventRetention,
		"hub_idle_window", s.config.HubIdleWindow,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.pruneEvents(ctx)
	s.purgeIdleBuffers()
}

func (s *Service) pruneEvents(_ context.Context) {
	cutoff := time.Now().Add(-s.config.EventRetention)
	count, err := s.store.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: work event pruning failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned old work events", "count", count)
	}
}

func (s *Service) purgeIdleBuffers() {
	count := s.hub.PurgeIdle(s.config.HubIdleWindow)
	if count > 0 {
		slog.Info("Retention: purged idle progress buffers", "count", count)
	}
}
