package slack

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// ReviewRequestedInput contains data for a checkpoint notification.
type ReviewRequestedInput struct {
	TicketID         string
	BasketID         string
	AgentKind        string
	OutputCount      int
	CheckpointReason string
}

// TicketFailedInput contains data for a failure notification.
type TicketFailedInput struct {
	TicketID     string
	BasketID     string
	AgentKind    string
	ErrorKind    string
	ErrorMessage string
}

// VerdictInput contains data for a supervision verdict reply.
type VerdictInput struct {
	TicketID   string
	OutputID   string
	Verdict    string // approved, rejected, revision_requested
	Reviewer   string
	Promoted   bool
	ProposalID string
}

// Service handles reviewer notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifyReviewRequested posts the root message for a ticket that
// checkpointed into pending_review.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyReviewRequested(ctx context.Context, input ReviewRequestedInput) {
	if s == nil {
		return
	}

	blocks := BuildReviewRequestedMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, "", 5*time.Second); err != nil {
		s.logger.Error("Failed to send review-requested notification",
			"ticket_id", input.TicketID,
			"error", err)
	}
}

// NotifyTicketFailed posts a terminal failure notification.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyTicketFailed(ctx context.Context, input TicketFailedInput) {
	if s == nil {
		return
	}

	blocks := BuildTicketFailedMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, "", 10*time.Second); err != nil {
		s.logger.Error("Failed to send ticket-failed notification",
			"ticket_id", input.TicketID,
			"error", err)
	}
}

// NotifyOutputReviewed posts a verdict reply, threaded onto the
// review-requested message when one can be found by ticket fingerprint.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyOutputReviewed(ctx context.Context, input VerdictInput) {
	if s == nil {
		return
	}

	var threadTS string
	if input.TicketID != "" {
		var err error
		threadTS, err = s.client.FindMessageByFingerprint(ctx, TicketFingerprint(input.TicketID))
		if err != nil {
			s.logger.Warn("Failed to find review thread for ticket",
				"ticket_id", input.TicketID,
				"output_id", input.OutputID,
				"error", err)
		}
	}

	blocks := BuildVerdictMessage(input)
	if err := s.client.PostMessage(ctx, blocks, threadTS, 5*time.Second); err != nil {
		s.logger.Error("Failed to send verdict notification",
			"output_id", input.OutputID,
			"verdict", input.Verdict,
			"error", err)
	}
}
