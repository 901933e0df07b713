package slack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("NotifyReviewRequested is no-op", func(_ *testing.T) {
		// Should not panic
		s.NotifyReviewRequested(context.Background(), ReviewRequestedInput{
			TicketID: "tkt-1",
		})
	})

	t.Run("NotifyTicketFailed is no-op", func(_ *testing.T) {
		s.NotifyTicketFailed(context.Background(), TicketFailedInput{
			TicketID: "tkt-1",
		})
	})

	t.Run("NotifyOutputReviewed is no-op", func(_ *testing.T) {
		s.NotifyOutputReviewed(context.Background(), VerdictInput{
			OutputID: "out-1",
			Verdict:  "approved",
		})
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://example.com",
		})
		assert.NotNil(t, svc)
	})
}
