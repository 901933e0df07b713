package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cobbleworks/foundry/pkg/substrate"
)

// runAgentHandler handles POST /api/agents/run, the deprecated
// synchronous path: the ticket is admitted exactly like queued work but
// executed inline, and the response carries the run's outcome. Queue
// admission with the SSE stream supersedes it.
func (s *Server) runAgentHandler(c *gin.Context) {
	admission, ok := s.admitWork(c)
	if !ok {
		return
	}

	result, err := s.inline.Run(c.Request.Context(), admission.Ticket.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	p, _ := currentPrincipal(c)
	outputs := s.ticketOutputs(c, admission.Ticket.BasketID, admission.Ticket.ID, p.Token)

	c.JSON(http.StatusCreated, &AgentRunResponse{
		WorkRequestID:   admission.Request.ID,
		TicketID:        admission.Ticket.ID,
		IsTrialRequest:  admission.IsTrial,
		RemainingTrials: admission.RemainingTrials,
		Status:          string(result.Status),
		ResponseText:    result.ResponseText,
		WorkOutputs:     outputs,
	})
}

// ticketOutputs fetches the outputs a run emitted. Best-effort: the run
// verdict is already final, so a listing failure degrades to an empty
// list rather than failing the response.
func (s *Server) ticketOutputs(c *gin.Context, basketID, ticketID, userToken string) []substrate.WorkOutput {
	page, err := s.bridge.ListOutputs(c.Request.Context(), basketID, substrate.OutputFilter{
		TicketID: ticketID,
	}, userToken)
	if err != nil {
		slog.Warn("Failed to list work outputs for run response",
			"ticket_id", ticketID,
			"basket_id", basketID,
			"error", err)
		return []substrate.WorkOutput{}
	}
	return page.Items
}
