package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cobbleworks/foundry/pkg/models"
)

// queueWorkHandler handles POST /api/work/queue: the asynchronous
// admission path. The ticket is left pending for the worker pool; the
// response carries the stream URL to follow progress on.
func (s *Server) queueWorkHandler(c *gin.Context) {
	admission, ok := s.admitWork(c)
	if !ok {
		return
	}

	c.JSON(http.StatusAccepted, &WorkQueuedResponse{
		TicketID:        admission.Ticket.ID,
		WorkRequestID:   admission.Request.ID,
		StreamURL:       s.streamURL(admission.Ticket.ID),
		IsTrialRequest:  admission.IsTrial,
		RemainingTrials: admission.RemainingTrials,
	})
}

// getTicketHandler handles GET /api/work/tickets/:id.
func (s *Server) getTicketHandler(c *gin.Context) {
	ticketID := c.Param("id")
	if ticketID == "" {
		abortWithError(c, http.StatusBadRequest, kindValidation, "ticket id is required")
		return
	}

	ticket, err := s.tickets.Get(c.Request.Context(), ticketID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTicketResponse(ticket))
}

// admitWork binds the shared admission body and runs the gate → record →
// session → ticket sequence. On failure it has already written the error
// response.
func (s *Server) admitWork(c *gin.Context) (*models.WorkAdmission, bool) {
	var req SubmitWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, kindValidation, err.Error())
		return nil, false
	}

	userID, err := resolveUserID(c, req.UserID)
	if err != nil {
		writeError(c, err)
		return nil, false
	}

	payload := make(map[string]any, 2)
	if req.Task != "" {
		payload["task"] = req.Task
	}
	if len(req.Parameters) > 0 {
		payload["parameters"] = req.Parameters
	}

	admission, err := s.admission.Admit(c.Request.Context(), models.QueueWorkRequest{
		UserID:      userID,
		WorkspaceID: req.WorkspaceID,
		BasketID:    req.BasketID,
		ProjectID:   req.ProjectID,
		AgentKind:   req.AgentKind,
		WorkMode:    req.WorkMode,
		Payload:     payload,
		Priority:    req.Priority,
	})
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return admission, true
}

// streamURL builds the absolute SSE URL for a ticket.
func (s *Server) streamURL(ticketID string) string {
	base := strings.TrimRight(s.cfg.Server.PublicURL, "/")
	return base + "/api/work/tickets/" + ticketID + "/stream"
}
