package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cobbleworks/foundry/pkg/agent"
	"github.com/cobbleworks/foundry/pkg/models"
	"github.com/cobbleworks/foundry/pkg/progress"
)

// tpChatHandler handles POST /api/tp/chat. A thinking-partner turn is a
// full work request executed inline: it goes through the same gate and
// ticket lifecycle as any other work, and the conversation continuity
// comes from the basket's TP session.
func (s *Server) tpChatHandler(c *gin.Context) {
	var req TPChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, kindValidation, err.Error())
		return
	}
	if req.Message == "" {
		abortWithError(c, http.StatusBadRequest, kindValidation, "message is required")
		return
	}

	userID, err := resolveUserID(c, req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	admission, err := s.admission.Admit(c.Request.Context(), models.QueueWorkRequest{
		UserID:      userID,
		WorkspaceID: req.WorkspaceID,
		BasketID:    req.BasketID,
		ProjectID:   req.ProjectID,
		AgentKind:   string(agent.KindThinkingPartner),
		WorkMode:    "chat",
		Payload:     map[string]any{"task": req.Message},
	})
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := s.inline.Run(c.Request.Context(), admission.Ticket.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	// Nobody streams an inline turn; drain the tool activity out of the
	// buffer and release it.
	activity := s.toolActivity(admission.Ticket.ID)
	s.hub.Purge(admission.Ticket.ID)

	c.JSON(http.StatusOK, &TPChatResponse{
		TicketID:      admission.Ticket.ID,
		WorkRequestID: admission.Request.ID,
		Reply:         result.ResponseText,
		Status:        string(result.Status),
		ToolActivity:  activity,
	})
}

// toolActivity filters a ticket's buffered events down to tool calls.
func (s *Server) toolActivity(ticketID string) []progress.Event {
	events, _ := s.hub.Since(ticketID, progress.CursorStart)
	var activity []progress.Event
	for _, ev := range events {
		if ev.Type == progress.EventToolStart || ev.Type == progress.EventToolResult {
			activity = append(activity, ev)
		}
	}
	return activity
}
