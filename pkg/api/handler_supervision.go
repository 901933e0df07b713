package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cobbleworks/foundry/pkg/services"
	"github.com/cobbleworks/foundry/pkg/substrate"
)

// listOutputsHandler handles GET /api/supervision/baskets/:basket/outputs.
func (s *Server) listOutputsHandler(c *gin.Context) {
	basketID := c.Param("basket")

	filter := substrate.OutputFilter{
		SupervisionStatus: c.Query("supervision_status"),
		AgentKind:         c.Query("agent_kind"),
		OutputType:        c.Query("output_type"),
		TicketID:          c.Query("ticket_id"),
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 200 {
			abortWithError(c, http.StatusBadRequest, kindValidation, "invalid limit: must be 1-200")
			return
		}
		filter.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			abortWithError(c, http.StatusBadRequest, kindValidation, "invalid offset")
			return
		}
		filter.Offset = n
	}

	p, _ := currentPrincipal(c)
	page, err := s.bridge.ListOutputs(c.Request.Context(), basketID, filter, p.Token)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// approveOutputHandler handles POST .../outputs/:output/approve. When the
// owning project auto-promotes this output type, promotion happens inside
// the same call and the response reports how it went.
func (s *Server) approveOutputHandler(c *gin.Context) {
	in, ok := s.reviewInput(c)
	if !ok {
		return
	}

	result, err := s.bridge.Approve(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// rejectOutputHandler handles POST .../outputs/:output/reject.
func (s *Server) rejectOutputHandler(c *gin.Context) {
	in, ok := s.reviewInput(c)
	if !ok {
		return
	}

	out, err := s.bridge.Reject(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// requestRevisionHandler handles POST .../outputs/:output/request-revision.
func (s *Server) requestRevisionHandler(c *gin.Context) {
	in, ok := s.reviewInput(c)
	if !ok {
		return
	}

	out, err := s.bridge.RequestRevision(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// promoteOutputHandler handles POST .../outputs/:output/promote: explicit
// promotion of an approved output into the knowledge substrate.
func (s *Server) promoteOutputHandler(c *gin.Context) {
	in, ok := s.reviewInput(c)
	if !ok {
		return
	}

	result, err := s.bridge.Promote(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// skipPromotionHandler handles POST .../outputs/:output/skip-promotion.
func (s *Server) skipPromotionHandler(c *gin.Context) {
	in, ok := s.reviewInput(c)
	if !ok {
		return
	}

	out, err := s.bridge.SkipPromotion(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// reviewInput assembles the shared input of the supervision actions. The
// body is optional; an empty or absent body means no reviewer notes.
func (s *Server) reviewInput(c *gin.Context) (services.ReviewInput, bool) {
	var req ReviewActionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, kindValidation, err.Error())
			return services.ReviewInput{}, false
		}
	}

	p, _ := currentPrincipal(c)
	return services.ReviewInput{
		BasketID:  c.Param("basket"),
		OutputID:  c.Param("output"),
		Reviewer:  reviewerName(p),
		Notes:     req.Notes,
		UserToken: p.Token,
	}, true
}
