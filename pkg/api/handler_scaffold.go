package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cobbleworks/foundry/pkg/models"
)

// scaffoldProjectHandler handles POST /api/projects/scaffold. There is
// no rollback on failure: the response names the failing step so the
// caller can inspect what was created and decide.
func (s *Server) scaffoldProjectHandler(c *gin.Context) {
	var req ScaffoldProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, kindValidation, err.Error())
		return
	}

	userID, err := resolveUserID(c, req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	p, _ := currentPrincipal(c)

	result, err := s.scaffolder.Scaffold(c.Request.Context(), models.ScaffoldRequest{
		UserID:           userID,
		WorkspaceID:      req.WorkspaceID,
		Name:             req.Name,
		Description:      req.Description,
		Intent:           req.Intent,
		InitialContext:   req.InitialContext,
		PromotionMode:    req.PromotionMode,
		AutoPromoteTypes: req.AutoPromoteTypes,
		GovernancePolicy: req.GovernancePolicy,
		UserToken:        p.Token,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
