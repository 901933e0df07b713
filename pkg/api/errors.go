package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cobbleworks/foundry/pkg/services"
	"github.com/cobbleworks/foundry/pkg/substrate"
)

// Error kinds carried in the envelope. Clients branch on kind, never on
// message text.
const (
	kindValidation           = "validation"
	kindAuthRequired         = "auth_required"
	kindPermissionDenied     = "permission_denied"
	kindNotFound             = "not_found"
	kindConflict             = "conflict"
	kindSubstrateUnavailable = "substrate_unavailable"
	kindInternal             = "internal"
)

// errorEnvelope is the body of every non-2xx response.
type errorEnvelope struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// abortWithError writes the envelope and stops the handler chain.
func abortWithError(c *gin.Context, status int, kind, message string) {
	c.AbortWithStatusJSON(status, errorEnvelope{Error: errorDetail{Kind: kind, Message: message}})
}

// writeError maps a service-layer error onto the HTTP envelope. Scaffold
// errors keep their failing step in the details so the caller can choose
// a cleanup strategy.
func writeError(c *gin.Context, err error) {
	status, detail := classifyError(err)

	var scaffoldErr *services.ScaffoldError
	if errors.As(err, &scaffoldErr) {
		if detail.Details == nil {
			detail.Details = make(map[string]any, 1)
		}
		detail.Details["step"] = scaffoldErr.Step
	}

	if status == http.StatusInternalServerError {
		slog.Error("Unexpected service error",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err)
	}
	c.AbortWithStatusJSON(status, errorEnvelope{Error: detail})
}

func classifyError(err error) (int, errorDetail) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, errorDetail{
			Kind:    kindValidation,
			Message: validErr.Error(),
			Details: map[string]any{"field": validErr.Field},
		}
	}
	if errors.Is(err, services.ErrInvalidInput) {
		return http.StatusBadRequest, errorDetail{Kind: kindValidation, Message: err.Error()}
	}

	var deniedErr *services.PermissionDeniedError
	if errors.As(err, &deniedErr) {
		return http.StatusForbidden, errorDetail{
			Kind:    kindPermissionDenied,
			Message: deniedErr.Error(),
			Details: map[string]any{
				"trial_cap":   deniedErr.Cap,
				"trials_used": deniedErr.Count,
			},
		}
	}

	if errors.Is(err, services.ErrNotFound) || substrate.IsNotFound(err) {
		return http.StatusNotFound, errorDetail{Kind: kindNotFound, Message: "resource not found"}
	}
	if errors.Is(err, services.ErrConflict) || errors.Is(err, services.ErrAlreadyExists) || substrate.IsConflict(err) {
		return http.StatusConflict, errorDetail{Kind: kindConflict, Message: err.Error()}
	}
	if substrate.IsUnavailable(err) {
		return http.StatusServiceUnavailable, errorDetail{
			Kind:    kindSubstrateUnavailable,
			Message: "knowledge substrate is unavailable",
		}
	}

	return http.StatusInternalServerError, errorDetail{Kind: kindInternal, Message: "internal server error"}
}
