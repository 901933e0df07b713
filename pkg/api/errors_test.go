package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cobbleworks/foundry/pkg/services"
	"github.com/cobbleworks/foundry/pkg/substrate"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{
			name:       "validation error",
			err:        services.NewValidationError("basket_id", "required"),
			wantStatus: http.StatusBadRequest,
			wantKind:   kindValidation,
		},
		{
			name:       "wrapped invalid input",
			err:        fmt.Errorf("%w: bad payload", services.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantKind:   kindValidation,
		},
		{
			name:       "permission denied",
			err:        &services.PermissionDeniedError{AgentKind: "research", Cap: 10, Count: 10},
			wantStatus: http.StatusForbidden,
			wantKind:   kindPermissionDenied,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: ticket abc", services.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantKind:   kindNotFound,
		},
		{
			name:       "substrate 404",
			err:        &substrate.APIError{StatusCode: 404, Message: "no such basket"},
			wantStatus: http.StatusNotFound,
			wantKind:   kindNotFound,
		},
		{
			name:       "conflict",
			err:        fmt.Errorf("%w: session busy", services.ErrConflict),
			wantStatus: http.StatusConflict,
			wantKind:   kindConflict,
		},
		{
			name:       "already exists",
			err:        fmt.Errorf("%w: project", services.ErrAlreadyExists),
			wantStatus: http.StatusConflict,
			wantKind:   kindConflict,
		},
		{
			name:       "substrate 409",
			err:        &substrate.APIError{StatusCode: 409, Message: "version conflict"},
			wantStatus: http.StatusConflict,
			wantKind:   kindConflict,
		},
		{
			name:       "substrate 5xx",
			err:        &substrate.APIError{StatusCode: 502, Message: "bad gateway"},
			wantStatus: http.StatusServiceUnavailable,
			wantKind:   kindSubstrateUnavailable,
		},
		{
			name:       "open circuit",
			err:        fmt.Errorf("listing outputs: %w", substrate.ErrCircuitOpen),
			wantStatus: http.StatusServiceUnavailable,
			wantKind:   kindSubstrateUnavailable,
		},
		{
			name:       "anything else",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   kindInternal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, detail := classifyError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantKind, detail.Kind)
			assert.NotEmpty(t, detail.Message)
		})
	}
}

func TestClassifyError_Details(t *testing.T) {
	t.Run("validation names the field", func(t *testing.T) {
		_, detail := classifyError(services.NewValidationError("work_mode", "required"))
		assert.Equal(t, "work_mode", detail.Details["field"])
	})

	t.Run("permission denial carries the quota numbers", func(t *testing.T) {
		_, detail := classifyError(&services.PermissionDeniedError{AgentKind: "research", Cap: 10, Count: 10})
		assert.Equal(t, 10, detail.Details["trial_cap"])
		assert.Equal(t, 10, detail.Details["trials_used"])
	})

	t.Run("internal errors never leak the cause", func(t *testing.T) {
		_, detail := classifyError(errors.New("pq: password authentication failed"))
		assert.Equal(t, "internal server error", detail.Message)
	})

	t.Run("not found hides the resource internals", func(t *testing.T) {
		_, detail := classifyError(fmt.Errorf("%w: ticket xyz", services.ErrNotFound))
		assert.Equal(t, "resource not found", detail.Message)
	})
}
