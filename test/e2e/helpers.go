package e2e

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/pkg/api"
	"github.com/cobbleworks/foundry/pkg/models"
	"github.com/cobbleworks/foundry/pkg/progress"
)

// errorEnvelope mirrors the API's error body. The platform's own type is
// unexported, so the tests decode into a local copy.
type errorEnvelope struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ────────────────────────────────────────────────────────────
// Tokens
// ────────────────────────────────────────────────────────────

// signUserToken mints an HS256 token shaped like the auth provider's.
func signUserToken(t *testing.T, userID string) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": userID + "@example.test",
		"iat":   jwt.NewNumericDate(now),
		"exp":   jwt.NewNumericDate(now.Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(e2eJWTSecret))
	require.NoError(t, err)
	return signed
}

// serviceToken authenticates as a trusted service caller.
func serviceToken() string { return e2eServiceKey }

// ────────────────────────────────────────────────────────────
// HTTP drivers
// ────────────────────────────────────────────────────────────

// request sends a JSON request with the given bearer token and returns the
// raw response.
func (app *TestApp) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, app.BaseURL+path, rdr)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.ts.Client().Do(req)
	require.NoError(t, err)
	return resp
}

// decode reads and closes the response body into v.
func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// readError decodes the error envelope of a non-2xx response.
func readError(t *testing.T, resp *http.Response) errorDetail {
	t.Helper()
	var envelope errorEnvelope
	decode(t, resp, &envelope)
	require.NotEmpty(t, envelope.Error.Kind, "response carried no error envelope")
	return envelope.Error
}

// Scaffold provisions a project through POST /api/projects/scaffold.
func (app *TestApp) Scaffold(t *testing.T, token string, req api.ScaffoldProjectRequest) models.ScaffoldResult {
	t.Helper()
	resp := app.request(t, http.MethodPost, "/api/projects/scaffold", token, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "scaffold: unexpected status")
	var out models.ScaffoldResult
	decode(t, resp, &out)
	return out
}

// QueueWork admits one request through POST /api/work/queue.
func (app *TestApp) QueueWork(t *testing.T, token string, body api.SubmitWorkRequest) api.WorkQueuedResponse {
	t.Helper()
	resp := app.request(t, http.MethodPost, "/api/work/queue", token, body)
	require.Equal(t, http.StatusAccepted, resp.StatusCode, "queue work: unexpected status")
	var out api.WorkQueuedResponse
	decode(t, resp, &out)
	return out
}

// GetTicket reads a ticket through the API.
func (app *TestApp) GetTicket(t *testing.T, token, ticketID string) api.TicketResponse {
	t.Helper()
	resp := app.request(t, http.MethodGet, "/api/work/tickets/"+ticketID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "get ticket: unexpected status")
	var out api.TicketResponse
	decode(t, resp, &out)
	return out
}

// ApproveOutput reviews an output through the supervision API and returns
// the raw result map (promoted, proposal_id and the updated output).
func (app *TestApp) ApproveOutput(t *testing.T, token, basketID, outputID string) map[string]any {
	t.Helper()
	path := "/api/supervision/baskets/" + basketID + "/outputs/" + outputID + "/approve"
	resp := app.request(t, http.MethodPost, path, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "approve output: unexpected status")
	var out map[string]any
	decode(t, resp, &out)
	return out
}

// ────────────────────────────────────────────────────────────
// State polling and seeding
// ────────────────────────────────────────────────────────────

// AwaitTicketStatus polls the ticket row until it reaches one of the
// expected statuses, returning the one observed.
func (app *TestApp) AwaitTicketStatus(t *testing.T, ticketID string, expected ...string) string {
	t.Helper()
	var actual string
	require.Eventually(t, func() bool {
		ticket, err := app.EntClient.WorkTicket.Get(context.Background(), ticketID)
		if err != nil {
			return false
		}
		actual = string(ticket.Status)
		for _, exp := range expected {
			if actual == exp {
				return true
			}
		}
		return false
	}, 30*time.Second, 100*time.Millisecond,
		"ticket %s did not reach status %v (last: %s)", ticketID, expected, actual)
	return actual
}

// TicketRow re-reads a ticket row directly.
func (app *TestApp) TicketRow(t *testing.T, ticketID string) *ent.WorkTicket {
	t.Helper()
	ticket, err := app.EntClient.WorkTicket.Get(context.Background(), ticketID)
	require.NoError(t, err)
	return ticket
}

// RequestRow re-reads a work request row directly.
func (app *TestApp) RequestRow(t *testing.T, requestID string) *ent.WorkRequest {
	t.Helper()
	request, err := app.EntClient.WorkRequest.Get(context.Background(), requestID)
	require.NoError(t, err)
	return request
}

// SeedTrialRequests inserts n consumed trial requests for the user, as if
// earlier work already spent part of the allowance.
func (app *TestApp) SeedTrialRequests(t *testing.T, userID, workspaceID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := app.EntClient.WorkRequest.Create().
			SetID(uuid.New().String()).
			SetUserID(userID).
			SetWorkspaceID(workspaceID).
			SetBasketID(uuid.New().String()).
			SetAgentKind(workrequest.AgentKindResearch).
			SetWorkMode("deep_dive").
			SetIsTrial(true).
			SetStatus(workrequest.StatusCompleted).
			Save(context.Background())
		require.NoError(t, err)
	}
}

// ReplayTrail reads the durable event trail for a ticket.
func (app *TestApp) ReplayTrail(t *testing.T, ticketID string) []progress.Event {
	t.Helper()
	trail, err := app.EventStore.ReplayTicket(context.Background(), ticketID)
	require.NoError(t, err)
	return trail
}

// ────────────────────────────────────────────────────────────
// SSE streaming
// ────────────────────────────────────────────────────────────

// StreamEvents opens the ticket's SSE stream and decodes data frames onto
// a channel. The channel closes when the server ends the stream.
func (app *TestApp) StreamEvents(t *testing.T, token, ticketID string) <-chan progress.Event {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, app.BaseURL+"/api/work/tickets/"+ticketID+"/stream", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.ts.Client().Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	ch := make(chan progress.Event, 64)
	go func() {
		defer close(ch)
		defer func() { _ = resp.Body.Close() }()
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			var ev progress.Event
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data:")), &ev); err != nil {
				continue
			}
			ch <- ev
		}
	}()
	return ch
}

// collectUntilTerminal drains the stream until a terminal frame arrives,
// returning everything seen including the terminal event.
func collectUntilTerminal(t *testing.T, ch <-chan progress.Event, within time.Duration) []progress.Event {
	t.Helper()
	deadline := time.After(within)
	var seen []progress.Event
	for {
		select {
		case ev, ok := <-ch:
			require.True(t, ok, "stream closed before a terminal frame (saw %d events)", len(seen))
			seen = append(seen, ev)
			if progress.Terminal(ev.Type) {
				return seen
			}
		case <-deadline:
			t.Fatalf("timed out waiting for a terminal frame (saw %d events)", len(seen))
			return nil
		}
	}
}

// expectStreamEnd asserts the server closes the stream without another
// frame.
func expectStreamEnd(t *testing.T, ch <-chan progress.Event, within time.Duration) {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.False(t, ok, "frame after terminal: %+v", ev)
	case <-time.After(within):
		t.Fatal("stream did not close after the terminal frame")
	}
}

// scaffoldBody returns a valid scaffold request for a fresh workspace.
func scaffoldBody(userID string) api.ScaffoldProjectRequest {
	return api.ScaffoldProjectRequest{
		UserID:      userID,
		WorkspaceID: uuid.New().String(),
		Name:        "Competitive teardown",
		Intent:      "Understand the competitive landscape for developer-workflow tooling.",
	}
}

// submitBody returns a valid work submission against the given basket.
func submitBody(userID, workspaceID, basketID string) api.SubmitWorkRequest {
	return api.SubmitWorkRequest{
		UserID:      userID,
		WorkspaceID: workspaceID,
		BasketID:    basketID,
		AgentKind:   "research",
		WorkMode:    "deep_dive",
		Task:        "Map the competitive landscape",
		Parameters:  map[string]any{"topic": "vector databases"},
	}
}
