package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/agent"
	"github.com/cobbleworks/foundry/pkg/masking"
	"github.com/cobbleworks/foundry/pkg/progress"
	"github.com/cobbleworks/foundry/pkg/services"
	"github.com/cobbleworks/foundry/pkg/substrate"
	"github.com/cobbleworks/foundry/pkg/tools"
)

// scriptedLLM returns canned responses in order. Not safe for concurrent
// use; the runtime calls Generate sequentially.
type scriptedLLM struct {
	responses []*agent.LLMResponse
	errs      []error
	calls     int
	captured  []*agent.GenerateInput
}

func (s *scriptedLLM) Generate(_ context.Context, input *agent.GenerateInput) (*agent.LLMResponse, error) {
	idx := s.calls
	s.calls++
	s.captured = append(s.captured, input)
	if idx < len(s.errs) && s.errs[idx] != nil {
		return nil, s.errs[idx]
	}
	if idx >= len(s.responses) {
		return nil, fmt.Errorf("no scripted response for turn %d", idx+1)
	}
	return s.responses[idx], nil
}

// fakeBasketService serves the substrate routes the executor and its tools
// touch, over httptest. Tests seed context and inspect written outputs.
type fakeBasketService struct {
	mu       sync.Mutex
	assets   []substrate.ReferenceAsset
	items    []substrate.ContextItem
	approved []substrate.WorkOutput
	created  []substrate.CreateWorkOutputInput
	down     bool

	server *httptest.Server
	client *substrate.Client
}

func newFakeBasketService(t *testing.T) *fakeBasketService {
	t.Helper()
	f := &fakeBasketService{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/baskets/{id}/reference-assets", f.listAssets)
	mux.HandleFunc("GET /api/baskets/{id}/context-items", f.listItems)
	mux.HandleFunc("GET /api/baskets/{id}/work-outputs", f.listOutputs)
	mux.HandleFunc("POST /api/baskets/{id}/work-outputs", f.createOutput)
	mux.HandleFunc("GET /files/{name}", f.serveFile)

	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		down := f.down
		f.mu.Unlock()
		if down && strings.HasPrefix(r.URL.Path, "/api/") {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"kind": "unavailable", "message": "substrate down"},
			})
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.server.Close)

	f.client = substrate.NewClient(substrate.Config{
		BaseURL:       f.server.URL,
		ServiceSecret: "svc-secret",
		Timeout:       5 * time.Second,
		Retry:         substrate.RetryConfig{MaxAttempts: 2, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond},
	})
	return f
}

func (f *fakeBasketService) listAssets(w http.ResponseWriter, r *http.Request) {
	agentKind := r.URL.Query().Get("agent_kind")
	ticketID := r.URL.Query().Get("ticket_id")

	f.mu.Lock()
	var items []substrate.ReferenceAsset
	for _, a := range f.assets {
		if agentKind != "" && a.AgentKind != agentKind {
			continue
		}
		if ticketID != "" && a.TicketID != ticketID {
			continue
		}
		items = append(items, a)
	}
	f.mu.Unlock()
	writeStubJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (f *fakeBasketService) listItems(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	itemType := r.URL.Query().Get("item_type")

	f.mu.Lock()
	var items []substrate.ContextItem
	for _, item := range f.items {
		if status != "" && item.Status != status {
			continue
		}
		if itemType != "" && item.ItemType != itemType {
			continue
		}
		items = append(items, item)
	}
	f.mu.Unlock()
	writeStubJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (f *fakeBasketService) listOutputs(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("supervision_status")

	f.mu.Lock()
	var items []substrate.WorkOutput
	for _, out := range f.approved {
		if status != "" && out.SupervisionStatus != status {
			continue
		}
		items = append(items, out)
	}
	f.mu.Unlock()
	writeStubJSON(w, http.StatusOK, substrate.WorkOutputPage{Items: items, Total: len(items)})
}

func (f *fakeBasketService) createOutput(w http.ResponseWriter, r *http.Request) {
	var in substrate.CreateWorkOutputInput
	_ = json.NewDecoder(r.Body).Decode(&in)

	f.mu.Lock()
	f.created = append(f.created, in)
	out := substrate.WorkOutput{
		ID:                fmt.Sprintf("wo-%d", len(f.created)),
		BasketID:          r.PathValue("id"),
		WorkTicketID:      in.WorkTicketID,
		AgentKind:         in.AgentKind,
		OutputType:        in.OutputType,
		Title:             in.Title,
		Confidence:        in.Confidence,
		SupervisionStatus: "pending_review",
	}
	f.mu.Unlock()
	writeStubJSON(w, http.StatusCreated, out)
}

func (f *fakeBasketService) serveFile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown")
	fmt.Fprintf(w, "## Context Envelope\n\nFocus on the %s segment.", r.PathValue("name"))
}

func (f *fakeBasketService) createdOutputs() []substrate.CreateWorkOutputInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]substrate.CreateWorkOutputInput, len(f.created))
	copy(out, f.created)
	return out
}

func writeStubJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newExecutor(f *queueFixture, fake *fakeBasketService, llm agent.LLMClient) *Executor {
	return NewExecutor(ExecutorDeps{
		Sessions:    f.registry,
		Requests:    f.recorder,
		Projects:    services.NewProjectService(f.client.Client),
		Substrate:   fake.client,
		LLM:         llm,
		Broadcaster: f.deps.Broadcaster,
	}, ExecutorConfig{
		Model:         "claude-sonnet-4-5",
		MaxTokens:     1024,
		MaxIterations: 6,
	})
}

func emitCall(id string, confidence float64) agent.ToolCall {
	args := fmt.Sprintf(`{"output_type":"finding","title":"Landscape map","body":{"summary":"five direct competitors"},"confidence":%.2f}`, confidence)
	return agent.ToolCall{ID: id, Name: tools.ToolEmitWorkOutput, Arguments: args}
}

func TestExecutor_RunCompletes(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()
	ticket := f.pendingTicket(t, 0)

	fake := newFakeBasketService(t)
	fake.assets = []substrate.ReferenceAsset{
		{ID: "ra-1", Title: "Q3 market scan", AgentKind: "research", MimeType: "text/plain"},
	}
	fake.items = []substrate.ContextItem{
		{ID: "ci-1", ItemType: "customer_profile", Title: "ICP v2", Tier: "working", Status: "active"},
	}
	fake.approved = []substrate.WorkOutput{
		{ID: "wo-prior", Title: "Prior findings", OutputType: "finding", Confidence: 0.9, SupervisionStatus: "approved"},
	}

	llm := &scriptedLLM{responses: []*agent.LLMResponse{
		{ToolCalls: []agent.ToolCall{emitCall("call-1", 0.9)}, SessionHandle: "prov-123"},
		{Text: "All findings recorded."},
	}}

	result := newExecutor(f, fake, llm).Execute(ctx, ticket)
	require.NotNil(t, result)
	assert.Equal(t, workticket.StatusCompleted, result.Status)
	assert.Equal(t, 1, result.OutputCount)
	assert.Equal(t, 2, result.Iterations)
	assert.Equal(t, "All findings recorded.", result.ResponseText)

	// The output landed on the substrate, stamped with the ticket.
	created := fake.createdOutputs()
	require.Len(t, created, 1)
	assert.Equal(t, ticket.ID, created[0].WorkTicketID)
	assert.Equal(t, "research", created[0].AgentKind)
	assert.Equal(t, "Landscape map", created[0].Title)

	// The assembled context reached the system prompt.
	require.NotEmpty(t, llm.captured)
	system := llm.captured[0].System
	assert.Contains(t, system, "Q3 market scan")
	assert.Contains(t, system, "ICP v2")
	assert.Contains(t, system, "Prior findings")

	// The conversation was persisted for the next run on this session.
	session, err := f.registry.Get(ctx, ticket.AgentSessionID)
	require.NoError(t, err)
	snap, err := f.registry.Snapshot(session)
	require.NoError(t, err)
	assert.Len(t, snap.Messages, 4) // task, tool call, tool result, answer
	assert.Equal(t, 2, snap.TurnCount)
	assert.Equal(t, "prov-123", snap.ProviderSessionID)

	// Runtime events were relayed onto the progress channel.
	events := f.ticketEvents(ticket.ID)
	types := make(map[string]progress.Event, len(events))
	for _, ev := range events {
		types[ev.Type] = ev
	}
	require.Contains(t, types, progress.EventToolStart)
	assert.Equal(t, tools.ToolEmitWorkOutput, types[progress.EventToolStart].StepName)
	require.Contains(t, types, progress.EventToolResult)
	assert.Contains(t, types[progress.EventToolResult].Payload["content"], "wo-1")
	require.Contains(t, types, progress.EventProgress)
	assert.Equal(t, "reasoning", types[progress.EventProgress].StepName)
}

func TestExecutor_CheckpointOnLowConfidence(t *testing.T) {
	f := newQueueFixture(t)
	ticket := f.pendingTicket(t, 0)
	fake := newFakeBasketService(t)

	llm := &scriptedLLM{responses: []*agent.LLMResponse{
		{ToolCalls: []agent.ToolCall{emitCall("call-1", 0.4)}},
		{Text: "Drafted with limited source data."},
	}}

	result := newExecutor(f, fake, llm).Execute(context.Background(), ticket)
	require.NotNil(t, result)
	assert.Equal(t, workticket.StatusPendingReview, result.Status)
	assert.Contains(t, result.CheckpointReason, "confidence")
	assert.Equal(t, 1, result.OutputCount)
	assert.NoError(t, result.Error)
}

func TestExecutor_SubstrateOutageFailsFast(t *testing.T) {
	f := newQueueFixture(t)
	ticket := f.pendingTicket(t, 0)

	fake := newFakeBasketService(t)
	fake.down = true

	llm := &scriptedLLM{}
	result := newExecutor(f, fake, llm).Execute(context.Background(), ticket)
	require.NotNil(t, result)
	assert.Equal(t, workticket.StatusFailed, result.Status)
	assert.Equal(t, ErrorKindSubstrateUnavailable, result.ErrorKind)
	assert.Error(t, result.Error)

	// No tokens were burned on a run that could not read or write context.
	assert.Zero(t, llm.calls)
}

func TestExecutor_ProviderErrorMapsToLLMError(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()
	ticket := f.pendingTicket(t, 0)
	fake := newFakeBasketService(t)

	llm := &scriptedLLM{errs: []error{
		&agent.ProviderError{StatusCode: 401, Message: "invalid api key"},
	}}

	result := newExecutor(f, fake, llm).Execute(ctx, ticket)
	require.NotNil(t, result)
	assert.Equal(t, workticket.StatusFailed, result.Status)
	assert.Equal(t, ErrorKindLLMError, result.ErrorKind)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "invalid api key")

	// The partial conversation still got persisted.
	session, err := f.registry.Get(ctx, ticket.AgentSessionID)
	require.NoError(t, err)
	snap, err := f.registry.Snapshot(session)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.Messages)
}

func TestExecutor_InjectsContextEnvelope(t *testing.T) {
	f := newQueueFixture(t)
	ticket := f.pendingTicket(t, 0)

	fake := newFakeBasketService(t)
	fake.assets = []substrate.ReferenceAsset{{
		ID:        "ra-env",
		Title:     "Context envelope",
		Filename:  "envelope.md",
		MimeType:  "text/markdown",
		SignedURL: fake.server.URL + "/files/enterprise",
		TicketID:  ticket.ID,
	}}

	llm := &scriptedLLM{responses: []*agent.LLMResponse{{Text: "Done."}}}

	result := newExecutor(f, fake, llm).Execute(context.Background(), ticket)
	require.NotNil(t, result)
	assert.Equal(t, workticket.StatusCompleted, result.Status)

	// The envelope rides the history as a user message ahead of the task.
	require.NotEmpty(t, llm.captured)
	messages := llm.captured[0].Messages
	require.GreaterOrEqual(t, len(messages), 2)
	envelope := messages[len(messages)-2]
	assert.Equal(t, agent.RoleUser, envelope.Role)
	assert.Contains(t, envelope.Content, "Context Envelope")
	assert.Contains(t, envelope.Content, "enterprise segment")
}

func TestExecutor_MasksAndTruncatesRelayedResults(t *testing.T) {
	f := newQueueFixture(t)
	ticket := f.pendingTicket(t, 0)

	fake := newFakeBasketService(t)
	fake.items = []substrate.ContextItem{{
		ID:       "ci-cred",
		ItemType: "integration_settings",
		Tier:     "working",
		Status:   "active",
		Content: map[string]any{
			"api_key": "sk_live_abcdef1234567890",
			"notes":   strings.Repeat("x", 3000),
		},
	}}

	readCall := agent.ToolCall{
		ID:        "call-1",
		Name:      tools.ToolReadContext,
		Arguments: `{"item_type":"integration_settings"}`,
	}
	llm := &scriptedLLM{responses: []*agent.LLMResponse{
		{ToolCalls: []agent.ToolCall{readCall}},
		{Text: "Settings reviewed."},
	}}

	exec := NewExecutor(ExecutorDeps{
		Sessions:    f.registry,
		Requests:    f.recorder,
		Projects:    services.NewProjectService(f.client.Client),
		Substrate:   fake.client,
		LLM:         llm,
		Broadcaster: f.deps.Broadcaster,
		Masker:      masking.NewService(nil),
	}, ExecutorConfig{MaxIterations: 4})

	result := exec.Execute(context.Background(), ticket)
	require.NotNil(t, result)
	assert.Equal(t, workticket.StatusCompleted, result.Status)

	var relayed *progress.Event
	for _, ev := range f.ticketEvents(ticket.ID) {
		if ev.Type == progress.EventToolResult {
			relayed = &ev
			break
		}
	}
	require.NotNil(t, relayed, "tool result was not relayed")

	content, _ := relayed.Payload["content"].(string)
	assert.NotContains(t, content, "sk_live_abcdef1234567890")
	assert.Contains(t, content, "__MASKED_API_KEY__")
	assert.LessOrEqual(t, len(content), maxRelayedResultChars+len(" [truncated]"))
	assert.True(t, strings.HasSuffix(content, " [truncated]"))

	// The LLM saw the full, unmasked result.
	require.GreaterOrEqual(t, len(llm.captured), 2)
	toolMsg := llm.captured[1].Messages[len(llm.captured[1].Messages)-1]
	assert.Equal(t, agent.RoleTool, toolMsg.Role)
	assert.Contains(t, toolMsg.Content, "sk_live_abcdef1234567890")
}

func TestSplitPayload(t *testing.T) {
	task, params, projectID := splitPayload(nil)
	assert.Empty(t, task)
	assert.Nil(t, params)
	assert.Empty(t, projectID)

	task, params, projectID = splitPayload(map[string]any{"task": "Do the thing"})
	assert.Equal(t, "Do the thing", task)
	assert.Nil(t, params)
	assert.Empty(t, projectID)

	task, params, projectID = splitPayload(map[string]any{
		"task":       "Analyze pricing",
		"project_id": "proj-1",
		"parameters": map[string]any{"region": "emea"},
		"extra":      42,
	})
	assert.Equal(t, "Analyze pricing", task)
	assert.Equal(t, map[string]any{"region": "emea"}, params)
	assert.Equal(t, "proj-1", projectID)
}
