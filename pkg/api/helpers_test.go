package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/config"
	"github.com/cobbleworks/foundry/pkg/database"
	"github.com/cobbleworks/foundry/pkg/events"
	"github.com/cobbleworks/foundry/pkg/progress"
	"github.com/cobbleworks/foundry/pkg/queue"
	"github.com/cobbleworks/foundry/pkg/services"
	"github.com/cobbleworks/foundry/pkg/substrate"
	testdb "github.com/cobbleworks/foundry/test/database"
)

const (
	testJWTSecret  = "api-test-jwt-secret"
	testServiceKey = "api-test-service-role-key"
	testTrialCap   = 3
	testPublicURL  = "http://platform.test"
)

// apiFixture hosts the full HTTP stack over one test database: real
// middleware and services, with the substrate and the executor stubbed.
type apiFixture struct {
	t      *testing.T
	client *database.Client
	cfg    *config.Config
	hub    *progress.Hub
	deps   queue.Deps
	store  *events.Store
	sub    *stubSubstrate
	exec   *stubExecutor
	ts     *httptest.Server
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	sub := newStubSubstrate(t)

	hub := progress.NewHub()
	store := events.NewStore(client.Client)

	tickets := services.NewTicketService(client.Client)
	recorder := services.NewWorkRequestRecorder(client.Client)
	registry := services.NewSessionRegistry(client.Client)
	projects := services.NewProjectService(client.Client)
	gate := services.NewQuotaGate(client.Client, testTrialCap)

	deps := queue.Deps{
		Client:      client.Client,
		Tickets:     tickets,
		Requests:    recorder,
		Sessions:    registry,
		Broadcaster: events.NewBroadcaster(hub, nil, nil),
		Warnings:    services.NewSystemWarningsService(),
	}

	qcfg := config.DefaultQueueConfig()
	qcfg.TicketTimeout = 5 * time.Second
	qcfg.HeartbeatInterval = 25 * time.Millisecond

	exec := &stubExecutor{}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", PublicURL: testPublicURL},
		Auth: config.AuthConfig{
			JWTSecret:      testJWTSecret,
			ServiceRoleKey: testServiceKey,
		},
		Quota: config.QuotaConfig{TrialRequestCap: testTrialCap},
		Queue: qcfg,
	}

	srv := NewServer(cfg, ServerDeps{
		DB:         client,
		Scaffolder: services.NewScaffolder(sub.Client(), gate, recorder, registry, projects),
		Admission:  services.NewAdmissionService(gate, recorder, registry, tickets),
		Bridge:     services.NewSupervisionBridge(sub.Client(), projects, nil),
		Tickets:    tickets,
		Inline:     queue.NewInlineRunner("api-test-pod", deps, qcfg, exec),
		Hub:        hub,
		EventStore: store,
		Warnings:   deps.Warnings,
	})

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &apiFixture{
		t:      t,
		client: client,
		cfg:    cfg,
		hub:    hub,
		deps:   deps,
		store:  store,
		sub:    sub,
		exec:   exec,
		ts:     ts,
	}
}

// signUserToken mints an HS256 token shaped like the auth provider's.
func signUserToken(t *testing.T, userID, email string) string {
	t.Helper()
	now := time.Now()
	claims := userClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

// request sends a JSON request with the given bearer token.
func (f *apiFixture) request(method, path, token string, body any) *http.Response {
	f.t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(f.t, err)
		rdr = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, f.ts.URL+path, rdr)
	require.NoError(f.t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := f.ts.Client().Do(req)
	require.NoError(f.t, err)
	return resp
}

// decode reads and closes the response body into v.
func (f *apiFixture) decode(resp *http.Response, v any) {
	f.t.Helper()
	defer resp.Body.Close()
	require.NoError(f.t, json.NewDecoder(resp.Body).Decode(v))
}

// readError decodes the error envelope of a non-2xx response.
func (f *apiFixture) readError(resp *http.Response) errorDetail {
	f.t.Helper()
	var envelope errorEnvelope
	f.decode(resp, &envelope)
	require.NotEmpty(f.t, envelope.Error.Kind, "response carried no error envelope")
	return envelope.Error
}

// submitBody is a valid work submission for a fresh basket.
func submitBody() SubmitWorkRequest {
	return SubmitWorkRequest{
		WorkspaceID: uuid.New().String(),
		BasketID:    uuid.New().String(),
		AgentKind:   "research",
		WorkMode:    "deep_dive",
		Task:        "Map the competitive landscape",
		Parameters:  map[string]any{"topic": "vector databases"},
	}
}

// queueWork admits one request through POST /api/work/queue.
func (f *apiFixture) queueWork(t *testing.T, token string, body SubmitWorkRequest) WorkQueuedResponse {
	t.Helper()
	resp := f.request(http.MethodPost, "/api/work/queue", token, body)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	var out WorkQueuedResponse
	f.decode(resp, &out)
	return out
}

// seedTrialRequests inserts n consumed trial requests for the user.
func (f *apiFixture) seedTrialRequests(t *testing.T, userID, workspaceID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := f.client.WorkRequest.Create().
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

// getTicket re-reads a ticket row.
func (f *apiFixture) getTicket(t *testing.T, ticketID string) *ent.WorkTicket {
	t.Helper()
	ticket, err := f.client.WorkTicket.Get(context.Background(), ticketID)
	require.NoError(t, err)
	return ticket
}

// finishTicket moves a ticket to the given terminal status with metadata,
// as the worker's finalizer would.
func (f *apiFixture) finishTicket(t *testing.T, ticketID string, status workticket.Status, meta map[string]any) {
	t.Helper()
	builder := f.client.WorkTicket.UpdateOneID(ticketID).
		SetStatus(status).
		SetEndedAt(time.Now())
	if meta != nil {
		builder.SetTicketMetadata(meta)
	}
	_, err := builder.Save(context.Background())
	require.NoError(t, err)
}

// storeEvent persists one work event row in the durable trail.
func (f *apiFixture) storeEvent(t *testing.T, ticketID string, ev progress.Event) {
	t.Helper()
	builder := f.client.WorkEvent.Create().
		SetTicketID(ticketID).
		SetEventType(ev.Type).
		SetCreatedAt(time.Now())
	if ev.StepName != "" {
		builder.SetStepName(ev.StepName)
	}
	if ev.Status != "" {
		builder.SetStatus(ev.Status)
	}
	if ev.Payload != nil {
		builder.SetPayload(ev.Payload)
	}
	_, err := builder.Save(context.Background())
	require.NoError(t, err)
}

// sseStream opens the ticket stream and decodes its data frames onto a
// channel. The channel closes when the server ends the stream.
func (f *apiFixture) sseStream(t *testing.T, ticketID, token string) <-chan progress.Event {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, f.ts.URL+"/api/work/tickets/"+ticketID+"/stream", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.ts.Client().Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	ch := make(chan progress.Event, 32)
	go func() {
		defer close(ch)
		defer resp.Body.Close()
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

// nextFrame waits for one stream frame.
func nextFrame(t *testing.T, ch <-chan progress.Event, within time.Duration) progress.Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "stream closed before the expected frame")
		return ev
	case <-time.After(within):
		t.Fatal("timed out waiting for a stream frame")
		return progress.Event{}
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

// stubExecutor runs inline tickets for handler tests. Execute records
// the ticket and returns the scripted run when one is set, defaulting to
// a one-output completion.
type stubExecutor struct {
	mu  sync.Mutex
	ran []string
	run func(ctx context.Context, ticket *ent.WorkTicket) *queue.ExecutionResult
}

func (s *stubExecutor) Execute(ctx context.Context, ticket *ent.WorkTicket) *queue.ExecutionResult {
	s.mu.Lock()
	s.ran = append(s.ran, ticket.ID)
	run := s.run
	s.mu.Unlock()

	if run != nil {
		return run(ctx, ticket)
	}
	return &queue.ExecutionResult{
		Status:       workticket.StatusCompleted,
		ResponseText: "done",
		OutputCount:  1,
	}
}

func (s *stubExecutor) setRun(fn func(ctx context.Context, ticket *ent.WorkTicket) *queue.ExecutionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.run = fn
}

func (s *stubExecutor) ranTickets() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ran...)
}

// stubSubstrate is an in-memory substrate service behind httptest,
// covering the routes the handlers reach through the scaffolder and the
// supervision bridge.
type stubSubstrate struct {
	mu sync.Mutex

	outputs  map[string]*substrate.WorkOutput
	baskets  []substrate.CreateBasketInput
	blocks   []substrate.CreateBlockInput
	dumps    []map[string]any
	promoted []string

	// failStatus maps "METHOD suffix" to a one-shot response status.
	failStatus map[string]int

	lastAuth string
	counter  int

	server *httptest.Server
	client *substrate.Client
}

func newStubSubstrate(t *testing.T) *stubSubstrate {
	t.Helper()
	s := &stubSubstrate{
		outputs:    make(map[string]*substrate.WorkOutput),
		failStatus: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/baskets", s.createBasket)
	mux.HandleFunc("POST /api/baskets/{id}/blocks", s.createBlock)
	mux.HandleFunc("POST /api/baskets/{id}/dumps", s.createDump)
	mux.HandleFunc("GET /api/baskets/{id}/work-outputs", s.listOutputs)
	mux.HandleFunc("POST /api/baskets/{id}/proposals", s.createProposal)
	mux.HandleFunc("GET /api/work-outputs/{id}", s.getOutput)
	mux.HandleFunc("PATCH /api/work-outputs/{id}", s.updateOutput)
	mux.HandleFunc("POST /api/work-outputs/{id}/promoted", s.markPromoted)
	mux.HandleFunc("POST /api/work-outputs/{id}/skip-promotion", s.skipPromotion)

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.lastAuth = r.Header.Get("Authorization")
		s.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(s.server.Close)

	s.client = substrate.NewClient(substrate.Config{
		BaseURL:       s.server.URL,
		ServiceSecret: "svc-secret",
		Timeout:       5 * time.Second,
		Retry:         substrate.RetryConfig{MaxAttempts: 2, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond},
	})
	return s
}

func (s *stubSubstrate) Client() *substrate.Client { return s.client }

// failOnce makes the next request matching method+suffix answer with the
// given status. Use non-retryable codes so a single shot is enough.
func (s *stubSubstrate) failOnce(method, suffix string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus[method+" "+suffix] = status
}

func (s *stubSubstrate) shouldFail(w http.ResponseWriter, r *http.Request, suffix string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := r.Method + " " + suffix
	status, ok := s.failStatus[key]
	if !ok {
		return false
	}
	delete(s.failStatus, key)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"kind": "injected", "message": "injected failure"},
	})
	return true
}

func (s *stubSubstrate) nextID(prefix string) string {
	s.counter++
	return fmt.Sprintf("%s-%d", prefix, s.counter)
}

func (s *stubSubstrate) seedOutput(out substrate.WorkOutput) *substrate.WorkOutput {
	s.mu.Lock()
	defer s.mu.Unlock()
	if out.ID == "" {
		out.ID = s.nextID("wo")
	}
	if out.SupervisionStatus == "" {
		out.SupervisionStatus = services.SupervisionPendingReview
	}
	stored := out
	s.outputs[out.ID] = &stored
	return &stored
}

func (s *stubSubstrate) lastAuthorization() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAuth
}

func stubWriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func stubNotFound(w http.ResponseWriter) {
	stubWriteJSON(w, http.StatusNotFound, map[string]any{
		"error": map[string]any{"kind": "not_found", "message": "work output not found"},
	})
}

func (s *stubSubstrate) createBasket(w http.ResponseWriter, r *http.Request) {
	if s.shouldFail(w, r, "/baskets") {
		return
	}
	var in substrate.CreateBasketInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	s.baskets = append(s.baskets, in)
	basket := substrate.Basket{
		ID:          s.nextID("basket"),
		WorkspaceID: in.WorkspaceID,
		Name:        in.Name,
		Origin:      in.Origin,
		CreatedAt:   time.Now(),
	}
	s.mu.Unlock()
	stubWriteJSON(w, http.StatusCreated, basket)
}

func (s *stubSubstrate) createBlock(w http.ResponseWriter, r *http.Request) {
	if s.shouldFail(w, r, "/blocks") {
		return
	}
	var in substrate.CreateBlockInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	s.blocks = append(s.blocks, in)
	block := substrate.Block{
		ID:           s.nextID("block"),
		BasketID:     r.PathValue("id"),
		SemanticType: in.SemanticType,
		AnchorRole:   in.AnchorRole,
		Title:        in.Title,
		Body:         in.Body,
	}
	s.mu.Unlock()
	stubWriteJSON(w, http.StatusCreated, block)
}

func (s *stubSubstrate) createDump(w http.ResponseWriter, r *http.Request) {
	if s.shouldFail(w, r, "/dumps") {
		return
	}
	var in map[string]any
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	s.dumps = append(s.dumps, in)
	requestID, _ := in["request_id"].(string)
	dump := substrate.Dump{
		ID:        s.nextID("dump"),
		BasketID:  r.PathValue("id"),
		RequestID: requestID,
	}
	s.mu.Unlock()
	stubWriteJSON(w, http.StatusCreated, dump)
}

func (s *stubSubstrate) listOutputs(w http.ResponseWriter, r *http.Request) {
	if s.shouldFail(w, r, "/work-outputs") {
		return
	}
	basketID := r.PathValue("id")
	q := r.URL.Query()
	status := q.Get("supervision_status")
	ticketID := q.Get("work_ticket_id")

	s.mu.Lock()
	var items []substrate.WorkOutput
	for _, out := range s.outputs {
		if out.BasketID != basketID {
			continue
		}
		if status != "" && out.SupervisionStatus != status {
			continue
		}
		if ticketID != "" && out.WorkTicketID != ticketID {
			continue
		}
		items = append(items, *out)
	}
	s.mu.Unlock()
	stubWriteJSON(w, http.StatusOK, substrate.WorkOutputPage{Items: items, Total: len(items)})
}

func (s *stubSubstrate) createProposal(w http.ResponseWriter, r *http.Request) {
	if s.shouldFail(w, r, "/proposals") {
		return
	}
	var in substrate.CreateProposalInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	proposal := substrate.Proposal{
		ID:       s.nextID("prop"),
		BasketID: r.PathValue("id"),
		Status:   "pending",
	}
	s.mu.Unlock()
	stubWriteJSON(w, http.StatusCreated, proposal)
}

func (s *stubSubstrate) getOutput(w http.ResponseWriter, r *http.Request) {
	if s.shouldFail(w, r, "/work-outputs/get") {
		return
	}
	s.mu.Lock()
	out, ok := s.outputs[r.PathValue("id")]
	if !ok {
		s.mu.Unlock()
		stubNotFound(w)
		return
	}
	copied := *out
	s.mu.Unlock()
	stubWriteJSON(w, http.StatusOK, copied)
}

func (s *stubSubstrate) updateOutput(w http.ResponseWriter, r *http.Request) {
	if s.shouldFail(w, r, "/work-outputs/update") {
		return
	}
	var in substrate.UpdateWorkOutputInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	out, ok := s.outputs[r.PathValue("id")]
	if !ok {
		s.mu.Unlock()
		stubNotFound(w)
		return
	}
	out.SupervisionStatus = in.SupervisionStatus
	if in.ReviewerNotes != "" {
		out.ReviewerNotes = in.ReviewerNotes
	}
	copied := *out
	s.mu.Unlock()
	stubWriteJSON(w, http.StatusOK, copied)
}

func (s *stubSubstrate) markPromoted(w http.ResponseWriter, r *http.Request) {
	if s.shouldFail(w, r, "/promoted") {
		return
	}
	var in map[string]any
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	out, ok := s.outputs[r.PathValue("id")]
	if !ok {
		s.mu.Unlock()
		stubNotFound(w)
		return
	}
	out.SubstrateProposalID, _ = in["substrate_proposal_id"].(string)
	out.PromotionMethod, _ = in["promotion_method"].(string)
	s.promoted = append(s.promoted, out.ID)
	copied := *out
	s.mu.Unlock()
	stubWriteJSON(w, http.StatusOK, copied)
}

func (s *stubSubstrate) skipPromotion(w http.ResponseWriter, r *http.Request) {
	if s.shouldFail(w, r, "/skip-promotion") {
		return
	}
	var in map[string]any
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	out, ok := s.outputs[r.PathValue("id")]
	if !ok {
		s.mu.Unlock()
		stubNotFound(w)
		return
	}
	out.PromotionMethod = services.PromotionSkipped
	if notes, _ := in["notes"].(string); notes != "" {
		out.ReviewerNotes = notes
	}
	copied := *out
	s.mu.Unlock()
	stubWriteJSON(w, http.StatusOK, copied)
}
