package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/cobbleworks/foundry/pkg/services"
	"github.com/cobbleworks/foundry/pkg/substrate"
)

// RecordedProposal is one governance proposal the fake accepted.
type RecordedProposal struct {
	ID       string
	BasketID string
	Input    substrate.CreateProposalInput
}

// RecordedBlock is one direct block write the fake accepted.
type RecordedBlock struct {
	ID       string
	BasketID string
	Input    substrate.CreateBlockInput
}

// SubstrateFake is an in-memory substrate service behind httptest covering
// every route the platform client reaches: scaffolding, agent context
// assembly, output emission, supervision, and governance proposals.
// Fault injection and per-route hit counters support outage scenarios.
type SubstrateFake struct {
	mu sync.Mutex

	baskets      []substrate.Basket
	blocks       []RecordedBlock
	dumps        map[string]substrate.Dump // keyed by request_id
	dumpOrder    []string
	outputs      map[string]*substrate.WorkOutput
	proposals    []RecordedProposal
	contextItems map[string]substrate.ContextItem // keyed basket|type|key
	assets       map[string][]substrate.ReferenceAsset
	jobs         map[string]substrate.WorkJob

	nextBasketID string
	counter      int
	hits         map[string]int
	failOnce     map[string]int
	failAlways   map[string]int
	lastAuth     string

	server *httptest.Server
}

// NewSubstrateFake starts the fake; the server is closed via t.Cleanup.
func NewSubstrateFake(t *testing.T) *SubstrateFake {
	t.Helper()
	s := &SubstrateFake{
		dumps:        make(map[string]substrate.Dump),
		outputs:      make(map[string]*substrate.WorkOutput),
		contextItems: make(map[string]substrate.ContextItem),
		assets:       make(map[string][]substrate.ReferenceAsset),
		jobs:         make(map[string]substrate.WorkJob),
		hits:         make(map[string]int),
		failOnce:     make(map[string]int),
		failAlways:   make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.health)
	mux.HandleFunc("POST /api/baskets", s.createBasket)
	mux.HandleFunc("GET /api/baskets/{id}/blocks", s.listBlocks)
	mux.HandleFunc("POST /api/baskets/{id}/blocks", s.createBlock)
	mux.HandleFunc("POST /api/baskets/{id}/dumps", s.createDump)
	mux.HandleFunc("GET /api/baskets/{id}/work-outputs", s.listOutputs)
	mux.HandleFunc("POST /api/baskets/{id}/work-outputs", s.createOutput)
	mux.HandleFunc("POST /api/baskets/{id}/proposals", s.createProposal)
	mux.HandleFunc("GET /api/baskets/{id}/reference-assets", s.listAssets)
	mux.HandleFunc("GET /api/baskets/{id}/context-items", s.listContextItems)
	mux.HandleFunc("PUT /api/baskets/{id}/context-items", s.upsertContextItem)
	mux.HandleFunc("GET /api/work-outputs/{id}", s.getOutput)
	mux.HandleFunc("PATCH /api/work-outputs/{id}", s.updateOutput)
	mux.HandleFunc("POST /api/work-outputs/{id}/promoted", s.markPromoted)
	mux.HandleFunc("POST /api/work-outputs/{id}/skip-promotion", s.skipPromotion)
	mux.HandleFunc("POST /api/work", s.initiateWork)
	mux.HandleFunc("GET /api/work/{id}", s.getWork)

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.lastAuth = r.Header.Get("Authorization")
		s.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(s.server.Close)
	return s
}

// URL returns the fake's base URL for client construction.
func (s *SubstrateFake) URL() string { return s.server.URL }

// ────────────────────────────────────────────────────────────
// Fault injection and observation
// ────────────────────────────────────────────────────────────

// FailOnce makes the next request on the route answer with status.
func (s *SubstrateFake) FailOnce(method, route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOnce[method+" "+route] = status
}

// FailAlways makes every request on the route answer with status until
// cleared with ClearFailures.
func (s *SubstrateFake) FailAlways(method, route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAlways[method+" "+route] = status
}

// ClearFailures removes all injected failures.
func (s *SubstrateFake) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOnce = make(map[string]int)
	s.failAlways = make(map[string]int)
}

// Hits returns how many HTTP requests reached the route, including ones
// answered with injected failures.
func (s *SubstrateFake) Hits(method, route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[method+" "+route]
}

// intercept counts the request against its route and applies injected
// failures. Returns true when the request was consumed by a failure.
func (s *SubstrateFake) intercept(w http.ResponseWriter, r *http.Request, route string) bool {
	key := r.Method + " " + route
	s.mu.Lock()
	s.hits[key]++
	status, ok := s.failOnce[key]
	if ok {
		delete(s.failOnce, key)
	} else {
		status, ok = s.failAlways[key]
	}
	s.mu.Unlock()
	if !ok {
		return false
	}
	writeJSON(w, status, map[string]any{
		"error": map[string]any{"kind": "injected", "message": "injected failure"},
	})
	return true
}

// SetNextBasketID pins the ID returned by the next basket creation, so a
// test can stage database state keyed to a known basket.
func (s *SubstrateFake) SetNextBasketID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextBasketID = id
}

// LastAuthorization returns the Authorization header of the most recent
// request.
func (s *SubstrateFake) LastAuthorization() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAuth
}

// Baskets returns every basket created so far.
func (s *SubstrateFake) Baskets() []substrate.Basket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]substrate.Basket(nil), s.baskets...)
}

// Blocks returns every direct block write so far.
func (s *SubstrateFake) Blocks() []RecordedBlock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedBlock(nil), s.blocks...)
}

// Dumps returns every stored dump in creation order.
func (s *SubstrateFake) Dumps() []substrate.Dump {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]substrate.Dump, 0, len(s.dumpOrder))
	for _, id := range s.dumpOrder {
		out = append(out, s.dumps[id])
	}
	return out
}

// Proposals returns every governance proposal accepted so far.
func (s *SubstrateFake) Proposals() []RecordedProposal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedProposal(nil), s.proposals...)
}

// Output returns a stored work output by ID, or nil.
func (s *SubstrateFake) Output(id string) *substrate.WorkOutput {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, ok := s.outputs[id]
	if !ok {
		return nil
	}
	copied := *out
	return &copied
}

// OutputsForTicket returns the stored outputs emitted under one ticket.
func (s *SubstrateFake) OutputsForTicket(ticketID string) []substrate.WorkOutput {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []substrate.WorkOutput
	for _, o := range s.outputs {
		if o.WorkTicketID == ticketID {
			out = append(out, *o)
		}
	}
	return out
}

// SeedOutput stores a work output directly, bypassing HTTP.
func (s *SubstrateFake) SeedOutput(out substrate.WorkOutput) substrate.WorkOutput {
	s.mu.Lock()
	defer s.mu.Unlock()
	if out.ID == "" {
		out.ID = s.nextID("wo")
	}
	if out.SupervisionStatus == "" {
		out.SupervisionStatus = services.SupervisionPendingReview
	}
	if out.CreatedAt.IsZero() {
		out.CreatedAt = time.Now()
	}
	stored := out
	s.outputs[out.ID] = &stored
	return stored
}

// SeedAsset registers a reference asset for a basket.
func (s *SubstrateFake) SeedAsset(basketID string, asset substrate.ReferenceAsset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if asset.ID == "" {
		asset.ID = s.nextID("asset")
	}
	asset.BasketID = basketID
	s.assets[basketID] = append(s.assets[basketID], asset)
}

// ContextItem returns the stored item for (basket, itemType, itemKey).
func (s *SubstrateFake) ContextItem(basketID, itemType, itemKey string) (substrate.ContextItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.contextItems[contextKey(basketID, itemType, itemKey)]
	return item, ok
}

func contextKey(basketID, itemType, itemKey string) string {
	return basketID + "|" + itemType + "|" + itemKey
}

func (s *SubstrateFake) nextID(prefix string) string {
	s.counter++
	return fmt.Sprintf("%s-%d", prefix, s.counter)
}

// ────────────────────────────────────────────────────────────
// Handlers
// ────────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeNotFound(w http.ResponseWriter, what string) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error": map[string]any{"kind": "not_found", "message": what + " not found"},
	})
}

func (s *SubstrateFake) health(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/health") {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *SubstrateFake) createBasket(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/baskets") {
		return
	}
	var in substrate.CreateBasketInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	id := s.nextBasketID
	s.nextBasketID = ""
	if id == "" {
		id = s.nextID("basket")
	}
	basket := substrate.Basket{
		ID:          id,
		WorkspaceID: in.WorkspaceID,
		Name:        in.Name,
		Origin:      in.Origin,
		CreatedAt:   time.Now(),
	}
	s.baskets = append(s.baskets, basket)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, basket)
}

func (s *SubstrateFake) listBlocks(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/blocks") {
		return
	}
	basketID := r.PathValue("id")
	s.mu.Lock()
	var items []substrate.Block
	for _, b := range s.blocks {
		if b.BasketID != basketID {
			continue
		}
		items = append(items, substrate.Block{
			ID:           b.ID,
			BasketID:     b.BasketID,
			SemanticType: b.Input.SemanticType,
			AnchorRole:   b.Input.AnchorRole,
			Title:        b.Input.Title,
			Body:         b.Input.Body,
			Confidence:   b.Input.Confidence,
			State:        b.Input.State,
			Metadata:     b.Input.Metadata,
		})
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *SubstrateFake) createBlock(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/blocks") {
		return
	}
	var in substrate.CreateBlockInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	rec := RecordedBlock{ID: s.nextID("block"), BasketID: r.PathValue("id"), Input: in}
	s.blocks = append(s.blocks, rec)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, substrate.Block{
		ID:           rec.ID,
		BasketID:     rec.BasketID,
		SemanticType: in.SemanticType,
		AnchorRole:   in.AnchorRole,
		Title:        in.Title,
		Body:         in.Body,
		Confidence:   in.Confidence,
		State:        in.State,
	})
}

// createDump is idempotent on request_id: resubmitting the same content
// returns the original dump row.
func (s *SubstrateFake) createDump(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/dumps") {
		return
	}
	var in struct {
		RequestID string `json:"request_id"`
		Content   string `json:"content"`
	}
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	dump, ok := s.dumps[in.RequestID]
	if !ok {
		dump = substrate.Dump{
			ID:        s.nextID("dump"),
			BasketID:  r.PathValue("id"),
			RequestID: in.RequestID,
			CreatedAt: time.Now(),
		}
		s.dumps[in.RequestID] = dump
		s.dumpOrder = append(s.dumpOrder, in.RequestID)
	}
	s.mu.Unlock()
	if ok {
		writeJSON(w, http.StatusOK, dump)
		return
	}
	writeJSON(w, http.StatusCreated, dump)
}

func (s *SubstrateFake) listOutputs(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/work-outputs") {
		return
	}
	basketID := r.PathValue("id")
	q := r.URL.Query()
	status := q.Get("supervision_status")
	ticketID := q.Get("work_ticket_id")
	agentKind := q.Get("agent_kind")
	outputType := q.Get("output_type")
	limit, _ := strconv.Atoi(q.Get("limit"))

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
		if agentKind != "" && out.AgentKind != agentKind {
			continue
		}
		if outputType != "" && out.OutputType != outputType {
			continue
		}
		items = append(items, *out)
	}
	s.mu.Unlock()
	total := len(items)
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	writeJSON(w, http.StatusOK, substrate.WorkOutputPage{Items: items, Total: total})
}

func (s *SubstrateFake) createOutput(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/work-outputs") {
		return
	}
	var in substrate.CreateWorkOutputInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	out := substrate.WorkOutput{
		ID:                s.nextID("wo"),
		BasketID:          r.PathValue("id"),
		WorkTicketID:      in.WorkTicketID,
		AgentKind:         in.AgentKind,
		OutputType:        in.OutputType,
		Title:             in.Title,
		Body:              in.Body,
		Confidence:        in.Confidence,
		SourceContextIDs:  in.SourceContextIDs,
		ToolCallID:        in.ToolCallID,
		SupervisionStatus: services.SupervisionPendingReview,
		Metadata:          in.Metadata,
		CreatedAt:         time.Now(),
	}
	s.outputs[out.ID] = &out
	copied := out
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, copied)
}

func (s *SubstrateFake) createProposal(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/proposals") {
		return
	}
	var in substrate.CreateProposalInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	rec := RecordedProposal{ID: s.nextID("prop"), BasketID: r.PathValue("id"), Input: in}
	s.proposals = append(s.proposals, rec)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, substrate.Proposal{
		ID:        rec.ID,
		BasketID:  rec.BasketID,
		Status:    "pending",
		CreatedAt: time.Now(),
	})
}

func (s *SubstrateFake) listAssets(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/reference-assets") {
		return
	}
	basketID := r.PathValue("id")
	q := r.URL.Query()
	agentKind := q.Get("agent_kind")
	permanence := q.Get("permanence")

	s.mu.Lock()
	var items []substrate.ReferenceAsset
	for _, a := range s.assets[basketID] {
		if agentKind != "" && a.AgentKind != "" && a.AgentKind != agentKind {
			continue
		}
		if permanence != "" && a.Permanence != permanence {
			continue
		}
		items = append(items, a)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *SubstrateFake) listContextItems(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/context-items") {
		return
	}
	basketID := r.PathValue("id")
	q := r.URL.Query()
	itemType := q.Get("item_type")
	itemKey := q.Get("item_key")
	status := q.Get("status")

	s.mu.Lock()
	var items []substrate.ContextItem
	for _, item := range s.contextItems {
		if item.BasketID != basketID {
			continue
		}
		if itemType != "" && item.ItemType != itemType {
			continue
		}
		if itemKey != "" && item.ItemKey != itemKey {
			continue
		}
		if status != "" && item.Status != status {
			continue
		}
		items = append(items, item)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *SubstrateFake) upsertContextItem(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/context-items") {
		return
	}
	basketID := r.PathValue("id")
	var in substrate.UpsertContextItemInput
	_ = json.NewDecoder(r.Body).Decode(&in)

	s.mu.Lock()
	key := contextKey(basketID, in.ItemType, in.ItemKey)
	item, ok := s.contextItems[key]
	if !ok {
		item = substrate.ContextItem{ID: s.nextID("ctx"), BasketID: basketID}
	}
	item.ItemType = in.ItemType
	item.ItemKey = in.ItemKey
	item.Tier = in.Tier
	item.Title = in.Title
	item.Content = in.Content
	item.CompletenessScore = in.CompletenessScore
	item.Status = "active"
	item.UpdatedAt = time.Now()
	s.contextItems[key] = item
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, item)
}

func (s *SubstrateFake) getOutput(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/work-outputs/get") {
		return
	}
	s.mu.Lock()
	out, ok := s.outputs[r.PathValue("id")]
	if !ok {
		s.mu.Unlock()
		writeNotFound(w, "work output")
		return
	}
	copied := *out
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, copied)
}

func (s *SubstrateFake) updateOutput(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/work-outputs/update") {
		return
	}
	var in substrate.UpdateWorkOutputInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	out, ok := s.outputs[r.PathValue("id")]
	if !ok {
		s.mu.Unlock()
		writeNotFound(w, "work output")
		return
	}
	out.SupervisionStatus = in.SupervisionStatus
	if in.ReviewerNotes != "" {
		out.ReviewerNotes = in.ReviewerNotes
	}
	out.UpdatedAt = time.Now()
	copied := *out
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, copied)
}

func (s *SubstrateFake) markPromoted(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/promoted") {
		return
	}
	var in map[string]any
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	out, ok := s.outputs[r.PathValue("id")]
	if !ok {
		s.mu.Unlock()
		writeNotFound(w, "work output")
		return
	}
	out.SubstrateProposalID, _ = in["substrate_proposal_id"].(string)
	out.PromotionMethod, _ = in["promotion_method"].(string)
	out.UpdatedAt = time.Now()
	copied := *out
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, copied)
}

func (s *SubstrateFake) skipPromotion(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/skip-promotion") {
		return
	}
	var in map[string]any
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	out, ok := s.outputs[r.PathValue("id")]
	if !ok {
		s.mu.Unlock()
		writeNotFound(w, "work output")
		return
	}
	out.PromotionMethod = services.PromotionSkipped
	if reason, _ := in["reason"].(string); reason != "" {
		out.ReviewerNotes = reason
	}
	out.UpdatedAt = time.Now()
	copied := *out
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, copied)
}

func (s *SubstrateFake) initiateWork(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/work") {
		return
	}
	var in substrate.WorkJobInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	job := substrate.WorkJob{ID: s.nextID("job"), Kind: in.Kind, Status: "pending"}
	s.jobs[job.ID] = job
	s.mu.Unlock()
	writeJSON(w, http.StatusAccepted, job)
}

// getWork reports jobs as completed on first poll; document generation
// latency is not what these tests exercise.
func (s *SubstrateFake) getWork(w http.ResponseWriter, r *http.Request) {
	if s.intercept(w, r, "/work/get") {
		return
	}
	s.mu.Lock()
	job, ok := s.jobs[r.PathValue("id")]
	if !ok {
		s.mu.Unlock()
		writeNotFound(w, "work job")
		return
	}
	job.Status = "completed"
	job.Result = map[string]any{"document_id": job.ID + "-doc"}
	s.jobs[job.ID] = job
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, job)
}
