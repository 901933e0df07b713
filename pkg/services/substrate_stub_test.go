package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/cobbleworks/foundry/pkg/substrate"
)

// fakeSubstrate is an in-memory substrate service behind httptest, covering
// the routes the bridge and scaffolder hit. Tests seed outputs, inject
// per-route failures, and inspect what was written.
type fakeSubstrate struct {
	mu sync.Mutex

	outputs   map[string]*substrate.WorkOutput
	proposals []substrate.CreateProposalInput
	baskets   []substrate.CreateBasketInput
	blocks    []substrate.CreateBlockInput
	dumps     []map[string]any

	// failStatus maps "METHOD suffix" to a one-shot response status.
	failStatus map[string]int

	lastAuth string
	counter  int

	server *httptest.Server
	client *substrate.Client
}

func newFakeSubstrate(t *testing.T) *fakeSubstrate {
	t.Helper()
	f := &fakeSubstrate{
		outputs:    make(map[string]*substrate.WorkOutput),
		failStatus: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/baskets", f.createBasket)
	mux.HandleFunc("POST /api/baskets/{id}/blocks", f.createBlock)
	mux.HandleFunc("POST /api/baskets/{id}/dumps", f.createDump)
	mux.HandleFunc("GET /api/baskets/{id}/work-outputs", f.listOutputs)
	mux.HandleFunc("POST /api/baskets/{id}/proposals", f.createProposal)
	mux.HandleFunc("GET /api/work-outputs/{id}", f.getOutput)
	mux.HandleFunc("PATCH /api/work-outputs/{id}", f.updateOutput)
	mux.HandleFunc("POST /api/work-outputs/{id}/promoted", f.markPromoted)
	mux.HandleFunc("POST /api/work-outputs/{id}/skip-promotion", f.skipPromotion)

	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.lastAuth = r.Header.Get("Authorization")
		f.mu.Unlock()
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

func (f *fakeSubstrate) Client() *substrate.Client { return f.client }

// failOnce makes the next request matching method+suffix answer with the
// given status. Use non-retryable codes so a single shot is enough.
func (f *fakeSubstrate) failOnce(method, suffix string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failStatus[method+" "+suffix] = status
}

func (f *fakeSubstrate) shouldFail(w http.ResponseWriter, r *http.Request, suffix string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := r.Method + " " + suffix
	status, ok := f.failStatus[key]
	if !ok {
		return false
	}
	delete(f.failStatus, key)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"kind": "injected", "message": "injected failure"},
	})
	return true
}

func (f *fakeSubstrate) nextID(prefix string) string {
	f.counter++
	return fmt.Sprintf("%s-%d", prefix, f.counter)
}

func (f *fakeSubstrate) seedOutput(out substrate.WorkOutput) *substrate.WorkOutput {
	f.mu.Lock()
	defer f.mu.Unlock()
	if out.ID == "" {
		out.ID = f.nextID("wo")
	}
	if out.SupervisionStatus == "" {
		out.SupervisionStatus = SupervisionPendingReview
	}
	stored := out
	f.outputs[out.ID] = &stored
	return &stored
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeSubstrate) createBasket(w http.ResponseWriter, r *http.Request) {
	if f.shouldFail(w, r, "/baskets") {
		return
	}
	var in substrate.CreateBasketInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	f.mu.Lock()
	f.baskets = append(f.baskets, in)
	basket := substrate.Basket{
		ID:          f.nextID("basket"),
		WorkspaceID: in.WorkspaceID,
		Name:        in.Name,
		Origin:      in.Origin,
		CreatedAt:   time.Now(),
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusCreated, basket)
}

func (f *fakeSubstrate) createBlock(w http.ResponseWriter, r *http.Request) {
	if f.shouldFail(w, r, "/blocks") {
		return
	}
	var in substrate.CreateBlockInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	f.mu.Lock()
	f.blocks = append(f.blocks, in)
	block := substrate.Block{
		ID:           f.nextID("block"),
		BasketID:     r.PathValue("id"),
		SemanticType: in.SemanticType,
		AnchorRole:   in.AnchorRole,
		Title:        in.Title,
		Body:         in.Body,
		Confidence:   in.Confidence,
		State:        in.State,
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusCreated, block)
}

func (f *fakeSubstrate) createDump(w http.ResponseWriter, r *http.Request) {
	if f.shouldFail(w, r, "/dumps") {
		return
	}
	var in map[string]any
	_ = json.NewDecoder(r.Body).Decode(&in)
	f.mu.Lock()
	f.dumps = append(f.dumps, in)
	requestID, _ := in["request_id"].(string)
	dump := substrate.Dump{
		ID:        f.nextID("dump"),
		BasketID:  r.PathValue("id"),
		RequestID: requestID,
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusCreated, dump)
}

func (f *fakeSubstrate) listOutputs(w http.ResponseWriter, r *http.Request) {
	if f.shouldFail(w, r, "/work-outputs") {
		return
	}
	basketID := r.PathValue("id")
	status := r.URL.Query().Get("supervision_status")
	outputType := r.URL.Query().Get("output_type")

	f.mu.Lock()
	var items []substrate.WorkOutput
	for _, out := range f.outputs {
		if out.BasketID != basketID {
			continue
		}
		if status != "" && out.SupervisionStatus != status {
			continue
		}
		if outputType != "" && out.OutputType != outputType {
			continue
		}
		items = append(items, *out)
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, substrate.WorkOutputPage{Items: items, Total: len(items)})
}

func (f *fakeSubstrate) createProposal(w http.ResponseWriter, r *http.Request) {
	if f.shouldFail(w, r, "/proposals") {
		return
	}
	var in substrate.CreateProposalInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	f.mu.Lock()
	f.proposals = append(f.proposals, in)
	proposal := substrate.Proposal{
		ID:       f.nextID("prop"),
		BasketID: r.PathValue("id"),
		Status:   "pending",
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusCreated, proposal)
}

func (f *fakeSubstrate) getOutput(w http.ResponseWriter, r *http.Request) {
	if f.shouldFail(w, r, "/work-outputs/get") {
		return
	}
	f.mu.Lock()
	out, ok := f.outputs[r.PathValue("id")]
	if !ok {
		f.mu.Unlock()
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error": map[string]any{"kind": "not_found", "message": "work output not found"},
		})
		return
	}
	copied := *out
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, copied)
}

func (f *fakeSubstrate) updateOutput(w http.ResponseWriter, r *http.Request) {
	if f.shouldFail(w, r, "/work-outputs/update") {
		return
	}
	var in substrate.UpdateWorkOutputInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	f.mu.Lock()
	out, ok := f.outputs[r.PathValue("id")]
	if !ok {
		f.mu.Unlock()
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error": map[string]any{"kind": "not_found", "message": "work output not found"},
		})
		return
	}
	out.SupervisionStatus = in.SupervisionStatus
	if in.ReviewerNotes != "" {
		out.ReviewerNotes = in.ReviewerNotes
	}
	copied := *out
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, copied)
}

func (f *fakeSubstrate) markPromoted(w http.ResponseWriter, r *http.Request) {
	if f.shouldFail(w, r, "/promoted") {
		return
	}
	var in map[string]any
	_ = json.NewDecoder(r.Body).Decode(&in)
	f.mu.Lock()
	out, ok := f.outputs[r.PathValue("id")]
	if !ok {
		f.mu.Unlock()
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error": map[string]any{"kind": "not_found", "message": "work output not found"},
		})
		return
	}
	out.SubstrateProposalID, _ = in["substrate_proposal_id"].(string)
	out.PromotionMethod, _ = in["promotion_method"].(string)
	copied := *out
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, copied)
}

func (f *fakeSubstrate) skipPromotion(w http.ResponseWriter, r *http.Request) {
	if f.shouldFail(w, r, "/skip-promotion") {
		return
	}
	f.mu.Lock()
	out, ok := f.outputs[r.PathValue("id")]
	if !ok {
		f.mu.Unlock()
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error": map[string]any{"kind": "not_found", "message": "work output not found"},
		})
		return
	}
	out.PromotionMethod = PromotionSkipped
	copied := *out
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, copied)
}
