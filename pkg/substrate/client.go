// Package substrate implements the outbound HTTP gateway to the substrate
// service. All knowledge-store reads and mutations go through this client:
// bearer auth (user JWT preferred, service secret fallback), bounded retries
// with exponential backoff, and a process-wide circuit breaker.
package substrate

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds substrate client configuration.
type Config struct {
	BaseURL       string
	ServiceSecret string
	Timeout       time.Duration
	Breaker       BreakerConfig
	Retry         RetryConfig
}

// LoadConfigFromEnv loads substrate client configuration from environment
// variables.
func LoadConfigFromEnv() Config {
	cfg := Config{
		BaseURL:       getEnvOrDefault("SUBSTRATE_API_URL", "http://localhost:8788"),
		ServiceSecret: os.Getenv("SUBSTRATE_SERVICE_SECRET"),
		Timeout:       time.Duration(getEnvInt("SUBSTRATE_TIMEOUT_SECONDS", 30)) * time.Second,
		Breaker:       DefaultBreakerConfig(),
		Retry:         DefaultRetryConfig(),
	}
	cfg.Breaker.FailureThreshold = getEnvInt("CB_FAILURE_THRESHOLD", cfg.Breaker.FailureThreshold)
	cfg.Breaker.Cooldown = time.Duration(getEnvInt("CB_COOLDOWN_SECONDS", int(cfg.Breaker.Cooldown/time.Second))) * time.Second
	cfg.Breaker.ProbeBudget = getEnvInt("CB_HALF_OPEN_PROBES", cfg.Breaker.ProbeBudget)
	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

// Client is the substrate HTTP client. The connection pool and circuit
// breaker are shared across all requesters, including token-scoped copies.
type Client struct {
	baseURL       string
	serviceSecret string
	token         string

	httpClient *http.Client
	breaker    *Breaker
	retry      RetryConfig
}

// NewClient creates a substrate client from config.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:       cfg.BaseURL,
		serviceSecret: cfg.ServiceSecret,
		httpClient:    &http.Client{Timeout: timeout},
		breaker:       NewBreaker(cfg.Breaker),
		retry:         cfg.Retry,
	}
}

// WithToken returns a copy of the client authenticating as the given user
// token. The copy shares the pool, breaker, and retry tuning. An empty token
// returns the receiver unchanged.
func (c *Client) WithToken(token string) *Client {
	if token == "" {
		return c
	}
	scoped := *c
	scoped.token = token
	return &scoped
}

// BreakerState exposes the circuit state for health reporting.
func (c *Client) BreakerState() string {
	return c.breaker.State()
}

func (c *Client) bearer() string {
	if c.token != "" {
		return c.token
	}
	return c.serviceSecret
}

// do runs one substrate operation: breaker admission, retried HTTP exchange,
// JSON decode into out (when non-nil), breaker outcome recording.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
	}

	if err := c.breaker.Allow(); err != nil {
		return err
	}

	// Decoding happens after the retry loop so a malformed 2xx body is never
	// retried; the request already succeeded server-side.
	var raw []byte
	err := doWithRetry(ctx, c.retry, func() error {
		var exchErr error
		raw, exchErr = c.exchange(ctx, method, path, query, payload, out != nil)
		return exchErr
	})
	if err != nil {
		c.breaker.RecordFailure()
		return err
	}
	c.breaker.RecordSuccess()

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) exchange(ctx context.Context, method, path string, query url.Values, payload []byte, wantBody bool) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("substrate %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp)
	}

	if !wantBody {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}
	return raw, nil
}

// decodeAPIError reads a non-2xx body into an APIError. The substrate error
// envelope is {"error": {"kind", "message"}}; anything else keeps the raw
// body as the message, truncated.
func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var envelope struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Kind:       envelope.Error.Kind,
			Message:    envelope.Error.Message,
		}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    string(raw),
	}
}

// Health probes substrate liveness.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil, nil)
}

// CreateBasket creates a substrate container.
func (c *Client) CreateBasket(ctx context.Context, in CreateBasketInput) (*Basket, error) {
	var basket Basket
	if err := c.do(ctx, http.MethodPost, "/api/baskets", nil, in, &basket); err != nil {
		return nil, err
	}
	return &basket, nil
}

// GetBasketBlocks lists mature blocks in a basket.
func (c *Client) GetBasketBlocks(ctx context.Context, basketID string, f BlockFilter) ([]Block, error) {
	q := url.Values{}
	if f.State != "" {
		q.Set("state", f.State)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	var page struct {
		Items []Block `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/baskets/"+basketID+"/blocks", q, nil, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// CreateBlock writes a block directly, bypassing governance. Reserved for
// the scaffolder's foundational intent anchor.
func (c *Client) CreateBlock(ctx context.Context, basketID string, in CreateBlockInput) (*Block, error) {
	var block Block
	if err := c.do(ctx, http.MethodPost, "/api/baskets/"+basketID+"/blocks", nil, in, &block); err != nil {
		return nil, err
	}
	return &block, nil
}

// DumpRequestID derives the idempotency key for a dump from the content
// bytes, so duplicate submissions produce a single substrate row.
func DumpRequestID(basketID, content string) string {
	sum := sha256.Sum256([]byte(basketID + "\x00" + content))
	return hex.EncodeToString(sum[:])
}

// CreateDump creates an idempotent raw input. Submitting the same content
// twice returns the same dump.
func (c *Client) CreateDump(ctx context.Context, basketID, content string, meta map[string]any) (*Dump, error) {
	in := map[string]any{
		"request_id": DumpRequestID(basketID, content),
		"content":    content,
	}
	if len(meta) > 0 {
		in["metadata"] = meta
	}
	var dump Dump
	if err := c.do(ctx, http.MethodPost, "/api/baskets/"+basketID+"/dumps", nil, in, &dump); err != nil {
		return nil, err
	}
	return &dump, nil
}

// CreateWorkOutput persists an agent-emitted artifact.
func (c *Client) CreateWorkOutput(ctx context.Context, basketID string, in CreateWorkOutputInput) (*WorkOutput, error) {
	var out WorkOutput
	if err := c.do(ctx, http.MethodPost, "/api/baskets/"+basketID+"/work-outputs", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWorkOutputs pages through a basket's outputs.
func (c *Client) ListWorkOutputs(ctx context.Context, basketID string, f OutputFilter) (*WorkOutputPage, error) {
	q := url.Values{}
	if f.TicketID != "" {
		q.Set("work_ticket_id", f.TicketID)
	}
	if f.SupervisionStatus != "" {
		q.Set("supervision_status", f.SupervisionStatus)
	}
	if f.AgentKind != "" {
		q.Set("agent_kind", f.AgentKind)
	}
	if f.OutputType != "" {
		q.Set("output_type", f.OutputType)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	var page WorkOutputPage
	if err := c.do(ctx, http.MethodGet, "/api/baskets/"+basketID+"/work-outputs", q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetWorkOutput reads one output by ID.
func (c *Client) GetWorkOutput(ctx context.Context, outputID string) (*WorkOutput, error) {
	var out WorkOutput
	if err := c.do(ctx, http.MethodGet, "/api/work-outputs/"+outputID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateWorkOutput changes supervision state and reviewer notes.
func (c *Client) UpdateWorkOutput(ctx context.Context, outputID string, in UpdateWorkOutputInput) (*WorkOutput, error) {
	var out WorkOutput
	if err := c.do(ctx, http.MethodPatch, "/api/work-outputs/"+outputID, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkOutputPromoted records the proposal link and promotion method.
func (c *Client) MarkOutputPromoted(ctx context.Context, outputID, proposalID, method, promotedBy string) (*WorkOutput, error) {
	in := map[string]any{
		"substrate_proposal_id": proposalID,
		"promotion_method":      method,
		"promoted_by":           promotedBy,
	}
	var out WorkOutput
	if err := c.do(ctx, http.MethodPost, "/api/work-outputs/"+outputID+"/promoted", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SkipOutputPromotion records intentional non-promotion.
func (c *Client) SkipOutputPromotion(ctx context.Context, outputID, skippedBy, reason string) (*WorkOutput, error) {
	in := map[string]any{
		"skipped_by": skippedBy,
		"reason":     reason,
	}
	var out WorkOutput
	if err := c.do(ctx, http.MethodPost, "/api/work-outputs/"+outputID+"/skip-promotion", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProposal submits a block-creation proposal for governance.
func (c *Client) CreateProposal(ctx context.Context, basketID string, in CreateProposalInput) (*Proposal, error) {
	var proposal Proposal
	if err := c.do(ctx, http.MethodPost, "/api/baskets/"+basketID+"/proposals", nil, in, &proposal); err != nil {
		return nil, err
	}
	return &proposal, nil
}

// GetReferenceAssets lists uploaded assets visible to an agent.
func (c *Client) GetReferenceAssets(ctx context.Context, basketID string, f AssetFilter) ([]ReferenceAsset, error) {
	q := url.Values{}
	if f.AgentKind != "" {
		q.Set("agent_kind", f.AgentKind)
	}
	if f.TicketID != "" {
		q.Set("ticket_id", f.TicketID)
	}
	if f.Permanence != "" {
		q.Set("permanence", f.Permanence)
	}
	var page struct {
		Items []ReferenceAsset `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/baskets/"+basketID+"/reference-assets", q, nil, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// GetContextItems lists context items, newest first.
func (c *Client) GetContextItems(ctx context.Context, basketID string, f ContextItemFilter) ([]ContextItem, error) {
	q := url.Values{}
	if f.ItemType != "" {
		q.Set("item_type", f.ItemType)
	}
	if f.ItemKey != "" {
		q.Set("item_key", f.ItemKey)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	var page struct {
		Items []ContextItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/baskets/"+basketID+"/context-items", q, nil, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// UpsertContextItem writes a context item keyed by
// (basket, item_type, item_key); last writer wins.
func (c *Client) UpsertContextItem(ctx context.Context, basketID string, in UpsertContextItemInput) (*ContextItem, error) {
	var item ContextItem
	if err := c.do(ctx, http.MethodPut, "/api/baskets/"+basketID+"/context-items", nil, in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// InitiateWork triggers a substrate-side job.
func (c *Client) InitiateWork(ctx context.Context, in WorkJobInput) (*WorkJob, error) {
	var job WorkJob
	if err := c.do(ctx, http.MethodPost, "/api/work", nil, in, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// GetWorkStatus polls a substrate-side job.
func (c *Client) GetWorkStatus(ctx context.Context, jobID string) (*WorkJob, error) {
	var job WorkJob
	if err := c.do(ctx, http.MethodGet, "/api/work/"+jobID, nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
