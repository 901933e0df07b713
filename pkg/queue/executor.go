package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/workticket"
	"github.com/cobbleworks/foundry/pkg/agent"
	"github.com/cobbleworks/foundry/pkg/agent/prompt"
	"github.com/cobbleworks/foundry/pkg/events"
	"github.com/cobbleworks/foundry/pkg/masking"
	"github.com/cobbleworks/foundry/pkg/progress"
	"github.com/cobbleworks/foundry/pkg/services"
	"github.com/cobbleworks/foundry/pkg/substrate"
	"github.com/cobbleworks/foundry/pkg/tools"
)

// Prompt context list bounds. The block is a scannable inventory, not the
// content itself; agents read full content through tools.
const (
	maxApprovedOutputsInContext = 20
	maxContextItemsInContext    = 50
)

// maxRelayedResultChars bounds tool result content copied onto the
// progress channel. Full content already went to the LLM.
const maxRelayedResultChars = 2000

// ExecutorConfig tunes runtime runs.
type ExecutorConfig struct {
	Model            string
	MaxTokens        int64
	MaxIterations    int
	IterationTimeout time.Duration
}

// ExecutorDeps bundles everything the executor needs to drive one run.
// Masker, Recipes, Schemas, and Admitter may be nil; Recipes and Schemas
// fall back to the built-in catalogs, a nil Masker disables redaction,
// and a nil Admitter disables recipe triggering.
type ExecutorDeps struct {
	Sessions    *services.SessionRegistry
	Requests    *services.WorkRequestRecorder
	Projects    *services.ProjectService
	Substrate   *substrate.Client
	LLM         agent.LLMClient
	Broadcaster *events.Broadcaster
	Masker      *masking.Service
	Recipes     *tools.RecipeCatalog
	Schemas     *tools.SchemaRegistry
	Admitter    tools.WorkAdmitter
}

// Executor runs claimed tickets through the agent runtime. It restores
// the session conversation, assembles prompt context from the substrate,
// wires the ticket-scoped tool dispatcher, relays runtime events to the
// progress channel, and persists the conversation afterwards.
type Executor struct {
	deps    ExecutorDeps
	cfg     ExecutorConfig
	prompts *prompt.Builder
	fetcher *substrate.AssetFetcher
}

var _ TicketExecutor = (*Executor)(nil)

// NewExecutor creates a ticket executor.
func NewExecutor(deps ExecutorDeps, cfg ExecutorConfig) *Executor {
	return &Executor{
		deps:    deps,
		cfg:     cfg,
		prompts: prompt.NewBuilder(),
		fetcher: substrate.NewAssetFetcher(),
	}
}

// Execute implements TicketExecutor.
func (e *Executor) Execute(ctx context.Context, ticket *ent.WorkTicket) *ExecutionResult {
	log := slog.With("ticket_id", ticket.ID, "agent_kind", ticket.AgentKind)

	request, err := e.deps.Requests.Get(ctx, ticket.WorkRequestID)
	if err != nil {
		return failResult(ErrorKindInternal, fmt.Errorf("loading work request: %w", err))
	}

	session, err := e.deps.Sessions.Get(ctx, ticket.AgentSessionID)
	if err != nil {
		return failResult(ErrorKindInternal, fmt.Errorf("loading session: %w", err))
	}
	snap, err := e.deps.Sessions.Snapshot(session)
	if err != nil {
		return failResult(ErrorKindInternal, fmt.Errorf("restoring conversation: %w", err))
	}

	task, params, projectID := splitPayload(request.Payload)

	// Governance policy comes from the project when the basket has one.
	var policy map[string]any
	project, err := e.deps.Projects.GetByBasket(ctx, ticket.BasketID)
	switch {
	case err == nil:
		policy = project.GovernancePolicy
		if projectID == "" {
			projectID = project.ID
		}
	case errors.Is(err, services.ErrNotFound):
		// Basket outside a project; direct writes stay allowed.
	default:
		log.Warn("Failed to load project governance policy", "error", err)
	}

	dispatcher := tools.NewDispatcher(e.deps.Substrate, e.deps.Recipes, e.deps.Schemas, e.deps.Admitter, tools.ToolContext{
		BasketID:         ticket.BasketID,
		WorkspaceID:      ticket.WorkspaceID,
		ProjectID:        projectID,
		TicketID:         ticket.ID,
		SessionID:        ticket.AgentSessionID,
		UserID:           request.UserID,
		AgentKind:        string(ticket.AgentKind),
		GovernancePolicy: policy,
		Emitter:          tools.NewEmitter(),
	})

	// Context reads degrade gracefully except when the substrate is down
	// outright: starting an agent run that cannot read or write context
	// would burn tokens for nothing.
	contextBlock, err := e.buildContextBlock(ctx, ticket)
	if err != nil {
		if substrate.IsUnavailable(err) {
			return failResult(ErrorKindSubstrateUnavailable, err)
		}
		log.Warn("Context assembly incomplete, continuing with partial context", "error", err)
	}

	history := snap.Messages
	if envelope := e.fetchContextEnvelope(ctx, ticket); envelope != "" {
		history = append(slices.Clone(history), agent.ConversationMessage{
			Role:    agent.RoleUser,
			Content: envelope,
		})
	}

	rc := &agent.RunContext{
		TicketID:          ticket.ID,
		BasketID:          ticket.BasketID,
		WorkspaceID:       ticket.WorkspaceID,
		UserID:            request.UserID,
		AgentKind:         agent.Kind(ticket.AgentKind),
		WorkMode:          request.WorkMode,
		TaskPrompt:        task,
		Parameters:        params,
		History:           history,
		ProviderSessionID: snap.ProviderSessionID,
		Context:           contextBlock,
		Config: agent.RunConfig{
			Model:            e.cfg.Model,
			MaxIterations:    e.cfg.MaxIterations,
			MaxTokens:        e.cfg.MaxTokens,
			IterationTimeout: e.cfg.IterationTimeout,
		},
	}

	runner := agent.NewRunner(e.deps.LLM, dispatcher, e.prompts)

	var final *agent.RunResult
	for ev := range runner.RunStream(ctx, rc) {
		if ev.Type == agent.EventFinal {
			final = ev.Result
			continue
		}
		e.relay(ctx, ticket.ID, ev)
	}
	if final == nil {
		// Stream closed without a final event; the worker synthesizes a
		// verdict from the context state.
		return nil
	}

	// Persist the conversation even for failed runs: partial turns carry
	// tool results the next run should see.
	if final.Messages != nil {
		snap.Messages = final.Messages
		snap.TurnCount += final.Iterations
		if final.ProviderSessionID != "" {
			snap.ProviderSessionID = final.ProviderSessionID
		}
		if err := e.deps.Sessions.SaveConversation(ctx, ticket.AgentSessionID, snap); err != nil {
			log.Error("Failed to persist conversation snapshot",
				"session_id", ticket.AgentSessionID, "error", err)
		}
	}

	return e.toExecutionResult(ctx, final, len(dispatcher.Outputs()))
}

// splitPayload pulls the runtime inputs out of the opaque request payload.
func splitPayload(payload map[string]any) (task string, params map[string]any, projectID string) {
	if payload == nil {
		return "", nil, ""
	}
	task, _ = payload["task"].(string)
	projectID, _ = payload["project_id"].(string)
	if p, ok := payload["parameters"].(map[string]any); ok {
		params = p
	}
	return task, params, projectID
}

// buildContextBlock assembles the prompt context inventory: reference
// asset titles, approved outputs, and active context items. Returns what
// it gathered so far alongside the first error.
func (e *Executor) buildContextBlock(ctx context.Context, ticket *ent.WorkTicket) (prompt.ContextBlock, error) {
	var cb prompt.ContextBlock

	assets, err := e.deps.Substrate.GetReferenceAssets(ctx, ticket.BasketID, substrate.AssetFilter{
		AgentKind: string(ticket.AgentKind),
	})
	if err != nil {
		return cb, fmt.Errorf("listing reference assets: %w", err)
	}
	for _, a := range assets {
		cb.AssetTitles = append(cb.AssetTitles, a.Title)
	}

	page, err := e.deps.Substrate.ListWorkOutputs(ctx, ticket.BasketID, substrate.OutputFilter{
		SupervisionStatus: "approved",
		Limit:             maxApprovedOutputsInContext,
	})
	if err != nil {
		return cb, fmt.Errorf("listing approved outputs: %w", err)
	}
	for _, o := range page.Items {
		cb.ApprovedOutputs = append(cb.ApprovedOutputs, prompt.OutputSummary{
			Title:      o.Title,
			OutputType: o.OutputType,
			Confidence: o.Confidence,
		})
	}

	items, err := e.deps.Substrate.GetContextItems(ctx, ticket.BasketID, substrate.ContextItemFilter{
		Status: "active",
		Limit:  maxContextItemsInContext,
	})
	if err != nil {
		return cb, fmt.Errorf("listing context items: %w", err)
	}
	for _, item := range items {
		cb.ContextItems = append(cb.ContextItems, prompt.ItemSummary{
			ItemType: item.ItemType,
			Title:    item.Title,
			Tier:     item.Tier,
		})
	}

	return cb, nil
}

// fetchContextEnvelope pulls the ticket-targeted context envelope document
// when the request pipeline prepared one. Absence is the normal case.
func (e *Executor) fetchContextEnvelope(ctx context.Context, ticket *ent.WorkTicket) string {
	assets, err := e.deps.Substrate.GetReferenceAssets(ctx, ticket.BasketID, substrate.AssetFilter{
		TicketID: ticket.ID,
	})
	if err != nil {
		slog.Warn("Failed to look up context envelope",
			"ticket_id", ticket.ID, "error", err)
		return ""
	}
	if len(assets) == 0 {
		return ""
	}

	content, err := e.fetcher.FetchContent(ctx, assets[0])
	if err != nil {
		slog.Warn("Failed to fetch context envelope content",
			"ticket_id", ticket.ID, "asset_id", assets[0].ID, "error", err)
		return ""
	}
	return content
}

// relay copies one runtime event onto the progress channel. Text deltas
// are not relayed: the channel carries step-level progress, not token
// streams. Tool result content is masked and truncated first.
func (e *Executor) relay(ctx context.Context, ticketID string, ev agent.Event) {
	switch ev.Type {
	case agent.EventProgress:
		e.deps.Broadcaster.Emit(ctx, ticketID, progress.Event{
			Type:     progress.EventProgress,
			Status:   string(workticket.StatusRunning),
			StepName: "reasoning",
			Payload: map[string]any{
				"message":   ev.Message,
				"iteration": ev.Iteration,
			},
		})
	case agent.EventToolStart:
		e.deps.Broadcaster.Emit(ctx, ticketID, progress.Event{
			Type:     progress.EventToolStart,
			Status:   string(workticket.StatusRunning),
			StepName: ev.ToolName,
			Payload: map[string]any{
				"call_id":   ev.CallID,
				"iteration": ev.Iteration,
			},
		})
	case agent.EventToolResult:
		content := ev.Content
		if e.deps.Masker != nil {
			content = e.deps.Masker.MaskText(content)
		}
		if len(content) > maxRelayedResultChars {
			content = content[:maxRelayedResultChars] + " [truncated]"
		}
		e.deps.Broadcaster.Emit(ctx, ticketID, progress.Event{
			Type:     progress.EventToolResult,
			Status:   string(workticket.StatusRunning),
			StepName: ev.ToolName,
			Payload: map[string]any{
				"call_id":  ev.CallID,
				"content":  content,
				"is_error": ev.IsError,
			},
		})
	}
}

// toExecutionResult maps the runtime verdict onto the ticket's terminal
// state.
func (e *Executor) toExecutionResult(ctx context.Context, final *agent.RunResult, outputCount int) *ExecutionResult {
	res := &ExecutionResult{
		ResponseText:     final.ResponseText,
		CheckpointReason: final.CheckpointReason,
		OutputCount:      outputCount,
		Iterations:       final.Iterations,
		Error:            final.Error,
	}

	switch final.Status {
	case agent.RunStatusCompleted:
		res.Status = workticket.StatusCompleted
	case agent.RunStatusCheckpoint:
		res.Status = workticket.StatusPendingReview
	case agent.RunStatusCancelled:
		res.Status = workticket.StatusFailed
		res.ErrorKind = ErrorKindCancelled
		// The runtime only sees "context done"; the deadline tells
		// cancellation and timeout apart.
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			res.ErrorKind = ErrorKindTimeout
		}
	default:
		res.Status = workticket.StatusFailed
		res.ErrorKind = errorKind(final.Error)
	}
	return res
}

// errorKind classifies a run failure for ticket metadata and the terminal
// event.
func errorKind(err error) string {
	var provErr *agent.ProviderError
	switch {
	case err == nil:
		return ErrorKindInternal
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorKindTimeout
	case errors.Is(err, context.Canceled):
		return ErrorKindCancelled
	case substrate.IsUnavailable(err):
		return ErrorKindSubstrateUnavailable
	case errors.As(err, &provErr):
		return ErrorKindLLMError
	default:
		return ErrorKindInternal
	}
}

func failResult(kind string, err error) *ExecutionResult {
	return &ExecutionResult{
		Status:    workticket.StatusFailed,
		ErrorKind: kind,
		Error:     err,
	}
}
