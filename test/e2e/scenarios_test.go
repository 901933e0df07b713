package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent/agentsession"
	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/pkg/agent"
	"github.com/cobbleworks/foundry/pkg/api"
)

// ────────────────────────────────────────────────────────────
// Scenario 1: Trial allowance exhaustion
// ────────────────────────────────────────────────────────────

func TestE2E_TrialAllowanceExhaustion(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddText("Landscape mapped; nothing further to add.")

	app := NewTestApp(t, WithLLM(llm), WithTrialCap(10))

	userID := "user-trial"
	workspaceID := uuid.New().String()
	token := signUserToken(t, userID)

	// Nine earlier requests already consumed most of the allowance.
	app.SeedTrialRequests(t, userID, workspaceID, 9)

	// The tenth request is the last one in; the response reports an empty
	// allowance after it.
	queued := app.QueueWork(t, token, submitBody(userID, workspaceID, uuid.New().String()))
	assert.True(t, queued.IsTrialRequest)
	assert.Equal(t, 0, queued.RemainingTrials)

	// Let it finish so the count is settled before the next attempt:
	// completed requests keep consuming the allowance.
	app.AwaitTicketStatus(t, queued.TicketID, "completed")

	// The eleventh is refused with the cap arithmetic in the details.
	resp := app.request(t, http.MethodPost, "/api/work/queue", token,
		submitBody(userID, workspaceID, uuid.New().String()))
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	detail := readError(t, resp)
	assert.Equal(t, "permission_denied", detail.Kind)
	assert.EqualValues(t, 10, detail.Details["trial_cap"])
	assert.EqualValues(t, 10, detail.Details["trials_used"])

	// Nothing was admitted for the refused attempt.
	count, err := app.EntClient.WorkRequest.Query().
		Where(workrequest.UserID(userID), workrequest.WorkspaceID(workspaceID)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, count)
}

// ────────────────────────────────────────────────────────────
// Scenario 2: Foundation-tier context write under proposal governance
// ────────────────────────────────────────────────────────────

func TestE2E_FoundationWriteRoutesThroughProposal(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddToolCall("call-1", "write_context",
		`{"item_type":"problem","title":"Problem statement","content":{"statement":"Research teams drown in unstructured notes.","impact":"Insights never reach decision makers."}}`)
	llm.AddText("Problem framing drafted; it awaits approval before becoming canon.")

	app := NewTestApp(t, WithLLM(llm))

	userID := "user-governed"
	token := signUserToken(t, userID)

	scaffold := scaffoldBody(userID)
	scaffold.GovernancePolicy = map[string]any{"ep_manual_edit": "proposal"}
	project := app.Scaffold(t, token, scaffold)

	body := submitBody(userID, scaffold.WorkspaceID, project.BasketID)
	body.AgentKind = "thinking_partner"
	body.WorkMode = "framing"
	body.Task = "Capture the problem we are solving"
	queued := app.QueueWork(t, token, body)

	app.AwaitTicketStatus(t, queued.TicketID, "completed")

	// The write became a governance proposal instead of a direct upsert.
	proposals := app.Substrate.Proposals()
	require.Len(t, proposals, 1)
	prop := proposals[0]
	assert.Equal(t, project.BasketID, prop.BasketID)
	assert.Equal(t, "work_tool", prop.Input.Origin)
	require.Len(t, prop.Input.Ops, 1)
	assert.Equal(t, "UpsertContextItem", prop.Input.Ops[0].Type)
	assert.Equal(t, "problem", prop.Input.Ops[0].Metadata["item_type"])
	assert.Equal(t, "foundation", prop.Input.Ops[0].Metadata["tier"])
	assert.Equal(t, queued.TicketID, prop.Input.Provenance["work_ticket_id"])

	_, written := app.Substrate.ContextItem(project.BasketID, "problem", "")
	assert.False(t, written, "foundation item must not be written directly under proposal policy")

	request := app.RequestRow(t, queued.WorkRequestID)
	assert.Equal(t, workrequest.StatusCompleted, request.Status)
	assert.Equal(t, "Problem framing drafted; it awaits approval before becoming canon.", request.ResultSummary)
}

// ────────────────────────────────────────────────────────────
// Scenario 3: Approval auto-promotes a finding into a block proposal
// ────────────────────────────────────────────────────────────

func TestE2E_ApprovalAutoPromotesFinding(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddToolCall("call-1", "emit_work_output",
		`{"output_type":"finding","title":"Pricing gap on the entry tier","body":"Competitor X undercuts the entry tier by 40% while holding margin через annual billing.","confidence":0.9}`)
	llm.AddText("One finding emitted for review.")

	app := NewTestApp(t, WithLLM(llm))

	userID := "user-promoter"
	token := signUserToken(t, userID)

	scaffold := scaffoldBody(userID)
	scaffold.PromotionMode = "auto"
	scaffold.AutoPromoteTypes = []string{"finding"}
	project := app.Scaffold(t, token, scaffold)

	queued := app.QueueWork(t, token, submitBody(userID, scaffold.WorkspaceID, project.BasketID))
	app.AwaitTicketStatus(t, queued.TicketID, "completed")

	outputs := app.Substrate.OutputsForTicket(queued.TicketID)
	require.Len(t, outputs, 1)
	assert.Equal(t, "pending_review", outputs[0].SupervisionStatus)

	// Approving flips the output and, because the project auto-promotes
	// findings, raises the block proposal in the same call.
	result := app.ApproveOutput(t, token, project.BasketID, outputs[0].ID)
	assert.Equal(t, true, result["promoted"])
	proposalID, _ := result["proposal_id"].(string)
	require.NotEmpty(t, proposalID)

	promoted := app.Substrate.Output(outputs[0].ID)
	require.NotNil(t, promoted)
	assert.Equal(t, "approved", promoted.SupervisionStatus)
	assert.Equal(t, "auto", promoted.PromotionMethod)
	assert.Equal(t, proposalID, promoted.SubstrateProposalID)

	proposals := app.Substrate.Proposals()
	require.NotEmpty(t, proposals)
	last := proposals[len(proposals)-1]
	assert.Equal(t, "supervision_promotion", last.Input.Origin)
	require.Len(t, last.Input.Ops, 1)
	assert.Equal(t, "CreateBlock", last.Input.Ops[0].Type)
	assert.Equal(t, "fact", last.Input.Ops[0].SemanticType)
	assert.Equal(t, outputs[0].ID, last.Input.Ops[0].Metadata["work_output_id"])
}

// ────────────────────────────────────────────────────────────
// Scenario 4: Substrate outage fails tickets and trips the breaker
// ────────────────────────────────────────────────────────────

func TestE2E_SubstrateOutageTripsBreaker(t *testing.T) {
	llm := NewScriptedLLMClient()

	// Threshold 2, long cooldown, single retry attempt: the first two
	// tickets each record one failure, the third must not reach the wire.
	app := NewTestApp(t, WithLLM(llm),
		WithBreaker(2, time.Minute, 1),
		WithRetryAttempts(1),
	)

	userID := "user-outage"
	token := signUserToken(t, userID)
	project := app.Scaffold(t, token, scaffoldBody(userID))
	workspaceID := uuid.New().String()

	app.Substrate.FailAlways(http.MethodGet, "/reference-assets", http.StatusInternalServerError)

	runFailing := func() string {
		queued := app.QueueWork(t, token, submitBody(userID, workspaceID, project.BasketID))
		app.AwaitTicketStatus(t, queued.TicketID, "failed")
		ticket := app.TicketRow(t, queued.TicketID)
		assert.Equal(t, "substrate_unavailable", ticket.TicketMetadata["error_kind"])

		request := app.RequestRow(t, queued.WorkRequestID)
		assert.Equal(t, workrequest.StatusFailed, request.Status)
		return queued.TicketID
	}

	runFailing()
	assert.Equal(t, 1, app.Substrate.Hits(http.MethodGet, "/reference-assets"))

	runFailing()
	assert.Equal(t, 2, app.Substrate.Hits(http.MethodGet, "/reference-assets"))
	assert.Equal(t, "open", app.SubstrateClient.BreakerState())

	// Third ticket fails fast on the open circuit without another request.
	runFailing()
	assert.Equal(t, 2, app.Substrate.Hits(http.MethodGet, "/reference-assets"))

	// The runs never got far enough to burn a single model call.
	assert.Equal(t, 0, llm.CallCount())
}

// ────────────────────────────────────────────────────────────
// Scenario 5: Iteration cap ends the run gracefully with partial work
// ────────────────────────────────────────────────────────────

func TestE2E_IterationCapEndsRunGracefully(t *testing.T) {
	llm := NewScriptedLLMClient()
	// Four turns, every one another tool call: the loop must cut the run
	// off at the cap instead of asking for a fifth.
	llm.AddToolCall("call-1", "list_recipes", `{}`)
	llm.AddToolCall("call-2", "list_recipes", `{"category":"research"}`)
	llm.AddToolCall("call-3", "list_recipes", `{}`)
	llm.AddToolCall("call-4", "list_recipes", `{"category":"content"}`)

	app := NewTestApp(t, WithLLM(llm), WithMaxIterations(4))

	userID := "user-looper"
	token := signUserToken(t, userID)
	queued := app.QueueWork(t, token, submitBody(userID, uuid.New().String(), uuid.New().String()))

	app.AwaitTicketStatus(t, queued.TicketID, "completed")
	assert.Equal(t, 4, llm.CallCount())

	ticket := app.TicketRow(t, queued.TicketID)
	assert.EqualValues(t, 4, ticket.TicketMetadata["iterations"])
	assert.EqualValues(t, 0, ticket.TicketMetadata["output_count"])

	// The caller reads an honest stop, not an error.
	request := app.RequestRow(t, queued.WorkRequestID)
	assert.Equal(t, workrequest.StatusCompleted, request.Status)
	assert.Equal(t, agent.IterationCapMessage, request.ResultSummary)
}

// ────────────────────────────────────────────────────────────
// Scenario 6: Scaffold conflict reports the failing step, partial state stays
// ────────────────────────────────────────────────────────────

func TestE2E_ScaffoldConflictReportsFailedStep(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	// A project row already claims the basket the substrate is about to
	// hand out.
	const basketID = "basket-e2e-dup"
	_, err := app.EntClient.Project.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(uuid.New().String()).
		SetBasketID(basketID).
		SetName("Existing project").
		Save(ctx)
	require.NoError(t, err)
	app.Substrate.SetNextBasketID(basketID)

	userID := "user-scaffolder"
	body := scaffoldBody(userID)
	body.InitialContext = "Founder notes: we keep losing deals to speed, not features."

	resp := app.request(t, http.MethodPost, "/api/projects/scaffold", signUserToken(t, userID), body)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	detail := readError(t, resp)
	assert.Equal(t, "conflict", detail.Kind)
	assert.Equal(t, "create_project", detail.Details["step"])

	// Everything before the failing step persists; nothing after it ran.
	require.Len(t, app.Substrate.Baskets(), 1)
	assert.Equal(t, basketID, app.Substrate.Baskets()[0].ID)
	blocks := app.Substrate.Blocks()
	require.Len(t, blocks, 1)
	assert.Equal(t, "intent", blocks[0].Input.SemanticType)
	assert.Len(t, app.Substrate.Dumps(), 1)

	sessions, err := app.EntClient.AgentSession.Query().
		Where(agentsession.BasketID(basketID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, sessions, "sessions must not be created after the failed step")

	requests, err := app.EntClient.WorkRequest.Query().
		Where(workrequest.WorkspaceID(body.WorkspaceID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, requests, "no onboarding work request after the failed step")
}

var _ = api.SubmitWorkRequest{}
