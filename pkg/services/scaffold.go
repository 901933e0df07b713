package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cobbleworks/foundry/pkg/agent"
	"github.com/cobbleworks/foundry/pkg/models"
	"github.com/cobbleworks/foundry/pkg/substrate"
)

// Scaffold step names, surfaced on failure so callers know exactly how far
// onboarding got. There is no automatic rollback.
const (
	StepPermissionCheck   = "permission_check"
	StepCreateBasket      = "create_basket"
	StepCreateIntentBlock = "create_intent_block"
	StepCreateDump        = "create_dump"
	StepCreateProject     = "create_project"
	StepCreateSessions    = "create_sessions"
	StepRecordWorkRequest = "record_work_request"
)

// ScaffoldError wraps a failed onboarding step.
type ScaffoldError struct {
	Step string
	Err  error
}

func (e *ScaffoldError) Error() string {
	return fmt.Sprintf("scaffold step %s: %v", e.Step, e.Err)
}

func (e *ScaffoldError) Unwrap() error {
	return e.Err
}

// Scaffolder performs one-shot project onboarding: basket, intent anchor,
// optional context dump, project row, the session tree, and the first
// work request.
type Scaffolder struct {
	substrate *substrate.Client
	gate      *QuotaGate
	recorder  *WorkRequestRecorder
	registry  *SessionRegistry
	projects  *ProjectService
}

// NewScaffolder creates a new Scaffolder.
func NewScaffolder(client *substrate.Client, gate *QuotaGate, recorder *WorkRequestRecorder, registry *SessionRegistry, projects *ProjectService) *Scaffolder {
	return &Scaffolder{
		substrate: client,
		gate:      gate,
		recorder:  recorder,
		registry:  registry,
		projects:  projects,
	}
}

// Scaffold runs the onboarding sequence. On failure the returned error is
// a *ScaffoldError naming the failing step; earlier steps are not rolled
// back, so the caller can inspect and clean up or retry.
func (s *Scaffolder) Scaffold(ctx context.Context, req models.ScaffoldRequest) (*models.ScaffoldResult, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Intent == "" {
		return nil, NewValidationError("intent", "required")
	}

	api := s.substrate
	if req.UserToken != "" {
		api = api.WithToken(req.UserToken)
	}

	// 1. The first unit of work a project runs is research; a user who
	// cannot start research work cannot scaffold.
	decision, err := s.gate.Check(ctx, req.UserID, req.WorkspaceID, agent.KindResearch)
	if err != nil {
		return nil, &ScaffoldError{Step: StepPermissionCheck, Err: err}
	}

	// 2. Basket.
	basket, err := api.CreateBasket(ctx, substrate.CreateBasketInput{
		WorkspaceID: req.WorkspaceID,
		Name:        req.Name,
		Origin: map[string]any{
			"source":     "project_scaffold",
			"created_by": req.UserID,
		},
	})
	if err != nil {
		return nil, &ScaffoldError{Step: StepCreateBasket, Err: err}
	}

	result := &models.ScaffoldResult{
		BasketID:   basket.ID,
		SessionIDs: make(map[string]string, 4),
		IsTrial:    decision.IsTrial,
	}

	// 3. Intent anchor: the one direct block write in the system.
	block, err := api.CreateBlock(ctx, basket.ID, substrate.CreateBlockInput{
		SemanticType: "intent",
		AnchorRole:   "intent",
		Title:        req.Name,
		Body:         req.Intent,
		Confidence:   1.0,
		State:        "ACCEPTED",
	})
	if err != nil {
		return result, &ScaffoldError{Step: StepCreateIntentBlock, Err: err}
	}
	result.IntentBlockID = block.ID

	// 4. Initial context, when given. CreateDump is idempotent, so a
	// retried scaffold reuses the same substrate row.
	if req.InitialContext != "" {
		dump, err := api.CreateDump(ctx, basket.ID, req.InitialContext, map[string]any{
			"source": "project_scaffold",
		})
		if err != nil {
			return result, &ScaffoldError{Step: StepCreateDump, Err: err}
		}
		result.DumpID = dump.ID
	}

	// 5. Project row linking the basket.
	proj, err := s.projects.Create(ctx, models.CreateProjectRequest{
		WorkspaceID:      req.WorkspaceID,
		BasketID:         basket.ID,
		Name:             req.Name,
		Description:      req.Description,
		PromotionMode:    req.PromotionMode,
		AutoPromoteTypes: req.AutoPromoteTypes,
		GovernancePolicy: req.GovernancePolicy,
		CreatedBy:        req.UserID,
	})
	if err != nil {
		return result, &ScaffoldError{Step: StepCreateProject, Err: err}
	}
	result.ProjectID = proj.ID

	// 6. Session tree: thinking partner first, specialists parented to it.
	for _, kind := range []agent.Kind{
		agent.KindThinkingPartner,
		agent.KindResearch,
		agent.KindContent,
		agent.KindReporting,
	} {
		session, err := s.registry.GetOrCreate(ctx, basket.ID, req.WorkspaceID, kind, req.UserID)
		if err != nil {
			return result, &ScaffoldError{Step: StepCreateSessions, Err: err}
		}
		result.SessionIDs[string(kind)] = session.ID
	}

	// 7. The project's first work request: initial research over the
	// uploaded context.
	request, err := s.recorder.Record(ctx, models.RecordWorkRequest{
		UserID:      req.UserID,
		WorkspaceID: req.WorkspaceID,
		BasketID:    basket.ID,
		AgentKind:   string(agent.KindResearch),
		WorkMode:    "project_onboarding",
		Payload: map[string]any{
			"task":       "Establish foundational understanding of the project from its intent and initial context.",
			"project_id": proj.ID,
		},
		IsTrial: decision.IsTrial,
	})
	if err != nil {
		return result, &ScaffoldError{Step: StepRecordWorkRequest, Err: err}
	}
	result.WorkRequestID = request.ID

	slog.Info("Project scaffolded",
		"project_id", proj.ID,
		"basket_id", basket.ID,
		"workspace_id", req.WorkspaceID,
		"work_request_id", request.ID,
		"is_trial", decision.IsTrial)
	return result, nil
}
