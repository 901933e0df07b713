package tools

import (
	"context"
	"time"

	"github.com/cobbleworks/foundry/pkg/substrate"
)

// stubSubstrate is a scripted SubstrateAPI. Zero value answers every call
// successfully with empty data; tests set fields to shape responses and
// inspect the captured inputs afterwards.
type stubSubstrate struct {
	createdOutputs []substrate.CreateWorkOutputInput
	outputID       string
	outputErr      error

	items           []substrate.ContextItem
	itemsErr        error
	capturedFilters []substrate.ContextItemFilter

	upserts   []substrate.UpsertContextItemInput
	upsertErr error

	proposals   []substrate.CreateProposalInput
	proposalErr error

	initiated   []substrate.WorkJobInput
	initiateJob *substrate.WorkJob
	initiateErr error

	statusSeq  []*substrate.WorkJob
	statusErr  error
	statusCall int
}

func (s *stubSubstrate) CreateWorkOutput(ctx context.Context, basketID string, in substrate.CreateWorkOutputInput) (*substrate.WorkOutput, error) {
	if s.outputErr != nil {
		return nil, s.outputErr
	}
	s.createdOutputs = append(s.createdOutputs, in)
	id := s.outputID
	if id == "" {
		id = "wo-1"
	}
	return &substrate.WorkOutput{
		ID:                id,
		BasketID:          basketID,
		WorkTicketID:      in.WorkTicketID,
		AgentKind:         in.AgentKind,
		OutputType:        in.OutputType,
		Title:             in.Title,
		Confidence:        in.Confidence,
		SupervisionStatus: "pending_review",
	}, nil
}

func (s *stubSubstrate) GetContextItems(ctx context.Context, basketID string, f substrate.ContextItemFilter) ([]substrate.ContextItem, error) {
	s.capturedFilters = append(s.capturedFilters, f)
	if s.itemsErr != nil {
		return nil, s.itemsErr
	}
	return s.items, nil
}

func (s *stubSubstrate) UpsertContextItem(ctx context.Context, basketID string, in substrate.UpsertContextItemInput) (*substrate.ContextItem, error) {
	if s.upsertErr != nil {
		return nil, s.upsertErr
	}
	s.upserts = append(s.upserts, in)
	return &substrate.ContextItem{
		ID:                "ci-1",
		BasketID:          basketID,
		ItemType:          in.ItemType,
		ItemKey:           in.ItemKey,
		Tier:              in.Tier,
		Title:             in.Title,
		Content:           in.Content,
		CompletenessScore: in.CompletenessScore,
		Status:            "active",
		UpdatedAt:         time.Now(),
	}, nil
}

func (s *stubSubstrate) CreateProposal(ctx context.Context, basketID string, in substrate.CreateProposalInput) (*substrate.Proposal, error) {
	if s.proposalErr != nil {
		return nil, s.proposalErr
	}
	s.proposals = append(s.proposals, in)
	return &substrate.Proposal{ID: "prop-1", BasketID: basketID, Status: "pending"}, nil
}

func (s *stubSubstrate) InitiateWork(ctx context.Context, in substrate.WorkJobInput) (*substrate.WorkJob, error) {
	if s.initiateErr != nil {
		return nil, s.initiateErr
	}
	s.initiated = append(s.initiated, in)
	if s.initiateJob != nil {
		return s.initiateJob, nil
	}
	return &substrate.WorkJob{ID: "job-1", Kind: in.Kind, Status: "pending"}, nil
}

func (s *stubSubstrate) GetWorkStatus(ctx context.Context, jobID string) (*substrate.WorkJob, error) {
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	if len(s.statusSeq) == 0 {
		return &substrate.WorkJob{ID: jobID, Status: "running"}, nil
	}
	i := s.statusCall
	if i >= len(s.statusSeq) {
		i = len(s.statusSeq) - 1
	}
	s.statusCall++
	return s.statusSeq[i], nil
}

// scriptedAdmitter records admissions and returns a fixed ticket id.
type scriptedAdmitter struct {
	admitted []AdmitWorkInput
	ticketID string
	err      error
}

func (a *scriptedAdmitter) AdmitWork(ctx context.Context, in AdmitWorkInput) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.admitted = append(a.admitted, in)
	if a.ticketID == "" {
		return "wt-new", nil
	}
	return a.ticketID, nil
}

func newTestContext() ToolContext {
	return ToolContext{
		BasketID:    "basket-1",
		WorkspaceID: "ws-1",
		ProjectID:   "proj-1",
		TicketID:    "wt-1",
		SessionID:   "as-1",
		UserID:      "user-1",
		AgentKind:   "research",
		Emitter:     NewEmitter(),
	}
}
