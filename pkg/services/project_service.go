package services

import (
	"context"
	"fmt"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/ent/project"
	"github.com/cobbleworks/foundry/pkg/models"
	"github.com/google/uuid"
)

// ProjectService manages Project rows. Projects are thin: the substrate
// basket holds the knowledge; the row holds governance and promotion
// settings the supervision bridge consults.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService.
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// Create inserts a project linked 1:1 to its basket.
func (s *ProjectService) Create(ctx context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if req.BasketID == "" {
		return nil, NewValidationError("basket_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	mode := req.PromotionMode
	if mode == "" {
		mode = string(project.PromotionModeManual)
	}
	if mode != string(project.PromotionModeManual) && mode != string(project.PromotionModeAuto) {
		return nil, NewValidationError("promotion_mode", fmt.Sprintf("must be manual or auto, got %q", mode))
	}

	builder := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(req.WorkspaceID).
		SetBasketID(req.BasketID).
		SetName(req.Name).
		SetPromotionMode(project.PromotionMode(mode))

	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if len(req.AutoPromoteTypes) > 0 {
		builder.SetAutoPromoteTypes(req.AutoPromoteTypes)
	}
	if req.GovernancePolicy != nil {
		builder.SetGovernancePolicy(req.GovernancePolicy)
	}
	if req.CreatedBy != "" {
		builder.SetCreatedBy(req.CreatedBy)
	}

	proj, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: basket %s already has a project", ErrAlreadyExists, req.BasketID)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return proj, nil
}

// Get returns a project by ID.
func (s *ProjectService) Get(ctx context.Context, projectID string) (*ent.Project, error) {
	proj, err := s.client.Project.Get(ctx, projectID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: project %s", ErrNotFound, projectID)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return proj, nil
}

// GetByBasket returns the project owning a basket. The supervision bridge
// uses this to resolve promotion settings for an output's basket.
func (s *ProjectService) GetByBasket(ctx context.Context, basketID string) (*ent.Project, error) {
	proj, err := s.client.Project.Query().
		Where(project.BasketID(basketID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: no project for basket %s", ErrNotFound, basketID)
		}
		return nil, fmt.Errorf("failed to get project by basket: %w", err)
	}
	return proj, nil
}

// ListByWorkspace returns a workspace's projects, newest first.
func (s *ProjectService) ListByWorkspace(ctx context.Context, workspaceID string) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Where(project.WorkspaceID(workspaceID)).
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}
