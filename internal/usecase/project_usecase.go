package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectID   = errors.New("invalid project id")
	ErrInvalidProjectName = errors.New("invalid project name")
)

// IProjectUseCase exposes project operations, including seeding a first
// estimate for a project with a single placeholder line item.

type IProjectUseCase interface {
	Create(ctx context.Context, workspaceID string, name, description, clientID string) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context, workspaceID string) ([]entities.Project, error)
	CreateSeededEstimate(ctx context.Context, projectID string) (entities.Estimate, error)
}

type ProjectUseCase struct {
	repo      interfaces.IProjectRepository
	estimates IEstimateUseCase
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, estimates IEstimateUseCase) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, estimates: estimates}
}

func (u *ProjectUseCase) Create(ctx context.Context, workspaceID string, name, description, clientID string) (entities.Project, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return entities.Project{}, ErrInvalidWorkspaceID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		ClientID:    strings.TrimSpace(clientID),
		Name:        name,
		Description: strings.TrimSpace(description),
		Status:      entities.ProjectStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) List(ctx context.Context, workspaceID string) ([]entities.Project, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}
	return u.repo.ListByWorkspaceID(ctx, workspaceID)
}

// CreateSeededEstimate creates a draft estimate for the project with a
// single placeholder line, ready for the estimate editor.
func (u *ProjectUseCase) CreateSeededEstimate(ctx context.Context, projectID string) (entities.Estimate, error) {
	p, err := u.GetByID(ctx, projectID)
	if err != nil {
		return entities.Estimate{}, err
	}

	seed := entities.EstimateItem{
		Description: p.Name,
		Quantity:    1,
		BaseCost:    0,
		MarginPct:   0,
		SellPrice:   0,
		Taxable:     true,
	}
	return u.estimates.Create(ctx, p.WorkspaceID, EstimateInput{
		ClientID:     p.ClientID,
		ProjectID:    p.ID,
		Items:        []entities.EstimateItem{seed},
		DiscountType: entities.DiscountTypePercent,
	})
}
