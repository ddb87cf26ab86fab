package usecase

import (
	"context"
	"strings"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase/interfaces"
)

// IFinancialUseCase aggregates real estimate/invoice money rows for the
// financial hub, replacing the fixture arrays the dashboard used to embed.

type IFinancialUseCase interface {
	Summary(ctx context.Context, workspaceID string) (entities.FinancialSummary, error)
	ListItems(ctx context.Context, filter entities.FinancialFilter) ([]entities.FinancialItem, error)
}

type FinancialUseCase struct {
	repo interfaces.IFinancialRepository
}

var _ IFinancialUseCase = (*FinancialUseCase)(nil)

func NewFinancialUseCase(repo interfaces.IFinancialRepository) *FinancialUseCase {
	return &FinancialUseCase{repo: repo}
}

func (u *FinancialUseCase) Summary(ctx context.Context, workspaceID string) (entities.FinancialSummary, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return entities.FinancialSummary{}, ErrInvalidWorkspaceID
	}
	items, err := u.repo.ListItems(ctx, entities.FinancialFilter{WorkspaceID: workspaceID})
	if err != nil {
		return entities.FinancialSummary{}, err
	}
	return entities.ComputeFinancialSummary(items), nil
}

func (u *FinancialUseCase) ListItems(ctx context.Context, filter entities.FinancialFilter) ([]entities.FinancialItem, error) {
	if strings.TrimSpace(filter.WorkspaceID) == "" {
		return nil, ErrInvalidWorkspaceID
	}
	return u.repo.ListItems(ctx, filter)
}
