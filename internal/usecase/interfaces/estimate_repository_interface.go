package interfaces

import (
	"context"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The service must be able to:
//   - create an estimate (standalone or seeded from a project)
//   - load/list estimates for a workspace or project
//   - save the full record after recalculation or a status transition
//   - delete an estimate

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Estimate, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error)
	Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
}
