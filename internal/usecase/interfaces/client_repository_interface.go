package interfaces

import (
	"context"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Client, error)
	Delete(ctx context.Context, id string) error
}
