package interfaces

import (
	"context"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByEstimateID(ctx context.Context, estimateID string) (entities.Invoice, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Invoice, error)
}
