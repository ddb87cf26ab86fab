package interfaces

import (
	"context"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

// ISubscriptionRepository abstracts DynamoDB persistence for Subscription
// (one record per workspace).

type ISubscriptionRepository interface {
	GetByWorkspaceID(ctx context.Context, workspaceID string) (entities.Subscription, error)
	Save(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
}

// IBillingPaymentRepository abstracts DynamoDB persistence for
// BillingPayment records mirrored from the provider.

type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.BillingPayment, error)
}
