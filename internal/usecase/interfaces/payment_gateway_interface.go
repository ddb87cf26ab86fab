package interfaces

import (
	"context"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// The billing module uses it to open checkout sessions and to drive the
// subscription lifecycle. Provider payloads are persisted by the caller for
// traceability.
type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutSessionRequest) (entities.CheckoutSession, error)
	GetSubscription(ctx context.Context, providerRef string) (entities.Subscription, error)
	CancelSubscription(ctx context.Context, providerRef string) (entities.Subscription, error)
	ReactivateSubscription(ctx context.Context, providerRef string) (entities.Subscription, error)
	ListPaymentMethods(ctx context.Context) ([]entities.PaymentMethod, error)
	CustomerPortalURL(ctx context.Context, workspaceID string) (string, error)
}
