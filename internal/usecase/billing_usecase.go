package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase/interfaces"
)

var (
	ErrNoSubscription        = errors.New("no subscription for workspace")
	ErrInvalidCheckoutAmount = errors.New("invalid checkout amount")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
)

// IBillingUseCase encapsulates the subscription/billing surface. All money
// movement happens at the provider; this service tracks the workspace's
// subscription record and mirrors provider payments for display.

type IBillingUseCase interface {
	CreateCheckoutSession(ctx context.Context, workspaceID, planID string, amount float64, currency string) (entities.CheckoutSession, error)
	GetSubscription(ctx context.Context, workspaceID string) (entities.Subscription, error)
	CancelSubscription(ctx context.Context, workspaceID string) (entities.Subscription, error)
	ReactivateSubscription(ctx context.Context, workspaceID string) (entities.Subscription, error)
	ListPaymentMethods(ctx context.Context) ([]entities.PaymentMethod, error)
	ListPayments(ctx context.Context, workspaceID string) ([]entities.BillingPayment, error)
	CustomerPortalURL(ctx context.Context, workspaceID string) (string, error)
}

type BillingUseCase struct {
	subscriptions interfaces.ISubscriptionRepository
	payments      interfaces.IBillingPaymentRepository
	gateway       interfaces.IPaymentGateway
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

func NewBillingUseCase(subscriptions interfaces.ISubscriptionRepository, payments interfaces.IBillingPaymentRepository, gateway interfaces.IPaymentGateway) *BillingUseCase {
	return &BillingUseCase{subscriptions: subscriptions, payments: payments, gateway: gateway}
}

func (u *BillingUseCase) CreateCheckoutSession(ctx context.Context, workspaceID, planID string, amount float64, currency string) (entities.CheckoutSession, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return entities.CheckoutSession{}, ErrInvalidWorkspaceID
	}
	if amount <= 0 {
		return entities.CheckoutSession{}, ErrInvalidCheckoutAmount
	}
	if u.gateway == nil {
		return entities.CheckoutSession{}, ErrGatewayNotConfigured
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, entities.CheckoutSessionRequest{
		WorkspaceID: workspaceID,
		PlanID:      strings.TrimSpace(planID),
		Amount:      amount,
		Currency:    currency,
	})
	if err != nil {
		log.Printf("[billing][usecase] checkout session failed workspace_id=%s err=%v", workspaceID, err)
		return entities.CheckoutSession{}, err
	}
	log.Printf("[billing][usecase] checkout session created workspace_id=%s session_id=%s", workspaceID, session.ID)
	return session, nil
}

// GetSubscription returns the workspace subscription, refreshing its status
// from the provider when a provider reference exists.
func (u *BillingUseCase) GetSubscription(ctx context.Context, workspaceID string) (entities.Subscription, error) {
	sub, err := u.loadSubscription(ctx, workspaceID)
	if err != nil {
		return entities.Subscription{}, err
	}
	if sub.ProviderRef == "" || u.gateway == nil {
		return sub, nil
	}

	remote, err := u.gateway.GetSubscription(ctx, sub.ProviderRef)
	if err != nil {
		// Provider unreachable: the stored record is still the best answer.
		log.Printf("[billing][usecase] provider refresh failed workspace_id=%s err=%v", sub.WorkspaceID, err)
		return sub, nil
	}
	if remote.Status != "" && remote.Status != sub.Status {
		sub.Status = remote.Status
		sub.RenewsAt = remote.RenewsAt
		sub.UpdatedAt = time.Now().UTC()
		return u.subscriptions.Save(ctx, sub)
	}
	return sub, nil
}

func (u *BillingUseCase) CancelSubscription(ctx context.Context, workspaceID string) (entities.Subscription, error) {
	return u.updateSubscription(ctx, workspaceID, entities.SubscriptionStatusCancelled)
}

func (u *BillingUseCase) ReactivateSubscription(ctx context.Context, workspaceID string) (entities.Subscription, error) {
	return u.updateSubscription(ctx, workspaceID, entities.SubscriptionStatusActive)
}

func (u *BillingUseCase) updateSubscription(ctx context.Context, workspaceID string, target entities.SubscriptionStatus) (entities.Subscription, error) {
	sub, err := u.loadSubscription(ctx, workspaceID)
	if err != nil {
		return entities.Subscription{}, err
	}
	if u.gateway == nil {
		return entities.Subscription{}, ErrGatewayNotConfigured
	}

	var remote entities.Subscription
	if target == entities.SubscriptionStatusCancelled {
		remote, err = u.gateway.CancelSubscription(ctx, sub.ProviderRef)
	} else {
		remote, err = u.gateway.ReactivateSubscription(ctx, sub.ProviderRef)
	}
	if err != nil {
		log.Printf("[billing][usecase] subscription update failed workspace_id=%s target=%s err=%v", workspaceID, target, err)
		return entities.Subscription{}, err
	}

	sub.Status = target
	if remote.Status != "" {
		sub.Status = remote.Status
	}
	sub.UpdatedAt = time.Now().UTC()
	return u.subscriptions.Save(ctx, sub)
}

func (u *BillingUseCase) ListPaymentMethods(ctx context.Context) ([]entities.PaymentMethod, error) {
	if u.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}
	return u.gateway.ListPaymentMethods(ctx)
}

func (u *BillingUseCase) ListPayments(ctx context.Context, workspaceID string) ([]entities.BillingPayment, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}
	return u.payments.ListByWorkspaceID(ctx, workspaceID)
}

func (u *BillingUseCase) CustomerPortalURL(ctx context.Context, workspaceID string) (string, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return "", ErrInvalidWorkspaceID
	}
	if u.gateway == nil {
		return "", ErrGatewayNotConfigured
	}
	return u.gateway.CustomerPortalURL(ctx, workspaceID)
}

func (u *BillingUseCase) loadSubscription(ctx context.Context, workspaceID string) (entities.Subscription, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return entities.Subscription{}, ErrInvalidWorkspaceID
	}
	sub, err := u.subscriptions.GetByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return entities.Subscription{}, err
	}
	if sub.WorkspaceID == "" {
		return entities.Subscription{}, ErrNoSubscription
	}
	return sub, nil
}
