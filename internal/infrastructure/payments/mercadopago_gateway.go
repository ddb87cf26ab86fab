package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/paymentmethod"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway drives checkout and subscription operations against
// Mercado Pago. In mock mode (PAYMENT_GATEWAY_MOCK/MERCADOPAGO_MOCK) every
// call succeeds locally without touching the provider, which keeps the
// billing flow usable in development and CI.
type MercadoPagoGateway struct {
	preferences    preference.Client
	preapprovals   preapproval.Client
	paymentMethods paymentmethod.Client
	portalBaseURL  string
	mockMode       bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	portalBaseURL := getenvDefault("BILLING_PORTAL_BASE_URL", "https://www.mercadopago.com/subscriptions")

	if isPaymentGatewayMockEnabled() {
		log.Printf("[billing][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, portalBaseURL: portalBaseURL}, nil
	}

	if accessToken == "" {
		log.Printf("[billing][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[billing][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[billing][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences:    preference.NewClient(cfg),
		preapprovals:   preapproval.NewClient(cfg),
		paymentMethods: paymentmethod.NewClient(cfg),
		portalBaseURL:  portalBaseURL,
	}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutSessionRequest) (entities.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[billing][gateway] mock checkout session_id=%s plan_id=%s amount=%.2f", id, req.PlanID, req.Amount)
		return entities.CheckoutSession{
			ID:  id,
			URL: fmt.Sprintf("https://checkout.local/session/%s", id),
		}, nil
	}

	if g == nil || g.preferences == nil {
		log.Printf("[billing][gateway] gateway not configured")
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[billing][gateway] checkout start workspace_id=%s plan_id=%s", req.WorkspaceID, req.PlanID)

	prefReq := preference.Request{
		ExternalReference: req.WorkspaceID,
		Items: []preference.ItemRequest{
			{
				ID:         req.PlanID,
				Title:      fmt.Sprintf("Subscription plan %s", req.PlanID),
				Quantity:   1,
				UnitPrice:  req.Amount,
				CurrencyID: req.Currency,
			},
		},
	}
	if req.SuccessURL != "" || req.CancelURL != "" {
		prefReq.BackURLs = &preference.BackURLsRequest{
			Success: req.SuccessURL,
			Failure: req.CancelURL,
		}
	}

	resp, err := g.preferences.Create(ctx, prefReq)
	if err != nil {
		log.Printf("[billing][gateway] sdk checkout create failed err=%v", err)
		return entities.CheckoutSession{}, err
	}
	log.Printf("[billing][gateway] checkout success preference_id=%s", resp.ID)

	return entities.CheckoutSession{ID: resp.ID, URL: resp.InitPoint}, nil
}

func (g *MercadoPagoGateway) GetSubscription(ctx context.Context, providerRef string) (entities.Subscription, error) {
	if g != nil && g.mockMode {
		return g.mockSubscription(providerRef, entities.SubscriptionStatusActive), nil
	}

	if g == nil || g.preapprovals == nil {
		return entities.Subscription{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.preapprovals.Get(ctx, providerRef)
	if err != nil {
		log.Printf("[billing][gateway] sdk preapproval get failed provider_ref=%s err=%v", providerRef, err)
		return entities.Subscription{}, err
	}
	return subscriptionFromPreapproval(resp), nil
}

func (g *MercadoPagoGateway) CancelSubscription(ctx context.Context, providerRef string) (entities.Subscription, error) {
	return g.setSubscriptionStatus(ctx, providerRef, "cancelled", entities.SubscriptionStatusCancelled)
}

func (g *MercadoPagoGateway) ReactivateSubscription(ctx context.Context, providerRef string) (entities.Subscription, error) {
	return g.setSubscriptionStatus(ctx, providerRef, "authorized", entities.SubscriptionStatusActive)
}

func (g *MercadoPagoGateway) setSubscriptionStatus(ctx context.Context, providerRef, providerStatus string, status entities.SubscriptionStatus) (entities.Subscription, error) {
	if g != nil && g.mockMode {
		log.Printf("[billing][gateway] mock subscription update provider_ref=%s status=%s", providerRef, status)
		return g.mockSubscription(providerRef, status), nil
	}

	if g == nil || g.preapprovals == nil {
		return entities.Subscription{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[billing][gateway] subscription update start provider_ref=%s provider_status=%s", providerRef, providerStatus)

	resp, err := g.preapprovals.Update(ctx, providerRef, preapproval.UpdateRequest{Status: providerStatus})
	if err != nil {
		log.Printf("[billing][gateway] sdk preapproval update failed provider_ref=%s err=%v", providerRef, err)
		return entities.Subscription{}, err
	}
	log.Printf("[billing][gateway] subscription update success provider_ref=%s provider_status=%s", providerRef, resp.Status)

	return subscriptionFromPreapproval(resp), nil
}

func (g *MercadoPagoGateway) ListPaymentMethods(ctx context.Context) ([]entities.PaymentMethod, error) {
	if g != nil && g.mockMode {
		return []entities.PaymentMethod{
			{ID: "visa", Type: "credit_card", Name: "Visa", LastFour: "4242"},
			{ID: "master", Type: "credit_card", Name: "Mastercard", LastFour: "5100"},
		}, nil
	}

	if g == nil || g.paymentMethods == nil {
		return nil, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.paymentMethods.List(ctx)
	if err != nil {
		log.Printf("[billing][gateway] sdk payment methods list failed err=%v", err)
		return nil, err
	}

	methods := make([]entities.PaymentMethod, 0, len(resp))
	for _, m := range resp {
		methods = append(methods, entities.PaymentMethod{
			ID:   m.ID,
			Type: m.PaymentTypeID,
			Name: m.Name,
		})
	}
	return methods, nil
}

// CustomerPortalURL points the workspace at the provider-hosted subscription
// management page. Mercado Pago has no per-customer portal session API, so
// the URL is assembled from configuration.
func (g *MercadoPagoGateway) CustomerPortalURL(_ context.Context, workspaceID string) (string, error) {
	if g == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	return fmt.Sprintf("%s?external_reference=%s", strings.TrimRight(g.portalBaseURL, "/"), workspaceID), nil
}

func (g *MercadoPagoGateway) mockSubscription(providerRef string, status entities.SubscriptionStatus) entities.Subscription {
	now := time.Now().UTC()
	return entities.Subscription{
		ProviderRef: providerRef,
		Status:      status,
		RenewsAt:    now.AddDate(0, 1, 0),
		UpdatedAt:   now,
	}
}

func subscriptionFromPreapproval(resp *preapproval.Response) entities.Subscription {
	s := entities.Subscription{
		WorkspaceID: resp.ExternalReference,
		ProviderRef: resp.ID,
		Status:      mapPreapprovalStatus(resp.Status),
		RenewsAt:    resp.NextPaymentDate,
	}
	if resp.AutoRecurring.TransactionAmount > 0 {
		s.Amount = resp.AutoRecurring.TransactionAmount
		s.Currency = resp.AutoRecurring.CurrencyID
	}
	return s
}

func mapPreapprovalStatus(providerStatus string) entities.SubscriptionStatus {
	switch strings.ToLower(providerStatus) {
	case "authorized", "active":
		return entities.SubscriptionStatusActive
	case "cancelled", "canceled":
		return entities.SubscriptionStatusCancelled
	case "paused", "pending":
		return entities.SubscriptionStatusPastDue
	default:
		return entities.SubscriptionStatusPastDue
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
