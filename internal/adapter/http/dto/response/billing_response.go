package response

import (
	"time"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

type SubscriptionResponse struct {
	WorkspaceID string    `json:"workspace_id"`
	PlanID      string    `json:"plan_id"`
	Status      string    `json:"status"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	RenewsAt    time.Time `json:"renews_at,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BillingPaymentResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
}

type PaymentMethodResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	LastFour string `json:"last_four,omitempty"`
}

type CheckoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type PortalURLResponse struct {
	URL string `json:"url"`
}

func FromSubscription(s entities.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		WorkspaceID: s.WorkspaceID,
		PlanID:      s.PlanID,
		Status:      string(s.Status),
		Amount:      s.Amount,
		Currency:    s.Currency,
		RenewsAt:    s.RenewsAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		ID:          p.ID,
		WorkspaceID: p.WorkspaceID,
		Date:        p.Date,
		Amount:      p.Amount,
		Status:      p.Status,
	}
}

func FromBillingPayments(payments []entities.BillingPayment) []BillingPaymentResponse {
	out := make([]BillingPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromBillingPayment(p))
	}
	return out
}

func FromPaymentMethods(methods []entities.PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, PaymentMethodResponse{
			ID:       m.ID,
			Type:     m.Type,
			Name:     m.Name,
			LastFour: m.LastFour,
		})
	}
	return out
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{ID: s.ID, URL: s.URL}
}
