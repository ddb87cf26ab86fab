package entities

import (
	"encoding/json"
	"time"
)

// SubscriptionStatus mirrors the provider-side subscription state we track.

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusPastDue   SubscriptionStatus = "past_due"
)

// Subscription is the workspace's paid plan, backed by a provider
// preapproval. ProviderRef is the provider-side id used for cancel and
// reactivate calls.
//
// Storage model (DynamoDB):
//   - PK: workspace_id
type Subscription struct {
	WorkspaceID string             `json:"workspace_id"`
	PlanID      string             `json:"plan_id"`
	ProviderRef string             `json:"provider_ref"`
	Status      SubscriptionStatus `json:"status"`
	Amount      float64            `json:"amount"`
	Currency    string             `json:"currency"`
	RenewsAt    time.Time          `json:"renews_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// BillingPayment is a provider payment recorded against the workspace's
// subscription. The raw provider payload is kept verbatim for audit; the
// parsed map is a convenience for querying.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (workspace_id-index): workspace_id
type BillingPayment struct {
	ID          string        `json:"id"`
	WorkspaceID string        `json:"workspace_id"`
	Date        time.Time     `json:"date"`
	Amount      float64       `json:"amount"`
	Status      string        `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

// PaymentMethod is a provider-side payment method summary.
type PaymentMethod struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	LastFour string `json:"last_four,omitempty"`
}

// CheckoutSessionRequest describes the checkout the caller wants to open.
type CheckoutSessionRequest struct {
	WorkspaceID string  `json:"workspace_id"`
	PlanID      string  `json:"plan_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	SuccessURL  string  `json:"success_url,omitempty"`
	CancelURL   string  `json:"cancel_url,omitempty"`
}

// CheckoutSession is the provider-hosted checkout the client redirects to.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
