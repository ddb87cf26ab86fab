package entities

import "time"

// InvoiceStatus represents the payment state of an invoice.

type InvoiceStatus string

const (
	InvoiceStatusOpen InvoiceStatus = "open"
	InvoiceStatusPaid InvoiceStatus = "paid"
	InvoiceStatusVoid InvoiceStatus = "void"
)

// Invoice is produced by converting an estimate. Exactly one invoice exists
// per converted estimate; the estimate keeps the back-reference.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
type Invoice struct {
	ID          string         `json:"id"`
	Number      string         `json:"number"`
	WorkspaceID string         `json:"workspace_id"`
	EstimateID  string         `json:"estimate_id"`
	ClientID    string         `json:"client_id,omitempty"`
	ProjectID   string         `json:"project_id,omitempty"`
	Status      InvoiceStatus  `json:"status"`
	Items       []EstimateItem `json:"items"`
	Subtotal    float64        `json:"subtotal"`
	Discount    float64        `json:"discount"`
	Tax         float64        `json:"tax"`
	Total       float64        `json:"total"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// InvoiceFromEstimate carries the frozen figures of an estimate over into a
// new open invoice. The caller assigns the id and number.
func InvoiceFromEstimate(e Estimate, now time.Time) Invoice {
	items := make([]EstimateItem, len(e.Items))
	copy(items, e.Items)
	return Invoice{
		WorkspaceID: e.WorkspaceID,
		EstimateID:  e.ID,
		ClientID:    e.ClientID,
		ProjectID:   e.ProjectID,
		Status:      InvoiceStatusOpen,
		Items:       items,
		Subtotal:    e.SubtotalSell,
		Discount:    e.DiscountAmount,
		Tax:         e.TaxAmount,
		Total:       e.Total,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
