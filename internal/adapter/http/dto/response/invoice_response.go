package response

import (
	"time"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

type InvoiceResponse struct {
	ID          string                 `json:"id"`
	Number      string                 `json:"number"`
	WorkspaceID string                 `json:"workspace_id"`
	EstimateID  string                 `json:"estimate_id"`
	ClientID    string                 `json:"client_id,omitempty"`
	ProjectID   string                 `json:"project_id,omitempty"`
	Status      string                 `json:"status"`
	Items       []EstimateItemResponse `json:"items"`
	Subtotal    float64                `json:"subtotal"`
	Discount    float64                `json:"discount"`
	Tax         float64                `json:"tax"`
	Total       float64                `json:"total"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]EstimateItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, EstimateItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			BaseCost:    it.BaseCost,
			MarginPct:   it.MarginPct,
			SellPrice:   it.SellPrice,
			Taxable:     it.Taxable,
			LineTotal:   it.LineTotal(),
		})
	}

	return InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		WorkspaceID: inv.WorkspaceID,
		EstimateID:  inv.EstimateID,
		ClientID:    inv.ClientID,
		ProjectID:   inv.ProjectID,
		Status:      string(inv.Status),
		Items:       items,
		Subtotal:    inv.Subtotal,
		Discount:    inv.Discount,
		Tax:         inv.Tax,
		Total:       inv.Total,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
