package response

import (
	"time"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

type EstimateItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	BaseCost    float64 `json:"base_cost"`
	MarginPct   float64 `json:"margin_pct"`
	SellPrice   float64 `json:"sell_price"`
	Taxable     bool    `json:"taxable"`
	LineTotal   float64 `json:"line_total"`
}

type StatusBadgeResponse struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

// EstimateResponse is the API shape of an estimate: the stored fields plus
// the derived presentation data (badge, margin, available actions) so the
// dashboard never re-implements the rules.
type EstimateResponse struct {
	ID             string                 `json:"id"`
	Number         string                 `json:"number"`
	WorkspaceID    string                 `json:"workspace_id"`
	ClientID       string                 `json:"client_id,omitempty"`
	ProjectID      string                 `json:"project_id,omitempty"`
	InvoiceID      string                 `json:"invoice_id,omitempty"`
	Status         string                 `json:"status"`
	Badge          StatusBadgeResponse    `json:"badge"`
	Items          []EstimateItemResponse `json:"items"`
	SubtotalCost   float64                `json:"subtotal_cost"`
	SubtotalSell   float64                `json:"subtotal_sell"`
	DiscountType   string                 `json:"discount_type"`
	DiscountValue  float64                `json:"discount_value"`
	DiscountAmount float64                `json:"discount_amount"`
	TaxRate        float64                `json:"tax_rate"`
	TaxAmount      float64                `json:"tax_amount"`
	Total          float64                `json:"total"`
	TotalMargin    float64                `json:"total_margin"`
	MarginPercent  float64                `json:"margin_percent"`
	CanSend        bool                   `json:"can_send"`
	CanConvert     bool                   `json:"can_convert"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]EstimateItemResponse, 0, len(e.Items))
	for _, it := range e.Items {
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

	badge := e.Status.Badge()
	return EstimateResponse{
		ID:             e.ID,
		Number:         e.Number,
		WorkspaceID:    e.WorkspaceID,
		ClientID:       e.ClientID,
		ProjectID:      e.ProjectID,
		InvoiceID:      e.InvoiceID,
		Status:         string(e.Status),
		Badge:          StatusBadgeResponse{Label: badge.Label, Tone: badge.Tone},
		Items:          items,
		SubtotalCost:   e.SubtotalCost,
		SubtotalSell:   e.SubtotalSell,
		DiscountType:   string(e.DiscountType),
		DiscountValue:  e.DiscountValue,
		DiscountAmount: e.DiscountAmount,
		TaxRate:        e.TaxRate,
		TaxAmount:      e.TaxAmount,
		Total:          e.Total,
		TotalMargin:    e.TotalMargin(),
		MarginPercent:  e.MarginPercent(),
		CanSend:        e.Status.CanSend(),
		CanConvert:     e.Status.CanConvert(),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func FromEstimates(estimates []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromEstimate(e))
	}
	return out
}
