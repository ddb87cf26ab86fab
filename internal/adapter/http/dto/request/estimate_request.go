package request

import (
	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase"
)

type EstimateItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	BaseCost    float64 `json:"base_cost"`
	MarginPct   float64 `json:"margin_pct"`
	SellPrice   float64 `json:"sell_price"`
	Taxable     bool    `json:"taxable"`
}

// EstimateRequest is the create/update payload for an estimate. Discount and
// tax are optional; a missing discount type defaults to percent.
type EstimateRequest struct {
	ClientID      string                `json:"client_id"`
	ProjectID     string                `json:"project_id"`
	Items         []EstimateItemRequest `json:"items" binding:"required"`
	DiscountType  string                `json:"discount_type"`
	DiscountValue float64               `json:"discount_value"`
	TaxRate       float64               `json:"tax_rate"`
}

func (r EstimateRequest) ToInput() usecase.EstimateInput {
	items := make([]entities.EstimateItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.EstimateItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			BaseCost:    it.BaseCost,
			MarginPct:   it.MarginPct,
			SellPrice:   it.SellPrice,
			Taxable:     it.Taxable,
		})
	}

	discountType := entities.DiscountType(r.DiscountType)
	if discountType != entities.DiscountTypeFixed {
		discountType = entities.DiscountTypePercent
	}

	return usecase.EstimateInput{
		ClientID:      r.ClientID,
		ProjectID:     r.ProjectID,
		Items:         items,
		DiscountType:  discountType,
		DiscountValue: r.DiscountValue,
		TaxRate:       r.TaxRate,
	}
}

// DecisionRequest carries an accept/reject decision. The pointer keeps a
// missing field distinguishable from an explicit false.
type DecisionRequest struct {
	Accepted *bool `json:"accepted" binding:"required"`
}
