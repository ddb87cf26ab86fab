package entities

import (
	"strings"
	"time"
)

// EstimateStatus represents the lifecycle of an estimate.
//
// Domain notes:
//   - This service is the source of truth for estimate state and totals.
//   - The portal drives the viewed/accepted/rejected transitions; staff
//     actions drive sent/converted.
//   - Converted is terminal: a converted estimate can no longer be sent or
//     converted again.

type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusSent      EstimateStatus = "sent"
	EstimateStatusViewed    EstimateStatus = "viewed"
	EstimateStatusAccepted  EstimateStatus = "accepted"
	EstimateStatusRejected  EstimateStatus = "rejected"
	EstimateStatusConverted EstimateStatus = "converted"

	// EstimateStatusUnknown is a defensive classification for values that do
	// not match any known status. It is never written to storage.
	EstimateStatusUnknown EstimateStatus = "unknown"
)

var knownEstimateStatuses = map[EstimateStatus]bool{
	EstimateStatusDraft:     true,
	EstimateStatusSent:      true,
	EstimateStatusViewed:    true,
	EstimateStatusAccepted:  true,
	EstimateStatusRejected:  true,
	EstimateStatusConverted: true,
}

// ParseEstimateStatus classifies raw status input. Missing, empty or
// unrecognized values map to EstimateStatusUnknown instead of failing.
func ParseEstimateStatus(raw string) EstimateStatus {
	s := EstimateStatus(strings.ToLower(strings.TrimSpace(raw)))
	if knownEstimateStatuses[s] {
		return s
	}
	return EstimateStatusUnknown
}

// StatusBadge carries the display metadata for a status.
type StatusBadge struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

var estimateStatusBadges = map[EstimateStatus]StatusBadge{
	EstimateStatusDraft:     {Label: "Draft", Tone: "slate"},
	EstimateStatusSent:      {Label: "Sent", Tone: "blue"},
	EstimateStatusViewed:    {Label: "Viewed", Tone: "indigo"},
	EstimateStatusAccepted:  {Label: "Accepted", Tone: "green"},
	EstimateStatusRejected:  {Label: "Rejected", Tone: "red"},
	EstimateStatusConverted: {Label: "Converted", Tone: "purple"},
}

// Badge returns the label and color tone for a status. Unrecognized values
// get the neutral treatment rather than an error.
func (s EstimateStatus) Badge() StatusBadge {
	if b, ok := estimateStatusBadges[s]; ok {
		return b
	}
	return StatusBadge{Label: "Unknown", Tone: "slate"}
}

// CanSend reports whether the send action is available. Only converted
// estimates are blocked; the business never enforced anything stricter.
func (s EstimateStatus) CanSend() bool {
	return s != EstimateStatusConverted
}

// CanConvert reports whether the convert action is available.
func (s EstimateStatus) CanConvert() bool {
	return s != EstimateStatusConverted
}

// DiscountType selects how Estimate.DiscountValue is interpreted.

type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeFixed   DiscountType = "fixed"
)

// EstimateItem is a single priced line on an estimate.
//
// SellPrice is authoritative when set; when zero it is derived from
// BaseCost and MarginPct at recalculation time.
type EstimateItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	BaseCost    float64 `json:"base_cost"`
	MarginPct   float64 `json:"margin_pct"`
	SellPrice   float64 `json:"sell_price"`
	Taxable     bool    `json:"taxable"`
}

// LineTotal is the displayed per-line amount, independent of cost or margin.
func (it EstimateItem) LineTotal() float64 {
	return it.SellPrice * float64(it.Quantity)
}

// ResolvedSellPrice returns the stored sell price, deriving it from cost and
// margin when absent.
func (it EstimateItem) ResolvedSellPrice() float64 {
	if it.SellPrice > 0 {
		return it.SellPrice
	}
	return it.BaseCost * (1 + it.MarginPct/100)
}

// Estimate is the priced proposal document persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Monetary representation: float64, encoded as DynamoDB number strings.
type Estimate struct {
	ID             string         `json:"id"`
	Number         string         `json:"number"`
	WorkspaceID    string         `json:"workspace_id"`
	ClientID       string         `json:"client_id,omitempty"`
	ProjectID      string         `json:"project_id,omitempty"`
	InvoiceID      string         `json:"invoice_id,omitempty"`
	Status         EstimateStatus `json:"status"`
	Items          []EstimateItem `json:"items"`
	SubtotalCost   float64        `json:"subtotal_cost"`
	SubtotalSell   float64        `json:"subtotal_sell"`
	DiscountType   DiscountType   `json:"discount_type"`
	DiscountValue  float64        `json:"discount_value"`
	DiscountAmount float64        `json:"discount_amount"`
	TaxRate        float64        `json:"tax_rate"`
	TaxAmount      float64        `json:"tax_amount"`
	Total          float64        `json:"total"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Recalculate rolls the line items up into the derived money fields:
//
//	subtotalCost   = Σ baseCost·quantity
//	subtotalSell   = Σ sellPrice·quantity
//	discountAmount = percent of subtotalSell, or the fixed value
//	taxAmount      = taxRate applied to the taxable share of the
//	                 post-discount subtotal (discount allocated
//	                 proportionally across taxable and non-taxable lines)
//	total          = subtotalSell − discountAmount + taxAmount
//
// Missing sell prices are resolved from cost and margin first.
func (e *Estimate) Recalculate() {
	var subtotalCost, subtotalSell, taxableSell float64
	for i := range e.Items {
		e.Items[i].SellPrice = e.Items[i].ResolvedSellPrice()
		qty := float64(e.Items[i].Quantity)
		subtotalCost += e.Items[i].BaseCost * qty
		subtotalSell += e.Items[i].SellPrice * qty
		if e.Items[i].Taxable {
			taxableSell += e.Items[i].SellPrice * qty
		}
	}

	var discount float64
	switch e.DiscountType {
	case DiscountTypeFixed:
		discount = e.DiscountValue
	case DiscountTypePercent:
		discount = subtotalSell * e.DiscountValue / 100
	}
	if discount > subtotalSell {
		discount = subtotalSell
	}

	taxableAfterDiscount := taxableSell
	if subtotalSell > 0 {
		taxableAfterDiscount = taxableSell - discount*(taxableSell/subtotalSell)
	}
	tax := taxableAfterDiscount * e.TaxRate / 100

	e.SubtotalCost = subtotalCost
	e.SubtotalSell = subtotalSell
	e.DiscountAmount = discount
	e.TaxAmount = tax
	e.Total = subtotalSell - discount + tax
}

// TotalMargin is the difference between sell and cost subtotals.
func (e Estimate) TotalMargin() float64 {
	return e.SubtotalSell - e.SubtotalCost
}

// MarginPercent expresses margin as a percentage of the sell subtotal.
// A zero sell subtotal yields 0, never a division by zero.
func (e Estimate) MarginPercent() float64 {
	if e.SubtotalSell <= 0 {
		return 0
	}
	return e.TotalMargin() / e.SubtotalSell * 100
}
