package entities

import "time"

// FinancialItemKind discriminates the rows a financial query returns.

type FinancialItemKind string

const (
	FinancialItemEstimate FinancialItemKind = "estimate"
	FinancialItemInvoice  FinancialItemKind = "invoice"
)

// FinancialItem is a flattened money row used by the financial hub.
type FinancialItem struct {
	Kind      FinancialItemKind `json:"kind"`
	ID        string            `json:"id"`
	Number    string            `json:"number"`
	Status    string            `json:"status"`
	Total     float64           `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
}

// FinancialFilter narrows a financial query.
type FinancialFilter struct {
	WorkspaceID string
	Kind        FinancialItemKind // empty = both
	Since       time.Time
}

// FinancialSummary aggregates item rows into the dashboard figures.
type FinancialSummary struct {
	PipelineTotal    float64 `json:"pipeline_total"`
	OutstandingTotal float64 `json:"outstanding_total"`
	PaidTotal        float64 `json:"paid_total"`
	EstimateCount    int     `json:"estimate_count"`
	InvoiceCount     int     `json:"invoice_count"`
}

// ComputeFinancialSummary folds items into summary figures. Pipeline counts
// estimates that have not reached a terminal decision; outstanding and paid
// split invoices by status.
func ComputeFinancialSummary(items []FinancialItem) FinancialSummary {
	var s FinancialSummary
	for _, it := range items {
		switch it.Kind {
		case FinancialItemEstimate:
			s.EstimateCount++
			switch ParseEstimateStatus(it.Status) {
			case EstimateStatusRejected, EstimateStatusConverted:
			default:
				s.PipelineTotal += it.Total
			}
		case FinancialItemInvoice:
			s.InvoiceCount++
			switch InvoiceStatus(it.Status) {
			case InvoiceStatusPaid:
				s.PaidTotal += it.Total
			case InvoiceStatusVoid:
			default:
				s.OutstandingTotal += it.Total
			}
		}
	}
	return s
}
