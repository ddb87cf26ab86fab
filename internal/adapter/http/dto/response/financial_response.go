package response

import (
	"time"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

type FinancialItemResponse struct {
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

type FinancialSummaryResponse struct {
	PipelineTotal    float64 `json:"pipeline_total"`
	OutstandingTotal float64 `json:"outstanding_total"`
	PaidTotal        float64 `json:"paid_total"`
	EstimateCount    int     `json:"estimate_count"`
	InvoiceCount     int     `json:"invoice_count"`
}

func FromFinancialSummary(s entities.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		PipelineTotal:    s.PipelineTotal,
		OutstandingTotal: s.OutstandingTotal,
		PaidTotal:        s.PaidTotal,
		EstimateCount:    s.EstimateCount,
		InvoiceCount:     s.InvoiceCount,
	}
}

func FromFinancialItems(items []entities.FinancialItem) []FinancialItemResponse {
	out := make([]FinancialItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FinancialItemResponse{
			Kind:      string(it.Kind),
			ID:        it.ID,
			Number:    it.Number,
			Status:    it.Status,
			Total:     it.Total,
			CreatedAt: it.CreatedAt,
		})
	}
	return out
}
