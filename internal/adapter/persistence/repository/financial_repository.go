package repository

import (
	"context"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase/interfaces"
)

// FinancialRepository composes the estimate and invoice repositories into
// the flattened row stream the financial hub aggregates. It owns no table
// of its own.

type FinancialRepository struct {
	estimates interfaces.IEstimateRepository
	invoices  interfaces.IInvoiceRepository
}

var _ interfaces.IFinancialRepository = (*FinancialRepository)(nil)

func NewFinancialRepository(estimates interfaces.IEstimateRepository, invoices interfaces.IInvoiceRepository) *FinancialRepository {
	return &FinancialRepository{estimates: estimates, invoices: invoices}
}

func (r *FinancialRepository) ListItems(ctx context.Context, filter entities.FinancialFilter) ([]entities.FinancialItem, error) {
	var items []entities.FinancialItem

	if filter.Kind == "" || filter.Kind == entities.FinancialItemEstimate {
		estimates, err := r.estimates.ListByWorkspaceID(ctx, filter.WorkspaceID)
		if err != nil {
			return nil, err
		}
		for _, e := range estimates {
			items = append(items, entities.FinancialItem{
				Kind:      entities.FinancialItemEstimate,
				ID:        e.ID,
				Number:    e.Number,
				Status:    string(e.Status),
				Total:     e.Total,
				CreatedAt: e.CreatedAt,
			})
		}
	}

	if filter.Kind == "" || filter.Kind == entities.FinancialItemInvoice {
		invoices, err := r.invoices.ListByWorkspaceID(ctx, filter.WorkspaceID)
		if err != nil {
			return nil, err
		}
		for _, inv := range invoices {
			items = append(items, entities.FinancialItem{
				Kind:      entities.FinancialItemInvoice,
				ID:        inv.ID,
				Number:    inv.Number,
				Status:    string(inv.Status),
				Total:     inv.Total,
				CreatedAt: inv.CreatedAt,
			})
		}
	}

	if filter.Since.IsZero() {
		return items, nil
	}

	filtered := items[:0]
	for _, it := range items {
		if !it.CreatedAt.Before(filter.Since) {
			filtered = append(filtered, it)
		}
	}
	return filtered, nil
}
