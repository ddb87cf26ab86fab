package interfaces

import (
	"context"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

// IFinancialRepository returns flattened money rows for aggregate views.
// The real implementation reads the estimate and invoice tables; tests use
// the generated mock instead of literal fixtures baked into views.

type IFinancialRepository interface {
	ListItems(ctx context.Context, filter entities.FinancialFilter) ([]entities.FinancialItem, error)
}
