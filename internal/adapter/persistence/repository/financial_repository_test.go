package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	mock_interfaces "github.com/SGK112/crm-backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFinancialRepository_ListItems(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	estimates := []entities.Estimate{
		{ID: "est-1", Number: "EST-1", Status: entities.EstimateStatusSent, Total: 100, CreatedAt: base},
		{ID: "est-2", Number: "EST-2", Status: entities.EstimateStatusDraft, Total: 50, CreatedAt: base.AddDate(0, 0, 10)},
	}
	invoices := []entities.Invoice{
		{ID: "inv-1", Number: "INV-1", Status: entities.InvoiceStatusOpen, Total: 300, CreatedAt: base.AddDate(0, 0, 5)},
	}

	t.Run("both kinds flattened", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		repo := NewFinancialRepository(estRepo, invRepo)

		estRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return(estimates, nil)
		invRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return(invoices, nil)

		items, err := repo.ListItems(context.Background(), entities.FinancialFilter{WorkspaceID: "ws-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(items))
		}
		if items[0].Kind != entities.FinancialItemEstimate || items[2].Kind != entities.FinancialItemInvoice {
			t.Fatalf("unexpected ordering %+v", items)
		}
	})

	t.Run("kind filter skips the other repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		repo := NewFinancialRepository(estRepo, invRepo)

		invRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return(invoices, nil)

		items, err := repo.ListItems(context.Background(), entities.FinancialFilter{
			WorkspaceID: "ws-1",
			Kind:        entities.FinancialItemInvoice,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 || items[0].ID != "inv-1" {
			t.Fatalf("unexpected items %+v", items)
		}
	})

	t.Run("since filter drops older rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		repo := NewFinancialRepository(estRepo, invRepo)

		estRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return(estimates, nil)
		invRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return(invoices, nil)

		items, err := repo.ListItems(context.Background(), entities.FinancialFilter{
			WorkspaceID: "ws-1",
			Since:       base.AddDate(0, 0, 5),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items after since filter, got %d", len(items))
		}
		for _, it := range items {
			if it.CreatedAt.Before(base.AddDate(0, 0, 5)) {
				t.Fatalf("expected only recent rows, got %+v", it)
			}
		}
	})

	t.Run("estimate repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		repo := NewFinancialRepository(estRepo, invRepo)

		estRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return(nil, errors.New("db"))

		_, err := repo.ListItems(context.Background(), entities.FinancialFilter{WorkspaceID: "ws-1"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
