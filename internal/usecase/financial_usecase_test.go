package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	mock_interfaces "github.com/SGK112/crm-backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFinancialUseCase_Summary(t *testing.T) {
	t.Run("empty workspace id", func(t *testing.T) {
		uc := NewFinancialUseCase(nil)
		_, err := uc.Summary(context.Background(), " ")
		if !errors.Is(err, ErrInvalidWorkspaceID) {
			t.Fatalf("expected ErrInvalidWorkspaceID, got %v", err)
		}
	})

	t.Run("aggregates both kinds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinancialRepository(ctrl)
		uc := NewFinancialUseCase(repo)

		repo.EXPECT().ListItems(gomock.Any(), entities.FinancialFilter{WorkspaceID: "ws-1"}).
			Return([]entities.FinancialItem{
				{Kind: entities.FinancialItemEstimate, Status: "sent", Total: 100},
				{Kind: entities.FinancialItemInvoice, Status: "paid", Total: 200},
				{Kind: entities.FinancialItemInvoice, Status: "open", Total: 50},
			}, nil)

		s, err := uc.Summary(context.Background(), "ws-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(s.PipelineTotal, 100) || !almostEqual(s.PaidTotal, 200) || !almostEqual(s.OutstandingTotal, 50) {
			t.Fatalf("unexpected summary %+v", s)
		}
	})
}

func TestFinancialUseCase_ListItems(t *testing.T) {
	t.Run("empty workspace id", func(t *testing.T) {
		uc := NewFinancialUseCase(nil)
		_, err := uc.ListItems(context.Background(), entities.FinancialFilter{})
		if !errors.Is(err, ErrInvalidWorkspaceID) {
			t.Fatalf("expected ErrInvalidWorkspaceID, got %v", err)
		}
	})

	t.Run("filter is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinancialRepository(ctrl)
		uc := NewFinancialUseCase(repo)

		filter := entities.FinancialFilter{WorkspaceID: "ws-1", Kind: entities.FinancialItemInvoice}
		repo.EXPECT().ListItems(gomock.Any(), filter).
			Return([]entities.FinancialItem{{Kind: entities.FinancialItemInvoice, ID: "inv-1"}}, nil)

		got, err := uc.ListItems(context.Background(), filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "inv-1" {
			t.Fatalf("unexpected items %+v", got)
		}
	})
}
