package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	mock_interfaces "github.com/SGK112/crm-backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimateUseCase_Create(t *testing.T) {
	validInput := EstimateInput{
		Items: []entities.EstimateItem{
			{Description: "Demo", Quantity: 2, BaseCost: 10, MarginPct: 50, Taxable: true},
		},
		DiscountType:  entities.DiscountTypePercent,
		DiscountValue: 10,
		TaxRate:       8,
	}

	t.Run("empty workspace id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "  ", validInput)
		if !errors.Is(err, ErrInvalidWorkspaceID) {
			t.Fatalf("expected ErrInvalidWorkspaceID, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "ws-1", EstimateInput{})
		if !errors.Is(err, ErrInvalidEstimateItems) {
			t.Fatalf("expected ErrInvalidEstimateItems, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "ws-1", EstimateInput{
			Items: []entities.EstimateItem{{Quantity: 0, BaseCost: 10}},
		})
		if !errors.Is(err, ErrInvalidEstimateItems) {
			t.Fatalf("expected ErrInvalidEstimateItems, got %v", err)
		}
	})

	t.Run("negative discount", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		in := validInput
		in.DiscountValue = -1
		_, err := uc.Create(context.Background(), "ws-1", in)
		if !errors.Is(err, ErrInvalidDiscount) {
			t.Fatalf("expected ErrInvalidDiscount, got %v", err)
		}
	})

	t.Run("negative tax rate", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		in := validInput
		in.TaxRate = -1
		_, err := uc.Create(context.Background(), "ws-1", in)
		if !errors.Is(err, ErrInvalidTaxRate) {
			t.Fatalf("expected ErrInvalidTaxRate, got %v", err)
		}
	})

	t.Run("creates a recalculated draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		var stored entities.Estimate
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				stored = e
				return e, nil
			})

		got, err := uc.Create(context.Background(), "ws-1", validInput)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.Status != entities.EstimateStatusDraft {
			t.Fatalf("expected draft with id, got %+v", got)
		}
		if !strings.HasPrefix(got.Number, "EST-") {
			t.Fatalf("expected EST number, got %q", got.Number)
		}
		if !almostEqual(stored.Total, 29.16) {
			t.Fatalf("expected total 29.16, got %v", stored.Total)
		}
		if !almostEqual(stored.SubtotalCost, 20) || !almostEqual(stored.SubtotalSell, 30) {
			t.Fatalf("unexpected subtotals %v / %v", stored.SubtotalCost, stored.SubtotalSell)
		}
	})

	t.Run("discount type defaults to percent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				return e, nil
			})

		in := validInput
		in.DiscountType = ""
		got, err := uc.Create(context.Background(), "ws-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.DiscountType != entities.DiscountTypePercent {
			t.Fatalf("expected percent discount, got %v", got.DiscountType)
		}
	})
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.GetByID(context.Background(), "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "est-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstimateUseCase_Send(t *testing.T) {
	t.Run("draft becomes sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusDraft}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				return e, nil
			})

		got, err := uc.Send(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.EstimateStatusSent {
			t.Fatalf("expected sent, got %v", got.Status)
		}
	})

	t.Run("re-send keeps later status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusViewed}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				return e, nil
			})

		got, err := uc.Send(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.EstimateStatusViewed {
			t.Fatalf("expected viewed, got %v", got.Status)
		}
	})

	t.Run("converted is blocked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusConverted}, nil)

		_, err := uc.Send(context.Background(), "est-1")
		if !errors.Is(err, ErrEstimateConverted) {
			t.Fatalf("expected ErrEstimateConverted, got %v", err)
		}
	})
}

func TestEstimateUseCase_Convert(t *testing.T) {
	t.Run("creates invoice and marks estimate converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewEstimateUseCase(repo, invoiceRepo)

		est := entities.Estimate{
			ID:          "est-1",
			WorkspaceID: "ws-1",
			ClientID:    "cli-1",
			Status:      entities.EstimateStatusAccepted,
			Total:       29.16,
		}
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.EstimateID != "est-1" || !almostEqual(inv.Total, 29.16) {
					t.Fatalf("unexpected invoice %+v", inv)
				}
				if !strings.HasPrefix(inv.Number, "INV-") {
					t.Fatalf("expected INV number, got %q", inv.Number)
				}
				return inv, nil
			})

		var saved entities.Estimate
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				saved = e
				return e, nil
			})

		inv, err := uc.Convert(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Status != entities.EstimateStatusConverted {
			t.Fatalf("expected converted, got %v", saved.Status)
		}
		if saved.InvoiceID != inv.ID {
			t.Fatalf("expected invoice link %q, got %q", inv.ID, saved.InvoiceID)
		}
	})

	t.Run("second convert is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusConverted}, nil)

		_, err := uc.Convert(context.Background(), "est-1")
		if !errors.Is(err, ErrEstimateConverted) {
			t.Fatalf("expected ErrEstimateConverted, got %v", err)
		}
	})

	t.Run("invoice create failure leaves estimate untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewEstimateUseCase(repo, invoiceRepo)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusDraft}, nil)
		invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Invoice{}, errors.New("db"))

		_, err := uc.Convert(context.Background(), "est-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstimateUseCase_MarkViewed(t *testing.T) {
	t.Run("sent becomes viewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusSent}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				return e, nil
			})

		got, err := uc.MarkViewed(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.EstimateStatusViewed {
			t.Fatalf("expected viewed, got %v", got.Status)
		}
	})

	t.Run("other statuses are left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusAccepted}, nil)

		got, err := uc.MarkViewed(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.EstimateStatusAccepted {
			t.Fatalf("expected accepted, got %v", got.Status)
		}
	})
}

func TestEstimateUseCase_Decide(t *testing.T) {
	t.Run("accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusViewed}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				return e, nil
			})

		got, err := uc.Decide(context.Background(), "est-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.EstimateStatusAccepted {
			t.Fatalf("expected accepted, got %v", got.Status)
		}
	})

	t.Run("reject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusSent}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				return e, nil
			})

		got, err := uc.Decide(context.Background(), "est-1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.EstimateStatusRejected {
			t.Fatalf("expected rejected, got %v", got.Status)
		}
	})

	t.Run("converted is immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusConverted}, nil)

		_, err := uc.Decide(context.Background(), "est-1", true)
		if !errors.Is(err, ErrEstimateConverted) {
			t.Fatalf("expected ErrEstimateConverted, got %v", err)
		}
	})
}

func TestEstimateUseCase_Recalc(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := NewEstimateUseCase(repo, nil)

	stale := entities.Estimate{
		ID:     "est-1",
		Status: entities.EstimateStatusDraft,
		Items: []entities.EstimateItem{
			{Quantity: 2, SellPrice: 15, BaseCost: 10},
		},
		Total: 9999,
	}
	repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(stale, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
			return e, nil
		})

	got, err := uc.Recalc(context.Background(), "est-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got.Total, 30) {
		t.Fatalf("expected recomputed total 30, got %v", got.Total)
	}
	if got.Status != entities.EstimateStatusDraft {
		t.Fatalf("recalc must not change status, got %v", got.Status)
	}
}

func TestEstimateUseCase_Delete(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		if err := uc.Delete(context.Background(), " "); !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "est-1").Return(nil)

		if err := uc.Delete(context.Background(), "est-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
