package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	mock_interfaces "github.com/SGK112/crm-backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDocumentUseCase_EstimatePDF(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil, nil, nil, nil)
		_, err := uc.EstimatePDF(context.Background(), " ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewDocumentUseCase(estimates, nil, nil, nil, nil)

		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.EstimatePDF(context.Background(), "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("renders with the linked client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewDocumentUseCase(estimates, nil, clients, renderer, nil)

		est := entities.Estimate{ID: "est-1", ClientID: "cli-1"}
		client := entities.Client{ID: "cli-1", FirstName: "Ann"}
		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(client, nil)
		renderer.EXPECT().RenderEstimatePDF(est, client).Return([]byte("%PDF"), nil)

		got, err := uc.EstimatePDF(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) == 0 {
			t.Fatalf("expected pdf bytes")
		}
	})

	t.Run("no client link renders with a blank client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewDocumentUseCase(estimates, nil, nil, renderer, nil)

		est := entities.Estimate{ID: "est-1"}
		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		renderer.EXPECT().RenderEstimatePDF(est, entities.Client{}).Return([]byte("%PDF"), nil)

		if _, err := uc.EstimatePDF(context.Background(), "est-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDocumentUseCase_InvoicePDF(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewDocumentUseCase(nil, invoices, nil, nil, nil)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		_, err := uc.InvoicePDF(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestDocumentUseCase_EstimateBookXLSX(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
	renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
	uc := NewDocumentUseCase(estimates, nil, nil, renderer, nil)

	book := []entities.Estimate{{ID: "est-1"}, {ID: "est-2"}}
	estimates.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return(book, nil)
	renderer.EXPECT().RenderEstimateBookXLSX(book).Return([]byte("PK"), nil)

	got, err := uc.EstimateBookXLSX(context.Background(), "ws-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected workbook bytes")
	}
}

func TestDocumentUseCase_Store(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Store(context.Background(), "file.pdf", "application/pdf", nil)
		if !errors.Is(err, ErrEmptyDocument) {
			t.Fatalf("expected ErrEmptyDocument, got %v", err)
		}
	})

	t.Run("uploads under a timestamped key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewDocumentUseCase(nil, nil, nil, nil, storage)

		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), "application/pdf", []byte("data")).DoAndReturn(
			func(_ context.Context, key, _ string, _ []byte) (string, error) {
				if !strings.HasPrefix(key, "documents/") || !strings.HasSuffix(key, "-file.pdf") {
					t.Fatalf("unexpected key %q", key)
				}
				return key, nil
			})

		key, err := uc.Store(context.Background(), "file.pdf", "application/pdf", []byte("data"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if key == "" {
			t.Fatalf("expected storage key")
		}
	})
}

func TestDocumentUseCase_DownloadURL(t *testing.T) {
	t.Run("empty key", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil, nil, nil, nil)
		_, err := uc.DownloadURL(context.Background(), " ")
		if !errors.Is(err, ErrInvalidDocumentKey) {
			t.Fatalf("expected ErrInvalidDocumentKey, got %v", err)
		}
	})

	t.Run("presigns the key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewDocumentUseCase(nil, nil, nil, nil, storage)

		storage.EXPECT().PresignedURL(gomock.Any(), "documents/1-file.pdf").
			Return("https://bucket.test/documents/1-file.pdf?sig=abc", nil)

		url, err := uc.DownloadURL(context.Background(), "documents/1-file.pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url == "" {
			t.Fatalf("expected presigned url")
		}
	})
}
