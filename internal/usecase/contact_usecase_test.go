package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	mock_interfaces "github.com/SGK112/crm-backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestContactUseCase_Submit(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewContactUseCase(nil)
		_, err := uc.Submit(context.Background(), "Ann", "ann@acme.test", "hello", "  ")
		if !errors.Is(err, ErrInvalidInquiry) {
			t.Fatalf("expected ErrInvalidInquiry, got %v", err)
		}
	})

	t.Run("records the inquiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.ContactInquiry) (entities.ContactInquiry, error) {
				return q, nil
			})

		got, err := uc.Submit(context.Background(), " Ann ", " ann@acme.test ", "", " Need a quote ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.Name != "Ann" || got.Email != "ann@acme.test" || got.Message != "Need a quote" {
			t.Fatalf("unexpected inquiry %+v", got)
		}
		if got.CreatedAt.IsZero() {
			t.Fatalf("expected timestamp")
		}
	})
}
