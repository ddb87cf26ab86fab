package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	mock_interfaces "github.com/SGK112/crm-backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPortalUseCase_Auth(t *testing.T) {
	client := entities.Client{
		ID:             "cli-1",
		FirstName:      "Ann",
		LastName:       "Lee",
		PortalToken:    "share-token",
		PortalPassword: "hunter2",
	}

	t.Run("empty client id", func(t *testing.T) {
		uc := NewPortalUseCase(nil, nil, nil)
		_, err := uc.Auth(context.Background(), " ", "tok", "")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("no credentials", func(t *testing.T) {
		uc := NewPortalUseCase(nil, nil, nil)
		_, err := uc.Auth(context.Background(), "cli-1", "", " ")
		if !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("unknown client looks like bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewPortalUseCase(clients, nil, nil)

		clients.EXPECT().GetByID(gomock.Any(), "cli-x").Return(entities.Client{}, nil)

		_, err := uc.Auth(context.Background(), "cli-x", "share-token", "")
		if !errors.Is(err, ErrPortalAuthFailed) {
			t.Fatalf("expected ErrPortalAuthFailed, got %v", err)
		}
	})

	t.Run("valid share token issues a portal session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenMaker(ctrl)
		uc := NewPortalUseCase(clients, nil, tokens)

		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(client, nil)
		tokens.EXPECT().CreateToken("cli-1", PortalScope, 24*time.Hour).Return("signed-jwt", nil)

		session, err := uc.Auth(context.Background(), "cli-1", "share-token", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Token != "signed-jwt" {
			t.Fatalf("expected signed token, got %q", session.Token)
		}
		if session.Client.ID != "cli-1" {
			t.Fatalf("expected client echo, got %+v", session.Client)
		}
		if !session.ExpiresAt.After(time.Now()) {
			t.Fatalf("expected future expiry, got %v", session.ExpiresAt)
		}
	})

	t.Run("wrong share token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewPortalUseCase(clients, nil, nil)

		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(client, nil)

		_, err := uc.Auth(context.Background(), "cli-1", "nope", "")
		if !errors.Is(err, ErrPortalAuthFailed) {
			t.Fatalf("expected ErrPortalAuthFailed, got %v", err)
		}
	})

	t.Run("valid password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenMaker(ctrl)
		uc := NewPortalUseCase(clients, nil, tokens)

		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(client, nil)
		tokens.EXPECT().CreateToken("cli-1", PortalScope, gomock.Any()).Return("signed-jwt", nil)

		if _, err := uc.Auth(context.Background(), "cli-1", "", "hunter2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("password auth disabled when none is set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewPortalUseCase(clients, nil, nil)

		noPassword := client
		noPassword.PortalPassword = ""
		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(noPassword, nil)

		_, err := uc.Auth(context.Background(), "cli-1", "", "")
		if !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}

		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(noPassword, nil)
		_, err = uc.Auth(context.Background(), "cli-1", "", "anything")
		if !errors.Is(err, ErrPortalAuthFailed) {
			t.Fatalf("expected ErrPortalAuthFailed, got %v", err)
		}
	})
}

func TestPortalUseCase_GetEstimate(t *testing.T) {
	t.Run("first view flips sent to viewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewPortalUseCase(nil, NewEstimateUseCase(estRepo, nil), nil)

		sent := entities.Estimate{ID: "est-1", ClientID: "cli-1", Status: entities.EstimateStatusSent}
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(sent, nil).Times(2)
		estRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				return e, nil
			})

		got, err := uc.GetEstimate(context.Background(), "cli-1", "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.EstimateStatusViewed {
			t.Fatalf("expected viewed, got %v", got.Status)
		}
	})

	t.Run("foreign estimate is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewPortalUseCase(nil, NewEstimateUseCase(estRepo, nil), nil)

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", ClientID: "cli-other", Status: entities.EstimateStatusSent}, nil)

		_, err := uc.GetEstimate(context.Background(), "cli-1", "est-1")
		if !errors.Is(err, ErrPortalForbidden) {
			t.Fatalf("expected ErrPortalForbidden, got %v", err)
		}
	})

	t.Run("unowned estimate is forbidden even without client id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewPortalUseCase(nil, NewEstimateUseCase(estRepo, nil), nil)

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusSent}, nil)

		_, err := uc.GetEstimate(context.Background(), "cli-1", "est-1")
		if !errors.Is(err, ErrPortalForbidden) {
			t.Fatalf("expected ErrPortalForbidden, got %v", err)
		}
	})
}

func TestPortalUseCase_Decide(t *testing.T) {
	t.Run("accept persists the decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewPortalUseCase(nil, NewEstimateUseCase(estRepo, nil), nil)

		viewed := entities.Estimate{ID: "est-1", ClientID: "cli-1", Status: entities.EstimateStatusViewed}
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(viewed, nil).Times(2)
		estRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				return e, nil
			})

		got, err := uc.Decide(context.Background(), "cli-1", "est-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.EstimateStatusAccepted {
			t.Fatalf("expected accepted, got %v", got.Status)
		}
	})

	t.Run("converted estimate cannot be decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewPortalUseCase(nil, NewEstimateUseCase(estRepo, nil), nil)

		converted := entities.Estimate{ID: "est-1", ClientID: "cli-1", Status: entities.EstimateStatusConverted}
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(converted, nil).Times(2)

		_, err := uc.Decide(context.Background(), "cli-1", "est-1", false)
		if !errors.Is(err, ErrEstimateConverted) {
			t.Fatalf("expected ErrEstimateConverted, got %v", err)
		}
	})
}
