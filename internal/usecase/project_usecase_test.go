package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	mock_interfaces "github.com/SGK112/crm-backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_Create(t *testing.T) {
	t.Run("empty workspace id", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.Create(context.Background(), " ", "Kitchen remodel", "", "")
		if !errors.Is(err, ErrInvalidWorkspaceID) {
			t.Fatalf("expected ErrInvalidWorkspaceID, got %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "ws-1", "  ", "", "")
		if !errors.Is(err, ErrInvalidProjectName) {
			t.Fatalf("expected ErrInvalidProjectName, got %v", err)
		}
	})

	t.Run("creates an active project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				return p, nil
			})

		got, err := uc.Create(context.Background(), "ws-1", " Kitchen remodel ", " full reno ", "cli-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.Status != entities.ProjectStatusActive {
			t.Fatalf("expected active project with id, got %+v", got)
		}
		if got.Name != "Kitchen remodel" || got.ClientID != "cli-1" {
			t.Fatalf("unexpected fields %+v", got)
		}
	})
}

func TestProjectUseCase_CreateSeededEstimate(t *testing.T) {
	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)

		_, err := uc.CreateSeededEstimate(context.Background(), "p-1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("seeds a single placeholder line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewProjectUseCase(repo, NewEstimateUseCase(estRepo, nil))

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{
			ID: "p-1", WorkspaceID: "ws-1", ClientID: "cli-1", Name: "Kitchen remodel",
		}, nil)
		estRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				return e, nil
			})

		got, err := uc.CreateSeededEstimate(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ProjectID != "p-1" || got.ClientID != "cli-1" {
			t.Fatalf("expected project links, got %+v", got)
		}
		if len(got.Items) != 1 || got.Items[0].Description != "Kitchen remodel" || got.Items[0].Quantity != 1 {
			t.Fatalf("expected one seeded line, got %+v", got.Items)
		}
		if got.Status != entities.EstimateStatusDraft {
			t.Fatalf("expected draft, got %v", got.Status)
		}
	})
}
