package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SGK112/crm-backend/internal/adapter/http/handlers/mocks"
	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_InboxStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	r := authedRouter("u-1")
	r.GET("/api/inbox/stats", h.InboxStats)

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	uc.EXPECT().InboxStats(gomock.Any(), "u-1").
		Return(entities.InboxStats{Unread: 2, Total: 5, Urgent: 1, LastUpdated: now}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/inbox/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success envelope, got %v", resp)
	}
	stats, ok := resp["stats"].(map[string]any)
	if !ok {
		t.Fatalf("expected stats object, got %v", resp["stats"])
	}
	if stats["unread"] != float64(2) || stats["total"] != float64(5) || stats["urgent"] != float64(1) {
		t.Fatalf("unexpected counters %v", stats)
	}
	if _, ok := stats["lastUpdated"]; !ok {
		t.Fatalf("expected camelCase lastUpdated key, got %v", stats)
	}
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	r := authedRouter("u-1")
	r.PATCH("/api/notifications/mark-all-read", h.MarkAllRead)

	uc.EXPECT().MarkAllRead(gomock.Any(), "u-1").Return(4, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/notifications/mark-all-read", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["updated"] != float64(4) {
		t.Fatalf("expected updated count, got %v", resp)
	}
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("marks read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := authedRouter("u-1")
		r.PATCH("/api/notifications/:id/read", h.MarkRead)

		uc.EXPECT().MarkRead(gomock.Any(), "n-1").
			Return(entities.Notification{ID: "n-1", Read: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/api/notifications/n-1/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := authedRouter("u-1")
		r.PATCH("/api/notifications/:id/read", h.MarkRead)

		uc.EXPECT().MarkRead(gomock.Any(), "n-x").
			Return(entities.Notification{}, usecase.ErrNotificationNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/api/notifications/n-x/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
