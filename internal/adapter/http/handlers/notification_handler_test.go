package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"novamart/internal/adapter/http/handlers/mocks"
	"novamart/internal/domain/entities"
	"novamart/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_ListNotifications(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.GET("/v1/notifications", h.ListNotifications)

		uc.EXPECT().ListByUserID(gomock.Any(), "").Return(nil, usecase.ErrInvalidUserID)

		req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.GET("/v1/notifications", h.ListNotifications)

		now := time.Now().UTC()
		uc.EXPECT().ListByUserID(gomock.Any(), "manu-1").Return([]entities.Notification{
			{ID: "n-1", UserID: "manu-1", Type: entities.NotificationNegotiationStarted, Title: "New negotiation", CreatedAt: now},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/notifications?user_id=manu-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "n-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestNotificationHandler_MarkNotificationRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/notifications/:id/read", h.MarkNotificationRead)

		uc.EXPECT().MarkRead(gomock.Any(), "n-404").Return(entities.Notification{}, usecase.ErrNotificationNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/n-404/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/notifications/:id/read", h.MarkNotificationRead)

		uc.EXPECT().MarkRead(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", Read: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/n-1/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["read"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("mapped error defaults to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/notifications/:id/read", h.MarkNotificationRead)

		uc.EXPECT().MarkRead(gomock.Any(), "n-1").Return(entities.Notification{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/n-1/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
