package handlers

import (
	"bytes"
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

func TestNegotiationHandler_CreateNegotiation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		h := NewNegotiationHandler(uc)

		r := gin.New()
		r.POST("/v1/negotiations", h.CreateNegotiation)

		req := httptest.NewRequest(http.MethodPost, "/v1/negotiations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		h := NewNegotiationHandler(uc)

		r := gin.New()
		r.POST("/v1/negotiations", h.CreateNegotiation)

		req := httptest.NewRequest(http.MethodPost, "/v1/negotiations", bytes.NewBufferString(`{"dealer_id":"dealer-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("open negotiation already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		h := NewNegotiationHandler(uc)

		r := gin.New()
		r.POST("/v1/negotiations", h.CreateNegotiation)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Negotiation{}, &usecase.OpenNegotiationExistsError{NegotiationID: "neg-9"})

		req := httptest.NewRequest(http.MethodPost, "/v1/negotiations", bytes.NewBufferString(`{"dealer_id":"dealer-1","manufacturer_id":"manu-1","product_id":"prod-1","quantity":100,"initial_offer":45.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "OPEN_NEGOTIATION_EXISTS" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		h := NewNegotiationHandler(uc)

		r := gin.New()
		r.POST("/v1/negotiations", h.CreateNegotiation)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), usecase.CreateNegotiationInput{
			DealerID:       "dealer-1",
			ManufacturerID: "manu-1",
			ProductID:      "prod-1",
			Quantity:       100,
			InitialOffer:   45.5,
		}).Return(entities.Negotiation{ID: "neg-1", DealerID: "dealer-1", ManufacturerID: "manu-1", ProductID: "prod-1", Quantity: 100, CurrentOffer: 45.5, Status: entities.NegotiationStatusOpen, ChatID: "chat-1", CreatedAt: now, UpdatedAt: now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/negotiations", bytes.NewBufferString(`{"dealer_id":"dealer-1","manufacturer_id":"manu-1","product_id":"prod-1","quantity":100,"initial_offer":45.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "neg-1" || body["chat_id"] != "chat-1" || body["status"] != "OPEN" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestNegotiationHandler_GetNegotiation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		h := NewNegotiationHandler(uc)

		r := gin.New()
		r.GET("/v1/negotiations/:id", h.GetNegotiation)

		uc.EXPECT().GetByID(gomock.Any(), "neg-404").Return(entities.Negotiation{}, usecase.ErrNegotiationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/negotiations/neg-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		h := NewNegotiationHandler(uc)

		r := gin.New()
		r.GET("/v1/negotiations/:id", h.GetNegotiation)

		uc.EXPECT().GetByID(gomock.Any(), "neg-1").Return(entities.Negotiation{ID: "neg-1", Status: entities.NegotiationStatusAccepted}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/negotiations/neg-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestNegotiationHandler_ListNegotiations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		h := NewNegotiationHandler(uc)

		r := gin.New()
		r.GET("/v1/negotiations", h.ListNegotiations)

		req := httptest.NewRequest(http.MethodGet, "/v1/negotiations", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("by dealer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		h := NewNegotiationHandler(uc)

		r := gin.New()
		r.GET("/v1/negotiations", h.ListNegotiations)

		uc.EXPECT().ListByDealerID(gomock.Any(), "dealer-1").Return([]entities.Negotiation{{ID: "neg-1"}, {ID: "neg-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/negotiations?dealer_id=dealer-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("by manufacturer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		h := NewNegotiationHandler(uc)

		r := gin.New()
		r.GET("/v1/negotiations", h.ListNegotiations)

		uc.EXPECT().ListByManufacturerID(gomock.Any(), "manu-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/negotiations?manufacturer_id=manu-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestNegotiationHandler_ApplyNegotiationAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		h := NewNegotiationHandler(uc)

		r := gin.New()
		r.PUT("/v1/negotiations/:id", h.ApplyNegotiationAction)

		req := httptest.NewRequest(http.MethodPut, "/v1/negotiations/neg-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("normalizes role and action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		h := NewNegotiationHandler(uc)

		r := gin.New()
		r.PUT("/v1/negotiations/:id", h.ApplyNegotiationAction)

		uc.EXPECT().Apply(gomock.Any(), "neg-1", usecase.ApplyInput{
			ActorID:   "manu-1",
			ActorRole: entities.RoleManufacturer,
			Action:    entities.ActionAccept,
		}).Return(usecase.ApplyResult{
			Negotiation: entities.Negotiation{ID: "neg-1", Status: entities.NegotiationStatusAccepted},
			Message:     entities.Message{ID: "msg-1", ChatID: "chat-1", MessageType: entities.MessageTypeSystem},
		}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/negotiations/neg-1", bytes.NewBufferString(`{"actor_id":"manu-1","actor_role":" manufacturer ","action":" ACCEPT "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["negotiation"]["status"] != "ACCEPTED" || body["message"]["id"] != "msg-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		h := NewNegotiationHandler(uc)

		r := gin.New()
		r.PUT("/v1/negotiations/:id", h.ApplyNegotiationAction)

		uc.EXPECT().Apply(gomock.Any(), "neg-1", gomock.Any()).Return(usecase.ApplyResult{}, entities.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPut, "/v1/negotiations/neg-1", bytes.NewBufferString(`{"actor_id":"dealer-1","actor_role":"DEALER","action":"accept"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_TRANSITION" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("stale state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		h := NewNegotiationHandler(uc)

		r := gin.New()
		r.PUT("/v1/negotiations/:id", h.ApplyNegotiationAction)

		uc.EXPECT().Apply(gomock.Any(), "neg-1", gomock.Any()).Return(usecase.ApplyResult{}, usecase.ErrStaleState)

		req := httptest.NewRequest(http.MethodPut, "/v1/negotiations/neg-1", bytes.NewBufferString(`{"actor_id":"manu-1","actor_role":"MANUFACTURER","action":"accept","expected_status":"open"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "STALE_STATE" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("not a participant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		h := NewNegotiationHandler(uc)

		r := gin.New()
		r.PUT("/v1/negotiations/:id", h.ApplyNegotiationAction)

		uc.EXPECT().Apply(gomock.Any(), "neg-1", gomock.Any()).Return(usecase.ApplyResult{}, usecase.ErrNotParticipant)

		req := httptest.NewRequest(http.MethodPut, "/v1/negotiations/neg-1", bytes.NewBufferString(`{"actor_id":"stranger","actor_role":"DEALER","action":"message","message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestMapNegotiationError(t *testing.T) {
	if got := mapNegotiationError(usecase.ErrInvalidNegotiationID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapNegotiationError(usecase.ErrInvalidQuantity); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapNegotiationError(&usecase.OpenNegotiationExistsError{NegotiationID: "neg-1"}); got.HTTPStatus != http.StatusConflict || got.Code != "OPEN_NEGOTIATION_EXISTS" {
		t.Fatalf("expected 409 OPEN_NEGOTIATION_EXISTS")
	}
	if got := mapNegotiationError(entities.ErrInvalidTransition); got.HTTPStatus != http.StatusConflict || got.Code != "INVALID_TRANSITION" {
		t.Fatalf("expected 409 INVALID_TRANSITION")
	}
	if got := mapNegotiationError(usecase.ErrStaleState); got.HTTPStatus != http.StatusConflict || got.Code != "STALE_STATE" {
		t.Fatalf("expected 409 STALE_STATE")
	}
	if got := mapNegotiationError(usecase.ErrNotParticipant); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapNegotiationError(usecase.ErrNegotiationNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapNegotiationError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
