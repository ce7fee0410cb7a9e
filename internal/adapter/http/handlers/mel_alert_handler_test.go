package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hsj_mel/internal/adapter/http/handlers/mocks"
	"hsj_mel/internal/domain/entities"
	"hsj_mel/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAlertRouter(h *MelAlertHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/alerts", h.ListAlerts)
	r.POST("/v1/reconcile", h.Reconcile)
	return r
}

func TestMelAlertHandler_Reconcile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sweep failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		r := newAlertRouter(NewMelAlertHandler(uc))

		uc.EXPECT().ReconcileAll(gomock.Any()).Return(usecase.ReconcileSummary{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/v1/reconcile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("reports the sweep summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		r := newAlertRouter(NewMelAlertHandler(uc))

		uc.EXPECT().ReconcileAll(gomock.Any()).Return(usecase.ReconcileSummary{
			RulesEvaluated: 5, AlertsCreated: 1, AlertsResolved: 2, OrphansResolved: 1, Degraded: true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/reconcile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["rules_evaluated"] != float64(5) || got["alerts_created"] != float64(1) || got["degraded"] != true {
			t.Fatalf("unexpected body: %v", got)
		}
	})
}

func TestMelAlertHandler_ListAlerts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forwards the active filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		r := newAlertRouter(NewMelAlertHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().ListAlerts(gomock.Any(), true).Return([]entities.MelAlert{
			{ID: "a-1", RuleKey: "uti-1#ventilador-pulmonar", Status: entities.MelAlertStatusAtivo, CreatedAt: now, UpdatedAt: now},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/alerts?active=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(got) != 1 || got[0]["status"] != "ativo" || got[0]["rule_key"] != "uti-1#ventilador-pulmonar" {
			t.Fatalf("unexpected body: %v", got)
		}
		if _, present := got[0]["resolved_at"]; present {
			t.Fatalf("open alert must not carry resolved_at: %v", got[0])
		}
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		r := newAlertRouter(NewMelAlertHandler(uc))

		uc.EXPECT().ListAlerts(gomock.Any(), false).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/alerts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
