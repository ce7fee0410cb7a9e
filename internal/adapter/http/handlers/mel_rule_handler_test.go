package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hsj_mel/internal/adapter/http/handlers/mocks"
	"hsj_mel/internal/domain/entities"
	"hsj_mel/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRuleRouter(h *MelRuleHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/rules", h.CreateRule)
	r.GET("/v1/rules", h.ListRules)
	r.GET("/v1/rules/:sector_id/:group_key", h.GetRule)
	r.PUT("/v1/rules/:sector_id/:group_key", h.UpdateRule)
	r.DELETE("/v1/rules/:sector_id/:group_key", h.DeleteRule)
	return r
}

func TestMelRuleHandler_CreateRule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMelRuleUseCase(ctrl)
		r := newRuleRouter(NewMelRuleHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/rules", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing minimum quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMelRuleUseCase(ctrl)
		r := newRuleRouter(NewMelRuleHandler(uc))

		body := `{"sector_id":"uti-1","sector_name":"UTI 1","equipment_group_key":"ventilador-pulmonar"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/rules", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMelRuleUseCase(ctrl)
		r := newRuleRouter(NewMelRuleHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.SectorMelRule{}, usecase.ErrMelRuleAlreadyExists)

		body := `{"sector_id":"uti-1","sector_name":"UTI 1","equipment_group_key":"ventilador-pulmonar","minimum_quantity":2}`
		req := httptest.NewRequest(http.MethodPost, "/v1/rules", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMelRuleUseCase(ctrl)
		r := newRuleRouter(NewMelRuleHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input usecase.MelRuleInput) (entities.SectorMelRule, error) {
				if input.SectorID != "uti-1" || input.MinimumQuantity != 2 {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.SectorMelRule{
					SectorID:        input.SectorID,
					SectorName:      input.SectorName,
					GroupKey:        input.GroupKey,
					GroupName:       "Ventilador Pulmonar",
					MinimumQuantity: input.MinimumQuantity,
					Active:          true,
				}, nil
			},
		)

		body := `{"sector_id":"uti-1","sector_name":"UTI 1","equipment_group_key":"ventilador-pulmonar","minimum_quantity":2,"justification":"Protocolo"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/rules", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["equipment_group_name"] != "Ventilador Pulmonar" || got["active"] != true {
			t.Fatalf("unexpected body: %v", got)
		}
	})
}

func TestMelRuleHandler_GetRule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMelRuleUseCase(ctrl)
		r := newRuleRouter(NewMelRuleHandler(uc))

		uc.EXPECT().GetByKey(gomock.Any(), "uti-1", "autoclave").Return(entities.SectorMelRule{}, usecase.ErrMelRuleNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/rules/uti-1/autoclave", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMelRuleUseCase(ctrl)
		r := newRuleRouter(NewMelRuleHandler(uc))

		uc.EXPECT().GetByKey(gomock.Any(), "uti-1", "ventilador-pulmonar").Return(entities.SectorMelRule{
			SectorID: "uti-1", GroupKey: "ventilador-pulmonar", MinimumQuantity: 2, Active: true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/rules/uti-1/ventilador-pulmonar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMelRuleHandler_ListRules(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forwards the active filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMelRuleUseCase(ctrl)
		r := newRuleRouter(NewMelRuleHandler(uc))

		uc.EXPECT().List(gomock.Any(), true).Return([]entities.SectorMelRule{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/rules?active=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMelRuleUseCase(ctrl)
		r := newRuleRouter(NewMelRuleHandler(uc))

		uc.EXPECT().List(gomock.Any(), false).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/rules", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMelRuleHandler_UpdateRule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty payload rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMelRuleUseCase(ctrl)
		r := newRuleRouter(NewMelRuleHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/v1/rules/uti-1/ventilador-pulmonar", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMelRuleUseCase(ctrl)
		r := newRuleRouter(NewMelRuleHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "uti-1", "ventilador-pulmonar", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, input usecase.MelRuleUpdateInput) (entities.SectorMelRule, error) {
				if input.MinimumQuantity == nil || *input.MinimumQuantity != 4 {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.SectorMelRule{SectorID: "uti-1", GroupKey: "ventilador-pulmonar", MinimumQuantity: 4, Active: true}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/rules/uti-1/ventilador-pulmonar", bytes.NewBufferString(`{"minimum_quantity":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestMelRuleHandler_DeleteRule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMelRuleUseCase(ctrl)
		r := newRuleRouter(NewMelRuleHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "uti-1", "ventilador-pulmonar").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/rules/uti-1/ventilador-pulmonar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMelRuleUseCase(ctrl)
		r := newRuleRouter(NewMelRuleHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "uti-1", "autoclave").Return(usecase.ErrMelRuleNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/rules/uti-1/autoclave", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
