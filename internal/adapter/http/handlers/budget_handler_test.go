package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"interior_budget/internal/adapter/http/handlers/mocks"
	"interior_budget/internal/domain/budget"
	"interior_budget/internal/domain/entities"
	"interior_budget/internal/infrastructure/catalog"
	"interior_budget/internal/usecase"
	"interior_budget/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBudgetHandler_Estimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewBudgetHandler(mocks.NewMockIBudgetUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/budget/estimate", h.Estimate)

		w := postJSON(r, "/v1/budget/estimate", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_BUDGET_INPUT" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("missing room type reports field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewBudgetHandler(mocks.NewMockIBudgetUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/budget/estimate", h.Estimate)

		w := postJSON(r, "/v1/budget/estimate", `{"dimensions":{"length":10,"width":10}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Field != "roomType" {
			t.Fatalf("expected field roomType, got %+v", body)
		}
	})

	t.Run("estimator rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budget/estimate", h.Estimate)

		uc.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(entities.BudgetResult{}, &budget.InvalidInputError{Field: "materials[0].type", Reason: "unknown material"})

		w := postJSON(r, "/v1/budget/estimate", `{"dimensions":{"length":10,"width":10},"roomType":"LIVING_ROOM","materials":[{"type":"GOLD"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "INVALID_BUDGET_INPUT" || body.Field != "materials[0].type" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budget/estimate", h.Estimate)

		uc.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(entities.BudgetResult{}, errors.New("boom"))

		w := postJSON(r, "/v1/budget/estimate", `{"dimensions":{"length":10,"width":10},"roomType":"LIVING_ROOM"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("defaults reach the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budget/estimate", h.Estimate)

		want := entities.BudgetRequest{
			Dimensions: entities.RoomDimensions{Length: 10, Width: 10},
			RoomType:   entities.RoomTypeLivingRoom,
			Materials:  []entities.MaterialSelection{{MaterialID: "STANDARD_PAINT", Coverage: 1}},
			Furniture:  []entities.FurnitureSelection{{FurnitureID: "SOFA", Quantity: 1}},
		}
		uc.EXPECT().Estimate(gomock.Any(), want).Return(entities.BudgetResult{TotalCost: 2882}, nil)

		w := postJSON(r, "/v1/budget/estimate", `{"dimensions":{"length":10,"width":10},"roomType":"LIVING_ROOM","materials":[{"type":"STANDARD_PAINT"}],"furniture":[{"type":"SOFA"}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestBudgetHandler_EstimateEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Load("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	est, err := budget.NewEstimator(cat, budget.DefaultPolicy())
	if err != nil {
		t.Fatalf("new estimator: %v", err)
	}
	h := NewBudgetHandler(usecase.NewBudgetUseCase(est, nil))

	r := gin.New()
	r.POST("/v1/budget/estimate", h.Estimate)

	w := postJSON(r, "/v1/budget/estimate", `{"dimensions":{"length":10,"width":10},"roomType":"LIVING_ROOM","materials":[{"type":"STANDARD_PAINT","coverage":1}],"furniture":[{"type":"SOFA","quantity":1}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	want := `{"area":100,"breakdown":{"baseCost":650,"materialsCost":200,"furnitureCost":1200,"laborCost":570,"designFee":262},"totalCost":2882,"timeEstimate":{"min":1,"max":2}}`
	if w.Body.String() != want {
		t.Fatalf("unexpected body:\n got %s\nwant %s", w.Body.String(), want)
	}

	w = postJSON(r, "/v1/budget/estimate", `{"dimensions":{"length":10,"width":10},"roomType":"LIVING_ROOM","furniture":[{"type":"SOFA","quantity":0}]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if body := decodeError(t, w); body.Field != "furniture[0].quantity" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestBudgetHandler_EstimateRejectsHugeNumbers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Load("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	est, err := budget.NewEstimator(cat, budget.DefaultPolicy())
	if err != nil {
		t.Fatalf("new estimator: %v", err)
	}
	h := NewBudgetHandler(usecase.NewBudgetUseCase(est, nil))

	r := gin.New()
	r.POST("/v1/budget/estimate", h.Estimate)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "huge dimensions",
			body:  `{"dimensions":{"length":1e200,"width":1e200},"roomType":"LIVING_ROOM"}`,
			field: "dimensions.length",
		},
		{
			name:  "max int quantity",
			body:  `{"dimensions":{"length":10,"width":10},"roomType":"LIVING_ROOM","furniture":[{"type":"SOFA","quantity":9223372036854775807}]}`,
			field: "furniture[0].quantity",
		},
		{
			name:  "quantity above cap",
			body:  `{"dimensions":{"length":10,"width":10},"roomType":"LIVING_ROOM","furniture":[{"type":"SOFA","quantity":10001}]}`,
			field: "furniture[0].quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/v1/budget/estimate", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if body := decodeError(t, w); body.Field != tt.field {
				t.Fatalf("expected field %q, got %+v", tt.field, body)
			}
		})
	}
}

func TestBudgetHandler_Catalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("materials by category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog/materials", h.ListMaterials)

		uc.EXPECT().ListMaterials(entities.MaterialCategoryWall).Return([]entities.MaterialCatalogEntry{{ID: "STANDARD_PAINT", Category: entities.MaterialCategoryWall, UnitPrice: 2}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/materials?category=WALL", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog/materials", h.ListMaterials)

		uc.EXPECT().ListMaterials(entities.MaterialCategory("ROOF")).Return(nil, usecase.ErrInvalidMaterialCategory)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/materials?category=ROOF", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Field != "category" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("furniture invalid room type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog/furniture", h.ListFurniture)

		uc.EXPECT().ListFurniture(entities.RoomType("GARAGE")).Return(nil, usecase.ErrInvalidRoomType)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/furniture?room_type=GARAGE", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("room types", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog/room-types", h.RoomTypes)

		uc.EXPECT().RoomTypes().Return([]entities.RoomType{entities.RoomTypeKitchen})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/room-types", nil))
		if w.Code != http.StatusOK || w.Body.String() != `{"room_types":["KITCHEN"]}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
