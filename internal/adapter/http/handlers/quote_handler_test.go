package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"interior_budget/internal/adapter/http/handlers/mocks"
	"interior_budget/internal/domain/entities"
	"interior_budget/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const quoteBody = `{"client_name":"Ana","client_email":"ana@example.com","budget":{"dimensions":{"length":10,"width":10},"roomType":"LIVING_ROOM"}}`

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		w := postJSON(r, "/v1/quotes", `{"client_name":"Ana","client_email":"nope","budget":{"dimensions":{"length":1,"width":1},"roomType":"OTHER"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Field != "client_email" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("missing budget dimensions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		w := postJSON(r, "/v1/quotes", `{"client_name":"Ana","client_email":"ana@example.com","budget":{"roomType":"OTHER"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Field != "budget.dimensions" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		now := time.Now().UTC()
		uc.EXPECT().CreateQuote(gomock.Any(), usecase.QuoteClient{Name: "Ana", Email: "ana@example.com"}, gomock.Any()).
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending, CreatedAt: now, UpdatedAt: now}, nil)

		w := postJSON(r, "/v1/quotes", quoteBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestQuoteHandler_StatusRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{name: "approve ok", path: "/v1/quotes/q-1/approve", status: http.StatusOK},
		{name: "reject not pending", path: "/v1/quotes/q-1/reject", err: usecase.ErrQuoteNotPending, status: http.StatusConflict},
		{name: "cancel not found", path: "/v1/quotes/q-1/cancel", err: usecase.ErrQuoteNotFound, status: http.StatusNotFound},
		{name: "approve internal", path: "/v1/quotes/q-1/approve", err: errors.New("db"), status: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIQuoteUseCase(ctrl)
			h := NewQuoteHandler(uc)

			r := gin.New()
			r.PATCH("/v1/quotes/:quote_id/approve", h.ApproveQuote)
			r.PATCH("/v1/quotes/:quote_id/reject", h.RejectQuote)
			r.PATCH("/v1/quotes/:quote_id/cancel", h.CancelQuote)

			q := entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved}
			if tc.err != nil {
				q = entities.Quote{}
			}
			uc.EXPECT().Approve(gomock.Any(), "q-1").Return(q, tc.err).AnyTimes()
			uc.EXPECT().Reject(gomock.Any(), "q-1").Return(q, tc.err).AnyTimes()
			uc.EXPECT().Cancel(gomock.Any(), "q-1").Return(q, tc.err).AnyTimes()

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, tc.path, nil))
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.GET("/v1/quotes/:quote_id", h.GetQuote)

	uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending}, nil)
	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestMapQuoteError(t *testing.T) {
	cases := map[error]int{
		usecase.ErrInvalidQuoteID:  http.StatusBadRequest,
		usecase.ErrInvalidClient:   http.StatusBadRequest,
		usecase.ErrQuoteNotFound:   http.StatusNotFound,
		usecase.ErrQuoteNotPending: http.StatusConflict,
		usecase.ErrInvalidRoomType: http.StatusBadRequest,
	}
	for err, status := range cases {
		if got := mapQuoteError(err).HTTPStatus; got != status {
			t.Fatalf("%v: expected %d, got %d", err, status, got)
		}
	}
}
