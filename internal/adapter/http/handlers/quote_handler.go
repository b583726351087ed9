package handlers

import (
	"context"
	"errors"
	"net/http"

	request "interior_budget/internal/adapter/http/dto/request"
	response "interior_budget/internal/adapter/http/dto/response"
	"interior_budget/internal/domain/entities"
	"interior_budget/internal/usecase"
	"interior_budget/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler handles HTTP requests for client quotes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	request.RegisterJSONFieldNames()
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary Book a consultation
// @Description Estimates the budget and saves it as a pending quote for the client.
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body request.QuoteCreateRequest true "Client and budget"
// @Success 201 {object} response.QuoteResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError("INVALID_REQUEST", err))
		return
	}

	client := usecase.QuoteClient{Name: payload.ClientName, Email: payload.ClientEmail}
	q, err := h.usecase.CreateQuote(c.Request.Context(), client, payload.Budget.ToEntity())
	if err != nil {
		zap.S().Infow("[quote][handler] create failed", "err", err)
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// GetQuote godoc
// @Summary Get a quote
// @Tags quotes
// @Produce json
// @Param quote_id path string true "Quote id"
// @Success 200 {object} response.QuoteResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /quotes/{quote_id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	h.respondWithQuote(c, h.usecase.GetByID)
}

// ApproveQuote godoc
// @Summary Approve a pending quote
// @Tags quotes
// @Produce json
// @Param quote_id path string true "Quote id"
// @Success 200 {object} response.QuoteResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /quotes/{quote_id}/approve [patch]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.respondWithQuote(c, h.usecase.Approve)
}

// RejectQuote godoc
// @Summary Reject a pending quote
// @Tags quotes
// @Produce json
// @Param quote_id path string true "Quote id"
// @Success 200 {object} response.QuoteResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /quotes/{quote_id}/reject [patch]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.respondWithQuote(c, h.usecase.Reject)
}

// CancelQuote godoc
// @Summary Cancel a pending quote
// @Tags quotes
// @Produce json
// @Param quote_id path string true "Quote id"
// @Success 200 {object} response.QuoteResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /quotes/{quote_id}/cancel [patch]
func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.respondWithQuote(c, h.usecase.Cancel)
}

func (h *QuoteHandler) respondWithQuote(
	c *gin.Context,
	load func(ctx context.Context, id string) (entities.Quote, error),
) {
	quoteID := c.Param("quote_id")
	q, err := load(c.Request.Context(), quoteID)
	if err != nil {
		zap.S().Infow("[quote][handler] request failed", "quote_id", quoteID, "path", c.FullPath(), "err", err)
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapQuoteError(err error) *pkg.AppError {
	if appErr, ok := mapBudgetError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewFieldError("INVALID_REQUEST", "Invalid quote id", "quote_id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClient):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT", "Client name and a valid email are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotPending):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PENDING", "Quote is no longer pending", http.StatusConflict)
	default:
		return internalError(err)
	}
}
