package handlers

import (
	"errors"
	"net/http"

	request "interior_budget/internal/adapter/http/dto/request"
	response "interior_budget/internal/adapter/http/dto/response"
	"interior_budget/internal/usecase"
	"interior_budget/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DepositHandler handles HTTP requests for quote deposits.
type DepositHandler struct {
	usecase usecase.IDepositUseCase
}

func NewDepositHandler(uc usecase.IDepositUseCase) *DepositHandler {
	return &DepositHandler{usecase: uc}
}

// CreateDeposit godoc
// @Summary Pay the deposit of an approved quote
// @Description The provider payload is forwarded to Mercado Pago; amount and reference are taken from the quote.
// @Tags deposits
// @Accept json
// @Produce json
// @Param quote_id path string true "Quote id"
// @Param request body request.DepositCreateRequest false "Provider payload"
// @Success 200 {object} response.DepositResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Router /deposits/{quote_id} [post]
func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	quoteID := c.Param("quote_id")
	zap.S().Infow("[deposit][handler] create start", "quote_id", quoteID)

	raw, err := c.GetRawData()
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	payload, err := request.ParseDepositPayload(raw)
	if err != nil {
		zap.S().Infow("[deposit][handler] invalid payload", "quote_id", quoteID, "err", err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	created, err := h.usecase.CreateDeposit(c.Request.Context(), quoteID, payload)
	if err != nil {
		zap.S().Warnw("[deposit][handler] create failed", "quote_id", quoteID, "err", err)
		writeError(c, mapDepositError(err))
		return
	}
	zap.S().Infow("[deposit][handler] create success", "quote_id", quoteID, "deposit_id", created.ID, "status", created.Status)

	c.JSON(http.StatusOK, response.FromDeposit(created))
}

// GetDeposit godoc
// @Summary Latest deposit of a quote
// @Tags deposits
// @Produce json
// @Param quote_id path string true "Quote id"
// @Success 200 {object} response.DepositResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /deposits/{quote_id} [get]
func (h *DepositHandler) GetDeposit(c *gin.Context) {
	quoteID := c.Param("quote_id")

	latest, err := h.usecase.LatestByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		writeError(c, mapDepositError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromDeposit(latest))
}

func mapDepositError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDepositQuoteID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositNotFound):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
