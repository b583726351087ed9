package handlers

import (
	"net/http"

	request "interior_budget/internal/adapter/http/dto/request"
	response "interior_budget/internal/adapter/http/dto/response"
	"interior_budget/internal/domain/entities"
	"interior_budget/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BudgetHandler serves the estimator and the catalogs it prices from.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	request.RegisterJSONFieldNames()
	return &BudgetHandler{usecase: uc}
}

// Estimate godoc
// @Summary Estimate a room budget
// @Description Prices a room from its dimensions, type and selections. Omitted coverage and quantity default to 1.
// @Tags budget
// @Accept json
// @Produce json
// @Param request body request.BudgetEstimateRequest true "Budget request"
// @Success 200 {object} response.BudgetResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /budget/estimate [post]
func (h *BudgetHandler) Estimate(c *gin.Context) {
	var payload request.BudgetEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError("INVALID_BUDGET_INPUT", err)
		zap.S().Infow("[budget][handler] invalid payload", "field", appErr.Field, "err", err)
		writeError(c, appErr)
		return
	}

	result, err := h.usecase.Estimate(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr, ok := mapBudgetError(err)
		if !ok {
			zap.S().Errorw("[budget][handler] estimate failed", "err", err)
			appErr = internalError(err)
		}
		writeError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetResult(result))
}

// ListMaterials godoc
// @Summary List catalog materials
// @Tags catalog
// @Produce json
// @Param category query string false "WALL, FLOOR, CEILING or FIXTURE"
// @Success 200 {array} response.MaterialResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /catalog/materials [get]
func (h *BudgetHandler) ListMaterials(c *gin.Context) {
	materials, err := h.usecase.ListMaterials(entities.MaterialCategory(c.Query("category")))
	if err != nil {
		appErr, ok := mapBudgetError(err)
		if !ok {
			appErr = internalError(err)
		}
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromMaterials(materials))
}

// ListFurniture godoc
// @Summary List catalog furniture
// @Tags catalog
// @Produce json
// @Param room_type query string false "Only pieces selectable for this room type"
// @Success 200 {array} response.FurnitureResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /catalog/furniture [get]
func (h *BudgetHandler) ListFurniture(c *gin.Context) {
	furniture, err := h.usecase.ListFurniture(entities.RoomType(c.Query("room_type")))
	if err != nil {
		appErr, ok := mapBudgetError(err)
		if !ok {
			appErr = internalError(err)
		}
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromFurniture(furniture))
}

// RoomTypes godoc
// @Summary List room types
// @Tags catalog
// @Produce json
// @Success 200 {object} response.RoomTypesResponse
// @Router /catalog/room-types [get]
func (h *BudgetHandler) RoomTypes(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromRoomTypes(h.usecase.RoomTypes()))
}
