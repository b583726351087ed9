package handlers

import (
	"errors"
	"net/http"

	request "interior_budget/internal/adapter/http/dto/request"
	"interior_budget/internal/domain/budget"
	"interior_budget/internal/usecase"
	"interior_budget/pkg"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func bindError(code string, err error) *pkg.AppError {
	fe := request.DescribeBindError(err)
	return pkg.NewFieldError(code, fe.Message, fe.Field, http.StatusBadRequest)
}

// mapBudgetError translates estimator and catalog errors. The second return
// is false when err is not one of them.
func mapBudgetError(err error) (*pkg.AppError, bool) {
	var inv *budget.InvalidInputError
	switch {
	case errors.As(err, &inv):
		return pkg.NewFieldError("INVALID_BUDGET_INPUT", inv.Error(), inv.Field, http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrInvalidMaterialCategory):
		return pkg.NewFieldError("INVALID_REQUEST", "Invalid material category", "category", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrInvalidRoomType):
		return pkg.NewFieldError("INVALID_REQUEST", "Invalid room type", "room_type", http.StatusBadRequest), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
