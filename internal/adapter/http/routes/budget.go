package routes

import (
	"interior_budget/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudget  = "/budget"
	PathCatalog = "/catalog"
)

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler) {
	budget := rg.Group(PathBudget)
	{
		budget.POST("/estimate", budgetHandler.Estimate)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/materials", budgetHandler.ListMaterials)
		catalog.GET("/furniture", budgetHandler.ListFurniture)
		catalog.GET("/room-types", budgetHandler.RoomTypes)
	}
}
