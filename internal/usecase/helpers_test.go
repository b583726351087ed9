package usecase

import (
	"testing"

	"interior_budget/internal/domain/budget"
	"interior_budget/internal/domain/entities"
)

func newTestEstimator(t *testing.T) *budget.Estimator {
	t.Helper()
	catalog, err := budget.NewCatalog(
		[]entities.MaterialCatalogEntry{
			{ID: "STANDARD_PAINT", Category: entities.MaterialCategoryWall, UnitPrice: 2},
			{ID: "HARDWOOD_FLOOR", Category: entities.MaterialCategoryFloor, UnitPrice: 9},
			{ID: "PENDANT_LIGHT", Category: entities.MaterialCategoryFixture, UnitPrice: 250},
		},
		[]entities.FurnitureCatalogEntry{
			{ID: "SOFA", RoomTypes: []entities.RoomType{entities.RoomTypeLivingRoom, entities.RoomTypeOther}, UnitPrice: 1200},
			{ID: "BED_FRAME", RoomTypes: []entities.RoomType{entities.RoomTypeBedroom}, UnitPrice: 900},
		},
	)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	e, err := budget.NewEstimator(catalog, budget.DefaultPolicy())
	if err != nil {
		t.Fatalf("estimator: %v", err)
	}
	return e
}

func livingRoomRequest() entities.BudgetRequest {
	return entities.BudgetRequest{
		Dimensions: entities.RoomDimensions{Length: 10, Width: 10},
		RoomType:   entities.RoomTypeLivingRoom,
		Materials:  []entities.MaterialSelection{{MaterialID: "STANDARD_PAINT", Coverage: 1}},
		Furniture:  []entities.FurnitureSelection{{FurnitureID: "SOFA", Quantity: 1}},
	}
}
