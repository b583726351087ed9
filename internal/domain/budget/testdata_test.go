package budget

import (
	"testing"

	"interior_budget/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func testMaterials() []entities.MaterialCatalogEntry {
	return []entities.MaterialCatalogEntry{
		{ID: "STANDARD_PAINT", Name: "Standard paint", Category: entities.MaterialCategoryWall, UnitPrice: 2},
		{ID: "PREMIUM_PAINT", Name: "Premium paint", Category: entities.MaterialCategoryWall, UnitPrice: 4.5},
		{ID: "HARDWOOD_FLOOR", Name: "Hardwood", Category: entities.MaterialCategoryFloor, UnitPrice: 9},
		{ID: "CARPET", Name: "Carpet", Category: entities.MaterialCategoryFloor, UnitPrice: 3.5},
		{ID: "CEILING_PAINT", Name: "Ceiling paint", Category: entities.MaterialCategoryCeiling, UnitPrice: 1.5},
		{ID: "PENDANT_LIGHT", Name: "Pendant light", Category: entities.MaterialCategoryFixture, UnitPrice: 250},
	}
}

func testFurniture() []entities.FurnitureCatalogEntry {
	return []entities.FurnitureCatalogEntry{
		{ID: "SOFA", Name: "Sofa", RoomTypes: []entities.RoomType{entities.RoomTypeLivingRoom, entities.RoomTypeOther}, UnitPrice: 1200},
		{ID: "COFFEE_TABLE", Name: "Coffee table", RoomTypes: []entities.RoomType{entities.RoomTypeLivingRoom}, UnitPrice: 350},
		{ID: "BED_FRAME", Name: "Bed frame", RoomTypes: []entities.RoomType{entities.RoomTypeBedroom}, UnitPrice: 900},
		{ID: "KITCHEN_ISLAND", Name: "Kitchen island", RoomTypes: []entities.RoomType{entities.RoomTypeKitchen}, UnitPrice: 2500},
	}
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(testMaterials(), testFurniture())
	require.NoError(t, err)
	return c
}

func testEstimator(t *testing.T) *Estimator {
	t.Helper()
	e, err := NewEstimator(testCatalog(t), DefaultPolicy())
	require.NoError(t, err)
	return e
}

func livingRoom(length, width float64) entities.BudgetRequest {
	return entities.BudgetRequest{
		Dimensions: entities.RoomDimensions{Length: length, Width: width},
		RoomType:   entities.RoomTypeLivingRoom,
	}
}
