package budget

import (
	"errors"
	"testing"

	"interior_budget/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_Rejects(t *testing.T) {
	cases := []struct {
		name      string
		materials []entities.MaterialCatalogEntry
		furniture []entities.FurnitureCatalogEntry
	}{
		{
			name: "duplicate material id",
			materials: []entities.MaterialCatalogEntry{
				{ID: "STANDARD_PAINT", Category: entities.MaterialCategoryWall, UnitPrice: 2},
				{ID: "STANDARD_PAINT", Category: entities.MaterialCategoryWall, UnitPrice: 3},
			},
		},
		{
			name:      "empty material id",
			materials: []entities.MaterialCatalogEntry{{ID: "  ", Category: entities.MaterialCategoryWall}},
		},
		{
			name:      "unknown category",
			materials: []entities.MaterialCatalogEntry{{ID: "GLITTER", Category: "ROOF", UnitPrice: 1}},
		},
		{
			name:      "negative material price",
			materials: []entities.MaterialCatalogEntry{{ID: "CHEAP", Category: entities.MaterialCategoryFloor, UnitPrice: -1}},
		},
		{
			name: "duplicate furniture id",
			furniture: []entities.FurnitureCatalogEntry{
				{ID: "SOFA", RoomTypes: []entities.RoomType{entities.RoomTypeLivingRoom}, UnitPrice: 1},
				{ID: "SOFA", RoomTypes: []entities.RoomType{entities.RoomTypeOther}, UnitPrice: 1},
			},
		},
		{
			name:      "furniture without rooms",
			furniture: []entities.FurnitureCatalogEntry{{ID: "SOFA", UnitPrice: 1}},
		},
		{
			name:      "furniture with unknown room",
			furniture: []entities.FurnitureCatalogEntry{{ID: "SOFA", RoomTypes: []entities.RoomType{"GARAGE"}, UnitPrice: 1}},
		},
		{
			name:      "negative furniture price",
			furniture: []entities.FurnitureCatalogEntry{{ID: "SOFA", RoomTypes: []entities.RoomType{entities.RoomTypeOther}, UnitPrice: -5}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(tc.materials, tc.furniture)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog), "expected ErrInvalidCatalog, got %v", err)
		})
	}
}

func TestCatalog_Lookups(t *testing.T) {
	c := testCatalog(t)

	m, ok := c.Material("STANDARD_PAINT")
	require.True(t, ok)
	assert.Equal(t, entities.MaterialCategoryWall, m.Category)

	_, ok = c.Material("GOLD_LEAF")
	assert.False(t, ok)

	ids := func(entries []entities.FurnitureCatalogEntry) []string {
		out := []string{}
		for _, e := range entries {
			out = append(out, e.ID)
		}
		return out
	}
	assert.Equal(t, []string{"COFFEE_TABLE", "SOFA"}, ids(c.FurnitureFor(entities.RoomTypeLivingRoom)))
	assert.Equal(t, []string{"SOFA"}, ids(c.FurnitureFor(entities.RoomTypeOther)))
	assert.Empty(t, c.FurnitureFor(entities.RoomTypeBathroom))
	assert.Len(t, c.AllFurniture(), 4)

	walls := c.MaterialsIn(entities.MaterialCategoryWall)
	require.Len(t, walls, 2)
	assert.Equal(t, "PREMIUM_PAINT", walls[0].ID)
	assert.Len(t, c.Materials(), 6)
}

func TestCatalog_FurnitureIsCopied(t *testing.T) {
	c := testCatalog(t)
	f, _ := c.Furniture("SOFA")
	f.RoomTypes[0] = entities.RoomTypeKitchen

	again, _ := c.Furniture("SOFA")
	assert.Equal(t, entities.RoomTypeLivingRoom, again.RoomTypes[0])
}

func TestCatalog_Fingerprint(t *testing.T) {
	a := testCatalog(t)

	reversed := testMaterials()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	b, err := NewCatalog(reversed, testFurniture())
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "load order must not change the fingerprint")

	repriced := testMaterials()
	repriced[0].UnitPrice = 2.25
	c, err := NewCatalog(repriced, testFurniture())
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
