package entities

// MaterialCategory groups materials by the surface they finish.
//
// WALL, FLOOR and CEILING are exclusive: a room has one active material per
// surface. FIXTURE entries are additive and priced per unit.
type MaterialCategory string

const (
	MaterialCategoryWall    MaterialCategory = "WALL"
	MaterialCategoryFloor   MaterialCategory = "FLOOR"
	MaterialCategoryCeiling MaterialCategory = "CEILING"
	MaterialCategoryFixture MaterialCategory = "FIXTURE"
)

func (c MaterialCategory) Valid() bool {
	switch c {
	case MaterialCategoryWall, MaterialCategoryFloor, MaterialCategoryCeiling, MaterialCategoryFixture:
		return true
	}
	return false
}

// Exclusive reports whether only one selection of this category may be active.
func (c MaterialCategory) Exclusive() bool {
	return c == MaterialCategoryWall || c == MaterialCategoryFloor || c == MaterialCategoryCeiling
}

// MaterialCatalogEntry prices a finish. UnitPrice is per square foot for
// surface categories and per unit for fixtures.
type MaterialCatalogEntry struct {
	ID        string           `json:"id" yaml:"id"`
	Name      string           `json:"name" yaml:"name"`
	Category  MaterialCategory `json:"category" yaml:"category"`
	UnitPrice float64          `json:"unit_price" yaml:"unit_price"`
}

type FurnitureCatalogEntry struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	RoomTypes []RoomType `json:"room_types" yaml:"room_types"`
	UnitPrice float64    `json:"unit_price" yaml:"unit_price"`
}

// ValidFor reports whether the piece can be placed in the given room.
func (f FurnitureCatalogEntry) ValidFor(rt RoomType) bool {
	for _, r := range f.RoomTypes {
		if r == rt {
			return true
		}
	}
	return false
}
