package response

import "interior_budget/internal/domain/entities"

type MaterialResponse struct {
	ID        string  `json:"id" example:"STANDARD_PAINT"`
	Name      string  `json:"name" example:"Standard paint"`
	Category  string  `json:"category" example:"WALL"`
	UnitPrice float64 `json:"unit_price" example:"2"`
}

type FurnitureResponse struct {
	ID        string   `json:"id" example:"SOFA"`
	Name      string   `json:"name" example:"Sofa"`
	RoomTypes []string `json:"room_types"`
	UnitPrice float64  `json:"unit_price" example:"1200"`
}

type RoomTypesResponse struct {
	RoomTypes []string `json:"room_types"`
}

func FromMaterials(in []entities.MaterialCatalogEntry) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(in))
	for _, m := range in {
		out = append(out, MaterialResponse{
			ID:        m.ID,
			Name:      m.Name,
			Category:  string(m.Category),
			UnitPrice: m.UnitPrice,
		})
	}
	return out
}

func FromFurniture(in []entities.FurnitureCatalogEntry) []FurnitureResponse {
	out := make([]FurnitureResponse, 0, len(in))
	for _, f := range in {
		out = append(out, FurnitureResponse{
			ID:        f.ID,
			Name:      f.Name,
			RoomTypes: roomTypeStrings(f.RoomTypes),
			UnitPrice: f.UnitPrice,
		})
	}
	return out
}

func FromRoomTypes(in []entities.RoomType) RoomTypesResponse {
	return RoomTypesResponse{RoomTypes: roomTypeStrings(in)}
}

func roomTypeStrings(in []entities.RoomType) []string {
	out := make([]string, 0, len(in))
	for _, rt := range in {
		out = append(out, string(rt))
	}
	return out
}
