package request

import (
	"interior_budget/internal/domain/entities"
)

type DimensionsRequest struct {
	Length float64 `json:"length" example:"10"`
	Width  float64 `json:"width" example:"10"`
}

// MaterialSelectionRequest picks a catalog material. Coverage defaults to 1
// (the whole surface) when omitted.
type MaterialSelectionRequest struct {
	Type     string   `json:"type" binding:"required" example:"STANDARD_PAINT"`
	Coverage *float64 `json:"coverage,omitempty" example:"1"`
}

// FurnitureSelectionRequest picks a catalog piece. Quantity defaults to 1.
type FurnitureSelectionRequest struct {
	Type     string `json:"type" binding:"required" example:"SOFA"`
	Quantity *int   `json:"quantity,omitempty" example:"1"`
}

// BudgetEstimateRequest is the body of POST /v1/budget/estimate.
//
// Only the payload shape is checked here; ranges and catalog ids are
// validated by the estimator so every rule has one owner.
type BudgetEstimateRequest struct {
	Dimensions *DimensionsRequest          `json:"dimensions" binding:"required"`
	RoomType   string                      `json:"roomType" binding:"required" example:"LIVING_ROOM"`
	Materials  []MaterialSelectionRequest  `json:"materials" binding:"omitempty,dive"`
	Furniture  []FurnitureSelectionRequest `json:"furniture" binding:"omitempty,dive"`
}

func (r BudgetEstimateRequest) ToEntity() entities.BudgetRequest {
	req := entities.BudgetRequest{RoomType: entities.RoomType(r.RoomType)}
	if r.Dimensions != nil {
		req.Dimensions = entities.RoomDimensions{Length: r.Dimensions.Length, Width: r.Dimensions.Width}
	}
	if len(r.Materials) > 0 {
		req.Materials = make([]entities.MaterialSelection, 0, len(r.Materials))
		for _, m := range r.Materials {
			coverage := 1.0
			if m.Coverage != nil {
				coverage = *m.Coverage
			}
			req.Materials = append(req.Materials, entities.MaterialSelection{MaterialID: m.Type, Coverage: coverage})
		}
	}
	if len(r.Furniture) > 0 {
		req.Furniture = make([]entities.FurnitureSelection, 0, len(r.Furniture))
		for _, f := range r.Furniture {
			quantity := 1
			if f.Quantity != nil {
				quantity = *f.Quantity
			}
			req.Furniture = append(req.Furniture, entities.FurnitureSelection{FurnitureID: f.Type, Quantity: quantity})
		}
	}
	return req
}
