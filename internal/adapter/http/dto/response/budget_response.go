package response

import "interior_budget/internal/domain/entities"

type BreakdownResponse struct {
	BaseCost      float64 `json:"baseCost" example:"650"`
	MaterialsCost float64 `json:"materialsCost" example:"200"`
	FurnitureCost float64 `json:"furnitureCost" example:"1200"`
	LaborCost     float64 `json:"laborCost" example:"570"`
	DesignFee     float64 `json:"designFee" example:"262"`
}

type TimeEstimateResponse struct {
	Min int `json:"min" example:"1"`
	Max int `json:"max" example:"2"`
}

// BudgetResponse is the estimator result as returned by the API.
type BudgetResponse struct {
	Area         float64              `json:"area" example:"100"`
	Breakdown    BreakdownResponse    `json:"breakdown"`
	TotalCost    float64              `json:"totalCost" example:"2882"`
	TimeEstimate TimeEstimateResponse `json:"timeEstimate"`
}

func FromBudgetResult(r entities.BudgetResult) BudgetResponse {
	return BudgetResponse{
		Area: r.Area,
		Breakdown: BreakdownResponse{
			BaseCost:      r.Breakdown.BaseCost,
			MaterialsCost: r.Breakdown.MaterialsCost,
			FurnitureCost: r.Breakdown.FurnitureCost,
			LaborCost:     r.Breakdown.LaborCost,
			DesignFee:     r.Breakdown.DesignFee,
		},
		TotalCost: r.TotalCost,
		TimeEstimate: TimeEstimateResponse{
			Min: r.TimeEstimate.Min,
			Max: r.TimeEstimate.Max,
		},
	}
}
