package entities

// MaterialSelection picks a catalog material. Coverage is the fraction of the
// relevant surface treated, in (0, 1]; it is ignored for fixtures.
type MaterialSelection struct {
	MaterialID string  `json:"type"`
	Coverage   float64 `json:"coverage"`
}

type FurnitureSelection struct {
	FurnitureID string `json:"type"`
	Quantity    int    `json:"quantity"`
}

// BudgetRequest is the single input of the estimator. It is built once the
// client has finished selecting and is never mutated afterwards.
type BudgetRequest struct {
	Dimensions RoomDimensions       `json:"dimensions"`
	RoomType   RoomType             `json:"roomType"`
	Materials  []MaterialSelection  `json:"materials"`
	Furniture  []FurnitureSelection `json:"furniture"`
}

type BudgetBreakdown struct {
	BaseCost      float64 `json:"baseCost"`
	MaterialsCost float64 `json:"materialsCost"`
	FurnitureCost float64 `json:"furnitureCost"`
	LaborCost     float64 `json:"laborCost"`
	DesignFee     float64 `json:"designFee"`
}

// Sum adds every line of the breakdown.
func (b BudgetBreakdown) Sum() float64 {
	return b.BaseCost + b.MaterialsCost + b.FurnitureCost + b.LaborCost + b.DesignFee
}

// TimeEstimate is a completion window in whole weeks, Min <= Max.
type TimeEstimate struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type BudgetResult struct {
	Area         float64         `json:"area"`
	Breakdown    BudgetBreakdown `json:"breakdown"`
	TotalCost    float64         `json:"totalCost"`
	TimeEstimate TimeEstimate    `json:"timeEstimate"`
}
