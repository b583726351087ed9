package budget

import (
	"fmt"
	"math"

	"interior_budget/internal/domain/entities"
)

// Upper bounds on request values. Anything larger is rejected so the
// breakdown and the week counts stay finite and ordered.
const (
	MaxDimensionFeet = 10_000.0
	MaxQuantity      = 10_000
)

// Estimator turns a BudgetRequest into a BudgetResult.
//
// It reads only its catalog and policy, both fixed at construction, so a
// single Estimator can serve concurrent callers without locking.
type Estimator struct {
	catalog *Catalog
	policy  Policy
}

func NewEstimator(catalog *Catalog, policy Policy) (*Estimator, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrInvalidCatalog)
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	rooms := make(map[entities.RoomType]RoomRate, len(policy.Rooms))
	for k, v := range policy.Rooms {
		rooms[k] = v
	}
	policy.Rooms = rooms
	return &Estimator{catalog: catalog, policy: policy}, nil
}

func (e *Estimator) Catalog() *Catalog {
	return e.catalog
}

// Estimate validates req and computes its cost breakdown and completion
// window. The only error it returns is *InvalidInputError.
func (e *Estimator) Estimate(req entities.BudgetRequest) (entities.BudgetResult, error) {
	if err := e.validate(req); err != nil {
		return entities.BudgetResult{}, err
	}

	area := req.Dimensions.Area()
	room := e.policy.Rooms[req.RoomType]
	materials := e.catalog.NormalizeMaterials(req.Materials)

	var b entities.BudgetBreakdown
	b.BaseCost = roundCents(room.BaseFlat + room.RatePerSqFt*area)
	b.MaterialsCost = roundCents(e.materialsCost(materials, area))
	b.FurnitureCost = roundCents(e.furnitureCost(req.Furniture))

	subtotal := b.MaterialsCost + b.FurnitureCost
	b.LaborCost = roundCents(e.policy.LaborPerSqFt*area + e.policy.LaborRate*subtotal*(1+area/e.policy.LaborAreaScale))
	b.DesignFee = roundCents(e.policy.DesignFeeRate * (b.BaseCost + b.MaterialsCost + b.FurnitureCost + b.LaborCost))

	total := b.Sum()
	if !finiteBreakdown(b) || !finite(total) {
		return entities.BudgetResult{}, invalid("dimensions", "room of %v sq ft cannot be priced", area)
	}

	return entities.BudgetResult{
		Area:         area,
		Breakdown:    b,
		TotalCost:    total,
		TimeEstimate: e.timeline(req.RoomType, area, selectedItems(materials, req.Furniture)),
	}, nil
}

func (e *Estimator) validate(req entities.BudgetRequest) error {
	if !validDimension(req.Dimensions.Length) {
		return invalid("dimensions.length", "must be a positive number of feet up to %v, got %v", MaxDimensionFeet, req.Dimensions.Length)
	}
	if !validDimension(req.Dimensions.Width) {
		return invalid("dimensions.width", "must be a positive number of feet up to %v, got %v", MaxDimensionFeet, req.Dimensions.Width)
	}
	if !req.RoomType.Valid() {
		return invalid("roomType", "unknown room type %q", req.RoomType)
	}

	for i, m := range req.Materials {
		if m.MaterialID == "" {
			return invalid(fmt.Sprintf("materials[%d].type", i), "is required")
		}
		if _, ok := e.catalog.Material(m.MaterialID); !ok {
			return invalid(fmt.Sprintf("materials[%d].type", i), "unknown material %q", m.MaterialID)
		}
		if !(m.Coverage > 0 && m.Coverage <= 1) {
			return invalid(fmt.Sprintf("materials[%d].coverage", i), "must be in (0, 1], got %v", m.Coverage)
		}
	}

	for i, f := range req.Furniture {
		if f.FurnitureID == "" {
			return invalid(fmt.Sprintf("furniture[%d].type", i), "is required")
		}
		entry, ok := e.catalog.Furniture(f.FurnitureID)
		if !ok {
			return invalid(fmt.Sprintf("furniture[%d].type", i), "unknown furniture %q", f.FurnitureID)
		}
		if !entry.ValidFor(req.RoomType) {
			return invalid(fmt.Sprintf("furniture[%d].type", i), "%q is not available for %s", f.FurnitureID, req.RoomType)
		}
		if f.Quantity < 1 || f.Quantity > MaxQuantity {
			return invalid(fmt.Sprintf("furniture[%d].quantity", i), "must be between 1 and %d, got %d", MaxQuantity, f.Quantity)
		}
	}
	return nil
}

// materialsCost prices surface finishes by covered area and fixtures per unit.
func (e *Estimator) materialsCost(selections []entities.MaterialSelection, area float64) float64 {
	total := 0.0
	for _, s := range selections {
		m, _ := e.catalog.Material(s.MaterialID)
		if m.Category == entities.MaterialCategoryFixture {
			total += m.UnitPrice
			continue
		}
		total += m.UnitPrice * s.Coverage * area
	}
	return total
}

func (e *Estimator) furnitureCost(selections []entities.FurnitureSelection) float64 {
	total := 0.0
	for _, s := range selections {
		f, _ := e.catalog.Furniture(s.FurnitureID)
		total += f.UnitPrice * float64(s.Quantity)
	}
	return total
}

// validDimension also rejects NaN.
func validDimension(v float64) bool {
	return v > 0 && v <= MaxDimensionFeet
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteBreakdown(b entities.BudgetBreakdown) bool {
	return finite(b.BaseCost) && finite(b.MaterialsCost) && finite(b.FurnitureCost) &&
		finite(b.LaborCost) && finite(b.DesignFee)
}

// roundCents rounds half away from zero to two decimals.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
