package budget

import (
	"fmt"
	"math"

	"interior_budget/internal/domain/entities"
)

// RoomRate is the planning charge for a room type: a flat fee plus a rate
// per square foot.
type RoomRate struct {
	BaseFlat    float64
	RatePerSqFt float64
	// BufferWeeks widens the completion window for rooms with plumbing or
	// appliance work.
	BufferWeeks int
}

// Policy holds the studio's pricing and scheduling constants.
type Policy struct {
	Rooms map[entities.RoomType]RoomRate

	LaborPerSqFt   float64
	LaborRate      float64
	LaborAreaScale float64
	DesignFeeRate  float64

	SqFtPerWeek        float64
	ItemsPerExtraWeek  int
	ItemsPerBufferWeek int
}

// DefaultPolicy returns the studio's current price list.
func DefaultPolicy() Policy {
	return Policy{
		Rooms: map[entities.RoomType]RoomRate{
			entities.RoomTypeLivingRoom: {BaseFlat: 500, RatePerSqFt: 1.50},
			entities.RoomTypeBedroom:    {BaseFlat: 400, RatePerSqFt: 1.25},
			entities.RoomTypeKitchen:    {BaseFlat: 800, RatePerSqFt: 2.50, BufferWeeks: 2},
			entities.RoomTypeBathroom:   {BaseFlat: 700, RatePerSqFt: 2.25, BufferWeeks: 1},
			entities.RoomTypeDiningRoom: {BaseFlat: 450, RatePerSqFt: 1.50},
			entities.RoomTypeHomeOffice: {BaseFlat: 400, RatePerSqFt: 1.25},
			entities.RoomTypeOther:      {BaseFlat: 350, RatePerSqFt: 1.00},
		},
		LaborPerSqFt:       1.50,
		LaborRate:          0.25,
		LaborAreaScale:     500,
		DesignFeeRate:      0.10,
		SqFtPerWeek:        150,
		ItemsPerExtraWeek:  4,
		ItemsPerBufferWeek: 3,
	}
}

// Validate checks that every room type is priced and that no constant would
// make a cost negative or a formula divide by zero.
func (p Policy) Validate() error {
	for _, rt := range entities.RoomTypes {
		r, ok := p.Rooms[rt]
		if !ok {
			return fmt.Errorf("%w: no rate for room type %s", ErrInvalidPolicy, rt)
		}
		if !nonNegative(r.BaseFlat) || !nonNegative(r.RatePerSqFt) || r.BufferWeeks < 0 {
			return fmt.Errorf("%w: negative rate for room type %s", ErrInvalidPolicy, rt)
		}
	}
	if !nonNegative(p.LaborPerSqFt) || !nonNegative(p.LaborRate) || !nonNegative(p.DesignFeeRate) {
		return fmt.Errorf("%w: labor and design rates must be non-negative", ErrInvalidPolicy)
	}
	if !(p.LaborAreaScale > 0) || !(p.SqFtPerWeek > 0) {
		return fmt.Errorf("%w: area scales must be positive", ErrInvalidPolicy)
	}
	if p.ItemsPerExtraWeek <= 0 || p.ItemsPerBufferWeek <= 0 {
		return fmt.Errorf("%w: item thresholds must be positive", ErrInvalidPolicy)
	}
	return nil
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
