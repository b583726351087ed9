package budget

import (
	"math"

	"interior_budget/internal/domain/entities"
)

// maxWeeks keeps absurd areas from overflowing int.
const maxWeeks = 1 << 20

// maxItems caps the selection count fed into the week arithmetic.
const maxItems = 1 << 30

// timeline estimates the completion window in weeks. The minimum grows with
// area and every few selected items; the maximum adds a buffer proportional
// to the selections plus the room's fixed buffer. With no selections in a
// room without a buffer the window collapses to a single value.
func (e *Estimator) timeline(rt entities.RoomType, area float64, items int) entities.TimeEstimate {
	areaWeeks := math.Ceil(area / e.policy.SqFtPerWeek)
	if areaWeeks > maxWeeks {
		areaWeeks = maxWeeks
	}
	if areaWeeks < 1 {
		areaWeeks = 1
	}

	minWeeks := int(areaWeeks) + items/e.policy.ItemsPerExtraWeek
	buffer := ceilDiv(items, e.policy.ItemsPerBufferWeek) + e.policy.Rooms[rt].BufferWeeks
	return entities.TimeEstimate{Min: minWeeks, Max: minWeeks + buffer}
}

// selectedItems counts normalized materials plus every furniture unit,
// saturating at maxItems.
func selectedItems(materials []entities.MaterialSelection, furniture []entities.FurnitureSelection) int {
	n := min(len(materials), maxItems)
	for _, f := range furniture {
		if f.Quantity <= 0 {
			continue
		}
		if f.Quantity >= maxItems-n {
			return maxItems
		}
		n += f.Quantity
	}
	return n
}

func ceilDiv(a, b int) int {
	if a <= 0 || b <= 0 {
		return 0
	}
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
